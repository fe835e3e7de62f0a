// Copyright 2026 The go-packed Authors

package support

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	packed "github.com/paulmillr/go-packed"
)

func TestDecimalRoundTrip(t *testing.T) {
	c := Decimal(8, true, 2)
	v := decimal.NewFromFloat(19.99)
	buf, err := packed.Encode(c, v)
	require.NoError(t, err)

	got, err := packed.Decode(c, buf, packed.ReaderOpts{})
	require.NoError(t, err)
	require.True(t, v.Equal(got.(decimal.Decimal)))
}
