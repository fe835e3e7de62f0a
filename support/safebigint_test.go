// Copyright 2026 The go-packed Authors

package support

import (
	"testing"

	"github.com/stretchr/testify/require"

	packed "github.com/paulmillr/go-packed"
)

func TestSafeBigintRoundTrip(t *testing.T) {
	c := SafeBigint(8, true, true, true)
	buf, err := packed.Encode(c, int64(123456789))
	require.NoError(t, err)

	got, err := packed.Decode(c, buf, packed.ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, int64(123456789), got)
}

func TestSafeBigintRejectsOutOfRange(t *testing.T) {
	c := SafeBigint(8, true, true, true)
	_, err := packed.Encode(c, int64(1)<<54)
	require.Error(t, err)
}
