// Copyright 2026 The go-packed Authors

package support

import (
	"testing"

	"github.com/stretchr/testify/require"

	packed "github.com/paulmillr/go-packed"
)

func TestDictRoundTrip(t *testing.T) {
	c := Dict(packed.U8, packed.String(packed.LengthCoder(packed.U8)), packed.LengthFixed(2))
	v := map[interface{}]interface{}{
		uint64(1): "one",
		uint64(2): "two",
	}
	buf, err := packed.Encode(c, v)
	require.NoError(t, err)

	got, err := packed.Decode(c, buf, packed.ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, v, got)
}
