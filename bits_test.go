// Copyright 2026 The go-packed Authors

package packed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsPacking(t *testing.T) {
	c := Struct(
		F("f", Bits(5)),
		F("f1", Bits(1)),
		F("f2", Bits(1)),
		F("f3", Bits(1)),
	)
	v := map[string]interface{}{
		"f": uint64(1), "f1": uint64(0), "f2": uint64(1), "f3": uint64(0),
	}
	buf, err := Encode(c, v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x0A}, buf)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestBitsWidthBounds(t *testing.T) {
	w := NewWriter()
	require.Error(t, w.Bits(1, 0))
	require.Error(t, w.Bits(1, 33))
	require.Error(t, w.Bits(4, 2)) // 4 does not fit in 2 bits
}

func TestNamedBitsetRoundTrip(t *testing.T) {
	c := Bitset([]string{"a", "b", "c"}, 5)
	v := map[string]interface{}{"a": true, "b": false, "c": true}
	buf, err := Encode(c, v)
	require.NoError(t, err)
	require.Len(t, buf, 1)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"a": true, "b": false, "c": true}, got)
}
