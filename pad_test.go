// Copyright 2026 The go-packed Authors

package packed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPadLeftRoundTrip(t *testing.T) {
	c := PadLeft(4, U16LE, nil)
	buf, err := Encode(c, uint64(300))
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x2C, 0x01}, buf)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, uint64(300), got)
}

func TestPadLeftRejectsVariableSizeInner(t *testing.T) {
	require.Panics(t, func() {
		PadLeft(8, String(LengthCoder(U8)), nil)
	})
}

func TestPadRightCstring(t *testing.T) {
	cstring := String(LengthTerminator([]byte{0x00}))
	c := PadRight(3, cstring, nil)

	buf, err := Encode(c, "a")
	require.NoError(t, err)
	require.Equal(t, []byte{'a', 0x00, 0x00}, buf)
	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, "a", got)

	buf, err = Encode(c, "aaaa")
	require.NoError(t, err)
	require.Equal(t, []byte{'a', 'a', 'a', 'a', 0x00, 0x00}, buf)
	got, err = Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, "aaaa", got)
}

func TestPadRightAlreadyAligned(t *testing.T) {
	cstring := String(LengthTerminator([]byte{0x00}))
	c := PadRight(3, cstring, nil)

	// "ab\0" is already 3 bytes (a multiple of blockSize): no padding added.
	buf, err := Encode(c, "ab")
	require.NoError(t, err)
	require.Equal(t, []byte{'a', 'b', 0x00}, buf)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, "ab", got)
}

func TestPadRightCustomPadFn(t *testing.T) {
	cstring := String(LengthTerminator([]byte{0x00}))
	c := PadRight(4, cstring, func(i int) byte { return byte(i + 1) })

	buf, err := Encode(c, "a")
	require.NoError(t, err)
	require.Equal(t, []byte{'a', 0x00, 0x01, 0x02}, buf)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, "a", got)
}
