// Copyright 2026 The go-packed Authors

package packed

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU32BEEncode(t *testing.T) {
	buf, err := Encode(U32BE, uint64(123123123))
	require.NoError(t, err)
	require.Equal(t, []byte{0x07, 0x56, 0xB5, 0xB3}, buf)
}

func TestU32BERoundTrip(t *testing.T) {
	buf, err := Encode(U32BE, uint64(123123123))
	require.NoError(t, err)
	v, err := Decode(U32BE, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, uint64(123123123), v)
}

func TestU32LERoundTrip(t *testing.T) {
	buf, err := Encode(U32LE, uint64(123123123))
	require.NoError(t, err)
	require.Equal(t, []byte{0xB3, 0xB5, 0x56, 0x07}, buf)
	v, err := Decode(U32LE, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, uint64(123123123), v)
}

func TestU64LEMaxValue(t *testing.T) {
	const maxU64 = uint64(1<<64 - 1)
	buf, err := Encode(U64LE, maxU64)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, buf)
	v, err := Decode(U64LE, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, maxU64, v)
}

func TestI16BENegative(t *testing.T) {
	buf, err := Encode(I16BE, int64(-1))
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff}, buf)
	v, err := Decode(I16BE, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)
}

func TestIntRejectsWideSizes(t *testing.T) {
	require.Panics(t, func() { Int(8, true, false, true) })
}

func TestU128BERoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	buf[15] = 42
	v, err := Decode(U128BE, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), v)
}

func TestBoolRoundTrip(t *testing.T) {
	buf, err := Encode(Bool, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, buf)
	v, err := Decode(Bool, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, true, v)
}
