// Copyright 2026 The go-packed Authors

package packed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointerRoundTrip(t *testing.T) {
	c := Struct(
		F("ptr", Pointer(U32LE, String(LengthCoder(U8)))),
	)
	v := map[string]interface{}{"ptr": "hello"}
	buf, err := Encode(c, v)
	require.NoError(t, err)
	// 4-byte pointer placeholder, then the pointee (1-byte length prefix + "hello")
	require.Equal(t, 4+1+5, len(buf))
	require.Equal(t, uint32(4), leU32(buf[0:4]))

	opts := ReaderOpts{}
	got, err := Decode(c, buf, opts)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestPointerChain(t *testing.T) {
	var inner Coder
	inner = Struct(
		F("next", Optional(Pointer(U32LE, Lazy(func() Coder { return inner })))),
		F("value", U8),
	)
	v := map[string]interface{}{
		"value": uint64(3),
		"next": map[string]interface{}{
			"value": uint64(2),
			"next": map[string]interface{}{
				"value": uint64(1),
				"next":  nil,
			},
		},
	}
	buf, err := Encode(inner, v)
	require.NoError(t, err)

	got, err := Decode(inner, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestArrayOfPointers(t *testing.T) {
	elem := Pointer(U32LE, String(LengthCoder(U8)))
	c := Array(elem, LengthFixed(3))
	v := []interface{}{"a", "bb", "ccc"}
	buf, err := Encode(c, v)
	require.NoError(t, err)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestPointerOverlapRejectedByDefault(t *testing.T) {
	// Two pointers both targeting the same region must be rejected as a
	// DoS guard unless AllowMultipleReads is set.
	c := Tuple(
		Pointer(U32LE, String(LengthCoder(U8))),
		Pointer(U32LE, String(LengthCoder(U8))),
	)
	// Hand-build a buffer where both pointers point at the same offset.
	target := []byte{0x05, 'h', 'e', 'l', 'l', 'o'}
	ptr := make([]byte, 8)
	off := uint32(8)
	ptr[0], ptr[4] = byte(off), byte(off)
	buf := append(ptr, target...)

	_, err := Decode(c, buf, ReaderOpts{})
	require.Error(t, err)

	_, err = Decode(c, buf, ReaderOpts{AllowMultipleReads: true})
	require.NoError(t, err)
}

func leU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
