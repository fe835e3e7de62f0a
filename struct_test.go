// Copyright 2026 The go-packed Authors

package packed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructRoundTrip(t *testing.T) {
	c := Struct(
		F("a", U8),
		F("b", U16LE),
		F("c", String(LengthCoder(U8))),
	)
	v := map[string]interface{}{
		"a": uint64(5),
		"b": uint64(300),
		"c": "hi",
	}
	buf, err := Encode(c, v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x05, 0x2C, 0x01, 0x02, 'h', 'i'}, buf)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestStructMissingFieldFails(t *testing.T) {
	c := Struct(F("a", U8), F("b", U8))
	_, err := Encode(c, map[string]interface{}{"a": uint64(1)})
	require.Error(t, err)
}

func TestStructRejectsUnboundedNotLast(t *testing.T) {
	require.Panics(t, func() {
		Struct(F("a", Bytes(Unbounded)), F("b", U8))
	})
}

func TestTupleRoundTrip(t *testing.T) {
	c := Tuple(U8, Bool)
	buf, err := Encode(c, []interface{}{uint64(9), true})
	require.NoError(t, err)
	require.Equal(t, []byte{0x09, 0x01}, buf)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, []interface{}{uint64(9), true}, got)
}

func TestLengthPathReference(t *testing.T) {
	c := Struct(
		F("n", U8),
		F("items", Array(U8, LengthPath("n"))),
	)
	v := map[string]interface{}{
		"n":     uint64(3),
		"items": []interface{}{uint64(1), uint64(2), uint64(3)},
	}
	buf, err := Encode(c, v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x01, 0x02, 0x03}, buf)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, v, got)
}
