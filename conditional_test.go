// Copyright 2026 The go-packed Authors

package packed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagRoundTrip(t *testing.T) {
	c := Flag([]byte{0xFF}, false)

	buf, err := Encode(c, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF}, buf)
	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, true, got)

	buf, err = Encode(c, false)
	require.NoError(t, err)
	require.Equal(t, []byte{}, buf)
	got, err = Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, false, got)
}

func TestFlagXor(t *testing.T) {
	c := Flag([]byte{0xFF}, true)
	buf, err := Encode(c, false)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF}, buf)
	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, false, got)
}

func TestOptionalRoundTrip(t *testing.T) {
	c := Struct(F("v", Optional(U16LE)))

	buf, err := Encode(c, map[string]interface{}{"v": uint64(7)})
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x07, 0x00}, buf)
	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"v": uint64(7)}, got)

	buf, err = Encode(c, map[string]interface{}{"v": nil})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, buf)
	got, err = Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"v": nil}, got)
}

func TestFlaggedSelectorPath(t *testing.T) {
	c := Struct(
		F("hasPayload", Bool),
		F("payload", Flagged(SelectorPath("hasPayload"), U8, nil)),
	)
	v := map[string]interface{}{"hasPayload": true, "payload": uint64(9)}
	buf, err := Encode(c, v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x09}, buf)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, v, got)
}
