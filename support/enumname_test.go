// Copyright 2026 The go-packed Authors

package support

import (
	"testing"

	"github.com/stretchr/testify/require"

	packed "github.com/paulmillr/go-packed"
)

func TestEnumNameRoundTrip(t *testing.T) {
	c := EnumName(packed.U8, []string{"red", "green", "blue"})
	buf, err := packed.Encode(c, "green")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, buf)

	got, err := packed.Decode(c, buf, packed.ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, "green", got)
}

func TestEnumNameRejectsUnknown(t *testing.T) {
	c := EnumName(packed.U8, []string{"red", "green"})
	_, err := packed.Encode(c, "purple")
	require.Error(t, err)

	_, err = packed.Decode(c, []byte{0x09}, packed.ReaderOpts{})
	require.Error(t, err)
}
