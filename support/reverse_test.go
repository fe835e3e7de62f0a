// Copyright 2026 The go-packed Authors

package support

import (
	"testing"

	"github.com/stretchr/testify/require"

	packed "github.com/paulmillr/go-packed"
)

func TestReverseFlipsByteOrder(t *testing.T) {
	c := Reverse(packed.U32BE)
	buf, err := packed.Encode(c, uint64(0x01020304))
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)

	got, err := packed.Decode(c, buf, packed.ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, uint64(0x01020304), got)
}
