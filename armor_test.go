// Copyright 2026 The go-packed Authors

package packed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBase64ArmorRoundTrip(t *testing.T) {
	c := Base64Armor("TEST MESSAGE", String(LengthCoder(U8)))
	got, err := Encode(c, "hello, armor")
	require.NoError(t, err)
	text := string(got)
	require.True(t, strings.HasPrefix(text, "-----BEGIN TEST MESSAGE-----\n"))
	require.True(t, strings.HasSuffix(text, "-----END TEST MESSAGE-----\n"))

	v, err := Decode(c, got, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, "hello, armor", v)
}

func TestBase64ArmorRejectsBadChecksum(t *testing.T) {
	c := Base64Armor("TEST", String(LengthCoder(U8)))
	got, err := Encode(c, "hi")
	require.NoError(t, err)

	// Flip the first character of the base64 body (the line after the
	// BEGIN header and its following blank line) so the checksum no
	// longer matches.
	lines := strings.Split(string(got), "\n")
	require.Greater(t, len(lines), 2)
	body := []byte(lines[2])
	if body[0] == 'A' {
		body[0] = 'B'
	} else {
		body[0] = 'A'
	}
	lines[2] = string(body)
	tampered := strings.Join(lines, "\n")

	_, err = Decode(c, []byte(tampered), ReaderOpts{})
	require.Error(t, err)
}
