// Copyright 2026 The go-packed Authors

package packed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyRoundTrip(t *testing.T) {
	c := Apply(U8,
		func(wire interface{}) (interface{}, error) {
			return wire.(uint64) * 2, nil
		},
		func(v interface{}) (interface{}, error) {
			return v.(uint64) / 2, nil
		},
	)
	buf, err := Encode(c, uint64(10))
	require.NoError(t, err)
	require.Equal(t, []byte{0x05}, buf)

	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, uint64(10), got)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	fn := func(v interface{}) error {
		if v.(uint64) > 10 {
			return errors.New("too big")
		}
		return nil
	}
	c := Validate(U8, fn)

	_, err := Encode(c, uint64(20))
	require.Error(t, err)

	buf, err := Encode(c, uint64(5))
	require.NoError(t, err)
	_, err = Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)

	_, err = Decode(c, []byte{0x14}, ReaderOpts{})
	require.Error(t, err)
}

func TestLazySimpleRoundTrip(t *testing.T) {
	c := Lazy(func() Coder { return U16LE })
	buf, err := Encode(c, uint64(300))
	require.NoError(t, err)
	got, err := Decode(c, buf, ReaderOpts{})
	require.NoError(t, err)
	require.Equal(t, uint64(300), got)
}
