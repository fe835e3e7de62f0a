// Copyright 2026 The go-packed Authors

package support

import packed "github.com/paulmillr/go-packed"

// Reverse wraps inner, byte-reversing whatever it produces/consumes.
// Useful for flipping the wire byte order of a coder that wasn't built
// with an endianness parameter of its own.
func Reverse(inner packed.Coder) packed.Coder {
	size, hasSize := inner.Size()
	return packed.Wrap(
		func(w *packed.Writer, v interface{}) error {
			sub := packed.NewWriter()
			if err := inner.EncodeStream(sub, v); err != nil {
				return err
			}
			buf, err := sub.Finish()
			if err != nil {
				return err
			}
			reverseBytes(buf)
			return w.Bytes(buf)
		},
		func(r *packed.Reader) (interface{}, error) {
			n := size
			if !hasSize {
				n = r.Len() - r.Pos()
			}
			buf, err := r.Bytes(n, false)
			if err != nil {
				return nil, err
			}
			reverseBytes(buf)
			sub := packed.NewReader(buf, packed.ReaderOpts{})
			val, derr := inner.DecodeStream(sub)
			if derr != nil {
				return nil, derr
			}
			if err := sub.Finish(); err != nil {
				return nil, err
			}
			return val, nil
		},
	)
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
