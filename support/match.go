// Copyright 2026 The go-packed Authors

package support

import packed "github.com/paulmillr/go-packed"

// Match tries each candidate coder in order, committing to the first
// one that succeeds and rolling back cursor/buffer state between
// attempts via packed.Reader/Writer's Mark/Reset.
func Match(coders ...packed.Coder) packed.Coder {
	return packed.Wrap(
		func(w *packed.Writer, v interface{}) error {
			var lastErr error
			for _, c := range coders {
				mark := w.Mark()
				if err := c.EncodeStream(w, v); err == nil {
					return nil
				} else {
					lastErr = err
					w.Reset(mark)
				}
			}
			if lastErr == nil {
				lastErr = packed.ErrUnknownVariant
			}
			return lastErr
		},
		func(r *packed.Reader) (interface{}, error) {
			var lastErr error
			for _, c := range coders {
				mark := r.Mark()
				v, err := c.DecodeStream(r)
				if err == nil {
					return v, nil
				}
				lastErr = err
				r.Reset(mark)
			}
			if lastErr == nil {
				lastErr = packed.ErrUnknownVariant
			}
			return nil, lastErr
		},
	)
}
