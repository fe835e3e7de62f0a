// Copyright 2026 The go-packed Authors

package packed

// PadLeft pads inner up to a multiple of blockSize bytes, writing the
// padding before the value and skipping it on decode. inner must have a
// known fixed size, since the value's start offset has to be knowable
// without scanning. padFn supplies the i-th padding byte, counted from
// the start of the padding region; a nil padFn pads with zero bytes.
func PadLeft(blockSize int, inner Coder, padFn func(int) byte) Coder {
	size, ok := inner.Size()
	if !ok {
		panic("packed: PadLeft requires a fixed-size inner coder")
	}
	padLen := padLenFor(size, blockSize)
	total := size + padLen
	return newFixedCoder(total,
		func(w *Writer, v interface{}) error {
			if err := w.Bytes(padBytes(padLen, padFn)); err != nil {
				return err
			}
			return inner.EncodeStream(w, v)
		},
		func(r *Reader) (interface{}, error) {
			if _, err := r.Bytes(padLen, false); err != nil {
				return nil, err
			}
			return inner.DecodeStream(r)
		},
	)
}

// PadRight pads inner up to a multiple of blockSize bytes, writing the
// padding after the value. Unlike PadLeft, inner need not be fixed-size:
// its encoded length is measured after the fact and rounded up, and on
// decode the same number of bytes inner actually consumes determines how
// much trailing padding to skip. This is how spec's padRight(3, cstring)
// example works: the terminator ends the value, and whatever remains up
// to the next multiple of 3 is padding.
func PadRight(blockSize int, inner Coder, padFn func(int) byte) Coder {
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			sub := NewWriter()
			if err := inner.EncodeStream(sub, v); err != nil {
				return err
			}
			buf, err := sub.Finish()
			if err != nil {
				return err
			}
			if err := w.Bytes(buf); err != nil {
				return err
			}
			return w.Bytes(padBytes(padLenFor(len(buf), blockSize), padFn))
		},
		decode: func(r *Reader) (interface{}, error) {
			start := r.Pos()
			val, derr := inner.DecodeStream(r)
			if derr != nil {
				return nil, derr
			}
			consumed := r.Pos() - start
			if _, err := r.Bytes(padLenFor(consumed, blockSize), false); err != nil {
				return nil, err
			}
			return val, nil
		},
	}
	if size, ok := inner.Size(); ok {
		c.size, c.hasSize = size+padLenFor(size, blockSize), true
	}
	return c
}

// padLenFor returns how many bytes must be appended to n to reach the
// next multiple of blockSize (0 if n is already a multiple).
func padLenFor(n, blockSize int) int {
	if blockSize <= 0 {
		return 0
	}
	return (blockSize - n%blockSize) % blockSize
}

func padBytes(n int, padFn func(int) byte) []byte {
	if n <= 0 {
		return nil
	}
	out := make([]byte, n)
	for i := range out {
		if padFn != nil {
			out[i] = padFn(i)
		}
	}
	return out
}
