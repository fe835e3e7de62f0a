// Copyright 2026 The go-packed Authors

package packed

// Bitset packs len(names)+pad boolean flags one bit apiece, high-bit-
// first, decoding to map[string]bool keyed by name. pad trailing bits
// are written as 0 and discarded on decode, for formats that reserve
// bits to round out a byte boundary.
func Bitset(names []string, pad int) Coder {
	total := len(names) + pad
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			m, ok := v.(map[string]interface{})
			if !ok {
				return w.fail(KindValueDomain, ErrOverflow, "Bitset encode: %v is not a map[string]interface{}", v)
			}
			for _, name := range names {
				bit := uint32(0)
				if b, _ := m[name].(bool); b {
					bit = 1
				}
				if err := w.Bits(bit, 1); err != nil {
					return err
				}
			}
			for i := 0; i < pad; i++ {
				if err := w.Bits(0, 1); err != nil {
					return err
				}
			}
			return nil
		},
		decode: func(r *Reader) (interface{}, error) {
			out := make(map[string]bool, len(names))
			for _, name := range names {
				bit, err := r.Bits(1)
				if err != nil {
					return nil, err
				}
				out[name] = bit != 0
			}
			for i := 0; i < pad; i++ {
				if _, err := r.Bits(1); err != nil {
					return nil, err
				}
			}
			return out, nil
		},
	}
	if total%8 == 0 {
		c.size, c.hasSize = total/8, true
	}
	return c
}
