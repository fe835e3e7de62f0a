// Copyright 2026 The go-packed Authors

package packed

// Lazy defers building the underlying coder until first use, letting a
// coder reference itself (directly or through a cycle) for recursive
// structures. No fixed size, since recursive shapes are generally
// unbounded.
func Lazy(thunk func() Coder) Coder {
	return &streamCoder{
		encode: func(w *Writer, v interface{}) error { return thunk().EncodeStream(w, v) },
		decode: func(r *Reader) (interface{}, error) { return thunk().DecodeStream(r) },
	}
}

// Apply composes inner with an external bijection between inner's wire
// value and a richer Go value (e.g. bytes <-> a parsed *big.Int, or a
// coordinate pair <-> a point type). toWire runs before encode,
// fromWire runs after decode.
func Apply(inner Coder, fromWire func(interface{}) (interface{}, error), toWire func(interface{}) (interface{}, error)) Coder {
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			wire, err := toWire(v)
			if err != nil {
				return w.fail(KindUser, err, "Apply: toWire failed for %v", v)
			}
			return inner.EncodeStream(w, wire)
		},
		decode: func(r *Reader) (interface{}, error) {
			wire, err := inner.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			v, err := fromWire(wire)
			if err != nil {
				return nil, r.fail(KindUser, err, "Apply: fromWire failed for %v", wire)
			}
			return v, nil
		},
	}
	if size, ok := inner.Size(); ok {
		c.size, c.hasSize = size, true
	}
	return c
}

// Validate runs fn against the value on both directions, failing the
// encode/decode if fn returns an error.
func Validate(inner Coder, fn func(interface{}) error) Coder {
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			if err := fn(v); err != nil {
				return w.fail(KindUser, ErrValidation, "validate rejected %v: %v", v, err)
			}
			return inner.EncodeStream(w, v)
		},
		decode: func(r *Reader) (interface{}, error) {
			v, err := inner.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			if verr := fn(v); verr != nil {
				return nil, r.fail(KindUser, ErrValidation, "validate rejected %v: %v", v, verr)
			}
			return v, nil
		},
	}
	if size, ok := inner.Size(); ok {
		c.size, c.hasSize = size, true
	}
	return c
}
