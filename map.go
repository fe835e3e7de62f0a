// Copyright 2026 The go-packed Authors

package packed

// Map composes via with a bijection between wire values and user-facing
// values — spec's map/enum combinator, used to give named meaning to an
// otherwise-opaque wire constant (e.g. a byte 0/1/2 standing for
// "pending"/"active"/"closed").
func Map(via Coder, forward map[interface{}]interface{}) Coder {
	reverse := make(map[interface{}]interface{}, len(forward))
	for k, v := range forward {
		reverse[v] = k
	}
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			wire, ok := reverse[v]
			if !ok {
				return w.fail(KindValueDomain, ErrUnknownVariant, "Map encode: no wire value for %v", v)
			}
			return via.EncodeStream(w, wire)
		},
		decode: func(r *Reader) (interface{}, error) {
			wire, err := via.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			v, ok := forward[wire]
			if !ok {
				return nil, r.fail(KindValueDomain, ErrUnknownVariant, "Map decode: no mapped value for wire value %v", wire)
			}
			return v, nil
		},
	}
	if size, ok := via.Size(); ok {
		c.size, c.hasSize = size, true
	}
	return c
}
