// Copyright 2026 The go-packed Authors

package packed

// Variant pairs a raw tag value with the coder used for that tag's
// payload, for Tag.
type Variant struct {
	Tag   interface{}
	Coder Coder
}

// Tag reads/writes a discriminant via tagCoder, then dispatches to the
// matching Variant's coder for the payload. Decoded values are
// map[string]interface{}{"tag": ..., "value": ...}.
func Tag(tagCoder Coder, variants []Variant) Coder {
	return &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			m, ok := v.(map[string]interface{})
			if !ok {
				return w.fail(KindValueDomain, ErrOverflow, "Tag encode: %v is not a tagged map", v)
			}
			tag := m["tag"]
			variant, ok := findVariant(variants, tag)
			if !ok {
				return w.fail(KindValueDomain, ErrUnknownVariant, "Tag encode: no variant for tag %v", tag)
			}
			if err := tagCoder.EncodeStream(w, tag); err != nil {
				return err
			}
			return variant.Coder.EncodeStream(w, m["value"])
		},
		decode: func(r *Reader) (interface{}, error) {
			tag, err := tagCoder.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			variant, ok := findVariant(variants, tag)
			if !ok {
				return nil, r.fail(KindValueDomain, ErrUnknownVariant, "Tag decode: no variant for tag %v", tag)
			}
			val, err := variant.Coder.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"tag": tag, "value": val}, nil
		},
	}
}

func findVariant(variants []Variant, tag interface{}) (Variant, bool) {
	for _, v := range variants {
		if valuesEqual(v.Tag, tag) {
			return v, true
		}
	}
	return Variant{}, false
}

// MappedTag is Tag composed with a name bijection: the raw wire tag is
// translated to/from a user-facing variant name before variant lookup,
// so decoded values carry map[string]interface{}{"tag": "<name>", ...}
// instead of a raw wire constant.
func MappedTag(tagCoder Coder, names map[interface{}]string, variants map[string]Coder) Coder {
	reverse := make(map[string]interface{}, len(names))
	for wire, name := range names {
		reverse[name] = wire
	}
	return &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			m, ok := v.(map[string]interface{})
			if !ok {
				return w.fail(KindValueDomain, ErrOverflow, "MappedTag encode: %v is not a tagged map", v)
			}
			name, ok := m["tag"].(string)
			if !ok {
				return w.fail(KindValueDomain, ErrUnknownVariant, "MappedTag encode: tag %v is not a string", m["tag"])
			}
			wire, ok := reverse[name]
			if !ok {
				return w.fail(KindValueDomain, ErrUnknownVariant, "MappedTag encode: unknown variant name %q", name)
			}
			coder, ok := variants[name]
			if !ok {
				return w.fail(KindValueDomain, ErrUnknownVariant, "MappedTag encode: no coder for variant %q", name)
			}
			if err := tagCoder.EncodeStream(w, wire); err != nil {
				return err
			}
			return coder.EncodeStream(w, m["value"])
		},
		decode: func(r *Reader) (interface{}, error) {
			wire, err := tagCoder.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			name, ok := names[wire]
			if !ok {
				return nil, r.fail(KindValueDomain, ErrUnknownVariant, "MappedTag decode: no name for tag %v", wire)
			}
			coder, ok := variants[name]
			if !ok {
				return nil, r.fail(KindValueDomain, ErrUnknownVariant, "MappedTag decode: no coder for variant %q", name)
			}
			val, err := coder.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"tag": name, "value": val}, nil
		},
	}
}
