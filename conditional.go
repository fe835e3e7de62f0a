// Copyright 2026 The go-packed Authors

package packed

// Flag is a boolean presence coder: it writes pattern when the value is
// true (or, with xor, when false) and nothing otherwise; on decode it
// peeks for pattern at the current position, consuming it on a match.
func Flag(pattern []byte, xor bool) Coder {
	n := len(pattern)
	return &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			b, ok := v.(bool)
			if !ok {
				return w.fail(KindValueDomain, ErrOverflow, "Flag encode: %v is not a bool", v)
			}
			write := b
			if xor {
				write = !write
			}
			if !write {
				return nil
			}
			return w.Bytes(pattern)
		},
		decode: func(r *Reader) (interface{}, error) {
			matched := false
			if r.Pos()+n <= r.Len() {
				got, err := r.Bytes(n, true)
				if err != nil {
					return nil, err
				}
				if bytesEqual(got, pattern) {
					if _, err := r.Bytes(n, false); err != nil {
						return nil, err
					}
					matched = true
				}
			}
			if xor {
				matched = !matched
			}
			return matched, nil
		},
	}
}

type selectorKind int

const (
	selectorInline selectorKind = iota
	selectorPath
)

// Selector chooses how Flagged determines whether its payload is
// present: an inline boolean coder read/written as part of the Flagged
// stream itself, or a path reference to a boolean decoded elsewhere.
type Selector struct {
	kind      selectorKind
	boolCoder Coder
	path      string
}

// SelectorInline reads/writes the presence boolean inline, immediately
// before the payload.
func SelectorInline(boolCoder Coder) Selector {
	return Selector{kind: selectorInline, boolCoder: boolCoder}
}

// SelectorPath resolves the presence boolean from a previously decoded
// sibling field, writing/reading no boolean of its own.
func SelectorPath(path string) Selector {
	return Selector{kind: selectorPath, path: path}
}

// Flagged makes inner's presence conditional on sel. When absent, no
// payload is written and decode returns def without reading a payload;
// an inline selector still writes and reads its false boolean. def is
// never encoded.
func Flagged(sel Selector, inner Coder, def interface{}) Coder {
	return &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			present := v != nil
			switch sel.kind {
			case selectorInline:
				if err := sel.boolCoder.EncodeStream(w, present); err != nil {
					return err
				}
			case selectorPath:
				flagVal, err := resolvePath(&w.stack, sel.path)
				if err != nil {
					return w.fail(KindPath, err, "Flagged: selector path %q did not resolve", sel.path)
				}
				b, _ := flagVal.(bool)
				if b != present {
					return w.fail(KindValueDomain, ErrValidation, "Flagged: selector at %q is %v but value presence is %v", sel.path, b, present)
				}
			}
			if !present {
				return nil
			}
			return inner.EncodeStream(w, v)
		},
		decode: func(r *Reader) (interface{}, error) {
			var present bool
			switch sel.kind {
			case selectorInline:
				v, err := sel.boolCoder.DecodeStream(r)
				if err != nil {
					return nil, err
				}
				present, _ = v.(bool)
			case selectorPath:
				flagVal, err := resolvePath(&r.stack, sel.path)
				if err != nil {
					return nil, r.fail(KindPath, err, "Flagged: selector path %q did not resolve", sel.path)
				}
				present, _ = flagVal.(bool)
			}
			if !present {
				return def, nil
			}
			return inner.DecodeStream(r)
		},
	}
}

// Optional is Flagged sugar with an inline Bool selector and a nil
// default.
func Optional(inner Coder) Coder {
	return Flagged(SelectorInline(Bool), inner, nil)
}
