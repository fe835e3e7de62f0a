// Copyright 2026 The go-packed Authors

package packed

// Field names one member of a Struct, in encode/decode order.
type Field struct {
	Name  string
	Coder Coder
}

// F is shorthand for constructing a Field.
func F(name string, c Coder) Field { return Field{Name: name, Coder: c} }

// Struct sequences named fields into a single coder over
// map[string]interface{}, in declaration order, pushing a path-stack
// frame so later fields can reference earlier ones via LengthPath.
// Grounded on the teacher's reflection-based struct marshal in
// internal/bsatn/struct.go, generalized from Go struct tags to an
// explicit field list since this engine has no static schema type.
func Struct(fields ...Field) Coder {
	for i, f := range fields {
		if unbounded(f.Coder) && i != len(fields)-1 {
			panic("packed: Struct field \"" + f.Name + "\" uses an unbounded length specifier but is not the last field")
		}
	}
	size, fixed := structSize(fields)
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			m, ok := v.(map[string]interface{})
			if !ok {
				return w.fail(KindValueDomain, ErrOverflow, "Struct encode: %v is not a map[string]interface{}", v)
			}
			fr := w.stack.pushObject("")
			defer w.stack.pop()
			for _, f := range fields {
				val, present := m[f.Name]
				if !present {
					return w.fail(KindValueDomain, ErrUnknownVariant, "Struct encode: missing field %q", f.Name)
				}
				w.stack.pushName(f.Name)
				err := f.Coder.EncodeStream(w, val)
				w.stack.popName()
				if err != nil {
					return err
				}
				fr.set(f.Name, val)
			}
			return nil
		},
		decode: func(r *Reader) (interface{}, error) {
			fr := r.stack.pushObject("")
			defer r.stack.pop()
			out := make(map[string]interface{}, len(fields))
			for _, f := range fields {
				r.stack.pushName(f.Name)
				val, err := f.Coder.DecodeStream(r)
				r.stack.popName()
				if err != nil {
					return nil, err
				}
				out[f.Name] = val
				fr.set(f.Name, val)
			}
			return out, nil
		},
	}
	if fixed {
		c.size, c.hasSize = size, true
	}
	return c
}

func structSize(fields []Field) (int, bool) {
	total := 0
	for _, f := range fields {
		n, ok := f.Coder.Size()
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

// Tuple sequences unnamed coders into a single coder over
// []interface{}, positionally.
func Tuple(coders ...Coder) Coder {
	for i, elemCoder := range coders {
		if unbounded(elemCoder) && i != len(coders)-1 {
			panic("packed: Tuple element has an unbounded length specifier but is not the last element")
		}
	}
	size, fixed := tupleSize(coders)
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			vs, ok := v.([]interface{})
			if !ok || len(vs) != len(coders) {
				return w.fail(KindValueDomain, ErrOverflow, "Tuple encode: expected []interface{} of length %d, got %v", len(coders), v)
			}
			fr := w.stack.pushSeq("")
			defer w.stack.pop()
			for i, c := range coders {
				w.stack.pushName(itoa(i))
				err := c.EncodeStream(w, vs[i])
				w.stack.popName()
				if err != nil {
					return err
				}
				fr.set("", vs[i])
			}
			return nil
		},
		decode: func(r *Reader) (interface{}, error) {
			fr := r.stack.pushSeq("")
			defer r.stack.pop()
			out := make([]interface{}, len(coders))
			for i, c := range coders {
				r.stack.pushName(itoa(i))
				val, err := c.DecodeStream(r)
				r.stack.popName()
				if err != nil {
					return nil, err
				}
				out[i] = val
				fr.set("", val)
			}
			return out, nil
		},
	}
	if fixed {
		c.size, c.hasSize = size, true
	}
	return c
}

func tupleSize(coders []Coder) (int, bool) {
	total := 0
	for _, c := range coders {
		n, ok := c.Size()
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// Array sequences a single element coder repeated per spec's length
// specifier into a coder over []interface{}.
func Array(elem Coder, spec LengthSpec) Coder {
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			vs, ok := v.([]interface{})
			if !ok {
				return w.fail(KindValueDomain, ErrOverflow, "Array encode: %v is not []interface{}", v)
			}

			// Length must be written (and, for LengthPath, resolved against
			// the *enclosing* frame) before this array pushes its own seq
			// frame — otherwise a path reference would resolve against the
			// array's own, still-empty frame instead of its parent's.
			if spec.kind != lengthTerminator {
				if err := w.WriteLength(spec, len(vs)); err != nil {
					return err
				}
			}

			fr := w.stack.pushSeq("")
			defer w.stack.pop()

			if spec.kind == lengthTerminator {
				return encodeTerminatedArray(w, elem, vs, spec.terminator, fr)
			}
			for i, val := range vs {
				w.stack.pushName(itoa(i))
				err := elem.EncodeStream(w, val)
				w.stack.popName()
				if err != nil {
					return err
				}
				fr.set("", val)
			}
			return nil
		},
		decode: func(r *Reader) (interface{}, error) {
			var n int
			if spec.kind != lengthTerminator && !spec.isUnbounded() {
				var err error
				n, err = r.ReadLength(spec)
				if err != nil {
					return nil, err
				}
				if n < 0 {
					return nil, r.fail(KindValueDomain, ErrOverflow, "Array: negative length %d", n)
				}
			}

			fr := r.stack.pushSeq("")
			defer r.stack.pop()

			if spec.kind == lengthTerminator {
				return decodeTerminatedArray(r, elem, spec.terminator, fr)
			}
			if spec.isUnbounded() {
				var out []interface{}
				for r.Pos() < r.Len() {
					r.stack.pushName(itoa(len(out)))
					val, err := elem.DecodeStream(r)
					r.stack.popName()
					if err != nil {
						return nil, err
					}
					out = append(out, val)
					fr.set("", val)
				}
				return out, nil
			}
			out := make([]interface{}, n)
			for i := 0; i < n; i++ {
				r.stack.pushName(itoa(i))
				val, derr := elem.DecodeStream(r)
				r.stack.popName()
				if derr != nil {
					return nil, derr
				}
				out[i] = val
				fr.set("", val)
			}
			return out, nil
		},
	}
	if spec.kind == lengthFixed {
		if n, ok := elem.Size(); ok {
			c.size, c.hasSize = n*spec.fixed, true
		}
	}
	c.isUnbounded = spec.isUnbounded()
	return c
}

func encodeTerminatedArray(w *Writer, elem Coder, vs []interface{}, terminator []byte, fr *frame) error {
	for i, val := range vs {
		sub := NewWriter()
		if err := elem.EncodeStream(sub, val); err != nil {
			return err
		}
		buf, err := sub.Finish()
		if err != nil {
			return err
		}
		if len(buf) >= len(terminator) && bytesEqual(buf[:len(terminator)], terminator) {
			return w.fail(KindValueDomain, ErrTerminatorCollide, "Array element %d's encoding collides with the terminator %x", i, terminator)
		}
		if err := w.Bytes(buf); err != nil {
			return err
		}
		fr.set("", val)
	}
	return w.Bytes(terminator)
}

func decodeTerminatedArray(r *Reader, elem Coder, terminator []byte, fr *frame) (interface{}, error) {
	var out []interface{}
	for {
		idx, err := r.Find(terminator, r.Pos())
		if err != nil {
			return nil, err
		}
		if idx == r.Pos() {
			if _, err := r.Bytes(len(terminator), false); err != nil {
				return nil, err
			}
			return out, nil
		}
		r.stack.pushName(itoa(len(out)))
		val, derr := elem.DecodeStream(r)
		r.stack.popName()
		if derr != nil {
			return nil, derr
		}
		out = append(out, val)
		fr.set("", val)
	}
}

// Prefix frames a bounded region for inner with a length specifier that
// counts bytes rather than elements, spawning a sub-reader/sub-writer so
// inner must exactly consume the framed region.
func Prefix(spec LengthSpec, inner Coder) Coder {
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
			if spec.kind == lengthTerminator {
				return encodeTerminated(w, buf, spec.terminator)
			}
			if err := w.WriteLength(spec, len(buf)); err != nil {
				return err
			}
			return w.Bytes(buf)
		},
		decode: func(r *Reader) (interface{}, error) {
			var buf []byte
			var err error
			if spec.kind == lengthTerminator {
				buf, err = decodeTerminated(r, spec.terminator)
			} else {
				var n int
				n, err = r.ReadLength(spec)
				if err == nil {
					buf, err = r.Bytes(n, false)
				}
			}
			if err != nil {
				return nil, err
			}
			sub := NewReader(buf, r.opts)
			val, derr := inner.DecodeStream(sub)
			if derr != nil {
				return nil, derr
			}
			if err := sub.Finish(); err != nil {
				return nil, err
			}
			return val, nil
		},
	}
	c.isUnbounded = spec.isUnbounded()
	return c
}
