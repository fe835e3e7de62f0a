// Copyright 2026 The go-packed Authors

package packed

// Coder is the uniform contract every primitive and combinator in this
// package implements: a paired streaming encoder/decoder over a single
// logical value type, plus an optional compile-time-known fixed size.
//
// Values flow through the engine as interface{}, mirroring the teacher's
// reflection-based Marshal(v interface{})/Unmarshal(buf) []byte contract
// in internal/bsatn/encode.go — struct-shaped values decode to
// map[string]interface{}, sequences to []interface{}, exactly as the
// teacher's decoder does.
type Coder interface {
	// EncodeStream writes v to w. Errors are always *Error.
	EncodeStream(w *Writer, v interface{}) error
	// DecodeStream reads and returns one value from r.
	DecodeStream(r *Reader) (interface{}, error)
	// Size returns the coder's fixed encoded size and true, or (0, false)
	// if the size is not known ahead of encoding.
	Size() (int, bool)
}

// Encode runs c over v and returns the resulting bytes.
func Encode(c Coder, v interface{}) ([]byte, error) {
	w := NewWriter()
	if err := c.EncodeStream(w, v); err != nil {
		return nil, err
	}
	return w.Finish()
}

// Decode runs c over buf and returns the decoded value. It enforces that
// the entire buffer is consumed (subject to opts).
//
// c.Size() is deliberately not checked against len(buf) here: it
// reports only the bytes a coder writes inline, and a coder graph that
// contains a Pointer writes additional deferred pointee bytes beyond
// that — the only general way to confirm full consumption is Reader's
// own bookkeeping, via Finish below.
func Decode(c Coder, buf []byte, opts ReaderOpts) (interface{}, error) {
	r := NewReader(buf, opts)
	v, err := c.DecodeStream(r)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return v, nil
}

// streamCoder adapts a bare pair of stream functions (and an optional
// size) into a Coder, the way spec.md §3 describes the coder contract as
// a pair of functions plus an optional size — this is the constructor
// every primitive/combinator factory in this package uses internally.
type streamCoder struct {
	encode      func(w *Writer, v interface{}) error
	decode      func(r *Reader) (interface{}, error)
	size        int
	hasSize     bool
	isUnbounded bool
}

func (c *streamCoder) EncodeStream(w *Writer, v interface{}) error { return c.encode(w, v) }
func (c *streamCoder) DecodeStream(r *Reader) (interface{}, error) { return c.decode(r) }
func (c *streamCoder) Size() (int, bool)                           { return c.size, c.hasSize }

// unbounded reports whether c was built from an Unbounded length
// specifier (Bytes/String/Hex/Array/Prefix) — such a coder is only
// legal as the last field of a Struct/Tuple, per spec's "unbounded must
// be last in its container" invariant.
func unbounded(c Coder) bool {
	sc, ok := c.(*streamCoder)
	return ok && sc.isUnbounded
}

// newCoder builds a Coder with no fixed size.
func newCoder(encode func(w *Writer, v interface{}) error, decode func(r *Reader) (interface{}, error)) Coder {
	return &streamCoder{encode: encode, decode: decode}
}

// newFixedCoder builds a Coder with a known fixed size.
func newFixedCoder(size int, encode func(w *Writer, v interface{}) error, decode func(r *Reader) (interface{}, error)) Coder {
	return &streamCoder{encode: encode, decode: decode, size: size, hasSize: true}
}

// Named wraps inner so that errors occurring within it render label in
// the error path instead of (or alongside) whatever positional index the
// enclosing Struct/Tuple/Array would otherwise use — useful for
// self-describing error messages in deeply nested coder graphs.
func Named(label string, inner Coder) Coder {
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			w.stack.pushName(label)
			err := inner.EncodeStream(w, v)
			w.stack.popName()
			return err
		},
		decode: func(r *Reader) (interface{}, error) {
			r.stack.pushName(label)
			v, err := inner.DecodeStream(r)
			r.stack.popName()
			return v, err
		},
	}
	if size, ok := inner.Size(); ok {
		c.size, c.hasSize = size, true
	}
	c.isUnbounded = unbounded(inner)
	return c
}

// Wrap builds a Coder (with no fixed size) from a bare pair of stream
// functions not built through this package's factories, so they can be
// composed with the combinators and passed to Encode/Decode. Wrap itself
// performs no end-of-buffer check; Decode does that via Reader.Finish.
func Wrap(encode func(w *Writer, v interface{}) error, decode func(r *Reader) (interface{}, error)) Coder {
	return newCoder(encode, decode)
}
