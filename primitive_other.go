// Copyright 2026 The go-packed Authors

package packed

import (
	"encoding/hex"
	"math"
)

// Bool is a one-byte boolean coder: 0x00 decodes false, any other byte
// decodes true (matching the teacher's WriteBool/ReadBool leniency on
// decode), but only 0x00/0x01 are ever written.
var Bool Coder = newFixedCoder(1,
	func(w *Writer, v interface{}) error {
		b, ok := v.(bool)
		if !ok {
			return w.fail(KindValueDomain, ErrOverflow, "Bool encode: %v is not a bool", v)
		}
		if b {
			return w.Byte(1)
		}
		return w.Byte(0)
	},
	func(r *Reader) (interface{}, error) {
		b, err := r.Byte(false)
		if err != nil {
			return nil, err
		}
		return b != 0, nil
	},
)

// Bits returns a Coder over the low n bits (1..32) of an unsigned
// integer, packed high-bit-first without byte alignment — spec's
// bits(n) primitive.
func Bits(n int) Coder {
	return &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			val, ok := asLength(v)
			if !ok || val < 0 {
				return w.fail(KindValueDomain, ErrOverflow, "Bits(%d) encode: %v is not a non-negative integer", n, v)
			}
			return w.Bits(uint32(val), n)
		},
		decode: func(r *Reader) (interface{}, error) {
			v, err := r.Bits(n)
			if err != nil {
				return nil, err
			}
			return uint64(v), nil
		},
	}
}

// F32LE/F32BE/F64LE/F64BE are IEEE-754 floating point coders, bit
// patterns moved through the fixed-width unsigned integer coders above.
var (
	F32LE = floatCoder(4, U32LE)
	F32BE = floatCoder(4, U32BE)
	F64LE = floatCoder(8, U64LE)
	F64BE = floatCoder(8, U64BE)
)

func floatCoder(size int, bits Coder) Coder {
	return newFixedCoder(size,
		func(w *Writer, v interface{}) error {
			f, ok := asFloat(v)
			if !ok {
				return w.fail(KindValueDomain, ErrInvalidFloat, "float encode: %v is not a number", v)
			}
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return w.fail(KindValueDomain, ErrInvalidFloat, "float encode: %v is not finite", f)
			}
			if size == 4 {
				return bits.EncodeStream(w, uint64(math.Float32bits(float32(f))))
			}
			return bits.EncodeStream(w, math.Float64bits(f))
		},
		func(r *Reader) (interface{}, error) {
			v, err := bits.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			u := v.(uint64)
			if size == 4 {
				return float64(math.Float32frombits(uint32(u))), nil
			}
			return math.Float64frombits(u), nil
		},
	)
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Bytes returns a Coder over raw byte slices, bounded by spec.
func Bytes(spec LengthSpec) Coder {
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			b, ok := v.([]byte)
			if !ok {
				return w.fail(KindValueDomain, ErrOverflow, "Bytes encode: %v is not []byte", v)
			}
			if spec.kind == lengthTerminator {
				return encodeTerminated(w, b, spec.terminator)
			}
			if err := w.WriteLength(spec, len(b)); err != nil {
				return err
			}
			return w.Bytes(b)
		},
		decode: func(r *Reader) (interface{}, error) {
			if spec.kind == lengthTerminator {
				return decodeTerminated(r, spec.terminator)
			}
			n, err := r.ReadLength(spec)
			if err != nil {
				return nil, err
			}
			return r.Bytes(n, false)
		},
	}
	if spec.kind == lengthFixed {
		c.size, c.hasSize = spec.fixed, true
	}
	c.isUnbounded = spec.isUnbounded()
	return c
}

// String is Bytes with a string Go type instead of []byte.
func String(spec LengthSpec) Coder {
	inner := Bytes(spec)
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			s, ok := v.(string)
			if !ok {
				return w.fail(KindValueDomain, ErrOverflow, "String encode: %v is not a string", v)
			}
			return inner.EncodeStream(w, []byte(s))
		},
		decode: func(r *Reader) (interface{}, error) {
			v, err := inner.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			return string(v.([]byte)), nil
		},
	}
	if size, ok := inner.Size(); ok {
		c.size, c.hasSize = size, true
	}
	c.isUnbounded = unbounded(inner)
	return c
}

// Hex is Bytes with a lowercase-hex-string Go type instead of []byte.
func Hex(spec LengthSpec) Coder {
	inner := Bytes(spec)
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			s, ok := v.(string)
			if !ok {
				return w.fail(KindValueDomain, ErrOverflow, "Hex encode: %v is not a string", v)
			}
			b, err := hex.DecodeString(s)
			if err != nil {
				return w.fail(KindValueDomain, err, "Hex encode: %q is not valid hex", s)
			}
			return inner.EncodeStream(w, b)
		},
		decode: func(r *Reader) (interface{}, error) {
			v, err := inner.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			return hex.EncodeToString(v.([]byte)), nil
		},
	}
	if size, ok := inner.Size(); ok {
		c.size, c.hasSize = size, true
	}
	c.isUnbounded = unbounded(inner)
	return c
}

func encodeTerminated(w *Writer, b, terminator []byte) error {
	if containsSeq(b, terminator) {
		return w.fail(KindValueDomain, ErrTerminatorCollide, "value contains the terminator sequence %x", terminator)
	}
	if err := w.Bytes(b); err != nil {
		return err
	}
	return w.Bytes(terminator)
}

func decodeTerminated(r *Reader, terminator []byte) ([]byte, error) {
	idx, err := r.Find(terminator, r.Pos())
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, r.fail(KindStructural, ErrUnexpectedEOF, "terminator %x not found", terminator)
	}
	n := idx - r.Pos()
	out, err := r.Bytes(n, false)
	if err != nil {
		return nil, err
	}
	if _, err := r.Bytes(len(terminator), false); err != nil {
		return nil, err
	}
	return out, nil
}

func containsSeq(haystack, needle []byte) bool {
	if len(needle) == 0 {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if string(haystack[i:i+len(needle)]) == string(needle) {
			return true
		}
	}
	return false
}

// Constant writes via's encoding of v and always decodes to v; on
// encode, the provided value must equal v or encoding fails, and on
// decode the bytes read must equal that encoding. The wire representation
// is whatever `via` produces for v, fixed at construction time.
func Constant(via Coder, v interface{}) Coder {
	buf, err := Encode(via, v)
	c := &streamCoder{
		encode: func(w *Writer, got interface{}) error {
			if err != nil {
				return w.fail(KindStructural, err, "Constant: could not precompute wire value")
			}
			if !valuesEqual(got, v) {
				return w.fail(KindValueDomain, ErrMagicMismatch, "Constant encode: %v != %v", got, v)
			}
			return w.Bytes(buf)
		},
		decode: func(r *Reader) (interface{}, error) {
			if err != nil {
				return nil, r.fail(KindStructural, err, "Constant: could not precompute wire value")
			}
			got, derr := r.Bytes(len(buf), false)
			if derr != nil {
				return nil, derr
			}
			if !bytesEqual(got, buf) {
				return nil, r.fail(KindValueDomain, ErrMagicMismatch, "Constant decode: got %x, want %x", got, buf)
			}
			return v, nil
		},
	}
	c.size, c.hasSize = len(buf), true
	return c
}

// Magic is Constant specialized to a fixed literal byte sequence,
// decoding to nil on success.
func Magic(pattern []byte) Coder {
	return newFixedCoder(len(pattern),
		func(w *Writer, v interface{}) error {
			return w.Bytes(pattern)
		},
		func(r *Reader) (interface{}, error) {
			got, err := r.Bytes(len(pattern), false)
			if err != nil {
				return nil, err
			}
			if !bytesEqual(got, pattern) {
				return nil, r.fail(KindValueDomain, ErrMagicMismatch, "Magic: got %x, want %x", got, pattern)
			}
			return nil, nil
		},
	)
}

// Nothing consumes and produces zero bytes; it always decodes to nil.
var Nothing Coder = newFixedCoder(0,
	func(w *Writer, v interface{}) error { return nil },
	func(r *Reader) (interface{}, error) { return nil, nil },
)

func valuesEqual(a, b interface{}) bool {
	an, aok := asLength(a)
	bn, bok := asLength(b)
	if aok && bok {
		return an == bn
	}
	return a == b
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
