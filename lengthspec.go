// Copyright 2026 The go-packed Authors

package packed

import "strings"

type lengthKind int

const (
	lengthCoder lengthKind = iota
	lengthFixed
	lengthTerminator
	lengthPath
	lengthUnbounded
)

// LengthSpec bounds a variable-length payload (bytes, string, array,
// prefix). Build one with LengthCoder, LengthFixed, LengthTerminator,
// LengthPath, or use the Unbounded value.
type LengthSpec struct {
	kind       lengthKind
	coder      Coder
	fixed      int
	terminator []byte
	path       string
}

// LengthCoder bounds the payload with an unsigned integer coder written
// or read in-line immediately before it.
func LengthCoder(c Coder) LengthSpec { return LengthSpec{kind: lengthCoder, coder: c} }

// LengthFixed bounds the payload to exactly n bytes/elements.
func LengthFixed(n int) LengthSpec { return LengthSpec{kind: lengthFixed, fixed: n} }

// LengthTerminator bounds the payload by a sentinel byte pattern that
// follows it; the pattern is consumed and is part of the output.
func LengthTerminator(pattern []byte) LengthSpec {
	return LengthSpec{kind: lengthTerminator, terminator: append([]byte(nil), pattern...)}
}

// LengthPath bounds the payload by a previously-decoded integer field,
// addressed via a "/"-separated path (".." pops a level) against the
// current path stack.
func LengthPath(path string) LengthSpec { return LengthSpec{kind: lengthPath, path: path} }

// Unbounded consumes/produces to the end of the current buffer. Legal
// only as the last element of its enclosing container.
var Unbounded = LengthSpec{kind: lengthUnbounded}

func (s LengthSpec) isUnbounded() bool { return s.kind == lengthUnbounded }

// resolvePath walks path against stk starting from the innermost frame,
// popping a level for each ".." segment and indexing by name/index for
// every other segment.
func resolvePath(stk *pathStack, path string) (interface{}, error) {
	segments := strings.Split(path, "/")
	cursor := len(stk.frames) - 1
	var cur interface{}
	haveCur := false

	for i, seg := range segments {
		if seg == ".." {
			if haveCur {
				return nil, ErrPathNotFound
			}
			cursor--
			if cursor < 0 {
				return nil, ErrPathNotFound
			}
			continue
		}
		if !haveCur {
			if cursor < 0 || cursor >= len(stk.frames) {
				return nil, ErrPathNotFound
			}
			v, ok := stk.frames[cursor].lookup(seg)
			if !ok {
				return nil, ErrPathNotFound
			}
			cur = v
			haveCur = true
			continue
		}
		// descend into an already-resolved nested value
		switch t := cur.(type) {
		case map[string]interface{}:
			v, ok := t[seg]
			if !ok {
				return nil, ErrPathNotFound
			}
			cur = v
		case []interface{}:
			idx, err := parseIndex(seg)
			if err != nil || idx < 0 || idx >= len(t) {
				return nil, ErrPathNotFound
			}
			cur = t[idx]
		default:
			return nil, ErrPathNotFound
		}
		_ = i
	}
	if !haveCur {
		return nil, ErrPathNotFound
	}
	return cur, nil
}

// ReadLength determines the element/byte count a variable-length payload
// should consume, per spec's four length-specifier kinds (terminator
// excluded: terminator-bounded payloads scan for their sentinel directly
// rather than computing a count up front).
func (r *Reader) ReadLength(spec LengthSpec) (int, error) {
	switch spec.kind {
	case lengthFixed:
		return spec.fixed, nil
	case lengthCoder:
		v, err := spec.coder.DecodeStream(r)
		if err != nil {
			return 0, err
		}
		n, ok := asLength(v)
		if !ok || n < 0 {
			return 0, r.fail(KindValueDomain, ErrOverflow, "length coder produced non-integer or negative value %v", v)
		}
		return n, nil
	case lengthPath:
		v, err := resolvePath(&r.stack, spec.path)
		if err != nil {
			return 0, r.fail(KindPath, err, "length path %q did not resolve", spec.path)
		}
		n, ok := asLength(v)
		if !ok || n < 0 {
			return 0, r.fail(KindValueDomain, ErrOverflow, "length path %q resolved to non-integer or negative value %v", spec.path, v)
		}
		return n, nil
	case lengthUnbounded:
		return r.Len() - r.Pos(), nil
	default:
		return 0, r.fail(KindStructural, ErrPathNotFound, "ReadLength called with a terminator length specifier")
	}
}

// WriteLength writes (or checks) the count for a variable-length payload
// of the given actual size.
func (w *Writer) WriteLength(spec LengthSpec, actual int) error {
	switch spec.kind {
	case lengthFixed:
		if actual != spec.fixed {
			return w.fail(KindStructural, ErrLengthMismatch, "fixed length %d does not match actual length %d", spec.fixed, actual)
		}
		return nil
	case lengthCoder:
		return spec.coder.EncodeStream(w, actual)
	case lengthPath:
		v, err := resolvePath(&w.stack, spec.path)
		if err != nil {
			return w.fail(KindPath, err, "length path %q did not resolve", spec.path)
		}
		n, ok := asLength(v)
		if !ok {
			return w.fail(KindValueDomain, ErrOverflow, "length path %q resolved to non-integer value %v", spec.path, v)
		}
		if n != actual {
			return w.fail(KindStructural, ErrLengthMismatch, "length path %q resolved to %d, actual length is %d", spec.path, n, actual)
		}
		return nil
	case lengthUnbounded:
		return nil
	default:
		return w.fail(KindStructural, ErrPathNotFound, "WriteLength called with a terminator length specifier")
	}
}

func asLength(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}
