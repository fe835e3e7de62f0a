// Copyright 2026 The go-packed Authors

package packed

// frame is one level of the path stack: the partially-constructed parent
// value that struct/tuple/array push on entry and pop on exit. On decode
// the object map is filled in field by field as siblings are read, which
// is what lets a later field's length specifier reference an earlier
// field by path. Encode fills the frame the same way, recording each
// field's value after it has been written.
type frame struct {
	name   string // field name under which this frame was entered, for diagnostics
	object map[string]interface{}
	seq    []interface{}
	isSeq  bool
}

// pathStack tracks the currently-in-construction ancestors of the value
// being encoded or decoded, plus a parallel field-name stack used to
// render human-readable error paths.
type pathStack struct {
	frames []*frame
	names  []string
}

func (s *pathStack) pushObject(name string) *frame {
	f := &frame{name: name, object: map[string]interface{}{}}
	s.frames = append(s.frames, f)
	return f
}

func (s *pathStack) pushSeq(name string) *frame {
	f := &frame{name: name, isSeq: true}
	s.frames = append(s.frames, f)
	return f
}

func (s *pathStack) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *pathStack) pushName(name string) {
	s.names = append(s.names, name)
}

func (s *pathStack) popName() {
	s.names = s.names[:len(s.names)-1]
}

func (s *pathStack) currentPath() []string {
	return append([]string(nil), s.names...)
}

// set records a just-decoded/encoded sibling value into the top frame so
// later siblings can reference it through a length path.
func (f *frame) set(name string, v interface{}) {
	if f.isSeq {
		f.seq = append(f.seq, v)
		return
	}
	if f.object == nil {
		f.object = map[string]interface{}{}
	}
	f.object[name] = v
}

func (f *frame) lookup(name string) (interface{}, bool) {
	if f.isSeq {
		idx, err := parseIndex(name)
		if err != nil || idx < 0 || idx >= len(f.seq) {
			return nil, false
		}
		return f.seq[idx], true
	}
	v, ok := f.object[name]
	return v, ok
}

func parseIndex(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, ErrPathNotFound
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, ErrPathNotFound
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
