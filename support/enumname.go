// Copyright 2026 The go-packed Authors

package support

import packed "github.com/paulmillr/go-packed"

// EnumName codes a small positional enumeration: via produces an
// integer index, names[index] is the decoded string. Unlike packed.Map,
// the bijection is implicit in names' order rather than an explicit
// pairing, convenient for simple 0..len(names)-1 wire enums.
func EnumName(via packed.Coder, names []string) packed.Coder {
	return packed.Apply(via,
		func(wire interface{}) (interface{}, error) {
			idx, ok := asIndex(wire)
			if !ok || idx < 0 || idx >= len(names) {
				return nil, packed.ErrUnknownVariant
			}
			return names[idx], nil
		},
		func(v interface{}) (interface{}, error) {
			name, ok := v.(string)
			if !ok {
				return nil, packed.ErrUnknownVariant
			}
			for i, n := range names {
				if n == name {
					return i, nil
				}
			}
			return nil, packed.ErrUnknownVariant
		},
	)
}

func asIndex(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case uint32:
		return int(n), true
	case uint8:
		return int(n), true
	default:
		return 0, false
	}
}
