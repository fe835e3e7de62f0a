// Copyright 2026 The go-packed Authors

// Package support holds coders built on top of the core engine rather
// than inside it: dictionaries, safe-integer and decimal bigints, name
// enumerations, alternation, and byte-order reversal.
package support

import packed "github.com/paulmillr/go-packed"

// Dict codes a sequence of key/value pairs into map[interface{}]interface{},
// by composing an Array of Tuples with an Apply bijection.
func Dict(key, value packed.Coder, spec packed.LengthSpec) packed.Coder {
	pair := packed.Tuple(key, value)
	arr := packed.Array(pair, spec)
	return packed.Apply(arr,
		func(wire interface{}) (interface{}, error) {
			pairs := wire.([]interface{})
			out := make(map[interface{}]interface{}, len(pairs))
			for _, p := range pairs {
				kv := p.([]interface{})
				out[kv[0]] = kv[1]
			}
			return out, nil
		},
		func(v interface{}) (interface{}, error) {
			m := v.(map[interface{}]interface{})
			out := make([]interface{}, 0, len(m))
			for k, val := range m {
				out = append(out, []interface{}{k, val})
			}
			return out, nil
		},
	)
}
