// Copyright 2026 The go-packed Authors

package support

import (
	"errors"
	"math/big"

	packed "github.com/paulmillr/go-packed"
)

// ErrUnsafeInteger is returned when a SafeBigint value falls outside
// the +/-(2^53-1) range JSON/JS-adjacent formats treat as exactly
// representable.
var ErrUnsafeInteger = errors.New("packed/support: integer exceeds safe-integer range")

const maxSafeInteger = (int64(1) << 53) - 1
const minSafeInteger = -maxSafeInteger

// SafeBigint wraps packed.Bigint, additionally rejecting values outside
// the JS safe-integer range on both encode and decode, and exposing
// int64 rather than *big.Int to callers that have already promised to
// stay within that range.
func SafeBigint(sizeBytes int, littleEndian, signed, sized bool) packed.Coder {
	inner := packed.Bigint(sizeBytes, littleEndian, signed, sized)
	return packed.Apply(inner,
		func(wire interface{}) (interface{}, error) {
			n := wire.(*big.Int)
			if !n.IsInt64() {
				return nil, ErrUnsafeInteger
			}
			v := n.Int64()
			if v < minSafeInteger || v > maxSafeInteger {
				return nil, ErrUnsafeInteger
			}
			return v, nil
		},
		func(v interface{}) (interface{}, error) {
			n, ok := v.(int64)
			if !ok {
				if i, ok2 := v.(int); ok2 {
					n, ok = int64(i), true
				}
			}
			if !ok {
				return nil, ErrUnsafeInteger
			}
			if n < minSafeInteger || n > maxSafeInteger {
				return nil, ErrUnsafeInteger
			}
			return big.NewInt(n), nil
		},
	)
}
