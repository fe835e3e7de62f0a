// Copyright 2026 The go-packed Authors

package support

import (
	"math/big"

	"github.com/shopspring/decimal"

	packed "github.com/paulmillr/go-packed"
)

// Decimal codes a fixed-point decimal.Decimal as a signed unscaled
// integer of sizeBytes, implicitly divided by 10^scale. Grounded on
// go-gitea-gitea's go.mod dependency on github.com/shopspring/decimal,
// the one arbitrary-precision decimal library present anywhere in the
// retrieval pack.
func Decimal(sizeBytes int, littleEndian bool, scale int32) packed.Coder {
	inner := packed.Bigint(sizeBytes, littleEndian, true, true)
	return packed.Apply(inner,
		func(wire interface{}) (interface{}, error) {
			n := wire.(*big.Int)
			return decimal.NewFromBigInt(n, -scale), nil
		},
		func(v interface{}) (interface{}, error) {
			d, ok := v.(decimal.Decimal)
			if !ok {
				return nil, packed.ErrInvalidFloat
			}
			unscaled := d.Shift(scale).Round(0).BigInt()
			return unscaled, nil
		},
	)
}
