// Copyright 2026 The go-packed Authors

package packed

import "math/big"

// Bigint returns a Coder over arbitrary-precision integers; it has a
// fixed size only when sized is true.
// When sized is true it always emits/consumes exactly sizeBytes bytes,
// zero-padded; when false it emits the minimal byte representation and,
// on decode, consumes every byte remaining in the current reader's
// logical buffer (up to sizeBytes) — meant to be composed inside a
// framing combinator such as Prefix that already bounds the region.
//
// Grounded on the teacher's internal/bsatn integer marshal/unmarshal
// pairs (fixed-width, endianness-parameterized byte shuffling); widened
// here to arbitrary width via math/big since no vendored dependency in
// the retrieval pack offers a 128/256-bit codec.
func Bigint(sizeBytes int, littleEndian, signed, sized bool) Coder {
	if sizeBytes < 1 {
		panic("packed: Bigint requires sizeBytes >= 1")
	}
	c := &streamCoder{
		encode: func(w *Writer, v interface{}) error {
			n, err := toBigInt(v)
			if err != nil {
				return w.fail(KindValueDomain, err, "Bigint encode: %v", v)
			}
			buf, err := bigintToBytes(n, sizeBytes, signed, sized)
			if err != nil {
				return w.fail(KindValueDomain, err, "Bigint encode %s", n.String())
			}
			return w.Bytes(buf)
		},
		decode: func(r *Reader) (interface{}, error) {
			n := sizeBytes
			if !sized {
				n = r.Len() - r.Pos()
				if n > sizeBytes {
					n = sizeBytes
				}
			}
			buf, err := r.Bytes(n, false)
			if err != nil {
				return nil, err
			}
			return bytesToBigint(buf, littleEndian, signed), nil
		},
	}
	if sized {
		c.size, c.hasSize = sizeBytes, true
	}
	return wrapEndian(c, sizeBytes, sized, signed, littleEndian)
}

// wrapEndian reorders the big-endian byte buffer bigintToBytes/bytesToBigint
// produce into the requested wire endianness.
func wrapEndian(inner *streamCoder, sizeBytes int, sized, signed, littleEndian bool) Coder {
	if !littleEndian {
		return inner
	}
	return &streamCoder{
		size: inner.size, hasSize: inner.hasSize,
		encode: func(w *Writer, v interface{}) error {
			be := NewWriter()
			if err := inner.encode(be, v); err != nil {
				return err
			}
			buf, err := be.Finish()
			if err != nil {
				return err
			}
			reverseBytes(buf)
			return w.Bytes(buf)
		},
		decode: func(r *Reader) (interface{}, error) {
			n := sizeBytes
			if !sized {
				n = r.Len() - r.Pos()
				if n > sizeBytes {
					n = sizeBytes
				}
			}
			buf, err := r.Bytes(n, false)
			if err != nil {
				return nil, err
			}
			reverseBytes(buf)
			return bytesToBigintBE(buf, signed), nil
		},
	}
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func toBigInt(v interface{}) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case int:
		return big.NewInt(int64(n)), nil
	case int8:
		return big.NewInt(int64(n)), nil
	case int16:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint8:
		return big.NewInt(int64(n)), nil
	case uint16:
		return big.NewInt(int64(n)), nil
	case uint32:
		return big.NewInt(int64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	default:
		return nil, ErrOverflow
	}
}

// bigintToBytes renders n as big-endian bytes. When sized, the result is
// exactly size bytes (error if it does not fit, including the sign bit
// for two's-complement signed encodings); when unsized, leading zero
// bytes are stripped (empty slice for zero), capped at size bytes.
func bigintToBytes(n *big.Int, size int, signed, sized bool) ([]byte, error) {
	if !signed && n.Sign() < 0 {
		return nil, ErrOverflow
	}
	if signed {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(size*8-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, ErrOverflow
		}
	}
	var raw []byte
	if signed && n.Sign() < 0 {
		// two's complement: (1<<bits) + n
		bits := size * 8
		mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		twos := new(big.Int).Add(mod, n)
		raw = twos.Bytes()
	} else {
		raw = n.Bytes()
	}
	if !sized {
		if len(raw) > size {
			return nil, ErrOverflow
		}
		return raw, nil
	}
	if len(raw) > size {
		return nil, ErrOverflow
	}
	out := make([]byte, size)
	copy(out[size-len(raw):], raw)
	return out, nil
}

func bytesToBigint(buf []byte, littleEndian, signed bool) *big.Int {
	be := append([]byte(nil), buf...)
	if littleEndian {
		reverseBytes(be)
	}
	return bytesToBigintBE(be, signed)
}

func bytesToBigintBE(be []byte, signed bool) *big.Int {
	n := new(big.Int).SetBytes(be)
	if signed && len(be) > 0 && be[0]&0x80 != 0 {
		bits := len(be) * 8
		mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		n.Sub(n, mod)
	}
	return n
}

// Int wraps Bigint to produce a machine-integer-typed coder: decoded
// values are native Go int64/uint64 rather than *big.Int. Restricted to
// sizeBytes <= 6, mirroring spec's safe-integer-width contract for the
// generic wrapper (it panics beyond that; use Bigint directly, or one
// of the >6-byte named aliases, for wider values).
func Int(sizeBytes int, littleEndian, signed, sized bool) Coder {
	if sizeBytes > 6 {
		panic("packed: Int restricted to <= 6 bytes; use Bigint directly for wider values")
	}
	return machineInt(sizeBytes, littleEndian, signed, sized)
}

// machineInt is the unrestricted implementation behind Int and the
// <=8-byte named aliases (U8..U64, I8..I64): native Go integer types in,
// native Go integer types out. Values pass through a *big.Int and the
// underlying Bigint coder on every encode and decode.
func machineInt(sizeBytes int, littleEndian, signed, sized bool) Coder {
	big_ := Bigint(sizeBytes, littleEndian, signed, sized)
	return &streamCoder{
		size: sizeBytes, hasSize: sized,
		encode: func(w *Writer, v interface{}) error {
			n, err := toBigInt(v)
			if err != nil {
				return w.fail(KindValueDomain, err, "Int encode: %v", v)
			}
			return big_.EncodeStream(w, n)
		},
		decode: func(r *Reader) (interface{}, error) {
			v, err := big_.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			n := v.(*big.Int)
			if signed {
				if !n.IsInt64() {
					return nil, r.fail(KindValueDomain, ErrOverflow, "decoded value %s overflows int64", n.String())
				}
				return n.Int64(), nil
			}
			if !n.IsUint64() {
				return nil, r.fail(KindValueDomain, ErrOverflow, "decoded value %s overflows uint64", n.String())
			}
			return n.Uint64(), nil
		},
	}
}

func fixedU(size int, le bool) Coder   { return machineInt(size, le, false, true) }
func fixedI(size int, le bool) Coder   { return machineInt(size, le, true, true) }
func fixedBigU(size int, le bool) Coder { return Bigint(size, le, false, true) }
func fixedBigI(size int, le bool) Coder { return Bigint(size, le, true, true) }

// Named aliases, per spec §4.3's "U8/I8/U16LE/U16BE/…/U256LE/I256BE"
// table. Widths up to 8 bytes decode to native uint64/int64; 16- and
// 32-byte widths decode to *big.Int since Go has no native type for them.
var (
	U8  = fixedU(1, false)
	I8  = fixedI(1, false)

	U16LE = fixedU(2, true)
	U16BE = fixedU(2, false)
	I16LE = fixedI(2, true)
	I16BE = fixedI(2, false)

	U32LE = fixedU(4, true)
	U32BE = fixedU(4, false)
	I32LE = fixedI(4, true)
	I32BE = fixedI(4, false)

	U64LE = fixedU(8, true)
	U64BE = fixedU(8, false)
	I64LE = fixedI(8, true)
	I64BE = fixedI(8, false)

	U128LE = fixedBigU(16, true)
	U128BE = fixedBigU(16, false)
	I128LE = fixedBigI(16, true)
	I128BE = fixedBigI(16, false)

	U256LE = fixedBigU(32, true)
	U256BE = fixedBigU(32, false)
	I256LE = fixedBigI(32, true)
	I256BE = fixedBigI(32, false)
)
