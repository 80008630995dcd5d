package limits

import (
	"math"
	"math/big"
	"reflect"
)

// Closed integer intervals per target width and signedness. Expressed
// from the stdlib literal constants rather than computed by shifting so
// the exact boundary values are visible at the definition site.
var (
	MinI8  = big.NewInt(math.MinInt8)
	MaxI8  = big.NewInt(math.MaxInt8)
	MinI16 = big.NewInt(math.MinInt16)
	MaxI16 = big.NewInt(math.MaxInt16)
	MinI32 = big.NewInt(math.MinInt32)
	MaxI32 = big.NewInt(math.MaxInt32)
	MinI64 = big.NewInt(math.MinInt64)
	MaxI64 = big.NewInt(math.MaxInt64)

	MinU8  = big.NewInt(0)
	MaxU8  = big.NewInt(math.MaxUint8)
	MinU16 = big.NewInt(0)
	MaxU16 = big.NewInt(math.MaxUint16)
	MinU32 = big.NewInt(0)
	MaxU32 = big.NewInt(math.MaxUint32)
	MinU64 = big.NewInt(0)
	MaxU64 = new(big.Int).SetUint64(math.MaxUint64)
)

// IntRange returns the closed [min, max] interval for the given width
// and signedness. The returned values are shared; callers must not
// mutate them.
func IntRange(bits int, signed bool) (min, max *big.Int) {
	if signed {
		switch bits {
		case 8:
			return MinI8, MaxI8
		case 16:
			return MinI16, MaxI16
		case 32:
			return MinI32, MaxI32
		case 64:
			return MinI64, MaxI64
		}
	} else {
		switch bits {
		case 8:
			return MinU8, MaxU8
		case 16:
			return MinU16, MaxU16
		case 32:
			return MinU32, MaxU32
		case 64:
			return MinU64, MaxU64
		}
	}
	return nil, nil
}

const (
	CanonicalNaN32 = 0x7fc00000
	CanonicalNaN64 = 0x7ff8000000000000
)

// CanonicalizeF32 returns the canonical quiet NaN for any NaN input.
func CanonicalizeF32(bits uint32) uint32 {
	f := math.Float32frombits(bits)
	if f != f { // NaN check
		return CanonicalNaN32
	}
	return bits
}

// CanonicalizeF64 returns the canonical quiet NaN for any NaN input.
func CanonicalizeF64(bits uint64) uint64 {
	f := math.Float64frombits(bits)
	if f != f { // NaN check
		return CanonicalNaN64
	}
	return bits
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	runeMax      = 0x10FFFF
)

// ValidRune reports whether r is a Unicode scalar value: in range and
// not a surrogate code point.
func ValidRune(r rune) bool {
	if r >= surrogateMin && r <= surrogateMax {
		return false
	}
	if r < 0 || r > runeMax {
		return false
	}
	return true
}

// IsSurrogate reports whether r falls in the UTF-16 surrogate range.
func IsSurrogate(r rune) bool {
	return r >= surrogateMin && r <= surrogateMax
}

// TypeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
