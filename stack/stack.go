package stack

import (
	"math"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/ffi-boundary/coerce"
	"github.com/wippyai/ffi-boundary/errors"
	"github.com/wippyai/ffi-boundary/internal/limits"
)

// SlotCount returns how many core stack slots a descriptor occupies.
// Scalars flatten to one slot; text is a ptr/len pair in linear memory
// and takes two.
func SlotCount(d coerce.Descriptor) int {
	if d == coerce.DescText {
		return 2
	}
	return 1
}

// Lower packs a validated native value into a 64-bit core stack slot.
//
// The value must already be the exact native type for the descriptor
// (the coerce package's output); Lower performs no coercion of its own.
// Signed integers are sign-extended into their core width, unsigned
// ones zero-extended. Float bit patterns pass through except NaN, which
// is canonicalized to the quiet pattern. Text has no single-slot form
// and is rejected.
func Lower(d coerce.Descriptor, native any) (uint64, error) {
	switch d {
	case coerce.DescI8:
		if v, ok := native.(int8); ok {
			return api.EncodeI32(int32(v)), nil
		}
	case coerce.DescI16:
		if v, ok := native.(int16); ok {
			return api.EncodeI32(int32(v)), nil
		}
	case coerce.DescI32:
		if v, ok := native.(int32); ok {
			return api.EncodeI32(v), nil
		}
	case coerce.DescI64:
		if v, ok := native.(int64); ok {
			return api.EncodeI64(v), nil
		}
	case coerce.DescU8:
		if v, ok := native.(uint8); ok {
			return api.EncodeU32(uint32(v)), nil
		}
	case coerce.DescU16:
		if v, ok := native.(uint16); ok {
			return api.EncodeU32(uint32(v)), nil
		}
	case coerce.DescU32:
		if v, ok := native.(uint32); ok {
			return api.EncodeU32(v), nil
		}
	case coerce.DescU64:
		if v, ok := native.(uint64); ok {
			return v, nil // u64 is the slot representation
		}
	case coerce.DescF32:
		if v, ok := native.(float32); ok {
			slot := api.EncodeF32(v)
			return uint64(limits.CanonicalizeF32(uint32(slot))), nil
		}
	case coerce.DescF64:
		if v, ok := native.(float64); ok {
			return limits.CanonicalizeF64(api.EncodeF64(v)), nil
		}
	case coerce.DescText:
		return 0, errors.Unsupported(errors.PhaseLower, "text does not fit a single stack slot")
	default:
		return 0, errors.Unsupported(errors.PhaseLower, "descriptor "+d.String())
	}
	return 0, errors.TypeMismatch(errors.PhaseLower, nil, limits.TypeName(native), d.String())
}

// Lift unpacks a core stack slot into the descriptor's native type.
// Lift(d, Lower(d, v)) returns v for every in-range value, including
// the sign of zero; NaN survives as a NaN.
func Lift(d coerce.Descriptor, slot uint64) (any, error) {
	switch d {
	case coerce.DescI8:
		return int8(api.DecodeI32(slot)), nil
	case coerce.DescI16:
		return int16(api.DecodeI32(slot)), nil
	case coerce.DescI32:
		return api.DecodeI32(slot), nil
	case coerce.DescI64:
		return int64(slot), nil
	case coerce.DescU8:
		return uint8(api.DecodeU32(slot)), nil
	case coerce.DescU16:
		return uint16(api.DecodeU32(slot)), nil
	case coerce.DescU32:
		return api.DecodeU32(slot), nil
	case coerce.DescU64:
		return slot, nil
	case coerce.DescF32:
		return math.Float32frombits(limits.CanonicalizeF32(uint32(slot))), nil
	case coerce.DescF64:
		return math.Float64frombits(limits.CanonicalizeF64(slot)), nil
	case coerce.DescText:
		return nil, errors.Unsupported(errors.PhaseLift, "text does not fit a single stack slot")
	default:
		return nil, errors.Unsupported(errors.PhaseLift, "descriptor "+d.String())
	}
}
