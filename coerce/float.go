package coerce

import (
	"math/big"

	boundary "github.com/wippyai/ffi-boundary"
	"github.com/wippyai/ffi-boundary/errors"
	"github.com/wippyai/ffi-boundary/internal/limits"
)

// resolveFloat resolves a caller value to a float64.
//
// Ladder: floats first (NaN, ±Inf and ±0 pass through untouched), then
// booleans as 0.0/1.0, then exact integers widened per IEEE
// round-to-nearest (precision loss is allowed here, unlike the integer
// path there is no range failure), then the Floater protocol. Text,
// complex numbers and everything else is a type mismatch.
func resolveFloat(value any, target Descriptor) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case *big.Int:
		if v == nil {
			return 0, errors.TypeMismatch(errors.PhaseLower, nil, "(*big.Int)(nil)", target.String())
		}
		// Values beyond float range become ±Inf, per IEEE widening.
		f, _ := new(big.Float).SetInt(v).Float64()
		return f, nil
	}

	if fl, ok := value.(boundary.Floater); ok {
		return fl.Float(), nil
	}

	return 0, errors.TypeMismatch(errors.PhaseLower, nil, limits.TypeName(value), target.String())
}

// F32 converts a caller value to a 32-bit float. Width only affects
// precision: special values (NaN, ±Inf, signed zero) survive the
// narrowing with their class and sign intact.
func F32(value any) (float32, error) {
	f, err := resolveFloat(value, DescF32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// F64 converts a caller value to a 64-bit float.
func F64(value any) (float64, error) {
	return resolveFloat(value, DescF64)
}
