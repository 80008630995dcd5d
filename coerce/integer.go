package coerce

import (
	"math/big"

	boundary "github.com/wippyai/ffi-boundary"
	"github.com/wippyai/ffi-boundary/errors"
	"github.com/wippyai/ffi-boundary/internal/limits"
)

// exactInt resolves a caller value to an arbitrary-precision integer.
//
/// The accepted source kinds are checked in a fixed order: exact integers
// (all native integer types and *big.Int), then booleans as 0/1, then
// the Indexer protocol. Everything else, floats included, is a type
// mismatch; integral-valued floats are deliberately not truncated.
func exactInt(value any, target Descriptor) (*big.Int, error) {
	switch v := value.(type) {
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return big.NewInt(int64(v)), nil
	case uint16:
		return big.NewInt(int64(v)), nil
	case uint32:
		return big.NewInt(int64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case *big.Int:
		if v == nil {
			return nil, errors.TypeMismatch(errors.PhaseLower, nil, "(*big.Int)(nil)", target.String())
		}
		return new(big.Int).Set(v), nil
	case bool:
		if v {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	}

	if ix, ok := value.(boundary.Indexer); ok {
		n := ix.Index()
		if n == nil {
			return nil, errors.InvalidData(errors.PhaseLower, nil, "index protocol returned nil")
		}
		return new(big.Int).Set(n), nil
	}

	return nil, errors.TypeMismatch(errors.PhaseLower, nil, limits.TypeName(value), target.String())
}

// checkRange verifies n against target's closed [min, max] interval.
func checkRange(n *big.Int, target Descriptor) error {
	min, max := limits.IntRange(target.Bits(), target.Signed())
	if n.Cmp(min) < 0 || n.Cmp(max) > 0 {
		return errors.OutOfRange(errors.PhaseLower, nil, n.String(), target.String())
	}
	return nil
}

func lowerInt(value any, target Descriptor) (*big.Int, error) {
	n, err := exactInt(value, target)
	if err != nil {
		return nil, err
	}
	if err := checkRange(n, target); err != nil {
		return nil, err
	}
	return n, nil
}

// I8 converts a caller value to a signed 8-bit integer.
func I8(value any) (int8, error) {
	n, err := lowerInt(value, DescI8)
	if err != nil {
		return 0, err
	}
	return int8(n.Int64()), nil
}

// I16 converts a caller value to a signed 16-bit integer.
func I16(value any) (int16, error) {
	n, err := lowerInt(value, DescI16)
	if err != nil {
		return 0, err
	}
	return int16(n.Int64()), nil
}

// I32 converts a caller value to a signed 32-bit integer.
func I32(value any) (int32, error) {
	n, err := lowerInt(value, DescI32)
	if err != nil {
		return 0, err
	}
	return int32(n.Int64()), nil
}

// I64 converts a caller value to a signed 64-bit integer.
func I64(value any) (int64, error) {
	n, err := lowerInt(value, DescI64)
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// U8 converts a caller value to an unsigned 8-bit integer.
func U8(value any) (uint8, error) {
	n, err := lowerInt(value, DescU8)
	if err != nil {
		return 0, err
	}
	return uint8(n.Uint64()), nil
}

// U16 converts a caller value to an unsigned 16-bit integer.
func U16(value any) (uint16, error) {
	n, err := lowerInt(value, DescU16)
	if err != nil {
		return 0, err
	}
	return uint16(n.Uint64()), nil
}

// U32 converts a caller value to an unsigned 32-bit integer.
func U32(value any) (uint32, error) {
	n, err := lowerInt(value, DescU32)
	if err != nil {
		return 0, err
	}
	return uint32(n.Uint64()), nil
}

// U64 converts a caller value to an unsigned 64-bit integer.
func U64(value any) (uint64, error) {
	n, err := lowerInt(value, DescU64)
	if err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}
