package coerce

import (
	"github.com/wippyai/ffi-boundary/errors"
)

// Convert coerces a caller value into the representation named by the
// target descriptor. On success the result is the exact native type for
// that descriptor (int8 for i8, uint64 for u64, float32 for f32, string
// for text, and so on); on failure the error is one of the classified
// kinds from the errors package. No partial or clamped results are ever
// produced.
func Convert(value any, target Descriptor) (any, error) {
	switch target {
	case DescI8:
		return retain(I8(value))
	case DescI16:
		return retain(I16(value))
	case DescI32:
		return retain(I32(value))
	case DescI64:
		return retain(I64(value))
	case DescU8:
		return retain(U8(value))
	case DescU16:
		return retain(U16(value))
	case DescU32:
		return retain(U32(value))
	case DescU64:
		return retain(U64(value))
	case DescF32:
		return retain(F32(value))
	case DescF64:
		return retain(F64(value))
	case DescText:
		return retain(Text(value))
	default:
		return nil, errors.Unsupported(errors.PhaseLower, "descriptor "+target.String())
	}
}

// retain boxes a typed result without letting a typed zero value leak
// through on failure.
func retain[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
