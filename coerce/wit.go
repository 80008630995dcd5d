package coerce

import "go.bytecodealliance.org/wit"

// DescriptorFromWIT maps a WIT primitive type onto a descriptor. Bool,
// char, and compound WIT types have no coercion descriptor and report
// false.
func DescriptorFromWIT(t wit.Type) (Descriptor, bool) {
	switch t.(type) {
	case wit.S8:
		return DescI8, true
	case wit.S16:
		return DescI16, true
	case wit.S32:
		return DescI32, true
	case wit.S64:
		return DescI64, true
	case wit.U8:
		return DescU8, true
	case wit.U16:
		return DescU16, true
	case wit.U32:
		return DescU32, true
	case wit.U64:
		return DescU64, true
	case wit.F32:
		return DescF32, true
	case wit.F64:
		return DescF64, true
	case wit.String:
		return DescText, true
	default:
		return 0, false
	}
}

// WIT returns the WIT primitive type for the descriptor.
func (d Descriptor) WIT() wit.Type {
	switch d {
	case DescI8:
		return wit.S8{}
	case DescI16:
		return wit.S16{}
	case DescI32:
		return wit.S32{}
	case DescI64:
		return wit.S64{}
	case DescU8:
		return wit.U8{}
	case DescU16:
		return wit.U16{}
	case DescU32:
		return wit.U32{}
	case DescU64:
		return wit.U64{}
	case DescF32:
		return wit.F32{}
	case DescF64:
		return wit.F64{}
	case DescText:
		return wit.String{}
	default:
		return nil
	}
}
