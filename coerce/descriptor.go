package coerce

// Descriptor identifies the destination representation for a boundary
// crossing: a fixed-width integer, a float width, or text.
type Descriptor uint8

const (
	DescI8 Descriptor = iota
	DescI16
	DescI32
	DescI64
	DescU8
	DescU16
	DescU32
	DescU64
	DescF32
	DescF64
	DescText
)

var descNames = [...]string{
	DescI8:   "i8",
	DescI16:  "i16",
	DescI32:  "i32",
	DescI64:  "i64",
	DescU8:   "u8",
	DescU16:  "u16",
	DescU32:  "u32",
	DescU64:  "u64",
	DescF32:  "f32",
	DescF64:  "f64",
	DescText: "text",
}

func (d Descriptor) String() string {
	if int(d) < len(descNames) {
		return descNames[d]
	}
	return "unknown"
}

// Valid reports whether d is one of the defined descriptors.
func (d Descriptor) Valid() bool {
	return int(d) < len(descNames)
}

// Bits returns the representation width in bits, or 0 for text.
func (d Descriptor) Bits() int {
	switch d {
	case DescI8, DescU8:
		return 8
	case DescI16, DescU16:
		return 16
	case DescI32, DescU32, DescF32:
		return 32
	case DescI64, DescU64, DescF64:
		return 64
	default:
		return 0
	}
}

// Signed reports whether d is a signed integer descriptor.
func (d Descriptor) Signed() bool {
	switch d {
	case DescI8, DescI16, DescI32, DescI64:
		return true
	default:
		return false
	}
}

func (d Descriptor) IsInteger() bool {
	return d <= DescU64
}

func (d Descriptor) IsFloat() bool {
	return d == DescF32 || d == DescF64
}

func (d Descriptor) IsText() bool {
	return d == DescText
}

// Descriptors returns all defined descriptors in declaration order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descNames))
	for i := range out {
		out[i] = Descriptor(i)
	}
	return out
}

// ParseDescriptor resolves a descriptor from its canonical name.
func ParseDescriptor(name string) (Descriptor, bool) {
	for i, n := range descNames {
		if n == name {
			return Descriptor(i), true
		}
	}
	return 0, false
}
