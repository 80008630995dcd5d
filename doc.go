// Package boundary provides value coercion and validation at a foreign
// function boundary.
//
// It accepts dynamically typed caller values and converts them into the
// fixed-width numeric, floating-point, and text representations a
// statically typed runtime on the other side of the boundary expects,
// rejecting anything that does not fit with a classified error.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct
// responsibilities:
//
//	boundary/            Root package with the source-value protocols
//	├── coerce/          The coercion engine: integers, floats, text
//	├── stack/           Core-stack slot lowering and lifting
//	├── bind/            Per-signature entry points for scaffolding layers
//	├── meta/            Interface contract version and checksums
//	└── errors/          Structured error types with a stable taxonomy
//
// # Quick Start
//
// Convert a caller value into a fixed-width native value:
//
//	v, err := coerce.U8(300)       // fails: value_out_of_range
//	v, err = coerce.U8(255)        // uint8(255)
//	f, err := coerce.F64(true)     // float64(1)
//	s, err := coerce.Text("愛")     // "愛", verified well-formed
//
// Or dispatch dynamically on a target descriptor:
//
//	out, err := coerce.Convert(value, coerce.DescU32)
//
// # Coercion Rules
//
// Integer targets accept exact integers (all native integer types and
// *big.Int), booleans (0/1), and values implementing Indexer. Floats are
// rejected for integer targets even when integral-valued; this
// strictness is deliberate. Float targets accept floats, booleans, exact
// integers (IEEE widening, precision loss allowed), and values
// implementing Floater. Text targets accept strings and rune slices and
// verify that the text is well-formed with no unpaired surrogate code
// points.
//
// # Error Classification
//
// Every failure is either a type mismatch (the source kind is not
// accepted for the target) or a domain violation (accepted kind, value
// outside the representable range, or malformed text). The errors
// package exposes both categories programmatically:
//
//	[lower] value_out_of_range: target u8 - value 256 does not fit
//	[lower] type_mismatch: Go type float64, target u8
//
// # Thread Safety
//
// Every conversion is a pure function over its inputs. All packages are
// safe for unsynchronized concurrent use.
package boundary
