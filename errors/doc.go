// Package errors provides structured error types for the ffi-boundary
// library.
//
// Errors are categorized by Phase (which direction of the crossing
// failed) and Kind (error category). The Error type includes rich
// context: argument path, source Go type, target descriptor, offending
// value, and cause chain.
//
// The coercion engine itself only ever produces these kinds:
//
//	type_mismatch        source kind not accepted for the target
//	value_out_of_range   accepted kind, value outside the target domain
//	malformed_text       accepted kind, text not well-formed
//
// (malformed_text is the text path's domain violation; callers that only
// care about the two-way split can use IsTypeMismatch and
// IsDomainViolation.)
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLower, errors.KindTypeMismatch).
//		Path("arg[0]").
//		GoType("string").
//		Target("u32").
//		Detail("cannot convert text to integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseLower, path, "string", "u32")
//	err := errors.OutOfRange(errors.PhaseLower, path, 256, "u8")
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
