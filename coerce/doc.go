// Package coerce implements the boundary coercion engine.
//
// Each target descriptor accepts a fixed, ordered list of source kinds
// and rejects everything else with a classified error:
//
//	Target     Accepted sources (in check order)
//	─────────────────────────────────────────────────────────────
//	i8..u64    native integers, *big.Int, bool (0/1), Indexer
//	f32/f64    float64/float32, bool, native integers, *big.Int,
//	           Floater
//	text       string, []rune
//
// Integer targets enforce the closed [min, max] interval for their
// width and signedness exactly: min and max convert, min-1 and max+1
// fail with value_out_of_range. Floats never convert to integer
// targets, not even integral-valued ones.
//
// Float targets have no range failure; any accepted value is
// representable, with IEEE rounding for integers too wide to represent
// exactly. NaN, ±Inf and the sign of zero survive conversion.
//
// Text targets verify well-formedness: no unpaired surrogate code
// points. Malformed text fails with malformed_text rather than
// type_mismatch, since the kind is right but the value is not.
//
// All conversions are pure functions, safe for concurrent use.
package coerce
