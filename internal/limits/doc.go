// Package limits holds the bounds tables and low-level validation
// helpers shared by the coercion paths: per-width integer intervals,
// NaN canonicalization, and Unicode scalar value checks.
package limits
