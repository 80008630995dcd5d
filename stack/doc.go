// Package stack converts between native scalar values and the 64-bit
// core stack slots a WASM-style runtime passes across the boundary.
//
// It is the last hop after coercion: coerce validates a caller value
// into the exact native type, stack packs that native into a slot and
// unpacks it again on the way back. Only scalars have a slot form; text
// travels through linear memory and is out of this package's scope.
package stack
