package boundary

import "math/big"

// Indexer is implemented by caller-defined values that declare an exact
// integer equivalent. It is the boundary's analogue of an operator
// overload: a value implementing Indexer is accepted anywhere an exact
// integer is, for every integer target width.
//
// Index must be deterministic and lossless. The returned integer is not
// retained; implementations may hand out a shared value, the coercer
// copies before use.
type Indexer interface {
	Index() *big.Int
}

// Floater is implemented by caller-defined values that declare a
// floating-point equivalent. A value implementing Floater is accepted
// for both float target widths.
type Floater interface {
	Float() float64
}
