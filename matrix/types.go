// SPDX-License-Identifier: MIT

// Package matrix: the capability surface every kernel consumes.
// This file intentionally contains ONLY the public Matrix interface; the
// canonical Dense implementation, errors and options live in dedicated
// files (impl_dense.go, errors.go, options.go) per the global conventions.
package matrix

// Matrix is the minimal abstraction over a two-dimensional float64 grid.
// Implementations must keep Rows/Cols stable for the lifetime of the value
// and must fail loudly (with a sentinel error) on out-of-range access —
// silent clamping is not allowed.
//
// Every kernel in this package accepts any Matrix; the concrete *Dense
// unlocks flat fast-paths, all other implementations run the At/Set
// fallback with identical results.
type Matrix interface {
	// Rows returns the number of rows (≥ 0).
	Rows() int

	// Cols returns the number of columns (≥ 0).
	Cols() int

	// At returns the element at (i, j), or an error matching ErrOutOfRange
	// when the index falls outside the matrix bounds.
	At(i, j int) (float64, error)

	// Set stores v at (i, j). It reports ErrOutOfRange on bad indices and
	// may additionally enforce a NaN/Inf write policy (see Dense).
	Set(i, j int, v float64) error

	// Clone returns a deep, independent copy of the receiver.
	Clone() Matrix
}
