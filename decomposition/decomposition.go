// SPDX-License-Identifier: MIT

// Package decomposition - the MatrixDecompositor contract and its error
// surface. Concrete decompositors live in their own files (cholesky.go,
// lu.go, qr.go, eigen.go).

package decomposition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinear/matrix"
)

// ErrNotApplicable reports that a matrix fails a decompositor's premises
// (shape, symmetry or definiteness, depending on the decomposition).
var ErrNotApplicable = errors.New("decomposition: matrix is not applicable")

// Operation name constants used in wrapped errors.
const (
	opCholeskyDecompose = "Cholesky.Decompose"
	opLUDecompose       = "LU.Decompose"
	opQRDecompose       = "QR.Decompose"
	opEigenDecompose    = "Eigen.Decompose"
)

// decompErrorf prefixes err with the operation tag, preserving errors.Is/As.
func decompErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// MatrixDecompositor factors a matrix into an ordered collection of factors.
//
// Contract:
//   - Decompose never mutates its input and returns the factors in the
//     decomposition's conventional order (documented per implementation).
//   - Applicable is a pure predicate: no error channel, no mutation, and
//     repeated calls on an unchanged matrix always agree.
//   - Decompose on an inapplicable input fails with a wrapped
//     ErrNotApplicable instead of producing garbage factors.
type MatrixDecompositor interface {
	// Decompose factors m into the decomposition's factor list.
	Decompose(m matrix.Matrix) ([]matrix.Matrix, error)

	// Applicable reports whether m satisfies the decomposition's premises.
	Applicable(m matrix.Matrix) bool
}
