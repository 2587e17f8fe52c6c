// SPDX-License-Identifier: MIT

package decomposition

import "github.com/katalvlaran/lvlinear/matrix"

// LU decomposes a square matrix into {L, U} with A = L·U, L unit
// lower-triangular and U upper-triangular (Doolittle, no pivoting).
type LU struct{}

var _ MatrixDecompositor = LU{}

// Applicable reports whether m is a non-empty square matrix. Squareness is
// the only premise Doolittle states up front; singularity surfaces from
// Decompose as ErrSingular when a pivot vanishes.
func (LU) Applicable(m matrix.Matrix) bool {
	return m != nil && m.Rows() > 0 && m.Rows() == m.Cols()
}

// Decompose returns {L, U}.
//
// Errors:
//   - ErrNotApplicable (non-square or nil input).
//   - matrix.ErrSingular (zero pivot; no pivoting is performed).
func (lu LU) Decompose(m matrix.Matrix) ([]matrix.Matrix, error) {
	if !lu.Applicable(m) {
		return nil, decompErrorf(opLUDecompose, ErrNotApplicable)
	}

	l, u, err := matrix.LU(m)
	if err != nil {
		return nil, decompErrorf(opLUDecompose, err)
	}

	return []matrix.Matrix{l, u}, nil
}
