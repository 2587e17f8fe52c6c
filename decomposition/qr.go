// SPDX-License-Identifier: MIT

package decomposition

import "github.com/katalvlaran/lvlinear/matrix"

// QR decomposes a square matrix into {Q, R} with A ≈ Q·R, Q orthonormal and
// R upper-triangular (Householder reflections).
type QR struct{}

var _ MatrixDecompositor = QR{}

// Applicable reports whether m is a non-empty square matrix.
func (QR) Applicable(m matrix.Matrix) bool {
	return m != nil && m.Rows() > 0 && m.Rows() == m.Cols()
}

// Decompose returns {Q, R}.
//
// The matrix.QR kernel accumulates the reflections as the product H_k···H_1,
// i.e. the matrix that maps A to R from the left; the textbook orthonormal
// factor is its transpose, which is what gets returned here so that
// Q·R ≈ A holds directly.
//
// Errors:
//   - ErrNotApplicable (non-square or nil input).
func (qr QR) Decompose(m matrix.Matrix) ([]matrix.Matrix, error) {
	if !qr.Applicable(m) {
		return nil, decompErrorf(opQRDecompose, ErrNotApplicable)
	}

	q, r, err := matrix.QR(m)
	if err != nil {
		return nil, decompErrorf(opQRDecompose, err)
	}
	qt, err := matrix.Transpose(q)
	if err != nil {
		return nil, decompErrorf(opQRDecompose, err)
	}

	return []matrix.Matrix{qt, r}, nil
}
