// SPDX-License-Identifier: MIT

package decomposition

import "github.com/katalvlaran/lvlinear/matrix"

// Cholesky decomposes a symmetric positive-definite matrix into {L} with
// A = L·Lᵀ, L lower-triangular with a strictly positive diagonal.
//
// Unlike the bare matrix.Cholesky kernel (which factors whatever it is
// given and lets non-finite values speak for themselves), this surface
// enforces the applicability guard: Decompose refuses anything
// CholeskyApplicable would not certify.
//
// The zero value is ready to use; Eps tunes the symmetry tolerance.
type Cholesky struct {
	// Eps is the symmetry tolerance; any value ≤ 0 (the zero value
	// included) selects matrix.DefaultEpsilon.
	Eps float64
}

var _ MatrixDecompositor = Cholesky{}

// epsilon resolves the effective symmetry tolerance (non-positive or NaN
// fields fall back to the default).
func (c Cholesky) epsilon() float64 {
	if c.Eps > 0 {
		return c.Eps
	}

	return matrix.DefaultEpsilon
}

// Applicable reports whether m is square, symmetric within Eps and positive
// definite — the exact precondition for a meaningful factor.
func (c Cholesky) Applicable(m matrix.Matrix) bool {
	return matrix.CholeskyApplicable(m, matrix.WithEpsilon(c.epsilon()))
}

// Decompose returns {L}.
//
// Errors:
//   - ErrNotApplicable (m failed the guard; wrapped with the op tag).
//
// Complexity: Time O(n³) — one certification pass plus one factorization.
func (c Cholesky) Decompose(m matrix.Matrix) ([]matrix.Matrix, error) {
	if !c.Applicable(m) {
		return nil, decompErrorf(opCholeskyDecompose, ErrNotApplicable)
	}

	l, err := matrix.Cholesky(m)
	if err != nil {
		return nil, decompErrorf(opCholeskyDecompose, err)
	}

	return []matrix.Matrix{l}, nil
}
