// SPDX-License-Identifier: MIT

package decomposition

import "github.com/katalvlaran/lvlinear/matrix"

// Eigen decomposes a symmetric matrix into {V, D} with A ≈ V·D·Vᵀ, V
// orthonormal (columns are eigenvectors) and D diagonal (matching
// eigenvalues), via classical Jacobi rotations.
//
// The zero value is ready to use; Eps and MaxIter tune convergence.
type Eigen struct {
	// Eps is both the symmetry tolerance and the off-diagonal convergence
	// threshold; values ≤ 0 select matrix.DefaultEpsilon.
	Eps float64

	// MaxIter caps the number of Jacobi rotations; values ≤ 0 select
	// matrix.DefaultEigenMaxIter.
	MaxIter int
}

var _ MatrixDecompositor = Eigen{}

func (e Eigen) epsilon() float64 {
	if e.Eps > 0 {
		return e.Eps
	}

	return matrix.DefaultEpsilon
}

func (e Eigen) maxIter() int {
	if e.MaxIter > 0 {
		return e.MaxIter
	}

	return matrix.DefaultEigenMaxIter
}

// Applicable reports whether m is a non-empty matrix symmetric within Eps
// (symmetry implies squareness here).
func (e Eigen) Applicable(m matrix.Matrix) bool {
	return m != nil && m.Rows() > 0 && matrix.IsSymmetric(m, e.epsilon())
}

// Decompose returns {V, D}.
//
// D is assembled from the kernel's eigenvalue slice; the values land on the
// diagonal in the kernel's (unsorted) order, matching V's columns.
//
// Errors:
//   - ErrNotApplicable (nil, empty or asymmetric input).
//   - matrix.ErrMatrixEigenFailed (no convergence within MaxIter).
func (e Eigen) Decompose(m matrix.Matrix) ([]matrix.Matrix, error) {
	if !e.Applicable(m) {
		return nil, decompErrorf(opEigenDecompose, ErrNotApplicable)
	}

	vals, v, err := matrix.Eigen(m, e.epsilon(), e.maxIter())
	if err != nil {
		return nil, decompErrorf(opEigenDecompose, err)
	}

	d, err := matrix.NewDense(len(vals), len(vals))
	if err != nil {
		return nil, decompErrorf(opEigenDecompose, err)
	}
	for i, val := range vals {
		if err = d.Set(i, i, val); err != nil {
			return nil, decompErrorf(opEigenDecompose, err)
		}
	}

	return []matrix.Matrix{v, d}, nil
}
