// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (e.g. invalid option arguments).
//
// Conventions:
//   - Never wrap one sentinel inside another; pick the most specific one.
//   - Kernels surface sentinels through validators; facades add an operation
//     tag on top (see matrixErrorf), so call sites read "Cholesky: matrix: ...".

package matrix

import "errors"

var (
	// ErrNilMatrix reports a nil Matrix argument or receiver.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOutOfRange reports an index outside [0, rows) × [0, cols).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions reports a non-positive requested dimension.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch reports incompatible operand shapes, a non-square
	// input where a square one is required, or a vector whose length
	// disagrees with the matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf reports a non-finite value rejected by the active
	// validation policy (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf not allowed")

	// ErrSingular reports a zero pivot encountered during LU or Inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry reports |A[i,j]-A[j,i]| > eps for some pair i < j.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNotPositiveDefinite reports a matrix rejected by the
	// positive-definiteness certifier (first non-positive pivot residual).
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrMatrixEigenFailed reports Jacobi sweeps that did not converge
	// within the iteration cap.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")
)
