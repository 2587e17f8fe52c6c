// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/symmetry checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across files.
//  - Use ValidateSymmetric before spectral methods (Jacobi) to fail fast.
//  - Use IsZeroOffDiagonal to short-circuit iterative algorithms when the
//    matrix is already diagonal.
//  - Use ValidateVecLen for any MatVec-like operation to avoid ad hoc length code.

package matrix

import (
	"fmt"
	"math"
)

// zeroTol is the strict zero used by internal guards; kept as a named
// constant to avoid magic numbers inline.
const zeroTol = 0.0

// validatorErrorf wraps an underlying sentinel with the validator tag,
// keeping the labeling of violations consistent across the package.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix when m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are non-nil (compose with ValidateNotNil when unsure).
//
// Returns ErrDimensionMismatch, tagged with the failing axis. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil.
//
// Returns ErrDimensionMismatch when not square. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly length n.
//
// Returns ErrNilMatrix for a nil slice (the unified "nil argument" sentinel)
// and ErrDimensionMismatch on a length disagreement. Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape - composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil - composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateSymmetric checks that m is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i < j.
//
// Inputs: square Matrix m, tolerance tol (negative values are flipped).
// Errors: ErrNilMatrix/ErrDimensionMismatch on structural issues,
// ErrNaNInf on a non-finite tol, ErrAsymmetry on violation.
// Complexity: O(n²) over the strict upper triangle. Space: O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	// Structural gates first: nil, then squareness.
	if m == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSymmetric", ErrDimensionMismatch)
	}
	// A non-finite tolerance is a numeric policy violation.
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if tol < zeroTol {
		// Negative tolerance carries no extra meaning; flip to magnitude.
		tol = -tol
	}

	// A 0×0 or 1×1 matrix is trivially symmetric.
	n := m.Rows()
	if n <= 1 {
		return nil
	}

	// Scan the strict upper triangle in fixed i→j order; the first deviation
	// beyond tol short-circuits the scan.
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // At cannot fail after the shape gate above
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// IsSymmetric is the boolean twin of ValidateSymmetric: it reports whether
// m is square and symmetric within tol, swallowing the structural errors
// (nil and non-square inputs are simply not symmetric).
func IsSymmetric(m Matrix, tol float64) bool {
	return ValidateSymmetric(m, tol) == nil
}

// IsZeroOffDiagonal reports whether max_{i≠j} |A[i,j]| ≤ tol, i.e. the
// matrix is already (near) diagonal. Useful to early-exit Jacobi sweeps and
// to assert the D factor of an eigendecomposition.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (like ValidateSymmetric).
// Complexity: O(n²).
func IsZeroOffDiagonal(m Matrix, tol float64) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if err := ValidateSquare(m); err != nil {
		return false, err
	}
	if isNonFinite(tol) {
		return false, ErrNaNInf
	}
	if tol < zeroTol {
		tol = -tol
	}
	n := m.Rows()
	if n <= 1 {
		return true, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = m.At(i, j)
			if math.Abs(v) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows with non-nil inputs.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
