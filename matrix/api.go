// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//   - Validation happens in kernels/validators; facades only compose, forward
//     and add the operation tag to errors.

package matrix

import "fmt"

// Operation name constants for the facades below.
const (
	opNewIdentity   = "NewIdentity"
	opNewDenseWith  = "NewDenseWith"
	opCloneMatrix   = "CloneMatrix"
	opZerosLike     = "ZerosLike"
	opIdentityLike  = "IdentityLike"
	opSymmetrize    = "Symmetrize"
	opRowSums       = "RowSums"
	opColSums       = "ColSums"
	opReplaceInfNaN = "ReplaceInfNaN"
	opAllClose      = "AllClose"
)

// NewZeros returns a zero-filled rows×cols Dense. Identical to NewDense;
// the name exists for call sites where the zero content is the point.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns the n×n identity matrix.
//
// Errors: ErrInvalidDimensions (n ≤ 0).
func NewIdentity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1.0
	}

	return d, nil
}

// NewDenseWith builds a Dense from a rectangular [][]float64 payload; the
// shape is taken from the slice (len(data) rows × len(data[0]) columns).
// The payload is copied row by row through SetRow, so the write policy
// applies: pass WithNoValidateNaNInf to admit non-finite values.
//
// Errors:
//   - ErrNilMatrix          (nil data or a nil row).
//   - ErrInvalidDimensions  (no rows or empty first row).
//   - ErrDimensionMismatch  (ragged rows).
//   - ErrNaNInf             (non-finite value under the default policy).
func NewDenseWith(data [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if data == nil {
		return nil, matrixErrorf(opNewDenseWith, ErrNilMatrix)
	}
	rows := len(data)
	if rows == 0 || len(data[0]) == 0 {
		return nil, matrixErrorf(opNewDenseWith, ErrInvalidDimensions)
	}
	cols := len(data[0])

	d, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewDenseWith, err)
	}
	for i, row := range data {
		if row == nil {
			return nil, matrixErrorf(opNewDenseWith, ErrNilMatrix)
		}
		if len(row) != cols {
			return nil, matrixErrorf(opNewDenseWith, ErrDimensionMismatch)
		}
		if err = d.SetRow(i, row); err != nil {
			return nil, matrixErrorf(opNewDenseWith, err)
		}
	}

	return d, nil
}

// CloneMatrix returns a deep copy of m (nil-safe wrapper around Clone).
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCloneMatrix, err)
	}

	return m.Clone(), nil
}

// ZerosLike returns an all-zero matrix with the same shape as m — the
// "blank" counterpart used as private scratch by iterative algorithms.
func ZerosLike(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}
	d, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return d, nil
}

// IdentityLike returns the identity with m's (square) shape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
func IdentityLike(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return NewIdentity(m.Rows())
}

// Symmetrize returns (M + Mᵀ)/2, the nearest symmetric matrix in the
// Frobenius sense. Handy for repairing inputs drifting out of symmetry
// before certification or eigendecomposition.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
func Symmetrize(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	half, err := Scale(sum, 0.5)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	return half, nil
}

// RowSums returns the per-row sums of m as a vector of length Rows().
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	rows, cols := m.Rows(), m.Cols()
	sums := make([]float64, rows)

	if dm, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += dm.data[base+j]
			}
			sums[i] = acc
		}

		return sums, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// ColSums returns the per-column sums of m as a vector of length Cols().
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	rows, cols := m.Rows(), m.Cols()
	sums := make([]float64, cols)

	if dm, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				sums[j] += dm.data[base+j]
			}
		}

		return sums, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sums[j] += v
		}
	}

	return sums, nil
}

// ReplaceInfNaN returns a copy of m with every NaN/±Inf replaced by repl.
// The designated tool for sanitizing a Cholesky factor after a zero pivot.
//
// Errors: ErrNilMatrix, ErrNaNInf (non-finite repl).
func ReplaceInfNaN(m Matrix, repl float64) (Matrix, error) {
	out, err := ewReplaceInfNaN(m, repl)
	if err != nil {
		return nil, matrixErrorf(opReplaceInfNaN, err)
	}

	return out, nil
}

// AllClose reports element-wise closeness: |a-b| ≤ atol + rtol·|b| for all
// entries. The asymmetric rtol·|b| term follows the usual convention of
// treating b as the reference.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tols).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	ok, err := ewAllClose(a, b, rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return ok, nil
}

// CenterColumns subtracts the per-column means; see impl_statistics.go.
func CenterColumns(x Matrix) (Matrix, []float64, error) { return centerColumns(x) }

// Covariance computes the unbiased sample covariance and the column means;
// see impl_statistics.go.
func Covariance(x Matrix) (Matrix, []float64, error) { return covariance(x) }

// Correlation computes the sample correlation matrix; see impl_statistics.go.
func Correlation(x Matrix) (Matrix, error) { return correlation(x) }
