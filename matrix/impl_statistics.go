// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms (column centering, covariance,
//     correlation) as deterministic compositions over the canonical kernels
//     (Mul/Transpose/Scale) and the ew* micro-kernels.
//   - Feed the Cholesky pipeline: a sample covariance matrix is the natural
//     symmetric positive-(semi)definite input for factorization and solving.
//
// Exposed API (thin facades live in api.go):
//   - CenterColumns(X) -> (Xc, means)  // subtract per-column means
//   - Covariance(X)    -> (C, means)   // unbiased sample covariance (r-1)
//   - Correlation(X)   -> R            // z-score covariance; degenerate → 0
//
// Conventions:
//   - X holds observations in rows, variables in columns (r × c).
//   - Sample statistics need at least two observations; fewer rows fail with
//     ErrDimensionMismatch. A zero-column X degenerates to a 0×0 result.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// colMeans computes the per-column means of x (requires rows ≥ 1).
func colMeans(x Matrix) ([]float64, error) {
	rows, cols := x.Rows(), x.Cols()
	means := make([]float64, cols)

	// Fast path: accumulate row by row over the backing slice.
	if dx, ok := x.(*Dense); ok {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				means[j] += dx.data[base+j]
			}
		}
	} else {
		var (
			i, j int
			v    float64
			err  error
		)
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if v, err = x.At(i, j); err != nil {
					return nil, err
				}
				means[j] += v
			}
		}
	}

	inv := 1.0 / float64(rows)
	for j := range means {
		means[j] *= inv
	}

	return means, nil
}

// centerColumns returns a copy of x with every column shifted to zero mean,
// plus the subtracted means. Backbone of covariance and correlation.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (no observations).
func centerColumns(x Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	if x.Rows() < 1 {
		return nil, nil, matrixErrorf(opCenterColumns, ErrDimensionMismatch)
	}

	means, err := colMeans(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	xc, err := ewBroadcastSubCols(x, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return xc, means, nil
}

// covariance computes the unbiased sample covariance C = Xcᵀ·Xc / (r-1)
// together with the per-column means.
//
// The composition Mul(Transpose(Xc), Xc) makes C symmetric bit-for-bit:
// entries (i,j) and (j,i) accumulate the same products in the same order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (fewer than 2 observations).
// Edge: a zero-column input yields a 0×0 matrix and empty means.
func covariance(x Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if x.Cols() == 0 {
		empty, err := newDenseZeroOK(0, 0)
		if err != nil {
			return nil, nil, matrixErrorf(opCovariance, err)
		}

		return empty, []float64{}, nil
	}
	rows := x.Rows()
	if rows < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	xc, means, err := centerColumns(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	xct, err := Transpose(xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	prod, err := Mul(xct, xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(prod, 1.0/float64(rows-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// correlation computes the sample correlation matrix by z-scoring the
// columns of x and taking the covariance of the result.
//
// Degenerate (zero-variance) columns get a zero scaling factor, so their
// correlation row and column — including the diagonal — are exactly zero
// rather than NaN.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (fewer than 2 observations).
func correlation(x Matrix) (Matrix, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	if x.Cols() == 0 {
		empty, err := newDenseZeroOK(0, 0)
		if err != nil {
			return nil, matrixErrorf(opCorrelation, err)
		}

		return empty, nil
	}
	rows, cols := x.Rows(), x.Cols()
	if rows < 2 {
		return nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	xcRaw, _, err := centerColumns(x)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	xc := xcRaw.(*Dense) // centerColumns always builds a fresh *Dense

	// Per-column standard deviation from the centered data, then the
	// inverse factors; a zero std keeps its factor at zero.
	factors := make([]float64, cols)
	var (
		i, j  int
		v     float64
		sumSq float64
		std   float64
	)
	for j = 0; j < cols; j++ {
		sumSq = ZeroSum
		for i = 0; i < rows; i++ {
			v = xc.data[i*cols+j]
			sumSq += v * v
		}
		std = math.Sqrt(sumSq / float64(rows-1))
		if std > zeroTol {
			factors[j] = 1.0 / std
		}
	}

	z, err := ewScaleCols(xc, factors)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	zt, err := Transpose(z)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	prod, err := Mul(zt, z)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	corr, err := Scale(prod, 1.0/float64(rows-1))
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}

	return corr, nil
}
