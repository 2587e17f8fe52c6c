// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) to
//     avoid duplicating tight loops across higher-level ops (statistics,
//     sanitizing, comparison).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* kernels are UNEXPORTED (internal micro-kernels); the public
//     surface reaches them through thin facades (api.go, impl_statistics.go).
//   - Kernels return fresh *Dense values and never mutate their inputs.
//   - Validation is the same fail-fast sentinel discipline as everywhere else.

package matrix

import (
	"fmt"
	"math"
)

// ewBroadcastSubCols computes out[i][j] = x[i][j] - sub[j], broadcasting the
// vector across rows. Column centering is the canonical consumer.
//
// Errors: ErrNilMatrix (nil x or sub), ErrDimensionMismatch (len(sub) != cols).
func ewBroadcastSubCols(x Matrix, sub []float64) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, err
	}
	rows, cols := x.Rows(), x.Cols()
	if err := ValidateVecLen(sub, cols); err != nil {
		return nil, err
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	// Fast path: flat walk with a per-row base offset.
	if dx, ok := x.(*Dense); ok {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				out.data[base+j] = dx.data[base+j] - sub[j]
			}
		}

		return out, nil
	}

	// Fallback: generic interface loop.
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = x.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v - sub[j]
		}
	}

	return out, nil
}

// ewScaleCols computes out[i][j] = x[i][j] * f[j], scaling each column by its
// own factor. A zero factor zeroes the whole column, which is exactly how the
// statistics kernels neutralize degenerate (zero-variance) columns.
//
// Errors: ErrNilMatrix (nil x or f), ErrDimensionMismatch (len(f) != cols).
func ewScaleCols(x Matrix, f []float64) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, err
	}
	rows, cols := x.Rows(), x.Cols()
	if err := ValidateVecLen(f, cols); err != nil {
		return nil, err
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	if dx, ok := x.(*Dense); ok {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				out.data[base+j] = dx.data[base+j] * f[j]
			}
		}

		return out, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = x.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v * f[j]
		}
	}

	return out, nil
}

// ewReplaceInfNaN copies x, substituting repl for every NaN and ±Inf.
// The replacement itself must be finite; the output is written through the
// backing slice so the result carries the default strict write policy while
// still being constructible from a poisoned source.
//
// Errors: ErrNilMatrix (nil x), ErrNaNInf (non-finite repl).
func ewReplaceInfNaN(x Matrix, repl float64) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, err
	}
	if isNonFinite(repl) {
		return nil, ErrNaNInf // a non-finite replacement defeats the purpose
	}

	rows, cols := x.Rows(), x.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	if dx, ok := x.(*Dense); ok {
		length := rows * cols
		var v float64
		for idx := 0; idx < length; idx++ {
			v = dx.data[idx]
			if isNonFinite(v) {
				v = repl
			}
			out.data[idx] = v
		}

		return out, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = x.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if isNonFinite(v) {
				v = repl
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// ewAllClose reports whether |a[i,j] - b[i,j]| ≤ atol + rtol·|b[i,j]| holds
// for every element, short-circuiting on the first violation. NaN anywhere
// in the operands fails the comparison (NaN is close to nothing).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite rtol/atol).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, err
	}
	if isNonFinite(atol) || isNonFinite(rtol) {
		return false, ErrNaNInf
	}
	if atol < zeroTol {
		atol = -atol
	}
	if rtol < zeroTol {
		rtol = -rtol
	}

	rows, cols := a.Rows(), a.Cols()

	// Fast path: both *Dense → single flat comparison loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			var av, bv float64
			for idx := 0; idx < length; idx++ {
				av, bv = da.data[idx], db.data[idx]
				if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Fallback: generic interface loop with fixed i→j order.
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
