// SPDX-License-Identifier: MIT

// Package matrix - universal arithmetic kernels on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling and matrix-vector products. All kernels perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Conventions shared by every kernel in this package:
//   - Validate through the central validators; never duplicate guard logic.
//   - Wrap failures once, at the facade boundary, via matrixErrorf(opTag, err).
//   - Offer a flat fast-path for *Dense operands and an At/Set fallback with
//     a fixed i→j (or i→k→j) traversal for any other Matrix implementation.
//   - Never mutate inputs; every kernel returns a freshly allocated Dense.

package matrix

import "fmt"

// NormZero is the additive identity for norm accumulation.
const NormZero = 0.0

// ZeroSum is the initial value for dot-product style accumulators.
const ZeroSum = 0.0

// ZeroPivot is the sentinel compared against diagonal pivots in the
// factorization kernels (LU, Inverse, Cholesky).
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error for errors.Is/As. Call only with err != nil; wrapping a nil cause
// would manufacture a non-nil error out of nothing.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b element-wise for sign ∈ {+1, -1}.
// Shared backend of Add and Sub: one validation, one allocation, one
// fast-path. Inputs are never mutated.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: both *Dense → one flat loop over the backing slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c) time and space; the *Dense path is bandwidth-bound.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c) time and space; the *Dense path is bandwidth-bound.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate non-nil operands and the inner dimension
//     (A.Cols == B.Rows); allocate C.
//   - Stage 2: *Dense×*Dense runs i→k→j with row-major strides, skipping
//     zero A[i,k]; anything else runs the fixed i→j→k interface loop.
//
// Inputs:
//   - a: left operand (r × n).
//   - b: right operand (n × c).
//
// Returns:
//   - Matrix: new Dense C of shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders; identical inputs give identical bits.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k     int
		av, bv, acc float64
	)
	// Fast path: both operands *Dense → flat row-major triple loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var baseA, baseB, baseR int
			for i = 0; i < aRows; i++ {
				baseA = i * aCols
				baseR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[baseA+k]
					if av == 0 {
						continue // zero row entry contributes nothing
					}
					baseB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[baseR+j] += av * db.data[baseB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is never mutated; the *Dense path copies via flat indexing.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	// Fast path: data[i*cols+j] → res.data[j*rows+i].
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// NaN/±Inf in alpha propagate into the result (the result Dense is written
// through its backing slice, not through the policy-guarded Set).
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: flat multiply over the backing slice.
	if dm, ok := m.(*Dense); ok {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop writing the backing slice directly,
	// so a non-finite alpha scales any Matrix implementation alike.
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast path: *Dense performs one flat pass per row.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast path: flat row-major dot products.
	if d, ok := m.(*Dense); ok {
		var (
			i, j, base int
			acc, xv    float64
		)
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot products via At.
	var (
		i, j int
		mv   float64
		err  error
	)
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
