// SPDX-License-Identifier: MIT

// Package matrix - Cholesky factorization of symmetric positive-definite
// matrices (A = L·Lᵀ), the positive-definiteness certifier built on the same
// recurrence, the applicability guard composing the two, and the solver /
// inverse / determinant conveniences on top of the factor.
//
// Numerical policy:
//   - The diagonal residual is clamped at zero before the square root, so a
//     boundary positive-semidefinite input yields a zero pivot instead of a
//     square-root domain error.
//   - Divisions by a zero pivot are NOT guarded: the resulting NaN/±Inf
//     propagate into later rows of the factor. The certifier and
//     ReplaceInfNaN are the tools for keeping such factors out of a pipeline.
//   - Fixed j→k→i loop order everywhere; identical inputs give identical bits.

package matrix

import "math"

// Operation name constants for the Cholesky family.
const (
	opCholesky        = "Cholesky"
	opCholeskySolve   = "CholeskySolve"
	opCholeskyInverse = "CholeskyInverse"
	opCholeskyDet     = "CholeskyDet"
)

// choleskyRow fills the sub-diagonal entries of row j and returns the
// diagonal residual d = A[j][j] - Σ_{k<j} L[j][k]².
//
// This one function IS the Cholesky recurrence; the factorizer and the
// certifier differ only in how they store its results and how they react
// to the residual.
//
// Inputs:
//   - lower: flat row-major n×n scratch holding the already-final rows
//     0..j-1 of L (rows ≥ j are ignored).
//   - rowJ: row j's buffer of length n; positions 0..j-1 receive L[j][k].
//   - at: reader for A, abstracting the *Dense fast-path from the generic
//     interface path.
//
// The division by lower[k,k] is deliberately unguarded: a zero pivot sends
// NaN/±Inf into rowJ and, through the residual, into everything after it.
func choleskyRow(lower, rowJ []float64, j, n int, at func(r, c int) (float64, error)) (float64, error) {
	var (
		k, i, base int
		s, d, ajk  float64
		err        error
	)
	for k = 0; k < j; k++ {
		s = ZeroSum
		base = k * n
		for i = 0; i < k; i++ {
			s += lower[base+i] * rowJ[i]
		}
		if ajk, err = at(j, k); err != nil {
			return 0, err
		}
		s = (ajk - s) / lower[base+k]
		rowJ[k] = s
		d += s * s
	}

	ajj, err := at(j, j)
	if err != nil {
		return 0, err
	}

	return ajj - d, nil
}

// denseReader returns the cheapest available element reader for m: direct
// flat indexing for *Dense, the interface At for everything else.
func denseReader(m Matrix) func(r, c int) (float64, error) {
	if dm, ok := m.(*Dense); ok {
		return func(r, c int) (float64, error) { return dm.data[r*dm.c+c], nil }
	}

	return m.At
}

// Cholesky computes the lower-triangular factor L with A = L·Lᵀ.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square); allocate L with the non-finite
//     write policy off, since zero pivots may poison later rows.
//   - Stage 2: for each row j — run choleskyRow in place on L's row j,
//     set L[j][j] = sqrt(max(d, 0)), and explicitly zero the strict upper
//     tail of the row.
//
// Behavior highlights:
//   - A is read-only; L is freshly allocated and owned by the caller.
//   - No mathematical validation happens here: in a correct pipeline the
//     caller gates with CholeskyApplicable first. Feeding a non-SPD matrix
//     is defined behavior — the result is a well-formed lower-triangular
//     matrix whose entries may include clamped zero pivots and the
//     non-finite values divided out of them.
//
// Inputs:
//   - m: square matrix (n×n), assumed symmetric positive-definite; only the
//     diagonal and the sub-diagonal triangle are ever read.
//
// Returns:
//   - Matrix: a new lower-triangular Dense with a non-negative diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (structural only).
//
// Determinism:
//   - Fixed j→k→i traversal; identical inputs give identical bits.
//
// Complexity:
//   - Time O(n³), Space O(n²) for L.
//
// Notes:
//   - sqrt(max(d, 0)) converts the tiny negative residuals of boundary
//     positive-semidefinite inputs into a deterministic zero pivot instead
//     of NaN on the diagonal itself. The unguarded division above may then
//     turn that zero into NaN/±Inf one row later; both effects are part of
//     the documented contract rather than defects.
//
// AI-Hints:
//   - Gate untrusted inputs with CholeskyApplicable(m).
//   - Keep m as *Dense to stay on the flat fast-path.
func Cholesky(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := m.Rows()
	L, err := newDenseWithPolicy(n, n, false)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	at := denseReader(m)
	var (
		j, k int
		d    float64
		rowJ []float64
	)
	for j = 0; j < n; j++ {
		rowJ = L.data[j*n : (j+1)*n] // row j of L, filled in place
		if d, err = choleskyRow(L.data, rowJ, j, n, at); err != nil {
			return nil, matrixErrorf(opCholesky, err)
		}
		rowJ[j] = math.Sqrt(math.Max(d, ZeroPivot))
		for k = j + 1; k < n; k++ {
			rowJ[k] = 0 // keep the strict upper tail exactly zero
		}
	}

	return L, nil
}

// IsPositiveDefinite reports whether m is positive definite by attempting
// the Cholesky recurrence row by row and rejecting at the first
// non-positive diagonal residual.
//
// Implementation:
//   - Stage 1: structural gate — nil, empty or non-square inputs are simply
//     not positive definite; a predicate has no error channel.
//   - Stage 2: run choleskyRow against a private zero scratch. Each
//     candidate row is staged in a buffer obtained via Row and committed
//     back with SetRow only after its residual passes; the first d ≤ 0
//     short-circuits with false.
//
// Behavior highlights:
//   - m is read-only; the scratch factor is discarded on return.
//   - Symmetry is NOT checked here — CholeskyApplicable composes the two
//     predicates. Only the lower triangle and diagonal of m are read, so an
//     asymmetric upper triangle cannot influence the verdict.
//   - Early exit: rows past the first rejection are never processed.
//
// Returns:
//   - bool: true iff every diagonal residual is strictly positive.
//
// Determinism:
//   - Same fixed traversal as Cholesky; repeated calls on an unchanged
//     matrix always agree.
//
// Complexity:
//   - Time O(n³) worst case, less on early exit; Space O(n²) scratch.
//
// Notes:
//   - A NaN residual is not ≤ 0, so rows poisoned by non-finite input keep
//     the recurrence running; such inputs are outside the predicate's
//     contract (finite, symmetric matrices) and are not screened for.
func IsPositiveDefinite(m Matrix) bool {
	if m == nil {
		return false
	}
	n := m.Rows()
	if n == 0 || n != m.Cols() {
		return false // degenerate or rectangular: not positive definite
	}

	scratch, err := newDenseWithPolicy(n, n, false)
	if err != nil {
		return false
	}

	at := denseReader(m)
	var (
		j    int
		d    float64
		rowJ []float64
	)
	for j = 0; j < n; j++ {
		if rowJ, err = scratch.Row(j); err != nil {
			return false
		}
		if d, err = choleskyRow(scratch.data, rowJ, j, n, at); err != nil {
			return false // a broken At makes the input uncertifiable
		}
		if d <= ZeroPivot {
			return false // first non-positive residual: reject immediately
		}
		rowJ[j] = math.Sqrt(math.Max(d, ZeroPivot))
		if err = scratch.SetRow(j, rowJ); err != nil {
			return false
		}
	}

	return true
}

// CholeskyApplicable reports whether m may be handed to Cholesky in a
// correct pipeline: square, symmetric within the configured tolerance, and
// positive definite. The three checks short-circuit left to right, cheapest
// first; the predicate itself never mutates m, so repeated calls agree.
//
// Options:
//   - WithEpsilon overrides the symmetry tolerance (DefaultEpsilon).
func CholeskyApplicable(m Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	if !IsSymmetric(m, o.epsilon) { // covers nil and non-square inputs
		return false
	}

	return IsPositiveDefinite(m)
}

// choleskySolveFactored runs the two triangular substitutions against a
// lower-triangular factor L: forward L·y = b, then backward Lᵀ·x = y.
// Workspaces y and x are caller-owned so multi-column solves can reuse them.
// Assumes a strictly positive diagonal (guaranteed after certification).
func choleskySolveFactored(L Matrix, b, y, x []float64) error {
	n := len(b)
	var (
		i, k int
		sum  float64
	)
	// Fast path: flat substitutions over the backing slice.
	if Ld, ok := L.(*Dense); ok {
		var base int
		for i = 0; i < n; i++ {
			sum = ZeroSum
			base = i * n
			for k = 0; k < i; k++ {
				sum += Ld.data[base+k] * y[k]
			}
			y[i] = (b[i] - sum) / Ld.data[base+i]
		}
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += Ld.data[k*n+i] * x[k] // Lᵀ[i,k] == L[k,i]
			}
			x[i] = (y[i] - sum) / Ld.data[i*n+i]
		}

		return nil
	}

	// Fallback: interface-based substitutions.
	var (
		v   float64
		err error
	)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			if v, err = L.At(i, k); err != nil {
				return err
			}
			sum += v * y[k]
		}
		if v, err = L.At(i, i); err != nil {
			return err
		}
		y[i] = (b[i] - sum) / v
	}
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			if v, err = L.At(k, i); err != nil {
				return err
			}
			sum += v * x[k]
		}
		if v, err = L.At(i, i); err != nil {
			return err
		}
		x[i] = (y[i] - sum) / v
	}

	return nil
}

// CholeskySolve solves A·x = b for a symmetric positive-definite A using
// one factorization and two triangular substitutions.
//
// Implementation:
//   - Stage 1: validate structure (non-nil, square, len(b) == n) and
//     certify positive-definiteness.
//   - Stage 2: factor A = L·Lᵀ, forward-solve L·y = b, back-solve Lᵀ·x = y.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNotPositiveDefinite.
//
// Complexity: O(n³) for the factorization, O(n²) for the solves.
//
// Notes:
//   - Certification guarantees strictly positive pivots, so the
//     substitutions run unguarded.
//   - Solving k right-hand sides? Factor once via Cholesky and reuse the
//     factor; this convenience refactors every call.
func CholeskySolve(m Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCholeskySolve, err)
	}
	if err := ValidateVecLen(b, m.Cols()); err != nil {
		return nil, matrixErrorf(opCholeskySolve, err)
	}
	if !IsPositiveDefinite(m) {
		return nil, matrixErrorf(opCholeskySolve, ErrNotPositiveDefinite)
	}

	L, err := Cholesky(m)
	if err != nil {
		return nil, matrixErrorf(opCholeskySolve, err)
	}

	n := m.Rows()
	y := make([]float64, n)
	x := make([]float64, n)
	if err = choleskySolveFactored(L, b, y, x); err != nil {
		return nil, matrixErrorf(opCholeskySolve, err)
	}

	return x, nil
}

// CholeskyInverse computes A⁻¹ for a symmetric positive-definite A by
// solving L·Lᵀ·x = e_col for every canonical basis column. Prefer it over
// Inverse for SPD inputs: half the arithmetic and certified pivots.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotPositiveDefinite.
// Complexity: Time O(n³), Space O(n²).
func CholeskyInverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCholeskyInverse, err)
	}
	if !IsPositiveDefinite(m) {
		return nil, matrixErrorf(opCholeskyInverse, ErrNotPositiveDefinite)
	}

	L, err := Cholesky(m)
	if err != nil {
		return nil, matrixErrorf(opCholeskyInverse, err)
	}

	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholeskyInverse, err)
	}

	var (
		col, i int
		e      = make([]float64, n) // reusable basis vector
		y      = make([]float64, n)
		x      = make([]float64, n)
	)
	for col = 0; col < n; col++ {
		if col > 0 {
			e[col-1] = 0
		}
		e[col] = 1.0
		if err = choleskySolveFactored(L, e, y, x); err != nil {
			return nil, matrixErrorf(opCholeskyInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// CholeskyDet computes det(A) for a symmetric positive-definite A as the
// squared product of the factor's diagonal: det(A) = (Π L[i][i])².
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotPositiveDefinite.
// Complexity: Time O(n³) (dominated by the factorization).
func CholeskyDet(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCholeskyDet, err)
	}
	if !IsPositiveDefinite(m) {
		return 0, matrixErrorf(opCholeskyDet, ErrNotPositiveDefinite)
	}

	L, err := Cholesky(m)
	if err != nil {
		return 0, matrixErrorf(opCholeskyDet, err)
	}

	n := m.Rows()
	prod := 1.0
	if Ld, ok := L.(*Dense); ok {
		for i := 0; i < n; i++ {
			prod *= Ld.data[i*n+i]
		}
	} else {
		var v float64
		for i := 0; i < n; i++ {
			if v, err = L.At(i, i); err != nil {
				return 0, matrixErrorf(opCholeskyDet, err)
			}
			prod *= v
		}
	}

	return prod * prod, nil
}
