// SPDX-License-Identifier: MIT

// Package matrix - dense factorization kernels: Doolittle LU, Householder QR,
// Jacobi eigendecomposition and LU-based inversion.
//
// All four kernels follow the package conventions: central validators,
// matrixErrorf wrapping at the boundary, a flat fast-path for *Dense and a
// deterministic At/Set fallback for any other Matrix implementation. None of
// them pivots: determinism and reproducibility are preferred over numerical
// stability, which callers own upstream.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opLU      = "LU"
	opQR      = "QR"
	opEigen   = "Eigen"
	opInverse = "Inverse"
)

// LU computes the Doolittle factorization A = L·U with a unit diagonal on L
// and no pivoting.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square); allocate L and U; set diag(L)=1.
//   - Stage 2: for i = 0..n-1, build row i of U, guard the pivot U[i,i],
//     then build column i of L, all in fixed order.
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i] == 0).
//
// Complexity: Time O(n³), Space O(n²).
//
// Notes:
//   - Without pivoting a zero pivot aborts even for invertible inputs
//     (e.g. a permutation matrix); that trade is deliberate.
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	Lraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	Uraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Unit diagonal on L.
	for i := 0; i < n; i++ {
		Lraw.data[i*n+i] = 1.0
	}

	mRaw, useFast := m.(*Dense)
	var (
		i, j, k    int
		sum, pivot float64
	)
	if useFast {
		// Fast path: flat row-major Doolittle sweeps.
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			baseI = i * n
			// Row i of U for j ≥ i.
			for j = i; j < n; j++ {
				sum = ZeroSum
				for k = 0; k < i; k++ {
					sum += Lraw.data[baseI+k] * Uraw.data[k*n+j]
				}
				Uraw.data[baseI+j] = mRaw.data[baseI+j] - sum
			}

			// Zero-pivot guard: deterministic singularity detection.
			pivot = Uraw.data[baseI+i]
			if pivot == ZeroPivot {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Column i of L for j > i.
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += Lraw.data[baseJ+k] * Uraw.data[k*n+i]
				}
				Lraw.data[baseJ+i] = (mRaw.data[baseJ+i] - sum) / pivot
			}
		}

		return Lraw, Uraw, nil
	}

	// Fallback: generic interface path; L and U are local *Dense, only the
	// reads of m go through the interface.
	var a float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += Lraw.data[i*n+k] * Uraw.data[k*n+j]
			}
			if a, err = m.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			Uraw.data[i*n+j] = a - sum
		}

		pivot = Uraw.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += Lraw.data[j*n+k] * Uraw.data[k*n+i]
			}
			if a, err = m.At(j, i); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			Lraw.data[j*n+i] = (a - sum) / pivot
		}
	}

	return Lraw, Uraw, nil
}

// QR computes a Householder-based factorization such that A ≈ Qᵀ · R.
//
// Note the orientation: Q accumulates the raw reflectors, so the identity
// that holds is A ≈ Qᵀ·R, not Q·R. The decomposition package transposes once
// for callers that want the textbook orientation.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square); clone A as the future R;
//     initialize Q to identity.
//   - Stage 2: for k = 0..n-1, build the column reflector from A[k:,k] and
//     apply it to A (forming R) and to Q, skipping zero columns.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: fixed k→{i,j} visitation, no sign canonicalization.
// Complexity: Time O(n³), Space O(n²).
func QR(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	n := m.Rows()

	// Working copy of A (becomes R) and the orthogonal accumulator Q.
	Araw := m.Clone()
	Qraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	for i := 0; i < n; i++ {
		Qraw.data[i*n+i] = 1.0
	}

	Ad, useFast := Araw.(*Dense)

	v := make([]float64, n)   // Householder vector
	buf := make([]float64, n) // fallback read buffer for column updates
	var (
		i, j, k     int
		norm, beta  float64
		alpha, tau  float64
		sum, aik    float64
	)
	for k = 0; k < n; k++ {
		// Norm of the trailing column A[k:n, k].
		norm = NormZero
		if useFast {
			for i = k; i < n; i++ {
				aik = Ad.data[i*n+k]
				norm += aik * aik
			}
		} else {
			for i = k; i < n; i++ {
				if aik, err = Araw.At(i, k); err != nil {
					return nil, nil, matrixErrorf(opQR, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				norm += aik * aik
			}
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue // zero column: nothing to reflect
		}

		// alpha = -sign(A[k,k]) * norm.
		if useFast {
			aik = Ad.data[k*n+k]
		} else {
			if aik, err = Araw.At(k, k); err != nil {
				return nil, nil, matrixErrorf(opQR, fmt.Errorf("At(%d,%d): %w", k, k, err))
			}
		}
		alpha = -math.Copysign(norm, aik)

		// Householder vector v = A[k:,k] - alpha·e_k.
		for i = 0; i < n; i++ {
			v[i] = 0.0
		}
		if useFast {
			for i = k; i < n; i++ {
				v[i] = Ad.data[i*n+k]
			}
		} else {
			for i = k; i < n; i++ {
				if v[i], err = Araw.At(i, k); err != nil {
					return nil, nil, matrixErrorf(opQR, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
			}
		}
		v[k] -= alpha

		// beta = vᵀv; tau = 2/beta. A degenerate reflector is skipped.
		beta = NormZero
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// Apply the reflection to A (accumulating R).
		for j = k; j < n; j++ {
			sum = ZeroSum
			if useFast {
				for i = k; i < n; i++ {
					sum += v[i] * Ad.data[i*n+j]
				}
				for i = k; i < n; i++ {
					Ad.data[i*n+j] -= tau * v[i] * sum
				}
			} else {
				// Read the column once into buf, then write updates back.
				for i = k; i < n; i++ {
					if buf[i], err = Araw.At(i, j); err != nil {
						return nil, nil, matrixErrorf(opQR, fmt.Errorf("At(%d,%d): %w", i, j, err))
					}
					sum += v[i] * buf[i]
				}
				for i = k; i < n; i++ {
					if err = Araw.Set(i, j, buf[i]-tau*v[i]*sum); err != nil {
						return nil, nil, matrixErrorf(opQR, fmt.Errorf("Set(%d,%d): %w", i, j, err))
					}
				}
			}
		}

		// Apply the reflection to Q (always a local *Dense).
		for j = 0; j < n; j++ {
			sum = ZeroSum
			for i = k; i < n; i++ {
				sum += v[i] * Qraw.data[i*n+j]
			}
			for i = k; i < n; i++ {
				Qraw.data[i*n+j] -= tau * v[i] * sum
			}
		}
	}

	// R is the reflected working copy.
	return Qraw, Araw, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi rotations.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol) — nil, non-square or asymmetric
//     inputs fail fast; clone A as the working copy; Q starts as identity.
//   - Stage 2: up to maxIter times, pick the largest |A[p,q]| above the
//     diagonal (fixed i→j scan), compute the rotation (c, s) and apply it
//     to A and Q; stop once the largest off-diagonal drops below tol.
//
// Inputs:
//   - m: symmetric Matrix within tol.
//   - tol: convergence threshold (DefaultEpsilon is a good start).
//   - maxIter: hard cap on rotations (DefaultEigenMaxIter is a good start).
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - Matrix: Q whose columns are the corresponding eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol),
//     ErrAsymmetry, ErrMatrixEigenFailed (no convergence in maxIter).
//
// Determinism: fixed pivot scan and update order; stable across runs.
// Complexity: Time O(maxIter·n²) per sweep scan plus O(n) per rotation;
// Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := m.Rows()
	aRaw := m.Clone()
	qRaw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		qRaw.data[i*n+i] = 1.0
	}

	Ad, useFast := aRaw.(*Dense)

	var (
		iter, i, j, p, q   int
		base               int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		nip, niq           float64
		theta, t, c, s     float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// Pivot search: the largest |A[p,q]| strictly above the diagonal.
		maxOff = NormZero
		if useFast {
			for i = 0; i < n; i++ {
				base = i * n
				for j = i + 1; j < n; j++ {
					off = math.Abs(Ad.data[base+j])
					if off > maxOff {
						maxOff, p, q = off, i, j
					}
				}
			}
		} else {
			for i = 0; i < n; i++ {
				for j = i + 1; j < n; j++ {
					if off, err = aRaw.At(i, j); err != nil {
						return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, j, err))
					}
					off = math.Abs(off)
					if off > maxOff {
						maxOff, p, q = off, i, j
					}
				}
			}
		}

		// Converged: every off-diagonal entry is below tol.
		if maxOff < tol {
			break
		}

		// Rotation parameters from A[p,p], A[q,q], A[p,q].
		if useFast {
			app = Ad.data[p*n+p]
			aqq = Ad.data[q*n+q]
			apq = Ad.data[p*n+q]
		} else {
			if app, err = aRaw.At(p, p); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", p, p, err))
			}
			if aqq, err = aRaw.At(q, q); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", q, q, err))
			}
			if apq, err = aRaw.At(p, q); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", p, q, err))
			}
		}
		if math.Abs(apq) <= tol {
			// Degenerate pivot within tolerance; skip the rotation.
			continue
		}
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Rotate rows/columns p and q of A, keeping symmetry explicit.
		if useFast {
			for i = 0; i < n; i++ {
				if i == p || i == q {
					continue
				}
				aip = Ad.data[i*n+p]
				aiq = Ad.data[i*n+q]
				nip = c*aip - s*aiq
				niq = s*aip + c*aiq
				Ad.data[i*n+p], Ad.data[p*n+i] = nip, nip
				Ad.data[i*n+q], Ad.data[q*n+i] = niq, niq
			}
			Ad.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
			Ad.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
			Ad.data[p*n+q], Ad.data[q*n+p] = 0, 0
		} else {
			for i = 0; i < n; i++ {
				if i == p || i == q {
					continue
				}
				if aip, err = aRaw.At(i, p); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, p, err))
				}
				if aiq, err = aRaw.At(i, q); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, q, err))
				}
				nip = c*aip - s*aiq
				niq = s*aip + c*aiq
				if err = aRaw.Set(i, p, nip); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", i, p, err))
				}
				if err = aRaw.Set(p, i, nip); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", p, i, err))
				}
				if err = aRaw.Set(i, q, niq); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", i, q, err))
				}
				if err = aRaw.Set(q, i, niq); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", q, i, err))
				}
			}
			if err = aRaw.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", p, p, err))
			}
			if err = aRaw.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", q, q, err))
			}
			if err = aRaw.Set(p, q, 0.0); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", p, q, err))
			}
			if err = aRaw.Set(q, p, 0.0); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", q, p, err))
			}
		}

		// Accumulate the rotation into Q (always a local *Dense).
		for i = 0; i < n; i++ {
			qip = qRaw.data[i*n+p]
			qiq = qRaw.data[i*n+q]
			qRaw.data[i*n+p] = c*qip - s*qiq
			qRaw.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Final convergence check over the whole upper triangle.
	maxOff = NormZero
	if useFast {
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(Ad.data[base+j])
				if off > maxOff {
					maxOff = off
				}
			}
		}
	} else {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off, err = aRaw.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				off = math.Abs(off)
				if off > maxOff {
					maxOff = off
				}
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	// Eigenvalues are the diagonal of the rotated working copy.
	eigs := make([]float64, n)
	if useFast {
		for i = 0; i < n; i++ {
			eigs[i] = Ad.data[i*n+i]
		}
	} else {
		var v float64
		for i = 0; i < n; i++ {
			if v, err = aRaw.At(i, i); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, i, err))
			}
			eigs[i] = v
		}
	}

	return eigs, qRaw, nil
}

// Inverse computes A⁻¹ through the unpivoted Doolittle LU factorization,
// solving L·U·x = e_col for every canonical basis column.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square); factor via LU.
//   - Stage 2: per column — forward solve L·y = e_col, back solve U·x = y
//     (guarding each pivot), write x into the result column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (zero pivot), plus
//     anything LU itself reports.
//
// Complexity: Time O(n³), Space O(n²).
//
// Notes:
//   - For symmetric positive-definite inputs prefer CholeskyInverse: half
//     the flops and no pivot anxiety after certification.
//   - If only A⁻¹·b is needed, solve instead of forming the inverse.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	Lmat, Umat, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int
		sum, pivot float64
		y          = make([]float64, n) // forward-substitution workspace
		x          = make([]float64, n) // backward-substitution workspace
	)
	// LU always builds *Dense factors; assert once and solve flat.
	Ld, okL := Lmat.(*Dense)
	Ud, okU := Umat.(*Dense)
	if okL && okU {
		var base int
		for col = 0; col < n; col++ {
			// Forward: L·y = e_col.
			for i = 0; i < n; i++ {
				sum = ZeroSum
				base = i * n
				for k = 0; k < i; k++ {
					sum += Ld.data[base+k] * y[k]
				}
				if i == col {
					y[i] = 1.0 - sum
				} else {
					y[i] = -sum
				}
			}
			// Backward: U·x = y.
			for i = n - 1; i >= 0; i-- {
				sum = ZeroSum
				base = i * n
				for k = i + 1; k < n; k++ {
					sum += Ud.data[base+k] * x[k]
				}
				pivot = Ud.data[base+i]
				if pivot == ZeroPivot {
					return nil, matrixErrorf(opInverse, ErrSingular)
				}
				x[i] = (y[i] - sum) / pivot
			}
			// Column col of the inverse.
			for i = 0; i < n; i++ {
				inv.data[i*n+col] = x[i]
			}
		}

		return inv, nil
	}

	// Fallback: generic interface solves (kept for interface-typed factors).
	var v float64
	for col = 0; col < n; col++ {
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				if v, err = Lmat.At(i, k); err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				if v, err = Umat.At(i, k); err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * x[k]
			}
			if pivot, err = Umat.At(i, i); err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, i, err))
			}
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		for i = 0; i < n; i++ {
			if err = inv.Set(i, col, x[i]); err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("Set(%d,%d): %w", i, col, err))
			}
		}
	}

	return inv, nil
}
