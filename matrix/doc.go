// Package matrix provides a dense, row-major float64 matrix with explicit
// error contracts, plus the numeric kernels built on top of it: arithmetic,
// Cholesky/LU/QR/eigen factorizations, linear solvers and basic statistics.
//
// 🚀 What is matrix?
//
//	A small dense linear-algebra core centered on one question: is this
//	matrix symmetric positive definite, and if so, what is its Cholesky
//	factor?  Everything else in the package either feeds that pipeline
//	(covariance/correlation produce SPD candidates) or cross-checks it
//	(LU, QR, eigen, inverse).
//
// ✨ Key features:
//   - Dense storage: flat row-major buffer, O(1) At/Set with bounds errors
//   - Cholesky: A = L·Lᵀ for SPD inputs, lower-triangular L in one pass
//   - Certification: IsPositiveDefinite (trial factorization, no mutation)
//     and CholeskyApplicable (symmetry within eps + positive definiteness)
//   - Solvers: CholeskySolve / CholeskyInverse / CholeskyDet on certified
//     inputs; LU-backed Inverse and Eigen (Jacobi) as general fallbacks
//   - Statistics: column means, centering, covariance and correlation
//   - Numeric policy: NaN/±Inf writes rejected by default, switchable
//     per matrix via options
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlinear/matrix"
//
//	a, _ := matrix.NewDenseWith([][]float64{
//	    {4, 2},
//	    {2, 3},
//	})
//
//	if matrix.CholeskyApplicable(a) {
//	    l, _ := matrix.Cholesky(a)         // [[2,0],[1,√2]]
//	    x, _ := matrix.CholeskySolve(a, b) // A·x = b via L
//	}
//
// Numeric contract:
//
//	Factorizations never guard the pivot division: a zero pivot yields
//	NaN/±Inf in the remaining column and the caller decides (that is what
//	CholeskyApplicable is for). A negative diagonal residual is clamped to
//	zero before the square root, so L never carries NaN on the diagonal
//	from a merely indefinite input.
//
// Performance:
//
//   - Cholesky / IsPositiveDefinite: Time O(n³), Memory O(n²)
//   - CholeskySolve: O(n²) past the factorization
//   - Covariance / Correlation: O(r·c²)
//
// See examples in example_test.go.
package matrix
