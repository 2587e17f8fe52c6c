// Package decomposition provides a uniform decompositor surface over the
// matrix kernels: one interface, four factorizations, one failure sentinel.
//
// 🚀 What is decomposition?
//
//	Each decompositor answers two questions about a matrix: "may I factor
//	this?" (Applicable) and "what are the factors?" (Decompose). Factors
//	come back as an ordered []matrix.Matrix in the decomposition's
//	conventional order, so callers can range over pipelines of
//	decompositors without caring which one produced the result.
//
// ✨ Implementations:
//   - Cholesky ⇒ {L}:    A = L·Lᵀ, applicable to symmetric positive-definite
//     inputs only — the single surface that enforces the SPD guard
//   - LU       ⇒ {L, U}: Doolittle without pivoting, applicable to square
//   - QR       ⇒ {Q, R}: Householder, Q orthonormal with A ≈ Q·R
//   - Eigen    ⇒ {V, D}: Jacobi, A ≈ V·D·Vᵀ, applicable to symmetric
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/lvlinear/decomposition"
//	    "github.com/katalvlaran/lvlinear/matrix"
//	)
//
//	var d decomposition.MatrixDecompositor = decomposition.Cholesky{}
//	if d.Applicable(a) {
//	    factors, err := d.Decompose(a) // factors[0] is L
//	    ...
//	}
//
// Decompose on an inapplicable input returns ErrNotApplicable (wrapped with
// the operation name); match it with errors.Is.
//
// See examples in example_test.go.
package decomposition
