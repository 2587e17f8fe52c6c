// Package lvlinear is your in-memory toolkit for dense linear algebra —
// from core matrix primitives to factorizations, statistics and
// positive-definiteness certification.
//
// 🚀 What is lvlinear?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Core primitives: dense row-major matrices with strict validation
//		• Arithmetic: Add, Sub, Scale, Mul, Transpose, MatVec
//		• Factorizations: Cholesky (A = L·Lᵀ), LU, QR, Eigen (Jacobi)
//		• Certification: symmetry and positive-definiteness predicates
//		• Solvers: CholeskySolve, CholeskyInverse, CholeskyDet
//		• Statistics: covariance, correlation, column centering
//
// ✨ Why choose lvlinear?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, bit-for-bit reproducible results
//   - Pure Go – no cgo, no hidden deps
//   - Fail-fast – sentinel errors and strict shape validation everywhere
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/        — Dense storage plus every kernel (arithmetic, Cholesky, LU, QR, Eigen, statistics)
//	decomposition/ — one-call decompositors with applicability guards
//
// Quick ASCII example:
//
//	    ⎡4 2⎤            ⎡2  0⎤
//	A = ⎣2 3⎦    →   L = ⎣1 √2⎦    with  A = L·Lᵀ
//
// Next up: pivoted factorizations, banded storage and beyond.
//
//	go get github.com/katalvlaran/lvlinear
package lvlinear
