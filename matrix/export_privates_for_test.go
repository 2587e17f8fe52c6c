// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose UNEXPORTED ew*/cholesky* micro-kernels and the internal options
//     snapshot to matrix_test ONLY.
//   - Enable white-box verification of fast-path (*Dense) vs generic fallback,
//     without widening the prod API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds; being in
//     package matrix grants it private access.
//
// Behavior & Determinism:
//   - No allocations beyond what the wrapped functions do.
//   - Deterministic wrappers; no side effects.
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here to avoid clutter across files.
//   - If a private helper changes signature, mirror the change here once, not across many tests.

var (
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
)

// --- ew* micro-kernel bridges -------------------------------------------------

// EwBroadcastSubCols_TestOnly forwards to the private ewBroadcastSubCols kernel.
// Implementation:
//   - Stage 1: Call the private function directly; return its outputs verbatim.
//
// Behavior highlights:
//   - No production API change; test-only surface.
func EwBroadcastSubCols_TestOnly(X Matrix, colMeans []float64) (Matrix, error) {
	return ewBroadcastSubCols(X, colMeans)
}

// EwScaleCols_TestOnly forwards to ewScaleCols.
func EwScaleCols_TestOnly(X Matrix, scale []float64) (Matrix, error) {
	return ewScaleCols(X, scale)
}

// EwReplaceInfNaN_TestOnly forwards to ewReplaceInfNaN.
func EwReplaceInfNaN_TestOnly(X Matrix, val float64) (Matrix, error) {
	return ewReplaceInfNaN(X, val)
}

// EwAllClose_TestOnly forwards to ewAllClose.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// --- cholesky recurrence bridges ------------------------------------------------

// CholeskyRow_TestOnly forwards to choleskyRow, the single recurrence shared
// by the factorizer and the certifier. Tests use it to pin the row contract:
// sub-diagonal entries written into rowJ, residual returned, tail untouched.
func CholeskyRow_TestOnly(lower, rowJ []float64, j, n int, at func(r, c int) (float64, error)) (float64, error) {
	return choleskyRow(lower, rowJ, j, n, at)
}

// CholeskySolveFactored_TestOnly forwards to choleskySolveFactored (forward
// then backward substitution against a lower-triangular factor).
func CholeskySolveFactored_TestOnly(L Matrix, b, y, x []float64) error {
	return choleskySolveFactored(L, b, y, x)
}

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// Purpose:
//   - Allow matrix_test to assert defaults and "last writer wins" semantics
//     without accessing unexported fields directly.
//
// Determinism:
//   - Pure struct copy; no side effects.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
// Implementation:
//   - Stage 1: o := gatherOptions(opts...) // internal constructor
//   - Stage 2: snapshotOf(o)
//
// Notes:
//   - Keep this wrapper in sync if the internal derivation pipeline changes.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:            o.epsilon,
		ValidateNaNInf: o.validateNaNInf,
	}
}
