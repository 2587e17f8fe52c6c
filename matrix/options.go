// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - One canonical source of defaults; facades never hard-code tolerances.
//   - Invalid *programmer* input (NaN epsilon) panics early with a stable
//     message; invalid *data* keeps flowing through the error channel.

package matrix

import "math"

// Numeric defaults applied whenever the caller does not override them.
const (
	// DefaultEpsilon is the comparison tolerance used by symmetry and
	// applicability checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf enables the strict non-finite write policy on
	// freshly constructed matrices.
	DefaultValidateNaNInf = true

	// DefaultEigenMaxIter caps Jacobi sweeps on the default Eigen path.
	DefaultEigenMaxIter = 256
)

// Panic messages for invalid option arguments (programmer errors, not data).
const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite and non-negative"
)

// Options carries every tunable consumed by the numeric facades.
// The zero value is NOT ready to use; obtain one via gatherOptions.
type Options struct {
	epsilon        float64 // comparison tolerance for symmetry/applicability
	validateNaNInf bool    // write policy: reject non-finite values when true
}

// Option mutates a single Options field. The With* constructors below are
// the only public way to produce one.
type Option func(*Options)

// WithEpsilon overrides the comparison tolerance.
// Panics with panicEpsilonInvalid when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.epsilon = eps }
}

// WithValidateNaNInf re-enables the strict non-finite write policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the strict non-finite write policy, letting
// NaN/±Inf flow through Set and SetRow. Useful for pipelines that rely on
// non-finite propagation (e.g. inspecting a factor after a zero pivot).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the canonical defaults; single source of truth.
func defaultOptions() Options {
	return Options{
		epsilon:        DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions folds opts over the defaults and normalizes the result.
// Nil options are skipped so call sites may pass optional setters directly.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	finalizeOptions(&o)
	return o
}

// finalizeOptions normalizes fields that may have bypassed the With*
// constructors (raw Options literals): a non-finite or negative epsilon
// falls back to DefaultEpsilon.
func finalizeOptions(o *Options) {
	if isNonFinite(o.epsilon) || o.epsilon < 0 {
		o.epsilon = DefaultEpsilon
	}
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
