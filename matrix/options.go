// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are consumed by constructors (NewDense, NewConstant, NewIdentity,
//     NewFromRows, NewFromColumns) for the numeric policy, and by Rank for the
//     singular-value cut-off.
//   - Derived matrices (Clone, Transpose, Submatrix, kernels) inherit the numeric
//     policy of their first operand.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllCloseDefault.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	// Off by default: IEEE-754 values (NaN, ±Inf included) are legal matrix content.
	DefaultValidateNaNInf = false

	// DefaultRankTolerance is the "automatic" marker: Rank uses
	// max(rows, cols) * MachineEpsilon * σ_max.
	DefaultRankTolerance = -1.0
)

// MachineEpsilon is the double-precision unit roundoff 2^-52.
const MachineEpsilon = 0x1p-52

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRankTolInvalid = "matrix: WithRankTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	rankTol        float64 // < 0 ⇒ automatic; DefaultRankTolerance
}

// WithEpsilon sets the absolute tolerance used by tolerance-based helpers.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-only enforcement on Set/Apply/SetRow/SetColumn
// and on constructor ingestion. Violations return ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-only enforcement (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRankTolerance fixes the absolute singular-value cut-off used by Rank:
// σ_i counts toward the rank iff σ_i > tol.
// Panics if tol is negative, NaN or Inf.
func WithRankTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Last writer wins.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the resolved absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// RankTolerance reports the fixed rank cut-off, or a negative value for automatic.
func (o Options) RankTolerance() float64 { return o.rankTol }

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		rankTol:        DefaultRankTolerance,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in constructors and decompositions.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
