// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering and tolerance checks.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options never change algorithms. Determinant and Inverse always run the
//     cofactor expansion; options only affect Render and ApproxEqual.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of significant digits used when rendering
	// floating elements. Six digits in %g style reproduce the classic
	// iostream output (1.5, -0.5, 1e-07, 0.333333).
	DefaultPrecision = 6

	// ShortestPrecision requests the shortest representation that round-trips.
	ShortestPrecision = -1

	// DefaultEpsilon is the absolute tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultRelTol is the relative tolerance used by ApproxEqual.
	DefaultRelTol = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid    = "matrix: WithRelTol: rtol must be finite, non-negative"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	precision int     // DefaultPrecision; ShortestPrecision allowed
	eps       float64 // >= 0; DefaultEpsilon
	rtol      float64 // >= 0; DefaultRelTol
}

// WithPrecision sets the significant digits used for floating elements in Render.
// Implementation:
//   - Stage 1: validate p >= -1.
//   - Stage 2: return a setter that writes precision into Options.
//
// Notes:
//   - Integral element types always render exactly; precision is ignored.
//   - Use ShortestPrecision (-1) for round-trip exact output.
func WithPrecision(p int) Option {
	if p < ShortestPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithEpsilon sets the absolute tolerance used by ApproxEqual.
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelTol sets the relative tolerance used by ApproxEqual.
// Panics with a stable message when rtol is NaN, ±Inf or negative.
func WithRelTol(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		precision: DefaultPrecision,
		eps:       DefaultEpsilon,
		rtol:      DefaultRelTol,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order; last writer wins.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
