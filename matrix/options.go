// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for normalization kernels and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by row-total checks.
	// Percent rows rounded to 6 decimals drift by far less than this.
	DefaultEpsilon = 1e-3

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/AddAt.
	DefaultValidateNaNInf = true

	// DefaultDecimals is the number of decimal places kept by NormalizeRowsPercent.
	DefaultDecimals = 6

	// DefaultScale is the target total of a normalized non-zero row (percentages).
	DefaultScale = 100.0

	// MaxDecimals bounds WithDecimals; float64 carries ~15-17 significant digits.
	MaxDecimals = 15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicDecimalsInvalid = "matrix: WithDecimals: decimals must be in [0, MaxDecimals]"
	panicScaleInvalid    = "matrix: WithScale: scale must be finite and > 0"
)

// Option mutates Options. Constructors MUST panic only on nonsensical values
// (programmer error); kernels never panic.
type Option func(*Options)

// Options is the resolved configuration consumed by kernels. Fields are
// unexported; pass ...Option to a kernel.
type Options struct {
	eps      float64 // DefaultEpsilon
	decimals int     // DefaultDecimals; negative means "do not round"
	scale    float64 // DefaultScale
}

// WithEpsilon sets the absolute tolerance used by row-total checks.
// Panics with a stable message when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDecimals sets how many decimal places normalized values keep.
// Panics when decimals is outside [0, MaxDecimals].
func WithDecimals(decimals int) Option {
	if decimals < 0 || decimals > MaxDecimals {
		panic(panicDecimalsInvalid)
	}

	return func(o *Options) { o.decimals = decimals }
}

// WithNoRounding disables the rounding step of NormalizeRowsPercent.
func WithNoRounding() Option {
	return func(o *Options) { o.decimals = -1 }
}

// WithScale sets the total a normalized non-zero row sums to
// (100 for percentages, 1 for probabilities).
// Panics when scale is non-finite or not strictly positive.
func WithScale(scale float64) Option {
	if isNonFinite(scale) || scale <= 0 {
		panic(panicScaleInvalid)
	}

	return func(o *Options) { o.scale = scale }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:      DefaultEpsilon,
		decimals: DefaultDecimals,
		scale:    DefaultScale,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults
// (last writer wins). This is the canonical internal entry in kernels.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
