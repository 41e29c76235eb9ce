// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and statistics.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective config.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - validateNaNInf is a per-matrix policy captured at creation (NewDense)
//     and carried by Clone, T and Window.
//   - correction and varianceAlgorithm drive ColumnVariances, ColumnStdevs,
//     Covariance and Correlation; the degrees of freedom are rows-correction.
//   - eps is the degeneracy threshold for Correlation: a column whose sample
//     standard deviation is ≤ eps is treated as constant.
//   - workers bounds the goroutines that reduce columns in parallel; results
//     are bitwise identical for any value.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvnum/stats"
)

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by degeneracy checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and Apply.
	DefaultValidateNaNInf = true
)

// Statistics policy.
const (
	// DefaultCorrection is the degrees-of-freedom adjustment (1 = sample statistics).
	DefaultCorrection = 1.0

	// DefaultVarianceAlgorithm is the stats kernel used for column variances.
	DefaultVarianceAlgorithm = stats.DefaultAlgorithm

	// DefaultWorkers reduces columns sequentially.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicCorrectionInvalid = "matrix: WithCorrection: correction must be finite, non-negative"
	panicAlgorithmInvalid  = "matrix: WithVarianceAlgorithm: unknown algorithm"
	panicWorkersInvalid    = "matrix: WithWorkers: workers must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf

	// statistics policy
	correction        float64         // >= 0; DefaultCorrection
	varianceAlgorithm stats.Algorithm // DefaultVarianceAlgorithm
	workers           int             // >= 1; DefaultWorkers
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by degeneracy checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (default).
//
// Behavior highlights:
//   - Set and Apply reject NaN and ±Inf on matrices created with this policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
//
// Notes:
//   - This flag propagates only on creation; existing matrices are unaffected.
//
// AI-Hints:
//   - Combine with ReplaceInfNaN or Clip if you disable checks.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithCorrection sets the degrees-of-freedom adjustment for column statistics.
// 0 gives population statistics, 1 (default) sample statistics.
//
// Errors:
//   - Panics when correction is negative or non-finite.
func WithCorrection(correction float64) Option {
	if isNonFinite(correction) || correction < 0 {
		panic(panicCorrectionInvalid)
	}

	return func(o *Options) { o.correction = correction }
}

// WithVarianceAlgorithm selects the stats kernel used for column variances.
//
// Errors:
//   - Panics when alg is not a known stats.Algorithm.
//
// AI-Hints:
//   - stats.AlgorithmWD (Welford) is the robust single-pass choice for
//     large-mean data; stats.AlgorithmPN (default) is two-pass.
func WithVarianceAlgorithm(alg stats.Algorithm) Option {
	if !alg.Valid() {
		panic(panicAlgorithmInvalid)
	}

	return func(o *Options) { o.varianceAlgorithm = alg }
}

// WithWorkers sets how many goroutines reduce columns in ColumnVariances,
// ColumnStdevs and Correlation.
//
// Errors:
//   - Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// ---------- Internal resolution ----------

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:               DefaultEpsilon,
		validateNaNInf:    DefaultValidateNaNInf,
		correction:        DefaultCorrection,
		varianceAlgorithm: DefaultVarianceAlgorithm,
		workers:           DefaultWorkers,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters apply in order (last-writer-wins); nil setters are skipped.
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
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
