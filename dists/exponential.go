// SPDX-License-Identifier: MIT

package dists

import "math"

// Exponential is the waiting-time distribution with the given Rate (λ).
type Exponential struct {
	Rate float64
}

// NewExponential returns a validated Exponential.
func NewExponential(rate float64) (Exponential, error) {
	e := Exponential{Rate: rate}
	if !e.Valid() {
		return Exponential{}, distsErrorf("NewExponential", ErrInvalidParameter)
	}

	return e, nil
}

// Valid reports whether 0 < Rate < ∞.
func (e Exponential) Valid() bool { return e.Rate > 0 && !math.IsInf(e.Rate, 1) }

// PDF returns the density at x.
func (e Exponential) PDF(x float64) float64 {
	if !e.Valid() || math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return 0
	}

	return e.Rate * math.Exp(-e.Rate*x)
}

// LogPDF returns the log density at x.
func (e Exponential) LogPDF(x float64) float64 {
	if !e.Valid() || math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return math.Inf(-1)
	}

	return math.Log(e.Rate) - e.Rate*x
}

// CDF returns P(X ≤ x).
func (e Exponential) CDF(x float64) float64 {
	if !e.Valid() || math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return 0
	}

	return -math.Expm1(-e.Rate * x)
}

// Quantile returns the inverse CDF at p.
func (e Exponential) Quantile(p float64) float64 {
	if !e.Valid() || badProb(p) {
		return nan
	}

	return -math.Log1p(-p) / e.Rate
}

// Mean returns 1/λ.
func (e Exponential) Mean() float64 { return e.param(1 / e.Rate) }

// Median returns ln2/λ.
func (e Exponential) Median() float64 { return e.param(math.Ln2 / e.Rate) }

// Mode returns 0.
func (e Exponential) Mode() float64 { return e.param(0) }

// Variance returns 1/λ².
func (e Exponential) Variance() float64 { return e.param(1 / (e.Rate * e.Rate)) }

// Stdev returns 1/λ.
func (e Exponential) Stdev() float64 { return e.param(1 / e.Rate) }

// Skewness returns 2.
func (e Exponential) Skewness() float64 { return e.param(2) }

// ExKurtosis returns 6.
func (e Exponential) ExKurtosis() float64 { return e.param(6) }

// Entropy returns 1 − ln λ in nats.
func (e Exponential) Entropy() float64 { return e.param(1 - math.Log(e.Rate)) }

func (e Exponential) param(v float64) float64 {
	if !e.Valid() {
		return nan
	}

	return v
}
