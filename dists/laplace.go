// SPDX-License-Identifier: MIT

package dists

import "math"

// Laplace is the double-exponential distribution with location Mu and Scale b.
type Laplace struct {
	Mu    float64
	Scale float64
}

// NewLaplace returns a validated Laplace.
func NewLaplace(mu, scale float64) (Laplace, error) {
	l := Laplace{Mu: mu, Scale: scale}
	if !l.Valid() {
		return Laplace{}, distsErrorf("NewLaplace", ErrInvalidParameter)
	}

	return l, nil
}

// Valid reports whether Mu is finite and 0 < Scale < ∞.
func (l Laplace) Valid() bool {
	return !math.IsNaN(l.Mu) && !math.IsInf(l.Mu, 0) && l.Scale > 0 && !math.IsInf(l.Scale, 1)
}

// PDF returns the density at x.
func (l Laplace) PDF(x float64) float64 {
	if !l.Valid() || math.IsNaN(x) {
		return nan
	}

	return math.Exp(-math.Abs(x-l.Mu)/l.Scale) / (2 * l.Scale)
}

// LogPDF returns the log density at x.
func (l Laplace) LogPDF(x float64) float64 {
	if !l.Valid() || math.IsNaN(x) {
		return nan
	}

	return -math.Abs(x-l.Mu)/l.Scale - math.Log(2*l.Scale)
}

// CDF returns P(X ≤ x).
func (l Laplace) CDF(x float64) float64 {
	if !l.Valid() || math.IsNaN(x) {
		return nan
	}
	z := (x - l.Mu) / l.Scale
	if z < 0 {
		return 0.5 * math.Exp(z)
	}

	return 1 - 0.5*math.Exp(-z)
}

// Quantile returns the inverse CDF at p.
func (l Laplace) Quantile(p float64) float64 {
	if !l.Valid() || badProb(p) {
		return nan
	}
	if p < 0.5 {
		return l.Mu + l.Scale*math.Log(2*p)
	}

	return l.Mu - l.Scale*math.Log(2-2*p)
}

// Mean returns Mu.
func (l Laplace) Mean() float64 { return l.param(l.Mu) }

// Median returns Mu.
func (l Laplace) Median() float64 { return l.param(l.Mu) }

// Mode returns Mu.
func (l Laplace) Mode() float64 { return l.param(l.Mu) }

// Variance returns 2b².
func (l Laplace) Variance() float64 { return l.param(2 * l.Scale * l.Scale) }

// Stdev returns √2·b.
func (l Laplace) Stdev() float64 { return l.param(sqrt2 * l.Scale) }

// Skewness returns 0.
func (l Laplace) Skewness() float64 { return l.param(0) }

// ExKurtosis returns 3.
func (l Laplace) ExKurtosis() float64 { return l.param(3) }

// Entropy returns 1 + ln(2b) in nats.
func (l Laplace) Entropy() float64 { return l.param(1 + math.Log(2*l.Scale)) }

func (l Laplace) param(v float64) float64 {
	if !l.Valid() {
		return nan
	}

	return v
}
