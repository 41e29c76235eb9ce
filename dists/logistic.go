// SPDX-License-Identifier: MIT

package dists

import (
	"math"

	"github.com/katalvlaran/lvnum/special"
)

// Logistic is the logistic distribution with location Mu and scale Scale.
type Logistic struct {
	Mu    float64
	Scale float64
}

// NewLogistic returns a validated Logistic.
func NewLogistic(mu, scale float64) (Logistic, error) {
	l := Logistic{Mu: mu, Scale: scale}
	if !l.Valid() {
		return Logistic{}, distsErrorf("NewLogistic", ErrInvalidParameter)
	}

	return l, nil
}

// Valid reports whether Mu is finite and 0 < Scale < ∞.
func (l Logistic) Valid() bool {
	return !math.IsNaN(l.Mu) && !math.IsInf(l.Mu, 0) && l.Scale > 0 && !math.IsInf(l.Scale, 1)
}

// PDF returns the density at x.
func (l Logistic) PDF(x float64) float64 {
	if !l.Valid() || math.IsNaN(x) {
		return nan
	}
	e := math.Exp(-math.Abs(x-l.Mu) / l.Scale)

	return e / (l.Scale * (1 + e) * (1 + e))
}

// LogPDF returns the log density at x.
func (l Logistic) LogPDF(x float64) float64 {
	if !l.Valid() || math.IsNaN(x) {
		return nan
	}
	z := math.Abs(x-l.Mu) / l.Scale

	return -z - math.Log(l.Scale) - 2*math.Log1p(math.Exp(-z))
}

// CDF returns P(X ≤ x).
func (l Logistic) CDF(x float64) float64 {
	if !l.Valid() || math.IsNaN(x) {
		return nan
	}

	return special.Expit((x - l.Mu) / l.Scale)
}

// Quantile returns the inverse CDF at p.
func (l Logistic) Quantile(p float64) float64 {
	if !l.Valid() || badProb(p) {
		return nan
	}

	return l.Mu + l.Scale*special.Logit(p)
}

// Mean returns Mu.
func (l Logistic) Mean() float64 { return l.param(l.Mu) }

// Median returns Mu.
func (l Logistic) Median() float64 { return l.param(l.Mu) }

// Mode returns Mu.
func (l Logistic) Mode() float64 { return l.param(l.Mu) }

// Variance returns s²π²/3.
func (l Logistic) Variance() float64 {
	return l.param(l.Scale * l.Scale * math.Pi * math.Pi / 3)
}

// Stdev returns sπ/√3.
func (l Logistic) Stdev() float64 { return math.Sqrt(l.Variance()) }

// Skewness returns 0.
func (l Logistic) Skewness() float64 { return l.param(0) }

// ExKurtosis returns 6/5.
func (l Logistic) ExKurtosis() float64 { return l.param(1.2) }

// Entropy returns ln s + 2 in nats.
func (l Logistic) Entropy() float64 { return l.param(math.Log(l.Scale) + 2) }

func (l Logistic) param(v float64) float64 {
	if !l.Valid() {
		return nan
	}

	return v
}
