// SPDX-License-Identifier: MIT

package dists

import (
	"math"

	"github.com/katalvlaran/lvnum/special"
)

// Beta is the beta distribution on [0, 1] with shapes Alpha and Beta.
type Beta struct {
	Alpha float64
	Beta  float64
}

// NewBeta returns a validated Beta.
func NewBeta(alpha, beta float64) (Beta, error) {
	b := Beta{Alpha: alpha, Beta: beta}
	if !b.Valid() {
		return Beta{}, distsErrorf("NewBeta", ErrInvalidParameter)
	}

	return b, nil
}

// Valid reports whether both shapes are positive and finite.
func (b Beta) Valid() bool {
	return b.Alpha > 0 && b.Beta > 0 && !math.IsInf(b.Alpha, 1) && !math.IsInf(b.Beta, 1)
}

// edge returns the density at an endpoint whose own shape is s and whose
// opposite shape is o.
func edge(s, o float64) float64 {
	switch {
	case s < 1:
		return math.Inf(1)
	case s == 1:
		return o
	default:
		return 0
	}
}

// PDF returns the density at x.
func (b Beta) PDF(x float64) float64 {
	if !b.Valid() || math.IsNaN(x) {
		return nan
	}
	switch {
	case x < 0 || x > 1:
		return 0
	case x == 0:
		return edge(b.Alpha, b.Beta)
	case x == 1:
		return edge(b.Beta, b.Alpha)
	}

	return math.Exp(b.LogPDF(x))
}

// LogPDF returns the log density at x.
func (b Beta) LogPDF(x float64) float64 {
	if !b.Valid() || math.IsNaN(x) {
		return nan
	}
	if x <= 0 || x >= 1 {
		return math.Log(b.PDF(x))
	}

	return (b.Alpha-1)*math.Log(x) + (b.Beta-1)*math.Log1p(-x) - special.LnBeta(b.Alpha, b.Beta)
}

// CDF returns P(X ≤ x).
func (b Beta) CDF(x float64) float64 {
	if !b.Valid() || math.IsNaN(x) {
		return nan
	}
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}

	return special.BetaInc(x, b.Alpha, b.Beta)
}

// Quantile returns the inverse CDF at p.
func (b Beta) Quantile(p float64) float64 {
	if !b.Valid() || badProb(p) {
		return nan
	}

	return special.BetaIncInv(p, b.Alpha, b.Beta)
}

// Mean returns α/(α+β).
func (b Beta) Mean() float64 { return b.param(b.Alpha / (b.Alpha + b.Beta)) }

// Mode returns (α−1)/(α+β−2) for α, β > 1 and NaN otherwise.
func (b Beta) Mode() float64 {
	if b.Alpha <= 1 || b.Beta <= 1 {
		return nan
	}

	return b.param((b.Alpha - 1) / (b.Alpha + b.Beta - 2))
}

// Variance returns αβ/((α+β)²(α+β+1)).
func (b Beta) Variance() float64 {
	s := b.Alpha + b.Beta
	return b.param(b.Alpha * b.Beta / (s * s * (s + 1)))
}

// Stdev returns the standard deviation.
func (b Beta) Stdev() float64 { return math.Sqrt(b.Variance()) }

// Skewness returns 2(β−α)√(α+β+1)/((α+β+2)√(αβ)).
func (b Beta) Skewness() float64 {
	s := b.Alpha + b.Beta
	return b.param(2 * (b.Beta - b.Alpha) * math.Sqrt(s+1) / ((s + 2) * math.Sqrt(b.Alpha*b.Beta)))
}

// ExKurtosis returns the excess kurtosis.
func (b Beta) ExKurtosis() float64 {
	a, c := b.Alpha, b.Beta
	s := a + c
	num := 6 * ((a-c)*(a-c)*(s+1) - a*c*(s+2))
	return b.param(num / (a * c * (s + 2) * (s + 3)))
}

// Entropy returns the differential entropy in nats.
func (b Beta) Entropy() float64 {
	if !b.Valid() {
		return nan
	}
	a, c := b.Alpha, b.Beta

	return special.LnBeta(a, c) - (a-1)*special.Digamma(a) - (c-1)*special.Digamma(c) + (a+c-2)*special.Digamma(a+c)
}

func (b Beta) param(v float64) float64 {
	if !b.Valid() {
		return nan
	}

	return v
}
