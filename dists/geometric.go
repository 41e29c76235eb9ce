// SPDX-License-Identifier: MIT

package dists

import "math"

// Geometric counts the failures before the first success in Bernoulli(P)
// trials; its support is {0, 1, 2, ...}.
type Geometric struct {
	P float64
}

// NewGeometric returns a validated Geometric.
func NewGeometric(p float64) (Geometric, error) {
	g := Geometric{P: p}
	if !g.Valid() {
		return Geometric{}, distsErrorf("NewGeometric", ErrInvalidParameter)
	}

	return g, nil
}

// Valid reports whether 0 < P ≤ 1.
func (g Geometric) Valid() bool { return g.P > 0 && g.P <= 1 }

// PMF returns P(X = k) = P(1−P)^k.
func (g Geometric) PMF(k float64) float64 {
	if !g.Valid() || math.IsNaN(k) {
		return nan
	}
	if k < 0 || !isInt(k) {
		return 0
	}

	return math.Exp(g.LogPMF(k))
}

// LogPMF returns ln P(X = k).
func (g Geometric) LogPMF(k float64) float64 {
	if !g.Valid() || math.IsNaN(k) {
		return nan
	}
	if k < 0 || !isInt(k) {
		return math.Inf(-1)
	}
	if k == 0 {
		return math.Log(g.P)
	}

	return math.Log(g.P) + k*math.Log1p(-g.P)
}

// CDF returns P(X ≤ x) = 1 − (1−P)^(⌊x⌋+1).
func (g Geometric) CDF(x float64) float64 {
	if !g.Valid() || math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return 0
	}
	if math.IsInf(x, 1) || g.P == 1 {
		return 1
	}

	return -math.Expm1((math.Floor(x) + 1) * math.Log1p(-g.P))
}

// Quantile returns the smallest integer k with CDF(k) ≥ r.
func (g Geometric) Quantile(r float64) float64 {
	if !g.Valid() || badProb(r) {
		return nan
	}
	if g.P == 1 || r == 0 {
		return 0
	}
	if r == 1 {
		return math.Inf(1)
	}
	k := math.Ceil(math.Log1p(-r)/math.Log1p(-g.P) - 1 - 1e-12)

	return math.Max(k, 0)
}

// Mean returns (1−P)/P.
func (g Geometric) Mean() float64 { return g.param((1 - g.P) / g.P) }

// Median returns ⌈−1/log₂(1−P)⌉ − 1.
func (g Geometric) Median() float64 {
	if g.P == 1 {
		return g.param(0)
	}

	return g.param(math.Ceil(-1/math.Log2(1-g.P)) - 1)
}

// Mode returns 0.
func (g Geometric) Mode() float64 { return g.param(0) }

// Variance returns (1−P)/P².
func (g Geometric) Variance() float64 { return g.param((1 - g.P) / (g.P * g.P)) }

// Stdev returns √(1−P)/P.
func (g Geometric) Stdev() float64 { return math.Sqrt(g.Variance()) }

// Skewness returns (2−P)/√(1−P).
func (g Geometric) Skewness() float64 { return g.param((2 - g.P) / math.Sqrt(1-g.P)) }

// ExKurtosis returns 6 + P²/(1−P).
func (g Geometric) ExKurtosis() float64 { return g.param(6 + g.P*g.P/(1-g.P)) }

// Entropy returns (−(1−P)ln(1−P) − P ln P)/P in nats.
func (g Geometric) Entropy() float64 {
	return g.param((-xlogx(1-g.P) - xlogx(g.P)) / g.P)
}

func (g Geometric) param(v float64) float64 {
	if !g.Valid() {
		return nan
	}

	return v
}
