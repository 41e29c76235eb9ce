// SPDX-License-Identifier: MIT

package dists

import "math"

// Bernoulli is the single-trial distribution on {0, 1} with success probability P.
type Bernoulli struct {
	P float64
}

// NewBernoulli returns a validated Bernoulli.
func NewBernoulli(p float64) (Bernoulli, error) {
	b := Bernoulli{P: p}
	if !b.Valid() {
		return Bernoulli{}, distsErrorf("NewBernoulli", ErrInvalidParameter)
	}

	return b, nil
}

// Valid reports whether P is in [0, 1].
func (b Bernoulli) Valid() bool { return !badProb(b.P) }

// PMF returns P(X = k).
func (b Bernoulli) PMF(k float64) float64 {
	if !b.Valid() || math.IsNaN(k) {
		return nan
	}
	switch k {
	case 0:
		return 1 - b.P
	case 1:
		return b.P
	default:
		return 0
	}
}

// LogPMF returns ln P(X = k).
func (b Bernoulli) LogPMF(k float64) float64 { return math.Log(b.PMF(k)) }

// CDF returns P(X ≤ x).
func (b Bernoulli) CDF(x float64) float64 {
	if !b.Valid() || math.IsNaN(x) {
		return nan
	}
	switch {
	case x < 0:
		return 0
	case x < 1:
		return 1 - b.P
	default:
		return 1
	}
}

// Quantile returns the smallest k in {0, 1} with CDF(k) ≥ p.
func (b Bernoulli) Quantile(p float64) float64 {
	if !b.Valid() || badProb(p) {
		return nan
	}
	if p <= 1-b.P {
		return 0
	}

	return 1
}

// Mean returns P.
func (b Bernoulli) Mean() float64 { return b.param(b.P) }

// Median returns 0 for P ≤ ½ and 1 otherwise.
func (b Bernoulli) Median() float64 {
	if b.P <= 0.5 {
		return b.param(0)
	}

	return b.param(1)
}

// Mode returns 0 for P ≤ ½ and 1 otherwise.
func (b Bernoulli) Mode() float64 { return b.Median() }

// Variance returns P(1−P).
func (b Bernoulli) Variance() float64 { return b.param(b.P * (1 - b.P)) }

// Stdev returns √(P(1−P)).
func (b Bernoulli) Stdev() float64 { return math.Sqrt(b.Variance()) }

// Skewness returns (1−2P)/√(P(1−P)).
func (b Bernoulli) Skewness() float64 {
	return b.param((1 - 2*b.P) / math.Sqrt(b.P*(1-b.P)))
}

// ExKurtosis returns (1−6P(1−P))/(P(1−P)).
func (b Bernoulli) ExKurtosis() float64 {
	pq := b.P * (1 - b.P)
	return b.param((1 - 6*pq) / pq)
}

// Entropy returns −(1−P)ln(1−P) − P ln P in nats.
func (b Bernoulli) Entropy() float64 {
	if !b.Valid() {
		return nan
	}

	return -xlogx(b.P) - xlogx(1-b.P)
}

func (b Bernoulli) param(v float64) float64 {
	if !b.Valid() {
		return nan
	}

	return v
}

// xlogx returns x·ln x with the convention 0·ln 0 = 0.
func xlogx(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x * math.Log(x)
}
