// SPDX-License-Identifier: MIT

package dists

import "math"

// Normal is the Gaussian distribution with mean Mu and standard deviation
// Sigma. Sigma == 0 is the point mass at Mu.
type Normal struct {
	Mu    float64
	Sigma float64
}

// NewNormal returns a validated Normal.
func NewNormal(mu, sigma float64) (Normal, error) {
	n := Normal{Mu: mu, Sigma: sigma}
	if !n.Valid() {
		return Normal{}, distsErrorf("NewNormal", ErrInvalidParameter)
	}

	return n, nil
}

// Valid reports whether Mu is finite and 0 ≤ Sigma < ∞.
func (n Normal) Valid() bool {
	return !math.IsNaN(n.Mu) && !math.IsInf(n.Mu, 0) && n.Sigma >= 0 && !math.IsInf(n.Sigma, 1)
}

// PDF returns the density at x.
func (n Normal) PDF(x float64) float64 {
	if !n.Valid() || math.IsNaN(x) {
		return nan
	}
	if n.Sigma == 0 {
		if x == n.Mu {
			return math.Inf(1)
		}
		return 0
	}
	z := (x - n.Mu) / n.Sigma

	return invSqrt2Pi / n.Sigma * math.Exp(-0.5*z*z)
}

// LogPDF returns the log density at x.
func (n Normal) LogPDF(x float64) float64 {
	if !n.Valid() || math.IsNaN(x) {
		return nan
	}
	if n.Sigma == 0 {
		if x == n.Mu {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	z := (x - n.Mu) / n.Sigma

	return -0.5*z*z - math.Log(n.Sigma) - 0.5*ln2Pi
}

// CDF returns P(X ≤ x).
func (n Normal) CDF(x float64) float64 {
	if !n.Valid() || math.IsNaN(x) {
		return nan
	}
	if n.Sigma == 0 {
		if x < n.Mu {
			return 0
		}
		return 1
	}

	return 0.5 * math.Erfc(-(x-n.Mu)/(n.Sigma*sqrt2))
}

// Quantile returns the inverse CDF at p.
func (n Normal) Quantile(p float64) float64 {
	if !n.Valid() || badProb(p) {
		return nan
	}
	if n.Sigma == 0 {
		return n.Mu
	}

	return n.Mu + n.Sigma*stdNormalQuantile(p)
}

// Mean returns Mu.
func (n Normal) Mean() float64 { return n.param(n.Mu) }

// Median returns Mu.
func (n Normal) Median() float64 { return n.param(n.Mu) }

// Mode returns Mu.
func (n Normal) Mode() float64 { return n.param(n.Mu) }

// Variance returns Sigma².
func (n Normal) Variance() float64 { return n.param(n.Sigma * n.Sigma) }

// Stdev returns Sigma.
func (n Normal) Stdev() float64 { return n.param(n.Sigma) }

// Skewness returns 0.
func (n Normal) Skewness() float64 { return n.param(0) }

// ExKurtosis returns 0.
func (n Normal) ExKurtosis() float64 { return n.param(0) }

// Entropy returns ½ln(2πeσ²) in nats.
func (n Normal) Entropy() float64 {
	return n.param(0.5*(ln2Pi+1) + math.Log(n.Sigma))
}

func (n Normal) param(v float64) float64 {
	if !n.Valid() {
		return nan
	}

	return v
}
