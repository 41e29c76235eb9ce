// SPDX-License-Identifier: MIT

package dists

import (
	"math"

	"github.com/katalvlaran/lvnum/special"
)

// Poisson counts events with mean rate Lambda. Lambda == 0 is the point mass at 0.
type Poisson struct {
	Lambda float64
}

// NewPoisson returns a validated Poisson.
func NewPoisson(lambda float64) (Poisson, error) {
	p := Poisson{Lambda: lambda}
	if !p.Valid() {
		return Poisson{}, distsErrorf("NewPoisson", ErrInvalidParameter)
	}

	return p, nil
}

// Valid reports whether 0 ≤ Lambda < ∞.
func (p Poisson) Valid() bool { return p.Lambda >= 0 && !math.IsInf(p.Lambda, 1) }

// PMF returns P(X = k). Non-integer k has probability 0.
func (p Poisson) PMF(k float64) float64 {
	if !p.Valid() || math.IsNaN(k) {
		return nan
	}
	if k < 0 || !isInt(k) {
		return 0
	}
	if p.Lambda == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}

	return math.Exp(p.LogPMF(k))
}

// LogPMF returns ln P(X = k).
func (p Poisson) LogPMF(k float64) float64 {
	if !p.Valid() || math.IsNaN(k) {
		return nan
	}
	if k < 0 || !isInt(k) || p.Lambda == 0 {
		return math.Log(p.PMF(k))
	}

	return k*math.Log(p.Lambda) - p.Lambda - special.LnFactorial(k)
}

// CDF returns P(X ≤ x).
func (p Poisson) CDF(x float64) float64 {
	if !p.Valid() || math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return 0
	}
	if p.Lambda == 0 || math.IsInf(x, 1) {
		return 1
	}

	return special.GammaIncUpper(math.Floor(x)+1, p.Lambda)
}

// Quantile returns the smallest integer k with CDF(k) ≥ q. The search
// starts from the Cornish–Fisher normal approximation.
func (p Poisson) Quantile(q float64) float64 {
	if !p.Valid() || badProb(q) {
		return nan
	}
	if p.Lambda == 0 || q == 0 {
		return 0
	}
	if q == 1 {
		return math.Inf(1)
	}
	sd := math.Sqrt(p.Lambda)
	z := stdNormalQuantile(q)
	k := math.Max(0, math.Floor(p.Lambda+sd*(z+(z*z-1)/(6*sd))))
	for i := 0; i < maxQuantIts && k > 0 && p.CDF(k-1) >= q; i++ {
		k--
	}
	for i := 0; i < maxQuantIts && p.CDF(k) < q; i++ {
		k++
	}

	return k
}

// Mean returns λ.
func (p Poisson) Mean() float64 { return p.param(p.Lambda) }

// Median returns ⌊λ + 1/3 − 0.02/λ⌋.
func (p Poisson) Median() float64 {
	if p.Lambda == 0 {
		return p.param(0)
	}

	return p.param(math.Floor(p.Lambda + 1.0/3 - 0.02/p.Lambda))
}

// Mode returns ⌊λ⌋.
func (p Poisson) Mode() float64 { return p.param(math.Floor(p.Lambda)) }

// Variance returns λ.
func (p Poisson) Variance() float64 { return p.param(p.Lambda) }

// Stdev returns √λ.
func (p Poisson) Stdev() float64 { return p.param(math.Sqrt(p.Lambda)) }

// Skewness returns 1/√λ.
func (p Poisson) Skewness() float64 { return p.param(1 / math.Sqrt(p.Lambda)) }

// ExKurtosis returns 1/λ.
func (p Poisson) ExKurtosis() float64 { return p.param(1 / p.Lambda) }

func (p Poisson) param(v float64) float64 {
	if !p.Valid() {
		return nan
	}

	return v
}
