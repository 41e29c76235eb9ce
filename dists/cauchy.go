// SPDX-License-Identifier: MIT

package dists

import "math"

// Cauchy is the Lorentz distribution with location X0 and scale Gamma.
// Its mean and higher moments do not exist and are reported as NaN.
type Cauchy struct {
	X0    float64
	Gamma float64
}

// NewCauchy returns a validated Cauchy.
func NewCauchy(x0, gamma float64) (Cauchy, error) {
	c := Cauchy{X0: x0, Gamma: gamma}
	if !c.Valid() {
		return Cauchy{}, distsErrorf("NewCauchy", ErrInvalidParameter)
	}

	return c, nil
}

// Valid reports whether X0 is finite and 0 < Gamma < ∞.
func (c Cauchy) Valid() bool {
	return !math.IsNaN(c.X0) && !math.IsInf(c.X0, 0) && c.Gamma > 0 && !math.IsInf(c.Gamma, 1)
}

// PDF returns the density at x.
func (c Cauchy) PDF(x float64) float64 {
	if !c.Valid() || math.IsNaN(x) {
		return nan
	}
	z := (x - c.X0) / c.Gamma

	return 1 / (math.Pi * c.Gamma * (1 + z*z))
}

// LogPDF returns the log density at x.
func (c Cauchy) LogPDF(x float64) float64 {
	if !c.Valid() || math.IsNaN(x) {
		return nan
	}
	z := (x - c.X0) / c.Gamma

	return -math.Log(math.Pi*c.Gamma) - math.Log1p(z*z)
}

// CDF returns P(X ≤ x).
func (c Cauchy) CDF(x float64) float64 {
	if !c.Valid() || math.IsNaN(x) {
		return nan
	}

	return 0.5 + math.Atan((x-c.X0)/c.Gamma)/math.Pi
}

// Quantile returns the inverse CDF at p.
func (c Cauchy) Quantile(p float64) float64 {
	if !c.Valid() || badProb(p) {
		return nan
	}
	switch p {
	case 0:
		return math.Inf(-1)
	case 1:
		return math.Inf(1)
	}

	return c.X0 + c.Gamma*math.Tan(math.Pi*(p-0.5))
}

// Mean is undefined and returns NaN.
func (c Cauchy) Mean() float64 { return nan }

// Median returns X0.
func (c Cauchy) Median() float64 { return c.param(c.X0) }

// Mode returns X0.
func (c Cauchy) Mode() float64 { return c.param(c.X0) }

// Variance is undefined and returns NaN.
func (c Cauchy) Variance() float64 { return nan }

// Stdev is undefined and returns NaN.
func (c Cauchy) Stdev() float64 { return nan }

// Skewness is undefined and returns NaN.
func (c Cauchy) Skewness() float64 { return nan }

// Entropy returns ln(4πγ) in nats.
func (c Cauchy) Entropy() float64 { return c.param(math.Log(4 * math.Pi * c.Gamma)) }

func (c Cauchy) param(v float64) float64 {
	if !c.Valid() {
		return nan
	}

	return v
}
