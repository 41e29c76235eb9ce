// SPDX-License-Identifier: MIT

package dists

import "math"

// Continuous is satisfied by every continuous distribution in the package.
type Continuous interface {
	PDF(x float64) float64
	LogPDF(x float64) float64
	CDF(x float64) float64
	Quantile(p float64) float64
	Mean() float64
	Variance() float64
	Stdev() float64
}

// Discrete is satisfied by every discrete distribution in the package.
type Discrete interface {
	PMF(k float64) float64
	LogPMF(k float64) float64
	CDF(x float64) float64
	Quantile(p float64) float64
	Mean() float64
	Variance() float64
	Stdev() float64
}

var (
	_ Continuous = Normal{}
	_ Continuous = LogNormal{}
	_ Continuous = Exponential{}
	_ Continuous = Gamma{}
	_ Continuous = Beta{}
	_ Continuous = Uniform{}
	_ Continuous = Laplace{}
	_ Continuous = Cauchy{}
	_ Continuous = Logistic{}
	_ Continuous = Weibull{}
	_ Continuous = ChiSquared{}
	_ Discrete   = Bernoulli{}
	_ Discrete   = Poisson{}
	_ Discrete   = Geometric{}
)

const (
	ln2Pi       = 1.8378770664093453 // ln(2π)
	eulerGamma  = 0.5772156649015329
	sqrt2       = math.Sqrt2
	invSqrt2Pi  = 0.3989422804014327 // 1/√(2π)
	maxQuantIts = 1 << 20
)

var nan = math.NaN()

// badProb reports whether p is not a probability.
func badProb(p float64) bool {
	return math.IsNaN(p) || p < 0 || p > 1
}

// isInt reports whether k is a finite integer value.
func isInt(k float64) bool {
	return k == math.Trunc(k) && !math.IsInf(k, 0)
}

// stdNormalQuantile returns Φ⁻¹(p).
func stdNormalQuantile(p float64) float64 {
	return -sqrt2 * math.Erfcinv(2*p)
}
