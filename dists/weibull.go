// SPDX-License-Identifier: MIT

package dists

import "math"

// Weibull is the Weibull distribution with shape K and scale Lambda.
type Weibull struct {
	K      float64
	Lambda float64
}

// NewWeibull returns a validated Weibull.
func NewWeibull(k, lambda float64) (Weibull, error) {
	w := Weibull{K: k, Lambda: lambda}
	if !w.Valid() {
		return Weibull{}, distsErrorf("NewWeibull", ErrInvalidParameter)
	}

	return w, nil
}

// Valid reports whether both parameters are positive and finite.
func (w Weibull) Valid() bool {
	return w.K > 0 && w.Lambda > 0 && !math.IsInf(w.K, 1) && !math.IsInf(w.Lambda, 1)
}

// PDF returns the density at x.
func (w Weibull) PDF(x float64) float64 {
	if !w.Valid() || math.IsNaN(x) {
		return nan
	}
	switch {
	case x < 0:
		return 0
	case x == 0:
		switch {
		case w.K < 1:
			return math.Inf(1)
		case w.K == 1:
			return 1 / w.Lambda
		default:
			return 0
		}
	}
	z := x / w.Lambda

	return w.K / w.Lambda * math.Pow(z, w.K-1) * math.Exp(-math.Pow(z, w.K))
}

// LogPDF returns the log density at x.
func (w Weibull) LogPDF(x float64) float64 {
	if !w.Valid() || math.IsNaN(x) {
		return nan
	}
	if x <= 0 {
		return math.Log(w.PDF(x))
	}
	z := x / w.Lambda

	return math.Log(w.K/w.Lambda) + (w.K-1)*math.Log(z) - math.Pow(z, w.K)
}

// CDF returns P(X ≤ x).
func (w Weibull) CDF(x float64) float64 {
	if !w.Valid() || math.IsNaN(x) {
		return nan
	}
	if x <= 0 {
		return 0
	}

	return -math.Expm1(-math.Pow(x/w.Lambda, w.K))
}

// Quantile returns the inverse CDF at p.
func (w Weibull) Quantile(p float64) float64 {
	if !w.Valid() || badProb(p) {
		return nan
	}

	return w.Lambda * math.Pow(-math.Log1p(-p), 1/w.K)
}

// g returns Γ(1 + n/K).
func (w Weibull) g(n float64) float64 { return math.Gamma(1 + n/w.K) }

// Mean returns λΓ(1+1/k).
func (w Weibull) Mean() float64 { return w.param(w.Lambda * w.g(1)) }

// Median returns λ(ln 2)^(1/k).
func (w Weibull) Median() float64 { return w.param(w.Lambda * math.Pow(math.Ln2, 1/w.K)) }

// Mode returns λ((k−1)/k)^(1/k) for k > 1 and 0 otherwise.
func (w Weibull) Mode() float64 {
	if w.K <= 1 {
		return w.param(0)
	}

	return w.param(w.Lambda * math.Pow((w.K-1)/w.K, 1/w.K))
}

// Variance returns λ²(Γ(1+2/k) − Γ(1+1/k)²).
func (w Weibull) Variance() float64 {
	g1 := w.g(1)
	return w.param(w.Lambda * w.Lambda * (w.g(2) - g1*g1))
}

// Stdev returns the standard deviation.
func (w Weibull) Stdev() float64 { return math.Sqrt(w.Variance()) }

// Skewness returns the third standardized moment.
func (w Weibull) Skewness() float64 {
	g1, g2, g3 := w.g(1), w.g(2), w.g(3)
	v := g2 - g1*g1

	return w.param((g3 - 3*g1*v - g1*g1*g1) / math.Pow(v, 1.5))
}

// ExKurtosis returns the excess kurtosis.
func (w Weibull) ExKurtosis() float64 {
	g1, g2, g3, g4 := w.g(1), w.g(2), w.g(3), w.g(4)
	v := g2 - g1*g1
	num := -6*g1*g1*g1*g1 + 12*g1*g1*g2 - 3*g2*g2 - 4*g1*g3 + g4

	return w.param(num / (v * v))
}

// Entropy returns γ(1−1/k) + ln(λ/k) + 1 in nats.
func (w Weibull) Entropy() float64 {
	return w.param(eulerGamma*(1-1/w.K) + math.Log(w.Lambda/w.K) + 1)
}

func (w Weibull) param(v float64) float64 {
	if !w.Valid() {
		return nan
	}

	return v
}
