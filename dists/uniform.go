// SPDX-License-Identifier: MIT

package dists

import "math"

// Uniform is the continuous uniform distribution on [Min, Max].
type Uniform struct {
	Min float64
	Max float64
}

// NewUniform returns a validated Uniform.
func NewUniform(lo, hi float64) (Uniform, error) {
	u := Uniform{Min: lo, Max: hi}
	if !u.Valid() {
		return Uniform{}, distsErrorf("NewUniform", ErrInvalidParameter)
	}

	return u, nil
}

// Valid reports whether Min < Max and both are finite.
func (u Uniform) Valid() bool {
	return u.Min < u.Max && !math.IsInf(u.Min, -1) && !math.IsInf(u.Max, 1)
}

// PDF returns the density at x.
func (u Uniform) PDF(x float64) float64 {
	if !u.Valid() || math.IsNaN(x) {
		return nan
	}
	if x < u.Min || x > u.Max {
		return 0
	}

	return 1 / (u.Max - u.Min)
}

// LogPDF returns the log density at x.
func (u Uniform) LogPDF(x float64) float64 {
	if !u.Valid() || math.IsNaN(x) {
		return nan
	}
	if x < u.Min || x > u.Max {
		return math.Inf(-1)
	}

	return -math.Log(u.Max - u.Min)
}

// CDF returns P(X ≤ x).
func (u Uniform) CDF(x float64) float64 {
	if !u.Valid() || math.IsNaN(x) {
		return nan
	}
	switch {
	case x <= u.Min:
		return 0
	case x >= u.Max:
		return 1
	}

	return (x - u.Min) / (u.Max - u.Min)
}

// Quantile returns the inverse CDF at p.
func (u Uniform) Quantile(p float64) float64 {
	if !u.Valid() || badProb(p) {
		return nan
	}

	return u.Min + p*(u.Max-u.Min)
}

// Mean returns the midpoint.
func (u Uniform) Mean() float64 { return u.param(0.5 * (u.Min + u.Max)) }

// Median returns the midpoint.
func (u Uniform) Median() float64 { return u.Mean() }

// Mode returns the midpoint; every point of the support is a mode.
func (u Uniform) Mode() float64 { return u.Mean() }

// Variance returns (Max−Min)²/12.
func (u Uniform) Variance() float64 {
	w := u.Max - u.Min
	return u.param(w * w / 12)
}

// Stdev returns (Max−Min)/√12.
func (u Uniform) Stdev() float64 { return math.Sqrt(u.Variance()) }

// Skewness returns 0.
func (u Uniform) Skewness() float64 { return u.param(0) }

// ExKurtosis returns −6/5.
func (u Uniform) ExKurtosis() float64 { return u.param(-1.2) }

// Entropy returns ln(Max−Min) in nats.
func (u Uniform) Entropy() float64 { return u.param(math.Log(u.Max - u.Min)) }

func (u Uniform) param(v float64) float64 {
	if !u.Valid() {
		return nan
	}

	return v
}
