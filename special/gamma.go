// SPDX-License-Identifier: MIT
// Package: special
//
// Purpose:
//   - NaN-returning front ends for gonum's gamma/beta integrals.
//
// Contract:
//   - NaN in any argument gives NaN.
//   - Arguments outside the documented domain give NaN instead of the
//     panic mathext would raise.

package special

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Beta returns the complete beta function B(a, b).
func Beta(a, b float64) float64 { return mathext.Beta(a, b) }

// LnBeta returns ln B(a, b).
func LnBeta(a, b float64) float64 { return mathext.Lbeta(a, b) }

// Digamma returns ψ(x), the logarithmic derivative of Γ.
func Digamma(x float64) float64 { return mathext.Digamma(x) }

// GammaIncLower returns the regularized lower incomplete gamma P(a, x).
// Requires a > 0 and x ≥ 0.
func GammaIncLower(a, x float64) float64 {
	if math.IsNaN(a) || math.IsNaN(x) || a <= 0 || x < 0 {
		return math.NaN()
	}
	if math.IsInf(x, 1) {
		return 1
	}

	return mathext.GammaIncReg(a, x)
}

// GammaIncUpper returns the regularized upper incomplete gamma Q(a, x) = 1 − P(a, x).
func GammaIncUpper(a, x float64) float64 {
	if math.IsNaN(a) || math.IsNaN(x) || a <= 0 || x < 0 {
		return math.NaN()
	}

	return mathext.GammaIncRegComp(a, x)
}

// GammaIncInv returns the x with P(a, x) = p. Requires a > 0 and p in [0, 1].
func GammaIncInv(a, p float64) float64 {
	if math.IsNaN(a) || math.IsNaN(p) || a <= 0 || p < 0 || p > 1 {
		return math.NaN()
	}
	switch p {
	case 0:
		return 0
	case 1:
		return math.Inf(1)
	}

	return mathext.GammaIncRegInv(a, p)
}

// BetaInc returns the regularized incomplete beta I_x(a, b).
// Requires a, b > 0 and x in [0, 1].
func BetaInc(x, a, b float64) float64 {
	if math.IsNaN(x) || math.IsNaN(a) || math.IsNaN(b) || a <= 0 || b <= 0 || x < 0 || x > 1 {
		return math.NaN()
	}

	return mathext.RegIncBeta(a, b, x)
}

// BetaIncInv returns the x with I_x(a, b) = p.
func BetaIncInv(p, a, b float64) float64 {
	if math.IsNaN(p) || math.IsNaN(a) || math.IsNaN(b) || a <= 0 || b <= 0 || p < 0 || p > 1 {
		return math.NaN()
	}

	return mathext.InvRegIncBeta(a, b, p)
}

// Erfcinv returns the inverse complementary error function. x outside
// [0, 2] gives NaN.
func Erfcinv(x float64) float64 { return math.Erfcinv(x) }
