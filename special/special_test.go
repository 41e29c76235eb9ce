// SPDX-License-Identifier: MIT

package special_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/special"
	"github.com/stretchr/testify/assert"
)

func TestSignum(t *testing.T) {
	assert.Equal(t, -1.0, special.Signum(-3.2))
	assert.Equal(t, 1.0, special.Signum(1e-300))
	assert.Equal(t, 0.0, special.Signum(0))
	assert.True(t, math.Signbit(special.Signum(math.Copysign(0, -1))))
	assert.True(t, math.IsNaN(special.Signum(math.NaN())))
	assert.Equal(t, 1.0, special.Signum(math.Inf(1)))
}

func TestIsPrime(t *testing.T) {
	var primes []int64
	for n := int64(-5); n < 50; n++ {
		if special.IsPrime(n) {
			primes = append(primes, n)
		}
	}
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}, primes)
	assert.True(t, special.IsPrime(2147483647))
	assert.False(t, special.IsPrime(25))
	assert.False(t, special.IsPrime(1_000_000_007*3))
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, 1.0, special.Factorial(0))
	assert.Equal(t, 120.0, special.Factorial(5))
	assert.Equal(t, 3628800.0, special.Factorial(10))
	assert.True(t, math.IsInf(special.Factorial(171), 1))
	assert.False(t, math.IsInf(special.Factorial(170), 0))
	assert.True(t, math.IsNaN(special.Factorial(-2)))
	assert.InDelta(t, math.Sqrt(math.Pi)/2, special.Factorial(0.5), 1e-14)

	assert.InDelta(t, math.Log(120), special.LnFactorial(5), 1e-14)
	lg, _ := math.Lgamma(1001)
	assert.InDelta(t, lg, special.LnFactorial(1000), 1e-9)
	assert.True(t, math.IsNaN(special.LnFactorial(-1)))
}

func TestBinomCoef(t *testing.T) {
	assert.Equal(t, 10.0, special.BinomCoef(5, 2))
	assert.Equal(t, 1.0, special.BinomCoef(7, 0))
	assert.Equal(t, 1.0, special.BinomCoef(7, 7))
	assert.Equal(t, 0.0, special.BinomCoef(3, 5))
	assert.Equal(t, 0.0, special.BinomCoef(3, -1))
	assert.Equal(t, 126410606437752.0, special.BinomCoef(50, 25))
	assert.Equal(t, 6.0, special.BinomCoef(-3, 2))
	assert.Equal(t, -10.0, special.BinomCoef(-3, 3))
}

func TestLogitExpit(t *testing.T) {
	assert.Equal(t, 0.0, special.Logit(0.5))
	assert.True(t, math.IsInf(special.Logit(1), 1))
	assert.True(t, math.IsInf(special.Logit(0), -1))
	assert.True(t, math.IsNaN(special.Logit(1.5)))
	for _, x := range []float64{-30, -2, 0, 0.7, 12} {
		assert.InDelta(t, x, special.Logit(special.Expit(x)), 1e-9*math.Max(1, math.Abs(x)))
	}
	assert.Equal(t, 0.5, special.Expit(0))
	assert.Greater(t, special.Expit(-800), -1e-300)
}

func TestGammaBetaIntegrals(t *testing.T) {
	// P(1, x) = 1 − e^{−x}.
	assert.InDelta(t, 1-math.Exp(-2), special.GammaIncLower(1, 2), 1e-14)
	assert.InDelta(t, math.Exp(-2), special.GammaIncUpper(1, 2), 1e-14)
	assert.InDelta(t, 2.0, special.GammaIncInv(1, 1-math.Exp(-2)), 1e-10)
	assert.Equal(t, 0.0, special.GammaIncInv(3, 0))
	assert.True(t, math.IsInf(special.GammaIncInv(3, 1), 1))
	assert.Equal(t, 1.0, special.GammaIncLower(2, math.Inf(1)))

	// I_x(1, 1) = x.
	assert.InDelta(t, 0.3, special.BetaInc(0.3, 1, 1), 1e-14)
	assert.InDelta(t, 0.3, special.BetaIncInv(0.3, 1, 1), 1e-12)
	// I_x(2, 1) = x².
	assert.InDelta(t, 0.25, special.BetaInc(0.5, 2, 1), 1e-14)

	assert.InDelta(t, 1.0/6, special.Beta(2, 3), 1e-15)
	assert.InDelta(t, math.Log(1.0/6), special.LnBeta(2, 3), 1e-14)
	assert.InDelta(t, -0.5772156649015329, special.Digamma(1), 1e-12)
	assert.InDelta(t, 0.0, special.Erfcinv(1), 1e-15)

	for _, v := range []float64{
		special.GammaIncLower(-1, 2),
		special.GammaIncLower(1, -2),
		special.GammaIncUpper(0, 1),
		special.GammaIncInv(1, 1.5),
		special.GammaIncLower(math.NaN(), 1),
		special.BetaInc(1.5, 1, 1),
		special.BetaInc(0.5, -1, 1),
		special.BetaIncInv(-0.1, 1, 1),
		special.Erfcinv(3),
	} {
		assert.True(t, math.IsNaN(v))
	}
}
