// SPDX-License-Identifier: MIT
// Package: special
//
// Purpose:
//   - Elementary scalar helpers: sign, primality, factorials, binomial
//     coefficients and the logit/expit pair.
//
// Determinism & Performance:
//   - Factorials up to MaxFactorialArg come from a table built at init.
//   - IsPrime is trial division over 6k±1 and is O(√n).

package special

import "math"

// MaxFactorialArg is the largest n with a finite float64 n!.
const MaxFactorialArg = 170

var factorials = func() [MaxFactorialArg + 1]float64 {
	var t [MaxFactorialArg + 1]float64
	t[0] = 1
	for i := 1; i <= MaxFactorialArg; i++ {
		t[i] = t[i-1] * float64(i)
	}
	return t
}()

// Signum returns -1, 0 or +1 according to the sign of x. Signed zeros are
// returned unchanged and NaN propagates.
func Signum(x float64) float64 {
	switch {
	case math.IsNaN(x), x == 0:
		return x
	case x < 0:
		return -1
	default:
		return 1
	}
}

// IsPrime reports whether n is a prime number.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Factorial returns x! for non-negative integers and Γ(x+1) otherwise.
// Negative integers give NaN; integers above MaxFactorialArg give +Inf.
func Factorial(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x == math.Trunc(x) {
		switch {
		case x < 0:
			return math.NaN()
		case x > MaxFactorialArg:
			return math.Inf(1)
		default:
			return factorials[int(x)]
		}
	}

	return math.Gamma(x + 1)
}

// LnFactorial returns ln(x!) = lnΓ(x+1). Negative integers give NaN.
func LnFactorial(x float64) float64 {
	if math.IsNaN(x) || (x < 0 && x == math.Trunc(x)) {
		return math.NaN()
	}
	if x >= 0 && x <= MaxFactorialArg && x == math.Trunc(x) {
		return math.Log(factorials[int(x)])
	}
	lg, _ := math.Lgamma(x + 1)

	return lg
}

// BinomCoef returns the binomial coefficient C(n, k). Negative n uses the
// identity C(n, k) = (-1)^k C(k-n-1, k). k < 0 gives 0.
func BinomCoef(n, k int64) float64 {
	if k < 0 {
		return 0
	}
	if n < 0 {
		c := BinomCoef(k-n-1, k)
		if k%2 == 1 {
			return -c
		}
		return c
	}
	if k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	if n > 1<<20 {
		return math.Round(math.Exp(LnFactorial(float64(n)) - LnFactorial(float64(k)) - LnFactorial(float64(n-k))))
	}
	res := 1.0
	for i := int64(1); i <= k; i++ {
		res *= float64(n - k + i)
		res /= float64(i)
	}

	return math.Round(res)
}

// Logit returns ln(p/(1-p)). p outside [0, 1] gives NaN.
func Logit(p float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}

	return math.Log(p / (1 - p))
}

// Expit returns the logistic sigmoid 1/(1+e^-x), the inverse of Logit.
func Expit(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}
