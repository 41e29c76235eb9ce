// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Sample variance of n strided elements with a degrees-of-freedom
//     correction, in five algorithmic flavours.
//
// Contract (every exported variance kernel):
//   - dof = n − correction. n ≤ 0 or dof ≤ 0 → NaN.
//   - n == 1 or stride == 0 → exactly 0 (NaN for a non-finite element).
//   - Constant finite input yields exactly 0 from every algorithm, whatever
//     rounding the running sums pick up.
//
// Determinism & Performance:
//   - Fixed traversal order, no allocation, float64 accumulation.
//
// Notes:
//   - The unexported cores take skip=true for the NaN-aware variants: they
//     drop non-finite elements and apply the contract to the retained count.

package stats

import "math"

// VariancePN is the two-pass algorithm with Neely's correction term. It is
// the most accurate of the family and the default.
func VariancePN[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return variancePN(n, correction, x, stride, offset, false)
}

// VarianceTK is the one-pass textbook algorithm (Σx² − (Σx)²/N)/dof. It is
// fast but cancels catastrophically when the mean dwarfs the spread.
func VarianceTK[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return varianceTK(n, correction, x, stride, offset, false)
}

// VarianceWD is Welford's one-pass algorithm.
func VarianceWD[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return varianceWD(n, correction, x, stride, offset, false)
}

// VarianceYC is the one-pass Youngs–Cramer algorithm.
func VarianceYC[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return varianceYC(n, correction, x, stride, offset, false)
}

// VarianceCH is the one-pass shifted algorithm that uses the first element as
// a trial mean.
func VarianceCH[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return varianceCH(n, correction, x, stride, offset, false)
}

// Variance is VariancePN.
func Variance[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return variancePN(n, correction, x, stride, offset, false)
}

// finish applies the count-based contract once the retained count is known.
// ok is false when the result is already decided and returned in v.
func finish(count int, correction, first float64) (v float64, ok bool) {
	if count == 0 || float64(count)-correction <= 0 {
		return math.NaN(), false
	}
	if count == 1 {
		return degenerate(first), false
	}

	return 0, true
}

// constantVariance handles stride == 0: n copies of v.
func constantVariance(n int, correction, v float64, skip bool) float64 {
	if skip && !isFinite(v) {
		return math.NaN()
	}
	if float64(n)-correction <= 0 {
		return math.NaN()
	}

	return degenerate(v)
}

func variancePN[F Float](n int, correction float64, x []F, stride, offset int, skip bool) float64 {
	if n <= 0 {
		return math.NaN()
	}
	if stride == 0 {
		return constantVariance(n, correction, float64(x[offset]), skip)
	}

	// Pass 1: mean of the retained elements.
	var sum, first float64
	count := 0
	if skip {
		sum, count, first = finiteSumCount(n, x, stride, offset)
	} else {
		sum, count, first = SumPairwise(n, x, stride, offset), n, float64(x[offset])
	}
	if v, ok := finish(count, correction, first); !ok {
		return v
	}
	fn := float64(count)
	dof := fn - correction
	mu := sum / fn

	// Pass 2: squared deviations plus Neely's first-order correction.
	var m, m2 float64
	constant := true
	ix := offset
	for i := 0; i < n; i++ {
		v := float64(x[ix])
		ix += stride
		if skip && !isFinite(v) {
			continue
		}
		constant = constant && v == first
		d := v - mu
		m += d
		m2 += d * d
	}
	if constant {
		return degenerate(first)
	}

	return m2/dof - (m/fn)*(m/dof)
}

func varianceTK[F Float](n int, correction float64, x []F, stride, offset int, skip bool) float64 {
	if n <= 0 {
		return math.NaN()
	}
	if stride == 0 {
		return constantVariance(n, correction, float64(x[offset]), skip)
	}
	var s, s2, first float64
	count := 0
	constant := true
	ix := offset
	for i := 0; i < n; i++ {
		v := float64(x[ix])
		ix += stride
		if skip && !isFinite(v) {
			continue
		}
		if count == 0 {
			first = v
		}
		constant = constant && v == first
		count++
		s += v
		s2 += v * v
	}
	if v, ok := finish(count, correction, first); !ok {
		return v
	}
	if constant {
		return degenerate(first)
	}

	return (s2 - (s/float64(count))*s) / (float64(count) - correction)
}

func varianceWD[F Float](n int, correction float64, x []F, stride, offset int, skip bool) float64 {
	if n <= 0 {
		return math.NaN()
	}
	if stride == 0 {
		return constantVariance(n, correction, float64(x[offset]), skip)
	}
	var mu, m2, first float64
	count := 0
	ix := offset
	for i := 0; i < n; i++ {
		v := float64(x[ix])
		ix += stride
		if skip && !isFinite(v) {
			continue
		}
		if count == 0 {
			first = v
		}
		count++
		delta := v - mu
		mu += delta / float64(count)
		m2 += delta * (v - mu)
	}
	if v, ok := finish(count, correction, first); !ok {
		return v
	}

	return m2 / (float64(count) - correction)
}

func varianceYC[F Float](n int, correction float64, x []F, stride, offset int, skip bool) float64 {
	if n <= 0 {
		return math.NaN()
	}
	if stride == 0 {
		return constantVariance(n, correction, float64(x[offset]), skip)
	}
	var sum, m2, first float64
	count := 0
	constant := true
	ix := offset
	for i := 0; i < n; i++ {
		v := float64(x[ix])
		ix += stride
		if skip && !isFinite(v) {
			continue
		}
		count++
		if count == 1 {
			first, sum = v, v
			continue
		}
		constant = constant && v == first
		sum += v
		k := float64(count)
		d := k*v - sum
		m2 += d * d / (k * (k - 1))
	}
	if v, ok := finish(count, correction, first); !ok {
		return v
	}
	if constant {
		return degenerate(first)
	}

	return m2 / (float64(count) - correction)
}

func varianceCH[F Float](n int, correction float64, x []F, stride, offset int, skip bool) float64 {
	if n <= 0 {
		return math.NaN()
	}
	if stride == 0 {
		return constantVariance(n, correction, float64(x[offset]), skip)
	}
	var m, m2, first float64
	count := 0
	ix := offset
	for i := 0; i < n; i++ {
		v := float64(x[ix])
		ix += stride
		if skip && !isFinite(v) {
			continue
		}
		if count == 0 {
			first = v
		}
		count++
		d := v - first
		m += d
		m2 += d * d
	}
	if v, ok := finish(count, correction, first); !ok {
		return v
	}
	fn := float64(count)
	dof := fn - correction

	return m2/dof - (m/fn)*(m/dof)
}

// finiteSumCount returns the compensated sum of the finite elements, their
// count, and the first of them.
func finiteSumCount[F Float](n int, x []F, stride, offset int) (sum float64, count int, first float64) {
	var c float64
	ix := offset
	for i := 0; i < n; i++ {
		v := float64(x[ix])
		ix += stride
		if !isFinite(v) {
			continue
		}
		if count == 0 {
			first = v
		}
		count++
		t := sum + v
		if math.Abs(sum) >= math.Abs(v) {
			c += (sum - t) + v
		} else {
			c += (v - t) + sum
		}
		sum = t
	}

	return sum + c, count, first
}
