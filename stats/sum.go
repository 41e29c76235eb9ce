// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Strided summation kernels with different accuracy/speed trade-offs.
//
// Contract:
//   - n ≤ 0 returns 0.
//   - stride == 0 returns n*x[offset].
//
// Complexity:
//   - Time O(n). SumPairwise uses O(log n) stack; the others O(1).

package stats

import "math"

// PairwiseBlockSize is the leaf size below which SumPairwise sums directly.
const PairwiseBlockSize = 128

// Sum returns the plain left-to-right sum of n strided elements.
func Sum[F Float](n int, x []F, stride, offset int) float64 {
	if n <= 0 {
		return 0
	}
	if stride == 0 {
		return float64(n) * float64(x[offset])
	}
	s := 0.0
	ix := offset
	for i := 0; i < n; i++ {
		s += float64(x[ix])
		ix += stride
	}

	return s
}

// SumKBN returns the Kahan–Babuška–Neumaier compensated sum.
func SumKBN[F Float](n int, x []F, stride, offset int) float64 {
	if n <= 0 {
		return 0
	}
	if stride == 0 {
		return float64(n) * float64(x[offset])
	}
	s, c := 0.0, 0.0
	ix := offset
	for i := 0; i < n; i++ {
		v := float64(x[ix])
		t := s + v
		if math.Abs(s) >= math.Abs(v) {
			c += (s - t) + v
		} else {
			c += (v - t) + s
		}
		s = t
		ix += stride
	}
	if math.IsInf(s, 0) {
		return s // the compensation is NaN once s overflows
	}

	return s + c
}

// SumPairwise returns the pairwise (cascade) sum. The error grows with
// O(log n) rather than O(n).
func SumPairwise[F Float](n int, x []F, stride, offset int) float64 {
	if n <= 0 {
		return 0
	}
	if stride == 0 {
		return float64(n) * float64(x[offset])
	}

	return sumPairwise(n, x, stride, offset)
}

func sumPairwise[F Float](n int, x []F, stride, offset int) float64 {
	ix := offset
	if n < 8 {
		s := 0.0
		for i := 0; i < n; i++ {
			s += float64(x[ix])
			ix += stride
		}
		return s
	}
	if n <= PairwiseBlockSize {
		var acc [8]float64
		m := n - n%8
		for i := 0; i < m; i += 8 {
			for k := 0; k < 8; k++ {
				acc[k] += float64(x[ix])
				ix += stride
			}
		}
		s := ((acc[0] + acc[1]) + (acc[2] + acc[3])) + ((acc[4] + acc[5]) + (acc[6] + acc[7]))
		for i := m; i < n; i++ {
			s += float64(x[ix])
			ix += stride
		}
		return s
	}
	half := n / 2
	half -= half % 8

	return sumPairwise(half, x, stride, offset) + sumPairwise(n-half, x, stride, offset+half*stride)
}

// NaNSum sums the elements that are not NaN. An input of only NaNs sums to 0.
// Unlike the NaNVariance kernels, ±Inf is kept: it is a valid sum operand, so
// NaNSum of {1, +Inf, NaN} is +Inf.
func NaNSum[F Float](n int, x []F, stride, offset int) float64 {
	s, _ := nanSumCount(n, x, stride, offset)

	return s
}

// nanSumCount returns the compensated sum of the non-NaN elements and their count.
func nanSumCount[F Float](n int, x []F, stride, offset int) (float64, int) {
	if n <= 0 {
		return 0, 0
	}
	if stride == 0 {
		v := float64(x[offset])
		if math.IsNaN(v) {
			return 0, 0
		}
		return float64(n) * v, n
	}
	s, c := 0.0, 0.0
	count := 0
	ix := offset
	for i := 0; i < n; i++ {
		v := float64(x[ix])
		ix += stride
		if math.IsNaN(v) {
			continue
		}
		t := s + v
		if math.Abs(s) >= math.Abs(v) {
			c += (s - t) + v
		} else {
			c += (v - t) + s
		}
		s = t
		count++
	}
	if math.IsInf(s, 0) {
		return s, count
	}

	return s + c, count
}

// Mean returns the arithmetic mean using the pairwise sum, or NaN for n ≤ 0.
func Mean[F Float](n int, x []F, stride, offset int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	if n == 1 || stride == 0 {
		return float64(x[offset])
	}

	return SumPairwise(n, x, stride, offset) / float64(n)
}

// NaNMean returns the mean of the non-NaN elements, or NaN when none remain.
// ±Inf elements are kept, as in NaNSum.
func NaNMean[F Float](n int, x []F, stride, offset int) float64 {
	s, count := nanSumCount(n, x, stride, offset)
	if count == 0 {
		return math.NaN()
	}

	return s / float64(count)
}
