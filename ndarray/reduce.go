// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Whole-array reductions delegating to the stats kernels.
//
// Contract:
//   - One-dimensional float64 and float32 arrays are reduced in place with
//     their own stride and offset; anything else is first gathered through
//     the float64 lane in row-major order.
//   - Complex arrays report ErrUnsupportedDType. Degenerate counts follow
//     the stats conventions (NaN, never an error).

package ndarray

import (
	"github.com/katalvlaran/lvnum/stats"
)

// reduce applies k to a's elements as a strided float vector.
func reduce(op string, a *Array, k func(n int, x []float64, stride, offset int) float64,
	k32 func(n int, x []float32, stride, offset int) float64) (float64, error) {
	if a == nil {
		return 0, ndarrayErrorf(op, ErrNilArray)
	}
	if len(a.shape) == 1 {
		switch s := a.data.(type) {
		case []float64:
			return k(a.shape[0], s, a.strides[0], a.offset), nil
		case []float32:
			return k32(a.shape[0], s, a.strides[0], a.offset), nil
		}
	}
	xs, err := Float64s(a)
	if err != nil {
		return 0, ndarrayErrorf(op, ErrUnsupportedDType)
	}

	return k(len(xs), xs, 1, 0), nil
}

// Sum returns the pairwise sum of a's elements.
func Sum(a *Array) (float64, error) {
	return reduce("Sum", a, stats.SumPairwise[float64], stats.SumPairwise[float32])
}

// Mean returns the arithmetic mean of a's elements (NaN when empty).
func Mean(a *Array) (float64, error) {
	return reduce("Mean", a, stats.Mean[float64], stats.Mean[float32])
}

// Variance returns the variance of a's elements under alg with n-correction
// degrees of freedom.
func Variance(a *Array, correction float64, alg stats.Algorithm) (float64, error) {
	return reduce("Variance", a,
		func(n int, x []float64, stride, offset int) float64 {
			return stats.VarianceWith(alg, n, correction, x, stride, offset)
		},
		func(n int, x []float32, stride, offset int) float64 {
			return stats.VarianceWith(alg, n, correction, x, stride, offset)
		})
}

// Stdev is the square root of Variance.
func Stdev(a *Array, correction float64, alg stats.Algorithm) (float64, error) {
	return reduce("Stdev", a,
		func(n int, x []float64, stride, offset int) float64 {
			return stats.StdevWith(alg, n, correction, x, stride, offset)
		},
		func(n int, x []float32, stride, offset int) float64 {
			return stats.StdevWith(alg, n, correction, x, stride, offset)
		})
}
