// SPDX-License-Identifier: MIT

package stats

import "math"

// StdevPN returns sqrt(VariancePN).
func StdevPN[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return math.Sqrt(VariancePN(n, correction, x, stride, offset))
}

// StdevTK returns sqrt(VarianceTK).
func StdevTK[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return math.Sqrt(VarianceTK(n, correction, x, stride, offset))
}

// StdevWD returns sqrt(VarianceWD).
func StdevWD[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return math.Sqrt(VarianceWD(n, correction, x, stride, offset))
}

// StdevYC returns sqrt(VarianceYC).
func StdevYC[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return math.Sqrt(VarianceYC(n, correction, x, stride, offset))
}

// StdevCH returns sqrt(VarianceCH).
func StdevCH[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return math.Sqrt(VarianceCH(n, correction, x, stride, offset))
}

// Stdev returns sqrt(Variance).
func Stdev[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return math.Sqrt(Variance(n, correction, x, stride, offset))
}

// NaNStdev returns sqrt(NaNVariance).
func NaNStdev[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return math.Sqrt(NaNVariance(n, correction, x, stride, offset))
}
