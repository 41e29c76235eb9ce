// SPDX-License-Identifier: MIT

package stats

// NaNVariancePN is VariancePN over the finite elements only.
func NaNVariancePN[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return variancePN(n, correction, x, stride, offset, true)
}

// NaNVarianceTK is VarianceTK over the finite elements only.
func NaNVarianceTK[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return varianceTK(n, correction, x, stride, offset, true)
}

// NaNVarianceWD is VarianceWD over the finite elements only.
func NaNVarianceWD[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return varianceWD(n, correction, x, stride, offset, true)
}

// NaNVarianceYC is VarianceYC over the finite elements only.
func NaNVarianceYC[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return varianceYC(n, correction, x, stride, offset, true)
}

// NaNVarianceCH is VarianceCH over the finite elements only.
func NaNVarianceCH[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return varianceCH(n, correction, x, stride, offset, true)
}

// NaNVariance is NaNVariancePN.
func NaNVariance[F Float](n int, correction float64, x []F, stride, offset int) float64 {
	return variancePN(n, correction, x, stride, offset, true)
}
