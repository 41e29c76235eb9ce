// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Name the variance algorithms so callers (matrix options, configuration)
//     can select one at run time.

package stats

import (
	"math"
	"strings"
)

// Algorithm selects a variance kernel.
type Algorithm uint8

const (
	// AlgorithmPN selects VariancePN.
	AlgorithmPN Algorithm = iota
	// AlgorithmTK selects VarianceTK.
	AlgorithmTK
	// AlgorithmWD selects VarianceWD.
	AlgorithmWD
	// AlgorithmYC selects VarianceYC.
	AlgorithmYC
	// AlgorithmCH selects VarianceCH.
	AlgorithmCH
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = AlgorithmPN

var algorithmNames = [...]string{"pn", "tk", "wd", "yc", "ch"}

// String returns the short lower-case name ("pn", "wd", ...).
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return "unknown"
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool { return int(a) < len(algorithmNames) }

// ParseAlgorithm maps a short name (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range algorithmNames {
		if name == s {
			return Algorithm(i), nil
		}
	}

	return 0, statsErrorf("ParseAlgorithm", ErrUnknownAlgorithm)
}

// VarianceWith dispatches to the kernel named by alg. An unknown alg yields NaN.
func VarianceWith[F Float](alg Algorithm, n int, correction float64, x []F, stride, offset int) float64 {
	return varianceWith(alg, n, correction, x, stride, offset, false)
}

// NaNVarianceWith is VarianceWith over the finite elements only.
func NaNVarianceWith[F Float](alg Algorithm, n int, correction float64, x []F, stride, offset int) float64 {
	return varianceWith(alg, n, correction, x, stride, offset, true)
}

// StdevWith returns sqrt(VarianceWith).
func StdevWith[F Float](alg Algorithm, n int, correction float64, x []F, stride, offset int) float64 {
	return math.Sqrt(varianceWith(alg, n, correction, x, stride, offset, false))
}

func varianceWith[F Float](alg Algorithm, n int, correction float64, x []F, stride, offset int, skip bool) float64 {
	switch alg {
	case AlgorithmPN:
		return variancePN(n, correction, x, stride, offset, skip)
	case AlgorithmTK:
		return varianceTK(n, correction, x, stride, offset, skip)
	case AlgorithmWD:
		return varianceWD(n, correction, x, stride, offset, skip)
	case AlgorithmYC:
		return varianceYC(n, correction, x, stride, offset, skip)
	case AlgorithmCH:
		return varianceCH(n, correction, x, stride, offset, skip)
	default:
		return math.NaN()
	}
}
