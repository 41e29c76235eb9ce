// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Incremental mean/variance (Welford) for streams that do not fit the
//     strided kernels, plus Chan et al.'s pairwise merge so partial results
//     computed independently can be combined.
//
// Contract:
//   - The zero value is an empty accumulator ready for use.
//   - Not safe for concurrent use; merge per-goroutine accumulators instead.
//
// Complexity:
//   - Push and Merge are O(1); PushStrided is O(n).

package stats

import "math"

// Accumulator tracks count, mean and the sum of squared deviations M2.
type Accumulator struct {
	count int
	mean  float64
	m2    float64
}

// Push adds one observation.
func (a *Accumulator) Push(v float64) {
	a.count++
	delta := v - a.mean
	a.mean += delta / float64(a.count)
	a.m2 += delta * (v - a.mean)
}

// PushStrided adds n strided observations from x.
func PushStrided[F Float](a *Accumulator, n int, x []F, stride, offset int) {
	ix := offset
	for i := 0; i < n; i++ {
		a.Push(float64(x[ix]))
		ix += stride
	}
}

// Count returns the number of observations.
func (a *Accumulator) Count() int { return a.count }

// Mean returns the running mean, or NaN when empty.
func (a *Accumulator) Mean() float64 {
	if a.count == 0 {
		return math.NaN()
	}

	return a.mean
}

// Variance returns M2/(count−correction), following the kernel contract:
// NaN when count−correction ≤ 0, and 0 for a single finite observation.
func (a *Accumulator) Variance(correction float64) float64 {
	dof := float64(a.count) - correction
	if a.count == 0 || dof <= 0 {
		return math.NaN()
	}
	if a.count == 1 {
		return degenerate(a.mean)
	}

	return a.m2 / dof
}

// Stdev returns sqrt(Variance(correction)).
func (a *Accumulator) Stdev(correction float64) float64 {
	return math.Sqrt(a.Variance(correction))
}

// Merge folds b into a (Chan, Golub & LeVeque). b is left unchanged.
func (a *Accumulator) Merge(b *Accumulator) {
	if b == nil || b.count == 0 {
		return
	}
	if a.count == 0 {
		*a = *b
		return
	}
	na, nb := float64(a.count), float64(b.count)
	n := na + nb
	delta := b.mean - a.mean
	a.mean += delta * nb / n
	a.m2 += b.m2 + delta*delta*na*nb/n
	a.count += b.count
}

// Reset empties the accumulator.
func (a *Accumulator) Reset() { *a = Accumulator{} }
