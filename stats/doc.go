// SPDX-License-Identifier: MIT

// Package stats implements strided streaming statistics over flat float
// buffers: sums, means, variances and standard deviations.
//
// Every kernel reads N elements x[offset], x[offset+stride], ... using the
// BLAS-style convention (n, [params...,] x, stride, offset). A negative stride
// walks the buffer backwards from offset; stride 0 repeats x[offset] N times.
// Kernels never allocate and never return errors: domain failures surface as
// NaN results.
//
// Variance algorithms:
//
//	PN  two-pass, Neely's correction term (default)
//	TK  one-pass textbook Σx² − (Σx)²/N
//	WD  one-pass Welford
//	YC  one-pass Youngs–Cramer
//	CH  one-pass with a trial mean (the first element)
//
// Shared edge cases:
//
//	N ≤ 0 or N−correction ≤ 0  → NaN
//	N == 1 or stride == 0      → 0 (NaN when the element itself is not finite)
//
// The NaNVariance* and NaNStdev variants ignore non-finite elements (NaN,
// ±Inf) and apply the same rules to the count of retained elements. NaNSum
// and NaNMean ignore NaN only and let ±Inf through.
//
// Accumulator is the incremental counterpart: Welford updates plus Chan's
// pairwise merge for combining partial results. Summarize builds on it for a
// one-pass descriptive Summary that renders as a text table.
package stats
