// Package lvnum is your in-memory toolkit for strided numeric arrays:
// element-wise kernels over arbitrary views, data-type tables, streaming
// statistics and probability distributions.
//
// 🚀 What is lvnum?
//
//	A small, deterministic numeric library that brings together:
//		• dtype: data-type tags, safe and same-kind cast tables, promotion
//		• strided: N-ary apply loops over views with any strides (negative too)
//		• ndarray: typed arrays with validation, broadcasting and dtype dispatch
//		• stats: sums, means and five variance algorithms over strided vectors
//		• dists: pdf/cdf/quantile/moments for common distributions
//		• special: the special functions the distributions need
//		• matrix: dense 2-D matrices over strided views, covariance, correlation
//
// ✨ Why choose lvnum?
//
//   - Views, not copies – transpose, reverse, slice and broadcast are O(1)
//   - Predictable numerics – fixed loop orders, documented NaN semantics
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under these subpackages:
//
//	dtype/   — DataType, cast tables (embedded YAML), Promote
//	strided/ — View, shape/stride helpers, Unary/Binary/Ternary, blocked kernels
//	ndarray/ — Array, Add/Sub/Mul/Div, Cast, Copy, reductions
//	stats/   — Sum*, Mean, Variance{PN,TK,WD,YC,CH}, NaN variants, Accumulator, Summary
//	dists/   — Normal, Uniform, Exponential, Gamma, Beta, Bernoulli, Poisson, …
//	special/ — gamma, beta, erf families with safe domains
//	matrix/  — Dense, elementwise algebra, column statistics
//
// Quick example (variance of every second element, walked backwards):
//
//	x := []float64{1, 9, 2, 9, 3}
//	v := stats.VariancePN(3, 1, x, -2, 4) // visits 3, 2, 1 → 1
//
//	go get github.com/katalvlaran/lvnum
package lvnum
