// SPDX-License-Identifier: MIT

// Package matrix offers dense two-dimensional float64 matrices built on
// strided views, with elementwise algebra and column statistics.
//
// The matrix package provides:
//
//   - Dense, a row-major r×c matrix whose storage is a strided.View[float64].
//     T() and Window() return views that share storage; Clone copies.
//   - Elementwise kernels (Add, Sub, Hadamard, Scale, Apply, Clip,
//     ReplaceInfNaN) that run on the strided kernels and therefore accept
//     transposed and windowed operands without copying.
//   - Column and row statistics (ColumnMeans, RowMeans, ColumnVariances,
//     CenterColumns, Covariance, Correlation) where every column is a strided
//     vector handed to the stats kernels with stride = row step.
//   - Small algebra (Mul, MatVec, Transpose) and shared validators.
//
// Any Matrix implementation is accepted; non-Dense operands are gathered
// into a Dense once at the boundary.
package matrix
