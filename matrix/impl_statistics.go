// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column/row statistics and the transforms built on them (centering,
//     normalization, covariance, correlation).
//   - Every reduction is a stats kernel call over a strided vector: column j
//     of X is (n=r, stride=Strides[0], offset=Offset+j*Strides[1]).
//
// Exposed API:
//   - ColumnMeans(X), RowMeans(X)                -> []float64
//   - ColumnVariances(X, opts), ColumnStdevs(X, opts) -> []float64
//   - CenterColumns(X)   -> (Xc, means)
//   - CenterRows(X)      -> (Xc, means)
//   - NormalizeRowsL1(X) -> (Y, norms)          // degenerate rows stay zero
//   - NormalizeRowsL2(X) -> (Y, norms)          // degenerate rows stay zero
//   - Covariance(X, opts)  -> (Cov, means)      // (Xcᵀ Xc)/(r − correction)
//   - Correlation(X, opts) -> (Corr, means, stds)
//
// Determinism & Performance:
//   - Fixed column/row order; no allocation beyond outputs.
//   - Transposed and windowed inputs are reduced in place through their strides.
//   - Zero-size matrices (0×N or N×0) are no-ops for centering/normalization.
//
// AI-Hints:
//   - WithCorrection(0) gives population statistics; the default 1 gives sample statistics.
//   - WithWorkers(n) reduces wide matrices' columns on n goroutines.
//   - WithVarianceAlgorithm picks the stats kernel (PN is the accurate default).
//   - Sanitize inputs first (ReplaceInfNaN) if NaN/Inf propagation is undesired.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvnum/stats"
	"golang.org/x/sync/errgroup"
)

// Operation name constants for unified error wrapping.
const (
	opColumnMeans     = "ColumnMeans"
	opRowMeans        = "RowMeans"
	opColumnVariances = "ColumnVariances"
	opColumnStdevs    = "ColumnStdevs"
	opCenterColumns   = "CenterColumns"
	opCenterRows      = "CenterRows"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
	opRowSums         = "RowSums"
	opColSums         = "ColSums"
)

// denseOf validates X and returns its Dense form.
func denseOf(tag string, X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return d, nil
}

// column returns the strided-vector descriptor of column j.
func (m *Dense) column(j int) (n, stride, offset int) {
	return m.v.Shape[0], m.v.Strides[0], m.v.Offset + j*m.v.Strides[1]
}

// row returns the strided-vector descriptor of row i.
func (m *Dense) row(i int) (n, stride, offset int) {
	return m.v.Shape[1], m.v.Strides[1], m.v.Offset + i*m.v.Strides[0]
}

// perColumn evaluates f over every column of d.
func perColumn(d *Dense, f func(n int, x []float64, stride, offset int) float64) []float64 {
	return perColumnN(d, 1, f)
}

// perColumnN is perColumn with the columns split into contiguous chunks
// reduced by at most workers goroutines. Each column is owned by exactly
// one goroutine, so the result does not depend on workers.
func perColumnN(d *Dense, workers int, f func(n int, x []float64, stride, offset int) float64) []float64 {
	out := make([]float64, d.Cols())
	reduce := func(lo, hi int) {
		for j := lo; j < hi; j++ {
			n, s, off := d.column(j)
			out[j] = f(n, d.v.Data, s, off)
		}
	}
	if workers <= 1 || len(out) < 2 {
		reduce(0, len(out))
		return out
	}
	workers = min(workers, len(out))
	chunk := (len(out) + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(out); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(out))
		g.Go(func() error {
			reduce(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // reduce never fails

	return out
}

// perRow evaluates f over every row of d.
func perRow(d *Dense, f func(n int, x []float64, stride, offset int) float64) []float64 {
	out := make([]float64, d.Rows())
	for i := range out {
		n, s, off := d.row(i)
		out[i] = f(n, d.v.Data, s, off)
	}

	return out
}

// ColumnMeans returns the arithmetic mean of every column (NaN for 0 rows).
func ColumnMeans(X Matrix) ([]float64, error) {
	d, err := denseOf(opColumnMeans, X)
	if err != nil {
		return nil, err
	}

	return perColumn(d, stats.Mean[float64]), nil
}

// RowMeans returns the arithmetic mean of every row (NaN for 0 columns).
func RowMeans(X Matrix) ([]float64, error) {
	d, err := denseOf(opRowMeans, X)
	if err != nil {
		return nil, err
	}

	return perRow(d, stats.Mean[float64]), nil
}

// RowSums returns r[i] = Σ_j m[i,j] using pairwise summation.
func RowSums(m Matrix) ([]float64, error) {
	d, err := denseOf(opRowSums, m)
	if err != nil {
		return nil, err
	}

	return perRow(d, stats.SumPairwise[float64]), nil
}

// ColSums returns c[j] = Σ_i m[i,j] using pairwise summation.
func ColSums(m Matrix) ([]float64, error) {
	d, err := denseOf(opColSums, m)
	if err != nil {
		return nil, err
	}

	return perColumn(d, stats.SumPairwise[float64]), nil
}

// ColumnVariances returns the variance of every column with the configured
// correction (default 1) and algorithm (default PN). A column whose
// r − correction ≤ 0 yields NaN, following the stats contract.
func ColumnVariances(X Matrix, opts ...Option) ([]float64, error) {
	d, err := denseOf(opColumnVariances, X)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return perColumnN(d, o.workers, func(n int, x []float64, s, off int) float64 {
		return stats.VarianceWith(o.varianceAlgorithm, n, o.correction, x, s, off)
	}), nil
}

// ColumnStdevs is the square root of ColumnVariances.
func ColumnStdevs(X Matrix, opts ...Option) ([]float64, error) {
	d, err := denseOf(opColumnStdevs, X)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return perColumnN(d, o.workers, func(n int, x []float64, s, off int) float64 {
		return stats.StdevWith(o.varianceAlgorithm, n, o.correction, x, s, off)
	}), nil
}

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the
// column means.
//
// Implementation:
//   - Stage 1: validate X; a zero-size X is returned unchanged with zero means.
//   - Stage 2: column means through stats.Mean on strided columns.
//   - Stage 3: ewBroadcastSubCols builds the centered copy.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r*c) time, O(r*c) space.
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	d, err := denseOf(opCenterColumns, X)
	if err != nil {
		return nil, nil, err
	}
	xc, means, err := centerColumns(d)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	if xc == d {
		return X, means, nil
	}

	return xc, means, nil
}

// centerColumns is CenterColumns on a validated Dense.
func centerColumns(d *Dense) (*Dense, []float64, error) {
	r, c := d.Shape()
	if r == 0 || c == 0 {
		return d, make([]float64, c), nil
	}
	means := perColumn(d, stats.Mean[float64])
	xc, err := ewBroadcastSubCols(d, means)
	if err != nil {
		return nil, nil, err
	}

	return xc, means, nil
}

// CenterRows returns a centered copy Xc[i,*] = X[i,*] − mean(X[i,*]) and the
// row means. A zero-size X is returned unchanged with zero means.
func CenterRows(X Matrix) (Matrix, []float64, error) {
	d, err := denseOf(opCenterRows, X)
	if err != nil {
		return nil, nil, err
	}
	r, c := d.Shape()
	if r == 0 || c == 0 {
		return X, make([]float64, r), nil
	}
	means := perRow(d, stats.Mean[float64])
	xc, err := ewBroadcastSubRows(d, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return xc, means, nil
}

// NormalizeRowsL1 scales every row to unit L1 norm and returns the norms.
// Rows with norm 0 stay zero.
func NormalizeRowsL1(X Matrix) (Matrix, []float64, error) {
	return normalizeRows(opNormalizeRowsL1, X, l1Norm)
}

// NormalizeRowsL2 scales every row to unit L2 norm and returns the norms.
// Rows with norm 0 stay zero.
func NormalizeRowsL2(X Matrix) (Matrix, []float64, error) {
	return normalizeRows(opNormalizeRowsL2, X, l2Norm)
}

// normalizeRows computes per-row norms and scales each row by 1/norm (or 0).
func normalizeRows(tag string, X Matrix, norm func(n int, x []float64, stride, offset int) float64) (Matrix, []float64, error) {
	d, err := denseOf(tag, X)
	if err != nil {
		return nil, nil, err
	}
	r, c := d.Shape()
	if r == 0 || c == 0 {
		return X, make([]float64, r), nil
	}
	norms := perRow(d, norm)
	inv := make([]float64, r)
	for i, nv := range norms {
		if nv != 0 {
			inv[i] = 1 / nv
		}
	}
	y, err := ewScaleRows(d, inv)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return y, norms, nil
}

// l1Norm returns Σ|x| over a strided vector.
func l1Norm(n int, x []float64, stride, offset int) float64 {
	var s float64
	for i, ix := 0, offset; i < n; i, ix = i+1, ix+stride {
		s += math.Abs(x[ix])
	}

	return s
}

// l2Norm returns sqrt(Σx²) over a strided vector.
func l2Norm(n int, x []float64, stride, offset int) float64 {
	var s float64
	for i, ix := 0, offset; i < n; i, ix = i+1, ix+stride {
		s += x[ix] * x[ix]
	}

	return math.Sqrt(s)
}

// Covariance returns the covariance of the columns of X and the column means:
//
//	Cov = (Xcᵀ Xc) / (r − correction)
//
// Options: WithCorrection (default 1, sample covariance).
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when r − correction ≤ 0.
//
// Complexity: O(r*c²) time, O(r*c + c²) space. Xcᵀ is a view, never copied.
func Covariance(X Matrix, opts ...Option) (Matrix, []float64, error) {
	d, err := denseOf(opCovariance, X)
	if err != nil {
		return nil, nil, err
	}
	o := gatherOptions(opts...)
	dof := float64(d.Rows()) - o.correction
	if dof <= 0 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	xc, means, err := centerColumns(d)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return gram(xc, dof), means, nil
}

// Correlation returns the Pearson correlation of the columns of X together
// with the column means and standard deviations.
//
//	Z = Xc / std, Corr = (Zᵀ Z) / (r − correction)
//
// A column whose std ≤ eps is degenerate: its Z column is zeroed, so its
// row and column of Corr (diagonal included) are 0.
//
// Options: WithCorrection, WithVarianceAlgorithm, WithEpsilon.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when r − correction ≤ 0.
func Correlation(X Matrix, opts ...Option) (Matrix, []float64, []float64, error) {
	d, err := denseOf(opCorrelation, X)
	if err != nil {
		return nil, nil, nil, err
	}
	o := gatherOptions(opts...)
	dof := float64(d.Rows()) - o.correction
	if dof <= 0 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}
	xc, means, err := centerColumns(d)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	stds := perColumnN(d, o.workers, func(n int, x []float64, s, off int) float64 {
		return stats.StdevWith(o.varianceAlgorithm, n, o.correction, x, s, off)
	})
	inv := make([]float64, len(stds))
	for j, sd := range stds {
		if sd > o.eps {
			inv[j] = 1 / sd
		}
	}
	z, err := ewScaleCols(xc, inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return gram(z, dof), means, stds, nil
}

// gram returns (Aᵀ A) / dof; Aᵀ is taken as a view.
func gram(a *Dense, dof float64) *Dense {
	g := mulDense(a.T(), a)
	inv := 1 / dof
	for i := range g.v.Data {
		g.v.Data[i] *= inv
	}

	return g
}
