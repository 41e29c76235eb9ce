// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Private element-wise kernels (ew*) behind the public facade.
//   - Every loop is a strided kernel call: operands are views, broadcast
//     vectors are views with a zero stride, outputs are fresh row-major Dense.
//
// Contract:
//   - Inputs are validated by the caller or here (nil, shape, finite params).
//   - Outputs never alias inputs; transposed or windowed operands are read
//     through their strides without materializing.
//
// AI-Hints:
//   - Adding a new element-wise op means one closure and one strided call.
//   - Row/column broadcasting is free: a []float64 of length c becomes a
//     view with shape [r, c] and strides [0, 1].

package matrix

import (
	"math"

	"github.com/katalvlaran/lvnum/strided"
)

// ewBlock is the tile size handed to the blocked kernels (0 = automatic).
const ewBlock = 0

// ---------- broadcast views ----------

// colVector broadcasts per-column values v (len c) over r rows.
func colVector(v []float64, r, c int) strided.View[float64] {
	return strided.View[float64]{Data: v, Shape: []int{r, c}, Strides: []int{0, 1}}
}

// rowVector broadcasts per-row values v (len r) over c columns.
func rowVector(v []float64, r, c int) strided.View[float64] {
	return strided.View[float64]{Data: v, Shape: []int{r, c}, Strides: []int{1, 0}}
}

// ---------- core kernels ----------

// ewUnary returns f applied to every element of x.
func ewUnary(x *Dense, f func(float64) float64) *Dense {
	out, _ := ZerosLike(x)
	strided.UnaryBlocked(x.v, out.v, f, ewBlock)

	return out
}

// ewBinary returns f(a[i,j], b[i,j]); shapes must already match.
func ewBinary(a, b *Dense, f func(x, y float64) float64) *Dense {
	out, _ := ZerosLike(a)
	strided.BinaryBlocked(a.v, b.v, out.v, f, ewBlock)

	return out
}

// ewBroadcast returns f(X[i,j], v[i|j]) where v is a broadcast view.
func ewBroadcast(X *Dense, v strided.View[float64], f func(x, y float64) float64) *Dense {
	out, _ := ZerosLike(X)
	strided.Binary(X.v, v, out.v, f)

	return out
}

// checkedBinary validates a and b, coerces them to Dense and applies f.
func checkedBinary(tag string, a, b Matrix, f func(x, y float64) float64) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return ewBinary(da, db, f), nil
}

// checkedUnary validates X, coerces it to Dense and applies f.
func checkedUnary(tag string, X Matrix, f func(float64) float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return ewUnary(d, f), nil
}

// ---------- broadcasting helpers (used by statistics) ----------

// ewBroadcastSubCols returns X[i,j] − colVals[j].
func ewBroadcastSubCols(X *Dense, colVals []float64) (*Dense, error) {
	r, c := X.Shape()
	if err := ValidateVecLen(colVals, c); err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}

	return ewBroadcast(X, colVector(colVals, r, c), func(x, m float64) float64 { return x - m }), nil
}

// ewBroadcastSubRows returns X[i,j] − rowVals[i].
func ewBroadcastSubRows(X *Dense, rowVals []float64) (*Dense, error) {
	r, c := X.Shape()
	if err := ValidateVecLen(rowVals, r); err != nil {
		return nil, matrixErrorf("broadcastSubRows", err)
	}

	return ewBroadcast(X, rowVector(rowVals, r, c), func(x, m float64) float64 { return x - m }), nil
}

// ewScaleCols returns X[i,j] · colScale[j].
func ewScaleCols(X *Dense, colScale []float64) (*Dense, error) {
	r, c := X.Shape()
	if err := ValidateVecLen(colScale, c); err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}

	return ewBroadcast(X, colVector(colScale, r, c), func(x, s float64) float64 { return x * s }), nil
}

// ewScaleRows returns X[i,j] · rowScale[i].
func ewScaleRows(X *Dense, rowScale []float64) (*Dense, error) {
	r, c := X.Shape()
	if err := ValidateVecLen(rowScale, r); err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}

	return ewBroadcast(X, rowVector(rowScale, r, c), func(x, s float64) float64 { return x * s }), nil
}

// ---------- sanitizers ----------

// ewReplaceInfNaN copies X replacing any {±Inf, NaN} by val (finite).
func ewReplaceInfNaN(X Matrix, val float64) (Matrix, error) {
	if isNonFinite(val) {
		return nil, matrixErrorf("ReplaceInfNaN", ErrNaNInf)
	}

	return checkedUnary("ReplaceInfNaN", X, func(v float64) float64 {
		if isNonFinite(v) {
			return val
		}
		return v
	})
}

// ewClipRange copies X clamping each entry into [lo, hi] (both finite).
// If lo > hi the bounds are swapped. NaN entries pass through unchanged.
func ewClipRange(X Matrix, lo, hi float64) (Matrix, error) {
	if isNonFinite(lo) || isNonFinite(hi) {
		return nil, matrixErrorf("Clip", ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return checkedUnary("Clip", X, func(v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	})
}

// ewAllClose checks element-wise |a−b| ≤ atol + rtol·|b| for identical shapes.
// NaN never compares close; equal infinities do.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	flags := make([]bool, da.Rows()*da.Cols())
	fv := strided.View[bool]{
		Data:    flags,
		Shape:   []int{da.Rows(), da.Cols()},
		Strides: strided.ContiguousStrides([]int{da.Rows(), da.Cols()}, strided.RowMajor),
	}
	strided.Binary(da.v, db.v, fv, func(x, y float64) bool {
		if x == y {
			return true
		}
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false
		}
		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	})
	for _, ok := range flags {
		if !ok {
			return false, nil
		}
	}

	return true, nil
}
