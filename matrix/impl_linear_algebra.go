// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, the Hadamard product, scalar
// scaling, matrix multiplication, matrix-vector products and transpose.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Canonical small-algebra kernels used by the statistics layer.
//   - Element-wise kernels delegate to ops_elementwise.go (strided loops);
//     Mul and MatVec walk the operand views through their strides.
//
// Notes:
//   - Operands may be transposed or windowed *Dense values; no kernel assumes
//     row-major operands. Results are always fresh row-major *Dense.

package matrix

import "math"

// Operation tags for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opApply     = "Apply"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
)

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix if a or b is nil; ErrDimensionMismatch on shape mismatch.
//
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	return checkedBinary(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub computes the element-wise difference C = A − B.
//
// Errors:
//   - ErrNilMatrix if a or b is nil; ErrDimensionMismatch on shape mismatch.
func Sub(a, b Matrix) (Matrix, error) {
	return checkedBinary(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the element-wise product C[i,j] = A[i,j]·B[i,j].
func Hadamard(a, b Matrix) (Matrix, error) {
	return checkedBinary(opHadamard, a, b, func(x, y float64) float64 { return x * y })
}

// Scale returns alpha·m. alpha must be finite.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf for a non-finite alpha.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	return checkedUnary(opScale, m, func(v float64) float64 { return alpha * v })
}

// Apply returns a fresh matrix with f applied to every element of m.
// f must be position independent; use (*Dense).Apply when it is not.
func Apply(m Matrix, f func(float64) float64) (Matrix, error) {
	return checkedUnary(opApply, m, f)
}

// Mul computes the matrix product C = A·B.
//
// Implementation:
//   - i-k-j order: each a[i,k] is read once and streamed across row k of B,
//     so the innermost loop is a unit-stride axpy for row-major operands.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity: O(r*k*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(da, db), nil
}

// mulDense multiplies compatible Dense operands through their strides.
func mulDense(a, b *Dense) *Dense {
	r, n := a.Shape()
	c := b.Cols()
	out, _ := newDenseZeroOK(r, c, a.validateNaNInf)
	av, bv := a.v, b.v
	as0, as1 := av.Strides[0], av.Strides[1]
	bs0, bs1 := bv.Strides[0], bv.Strides[1]
	for i := 0; i < r; i++ {
		row := out.v.Data[i*c : (i+1)*c]
		ai := av.Offset + i*as0
		for k := 0; k < n; k++ {
			aik := av.Data[ai+k*as1]
			bk := bv.Offset + k*bs0
			for j := range row {
				row[j] += aik * bv.Data[bk+j*bs1]
			}
		}
	}

	return out
}

// MatVec computes y = A·x.
//
// Errors:
//   - ErrNilMatrix for a nil matrix or vector; ErrDimensionMismatch when
//     len(x) != m.Cols().
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	r, c := d.Shape()
	y := make([]float64, r)
	s0, s1 := d.v.Strides[0], d.v.Strides[1]
	for i := range y {
		base := d.v.Offset + i*s0
		var acc float64
		for j := 0; j < c; j++ {
			acc += d.v.Data[base+j*s1] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a materialized row-major transpose of m.
// For a no-copy transpose of a *Dense use (*Dense).T.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return d.T().compact(), nil
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²), scaled to avoid overflow.
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("FrobeniusNorm", err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf("FrobeniusNorm", err)
	}
	var scale, ssq float64 = 0, 1
	d.Do(func(_, _ int, v float64) bool {
		if v == 0 {
			return true
		}
		av := math.Abs(v)
		if scale < av {
			ssq = 1 + ssq*(scale/av)*(scale/av)
			scale = av
		} else {
			ssq += (av / scale) * (av / scale)
		}
		return true
	})

	return scale * math.Sqrt(ssq), nil
}
