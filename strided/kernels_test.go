// SPDX-License-Identifier: MIT

package strided_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/strided"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// permuted3 returns a 3-d view over 24 elements with one reversed dimension
// and permuted axes, so no loop order matches memory order.
func permuted3(t *testing.T, start float64) strided.View[float64] {
	t.Helper()
	base := mustContiguous(t, iota64(24, start), []int{2, 3, 4}, strided.RowMajor)
	r, err := base.Reverse(1)
	require.NoError(t, err)
	p, err := r.Permute([]int{2, 0, 1})
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	return p
}

// TestUnaryMatchesReference compares every element against At on mixed layouts.
func TestUnaryMatchesReference(t *testing.T) {
	x := permuted3(t, 0)
	for _, order := range []strided.Order{strided.RowMajor, strided.ColumnMajor} {
		y := mustContiguous(t, make([]float64, 24), x.Shape, order)
		strided.Unary(x, y, func(v float64) float64 { return 2*v + 1 })
		forEachIndex(t, x.Shape, func(idx []int) {
			require.Equal(t, 2*mustAt(t, x, idx...)+1, mustAt(t, y, idx...), "idx %v", idx)
		})
	}
}

// TestUnaryNegativeStrideVector reads a 1-d view backwards.
func TestUnaryNegativeStrideVector(t *testing.T) {
	x := strided.Vector([]float64{1, 2, 3, 4, 5, 6}, 3, -2, 5)
	out := make([]float64, 3)
	strided.Unary(x, strided.Vector(out, 3, 1, 0), func(v float64) float64 { return v })
	assert.Equal(t, []float64{6, 4, 2}, out)
}

// TestBinaryBroadcast adds a row vector broadcast over a matrix.
func TestBinaryBroadcast(t *testing.T) {
	m := mustContiguous(t, iota64(6, 0), []int{2, 3}, strided.RowMajor)
	row := mustContiguous(t, []float64{10, 20, 30}, []int{3}, strided.RowMajor)
	rb, err := row.BroadcastTo(m.Shape)
	require.NoError(t, err)

	out := mustContiguous(t, make([]float64, 6), m.Shape, strided.RowMajor)
	strided.Binary(m, rb, out, func(a, b float64) float64 { return a + b })
	assert.Equal(t, []float64{10, 21, 32, 13, 24, 35}, out.Data)
}

// TestBinaryMixedTypes writes a different element type than it reads.
func TestBinaryMixedTypes(t *testing.T) {
	x := strided.Vector([]int32{1, 2, 3}, 3, 1, 0)
	y := strided.Vector([]float32{0.5, 0.5, 0.5}, 3, 1, 0)
	z := strided.Vector(make([]float64, 3), 3, 1, 0)
	strided.Binary(x, y, z, func(a int32, b float32) float64 { return float64(a) * float64(b) })
	assert.Equal(t, []float64{0.5, 1, 1.5}, z.Data)
}

// TestTernaryMatchesReference runs a fused multiply-add on 3-d views.
func TestTernaryMatchesReference(t *testing.T) {
	a := permuted3(t, 0)
	b := mustContiguous(t, iota64(24, 100), a.Shape, strided.ColumnMajor)
	c := mustContiguous(t, iota64(24, -50), a.Shape, strided.RowMajor)
	out := mustContiguous(t, make([]float64, 24), a.Shape, strided.RowMajor)

	strided.Ternary(a, b, c, out, func(p, q, r float64) float64 { return p*q + r })
	forEachIndex(t, a.Shape, func(idx []int) {
		want := mustAt(t, a, idx...)*mustAt(t, b, idx...) + mustAt(t, c, idx...)
		require.Equal(t, want, mustAt(t, out, idx...), "idx %v", idx)
	})
}

// TestZeroLengthIsNoOp never calls f or touches the buffers.
func TestZeroLengthIsNoOp(t *testing.T) {
	calls := 0
	f := func(v float64) float64 { calls++; return v }
	buf := []float64{7}
	empty := strided.View[float64]{Data: buf, Shape: []int{3, 0, 2}, Strides: []int{0, 0, 0}}

	strided.Unary(empty, empty, f)
	strided.UnaryBlocked(empty, empty, f, 0)
	strided.Binary(empty, empty, empty, func(a, b float64) float64 { calls++; return a })
	strided.Fill(empty, 1)
	assert.Zero(t, calls)
	assert.Equal(t, []float64{7}, buf)
}

// TestZeroDim treats a 0-d view as a single element.
func TestZeroDim(t *testing.T) {
	x := strided.View[float64]{Data: []float64{0, 3}, Offset: 1}
	y := strided.View[float64]{Data: []float64{0}}
	strided.Unary(x, y, func(v float64) float64 { return v * v })
	assert.Equal(t, 9.0, y.Data[0])
}

// TestFillStrided writes only the reachable elements.
func TestFillStrided(t *testing.T) {
	buf := make([]float64, 8)
	v := strided.View[float64]{Data: buf, Shape: []int{2, 2}, Strides: []int{4, 2}, Offset: 1}
	strided.Fill(v, 5)
	assert.Equal(t, []float64{0, 5, 0, 5, 0, 5, 0, 5}, buf)

	n := 0.0
	strided.Nullary(v, func() float64 { n++; return n })
	assert.ElementsMatch(t, []float64{1, 2, 3, 4}, []float64{buf[1], buf[3], buf[5], buf[7]})
}

// TestBlockedMatchesPlain checks that tiling only changes visiting order.
func TestBlockedMatchesPlain(t *testing.T) {
	src := mustContiguous(t, iota64(37*29*2, 0), []int{2, 37, 29}, strided.RowMajor)
	x, err := src.Permute([]int{0, 2, 1})
	require.NoError(t, err)

	f := func(v float64) float64 { return v - 3 }
	plain := mustContiguous(t, make([]float64, x.Len()), x.Shape, strided.RowMajor)
	strided.Unary(x, plain, f)
	for _, bs := range []int{0, 1, 5, 8, 64} {
		blocked := mustContiguous(t, make([]float64, x.Len()), x.Shape, strided.RowMajor)
		strided.UnaryBlocked(x, blocked, f, bs)
		require.Equal(t, plain.Data, blocked.Data, "bsize %d", bs)
	}

	g := func(a, b float64) float64 { return a * b }
	y := x.ReverseAll()
	plainZ := mustContiguous(t, make([]float64, x.Len()), x.Shape, strided.ColumnMajor)
	strided.Binary(x, y, plainZ, g)
	blockedZ := mustContiguous(t, make([]float64, x.Len()), x.Shape, strided.ColumnMajor)
	strided.BinaryBlocked(x, y, blockedZ, g, 7)
	assert.Equal(t, plainZ.Data, blockedZ.Data)
}

// TestAccessorComplexInterleaved conjugates interleaved complex storage in place.
func TestAccessorComplexInterleaved(t *testing.T) {
	raw := strided.Complex128Interleaved{1, 2, 3, 4, 5, 6, 7, 8}
	x := strided.AccessorView[complex128]{Buf: raw, Shape: []int{2, 2}, Strides: []int{2, 1}}
	require.NoError(t, x.Validate())

	rev := strided.AccessorView[complex128]{Buf: raw, Shape: []int{2, 2}, Strides: []int{-2, -1}, Offset: 3}
	out := strided.SliceAccessor[complex128](make([]complex128, 4))
	y := strided.AccessorView[complex128]{Buf: out, Shape: []int{2, 2}, Strides: []int{2, 1}}

	strided.UnaryAccessor(rev, y, func(c complex128) complex128 { return complex(real(c), -imag(c)) })
	assert.Equal(t, []complex128{7 - 8i, 5 - 6i, 3 - 4i, 1 - 2i}, []complex128(out))

	sum := strided.SliceAccessor[complex128](make([]complex128, 4))
	z := strided.AccessorView[complex128]{Buf: sum, Shape: []int{2, 2}, Strides: []int{2, 1}}
	strided.BinaryAccessor(x, rev, z, func(a, b complex128) complex128 { return a + b })
	for _, c := range sum {
		assert.Equal(t, 8+10i, c)
	}

	strided.TernaryAccessor(x, x, x, z, func(a, b, c complex128) complex128 { return a*b - c })
	assert.Equal(t, complex128(1+2i)*(1+2i)-(1+2i), sum[0])

	strided.NullaryAccessor(x, func() complex128 { return 0 })
	assert.Equal(t, strided.Complex128Interleaved{0, 0, 0, 0, 0, 0, 0, 0}, raw)

	bad := strided.AccessorView[complex128]{Buf: raw, Shape: []int{5}, Strides: []int{1}}
	require.ErrorIs(t, bad.Validate(), strided.ErrOutOfBounds)
}

// TestComplex64Interleaved round-trips through the float32 lanes.
func TestComplex64Interleaved(t *testing.T) {
	raw := strided.Complex64Interleaved{1, -1, 2, -2}
	assert.Equal(t, 2, raw.Len())
	raw.Set(1, 3+4i)
	assert.Equal(t, complex64(3+4i), raw.Get(1))
	assert.Equal(t, complex64(1-1i), raw.Get(0))
}

// TestKernels2DMatchReference runs the 2-d loops on reversed inputs and both
// output layouts.
func TestKernels2DMatchReference(t *testing.T) {
	base := mustContiguous(t, iota64(12, 1), []int{3, 4}, strided.RowMajor)
	x, err := base.Reverse(0)
	require.NoError(t, err)
	yT := mustContiguous(t, iota64(12, 100), []int{4, 3}, strided.RowMajor).Transpose()

	for _, order := range []strided.Order{strided.RowMajor, strided.ColumnMajor} {
		out := mustContiguous(t, make([]float64, 12), []int{3, 4}, order)
		strided.Unary(x, out, func(v float64) float64 { return -v })
		forEachIndex(t, x.Shape, func(idx []int) {
			require.Equal(t, -mustAt(t, x, idx...), mustAt(t, out, idx...), "unary %v", idx)
		})

		strided.Binary(x, yT, out, func(a, b float64) float64 { return a + b })
		forEachIndex(t, x.Shape, func(idx []int) {
			require.Equal(t, mustAt(t, x, idx...)+mustAt(t, yT, idx...), mustAt(t, out, idx...), "binary %v", idx)
		})

		strided.Ternary(x, yT, base, out, func(a, b, c float64) float64 { return a*b - c })
		forEachIndex(t, x.Shape, func(idx []int) {
			want := mustAt(t, x, idx...)*mustAt(t, yT, idx...) - mustAt(t, base, idx...)
			require.Equal(t, want, mustAt(t, out, idx...), "ternary %v", idx)
		})
	}
}

// TestNullary2DWalksMemoryOrder checks that the inner loop follows the
// smaller output stride.
func TestNullary2DWalksMemoryOrder(t *testing.T) {
	for _, order := range []strided.Order{strided.RowMajor, strided.ColumnMajor} {
		y := mustContiguous(t, make([]float64, 6), []int{2, 3}, order)
		next := 0.0
		strided.Nullary(y, func() float64 { next++; return next })
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, y.Data, "order %v", order)
	}
}
