// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ndarray"
	"github.com/katalvlaran/lvnum/stats"
	"github.com/katalvlaran/lvnum/strided"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromSlice[T ndarray.Element](t *testing.T, data []T, shape ...int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromSlice(data, shape, strided.RowMajor)
	require.NoError(t, err)

	return a
}

func mustZeros(t *testing.T, dt dtype.DataType, shape ...int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.Zeros(dt, shape, strided.RowMajor)
	require.NoError(t, err)

	return a
}

func mustFloat64s(t *testing.T, a *ndarray.Array) []float64 {
	t.Helper()
	xs, err := ndarray.Float64s(a)
	require.NoError(t, err)

	return xs
}

type myFloat float64

// TestConstructors covers validation in New, FromSlice and Zeros.
func TestConstructors(t *testing.T) {
	a, err := ndarray.New([]float64{0, 1, 2, 3, 4, 5}, []int{2, 2}, []int{-1, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, dtype.Float64, a.DType())
	assert.Equal(t, []int{2, 2}, a.Shape())
	assert.Equal(t, []int{-1, 2}, a.Strides())
	assert.Equal(t, 3, a.Offset())
	assert.Equal(t, 2, a.NDims())
	assert.Equal(t, 4, a.Len())
	assert.True(t, a.Contiguous())
	assert.Equal(t, []float64{3, 5, 2, 4}, mustFloat64s(t, a))

	_, err = ndarray.New([]float64{0, 1}, []int{3}, []int{1}, 0)
	assert.ErrorIs(t, err, ndarray.ErrOutOfBounds)
	_, err = ndarray.FromSlice([]float64{0, 1}, []int{-1}, strided.RowMajor)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
	_, err = ndarray.FromSlice([]myFloat{1}, []int{1}, strided.RowMajor)
	assert.ErrorIs(t, err, ndarray.ErrUnsupportedDType)
	_, err = ndarray.Zeros(dtype.Generic, []int{2}, strided.RowMajor)
	assert.ErrorIs(t, err, ndarray.ErrUnsupportedDType)
	_, err = ndarray.Zeros(dtype.Float32, []int{2, -3}, strided.RowMajor)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)

	z := mustZeros(t, dtype.Uint8c, 2, 3)
	assert.Equal(t, dtype.Uint8c, z.DType())
	assert.IsType(t, []uint8(nil), z.Data())
	assert.True(t, z.Contiguous())
}

// TestAtAndViews covers element access and zero-copy views.
func TestAtAndViews(t *testing.T) {
	a := mustFromSlice(t, []float64{0, 1, 2, 3, 4, 5}, 2, 3)

	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, ndarray.ErrOutOfBounds)
	_, err = a.At(1)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)

	r, err := ndarray.Reverse(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 0, 5, 4, 3}, mustFloat64s(t, r))
	_, err = ndarray.Reverse(a, 2)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)

	tr, err := ndarray.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, tr.Shape())
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, mustFloat64s(t, tr))

	row := mustFromSlice(t, []float64{1, 2, 3}, 3)
	b, err := ndarray.Broadcast(row, []int{2, 3})
	require.NoError(t, err)
	assert.True(t, b.ReadOnly())
	assert.Equal(t, []int{0, 1}, b.Strides())
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, mustFloat64s(t, b))
	_, err = ndarray.Broadcast(row, []int{2, 4})
	assert.ErrorIs(t, err, ndarray.ErrNotBroadcastable)

	tv, err := ndarray.ViewOf[float64](a)
	require.NoError(t, err)
	assert.Equal(t, 6, tv.Len())
	_, err = ndarray.ViewOf[float32](a)
	assert.ErrorIs(t, err, ndarray.ErrDTypeMismatch)
}

// TestCastPolicy checks refusals and the integer write rules.
func TestCastPolicy(t *testing.T) {
	f := mustFromSlice(t, []float64{1.7, -2.5, math.NaN(), 1e10}, 4)

	_, err := ndarray.Cast(f, dtype.Int32)
	assert.ErrorIs(t, err, ndarray.ErrCastNotAllowed)

	i32, err := ndarray.Cast(f, dtype.Int32, ndarray.WithCasting(dtype.CastUnsafe))
	require.NoError(t, err)
	assert.Equal(t, []int32{1, -2, 0, math.MaxInt32}, i32.Data())

	clamped, err := ndarray.Cast(mustFromSlice(t, []float64{-3, 2.5, 3.5, 300}, 4), dtype.Uint8c,
		ndarray.WithCasting(dtype.CastUnsafe))
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 2, 4, 255}, clamped.Data())

	wide, err := ndarray.Cast(mustFromSlice(t, []int16{-7, 9}, 2), dtype.Float32)
	require.NoError(t, err)
	assert.Equal(t, []float32{-7, 9}, wide.Data())

	_, err = ndarray.Cast(f, dtype.Generic)
	assert.ErrorIs(t, err, ndarray.ErrUnsupportedDType)
	_, err = ndarray.Cast(nil, dtype.Float64)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)
}

// TestCastExact keeps 64-bit integers intact on identical buffer types.
func TestCastExact(t *testing.T) {
	big := int64(1)<<62 + 1
	a := mustFromSlice(t, []int64{big, -big}, 2)
	b, err := ndarray.Cast(a, dtype.Int64, ndarray.WithCasting(dtype.CastNo))
	require.NoError(t, err)
	assert.Equal(t, []int64{big, -big}, b.Data())

	u, err := ndarray.Cast(mustFromSlice(t, []uint8{1, 250}, 2), dtype.Uint8c, ndarray.WithCasting(dtype.CastEquiv))
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 250}, u.Data())
}

// TestCastComplex covers widening into and narrowing out of complex.
func TestCastComplex(t *testing.T) {
	c, err := ndarray.Cast(mustFromSlice(t, []float32{1.5, -2}, 2), dtype.Complex128)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1.5, -2}, c.Data())

	_, err = ndarray.Cast(c, dtype.Float64)
	assert.ErrorIs(t, err, ndarray.ErrCastNotAllowed)
	r, err := ndarray.Cast(mustFromSlice(t, []complex128{complex(3, 4)}, 1), dtype.Float64,
		ndarray.WithCasting(dtype.CastUnsafe))
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, r.Data())
}

// TestCopy requires equal shapes and honors the policy.
func TestCopy(t *testing.T) {
	dst := mustZeros(t, dtype.Float64, 2, 2)
	src := mustFromSlice(t, []int32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, ndarray.Copy(dst, src))
	assert.Equal(t, []float64{1, 2, 3, 4}, dst.Data())

	assert.ErrorIs(t, ndarray.Copy(dst, mustFromSlice(t, []float64{1, 2}, 2)), ndarray.ErrShapeMismatch)
	assert.ErrorIs(t, ndarray.Copy(src, dst), ndarray.ErrCastNotAllowed)

	ro, err := ndarray.Broadcast(mustFromSlice(t, []float64{1, 2}, 2), []int{2, 2})
	require.NoError(t, err)
	assert.ErrorIs(t, ndarray.Copy(ro, dst), ndarray.ErrReadOnly)
}

// TestUnary covers the typed path on a transposed view and the lane path.
func TestUnary(t *testing.T) {
	a := mustFromSlice(t, []float64{0, 1, 2, 3, 4, 5}, 2, 3)
	at, err := ndarray.Transpose(a)
	require.NoError(t, err)
	out := mustZeros(t, dtype.Float64, 3, 2)
	require.NoError(t, ndarray.Unary(at, out, func(v float64) float64 { return 10 * v }, ndarray.WithBlockSize(1)))
	assert.Equal(t, []float64{0, 30, 10, 40, 20, 50}, out.Data())

	i := mustFromSlice(t, []int32{-1, 4}, 2)
	f32 := mustZeros(t, dtype.Float32, 2)
	require.NoError(t, ndarray.Unary(i, f32, func(v float64) float64 { return v / 2 }))
	assert.Equal(t, []float32{-0.5, 2}, f32.Data())

	dst := mustZeros(t, dtype.Int32, 2)
	assert.ErrorIs(t, ndarray.Unary(f32, dst, math.Floor), ndarray.ErrCastNotAllowed)
	require.NoError(t, ndarray.Unary(f32, dst, math.Floor, ndarray.WithCasting(dtype.CastUnsafe)))
	assert.Equal(t, []int32{-1, 2}, dst.Data())
}

// TestUnaryValidation checks each refusal leaves out untouched.
func TestUnaryValidation(t *testing.T) {
	id := func(v float64) float64 { return v }
	out := mustZeros(t, dtype.Float64, 2, 3)

	assert.ErrorIs(t, ndarray.Unary(nil, out, id), ndarray.ErrNilArray)
	assert.ErrorIs(t, ndarray.Unary(out, nil, id), ndarray.ErrNilArray)
	assert.ErrorIs(t, ndarray.Unary(mustFromSlice(t, []float64{1, 2, 3, 4}, 4), out, id), ndarray.ErrNotBroadcastable)
	assert.ErrorIs(t, ndarray.Unary(mustFromSlice(t, []complex64{1, 2, 3}, 3), out, id), ndarray.ErrUnsupportedDType)
	assert.ErrorIs(t, ndarray.Unary(mustFromSlice(t, []bool{true, false, true}, 3), out, id), ndarray.ErrCastNotAllowed)

	ro, err := ndarray.Broadcast(mustFromSlice(t, []float64{1, 2, 3}, 3), []int{2, 3})
	require.NoError(t, err)
	assert.ErrorIs(t, ndarray.Unary(out, ro, id), ndarray.ErrReadOnly)
	assert.Equal(t, make([]float64, 6), out.Data())

	row := mustFromSlice(t, []float64{1, 2, 3}, 3)
	require.NoError(t, ndarray.Unary(row, out, id))
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, out.Data())
}

// TestBinaryTernary covers broadcasting on both paths.
func TestBinaryTernary(t *testing.T) {
	col := mustFromSlice(t, []float64{1, 2}, 2, 1)
	row := mustFromSlice(t, []float64{10, 20, 30}, 3)
	out := mustZeros(t, dtype.Float64, 2, 3)
	require.NoError(t, ndarray.Binary(col, row, out, func(x, y float64) float64 { return x + y }))
	assert.Equal(t, []float64{11, 21, 31, 12, 22, 32}, out.Data())

	rowI := mustFromSlice(t, []int16{10, 20, 30}, 3)
	out32 := mustZeros(t, dtype.Float32, 2, 3)
	require.NoError(t, ndarray.Binary(col, rowI, out32, func(x, y float64) float64 { return x * y }))
	assert.Equal(t, []float32{10, 20, 30, 20, 40, 60}, out32.Data())

	fma := func(x, y, z float64) float64 { return x*y + z }
	a := mustFromSlice(t, []float64{1, 2, 3}, 3)
	b := mustFromSlice(t, []float64{2}, 1)
	c := mustFromSlice(t, []float64{0.5, 0.5, 0.5}, 3)
	res := mustZeros(t, dtype.Float64, 3)
	require.NoError(t, ndarray.Ternary(a, b, c, res, fma))
	assert.Equal(t, []float64{2.5, 4.5, 6.5}, res.Data())

	c32 := mustFromSlice(t, []float32{0.5, 0.5, 0.5}, 3)
	require.NoError(t, ndarray.Ternary(a, b, c32, res, fma))
	assert.Equal(t, []float64{2.5, 4.5, 6.5}, res.Data())
	assert.ErrorIs(t, ndarray.Ternary(a, b, mustFromSlice(t, []float64{1, 2}, 2), res, fma), ndarray.ErrNotBroadcastable)
}

// TestComplexOps covers the complex lane entry points.
func TestComplexOps(t *testing.T) {
	z := mustFromSlice(t, []complex128{1i, 2}, 2)
	out := mustZeros(t, dtype.Complex128, 2)
	require.NoError(t, ndarray.UnaryComplex(z, out, func(v complex128) complex128 { return v * v }))
	assert.Equal(t, []complex128{-1, 4}, out.Data())

	f := mustFromSlice(t, []float64{1, 2}, 2)
	out64 := mustZeros(t, dtype.Complex64, 2)
	require.NoError(t, ndarray.BinaryComplex(z, f, out64, func(x, y complex128) complex128 { return x + y }))
	assert.Equal(t, []complex64{complex(1, 1), 4}, out64.Data())

	real64 := mustZeros(t, dtype.Float64, 2)
	assert.ErrorIs(t, ndarray.UnaryComplex(z, real64, func(v complex128) complex128 { return v }), ndarray.ErrCastNotAllowed)
}

// TestArithPromotion checks result dtypes and values of mixed operands.
func TestArithPromotion(t *testing.T) {
	s, err := ndarray.Add(mustFromSlice(t, []int16{1, 2}, 2), mustFromSlice(t, []float32{0.5, 0.25}, 2))
	require.NoError(t, err)
	assert.Equal(t, dtype.Float32, s.DType())
	assert.Equal(t, []float32{1.5, 2.25}, s.Data())

	w, err := ndarray.Mul(mustFromSlice(t, []int32{3}, 1), mustFromSlice(t, []float32{0.5}, 1))
	require.NoError(t, err)
	assert.Equal(t, dtype.Float64, w.DType())
	assert.Equal(t, []float64{1.5}, w.Data())

	c, err := ndarray.Sub(mustFromSlice(t, []complex128{complex(1, 2)}, 1), mustFromSlice(t, []float64{3}, 1))
	require.NoError(t, err)
	assert.Equal(t, []complex128{complex(-2, 2)}, c.Data())

	_, err = ndarray.Add(mustFromSlice(t, []int64{1}, 1), mustFromSlice(t, []float64{1}, 1))
	assert.ErrorIs(t, err, ndarray.ErrNoPromotion)
	_, err = ndarray.Add(mustFromSlice(t, []int8{1}, 1), mustFromSlice(t, []int16{1}, 1), ndarray.WithCasting(dtype.CastNo))
	assert.ErrorIs(t, err, ndarray.ErrCastNotAllowed)
	_, err = ndarray.Add(mustFromSlice(t, []float64{1, 2}, 2), mustFromSlice(t, []float64{1, 2, 3}, 3))
	assert.ErrorIs(t, err, ndarray.ErrNotBroadcastable)
	_, err = ndarray.Add(nil, mustFromSlice(t, []float64{1}, 1))
	assert.ErrorIs(t, err, ndarray.ErrNilArray)
}

// TestArithTyped checks exact same-dtype arithmetic.
func TestArithTyped(t *testing.T) {
	x := mustFromSlice(t, []int8{100, -100}, 2)
	s, err := ndarray.Add(x, x)
	require.NoError(t, err)
	assert.Equal(t, []int8{-56, 56}, s.Data())

	big := int64(1)<<62 + 1
	b, err := ndarray.Add(mustFromSlice(t, []int64{big}, 1), mustFromSlice(t, []int64{1}, 1))
	require.NoError(t, err)
	assert.Equal(t, []int64{big + 1}, b.Data())

	l, err := ndarray.Add(mustFromSlice(t, []bool{true, false, false}, 3), mustFromSlice(t, []bool{false, true, false}, 3))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, l.Data())
}

// TestDiv promotes integers to float64 and follows IEEE 754.
func TestDiv(t *testing.T) {
	q, err := ndarray.Div(mustFromSlice(t, []int32{1, -1, 0, 7}, 4), mustFromSlice(t, []int32{0, 0, 0, 2}, 4))
	require.NoError(t, err)
	require.Equal(t, dtype.Float64, q.DType())
	xs := q.Data().([]float64)
	assert.True(t, math.IsInf(xs[0], 1))
	assert.True(t, math.IsInf(xs[1], -1))
	assert.True(t, math.IsNaN(xs[2]))
	assert.Equal(t, 3.5, xs[3])

	h, err := ndarray.Div(mustFromSlice(t, []float32{1}, 1), mustFromSlice(t, []float32{4}, 1))
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25}, h.Data())

	dt, err := ndarray.ResultType(dtype.Uint8, dtype.Int8, true)
	require.NoError(t, err)
	assert.Equal(t, dtype.Float64, dt)
	_, err = ndarray.ResultType(dtype.Uint64, dtype.Int64, false)
	assert.ErrorIs(t, err, ndarray.ErrNoPromotion)
}

// TestOrder lays results out column-major on request.
func TestOrder(t *testing.T) {
	col := mustFromSlice(t, []float64{1, 2}, 2, 1)
	row := mustFromSlice(t, []float64{10, 20, 30}, 3)
	s, err := ndarray.Add(col, row, ndarray.WithOrder(strided.ColumnMajor))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.Strides())
	assert.Equal(t, []float64{11, 12, 21, 22, 31, 32}, s.Data())
	assert.Equal(t, []float64{11, 21, 31, 12, 22, 32}, mustFloat64s(t, s))
}

// TestFillAndClamp covers lane writes into narrow and clamped buffers.
func TestFillAndClamp(t *testing.T) {
	i8 := mustZeros(t, dtype.Int8, 3)
	require.NoError(t, ndarray.Fill(i8, 300))
	assert.Equal(t, []int8{127, 127, 127}, i8.Data())

	z := mustZeros(t, dtype.Complex64, 2)
	require.NoError(t, ndarray.Fill(z, 1.5))
	assert.Equal(t, []complex64{1.5, 1.5}, z.Data())

	ro, err := ndarray.Broadcast(i8, []int{2, 3})
	require.NoError(t, err)
	assert.ErrorIs(t, ndarray.Fill(ro, 0), ndarray.ErrReadOnly)
	assert.ErrorIs(t, ndarray.Fill(nil, 0), ndarray.ErrNilArray)

	raw := mustFromSlice(t, []uint8{0, 0}, 2)
	c, err := raw.AsUint8c()
	require.NoError(t, err)
	require.NoError(t, ndarray.Unary(mustFromSlice(t, []float64{1.5, 3}, 2), c,
		func(v float64) float64 { return 100 * v }, ndarray.WithCasting(dtype.CastUnsafe)))
	assert.Equal(t, []uint8{150, 255}, raw.Data())

	back, err := c.AsUint8()
	require.NoError(t, err)
	assert.Equal(t, dtype.Uint8, back.DType())
	_, err = i8.AsUint8c()
	assert.ErrorIs(t, err, ndarray.ErrDTypeMismatch)
}

// TestCopyOut covers Float64s and Complex128s.
func TestCopyOut(t *testing.T) {
	b := mustFromSlice(t, []bool{true, false}, 2)
	assert.Equal(t, []float64{1, 0}, mustFloat64s(t, b))

	zs, err := ndarray.Complex128s(mustFromSlice(t, []int8{-1, 2}, 2))
	require.NoError(t, err)
	assert.Equal(t, []complex128{-1, 2}, zs)

	_, err = ndarray.Float64s(mustFromSlice(t, []complex64{1}, 1))
	assert.ErrorIs(t, err, ndarray.ErrUnsupportedDType)

	empty := mustZeros(t, dtype.Float64, 0, 3)
	assert.Empty(t, mustFloat64s(t, empty))
}

// TestReductions delegates to the stats kernels.
func TestReductions(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3}, 3)
	v, err := ndarray.Variance(a, 1, stats.AlgorithmWD)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	r, err := ndarray.Reverse(a, 0)
	require.NoError(t, err)
	v, err = ndarray.Variance(r, 1, stats.AlgorithmPN)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	sd, err := ndarray.Stdev(mustFromSlice(t, []float32{2, 4, 4, 4, 5, 5, 7, 9}, 8), 0, stats.AlgorithmPN)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sd, 1e-12)

	m, err := ndarray.Mean(mustFromSlice(t, []int32{1, 2, 3, 4}, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	s, err := ndarray.Sum(mustFromSlice(t, []float32{1.5, 2.5}, 2))
	require.NoError(t, err)
	assert.Equal(t, 4.0, s)

	m, err = ndarray.Mean(mustZeros(t, dtype.Float64, 0))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m))

	_, err = ndarray.Sum(mustFromSlice(t, []complex128{1}, 1))
	assert.ErrorIs(t, err, ndarray.ErrUnsupportedDType)
}

// TestLoggerTracesDispatch checks the Debug record of a dispatch.
func TestLoggerTracesDispatch(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	x := mustFromSlice(t, []float64{1, 2}, 2)
	_, err := ndarray.Add(x, x, ndarray.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "op=Add")
	assert.Contains(t, buf.String(), "path=typed")
	assert.Contains(t, buf.String(), "casting=same-kind")

	buf.Reset()
	_, err = ndarray.Add(x, mustFromSlice(t, []float32{1, 2}, 2), ndarray.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "path=float64-lane")

	buf.Reset()
	_, err = ndarray.Add(x, x, ndarray.WithLogger(nil))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

// TestOptionPanics rejects nonsensical option values.
func TestOptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "ndarray: WithBlockSize: size must be non-negative", func() { ndarray.WithBlockSize(-1) })
	assert.PanicsWithValue(t, "ndarray: WithCasting: unknown casting policy", func() { ndarray.WithCasting(dtype.Casting(42)) })
	assert.PanicsWithValue(t, "ndarray: WithOrder: order must be RowMajor or ColumnMajor", func() { ndarray.WithOrder(strided.Order(9)) })
	assert.NotPanics(t, func() { ndarray.WithBlockSize(0) })
}
