// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Validated elementwise entry points over caller-provided outputs.
//
// Contract:
//   - Validation order: nil arrays, read-only output, broadcast of every
//     input to out's shape, dtype support, casting policy. Nothing is
//     written when any check fails.
//   - Real callbacks see float64 lanes and complex callbacks complex128
//     lanes. When every array is float64 (complex128) the typed kernels run
//     on the buffers directly.
//   - Outputs may alias inputs elementwise (same index). Partial overlaps
//     give unspecified results.

package ndarray

import (
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/strided"
)

const (
	pathTyped   = "typed"
	pathReal    = "float64-lane"
	pathComplex = "complex128-lane"
)

// checkInputs validates the common preconditions of elementwise calls.
func checkInputs(out *Array, in ...*Array) error {
	if out == nil {
		return ErrNilArray
	}
	for _, a := range in {
		if a == nil {
			return ErrNilArray
		}
	}
	if out.readOnly {
		return ErrReadOnly
	}
	for _, a := range in {
		if _, err := strided.BroadcastStrides(a.shape, a.strides, out.shape); err != nil {
			return fromStrided(err)
		}
	}

	return nil
}

// checkLane verifies every input may be cast to the computation lane and
// the lane may be cast to out's dtype under policy.
func checkLane(policy dtype.Casting, lane dtype.DataType, out *Array, in ...*Array) error {
	for _, a := range in {
		if !dtype.IsAllowedCast(a.dt, lane, policy) {
			return ErrCastNotAllowed
		}
	}
	if !dtype.IsAllowedCast(lane, out.dt, policy) {
		return ErrCastNotAllowed
	}

	return nil
}

// dtypes lists the input dtypes for tracing.
func dtypes(in ...*Array) []dtype.DataType {
	dts := make([]dtype.DataType, len(in))
	for i, a := range in {
		dts[i] = a.dt
	}

	return dts
}

// allOf reports whether every array has dtype dt.
func allOf(dt dtype.DataType, arrays ...*Array) bool {
	for _, a := range arrays {
		if a.dt != dt {
			return false
		}
	}

	return true
}

// typedView returns a's typed view re-strided to shape. The caller has
// already checked the buffer type and broadcast compatibility.
func typedView[T any](a *Array, shape []int) strided.View[T] {
	strides, _ := strided.BroadcastStrides(a.shape, a.strides, shape)

	return strided.View[T]{Data: a.data.([]T), Shape: shape, Strides: strides, Offset: a.offset}
}

// realLanes builds the float64 lanes of out and every input broadcast to out.
func realLanes(out *Array, in ...*Array) (strided.AccessorView[float64], []strided.AccessorView[float64], error) {
	y, err := realLaneOf(out)
	if err != nil {
		return y, nil, err
	}
	xs := make([]strided.AccessorView[float64], len(in))
	for i, a := range in {
		x, err := realLaneOf(a)
		if err != nil {
			return y, nil, err
		}
		if xs[i], err = broadcastLane(x, out.shape); err != nil {
			return y, nil, err
		}
	}

	return y, xs, nil
}

// complexLanes is realLanes for the complex128 lane.
func complexLanes(out *Array, in ...*Array) (strided.AccessorView[complex128], []strided.AccessorView[complex128], error) {
	y, err := complexLaneOf(out)
	if err != nil {
		return y, nil, err
	}
	xs := make([]strided.AccessorView[complex128], len(in))
	for i, a := range in {
		x, err := complexLaneOf(a)
		if err != nil {
			return y, nil, err
		}
		if xs[i], err = broadcastLane(x, out.shape); err != nil {
			return y, nil, err
		}
	}

	return y, xs, nil
}

// prepare runs the shared validation of the real-valued entry points.
func prepare(op string, o Options, lane dtype.DataType, out *Array, in ...*Array) error {
	if err := checkInputs(out, in...); err != nil {
		return ndarrayErrorf(op, err)
	}
	for _, a := range append([]*Array{out}, in...) {
		if lane == dtype.Float64 && a.dt.IsComplex() {
			return ndarrayErrorf(op, ErrUnsupportedDType)
		}
	}
	if err := checkLane(o.casting, lane, out, in...); err != nil {
		return ndarrayErrorf(op, err)
	}

	return nil
}

// Unary sets out[i] = f(a[i]) with a broadcast to out's shape.
func Unary(a, out *Array, f func(float64) float64, opts ...Option) error {
	const op = "Unary"
	o := gatherOptions(opts...)
	if err := prepare(op, o, dtype.Float64, out, a); err != nil {
		return err
	}
	if allOf(dtype.Float64, a, out) {
		o.trace(op, dtypes(a), out.dt, pathTyped, out)
		strided.UnaryBlocked(typedView[float64](a, out.shape), typedView[float64](out, out.shape), f, o.blockSize)
		return nil
	}
	y, xs, err := realLanes(out, a)
	if err != nil {
		return ndarrayErrorf(op, err)
	}
	o.trace(op, dtypes(a), out.dt, pathReal, out)
	strided.UnaryAccessor(xs[0], y, f)

	return nil
}

// Binary sets out[i] = f(a[i], b[i]) with a and b broadcast to out's shape.
func Binary(a, b, out *Array, f func(x, y float64) float64, opts ...Option) error {
	const op = "Binary"
	o := gatherOptions(opts...)
	if err := prepare(op, o, dtype.Float64, out, a, b); err != nil {
		return err
	}
	if allOf(dtype.Float64, a, b, out) {
		o.trace(op, dtypes(a, b), out.dt, pathTyped, out)
		strided.BinaryBlocked(typedView[float64](a, out.shape), typedView[float64](b, out.shape),
			typedView[float64](out, out.shape), f, o.blockSize)
		return nil
	}
	y, xs, err := realLanes(out, a, b)
	if err != nil {
		return ndarrayErrorf(op, err)
	}
	o.trace(op, dtypes(a, b), out.dt, pathReal, out)
	strided.BinaryAccessor(xs[0], xs[1], y, f)

	return nil
}

// Ternary sets out[i] = f(a[i], b[i], c[i]) with broadcasting.
func Ternary(a, b, c, out *Array, f func(x, y, z float64) float64, opts ...Option) error {
	const op = "Ternary"
	o := gatherOptions(opts...)
	if err := prepare(op, o, dtype.Float64, out, a, b, c); err != nil {
		return err
	}
	if allOf(dtype.Float64, a, b, c, out) {
		o.trace(op, dtypes(a, b, c), out.dt, pathTyped, out)
		strided.Ternary(typedView[float64](a, out.shape), typedView[float64](b, out.shape),
			typedView[float64](c, out.shape), typedView[float64](out, out.shape), f)
		return nil
	}
	y, xs, err := realLanes(out, a, b, c)
	if err != nil {
		return ndarrayErrorf(op, err)
	}
	o.trace(op, dtypes(a, b, c), out.dt, pathReal, out)
	strided.TernaryAccessor(xs[0], xs[1], xs[2], y, f)

	return nil
}

// UnaryComplex is Unary over the complex128 lane. Real inputs enter with a
// zero imaginary part; a real out keeps the real part (needs CastUnsafe).
func UnaryComplex(a, out *Array, f func(complex128) complex128, opts ...Option) error {
	const op = "UnaryComplex"
	o := gatherOptions(opts...)
	if err := prepare(op, o, dtype.Complex128, out, a); err != nil {
		return err
	}
	if allOf(dtype.Complex128, a, out) {
		o.trace(op, dtypes(a), out.dt, pathTyped, out)
		strided.UnaryBlocked(typedView[complex128](a, out.shape), typedView[complex128](out, out.shape), f, o.blockSize)
		return nil
	}
	y, xs, err := complexLanes(out, a)
	if err != nil {
		return ndarrayErrorf(op, err)
	}
	o.trace(op, dtypes(a), out.dt, pathComplex, out)
	strided.UnaryAccessor(xs[0], y, f)

	return nil
}

// BinaryComplex is Binary over the complex128 lane.
func BinaryComplex(a, b, out *Array, f func(x, y complex128) complex128, opts ...Option) error {
	const op = "BinaryComplex"
	o := gatherOptions(opts...)
	if err := prepare(op, o, dtype.Complex128, out, a, b); err != nil {
		return err
	}
	if allOf(dtype.Complex128, a, b, out) {
		o.trace(op, dtypes(a, b), out.dt, pathTyped, out)
		strided.BinaryBlocked(typedView[complex128](a, out.shape), typedView[complex128](b, out.shape),
			typedView[complex128](out, out.shape), f, o.blockSize)
		return nil
	}
	y, xs, err := complexLanes(out, a, b)
	if err != nil {
		return ndarrayErrorf(op, err)
	}
	o.trace(op, dtypes(a, b), out.dt, pathComplex, out)
	strided.BinaryAccessor(xs[0], xs[1], y, f)

	return nil
}

// Fill sets every element of a to v using the lane write rules
// (complex arrays receive v+0i).
func Fill(a *Array, v float64) error {
	const op = "Fill"
	if a == nil {
		return ndarrayErrorf(op, ErrNilArray)
	}
	if a.readOnly {
		return ndarrayErrorf(op, ErrReadOnly)
	}
	y, err := complexLaneOf(a)
	if err != nil {
		return ndarrayErrorf(op, err)
	}
	c := complex(v, 0)
	strided.NullaryAccessor(y, func() complex128 { return c })

	return nil
}

// Float64s copies a's elements into a new slice in row-major logical order.
// Complex arrays report ErrUnsupportedDType.
func Float64s(a *Array) ([]float64, error) {
	const op = "Float64s"
	if a == nil {
		return nil, ndarrayErrorf(op, ErrNilArray)
	}
	x, err := realLaneOf(a)
	if err != nil {
		return nil, ndarrayErrorf(op, err)
	}

	return gather(x), nil
}

// Complex128s copies a's elements into a new slice in row-major logical order.
func Complex128s(a *Array) ([]complex128, error) {
	const op = "Complex128s"
	if a == nil {
		return nil, ndarrayErrorf(op, ErrNilArray)
	}
	x, err := complexLaneOf(a)
	if err != nil {
		return nil, ndarrayErrorf(op, err)
	}

	return gather(x), nil
}

// gather copies a lane into a dense row-major slice.
func gather[T any](x strided.AccessorView[T]) []T {
	out := make([]T, strided.Numel(x.Shape))
	if len(out) == 0 {
		return out
	}
	dst := strided.AccessorView[T]{
		Buf:     strided.SliceAccessor[T](out),
		Shape:   x.Shape,
		Strides: strided.ContiguousStrides(x.Shape, strided.RowMajor),
	}
	strided.UnaryAccessor(x, dst, func(v T) T { return v })

	return out
}
