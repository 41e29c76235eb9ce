// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Promoting arithmetic: Add, Sub, Mul, Div allocate their result.
//
// Contract:
//   - The result dtype is dtype.Promote(a, b). Div promotes bool and
//     integer results to float64.
//   - The result shape is the broadcast of both input shapes, laid out in
//     the order selected by WithOrder.
//   - Same-dtype numeric inputs run typed kernels: integer arithmetic is
//     exact and wraps; float and complex follow IEEE 754.
//   - Mixed dtypes run on the float64 (complex128) lane and store through
//     the lane write rules. Bool arithmetic is logical: Add is or, Sub is
//     xor, Mul is and.

package ndarray

import (
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/strided"
)

type arithOp uint8

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
)

var arithNames = [...]string{opAdd: "Add", opSub: "Sub", opMul: "Mul", opDiv: "Div"}

type number interface {
	integer | ~float32 | ~float64 | ~complex64 | ~complex128
}

// kernel returns the typed scalar function for op.
func kernel[T number](op arithOp) func(x, y T) T {
	switch op {
	case opSub:
		return func(x, y T) T { return x - y }
	case opMul:
		return func(x, y T) T { return x * y }
	case opDiv:
		return func(x, y T) T { return x / y }
	}

	return func(x, y T) T { return x + y }
}

// Add returns a + b elementwise.
func Add(a, b *Array, opts ...Option) (*Array, error) { return arith(opAdd, a, b, opts) }

// Sub returns a - b elementwise.
func Sub(a, b *Array, opts ...Option) (*Array, error) { return arith(opSub, a, b, opts) }

// Mul returns a * b elementwise.
func Mul(a, b *Array, opts ...Option) (*Array, error) { return arith(opMul, a, b, opts) }

// Div returns a / b elementwise. Integer division by zero follows IEEE 754
// because integer operands are promoted to float64.
func Div(a, b *Array, opts ...Option) (*Array, error) { return arith(opDiv, a, b, opts) }

// ResultType returns the dtype Add, Sub and Mul allocate for operands a and
// b, or with div set the dtype Div allocates.
func ResultType(a, b dtype.DataType, div bool) (dtype.DataType, error) {
	dt, ok := dtype.Promote(a, b)
	if !ok {
		return dtype.Invalid, ErrNoPromotion
	}
	if dt == dtype.Generic {
		return dtype.Invalid, ErrUnsupportedDType
	}
	if div && !dt.IsFloating() && !dt.IsComplex() {
		dt = dtype.Float64
	}

	return dt, nil
}

func arith(op arithOp, a, b *Array, opts []Option) (*Array, error) {
	name := arithNames[op]
	if a == nil || b == nil {
		return nil, ndarrayErrorf(name, ErrNilArray)
	}
	o := gatherOptions(opts...)
	dt, err := ResultType(a.dt, b.dt, op == opDiv)
	if err != nil {
		return nil, ndarrayErrorf(name, err)
	}
	if !dtype.IsAllowedCast(a.dt, dt, o.casting) || !dtype.IsAllowedCast(b.dt, dt, o.casting) {
		return nil, ndarrayErrorf(name, ErrCastNotAllowed)
	}
	shape, err := strided.BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, ndarrayErrorf(name, fromStrided(err))
	}
	out, err := Zeros(dt, shape, o.order)
	if err != nil {
		return nil, err
	}

	switch {
	case allOf(dt, a, b) && dt != dtype.Bool && dt != dtype.Uint8c:
		o.trace(name, dtypes(a, b), dt, pathTyped, out)
		typedArith(op, a, b, out, o.blockSize)
	case dt.IsComplex():
		y, xs, err := complexLanes(out, a, b)
		if err != nil {
			return nil, ndarrayErrorf(name, err)
		}
		o.trace(name, dtypes(a, b), dt, pathComplex, out)
		strided.BinaryAccessor(xs[0], xs[1], y, kernel[complex128](op))
	default:
		y, xs, err := realLanes(out, a, b)
		if err != nil {
			return nil, ndarrayErrorf(name, err)
		}
		o.trace(name, dtypes(a, b), dt, pathReal, out)
		strided.BinaryAccessor(xs[0], xs[1], y, kernel[float64](op))
	}

	return out, nil
}

// typedArith dispatches once on the shared buffer type.
func typedArith(op arithOp, a, b, out *Array, bsize int) {
	switch out.data.(type) {
	case []int8:
		typedBinary[int8](op, a, b, out, bsize)
	case []int16:
		typedBinary[int16](op, a, b, out, bsize)
	case []int32:
		typedBinary[int32](op, a, b, out, bsize)
	case []int64:
		typedBinary[int64](op, a, b, out, bsize)
	case []uint8:
		typedBinary[uint8](op, a, b, out, bsize)
	case []uint16:
		typedBinary[uint16](op, a, b, out, bsize)
	case []uint32:
		typedBinary[uint32](op, a, b, out, bsize)
	case []uint64:
		typedBinary[uint64](op, a, b, out, bsize)
	case []float32:
		typedBinary[float32](op, a, b, out, bsize)
	case []float64:
		typedBinary[float64](op, a, b, out, bsize)
	case []complex64:
		typedBinary[complex64](op, a, b, out, bsize)
	case []complex128:
		typedBinary[complex128](op, a, b, out, bsize)
	}
}

func typedBinary[T number](op arithOp, a, b, out *Array, bsize int) {
	strided.BinaryBlocked(typedView[T](a, out.shape), typedView[T](b, out.shape),
		typedView[T](out, out.shape), kernel[T](op), bsize)
}
