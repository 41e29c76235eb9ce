// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Policy-checked dtype conversion (Cast) and strict copies (Copy).
//
// Contract:
//   - The policy is checked against the dtype cast tables before any
//     allocation or write.
//   - Identical buffer types copy through typed kernels, so int64 and
//     uint64 values survive exactly. Other pairs use the float64 or
//     complex128 lane; complex → real keeps the real part.

package ndarray

import (
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/strided"
)

// Cast returns a new contiguous array holding a's elements converted to to.
// The casting policy (WithCasting, default same-kind) must allow a → to.
func Cast(a *Array, to dtype.DataType, opts ...Option) (*Array, error) {
	const op = "Cast"
	if a == nil {
		return nil, ndarrayErrorf(op, ErrNilArray)
	}
	if makeBuffer(to, 0) == nil {
		return nil, ndarrayErrorf(op, ErrUnsupportedDType)
	}
	o := gatherOptions(opts...)
	if !dtype.IsAllowedCast(a.dt, to, o.casting) {
		return nil, ndarrayErrorf(op, ErrCastNotAllowed)
	}
	out, err := Zeros(to, a.shape, o.order)
	if err != nil {
		return nil, ndarrayErrorf(op, err)
	}
	if err = copyInto(op, o, a, out); err != nil {
		return nil, ndarrayErrorf(op, err)
	}

	return out, nil
}

// Copy writes src into dst. Shapes must be equal (use Broadcast to repeat
// src) and the policy must allow src's dtype → dst's dtype.
func Copy(dst, src *Array, opts ...Option) error {
	const op = "Copy"
	if dst == nil || src == nil {
		return ndarrayErrorf(op, ErrNilArray)
	}
	if dst.readOnly {
		return ndarrayErrorf(op, ErrReadOnly)
	}
	if !sameShape(dst.shape, src.shape) {
		return ndarrayErrorf(op, ErrShapeMismatch)
	}
	o := gatherOptions(opts...)
	if !dtype.IsAllowedCast(src.dt, dst.dt, o.casting) {
		return ndarrayErrorf(op, ErrCastNotAllowed)
	}
	if err := copyInto(op, o, src, dst); err != nil {
		return ndarrayErrorf(op, err)
	}

	return nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// copyInto moves src into dst (same shape, already validated).
func copyInto(op string, o Options, src, dst *Array) error {
	if typedCopy(src, dst, o.blockSize) {
		o.trace(op, dtypes(src), dst.dt, pathTyped, dst)
		return nil
	}
	if src.dt.IsComplex() || dst.dt.IsComplex() {
		y, xs, err := complexLanes(dst, src)
		if err != nil {
			return err
		}
		o.trace(op, dtypes(src), dst.dt, pathComplex, dst)
		strided.UnaryAccessor(xs[0], y, func(v complex128) complex128 { return v })
		return nil
	}
	y, xs, err := realLanes(dst, src)
	if err != nil {
		return err
	}
	o.trace(op, dtypes(src), dst.dt, pathReal, dst)
	strided.UnaryAccessor(xs[0], y, func(v float64) float64 { return v })

	return nil
}

// typedCopy copies between identical buffer types. uint8 → uint8c needs
// no clamping since every uint8 value is in range; uint8c → uint8 likewise.
func typedCopy(src, dst *Array, bsize int) bool {
	switch d := dst.data.(type) {
	case []bool:
		return copyTyped(src, d, dst, bsize)
	case []int8:
		return copyTyped(src, d, dst, bsize)
	case []int16:
		return copyTyped(src, d, dst, bsize)
	case []int32:
		return copyTyped(src, d, dst, bsize)
	case []int64:
		return copyTyped(src, d, dst, bsize)
	case []uint8:
		return copyTyped(src, d, dst, bsize)
	case []uint16:
		return copyTyped(src, d, dst, bsize)
	case []uint32:
		return copyTyped(src, d, dst, bsize)
	case []uint64:
		return copyTyped(src, d, dst, bsize)
	case []float32:
		return copyTyped(src, d, dst, bsize)
	case []float64:
		return copyTyped(src, d, dst, bsize)
	case []complex64:
		return copyTyped(src, d, dst, bsize)
	case []complex128:
		return copyTyped(src, d, dst, bsize)
	}

	return false
}

func copyTyped[T any](src *Array, data []T, dst *Array, bsize int) bool {
	s, ok := src.data.([]T)
	if !ok {
		return false
	}
	x := strided.View[T]{Data: s, Shape: src.shape, Strides: src.strides, Offset: src.offset}
	y := strided.View[T]{Data: data, Shape: dst.shape, Strides: dst.strides, Offset: dst.offset}
	strided.UnaryBlocked(x, y, func(v T) T { return v }, bsize)

	return true
}
