// SPDX-License-Identifier: MIT
// Package: strided
//
// Purpose:
//   - Define the strided view descriptor and its zero-copy rewrites
//     (reverse, permute, transpose, slice, broadcast).
//
// Contract:
//   - Rewrites return a new descriptor sharing Data; Shape/Strides are fresh
//     slices so the receiver is never mutated.
//   - NewView validates; the composite literal View{...} does not. Kernels
//     accept either and trust the caller.

package strided

import "github.com/katalvlaran/lvnum/dtype"

// View describes a multi-dimensional window onto the flat buffer Data.
// Element idx lives at Data[Offset + Σ idx[d]*Strides[d]].
type View[T any] struct {
	Data    []T   // backing buffer, shared by all views derived from it
	Shape   []int // elements per dimension
	Strides []int // signed step per dimension, in elements
	Offset  int   // buffer index of the element at idx = (0,...,0)
}

// NewView builds a validated view: len(shape)==len(strides), no negative
// dimension, and every reachable index inside data.
func NewView[T any](data []T, shape, strides []int, offset int) (View[T], error) {
	v := View[T]{
		Data:    data,
		Shape:   append([]int(nil), shape...),
		Strides: append([]int(nil), strides...),
		Offset:  offset,
	}
	if err := v.Validate(); err != nil {
		return View[T]{}, stridedErrorf("NewView", err)
	}

	return v, nil
}

// Contiguous wraps data as a dense view of the given shape and order.
func Contiguous[T any](data []T, shape []int, order Order) (View[T], error) {
	if err := ValidateShape(shape); err != nil {
		return View[T]{}, stridedErrorf("Contiguous", err)
	}
	if len(data) < Numel(shape) {
		return View[T]{}, stridedErrorf("Contiguous", ErrOutOfBounds)
	}

	return View[T]{
		Data:    data,
		Shape:   append([]int(nil), shape...),
		Strides: ContiguousStrides(shape, order),
	}, nil
}

// Vector wraps n elements of data starting at offset with the given stride.
// No validation is performed (BLAS-style convenience).
func Vector[T any](data []T, n, stride, offset int) View[T] {
	return View[T]{Data: data, Shape: []int{n}, Strides: []int{stride}, Offset: offset}
}

// Validate checks the descriptor against its buffer.
func (v View[T]) Validate() error {
	if len(v.Shape) != len(v.Strides) {
		return ErrBadShape
	}
	if err := ValidateShape(v.Shape); err != nil {
		return ErrBadShape
	}
	if hasZero(v.Shape) {
		return nil
	}
	lo, hi := MinMaxIndex(v.Shape, v.Strides, v.Offset)
	if lo < 0 || hi >= len(v.Data) {
		return ErrOutOfBounds
	}

	return nil
}

// DType returns the data type tag of the element type.
func (v View[T]) DType() dtype.DataType { return dtype.Of[T]() }

// NDims returns the number of dimensions.
func (v View[T]) NDims() int { return len(v.Shape) }

// Len returns the number of logical elements.
func (v View[T]) Len() int { return Numel(v.Shape) }

// Index returns the buffer position of the multi-index idx.
func (v View[T]) Index(idx ...int) (int, error) {
	if len(idx) != len(v.Shape) {
		return 0, stridedErrorf("Index", ErrBadShape)
	}
	pos := v.Offset
	for d, i := range idx {
		if i < 0 || i >= v.Shape[d] {
			return 0, stridedErrorf("Index", ErrOutOfBounds)
		}
		pos += i * v.Strides[d]
	}

	return pos, nil
}

// At returns the element at idx.
func (v View[T]) At(idx ...int) (T, error) {
	pos, err := v.Index(idx...)
	if err != nil {
		var zero T
		return zero, err
	}

	return v.Data[pos], nil
}

// Set writes x at idx.
func (v View[T]) Set(x T, idx ...int) error {
	pos, err := v.Index(idx...)
	if err != nil {
		return err
	}
	v.Data[pos] = x

	return nil
}

// clone returns a descriptor copy with private Shape/Strides.
func (v View[T]) clone() View[T] {
	return View[T]{
		Data:    v.Data,
		Shape:   append([]int(nil), v.Shape...),
		Strides: append([]int(nil), v.Strides...),
		Offset:  v.Offset,
	}
}

// Reverse flips dimension dim: the stride is negated and the offset moves to
// the former last element of that dimension.
func (v View[T]) Reverse(dim int) (View[T], error) {
	if dim < 0 || dim >= len(v.Shape) {
		return View[T]{}, stridedErrorf("Reverse", ErrBadDimension)
	}
	out := v.clone()
	if out.Shape[dim] > 0 {
		out.Offset += (out.Shape[dim] - 1) * out.Strides[dim]
	}
	out.Strides[dim] = -out.Strides[dim]

	return out, nil
}

// ReverseAll flips every dimension.
func (v View[T]) ReverseAll() View[T] {
	out := v.clone()
	for d := range out.Shape {
		if out.Shape[d] > 0 {
			out.Offset += (out.Shape[d] - 1) * out.Strides[d]
		}
		out.Strides[d] = -out.Strides[d]
	}

	return out
}

// Permute reorders dimensions: result dim i is source dim axes[i].
func (v View[T]) Permute(axes []int) (View[T], error) {
	nd := len(v.Shape)
	if len(axes) != nd {
		return View[T]{}, stridedErrorf("Permute", ErrBadPermutation)
	}
	seen := make([]bool, nd)
	out := View[T]{Data: v.Data, Shape: make([]int, nd), Strides: make([]int, nd), Offset: v.Offset}
	for i, a := range axes {
		if a < 0 || a >= nd || seen[a] {
			return View[T]{}, stridedErrorf("Permute", ErrBadPermutation)
		}
		seen[a] = true
		out.Shape[i] = v.Shape[a]
		out.Strides[i] = v.Strides[a]
	}

	return out, nil
}

// Transpose reverses the order of all dimensions.
func (v View[T]) Transpose() View[T] {
	nd := len(v.Shape)
	out := View[T]{Data: v.Data, Shape: make([]int, nd), Strides: make([]int, nd), Offset: v.Offset}
	for i := 0; i < nd; i++ {
		out.Shape[i] = v.Shape[nd-1-i]
		out.Strides[i] = v.Strides[nd-1-i]
	}

	return out
}

// Slice restricts dimension dim to indices start, start+step, ... stopping
// before stop. For step < 0 the walk goes downward and stop may be -1 to
// include index 0. Bounds are clamped like Go/Python slicing.
func (v View[T]) Slice(dim, start, stop, step int) (View[T], error) {
	if dim < 0 || dim >= len(v.Shape) {
		return View[T]{}, stridedErrorf("Slice", ErrBadDimension)
	}
	if step == 0 {
		return View[T]{}, stridedErrorf("Slice", ErrBadSlice)
	}
	n := v.Shape[dim]
	length := 0
	if step > 0 {
		start = min(max(start, 0), n)
		stop = min(max(stop, 0), n)
		if stop > start {
			length = (stop - start + step - 1) / step
		}
	} else {
		start = min(max(start, -1), n-1)
		stop = min(max(stop, -1), n-1)
		if start > stop {
			length = (start - stop - step - 1) / -step
		}
	}
	out := v.clone()
	if length > 0 {
		out.Offset += start * out.Strides[dim]
	}
	out.Shape[dim] = length
	out.Strides[dim] *= step

	return out, nil
}

// BroadcastTo returns a view of v with the target shape. Dimensions are
// aligned from the right; a size-1 or missing source dimension repeats with
// stride 0.
func (v View[T]) BroadcastTo(shape []int) (View[T], error) {
	strides, err := BroadcastStrides(v.Shape, v.Strides, shape)
	if err != nil {
		return View[T]{}, stridedErrorf("BroadcastTo", err)
	}

	return View[T]{Data: v.Data, Shape: append([]int(nil), shape...), Strides: strides, Offset: v.Offset}, nil
}

// ToSlice copies the logical elements into a fresh slice laid out in order.
func (v View[T]) ToSlice(order Order) []T {
	out := make([]T, v.Len())
	if len(out) == 0 {
		return out
	}
	dst := View[T]{Data: out, Shape: v.Shape, Strides: ContiguousStrides(v.Shape, order)}
	Unary(v, dst, identity[T])

	return out
}

func identity[T any](x T) T { return x }
