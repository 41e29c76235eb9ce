// SPDX-License-Identifier: MIT
// Package: strided
//
// Purpose:
//   - Abstract element read/write for buffers whose logical element is not a
//     single Go slice cell (interleaved complex storage, type-converting lanes).
//   - Accessor kernels run the same loops as the slice kernels; the element
//     access goes through the interface while index arithmetic stays identical.

package strided

// Accessor reads and writes logical elements by buffer index.
type Accessor[T any] interface {
	Get(i int) T
	Set(i int, v T)
	Len() int
}

// AccessorView is a View whose elements live behind an Accessor.
type AccessorView[T any] struct {
	Buf     Accessor[T]
	Shape   []int
	Strides []int
	Offset  int
}

// Validate checks the descriptor against Buf.Len().
func (v AccessorView[T]) Validate() error {
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
	if lo < 0 || hi >= v.Buf.Len() {
		return ErrOutOfBounds
	}

	return nil
}

// Len returns the number of logical elements.
func (v AccessorView[T]) Len() int { return Numel(v.Shape) }

// SliceAccessor adapts a plain slice to Accessor.
type SliceAccessor[T any] []T

func (s SliceAccessor[T]) Get(i int) T    { return s[i] }
func (s SliceAccessor[T]) Set(i int, v T) { s[i] = v }
func (s SliceAccessor[T]) Len() int       { return len(s) }

// Complex64Interleaved stores complex64 element i as (re, im) at [2i], [2i+1].
type Complex64Interleaved []float32

func (c Complex64Interleaved) Get(i int) complex64 { return complex(c[2*i], c[2*i+1]) }
func (c Complex64Interleaved) Set(i int, v complex64) {
	c[2*i] = real(v)
	c[2*i+1] = imag(v)
}
func (c Complex64Interleaved) Len() int { return len(c) / 2 }

// Complex128Interleaved stores complex128 element i as (re, im) at [2i], [2i+1].
type Complex128Interleaved []float64

func (c Complex128Interleaved) Get(i int) complex128 { return complex(c[2*i], c[2*i+1]) }
func (c Complex128Interleaved) Set(i int, v complex128) {
	c[2*i] = real(v)
	c[2*i+1] = imag(v)
}
func (c Complex128Interleaved) Len() int { return len(c) / 2 }
