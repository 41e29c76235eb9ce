// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Adapt every backing buffer to a float64 or complex128 lane so mixed
//     dtypes share one accessor kernel.
//
// Contract:
//   - Reads convert exactly except int64/uint64 magnitudes above 2^53.
//   - Writes into integer buffers truncate toward zero, saturate at the type
//     bounds and map NaN to 0. uint8c rounds half to even and clamps to
//     [0, 255]. bool stores v != 0.
//   - Complex lanes over real buffers read a zero imaginary part and write
//     the real part only.

package ndarray

import (
	"math"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/strided"
)

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type realNumber interface {
	integer | ~float32 | ~float64
}

// realLane reads and writes a real buffer as float64.
type realLane[T realNumber] struct {
	s   []T
	put func(float64) T
}

func (l realLane[T]) Get(i int) float64    { return float64(l.s[i]) }
func (l realLane[T]) Set(i int, v float64) { l.s[i] = l.put(v) }
func (l realLane[T]) Len() int             { return len(l.s) }

// boolLane reads true as 1.
type boolLane []bool

func (l boolLane) Get(i int) float64 {
	if l[i] {
		return 1
	}

	return 0
}
func (l boolLane) Set(i int, v float64) { l[i] = v != 0 }
func (l boolLane) Len() int             { return len(l) }

// complexLane widens complex64 buffers to complex128.
type complexLane[T ~complex64 | ~complex128] []T

func (l complexLane[T]) Get(i int) complex128    { return complex128(l[i]) }
func (l complexLane[T]) Set(i int, v complex128) { l[i] = T(v) }
func (l complexLane[T]) Len() int                { return len(l) }

// realAsComplex lifts a float64 lane into the complex plane.
type realAsComplex struct{ r strided.Accessor[float64] }

func (l realAsComplex) Get(i int) complex128    { return complex(l.r.Get(i), 0) }
func (l realAsComplex) Set(i int, v complex128) { l.r.Set(i, real(v)) }
func (l realAsComplex) Len() int                { return l.r.Len() }

// saturate converts v to an integer type with NaN → 0 and bound clamping.
// float64(hi) rounds up to a power of two for 64-bit types, so the >= test
// also catches values one ulp past the bound.
func saturate[T integer](v float64, lo, hi T) T {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= float64(lo):
		return lo
	case v >= float64(hi):
		return hi
	}

	return T(v)
}

func clampUint8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}

	return uint8(math.Max(0, math.Min(255, math.RoundToEven(v))))
}

// realLaneOf returns the float64 lane for a's buffer, or ErrUnsupportedDType
// for complex buffers.
func realLaneOf(a *Array) (strided.AccessorView[float64], error) {
	var buf strided.Accessor[float64]
	switch s := a.data.(type) {
	case []bool:
		buf = boolLane(s)
	case []int8:
		buf = realLane[int8]{s, func(v float64) int8 { return saturate[int8](v, math.MinInt8, math.MaxInt8) }}
	case []int16:
		buf = realLane[int16]{s, func(v float64) int16 { return saturate[int16](v, math.MinInt16, math.MaxInt16) }}
	case []int32:
		buf = realLane[int32]{s, func(v float64) int32 { return saturate[int32](v, math.MinInt32, math.MaxInt32) }}
	case []int64:
		buf = realLane[int64]{s, func(v float64) int64 { return saturate[int64](v, math.MinInt64, math.MaxInt64) }}
	case []uint8:
		if a.dt == dtype.Uint8c {
			buf = realLane[uint8]{s, clampUint8}
		} else {
			buf = realLane[uint8]{s, func(v float64) uint8 { return saturate[uint8](v, 0, math.MaxUint8) }}
		}
	case []uint16:
		buf = realLane[uint16]{s, func(v float64) uint16 { return saturate[uint16](v, 0, math.MaxUint16) }}
	case []uint32:
		buf = realLane[uint32]{s, func(v float64) uint32 { return saturate[uint32](v, 0, math.MaxUint32) }}
	case []uint64:
		buf = realLane[uint64]{s, func(v float64) uint64 { return saturate[uint64](v, 0, math.MaxUint64) }}
	case []float32:
		buf = realLane[float32]{s, func(v float64) float32 { return float32(v) }}
	case []float64:
		buf = realLane[float64]{s, func(v float64) float64 { return v }}
	default:
		return strided.AccessorView[float64]{}, ErrUnsupportedDType
	}

	return strided.AccessorView[float64]{Buf: buf, Shape: a.shape, Strides: a.strides, Offset: a.offset}, nil
}

// complexLaneOf returns the complex128 lane for any buffer.
func complexLaneOf(a *Array) (strided.AccessorView[complex128], error) {
	var buf strided.Accessor[complex128]
	switch s := a.data.(type) {
	case []complex64:
		buf = complexLane[complex64](s)
	case []complex128:
		buf = complexLane[complex128](s)
	default:
		r, err := realLaneOf(a)
		if err != nil {
			return strided.AccessorView[complex128]{}, err
		}
		buf = realAsComplex{r.Buf}
	}

	return strided.AccessorView[complex128]{Buf: buf, Shape: a.shape, Strides: a.strides, Offset: a.offset}, nil
}

// broadcastLane re-strides an input lane to the output shape.
func broadcastLane[T any](v strided.AccessorView[T], shape []int) (strided.AccessorView[T], error) {
	strides, err := strided.BroadcastStrides(v.Shape, v.Strides, shape)
	if err != nil {
		return strided.AccessorView[T]{}, fromStrided(err)
	}
	v.Shape, v.Strides = shape, strides

	return v, nil
}
