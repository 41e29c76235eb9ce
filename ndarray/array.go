// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Define Array: a typed flat buffer plus dtype tag and strided descriptor.
//
// Contract:
//   - Constructors validate once; every Array in circulation has an in-bounds
//     descriptor, so kernels run without per-element checks.
//   - data always holds the Go slice type backing dt ([]uint8 for uint8c).
//   - Views (Broadcast, Reverse, AsUint8c) share data with their source.

package ndarray

import (
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/strided"
)

// Element lists the Go element types an Array can hold.
type Element interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Array is a dtype-tagged strided window over a typed buffer.
type Array struct {
	dt       dtype.DataType
	data     any // []T backing dt
	shape    []int
	strides  []int
	offset   int
	readOnly bool // set on broadcast views
}

// New wraps data with an explicit strided descriptor.
// Platform-sized int/uint and named element types report ErrUnsupportedDType.
func New[T Element](data []T, shape, strides []int, offset int) (*Array, error) {
	dt := dtype.Of[T]()
	if dt == dtype.Generic {
		return nil, ndarrayErrorf("New", ErrUnsupportedDType)
	}
	v, err := strided.NewView(data, shape, strides, offset)
	if err != nil {
		return nil, ndarrayErrorf("New", fromStrided(err))
	}

	return &Array{dt: dt, data: data, shape: v.Shape, strides: v.Strides, offset: offset}, nil
}

// FromSlice wraps data as a contiguous array of the given shape and order.
func FromSlice[T Element](data []T, shape []int, order strided.Order) (*Array, error) {
	dt := dtype.Of[T]()
	if dt == dtype.Generic {
		return nil, ndarrayErrorf("FromSlice", ErrUnsupportedDType)
	}
	v, err := strided.Contiguous(data, shape, order)
	if err != nil {
		return nil, ndarrayErrorf("FromSlice", fromStrided(err))
	}

	return &Array{dt: dt, data: data, shape: v.Shape, strides: v.Strides}, nil
}

// Zeros allocates a zero-filled contiguous array of dtype dt.
func Zeros(dt dtype.DataType, shape []int, order strided.Order) (*Array, error) {
	if err := strided.ValidateShape(shape); err != nil {
		return nil, ndarrayErrorf("Zeros", ErrBadShape)
	}
	data := makeBuffer(dt, strided.Numel(shape))
	if data == nil {
		return nil, ndarrayErrorf("Zeros", ErrUnsupportedDType)
	}

	return &Array{
		dt:      dt,
		data:    data,
		shape:   append([]int(nil), shape...),
		strides: strided.ContiguousStrides(shape, order),
	}, nil
}

// makeBuffer allocates n elements of the Go type backing dt, or nil.
func makeBuffer(dt dtype.DataType, n int) any {
	switch dt {
	case dtype.Bool:
		return make([]bool, n)
	case dtype.Int8:
		return make([]int8, n)
	case dtype.Int16:
		return make([]int16, n)
	case dtype.Int32:
		return make([]int32, n)
	case dtype.Int64:
		return make([]int64, n)
	case dtype.Uint8, dtype.Uint8c:
		return make([]uint8, n)
	case dtype.Uint16:
		return make([]uint16, n)
	case dtype.Uint32:
		return make([]uint32, n)
	case dtype.Uint64:
		return make([]uint64, n)
	case dtype.Float32:
		return make([]float32, n)
	case dtype.Float64:
		return make([]float64, n)
	case dtype.Complex64:
		return make([]complex64, n)
	case dtype.Complex128:
		return make([]complex128, n)
	}

	return nil
}

// DType returns the element data type.
func (a *Array) DType() dtype.DataType { return a.dt }

// Shape returns a copy of the shape.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Strides returns a copy of the strides, in elements.
func (a *Array) Strides() []int { return append([]int(nil), a.strides...) }

// Offset returns the buffer index of the first logical element.
func (a *Array) Offset() int { return a.offset }

// NDims returns the number of dimensions.
func (a *Array) NDims() int { return len(a.shape) }

// Len returns the number of logical elements.
func (a *Array) Len() int { return strided.Numel(a.shape) }

// Data returns the backing buffer ([]T for the Go type of DType).
func (a *Array) Data() any { return a.data }

// ReadOnly reports whether a is a broadcast view that refuses writes.
func (a *Array) ReadOnly() bool { return a.readOnly }

// Contiguous reports whether a is dense in row- or column-major order.
func (a *Array) Contiguous() bool { return strided.IsContiguous(a.shape, a.strides) }

// At returns the element at idx as a Go value of the buffer type.
func (a *Array) At(idx ...int) (any, error) {
	i, err := a.index(idx)
	if err != nil {
		return nil, ndarrayErrorf("At", err)
	}

	return elementAt(a.data, i), nil
}

// index resolves a multi-index to a buffer position.
func (a *Array) index(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrBadShape
	}
	pos := a.offset
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			return 0, ErrOutOfBounds
		}
		pos += i * a.strides[d]
	}

	return pos, nil
}

// elementAt reads one buffer cell.
func elementAt(data any, i int) any {
	switch s := data.(type) {
	case []bool:
		return s[i]
	case []int8:
		return s[i]
	case []int16:
		return s[i]
	case []int32:
		return s[i]
	case []int64:
		return s[i]
	case []uint8:
		return s[i]
	case []uint16:
		return s[i]
	case []uint32:
		return s[i]
	case []uint64:
		return s[i]
	case []float32:
		return s[i]
	case []float64:
		return s[i]
	case []complex64:
		return s[i]
	case []complex128:
		return s[i]
	}

	return nil
}

// ViewOf returns a's typed strided view. T must be the Go type backing
// a's dtype (uint8 for uint8c), else ErrDTypeMismatch.
func ViewOf[T Element](a *Array) (strided.View[T], error) {
	if a == nil {
		return strided.View[T]{}, ndarrayErrorf("ViewOf", ErrNilArray)
	}
	data, ok := a.data.([]T)
	if !ok {
		return strided.View[T]{}, ndarrayErrorf("ViewOf", ErrDTypeMismatch)
	}

	return strided.View[T]{Data: data, Shape: a.Shape(), Strides: a.Strides(), Offset: a.offset}, nil
}

// with returns a view of a sharing its buffer under a new descriptor.
func (a *Array) with(shape, strides []int, offset int) *Array {
	return &Array{dt: a.dt, data: a.data, shape: shape, strides: strides, offset: offset, readOnly: a.readOnly}
}

// AsUint8c reinterprets a uint8 array as clamped uint8 (and back via
// AsUint8). Both dtypes share the []uint8 buffer.
func (a *Array) AsUint8c() (*Array, error) {
	return a.retag("AsUint8c", dtype.Uint8, dtype.Uint8c)
}

// AsUint8 reinterprets a uint8c array as wrapping uint8.
func (a *Array) AsUint8() (*Array, error) {
	return a.retag("AsUint8", dtype.Uint8c, dtype.Uint8)
}

func (a *Array) retag(op string, from, to dtype.DataType) (*Array, error) {
	if a.dt != from && a.dt != to {
		return nil, ndarrayErrorf(op, ErrDTypeMismatch)
	}
	b := a.with(a.Shape(), a.Strides(), a.offset)
	b.dt = to

	return b, nil
}

// Broadcast returns a read-only view of a with the target shape.
// Size-1 and missing leading dimensions repeat with stride 0.
func Broadcast(a *Array, shape []int) (*Array, error) {
	if a == nil {
		return nil, ndarrayErrorf("Broadcast", ErrNilArray)
	}
	if err := strided.ValidateShape(shape); err != nil {
		return nil, ndarrayErrorf("Broadcast", ErrBadShape)
	}
	strides, err := strided.BroadcastStrides(a.shape, a.strides, shape)
	if err != nil {
		return nil, ndarrayErrorf("Broadcast", fromStrided(err))
	}
	b := a.with(append([]int(nil), shape...), strides, a.offset)
	b.readOnly = true

	return b, nil
}

// Reverse returns a view of a with dimension dim traversed backwards.
func Reverse(a *Array, dim int) (*Array, error) {
	if a == nil {
		return nil, ndarrayErrorf("Reverse", ErrNilArray)
	}
	if dim < 0 || dim >= len(a.shape) {
		return nil, ndarrayErrorf("Reverse", ErrBadShape)
	}
	strides := a.Strides()
	offset := a.offset
	if n := a.shape[dim]; n > 0 {
		offset += (n - 1) * strides[dim]
	}
	strides[dim] = -strides[dim]

	return a.with(a.Shape(), strides, offset), nil
}

// Transpose returns a view of a with its dimensions reversed.
func Transpose(a *Array) (*Array, error) {
	if a == nil {
		return nil, ndarrayErrorf("Transpose", ErrNilArray)
	}
	n := len(a.shape)
	shape, strides := make([]int, n), make([]int, n)
	for d := 0; d < n; d++ {
		shape[d] = a.shape[n-1-d]
		strides[d] = a.strides[n-1-d]
	}

	return a.with(shape, strides, a.offset), nil
}
