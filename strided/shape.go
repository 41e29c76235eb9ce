// SPDX-License-Identifier: MIT
// Package: strided
//
// Purpose:
//   - Pure helpers over (shape, strides, offset) descriptors: element counts,
//     contiguous strides, reachable index range, layout detection, and
//     linear-index ↔ subscript conversion.
//
// Determinism & Performance:
//   - All helpers are O(ndims) and allocate at most one result slice.

package strided

// ValidateShape checks that no dimension is negative.
func ValidateShape(shape []int) error {
	for _, n := range shape {
		if n < 0 {
			return stridedErrorf("ValidateShape", ErrBadShape)
		}
	}

	return nil
}

// Numel returns the number of elements described by shape.
// A 0-d shape (len==0) describes a single element. Assumes a validated shape.
func Numel(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// hasZero reports whether any dimension is empty.
func hasZero(shape []int) bool {
	for _, d := range shape {
		if d == 0 {
			return true
		}
	}

	return false
}

// ContiguousStrides returns the strides of a dense buffer of the given shape.
//
//	shape [2 3 4], RowMajor    → [12 4 1]
//	shape [2 3 4], ColumnMajor → [1 2 6]
//
// Zero-length dimensions contribute a factor of 1 so strides stay non-zero.
func ContiguousStrides(shape []int, order Order) []int {
	nd := len(shape)
	strides := make([]int, nd)
	s := 1
	if order == ColumnMajor {
		for d := 0; d < nd; d++ {
			strides[d] = s
			s *= max(shape[d], 1)
		}

		return strides
	}
	for d := nd - 1; d >= 0; d-- {
		strides[d] = s
		s *= max(shape[d], 1)
	}

	return strides
}

// StridesToOffset returns the buffer offset of the first logical element of
// a dense buffer laid out with the given strides: negative strides start at
// the far end of their dimension.
func StridesToOffset(shape, strides []int) int {
	off := 0
	for d, s := range strides {
		if s < 0 && shape[d] > 0 {
			off -= (shape[d] - 1) * s
		}
	}

	return off
}

// MinMaxIndex returns the smallest and largest buffer indices reachable by a
// view. An empty view reaches nothing; both results are then the offset.
func MinMaxIndex(shape, strides []int, offset int) (lo, hi int) {
	lo, hi = offset, offset
	if hasZero(shape) {
		return offset, offset
	}
	for d, s := range strides {
		span := (shape[d] - 1) * s
		if span > 0 {
			hi += span
		} else {
			lo += span
		}
	}

	return lo, hi
}

// StridesOrder reports whether strides follow a row-major (non-increasing
// |stride|) and/or column-major (non-decreasing |stride|) layout. A 0-d or
// 1-d descriptor is both.
func StridesOrder(strides []int) (rowMajor, columnMajor bool) {
	rowMajor, columnMajor = true, true
	for d := 1; d < len(strides); d++ {
		prev, cur := abs(strides[d-1]), abs(strides[d])
		if cur > prev {
			rowMajor = false
		}
		if cur < prev {
			columnMajor = false
		}
	}

	return rowMajor, columnMajor
}

// IsContiguous reports whether the view covers a single gap-free segment of
// its buffer in row-major or column-major layout.
func IsContiguous(shape, strides []int) bool {
	if hasZero(shape) {
		return true
	}
	row, col := StridesOrder(strides)
	if !row && !col {
		return false
	}
	lo, hi := MinMaxIndex(shape, strides, 0)

	return hi-lo+1 == Numel(shape)
}

// Ind2Sub converts a linear index into subscripts for shape in the given order.
func Ind2Sub(shape []int, order Order, idx int, mode IndexMode) ([]int, error) {
	total := Numel(shape)
	if total == 0 {
		return nil, stridedErrorf("Ind2Sub", ErrOutOfBounds)
	}
	idx, ok := resolveIndex(idx, total, mode)
	if !ok {
		return nil, stridedErrorf("Ind2Sub", ErrOutOfBounds)
	}
	nd := len(shape)
	sub := make([]int, nd)
	if order == ColumnMajor {
		for d := 0; d < nd; d++ {
			sub[d] = idx % shape[d]
			idx /= shape[d]
		}

		return sub, nil
	}
	for d := nd - 1; d >= 0; d-- {
		sub[d] = idx % shape[d]
		idx /= shape[d]
	}

	return sub, nil
}

// Sub2Ind converts subscripts into a linear index for shape in the given order.
// The mode is applied to each subscript independently.
func Sub2Ind(shape []int, order Order, sub []int, mode IndexMode) (int, error) {
	if len(sub) != len(shape) {
		return 0, stridedErrorf("Sub2Ind", ErrBadShape)
	}
	strides := ContiguousStrides(shape, order)
	idx := 0
	for d, s := range sub {
		if shape[d] == 0 {
			return 0, stridedErrorf("Sub2Ind", ErrOutOfBounds)
		}
		r, ok := resolveIndex(s, shape[d], mode)
		if !ok {
			return 0, stridedErrorf("Sub2Ind", ErrOutOfBounds)
		}
		idx += r * strides[d]
	}

	return idx, nil
}

// resolveIndex maps i into [0, n) according to mode; n must be positive.
func resolveIndex(i, n int, mode IndexMode) (int, bool) {
	switch mode {
	case Wrap:
		i %= n
		if i < 0 {
			i += n
		}

		return i, true
	case Clamp:
		if i < 0 {
			return 0, true
		}
		if i >= n {
			return n - 1, true
		}

		return i, true
	default:
		if i < 0 || i >= n {
			return 0, false
		}

		return i, true
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
