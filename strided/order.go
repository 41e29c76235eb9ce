// SPDX-License-Identifier: MIT

package strided

// Order is the memory layout used when deriving contiguous strides.
type Order uint8

const (
	// RowMajor places the last dimension contiguously (C order).
	RowMajor Order = iota
	// ColumnMajor places the first dimension contiguously (Fortran order).
	ColumnMajor
)

// String returns "row-major" or "column-major".
func (o Order) String() string {
	if o == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}

// IndexMode controls how out-of-range indices are handled by Ind2Sub/Sub2Ind.
type IndexMode uint8

const (
	// Throw reports ErrOutOfBounds.
	Throw IndexMode = iota
	// Wrap reduces the index modulo the dimension (negative indices wrap from the end).
	Wrap
	// Clamp pins the index to [0, n-1].
	Clamp
)
