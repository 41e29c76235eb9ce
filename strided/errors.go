// SPDX-License-Identifier: MIT
// Package strided: sentinel error set.
// Kernels never return errors (see doc.go); these sentinels are produced by
// descriptor constructors and view rewrites, and are wrapped with
// stridedErrorf(op, err) so callers match them via errors.Is.

package strided

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates a negative dimension or mismatched shape/strides lengths.
	ErrBadShape = errors.New("strided: invalid shape")

	// ErrOutOfBounds indicates an index or reachable element outside the buffer.
	ErrOutOfBounds = errors.New("strided: index out of bounds")

	// ErrBadDimension indicates a dimension argument outside [0, ndims).
	ErrBadDimension = errors.New("strided: invalid dimension")

	// ErrBadPermutation indicates axes that are not a permutation of 0..ndims-1.
	ErrBadPermutation = errors.New("strided: invalid axis permutation")

	// ErrNotBroadcastable indicates shapes that cannot be broadcast together.
	ErrNotBroadcastable = errors.New("strided: shapes are not broadcast compatible")

	// ErrBadSlice indicates a zero slice step.
	ErrBadSlice = errors.New("strided: invalid slice")
)

// stridedErrorf wraps err with an operation tag, preserving it for errors.Is.
func stridedErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
