// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All public entry points wrap these with ndarrayErrorf(op, err) so callers
// can match via errors.Is. Sentinels from strided are translated, never
// leaked, so callers only need this package's set.

package ndarray

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/strided"
)

var (
	// ErrNilArray indicates a nil *Array argument.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrBadShape indicates a negative dimension or shape/strides length mismatch.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfBounds indicates an index or reachable element outside the buffer.
	ErrOutOfBounds = errors.New("ndarray: index out of bounds")

	// ErrShapeMismatch indicates arrays whose shapes must be equal but are not.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrNotBroadcastable indicates an input that cannot broadcast to the output shape.
	ErrNotBroadcastable = errors.New("ndarray: shapes are not broadcast compatible")

	// ErrDTypeMismatch indicates a typed accessor requested with the wrong element type.
	ErrDTypeMismatch = errors.New("ndarray: data type mismatch")

	// ErrCastNotAllowed indicates a conversion refused by the casting policy.
	ErrCastNotAllowed = errors.New("ndarray: cast not allowed by casting policy")

	// ErrNoPromotion indicates two dtypes without a common safe target.
	ErrNoPromotion = errors.New("ndarray: no common data type")

	// ErrUnsupportedDType indicates a dtype the operation cannot handle.
	ErrUnsupportedDType = errors.New("ndarray: unsupported data type")

	// ErrReadOnly indicates a write into a broadcast (read-only) array.
	ErrReadOnly = errors.New("ndarray: array is read-only")
)

// ndarrayErrorf wraps err with an operation tag, preserving it for errors.Is.
func ndarrayErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// fromStrided translates strided sentinels into this package's set.
func fromStrided(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, strided.ErrBadShape):
		return ErrBadShape
	case errors.Is(err, strided.ErrOutOfBounds):
		return ErrOutOfBounds
	case errors.Is(err, strided.ErrNotBroadcastable):
		return ErrNotBroadcastable
	case errors.Is(err, strided.ErrBadDimension):
		return ErrBadShape
	default:
		return err
	}
}
