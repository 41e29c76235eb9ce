// SPDX-License-Identifier: MIT
// Package dists: sentinel error set.
// Methods report invalid parameters with NaN; only constructors return errors.

package dists

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a distribution parameter outside its domain.
var ErrInvalidParameter = errors.New("dists: invalid distribution parameter")

// distsErrorf wraps err with an operation tag, preserving it for errors.Is.
func distsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
