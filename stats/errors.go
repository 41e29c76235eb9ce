// SPDX-License-Identifier: MIT
// Package stats: sentinel error set.
// Numeric kernels report domain failures as NaN; errors only arise from
// parsing textual algorithm names.

package stats

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm indicates a variance algorithm name that is not recognised.
var ErrUnknownAlgorithm = errors.New("stats: unknown variance algorithm")

// statsErrorf wraps err with an operation tag, preserving it for errors.Is.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
