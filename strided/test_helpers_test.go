// SPDX-License-Identifier: MIT
// Package strided_test contains shared fixtures for the strided kernel tests.

package strided_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/strided"
	"github.com/stretchr/testify/require"
)

// iota64 returns [start, start+1, ..., start+n-1].
func iota64(n int, start float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}

	return out
}

// forEachIndex calls fn for every multi-index of shape in row-major order.
func forEachIndex(t *testing.T, shape []int, fn func(idx []int)) {
	t.Helper()
	total := strided.Numel(shape)
	for k := 0; k < total; k++ {
		idx, err := strided.Ind2Sub(shape, strided.RowMajor, k, strided.Throw)
		require.NoError(t, err)
		fn(idx)
	}
}

// mustAt reads v at idx or fails the test.
func mustAt[T any](t *testing.T, v strided.View[T], idx ...int) T {
	t.Helper()
	x, err := v.At(idx...)
	require.NoError(t, err, "At(%v)", idx)

	return x
}

// mustContiguous wraps data as a dense view or fails the test.
func mustContiguous[T any](t *testing.T, data []T, shape []int, order strided.Order) strided.View[T] {
	t.Helper()
	v, err := strided.Contiguous(data, shape, order)
	require.NoError(t, err)

	return v
}
