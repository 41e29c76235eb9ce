// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the matrix tests.
//   - hide{} masks the concrete *Dense type so the gather path of every
//     kernel is exercised against the strided path.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

// testTol is the default absolute tolerance for float comparisons.
const testTol = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// FromRows builds a *Dense from row literals or fails the test.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, rows)
	c := len(rows[0])
	flat := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		require.Len(t, row, c)
		flat = append(flat, row...)
	}
	m, err := matrix.NewDenseFrom(len(rows), c, flat)
	require.NoError(t, err)

	return m
}

// ToRows reads any Matrix back into row literals.
func ToRows(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// RequireMatrixInDelta compares two matrices element-wise within tol.
func RequireMatrixInDelta(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	w, g := ToRows(t, want), ToRows(t, got)
	for i := range w {
		require.InDeltaSlicef(t, w[i], g[i], tol, "row %d", i)
	}
}

// sample3x2 is a small data matrix with distinct column scales.
func sample3x2(t *testing.T) *matrix.Dense {
	t.Helper()

	return FromRows(t, [][]float64{
		{1, 10},
		{2, 20},
		{4, 60},
	})
}
