// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // assert matrix creation succeeded

	_, err = m.At(-1, 0)                                // attempt At() with negative row index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	_, err = m.At(0, 2)                                 // attempt At() with column index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(2, 0, 1.23)                             // attempt Set() with row index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(0, -1, 4.56)                            // attempt Set() with negative column index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3) // create a 2x3 Dense matrix
	require.NoError(t, err)         // ensure valid creation

	err = m.Set(1, 2, 7.89) // set element at row 1, column 2
	require.NoError(t, err) // assert Set() succeeded

	val, err := m.At(1, 2)      // retrieve the set element
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, val) // assert retrieved value matches set value
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // validate creation

	// initialize matrix elements to distinct values
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone() // clone the matrix

	// modify the clone, but not the original
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)     // retrieve original matrix element
	require.NoError(t, err)        // assert At() succeeded on original
	require.Equal(t, 1.0, origVal) // expect original remains unchanged

	cloneVal, err := clone.At(0, 0) // retrieve clone's element
	require.NoError(t, err)         // assert At() succeeded on clone
	require.Equal(t, 3.0, cloneVal) // expect clone reflects new value
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 matrix for formatting test
	require.NoError(t, err)         // ensure valid creation

	// populate matrix with sample values
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)

	expected := "[1, 2]\n[3, 4]\n"         // define expected string output
	require.Equal(t, expected, m.String()) // assert String() output matches expected format
}

// TestNewDenseFrom covers copy semantics, length mismatch and NaN policy.
func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)
	data[0] = 100 // the matrix owns a copy

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, ToRows(t, m))

	_, err = matrix.NewDenseFrom(2, 3, data[:5])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
}

// TestSetRejectsNonFinite checks the numeric policy captured at creation.
func TestSetRejectsNonFinite(t *testing.T) {
	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))
}

// TestTransposeView verifies T() shares storage and swaps strides.
func TestTransposeView(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	mt := m.T()

	require.Equal(t, 3, mt.Rows())
	require.Equal(t, 2, mt.Cols())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, ToRows(t, mt))
	require.Equal(t, []int{1, 3}, mt.View().Strides)

	require.NoError(t, mt.Set(2, 0, 30)) // writes through to m(0,2)
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 30.0, v)

	// Clone of a view is compact and independent.
	c := mt.Clone().(*matrix.Dense)
	require.Equal(t, []int{2, 1}, c.View().Strides)
	require.Equal(t, ToRows(t, mt), ToRows(t, c))
}

// TestWindow covers no-copy windows, zero-area windows and bad bounds.
func TestWindow(t *testing.T) {
	m := FromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	w, err := m.Window(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 6}, {8, 9}}, ToRows(t, w))

	require.NoError(t, w.Set(0, 0, -5))
	v, _ := m.At(1, 1)
	require.Equal(t, -5.0, v)

	z, err := m.Window(3, 0, 0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, z.Rows())
	require.Equal(t, 3, z.Cols())

	_, err = m.Window(2, 2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.Window(-1, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestInduced materializes index-selected submatrices.
func TestInduced(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	sub, err := m.Induced([]int{1, 1}, []int{2, 0})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 4}, {6, 4}}, ToRows(t, sub))

	_, err = m.Induced([]int{2}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced([]int{0}, []int{-1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDoAndApply checks row-major visiting, early stop and in-place Apply.
func TestDoAndApply(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	var seen []float64
	m.T().Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 3, 2}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v + float64(10*i+j) }))
	require.Equal(t, [][]float64{{1, 3}, {13, 15}}, ToRows(t, m))

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 {
			return math.NaN()
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewIdentityAndZerosLike covers the constructors and policy inheritance.
func TestNewIdentityAndZerosLike(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, ToRows(t, I))

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// A transposed view yields a compact matrix of the transposed shape.
	X := sample3x2(t)
	Z, err := matrix.ZerosLike(X.T())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, ToRows(t, Z))
	require.Equal(t, []int{3, 1}, Z.View().Strides)
	require.ErrorIs(t, Z.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	Z, err = matrix.ZerosLike(loose)
	require.NoError(t, err)
	require.NoError(t, Z.Set(1, 1, math.Inf(1)))

	// Zero-area windows are allowed as shape sources.
	empty, err := X.Window(0, 0, 0, 2)
	require.NoError(t, err)
	Z, err = matrix.ZerosLike(empty)
	require.NoError(t, err)
	require.Equal(t, 0, Z.Rows())
	require.Equal(t, 2, Z.Cols())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
