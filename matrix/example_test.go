// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

// ExampleDense_T shows that T and Window are views sharing one buffer.
func ExampleDense_T() {
	m, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	fmt.Print(m.T())

	w, _ := m.Window(0, 1, 2, 2)
	_ = w.Set(0, 0, 20)
	fmt.Print(m)
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
	// [1, 20, 3]
	// [4, 5, 6]
}

// ExampleCovariance computes a sample covariance and the column means.
func ExampleCovariance() {
	X, _ := matrix.NewDenseFrom(3, 2, []float64{
		1, 10,
		2, 20,
		4, 60,
	})
	cov, means, _ := matrix.Covariance(X)
	fmt.Printf("means: %.4f\n", means)
	for i := 0; i < cov.Rows(); i++ {
		a, _ := cov.At(i, 0)
		b, _ := cov.At(i, 1)
		fmt.Printf("%.4f %.4f\n", a, b)
	}
	// Output:
	// means: [2.3333 30.0000]
	// 2.3333 40.0000
	// 40.0000 700.0000
}

// ExampleColumnVariances contrasts sample and population variance.
func ExampleColumnVariances() {
	X, _ := matrix.NewDenseFrom(4, 1, []float64{2, 4, 4, 6})
	sample, _ := matrix.ColumnVariances(X)
	population, _ := matrix.ColumnVariances(X, matrix.WithCorrection(0))
	fmt.Println(sample, population)
	// Output:
	// [2.6666666666666665] [2]
}

// ExampleNormalizeRowsL1 builds a row-stochastic matrix.
func ExampleNormalizeRowsL1() {
	X, _ := matrix.NewDenseFrom(2, 2, []float64{1, 3, 0, 0})
	Y, norms, _ := matrix.NormalizeRowsL1(X)
	fmt.Print(Y)
	fmt.Println(norms)
	// Output:
	// [0.25, 0.75]
	// [0, 0]
	// [4 0]
}
