// SPDX-License-Identifier: MIT

package strided_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/strided"
)

// ExampleUnary doubles a matrix read through a reversed view.
func ExampleUnary() {
	m, _ := strided.Contiguous([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3}, strided.RowMajor)
	r, _ := m.Reverse(1)

	out, _ := strided.Contiguous(make([]float64, 6), []int{2, 3}, strided.RowMajor)
	strided.Unary(r, out, func(v float64) float64 { return 2 * v })
	fmt.Println(out.Data)
	// Output: [6 4 2 12 10 8]
}

// ExampleView_Slice takes every other element walking backwards.
func ExampleView_Slice() {
	v := strided.Vector([]int{0, 1, 2, 3, 4, 5, 6}, 7, 1, 0)
	s, _ := v.Slice(0, 6, -1, -2)
	fmt.Println(s.Shape, s.Strides, s.Offset, s.ToSlice(strided.RowMajor))
	// Output: [4] [-2] 6 [6 4 2 0]
}

// ExampleBroadcastShapes combines a column and a row.
func ExampleBroadcastShapes() {
	shape, err := strided.BroadcastShapes([]int{3, 1}, []int{4})
	fmt.Println(shape, err)
	// Output: [3 4] <nil>
}
