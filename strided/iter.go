// SPDX-License-Identifier: MIT
// Package: strided
//
// Purpose:
//   - Choose the loop nesting for a set of views (LoopOrder).
//   - Provide the odometer walker that advances several physical indices in
//     lock-step over the outer dimensions; kernels run the innermost
//     dimension (or a tile) themselves.

package strided

import "sort"

// LoopOrder returns dimension indices from outermost to innermost. Dimensions
// are sorted by descending |stride| of the first strides argument so that the
// innermost loop moves through memory in the smallest steps. Ties keep the
// row-major order. With no strides the natural row-major order is returned.
func LoopOrder(shape []int, strides ...[]int) []int {
	nd := len(shape)
	order := make([]int, nd)
	for i := range order {
		order[i] = i
	}
	if len(strides) == 0 || len(strides[0]) != nd {
		return order
	}
	key := strides[0]
	sort.SliceStable(order, func(a, b int) bool {
		return abs(key[order[a]]) > abs(key[order[b]])
	})

	return order
}

// loop2 returns the (outer, inner) dimensions of a 2-d nest: the inner one
// has the smaller |stride|, ties keep row-major. It agrees with LoopOrder.
func loop2(strides []int) (outer, inner int) {
	if abs(strides[0]) < abs(strides[1]) {
		return 1, 0
	}

	return 0, 1
}

// walker advances the physical positions of k views through the outer
// dimensions of a loop nest. Dimensions are stored innermost-first; the first
// skip dimensions are iterated by the caller.
type walker struct {
	shape   []int   // loop-ordered, innermost first
	strides [][]int // [view][dim], loop-ordered like shape
	pos     []int   // current physical index per view
	sub     []int   // odometer over shape
	skip    int
}

// newWalker prepares a walker for views sharing shape. The loop order is
// derived from the strides of the last view (the output).
func newWalker(shape []int, strides [][]int, offsets []int, skip int) *walker {
	nd := len(shape)
	order := LoopOrder(shape, strides[len(strides)-1])
	w := &walker{
		shape:   make([]int, nd),
		strides: make([][]int, len(strides)),
		pos:     append([]int(nil), offsets...),
		sub:     make([]int, nd),
		skip:    skip,
	}
	for k := range strides {
		w.strides[k] = make([]int, nd)
	}
	for i := 0; i < nd; i++ {
		d := order[nd-1-i] // innermost first
		w.shape[i] = shape[d]
		for k := range strides {
			w.strides[k][i] = strides[k][d]
		}
	}

	return w
}

// next moves to the following outer position. It returns false once every
// outer position has been visited.
func (w *walker) next() bool {
	for d := w.skip; d < len(w.shape); d++ {
		w.sub[d]++
		for k := range w.pos {
			w.pos[k] += w.strides[k][d]
		}
		if w.sub[d] < w.shape[d] {
			return true
		}
		for k := range w.pos {
			w.pos[k] -= w.shape[d] * w.strides[k][d]
		}
		w.sub[d] = 0
	}

	return false
}
