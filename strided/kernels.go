// SPDX-License-Identifier: MIT
// Package: strided
//
// Purpose:
//   - Elementwise N-ary apply loops over slice-backed views.
//
// Contract (all kernels):
//   - Inputs share the output's logical shape; strides slices have len(out.Shape).
//   - No validation; a zero-length dimension is a no-op.
//   - 0-d, 1-d and 2-d loops are open-coded; the 2-d inner loop runs over
//     the output dimension with the smaller |stride|. Higher ranks run the
//     innermost dimension inline and advance the outer ones with a walker.
//
// Complexity:
//   - Time O(Numel(shape)), Space O(ndims).

package strided

// Nullary writes f() into every element of y.
func Nullary[T any](y View[T], f func() T) {
	shape := y.Shape
	if hasZero(shape) {
		return
	}
	switch len(shape) {
	case 0:
		y.Data[y.Offset] = f()
		return
	case 1:
		n, sy, iy := shape[0], y.Strides[0], y.Offset
		for i := 0; i < n; i++ {
			y.Data[iy] = f()
			iy += sy
		}
		return
	case 2:
		o, in := loop2(y.Strides)
		n0, n1 := shape[o], shape[in]
		sy0, sy1 := y.Strides[o], y.Strides[in]
		oy := y.Offset
		for i := 0; i < n0; i++ {
			iy := oy
			for j := 0; j < n1; j++ {
				y.Data[iy] = f()
				iy += sy1
			}
			oy += sy0
		}
		return
	}
	w := newWalker(shape, [][]int{y.Strides}, []int{y.Offset}, 1)
	n0, sy := w.shape[0], w.strides[0][0]
	for {
		iy := w.pos[0]
		for i := 0; i < n0; i++ {
			y.Data[iy] = f()
			iy += sy
		}
		if !w.next() {
			return
		}
	}
}

// Fill writes v into every element of y.
func Fill[T any](y View[T], v T) {
	Nullary(y, func() T { return v })
}

// Unary writes y[idx] = f(x[idx]).
func Unary[T, U any](x View[T], y View[U], f func(T) U) {
	shape := y.Shape
	if hasZero(shape) {
		return
	}
	switch len(shape) {
	case 0:
		y.Data[y.Offset] = f(x.Data[x.Offset])
		return
	case 1:
		n := shape[0]
		sx, sy := x.Strides[0], y.Strides[0]
		ix, iy := x.Offset, y.Offset
		for i := 0; i < n; i++ {
			y.Data[iy] = f(x.Data[ix])
			ix += sx
			iy += sy
		}
		return
	case 2:
		o, in := loop2(y.Strides)
		n0, n1 := shape[o], shape[in]
		sx0, sx1 := x.Strides[o], x.Strides[in]
		sy0, sy1 := y.Strides[o], y.Strides[in]
		ox, oy := x.Offset, y.Offset
		for i := 0; i < n0; i++ {
			ix, iy := ox, oy
			for j := 0; j < n1; j++ {
				y.Data[iy] = f(x.Data[ix])
				ix += sx1
				iy += sy1
			}
			ox += sx0
			oy += sy0
		}
		return
	}
	w := newWalker(shape, [][]int{x.Strides, y.Strides}, []int{x.Offset, y.Offset}, 1)
	n0 := w.shape[0]
	sx, sy := w.strides[0][0], w.strides[1][0]
	for {
		ix, iy := w.pos[0], w.pos[1]
		for i := 0; i < n0; i++ {
			y.Data[iy] = f(x.Data[ix])
			ix += sx
			iy += sy
		}
		if !w.next() {
			return
		}
	}
}

// Binary writes z[idx] = f(x[idx], y[idx]).
func Binary[T, U, V any](x View[T], y View[U], z View[V], f func(T, U) V) {
	shape := z.Shape
	if hasZero(shape) {
		return
	}
	switch len(shape) {
	case 0:
		z.Data[z.Offset] = f(x.Data[x.Offset], y.Data[y.Offset])
		return
	case 1:
		n := shape[0]
		sx, sy, sz := x.Strides[0], y.Strides[0], z.Strides[0]
		ix, iy, iz := x.Offset, y.Offset, z.Offset
		for i := 0; i < n; i++ {
			z.Data[iz] = f(x.Data[ix], y.Data[iy])
			ix += sx
			iy += sy
			iz += sz
		}
		return
	case 2:
		o, in := loop2(z.Strides)
		n0, n1 := shape[o], shape[in]
		sx0, sx1 := x.Strides[o], x.Strides[in]
		sy0, sy1 := y.Strides[o], y.Strides[in]
		sz0, sz1 := z.Strides[o], z.Strides[in]
		ox, oy, oz := x.Offset, y.Offset, z.Offset
		for i := 0; i < n0; i++ {
			ix, iy, iz := ox, oy, oz
			for j := 0; j < n1; j++ {
				z.Data[iz] = f(x.Data[ix], y.Data[iy])
				ix += sx1
				iy += sy1
				iz += sz1
			}
			ox += sx0
			oy += sy0
			oz += sz0
		}
		return
	}
	w := newWalker(shape, [][]int{x.Strides, y.Strides, z.Strides}, []int{x.Offset, y.Offset, z.Offset}, 1)
	n0 := w.shape[0]
	sx, sy, sz := w.strides[0][0], w.strides[1][0], w.strides[2][0]
	for {
		ix, iy, iz := w.pos[0], w.pos[1], w.pos[2]
		for i := 0; i < n0; i++ {
			z.Data[iz] = f(x.Data[ix], y.Data[iy])
			ix += sx
			iy += sy
			iz += sz
		}
		if !w.next() {
			return
		}
	}
}

// Ternary writes out[idx] = f(w[idx], x[idx], y[idx]).
func Ternary[A, B, C, D any](a View[A], b View[B], c View[C], out View[D], f func(A, B, C) D) {
	shape := out.Shape
	if hasZero(shape) {
		return
	}
	switch len(shape) {
	case 0:
		out.Data[out.Offset] = f(a.Data[a.Offset], b.Data[b.Offset], c.Data[c.Offset])
		return
	case 1:
		n := shape[0]
		sa, sb, sc, so := a.Strides[0], b.Strides[0], c.Strides[0], out.Strides[0]
		ia, ib, ic, io := a.Offset, b.Offset, c.Offset, out.Offset
		for i := 0; i < n; i++ {
			out.Data[io] = f(a.Data[ia], b.Data[ib], c.Data[ic])
			ia += sa
			ib += sb
			ic += sc
			io += so
		}
		return
	case 2:
		o, in := loop2(out.Strides)
		n0, n1 := shape[o], shape[in]
		sa0, sa1 := a.Strides[o], a.Strides[in]
		sb0, sb1 := b.Strides[o], b.Strides[in]
		sc0, sc1 := c.Strides[o], c.Strides[in]
		so0, so1 := out.Strides[o], out.Strides[in]
		oa, ob, oc, oo := a.Offset, b.Offset, c.Offset, out.Offset
		for i := 0; i < n0; i++ {
			ia, ib, ic, io := oa, ob, oc, oo
			for j := 0; j < n1; j++ {
				out.Data[io] = f(a.Data[ia], b.Data[ib], c.Data[ic])
				ia += sa1
				ib += sb1
				ic += sc1
				io += so1
			}
			oa += sa0
			ob += sb0
			oc += sc0
			oo += so0
		}
		return
	}
	w := newWalker(shape,
		[][]int{a.Strides, b.Strides, c.Strides, out.Strides},
		[]int{a.Offset, b.Offset, c.Offset, out.Offset}, 1)
	n0 := w.shape[0]
	sa, sb, sc, so := w.strides[0][0], w.strides[1][0], w.strides[2][0], w.strides[3][0]
	for {
		ia, ib, ic, io := w.pos[0], w.pos[1], w.pos[2], w.pos[3]
		for i := 0; i < n0; i++ {
			out.Data[io] = f(a.Data[ia], b.Data[ib], c.Data[ic])
			ia += sa
			ib += sb
			ic += sc
			io += so
		}
		if !w.next() {
			return
		}
	}
}
