// SPDX-License-Identifier: MIT
// Package: strided
//
// Purpose:
//   - Accessor-backed twins of the slice kernels. Index arithmetic and loop
//     order are identical; only element access goes through Get/Set.

package strided

// NullaryAccessor writes f() into every element of y.
func NullaryAccessor[T any](y AccessorView[T], f func() T) {
	shape := y.Shape
	if hasZero(shape) {
		return
	}
	if len(shape) == 0 {
		y.Buf.Set(y.Offset, f())
		return
	}
	w := newWalker(shape, [][]int{y.Strides}, []int{y.Offset}, 1)
	n0, sy := w.shape[0], w.strides[0][0]
	for {
		iy := w.pos[0]
		for i := 0; i < n0; i++ {
			y.Buf.Set(iy, f())
			iy += sy
		}
		if !w.next() {
			return
		}
	}
}

// UnaryAccessor writes y[idx] = f(x[idx]).
func UnaryAccessor[T, U any](x AccessorView[T], y AccessorView[U], f func(T) U) {
	shape := y.Shape
	if hasZero(shape) {
		return
	}
	if len(shape) == 0 {
		y.Buf.Set(y.Offset, f(x.Buf.Get(x.Offset)))
		return
	}
	w := newWalker(shape, [][]int{x.Strides, y.Strides}, []int{x.Offset, y.Offset}, 1)
	n0 := w.shape[0]
	sx, sy := w.strides[0][0], w.strides[1][0]
	for {
		ix, iy := w.pos[0], w.pos[1]
		for i := 0; i < n0; i++ {
			y.Buf.Set(iy, f(x.Buf.Get(ix)))
			ix += sx
			iy += sy
		}
		if !w.next() {
			return
		}
	}
}

// BinaryAccessor writes z[idx] = f(x[idx], y[idx]).
func BinaryAccessor[T, U, V any](x AccessorView[T], y AccessorView[U], z AccessorView[V], f func(T, U) V) {
	shape := z.Shape
	if hasZero(shape) {
		return
	}
	if len(shape) == 0 {
		z.Buf.Set(z.Offset, f(x.Buf.Get(x.Offset), y.Buf.Get(y.Offset)))
		return
	}
	w := newWalker(shape, [][]int{x.Strides, y.Strides, z.Strides}, []int{x.Offset, y.Offset, z.Offset}, 1)
	n0 := w.shape[0]
	sx, sy, sz := w.strides[0][0], w.strides[1][0], w.strides[2][0]
	for {
		ix, iy, iz := w.pos[0], w.pos[1], w.pos[2]
		for i := 0; i < n0; i++ {
			z.Buf.Set(iz, f(x.Buf.Get(ix), y.Buf.Get(iy)))
			ix += sx
			iy += sy
			iz += sz
		}
		if !w.next() {
			return
		}
	}
}

// TernaryAccessor writes out[idx] = f(a[idx], b[idx], c[idx]).
func TernaryAccessor[A, B, C, D any](a AccessorView[A], b AccessorView[B], c AccessorView[C], out AccessorView[D], f func(A, B, C) D) {
	shape := out.Shape
	if hasZero(shape) {
		return
	}
	if len(shape) == 0 {
		out.Buf.Set(out.Offset, f(a.Buf.Get(a.Offset), b.Buf.Get(b.Offset), c.Buf.Get(c.Offset)))
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
			out.Buf.Set(io, f(a.Buf.Get(ia), b.Buf.Get(ib), c.Buf.Get(ic)))
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
