// SPDX-License-Identifier: MIT
// Package: strided
//
// Purpose:
//   - Cache-aware variants of the unary/binary kernels that tile the two
//     innermost loop dimensions into bsize×bsize blocks. Useful when input and
//     output disagree on layout (e.g. copying a transposed view), where the
//     plain loop would stride through one of the buffers.
//
// Notes:
//   - Ranks below 2 fall back to the plain kernels.
//   - bsize ≤ 0 selects BlockSize for the element types involved.

package strided

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// BlockSizeElements is the tile edge used when no element size is known.
const BlockSizeElements = 8

// BlockSizeBytes is the tile edge budget in bytes: one cache line of the
// target CPU (64 on amd64, 128 on arm64 and ppc64).
var BlockSizeBytes = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// BlockSize returns the tile edge, in elements, for buffers whose element
// sizes (in bytes) are given. The largest element decides; unknown sizes
// (≤0) are ignored.
func BlockSize(elemBytes ...int) int {
	widest := 0
	for _, b := range elemBytes {
		widest = max(widest, b)
	}
	if widest <= 0 {
		return BlockSizeElements
	}

	return max(BlockSizeBytes/widest, 1)
}

// UnaryBlocked is Unary with the two innermost dimensions tiled.
func UnaryBlocked[T, U any](x View[T], y View[U], f func(T) U, bsize int) {
	shape := y.Shape
	if hasZero(shape) {
		return
	}
	if len(shape) < 2 {
		Unary(x, y, f)
		return
	}
	if bsize <= 0 {
		bsize = BlockSize(x.DType().Bytes(), y.DType().Bytes())
	}
	w := newWalker(shape, [][]int{x.Strides, y.Strides}, []int{x.Offset, y.Offset}, 2)
	n0, n1 := w.shape[0], w.shape[1]
	sx0, sx1 := w.strides[0][0], w.strides[0][1]
	sy0, sy1 := w.strides[1][0], w.strides[1][1]
	for {
		bx, by := w.pos[0], w.pos[1]
		for j1 := 0; j1 < n1; j1 += bsize {
			s1 := min(bsize, n1-j1)
			for j0 := 0; j0 < n0; j0 += bsize {
				s0 := min(bsize, n0-j0)
				ox := bx + j1*sx1 + j0*sx0
				oy := by + j1*sy1 + j0*sy0
				for a := 0; a < s1; a++ {
					ix, iy := ox+a*sx1, oy+a*sy1
					for b := 0; b < s0; b++ {
						y.Data[iy] = f(x.Data[ix])
						ix += sx0
						iy += sy0
					}
				}
			}
		}
		if !w.next() {
			return
		}
	}
}

// BinaryBlocked is Binary with the two innermost dimensions tiled.
func BinaryBlocked[T, U, V any](x View[T], y View[U], z View[V], f func(T, U) V, bsize int) {
	shape := z.Shape
	if hasZero(shape) {
		return
	}
	if len(shape) < 2 {
		Binary(x, y, z, f)
		return
	}
	if bsize <= 0 {
		bsize = BlockSize(x.DType().Bytes(), y.DType().Bytes(), z.DType().Bytes())
	}
	w := newWalker(shape,
		[][]int{x.Strides, y.Strides, z.Strides},
		[]int{x.Offset, y.Offset, z.Offset}, 2)
	n0, n1 := w.shape[0], w.shape[1]
	sx0, sx1 := w.strides[0][0], w.strides[0][1]
	sy0, sy1 := w.strides[1][0], w.strides[1][1]
	sz0, sz1 := w.strides[2][0], w.strides[2][1]
	for {
		bx, by, bz := w.pos[0], w.pos[1], w.pos[2]
		for j1 := 0; j1 < n1; j1 += bsize {
			s1 := min(bsize, n1-j1)
			for j0 := 0; j0 < n0; j0 += bsize {
				s0 := min(bsize, n0-j0)
				ox := bx + j1*sx1 + j0*sx0
				oy := by + j1*sy1 + j0*sy0
				oz := bz + j1*sz1 + j0*sz0
				for a := 0; a < s1; a++ {
					ix, iy, iz := ox+a*sx1, oy+a*sy1, oz+a*sz1
					for b := 0; b < s0; b++ {
						z.Data[iz] = f(x.Data[ix], y.Data[iy])
						ix += sx0
						iy += sy0
						iz += sz0
					}
				}
			}
		}
		if !w.next() {
			return
		}
	}
}
