// SPDX-License-Identifier: MIT

// Package strided implements the base kernels of lvnum: elementwise apply
// loops over multi-dimensional views of flat buffers described by a shape,
// per-dimension strides and an offset.
//
// 🚀 What is a strided view?
//
//	A View{Data, Shape, Strides, Offset} maps a multi-index idx to the
//	physical position  Offset + Σ idx[d]*Strides[d]  in Data. Reversal,
//	transposition, slicing and broadcasting are all O(ndims) rewrites of
//	the descriptor; no element is copied.
//
// ✨ Kernels:
//   - Nullary / Fill            — y[idx] = f()
//   - Unary                     — y[idx] = f(x[idx])
//   - Binary                    — z[idx] = f(x[idx], y[idx])
//   - Ternary                   — out[idx] = f(w[idx], x[idx], y[idx])
//   - *Accessor variants        — same loops over Accessor-backed buffers
//   - UnaryBlocked/BinaryBlocked — cache-aware tiling of the two innermost loops
//
// ⚙️ Contract:
//
//	Kernels do NOT validate their inputs: views must share the output's
//	logical shape and every reachable index must lie inside its buffer.
//	Validation, broadcasting and dtype dispatch belong to package ndarray.
//	A zero-length dimension makes every kernel a no-op; negative strides
//	traverse the buffer backwards.
//
// Performance:
//
//   - Time:  O(Numel(shape)) element visits, one f call each.
//   - Space: O(ndims) bookkeeping per call; no per-element allocation.
//   - Loop order follows the output strides (innermost = smallest |stride|).
package strided
