// SPDX-License-Identifier: MIT

// Package ndarray is the validating outer layer over the strided kernels.
//
// An Array pairs a typed flat buffer with a dtype tag and a strided
// descriptor. Every entry point checks, once per call and before any kernel
// runs:
//
//   - the arrays exist and are writable where written,
//   - the input shapes broadcast to the output shape,
//   - the dtype conversions are permitted by the casting policy
//     (WithCasting, default same-kind).
//
// Dispatch then picks a kernel. Same-dtype numeric arithmetic runs on typed
// views with the blocked strided kernels; mixed dtypes travel through a
// float64 (or complex128) lane built on strided accessors. 64-bit integers
// beyond 2^53 therefore lose low bits when mixed with other dtypes; same-dtype
// integer arithmetic is exact and wraps like Go integer arithmetic.
//
// Conversions into integer dtypes saturate at the type bounds and map NaN to
// 0. The uint8c dtype (a []uint8 buffer) clamps to [0, 255] and rounds half to
// even.
package ndarray
