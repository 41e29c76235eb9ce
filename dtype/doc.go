// SPDX-License-Identifier: MIT

// Package dtype defines the element data types understood by lvnum and the
// static tables that describe how values of one type may be converted into
// another.
//
// 🚀 What is in here?
//
//	• DataType — a compact enum (bool, int8…uint64, float32/64, complex64/128, generic)
//	• Cast tables — ordered "safe" and "same-kind" target sets per type
//	• Promotion — smallest common type two operands can both safely cast to
//	• MinDataType — minimal storage type able to hold a scalar exactly
//
// Tables are decoded once at package init from an embedded YAML document and
// are immutable afterwards. Every lookup is O(1) and allocation-free except
// for the string-based helpers, which return fresh slices.
//
// Unknown type names never panic: SafeCasts("nope") and SameKindCasts("nope")
// return nil, and Parse reports ok=false.
//
//	casts := dtype.SameKindCasts("float32")
//	// [float32 float64 complex64 complex128 generic]
package dtype
