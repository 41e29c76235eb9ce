// SPDX-License-Identifier: MIT
// Package: dtype
//
// Purpose:
//   - Resolve the common type of two operands from the safe-cast table.
//
// Policy:
//   - The result is the first type in promotionOrder that both operands safely cast to.
//   - Generic is considered only when one of the operands is already generic, so
//     mixing e.g. bool with int8 or int64 with float64 reports "no promotion".

package dtype

// promotionOrder lists candidate result types from narrowest to widest.
var promotionOrder = [...]DataType{
	Bool, Int8, Uint8, Uint8c, Int16, Uint16, Int32, Uint32,
	Float32, Int64, Uint64, Float64, Complex64, Complex128,
}

// promotion[a][b] holds the promoted type, or Invalid when none exists.
var promotion [numDataTypes][numDataTypes]DataType

// buildPromotion runs from init after the safe table is loaded.
func buildPromotion() {
	for a := Bool; a < numDataTypes; a++ {
		for b := Bool; b < numDataTypes; b++ {
			promotion[a][b] = resolvePromotion(a, b)
		}
	}
}

func resolvePromotion(a, b DataType) DataType {
	if a == b {
		return a
	}
	if a == Generic || b == Generic {
		return Generic
	}
	for _, c := range promotionOrder {
		if IsSafeCast(a, c) && IsSafeCast(b, c) {
			return c
		}
	}

	return Invalid
}

// Promote returns the smallest data type both a and b can be safely cast to.
// ok is false when either input is invalid or no such type exists.
func Promote(a, b DataType) (DataType, bool) {
	if !a.Valid() || !b.Valid() {
		return Invalid, false
	}
	dt := promotion[a][b]

	return dt, dt != Invalid
}
