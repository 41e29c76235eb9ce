// SPDX-License-Identifier: MIT

package dtype

import "math"

// MinDataType returns the smallest real data type able to store v.
//
//   - NaN and ±Inf fit in float32.
//   - Non-negative integers use uint8, uint16 or uint32, falling back to float64.
//   - Negative integers use int8, int16 or int32, falling back to float64.
//   - Other values use float32 when the float32 round trip is exact, else float64.
//
// Negative zero is not an integer for this purpose: it needs a float to keep its sign.
func MinDataType(v float64) DataType {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Float32
	}
	if v == math.Trunc(v) && !(v == 0 && math.Signbit(v)) {
		if v >= 0 {
			switch {
			case v <= math.MaxUint8:
				return Uint8
			case v <= math.MaxUint16:
				return Uint16
			case v <= math.MaxUint32:
				return Uint32
			}

			return Float64
		}
		switch {
		case v >= math.MinInt8:
			return Int8
		case v >= math.MinInt16:
			return Int16
		case v >= math.MinInt32:
			return Int32
		}

		return Float64
	}
	if float64(float32(v)) == v {
		return Float32
	}

	return Float64
}
