// SPDX-License-Identifier: MIT
// Package: dtype
//
// Purpose:
//   - Name the casting policies accepted by dispatch layers and resolve them
//     against the cast tables.

package dtype

// Casting selects how permissive a conversion between data types may be.
type Casting uint8

const (
	// CastNo allows only identical types.
	CastNo Casting = iota
	// CastEquiv allows identical types and representation-equivalent pairs (uint8 ↔ uint8c).
	CastEquiv
	// CastSafe allows casts that preserve every value.
	CastSafe
	// CastMostlySafe allows safe casts plus float64→float32 and complex128→complex64.
	CastMostlySafe
	// CastSameKind allows safe casts plus casts within or up the kind ladder.
	CastSameKind
	// CastUnsafe allows any cast between valid types.
	CastUnsafe
)

var castingNames = [...]string{
	CastNo:         "none",
	CastEquiv:      "equiv",
	CastSafe:       "safe",
	CastMostlySafe: "mostly-safe",
	CastSameKind:   "same-kind",
	CastUnsafe:     "unsafe",
}

// String returns the policy name ("same-kind", ...).
func (c Casting) String() string {
	if int(c) >= len(castingNames) {
		return "invalid"
	}

	return castingNames[c]
}

// ParseCasting resolves a policy name produced by Casting.String.
func ParseCasting(name string) (Casting, bool) {
	for i, n := range castingNames {
		if n == name {
			return Casting(i), true
		}
	}

	return 0, false
}

// IsAllowedCast reports whether from may be cast to to under policy.
// Invalid data types or an unknown policy always yield false.
func IsAllowedCast(from, to DataType, policy Casting) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	switch policy {
	case CastNo:
		return false
	case CastEquiv:
		return (from == Uint8 && to == Uint8c) || (from == Uint8c && to == Uint8)
	case CastSafe:
		return IsSafeCast(from, to)
	case CastMostlySafe:
		return IsMostlySafeCast(from, to)
	case CastSameKind:
		return IsSameKindCast(from, to)
	case CastUnsafe:
		return true
	}

	return false
}
