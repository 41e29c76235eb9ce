// SPDX-License-Identifier: MIT
// Package: dtype
//
// Purpose:
//   - Enumerate the element types and their static properties (name, char code, size, kind).
//   - Map Go element types onto tags (Of[T]).

package dtype

// DataType tags the element representation of a buffer.
// The zero value is Invalid so uninitialized tags never alias a real type.
type DataType uint8

// Known data types, in canonical order.
const (
	Invalid DataType = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint8c // uint8 with clamped (saturating) assignment semantics
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
	Generic // arbitrary Go values ([]any)

	numDataTypes
)

// Kind groups data types into the categories used by same-kind casting.
// Kinds are ordered: a same-kind cast may move from a lower numeric kind to a
// higher one (unsigned → signed → float → complex), never downward.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindUnsigned
	KindSigned
	KindFloat
	KindComplex
	KindGeneric
)

// info holds the static description of one data type.
type info struct {
	name  string
	char  byte
	bytes int
	kind  Kind
}

var infos = [numDataTypes]info{
	Invalid:    {name: "invalid", char: '?', bytes: 0, kind: KindInvalid},
	Bool:       {name: "bool", char: 'x', bytes: 1, kind: KindBool},
	Int8:       {name: "int8", char: 's', bytes: 1, kind: KindSigned},
	Int16:      {name: "int16", char: 'k', bytes: 2, kind: KindSigned},
	Int32:      {name: "int32", char: 'i', bytes: 4, kind: KindSigned},
	Int64:      {name: "int64", char: 'l', bytes: 8, kind: KindSigned},
	Uint8:      {name: "uint8", char: 'b', bytes: 1, kind: KindUnsigned},
	Uint8c:     {name: "uint8c", char: 'a', bytes: 1, kind: KindUnsigned},
	Uint16:     {name: "uint16", char: 'm', bytes: 2, kind: KindUnsigned},
	Uint32:     {name: "uint32", char: 'u', bytes: 4, kind: KindUnsigned},
	Uint64:     {name: "uint64", char: 'v', bytes: 8, kind: KindUnsigned},
	Float32:    {name: "float32", char: 'f', bytes: 4, kind: KindFloat},
	Float64:    {name: "float64", char: 'd', bytes: 8, kind: KindFloat},
	Complex64:  {name: "complex64", char: 'c', bytes: 8, kind: KindComplex},
	Complex128: {name: "complex128", char: 'z', bytes: 16, kind: KindComplex},
	Generic:    {name: "generic", char: 'o', bytes: 0, kind: KindGeneric},
}

// byName is the reverse lookup used by Parse. It is a package-level
// initializer (not init) so the cast tables can rely on it during their init.
var byName = func() map[string]DataType {
	m := make(map[string]DataType, numDataTypes)
	for dt := Bool; dt < numDataTypes; dt++ {
		m[infos[dt].name] = dt
	}

	return m
}()

// All returns every valid data type in canonical order.
// The returned slice is a fresh copy.
func All() []DataType {
	out := make([]DataType, 0, numDataTypes-1)
	for dt := Bool; dt < numDataTypes; dt++ {
		out = append(out, dt)
	}

	return out
}

// Parse resolves a data type name such as "float64".
// Returns (Invalid, false) for unknown names.
func Parse(name string) (DataType, bool) {
	dt, ok := byName[name]
	if !ok {
		return Invalid, false
	}

	return dt, true
}

// Valid reports whether dt is a known, non-Invalid data type.
func (dt DataType) Valid() bool {
	return dt > Invalid && dt < numDataTypes
}

// String returns the canonical name ("float64", "uint8c", ...).
func (dt DataType) String() string {
	if dt >= numDataTypes {
		return infos[Invalid].name
	}

	return infos[dt].name
}

// Char returns the single-letter code of dt ('d' for float64, 'z' for complex128, ...).
func (dt DataType) Char() byte {
	if dt >= numDataTypes {
		return infos[Invalid].char
	}

	return infos[dt].char
}

// Bytes returns the element size in bytes, or 0 when the size is not fixed (generic).
func (dt DataType) Bytes() int {
	if dt >= numDataTypes {
		return 0
	}

	return infos[dt].bytes
}

// Kind returns the casting category of dt.
func (dt DataType) Kind() Kind {
	if dt >= numDataTypes {
		return KindInvalid
	}

	return infos[dt].kind
}

// IsNumeric reports whether dt holds numbers (integers, floats or complex).
func (dt DataType) IsNumeric() bool {
	switch dt.Kind() {
	case KindUnsigned, KindSigned, KindFloat, KindComplex:
		return true
	}

	return false
}

// IsReal reports whether dt holds real numbers (integers or floats).
func (dt DataType) IsReal() bool {
	k := dt.Kind()

	return k == KindUnsigned || k == KindSigned || k == KindFloat
}

// IsInteger reports whether dt is a signed or unsigned integer type.
func (dt DataType) IsInteger() bool {
	k := dt.Kind()

	return k == KindUnsigned || k == KindSigned
}

// IsFloating reports whether dt is float32 or float64.
func (dt DataType) IsFloating() bool { return dt.Kind() == KindFloat }

// IsComplex reports whether dt is complex64 or complex128.
func (dt DataType) IsComplex() bool { return dt.Kind() == KindComplex }

// Of returns the data type tag for the Go element type T.
// Platform-sized int and uint have no tag of their own and, like any other
// unrecognized type, report Generic.
func Of[T any]() DataType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		return Generic
	}
}
