// SPDX-License-Identifier: MIT
// Package: dtype
//
// Purpose:
//   - Decode the embedded cast tables once at init into immutable lookup arrays.
//   - Answer "may A be cast to B?" in O(1) via per-type bitsets.
//
// Determinism:
//   - Target lists keep the order of casts.yaml (canonical order).
//   - A malformed embedded table is a build defect and panics during init.

package dtype

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed casts.yaml
var castsYAML []byte

// castDoc mirrors the layout of casts.yaml.
type castDoc struct {
	Safe     map[string][]string `yaml:"safe"`
	SameKind map[string][]string `yaml:"same_kind"`
}

// castTable is one decoded relation: ordered targets plus a membership bitset.
type castTable struct {
	targets [numDataTypes][]DataType
	allowed [numDataTypes]uint32 // bit t set ⇔ cast to DataType(t) is allowed
}

var (
	safeTable     castTable
	sameKindTable castTable
)

func init() {
	var doc castDoc
	if err := yaml.Unmarshal(castsYAML, &doc); err != nil {
		panic(fmt.Sprintf("dtype: decode casts.yaml: %v", err))
	}
	if err := safeTable.load("safe", doc.Safe); err != nil {
		panic(err.Error())
	}
	if err := sameKindTable.load("same_kind", doc.SameKind); err != nil {
		panic(err.Error())
	}
	buildPromotion()
}

// load fills the table from raw name lists and checks coverage.
// Every known type must have a row and every row must name known types.
func (t *castTable) load(section string, raw map[string][]string) error {
	for from := Bool; from < numDataTypes; from++ {
		names, ok := raw[from.String()]
		if !ok {
			return fmt.Errorf("dtype: casts.yaml: section %q has no row for %q", section, from)
		}
		row := make([]DataType, 0, len(names))
		for _, name := range names {
			to, ok := Parse(name)
			if !ok {
				return fmt.Errorf("dtype: casts.yaml: section %q row %q: unknown target %q", section, from, name)
			}
			row = append(row, to)
			t.allowed[from] |= 1 << to
		}
		t.targets[from] = row
	}
	if len(raw) != int(numDataTypes-1) {
		return fmt.Errorf("dtype: casts.yaml: section %q has %d rows, want %d", section, len(raw), numDataTypes-1)
	}

	return nil
}

func (t *castTable) has(from, to DataType) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}

	return t.allowed[from]&(1<<to) != 0
}

func (t *castTable) names(from DataType) []string {
	row := t.targets[from]
	out := make([]string, len(row))
	for i, dt := range row {
		out[i] = dt.String()
	}

	return out
}

func (t *castTable) typed(from DataType) []DataType {
	if !from.Valid() {
		return nil
	}

	return append([]DataType(nil), t.targets[from]...)
}

// SafeCasts returns the names of the types a value of type name can be cast
// to without loss, in canonical order. Unknown names yield nil.
func SafeCasts(name string) []string {
	dt, ok := Parse(name)
	if !ok {
		return nil
	}

	return safeTable.names(dt)
}

// SameKindCasts returns the names of the types name can be same-kind cast to,
// in canonical order. Unknown names yield nil.
func SameKindCasts(name string) []string {
	dt, ok := Parse(name)
	if !ok {
		return nil
	}

	return sameKindTable.names(dt)
}

// SafeCastsOf is the typed form of SafeCasts. Invalid input yields nil.
func SafeCastsOf(dt DataType) []DataType { return safeTable.typed(dt) }

// SameKindCastsOf is the typed form of SameKindCasts. Invalid input yields nil.
func SameKindCastsOf(dt DataType) []DataType { return sameKindTable.typed(dt) }

// IsSafeCast reports whether every value of from is exactly representable in to.
func IsSafeCast(from, to DataType) bool { return safeTable.has(from, to) }

// IsSameKindCast reports whether from may be cast to to under same-kind rules.
func IsSameKindCast(from, to DataType) bool { return sameKindTable.has(from, to) }

// IsMostlySafeCast extends safe casting with the two floating-point
// narrowings float64→float32 and complex128→complex64.
func IsMostlySafeCast(from, to DataType) bool {
	if IsSafeCast(from, to) {
		return true
	}

	return (from == Float64 && to == Float32) || (from == Complex128 && to == Complex64)
}
