// SPDX-License-Identifier: MIT

// Package matrix - Dense storage over a strided view & safe accessors.
//
// Purpose:
//   - Store an r×c matrix as a strided.View[float64] with shape [r, c].
//     Freshly allocated matrices are row-major (strides [c, 1]); T() and
//     Window() derive views that share the same buffer.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) captured at creation.
//
// AI-Hints:
//   - Hot kernels read View() and hand it to the strided kernels; never
//     assume strides [c, 1] on a Dense you did not allocate.
//   - Use Window(r0,c0,h,w) to avoid copies; mutations reflect in the base matrix.
//   - Use Induced(rows, cols) to materialize a submatrix (copy).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); T/Window: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnum/strided"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxApply  = "Apply"   // method tag used in error wrappers
	ctxWindow = "Window"  // ctor tag for Dense.Window
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete matrix over a strided view.
//   - v.Shape is [rows, cols]; element (i,j) lives at
//     v.Data[v.Offset + i*v.Strides[0] + j*v.Strides[1]].
//   - validateNaNInf enables optional NaN/Inf rejection in Set and Apply.
type Dense struct {
	v              strided.View[float64] // storage descriptor (shared by T/Window)
	validateNaNInf bool                  // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and wrap it as a row-major view.
//   - Stage 3: set numeric policy from opts (WithValidateNaNInf / WithNoValidateNaNInf).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// AI-Hints:
//   - Prefer this ctor for public creation. For subviews, use Window().
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols, gatherOptions(opts...).validateNaNInf)
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf when the policy validates and data holds NaN or ±Inf.
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	if m.validateNaNInf {
		for _, x := range data {
			if isNonFinite(x) {
				return nil, ErrNaNInf
			}
		}
	}
	copy(m.v.Data, data)

	return m, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
func newDenseZeroOK(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	shape := []int{rows, cols}

	return &Dense{
		v: strided.View[float64]{
			Data:    make([]float64, rows*cols),
			Shape:   shape,
			Strides: strided.ContiguousStrides(shape, strided.RowMajor),
		},
		validateNaNInf: validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.v.Shape[0] }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.v.Shape[1] }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.v.Shape[0], m.v.Shape[1] }

// View returns the strided descriptor of m. The descriptor shares m's
// buffer; writes through it bypass the numeric policy.
func (m *Dense) View() strided.View[float64] { return m.v }

// T returns the transpose of m as a view sharing m's buffer.
// Complexity: O(1).
func (m *Dense) T() *Dense {
	return &Dense{v: m.v.Transpose(), validateNaNInf: m.validateNaNInf}
}

// indexOf bounds-checks (row,col) and computes the buffer offset.
// Returns the bare sentinel; public methods wrap with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.v.Shape[0] {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.v.Shape[1] {
		return 0, ErrOutOfRange
	}

	return m.v.Offset + row*m.v.Strides[0] + col*m.v.Strides[1], nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.v.Data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers under policy.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.v.Data[off] = v

	return nil
}

// Clone returns a deep row-major copy (new buffer, same numeric policy).
// A transposed or windowed receiver yields a compact independent matrix.
func (m *Dense) Clone() Matrix {
	return m.compact()
}

// compact copies m into fresh row-major storage.
func (m *Dense) compact() *Dense {
	return &Dense{
		v: strided.View[float64]{
			Data:    m.v.ToSlice(strided.RowMajor),
			Shape:   []int{m.v.Shape[0], m.v.Shape[1]},
			Strides: strided.ContiguousStrides(m.v.Shape, strided.RowMajor),
		},
		validateNaNInf: m.validateNaNInf,
	}
}

// String renders matrix rows as lines with comma-separated values.
// Intended for debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		b.WriteString(_fmtRowOpen)
		base := m.v.Offset + i*m.v.Strides[0]
		for j := 0; j < c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.v.Data[base+j*m.v.Strides[1]]))
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Window returns a no-copy view of rows [r0, r0+rows) and columns
// [c0, c0+cols). Writes through the window reflect in m; the numeric
// policy is inherited. Zero-area windows are legal.
//
// Errors:
//   - ErrBadShape when the window does not fit inside m.
func (m *Dense) Window(r0, c0, rows, cols int) (*Dense, error) {
	r, c := m.Shape()
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > r || c0+cols > c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxWindow, r0, c0, rows, cols, ErrBadShape)
	}
	v, err := m.v.Slice(0, r0, r0+rows, 1)
	if err == nil {
		v, err = v.Slice(1, c0, c0+cols, 1)
	}
	if err != nil {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxWindow, r0, c0, rows, cols, ErrBadShape)
	}

	return &Dense{v: v, validateNaNInf: m.validateNaNInf}, nil
}

// Induced materializes a copy submatrix using explicit index sets
// (duplicates allowed).
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	r, c := m.Shape()
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}
	res, err := newDenseZeroOK(len(rowsIdx), len(colsIdx), m.validateNaNInf)
	if err != nil {
		return nil, err
	}
	s0, s1 := m.v.Strides[0], m.v.Strides[1]
	for i, ri := range rowsIdx {
		for j, cj := range colsIdx {
			res.v.Data[i*len(colsIdx)+j] = m.v.Data[m.v.Offset+ri*s0+cj*s1]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v);
// it stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		base := m.v.Offset + i*m.v.Strides[0]
		for j := 0; j < c; j++ {
			if !f(i, j, m.v.Data[base+j*m.v.Strides[1]]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// AI-Hints:
//   - For all-or-nothing semantics, transform a clone and swap on success.
//   - Position-independent maps should use the package-level Apply, which
//     runs on the blocked strided kernels.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		base := m.v.Offset + i*m.v.Strides[0]
		for j := 0; j < c; j++ {
			off := base + j*m.v.Strides[1]
			nv := f(i, j, m.v.Data[off])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.v.Data[off] = nv
		}
	}

	return nil
}

// asDense returns m itself when it is a *Dense, or a Dense gathered via At.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	d, err := newDenseZeroOK(r, c, DefaultValidateNaNInf)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			d.v.Data[i*c+j] = v
		}
	}

	return d, nil
}
