// SPDX-License-Identifier: MIT

// Package grid - FixedGrid: type-level shape over one contiguous row-major buffer.
//
// Purpose:
//   - Carry the R×C extent in the type (S Shape), so a 3×3 grid and a 2×2 grid
//     are different types and only same-shape grids can Swap or CopyFrom.
//   - Allocate exactly once (R*C elements); capacity always equals size.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead
//     of panicking; Row is the explicit unchecked escape hatch.
//
// Copy semantics:
//   - FixedGrid is a value type with a fixed footprint. Clone and CopyFrom
//     deep-copy the buffer; there is no relocation operation.
//
// Complexity quicksheet:
//   - NewFixed*: O(R*C); At/Set/Ref/Row: O(1); Clone/CopyFrom/Swap/Fill: O(R*C).
package grid

import (
	"fmt"
	"iter"
	"strings"
)

// ---------- error context tags ----------

const (
	typFixed    = "FixedGrid" // type tag used in error wrappers
	ctxAt       = "At"        // method tag used in error wrappers
	ctxSet      = "Set"       // method tag used in error wrappers
	ctxRef      = "Ref"       // method tag used in error wrappers
	ctxFromRows = "FromRows"  // ctor tag for nested literals
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// FixedGrid is an R×C grid whose shape is fixed by S.
//   - data is a flat buffer of length R*C in row-major order (offset = i*C + j).
//   - The zero value is a valid all-zero grid; its buffer is allocated on first use.
type FixedGrid[T any, S Shape] struct {
	data []T // contiguous row-major storage (len == R*C)
}

// NewFixed creates a grid with every element set to T's zero value.
// No failure path.
// Complexity: O(R*C).
func NewFixed[T any, S Shape]() *FixedGrid[T, S] {
	r, c := shapeOf[S]()

	return &FixedGrid[T, S]{data: make([]T, r*c)}
}

// NewFixedFilled creates a grid with every element set to v.
// Complexity: O(R*C).
func NewFixedFilled[T any, S Shape](v T) *FixedGrid[T, S] {
	g := NewFixed[T, S]()
	g.Fill(v)

	return g
}

// NewFixedFromSlice copies a flat row-major literal into a new grid.
// MAIN DESCRIPTION:
//   - The runtime-checked literal constructor.
//
// Errors:
//   - ErrShapeMismatch when len(vals) != R*C.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func NewFixedFromSlice[T any, S Shape](vals []T) (*FixedGrid[T, S], error) {
	g := NewFixed[T, S]()
	if len(vals) != len(g.data) {
		return nil, fmt.Errorf("%s.FromSlice: %d elements for %d×%d: %w",
			typFixed, len(vals), g.Rows(), g.Cols(), ErrShapeMismatch)
	}
	copy(g.data, vals)

	return g, nil
}

// NewFixedFromRows copies a nested literal (rows of columns) into a new grid.
// MAIN DESCRIPTION:
//   - Both the row count and every row length must match S.
//
// Errors:
//   - ErrShapeMismatch on a wrong row count or any ragged row.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func NewFixedFromRows[T any, S Shape](rows [][]T) (*FixedGrid[T, S], error) {
	g := NewFixed[T, S]()
	r, c := g.Shape()
	if len(rows) != r {
		return nil, fmt.Errorf("%s.%s: %d rows for %d×%d: %w", typFixed, ctxFromRows, len(rows), r, c, ErrShapeMismatch)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s.%s: row %d has %d columns for %d×%d: %w",
				typFixed, ctxFromRows, i, len(row), r, c, ErrShapeMismatch)
		}
		copy(g.data[i*c:(i+1)*c], row)
	}

	return g, nil
}

// Rows returns R. Complexity: O(1).
func (g *FixedGrid[T, S]) Rows() int {
	var s S

	return s.Rows()
}

// Cols returns C. Complexity: O(1).
func (g *FixedGrid[T, S]) Cols() int {
	var s S

	return s.Cols()
}

// Shape packs Rows() and Cols() into a single call.
func (g *FixedGrid[T, S]) Shape() (rows, cols int) { return g.Rows(), g.Cols() }

// Len returns the element count R*C.
func (g *FixedGrid[T, S]) Len() int { return g.Rows() * g.Cols() }

// buf returns the storage, allocating R*C zero elements for a zero-value grid.
func (g *FixedGrid[T, S]) buf() []T {
	if g.data == nil {
		r, c := shapeOf[S]()
		g.data = make([]T, r*c)
	}

	return g.data
}

// offset bounds-checks (row, col) and returns the flat offset.
// Returns ErrNilGrid or an axis refinement of ErrOutOfRange; public methods wrap it.
func (g *FixedGrid[T, S]) offset(row, col int) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	r, c := g.Shape()
	if row < 0 || row >= r {
		return 0, ErrRowOutOfRange
	}
	if col < 0 || col >= c {
		return 0, ErrColumnOutOfRange
	}

	return row*c + col, nil
}

// At returns the value at (row, col).
// Errors: ErrRowOutOfRange / ErrColumnOutOfRange (both match ErrOutOfRange),
// ErrNilGrid on a nil receiver.
func (g *FixedGrid[T, S]) At(row, col int) (T, error) {
	off, err := g.offset(row, col)
	if err != nil {
		var zero T
		return zero, gridErrorf(typFixed, ctxAt, row, col, err)
	}

	return g.buf()[off], nil
}

// Set stores v at (row, col).
func (g *FixedGrid[T, S]) Set(row, col int, v T) error {
	off, err := g.offset(row, col)
	if err != nil {
		return gridErrorf(typFixed, ctxSet, row, col, err)
	}
	g.buf()[off] = v

	return nil
}

// Ref returns a pointer to the element at (row, col) for in-place mutation.
// The pointer stays valid for the lifetime of the grid.
func (g *FixedGrid[T, S]) Ref(row, col int) (*T, error) {
	off, err := g.offset(row, col)
	if err != nil {
		return nil, gridErrorf(typFixed, ctxRef, row, col, err)
	}

	return &g.buf()[off], nil
}

// Row returns row i as a slice sharing the grid's storage.
// Unchecked: the caller guarantees 0 <= i < R (an invalid i panics like any
// slice expression). Row(i)[j] and At(i, j) agree for all in-bounds (i, j).
func (g *FixedGrid[T, S]) Row(i int) []T {
	c := g.Cols()

	return g.buf()[i*c : (i+1)*c : (i+1)*c]
}

// Data exposes the flat row-major buffer (shared, not copied).
func (g *FixedGrid[T, S]) Data() []T { return g.buf() }

// Fill sets every element to v.
func (g *FixedGrid[T, S]) Fill(v T) {
	data := g.buf()
	for i := range data {
		data[i] = v
	}
}

// Swap exchanges the contents of g and other element by element.
// The shape is part of the type, so only same-shape grids are swappable.
// A nil other (or other == g) leaves g untouched.
// Complexity: O(R*C).
func (g *FixedGrid[T, S]) Swap(other *FixedGrid[T, S]) {
	if other == nil || other == g {
		return
	}
	a, b := g.buf(), other.buf()
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// Clone returns an independent deep copy.
func (g *FixedGrid[T, S]) Clone() *FixedGrid[T, S] {
	data := g.buf()
	cp := make([]T, len(data))
	copy(cp, data)

	return &FixedGrid[T, S]{data: cp}
}

// CopyFrom overwrites g with the contents of src and returns g, including
// on self-assignment. A nil src leaves g untouched.
func (g *FixedGrid[T, S]) CopyFrom(src *FixedGrid[T, S]) *FixedGrid[T, S] {
	if src == nil || g == src {
		return g
	}
	copy(g.buf(), src.buf())

	return g
}

// All yields (flat index, value) pairs in row-major order.
func (g *FixedGrid[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range g.buf() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields every element in row-major order.
func (g *FixedGrid[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.buf() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields every element in reverse row-major order, the exact
// mirror of Values.
func (g *FixedGrid[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		data := g.buf()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(data[i]) {
				return
			}
		}
	}
}

// String renders rows as "[a, b]\n" lines for diagnostics.
func (g *FixedGrid[T, S]) String() string {
	var b strings.Builder
	r, c := g.Shape()
	data := g.buf()
	for i := 0; i < r; i++ {
		writeRow(&b, data[i*c:(i+1)*c])
	}

	return b.String()
}

// writeRow appends one "[a, b]\n" line. Shared by both grid kinds.
func writeRow[T any](b *strings.Builder, row []T) {
	b.WriteString(_fmtRowOpen)
	for j, v := range row {
		if j > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(b, v)
	}
	b.WriteString(_fmtRowClose)
}
