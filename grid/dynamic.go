// SPDX-License-Identifier: MIT

// Package grid - DynamicGrid: runtime-sized grid over a spine of separately
// allocated rows.
//
// Purpose:
//   - Two-level storage: a spine (slice of row handles) owned by the grid, each
//     handle owning one row buffer; both levels come from one Allocator.
//   - Exception-safe construction: a failing row allocation or element
//     constructor tears down every row built so far, the partial row and the
//     spine, so no grid and no outstanding allocation survive the failure.
//   - Symmetric teardown in Release: clear elements, release rows, release spine.
//   - Track logical size (rows, cols) separately from reserved capacity
//     (rowCap, colCap); constructors reserve exactly the logical size.
//
// Ownership:
//   - A grid exclusively owns its spine and every row reachable from it.
//     Row(i) hands out a view, never ownership.
//
// Complexity quicksheet:
//   - NewDynamic*: O(rows*cols); At/Set/Ref/Row: O(1); Swap: O(1);
//     Release/Clone: O(rows*cols).
package grid

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

const (
	typDynamic = "DynamicGrid" // type tag used in error wrappers
	ctxNew     = "New"         // ctor tag
)

// DynamicGrid is a rows×cols grid whose rows are independent buffers.
// The zero value is not usable; construct with one of the NewDynamic* functions.
type DynamicGrid[T any] struct {
	spine  [][]T // row handles; nil iff rows == 0
	rows   int   // logical row count
	cols   int   // logical column count
	rowCap int   // reserved row handles (len(spine))
	colCap int   // reserved elements per row

	alloc  Allocator[T]
	logger hclog.Logger
}

// NewDynamic creates an empty 0×0 grid that holds no spine.
// Complexity: O(1).
func NewDynamic[T any](opts ...Option[T]) *DynamicGrid[T] {
	o := gatherOptions(opts...)

	return &DynamicGrid[T]{alloc: o.alloc, logger: o.logger}
}

// NewDynamicSized creates a rows×cols grid of zero-valued elements.
// Errors: ErrBadShape, or any allocator error (wrapped, storage already released).
func NewDynamicSized[T any](rows, cols int, opts ...Option[T]) (*DynamicGrid[T], error) {
	return newDynamic(rows, cols, func(int, int) (T, error) {
		var zero T
		return zero, nil
	}, opts)
}

// NewDynamicFilled creates a rows×cols grid with every element set to v.
func NewDynamicFilled[T any](rows, cols int, v T, opts ...Option[T]) (*DynamicGrid[T], error) {
	return newDynamic(rows, cols, func(int, int) (T, error) { return v, nil }, opts)
}

// NewDynamicFunc creates a rows×cols grid whose element (i, j) is produced by f.
// f is called in row-major order; the first error aborts construction and
// everything built so far is released before the error is returned.
func NewDynamicFunc[T any](rows, cols int, f func(row, col int) (T, error), opts ...Option[T]) (*DynamicGrid[T], error) {
	return newDynamic(rows, cols, f, opts)
}

// NewDynamicFromRows creates a grid from a nested literal.
// The shape is derived from the literal: len(rows)×len(rows[0]).
// Errors: ErrShapeMismatch when the literal is ragged.
func NewDynamicFromRows[T any](rows [][]T, opts ...Option[T]) (*DynamicGrid[T], error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s.%s: row %d has %d columns, want %d: %w",
				typDynamic, ctxFromRows, i, len(row), c, ErrShapeMismatch)
		}
	}

	return newDynamic(r, c, func(i, j int) (T, error) { return rows[i][j], nil }, opts)
}

// newDynamic runs the construction protocol.
// Implementation:
//   - Stage 1: rows == 0 ⇒ no spine; done.
//   - Stage 2: allocate the spine (rows handles).
//   - Stage 3: cols == 0 ⇒ spine of empty handles; done.
//   - Stage 4: per row: allocate the buffer, construct every element via init.
//   - Stage 5: record size == capacity on both axes.
//
// Behavior highlights:
//   - built counts fully initialized rows; on failure rows [0,built), the
//     partial row and the spine are released before returning.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func newDynamic[T any](rows, cols int, init func(row, col int) (T, error), opts []Option[T]) (*DynamicGrid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, gridErrorf(typDynamic, ctxNew, rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)
	g := &DynamicGrid[T]{alloc: o.alloc, logger: o.logger}

	if rows == 0 {
		g.cols, g.colCap = cols, cols
		g.logger.Trace("constructed empty grid", "rows", rows, "cols", cols)

		return g, nil
	}

	spine, err := g.alloc.AllocateSpine(rows)
	if err != nil {
		return nil, gridErrorf(typDynamic, ctxNew, rows, cols, err)
	}

	if cols > 0 {
		var built int
		for built = 0; built < rows; built++ {
			if err = fillRow(g.alloc, spine, built, cols, init); err != nil {
				break
			}
		}
		if err != nil {
			g.logger.Debug("construction failed; tearing down", "rows", rows, "cols", cols,
				"built_rows", built, "error", err)

			return nil, teardown(g.alloc, spine, built, cols, gridErrorf(typDynamic, ctxNew, rows, cols, err))
		}
	}

	g.spine = spine
	g.rows, g.cols = rows, cols
	g.rowCap, g.colCap = rows, cols
	g.logger.Trace("constructed grid", "rows", rows, "cols", cols)

	return g, nil
}

// fillRow allocates row i and constructs its cols elements in order.
// On an element failure the partial row is cleared and released here, so the
// caller only has to account for fully built rows.
func fillRow[T any](a Allocator[T], spine [][]T, i, cols int, init func(row, col int) (T, error)) error {
	row, err := a.AllocateRow(cols)
	if err != nil {
		return err
	}
	for j := 0; j < cols; j++ {
		v, ierr := init(i, j)
		if ierr != nil {
			clear(row[:j])
			if rerr := a.DeallocateRow(row); rerr != nil {
				return multierror.Append(fmt.Errorf("element (%d,%d): %w", i, j, ierr), rerr)
			}

			return fmt.Errorf("element (%d,%d): %w", i, j, ierr)
		}
		row[j] = v
	}
	spine[i] = row

	return nil
}

// teardown destroys and releases rows [0,built) of spine, then the spine.
// cause (may be nil) stays first in the returned chain so errors.Is matches it.
func teardown[T any](a Allocator[T], spine [][]T, built, cols int, cause error) error {
	var result *multierror.Error
	if cause != nil {
		result = multierror.Append(result, cause)
	}
	for i := 0; i < built; i++ {
		if spine[i] == nil {
			continue // cols == 0: no row buffer was ever allocated
		}
		clear(spine[i][:min(cols, len(spine[i]))])
		if err := a.DeallocateRow(spine[i]); err != nil {
			result = multierror.Append(result, fmt.Errorf("release row %d: %w", i, err))
		}
		spine[i] = nil
	}
	if spine != nil {
		if err := a.DeallocateSpine(spine); err != nil {
			result = multierror.Append(result, fmt.Errorf("release spine: %w", err))
		}
	}
	if result == nil {
		return nil
	}
	if len(result.Errors) == 1 {
		return result.Errors[0]
	}

	return result
}

// Release runs the destruction protocol: clear every element in
// [0,rows)×[0,cols), release every row buffer, then release the spine.
// Afterwards the grid is empty (0×0) and can be reused as such; calling
// Release again is a no-op. Errors from the allocator are aggregated.
// Errors: ErrNilGrid on a nil receiver.
// Complexity: O(rows*cols).
func (g *DynamicGrid[T]) Release() error {
	if g == nil {
		return fmt.Errorf("%s.Release: %w", typDynamic, ErrNilGrid)
	}
	if g.spine == nil {
		g.rows, g.cols, g.rowCap, g.colCap = 0, 0, 0, 0
		return nil
	}
	spine := g.spine
	// Clear the logical region first; teardown then releases every row handle
	// in [0,rowCap), including any reserved-but-unused rows.
	for i := 0; i < g.rows; i++ {
		if spine[i] != nil {
			clear(spine[i][:g.cols])
		}
	}
	g.logger.Trace("releasing grid", "rows", g.rows, "cols", g.cols)
	err := teardown(g.alloc, spine, g.rowCap, g.colCap, nil)

	g.spine = nil
	g.rows, g.cols, g.rowCap, g.colCap = 0, 0, 0, 0
	if err != nil {
		return fmt.Errorf("%s.Release: %w", typDynamic, err)
	}

	return nil
}

// Rows returns the logical row count. Complexity: O(1).
func (g *DynamicGrid[T]) Rows() int { return g.rows }

// Cols returns the logical column count. Complexity: O(1).
func (g *DynamicGrid[T]) Cols() int { return g.cols }

// RowCapacity returns the number of reserved row handles (>= Rows()).
func (g *DynamicGrid[T]) RowCapacity() int { return g.rowCap }

// ColCapacity returns the number of reserved elements per row (>= Cols()).
func (g *DynamicGrid[T]) ColCapacity() int { return g.colCap }

// Shape packs Rows() and Cols() into a single call.
func (g *DynamicGrid[T]) Shape() (rows, cols int) { return g.rows, g.cols }

// Len returns Rows()*Cols().
func (g *DynamicGrid[T]) Len() int { return g.rows * g.cols }

// Empty reports whether the grid holds no addressable element.
func (g *DynamicGrid[T]) Empty() bool { return g.rows == 0 || g.cols == 0 }

// check validates (row, col) against the logical size, reporting the axis.
func (g *DynamicGrid[T]) check(row, col int) error {
	if g == nil {
		return ErrNilGrid
	}
	if row < 0 || row >= g.rows {
		return ErrRowOutOfRange
	}
	if col < 0 || col >= g.cols {
		return ErrColumnOutOfRange
	}

	return nil
}

// At returns the element at (row, col).
// Errors: ErrRowOutOfRange / ErrColumnOutOfRange (both match ErrOutOfRange),
// checked against Rows()/Cols(), never against capacity. ErrNilGrid on a nil
// receiver.
func (g *DynamicGrid[T]) At(row, col int) (T, error) {
	if err := g.check(row, col); err != nil {
		var zero T
		return zero, gridErrorf(typDynamic, ctxAt, row, col, err)
	}

	return g.spine[row][col], nil
}

// Set stores v at (row, col).
func (g *DynamicGrid[T]) Set(row, col int, v T) error {
	if err := g.check(row, col); err != nil {
		return gridErrorf(typDynamic, ctxSet, row, col, err)
	}
	g.spine[row][col] = v

	return nil
}

// Ref returns a pointer to the element at (row, col), valid until Release.
func (g *DynamicGrid[T]) Ref(row, col int) (*T, error) {
	if err := g.check(row, col); err != nil {
		return nil, gridErrorf(typDynamic, ctxRef, row, col, err)
	}

	return &g.spine[row][col], nil
}

// Row returns the logical part of row i as a view into the grid's storage.
// Unchecked: the caller guarantees 0 <= i < Rows(). The caller indexes the
// result again without a second bounds check by the grid.
func (g *DynamicGrid[T]) Row(i int) []T {
	return g.spine[i][:g.cols:g.cols]
}

// Swap exchanges allocator, logger, spine and all four size/capacity fields
// with other in O(1); no element is copied. Shapes may differ.
// A nil other leaves g untouched.
func (g *DynamicGrid[T]) Swap(other *DynamicGrid[T]) {
	if other == nil {
		return
	}
	g.spine, other.spine = other.spine, g.spine
	g.rows, other.rows = other.rows, g.rows
	g.cols, other.cols = other.cols, g.cols
	g.rowCap, other.rowCap = other.rowCap, g.rowCap
	g.colCap, other.colCap = other.colCap, g.colCap
	g.alloc, other.alloc = other.alloc, g.alloc
	g.logger, other.logger = other.logger, g.logger
}

// Clone deep-copies the logical contents into a new grid whose storage comes
// from opts (the default heap allocator when none are given). The clone
// owns its rows; nothing is shared with g.
// Errors: ErrNilGrid on a nil receiver, plus any construction error.
func (g *DynamicGrid[T]) Clone(opts ...Option[T]) (*DynamicGrid[T], error) {
	if g == nil {
		return nil, fmt.Errorf("%s.Clone: %w", typDynamic, ErrNilGrid)
	}
	return newDynamic(g.rows, g.cols, func(i, j int) (T, error) { return g.spine[i][j], nil }, opts)
}

// All yields (cell, value) pairs in row-major order.
func (g *DynamicGrid[T]) All() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		for i := 0; i < g.rows; i++ {
			for j, v := range g.spine[i][:g.cols] {
				if !yield(Cell{Row: i, Col: j}, v) {
					return
				}
			}
		}
	}
}

// Values yields every element in row-major order (same order as Begin..End).
func (g *DynamicGrid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < g.rows; i++ {
			for _, v := range g.spine[i][:g.cols] {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Backward yields every element in reverse row-major order (same order as
// RBegin..REnd).
func (g *DynamicGrid[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := g.rows - 1; i >= 0; i-- {
			row := g.spine[i]
			for j := g.cols - 1; j >= 0; j-- {
				if !yield(row[j]) {
					return
				}
			}
		}
	}
}

// String renders rows as "[a, b]\n" lines for diagnostics.
func (g *DynamicGrid[T]) String() string {
	var b strings.Builder
	for i := 0; i < g.rows; i++ {
		writeRow(&b, g.spine[i][:g.cols])
	}

	return b.String()
}
