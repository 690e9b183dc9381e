// SPDX-License-Identifier: MIT

// Package grid - cursors that walk a DynamicGrid as one row-major sequence.
//
// Purpose:
//   - Present non-contiguous storage (one buffer per row) as a flat sequence:
//     stepping past the last column moves to the next spine slot and resets
//     the column to 0; stepping before column 0 moves to the previous slot.
//   - Two flavors share one traversal core: Iterator (read-write) and
//     ConstIterator (read-only); ReverseIterator / ConstReverseIterator
//     mirror them.
//
// Cursor model:
//   - (spine, row, col, maxCol). maxCol = ColCapacity()-1 is captured at
//     creation and never re-read, so reshaping or releasing the grid while
//     cursors are alive leaves them undefined.
//   - End() is (Rows(), 0): one past the last row, never dereferenced.
//     A grid with no addressable element has Begin() == End() == (0, 0).
//
// Arithmetic:
//   - Add / Distance are element-granular (n steps of Next).
//   - AddRows / RowDistance are row-granular: they move whole spine slots and
//     keep the column, and RowDistance is only meaningful between cursors on
//     the same column.
//
// Complexity: every operation is O(1).
package grid

// cursor is the shared traversal core. Methods on it are promoted into both
// iterator flavors; flavor-specific methods only adapt the return types.
type cursor[T any] struct {
	spine  [][]T // the grid's spine (not owned)
	row    int   // spine slot
	col    int   // column within the slot
	maxCol int   // last valid column index, captured at creation
}

func newCursor[T any](g *DynamicGrid[T], row int) cursor[T] {
	return cursor[T]{spine: g.spine, row: row, maxCol: g.colCap - 1}
}

// Position returns the cursor's (row, col).
func (c cursor[T]) Position() (row, col int) { return c.row, c.col }

func (c *cursor[T]) next() {
	if c.col >= c.maxCol {
		c.row++
		c.col = 0
		return
	}
	c.col++
}

func (c *cursor[T]) prev() {
	if c.col == 0 {
		c.row--
		c.col = max(c.maxCol, 0)
		return
	}
	c.col--
}

func (c cursor[T]) ptr() *T { return &c.spine[c.row][c.col] }

func (c cursor[T]) equal(o cursor[T]) bool { return c.row == o.row && c.col == o.col }

func (c cursor[T]) less(o cursor[T]) bool {
	return c.row < o.row || (c.row == o.row && c.col < o.col)
}

func (c cursor[T]) width() int { return c.maxCol + 1 }

// offset moves n elements (negative n moves backwards).
func (c cursor[T]) offset(n int) cursor[T] {
	w := c.width()
	if w <= 0 {
		c.row += n
		return c
	}
	lin := c.row*w + c.col + n
	c.row, c.col = floorDiv(lin, w), floorMod(lin, w)

	return c
}

// offsetRows moves n whole spine slots, keeping the column.
func (c cursor[T]) offsetRows(n int) cursor[T] {
	c.row += n

	return c
}

func (c cursor[T]) distance(o cursor[T]) int {
	w := c.width()
	if w <= 0 {
		return c.row - o.row
	}

	return (c.row-o.row)*w + (c.col - o.col)
}

func (c cursor[T]) rowDistance(o cursor[T]) int { return c.row - o.row }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func floorMod(a, b int) int { return a - floorDiv(a, b)*b }

// ---------- Iterator (read-write) ----------

// Iterator is a read-write cursor over a DynamicGrid.
type Iterator[T any] struct{ cursor[T] }

// Next advances one element, crossing into the next row after the last column.
func (it *Iterator[T]) Next() { it.next() }

// Prev retreats one element, crossing into the previous row before column 0.
func (it *Iterator[T]) Prev() { it.prev() }

// Value returns the element under the cursor.
func (it Iterator[T]) Value() T { return *it.ptr() }

// Ptr returns a pointer to the element under the cursor.
func (it Iterator[T]) Ptr() *T { return it.ptr() }

// Set overwrites the element under the cursor.
func (it Iterator[T]) Set(v T) { *it.ptr() = v }

// Equal compares row and column.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.equal(o.cursor) }

// Less orders by row, then column (row-major order).
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.less(o.cursor) }

// Greater is the mirror of Less.
func (it Iterator[T]) Greater(o Iterator[T]) bool { return o.less(it.cursor) }

// LessEqual reports !Greater.
func (it Iterator[T]) LessEqual(o Iterator[T]) bool { return !it.Greater(o) }

// GreaterEqual reports !Less.
func (it Iterator[T]) GreaterEqual(o Iterator[T]) bool { return !it.Less(o) }

// Add returns the cursor n elements further (element-granular).
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{it.offset(n)} }

// AddRows returns the cursor n rows further on the same column (row-granular).
func (it Iterator[T]) AddRows(n int) Iterator[T] { return Iterator[T]{it.offsetRows(n)} }

// Distance returns the number of Next steps from o to it.
func (it Iterator[T]) Distance(o Iterator[T]) int { return it.distance(o.cursor) }

// RowDistance returns the spine-slot difference it.row - o.row.
func (it Iterator[T]) RowDistance(o Iterator[T]) int { return it.rowDistance(o.cursor) }

// Const returns a read-only cursor at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T](it) }

// ---------- ConstIterator (read-only) ----------

// ConstIterator is a read-only cursor over a DynamicGrid.
type ConstIterator[T any] struct{ cursor[T] }

// Next advances one element, crossing into the next row after the last column.
func (it *ConstIterator[T]) Next() { it.next() }

// Prev retreats one element, crossing into the previous row before column 0.
func (it *ConstIterator[T]) Prev() { it.prev() }

// Value returns a copy of the element under the cursor.
func (it ConstIterator[T]) Value() T { return *it.ptr() }

// Equal compares row and column.
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool { return it.equal(o.cursor) }

// Less orders by row, then column.
func (it ConstIterator[T]) Less(o ConstIterator[T]) bool { return it.less(o.cursor) }

// Greater is the mirror of Less.
func (it ConstIterator[T]) Greater(o ConstIterator[T]) bool { return o.less(it.cursor) }

// LessEqual reports !Greater.
func (it ConstIterator[T]) LessEqual(o ConstIterator[T]) bool { return !it.Greater(o) }

// GreaterEqual reports !Less.
func (it ConstIterator[T]) GreaterEqual(o ConstIterator[T]) bool { return !it.Less(o) }

// Add returns the cursor n elements further (element-granular).
func (it ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it.offset(n)} }

// AddRows returns the cursor n rows further on the same column (row-granular).
func (it ConstIterator[T]) AddRows(n int) ConstIterator[T] {
	return ConstIterator[T]{it.offsetRows(n)}
}

// Distance returns the number of Next steps from o to it.
func (it ConstIterator[T]) Distance(o ConstIterator[T]) int { return it.distance(o.cursor) }

// RowDistance returns the spine-slot difference it.row - o.row.
func (it ConstIterator[T]) RowDistance(o ConstIterator[T]) int { return it.rowDistance(o.cursor) }

// ---------- Reverse flavors ----------

// ReverseIterator walks backwards. Like a reversed bidirectional cursor it
// wraps a forward base and dereferences the element just before it, so
// RBegin() wraps End() and REnd() wraps Begin(). Ordering and arithmetic
// follow traversal order: RBegin() is the least, Add(n) moves n elements
// towards the first one.
type ReverseIterator[T any] struct{ base Iterator[T] }

// Next moves towards the first element.
func (it *ReverseIterator[T]) Next() { it.base.Prev() }

// Prev moves towards the last element.
func (it *ReverseIterator[T]) Prev() { it.base.Next() }

// Value returns the element just before the base cursor.
func (it ReverseIterator[T]) Value() T { return *it.Ptr() }

// Ptr returns a pointer to the element just before the base cursor.
func (it ReverseIterator[T]) Ptr() *T {
	b := it.base
	b.Prev()

	return b.Ptr()
}

// Set overwrites the element just before the base cursor.
func (it ReverseIterator[T]) Set(v T) { *it.Ptr() = v }

// Equal compares the base cursors.
func (it ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return it.base.Equal(o.base) }

// Less orders in reverse traversal order.
func (it ReverseIterator[T]) Less(o ReverseIterator[T]) bool { return o.base.Less(it.base) }

// Greater is the mirror of Less.
func (it ReverseIterator[T]) Greater(o ReverseIterator[T]) bool { return it.base.Less(o.base) }

// LessEqual reports !Greater.
func (it ReverseIterator[T]) LessEqual(o ReverseIterator[T]) bool { return !it.Greater(o) }

// GreaterEqual reports !Less.
func (it ReverseIterator[T]) GreaterEqual(o ReverseIterator[T]) bool { return !it.Less(o) }

// Add returns the cursor n elements further in reverse order (towards the first element).
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{it.base.Add(-n)}
}

// AddRows returns the cursor n rows further in reverse order, keeping the column.
func (it ReverseIterator[T]) AddRows(n int) ReverseIterator[T] {
	return ReverseIterator[T]{it.base.AddRows(-n)}
}

// Distance returns the number of Next steps from o to it.
func (it ReverseIterator[T]) Distance(o ReverseIterator[T]) int { return o.base.Distance(it.base) }

// RowDistance returns the row difference in reverse order.
func (it ReverseIterator[T]) RowDistance(o ReverseIterator[T]) int {
	return o.base.RowDistance(it.base)
}

// Base returns the underlying forward cursor.
func (it ReverseIterator[T]) Base() Iterator[T] { return it.base }

// ConstReverseIterator is the read-only reverse flavor.
type ConstReverseIterator[T any] struct{ base ConstIterator[T] }

// Next moves towards the first element.
func (it *ConstReverseIterator[T]) Next() { it.base.Prev() }

// Prev moves towards the last element.
func (it *ConstReverseIterator[T]) Prev() { it.base.Next() }

// Value returns a copy of the element just before the base cursor.
func (it ConstReverseIterator[T]) Value() T {
	b := it.base
	b.Prev()

	return b.Value()
}

// Equal compares the base cursors.
func (it ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool {
	return it.base.Equal(o.base)
}

// Less orders in reverse traversal order.
func (it ConstReverseIterator[T]) Less(o ConstReverseIterator[T]) bool {
	return o.base.Less(it.base)
}

// Greater is the mirror of Less.
func (it ConstReverseIterator[T]) Greater(o ConstReverseIterator[T]) bool {
	return it.base.Less(o.base)
}

// LessEqual reports !Greater.
func (it ConstReverseIterator[T]) LessEqual(o ConstReverseIterator[T]) bool {
	return !it.Greater(o)
}

// GreaterEqual reports !Less.
func (it ConstReverseIterator[T]) GreaterEqual(o ConstReverseIterator[T]) bool {
	return !it.Less(o)
}

// Add returns the cursor n elements further in reverse order (towards the first element).
func (it ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.Add(-n)}
}

// AddRows returns the cursor n rows further in reverse order, keeping the column.
func (it ConstReverseIterator[T]) AddRows(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.AddRows(-n)}
}

// Distance returns the number of Next steps from o to it.
func (it ConstReverseIterator[T]) Distance(o ConstReverseIterator[T]) int {
	return o.base.Distance(it.base)
}

// RowDistance returns the row difference in reverse order.
func (it ConstReverseIterator[T]) RowDistance(o ConstReverseIterator[T]) int {
	return o.base.RowDistance(it.base)
}

// Base returns the underlying forward cursor.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return it.base }

// ---------- DynamicGrid accessors ----------

// endRow is Rows(), or 0 when the grid has no addressable element so that
// Begin() == End().
func (g *DynamicGrid[T]) endRow() int {
	if g.Empty() {
		return 0
	}

	return g.rows
}

// Begin returns a read-write cursor on (0, 0).
func (g *DynamicGrid[T]) Begin() Iterator[T] { return Iterator[T]{newCursor(g, 0)} }

// End returns the one-past-the-last-row sentinel (Rows(), 0).
func (g *DynamicGrid[T]) End() Iterator[T] { return Iterator[T]{newCursor(g, g.endRow())} }

// CBegin returns a read-only cursor on (0, 0).
func (g *DynamicGrid[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{newCursor(g, 0)} }

// CEnd returns the read-only end sentinel.
func (g *DynamicGrid[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{newCursor(g, g.endRow())}
}

// RBegin returns a reverse cursor on the last element.
func (g *DynamicGrid[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{g.End()} }

// REnd returns the reverse end sentinel.
func (g *DynamicGrid[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{g.Begin()} }

// CRBegin returns a read-only reverse cursor on the last element.
func (g *DynamicGrid[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{g.CEnd()}
}

// CREnd returns the read-only reverse end sentinel.
func (g *DynamicGrid[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{g.CBegin()}
}
