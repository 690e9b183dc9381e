// Package grid offers two-dimensional containers with row-major semantics.
//
// The grid package provides:
//
//   - FixedGrid[T, S] with the R×C extent carried by the Shape type S and one
//     contiguous buffer; copy-only value semantics (Clone, CopyFrom).
//   - DynamicGrid[T] sized at construction, stored as a spine of row handles
//     with every row allocated separately through a pluggable Allocator.
//   - Iterator / ConstIterator and their reverse flavors, which walk a
//     DynamicGrid row by row as if its storage were flat.
//
// Checked accessors (At, Set, Ref) never panic; they return ErrRowOutOfRange
// or ErrColumnOutOfRange, both matching ErrOutOfRange via errors.Is. Row(i)
// is the unchecked escape hatch.
//
// Construction of a DynamicGrid is all-or-nothing: if an allocation or an
// element constructor fails, everything built so far is released before the
// error is returned. Release tears storage down in reverse order (elements,
// rows, spine); a CountingAllocator verifies the symmetry.
//
// Grids are not safe for concurrent mutation; callers serialize access.
// Iterators are invalidated by Release and by Swap.
//
// See the examples in this package for usage patterns.
package grid
