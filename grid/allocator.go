// SPDX-License-Identifier: MIT

// Package grid - two-level storage sources for DynamicGrid.
//
// Purpose:
//   - Let a caller substitute the memory source for the spine (slice of row
//     handles) and for the row buffers, through one strategy object threaded
//     through construction and release.
//   - Provide an instrumented decorator so tests and callers can verify that
//     every allocation is released exactly once.
//
// Complexity quicksheet:
//   - HeapAllocator: O(n) zeroing per request; release is O(1).
//   - ArenaAllocator: O(1) bump allocation; rewinds when the last row is released.
//   - CountingAllocator / TracingAllocator: O(1) overhead per call.
package grid

import (
	"fmt"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// Allocator provides storage for both levels of a DynamicGrid.
// Every buffer returned by AllocateSpine/AllocateRow is handed back exactly
// once to the matching Deallocate method when the owning grid is released
// or when its construction fails partway through.
type Allocator[T any] interface {
	// AllocateSpine returns a slice of n nil row handles.
	AllocateSpine(n int) ([][]T, error)

	// DeallocateSpine releases a spine obtained from AllocateSpine.
	DeallocateSpine(spine [][]T) error

	// AllocateRow returns a row buffer of exactly n zero-valued elements.
	AllocateRow(n int) ([]T, error)

	// DeallocateRow releases a row obtained from AllocateRow.
	DeallocateRow(row []T) error
}

// Compile-time conformance.
var (
	_ Allocator[int] = HeapAllocator[int]{}
	_ Allocator[int] = (*ArenaAllocator[int])(nil)
	_ Allocator[int] = (*CountingAllocator[int])(nil)
	_ Allocator[int] = (*TracingAllocator[int])(nil)
)

// HeapAllocator is the default allocator: make() for every request, and the
// garbage collector reclaims released buffers.
type HeapAllocator[T any] struct{}

// AllocateSpine returns make([][]T, n).
func (HeapAllocator[T]) AllocateSpine(n int) ([][]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("HeapAllocator.AllocateSpine(%d): %w", n, ErrAllocation)
	}

	return make([][]T, n), nil
}

// DeallocateSpine drops the row handles so they become collectable.
func (HeapAllocator[T]) DeallocateSpine(spine [][]T) error {
	clear(spine)

	return nil
}

// AllocateRow returns make([]T, n).
func (HeapAllocator[T]) AllocateRow(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("HeapAllocator.AllocateRow(%d): %w", n, ErrAllocation)
	}

	return make([]T, n), nil
}

// DeallocateRow is a no-op; elements were already cleared by the grid.
func (HeapAllocator[T]) DeallocateRow([]T) error { return nil }

// ArenaAllocator carves rows out of one contiguous arena sized at creation
// and bounds the number of spine slots it hands out.
//   - Rows are bump-allocated; the arena rewinds only when every outstanding
//     row has been released (typical for one grid per arena).
//   - Exhausting either budget yields ErrAllocation, which is how callers
//     observe (and tests exercise) allocation failure in the middle of
//     construction.
type ArenaAllocator[T any] struct {
	buf        []T // backing arena for row buffers
	off        int // bump offset into buf
	liveRows   int // rows handed out and not yet released
	spineCap   int // spine-slot budget
	spineInUse int // spine slots handed out and not yet released
}

// NewArenaAllocator creates an arena holding up to elements row elements and
// up to spineSlots row handles. Negative budgets are clamped to zero.
// Complexity: O(elements) for the backing buffer.
func NewArenaAllocator[T any](elements, spineSlots int) *ArenaAllocator[T] {
	return &ArenaAllocator[T]{
		buf:      make([]T, max(elements, 0)),
		spineCap: max(spineSlots, 0),
	}
}

// AllocateSpine reserves n slots from the spine budget.
func (a *ArenaAllocator[T]) AllocateSpine(n int) ([][]T, error) {
	if n < 0 || a.spineInUse+n > a.spineCap {
		return nil, fmt.Errorf("ArenaAllocator.AllocateSpine(%d): %d of %d slots in use: %w",
			n, a.spineInUse, a.spineCap, ErrAllocation)
	}
	a.spineInUse += n

	return make([][]T, n), nil
}

// DeallocateSpine returns len(spine) slots to the budget.
func (a *ArenaAllocator[T]) DeallocateSpine(spine [][]T) error {
	if len(spine) > a.spineInUse {
		return fmt.Errorf("ArenaAllocator.DeallocateSpine(%d): %w", len(spine), ErrUnbalancedRelease)
	}
	clear(spine)
	a.spineInUse -= len(spine)

	return nil
}

// AllocateRow carves n elements from the arena. The returned slice has its
// capacity clipped to n so appends can never spill into a neighbour row.
func (a *ArenaAllocator[T]) AllocateRow(n int) ([]T, error) {
	if n < 0 || a.off+n > len(a.buf) {
		return nil, fmt.Errorf("ArenaAllocator.AllocateRow(%d): %d of %d elements in use: %w",
			n, a.off, len(a.buf), ErrAllocation)
	}
	row := a.buf[a.off : a.off+n : a.off+n]
	clear(row) // recycled arena space must come back zero-valued
	a.off += n
	a.liveRows++

	return row, nil
}

// DeallocateRow releases one row; the arena rewinds once no rows are live.
func (a *ArenaAllocator[T]) DeallocateRow(row []T) error {
	if a.liveRows == 0 {
		return fmt.Errorf("ArenaAllocator.DeallocateRow(%d): %w", len(row), ErrUnbalancedRelease)
	}
	a.liveRows--
	if a.liveRows == 0 {
		a.off = 0
	}

	return nil
}

// Available reports the free element and spine-slot budgets.
func (a *ArenaAllocator[T]) Available() (elements, spineSlots int) {
	return len(a.buf) - a.off, a.spineCap - a.spineInUse
}

// AllocStats is a snapshot of a CountingAllocator.
type AllocStats struct {
	SpineAllocs   int64 // successful AllocateSpine calls
	SpineReleases int64 // successful DeallocateSpine calls
	RowAllocs     int64 // successful AllocateRow calls
	RowReleases   int64 // successful DeallocateRow calls
	Failures      int64 // allocation requests the inner allocator refused
}

// Balanced reports whether every allocation was released exactly once.
func (s AllocStats) Balanced() bool {
	return s.SpineAllocs == s.SpineReleases && s.RowAllocs == s.RowReleases
}

// CountingAllocator decorates another allocator with per-level counters.
// It is the instrumented allocator used to prove construction/release symmetry.
type CountingAllocator[T any] struct {
	inner Allocator[T]

	spineAllocs, spineReleases atomic.Int64
	rowAllocs, rowReleases     atomic.Int64
	failures                   atomic.Int64
}

// NewCountingAllocator wraps inner (HeapAllocator when nil).
func NewCountingAllocator[T any](inner Allocator[T]) *CountingAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}

	return &CountingAllocator[T]{inner: inner}
}

// AllocateSpine forwards to the inner allocator and counts the outcome.
func (c *CountingAllocator[T]) AllocateSpine(n int) ([][]T, error) {
	s, err := c.inner.AllocateSpine(n)
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}
	c.spineAllocs.Add(1)

	return s, nil
}

// DeallocateSpine forwards to the inner allocator and counts the release.
func (c *CountingAllocator[T]) DeallocateSpine(spine [][]T) error {
	if err := c.inner.DeallocateSpine(spine); err != nil {
		return err
	}
	c.spineReleases.Add(1)

	return nil
}

// AllocateRow forwards to the inner allocator and counts the outcome.
func (c *CountingAllocator[T]) AllocateRow(n int) ([]T, error) {
	r, err := c.inner.AllocateRow(n)
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}
	c.rowAllocs.Add(1)

	return r, nil
}

// DeallocateRow forwards to the inner allocator and counts the release.
func (c *CountingAllocator[T]) DeallocateRow(row []T) error {
	if err := c.inner.DeallocateRow(row); err != nil {
		return err
	}
	c.rowReleases.Add(1)

	return nil
}

// Stats returns a snapshot of the counters.
func (c *CountingAllocator[T]) Stats() AllocStats {
	return AllocStats{
		SpineAllocs:   c.spineAllocs.Load(),
		SpineReleases: c.spineReleases.Load(),
		RowAllocs:     c.rowAllocs.Load(),
		RowReleases:   c.rowReleases.Load(),
		Failures:      c.failures.Load(),
	}
}

// TracingAllocator decorates another allocator with hclog Trace events,
// one per call, carrying the requested size and the outcome.
type TracingAllocator[T any] struct {
	inner  Allocator[T]
	logger hclog.Logger
}

// NewTracingAllocator wraps inner (HeapAllocator when nil); a nil logger
// falls back to hclog.NewNullLogger().
func NewTracingAllocator[T any](inner Allocator[T], logger hclog.Logger) *TracingAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &TracingAllocator[T]{inner: inner, logger: logger.Named("alloc")}
}

// AllocateSpine forwards and traces.
func (t *TracingAllocator[T]) AllocateSpine(n int) ([][]T, error) {
	s, err := t.inner.AllocateSpine(n)
	t.logger.Trace("allocate spine", "slots", n, "error", err)

	return s, err
}

// DeallocateSpine forwards and traces.
func (t *TracingAllocator[T]) DeallocateSpine(spine [][]T) error {
	err := t.inner.DeallocateSpine(spine)
	t.logger.Trace("release spine", "slots", len(spine), "error", err)

	return err
}

// AllocateRow forwards and traces.
func (t *TracingAllocator[T]) AllocateRow(n int) ([]T, error) {
	r, err := t.inner.AllocateRow(n)
	t.logger.Trace("allocate row", "elements", n, "error", err)

	return r, err
}

// DeallocateRow forwards and traces.
func (t *TracingAllocator[T]) DeallocateRow(row []T) error {
	err := t.inner.DeallocateRow(row)
	t.logger.Trace("release row", "elements", len(row), "error", err)

	return err
}
