// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and a fault-injecting allocator so
//     partial-construction teardown can be exercised at every step.

package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
)

// errBoom is the injected failure used by fault-injection helpers.
var errBoom = errors.New("boom")

// Shape2x3 is a test-local 2×3 shape.
type Shape2x3 struct{}

func (Shape2x3) Rows() int { return 2 }
func (Shape2x3) Cols() int { return 3 }

// Shape0x4 is a test-local shape with no rows.
type Shape0x4 struct{}

func (Shape0x4) Rows() int { return 0 }
func (Shape0x4) Cols() int { return 4 }

// badShape reports a negative extent (programmer error).
type badShape struct{}

func (badShape) Rows() int { return -1 }
func (badShape) Cols() int { return 2 }

// failingAllocator REFUSES the (failRowAt+1)-th row allocation, or the spine
// when failSpine is set; everything else is forwarded to inner.
type failingAllocator[T any] struct {
	inner     grid.Allocator[T]
	failSpine bool
	failRowAt int // 0-based index of the row request to refuse; <0 disables
	rowCalls  int
}

func (f *failingAllocator[T]) AllocateSpine(n int) ([][]T, error) {
	if f.failSpine {
		return nil, grid.ErrAllocation
	}

	return f.inner.AllocateSpine(n)
}

func (f *failingAllocator[T]) DeallocateSpine(s [][]T) error { return f.inner.DeallocateSpine(s) }

func (f *failingAllocator[T]) AllocateRow(n int) ([]T, error) {
	call := f.rowCalls
	f.rowCalls++
	if f.failRowAt >= 0 && call == f.failRowAt {
		return nil, grid.ErrAllocation
	}

	return f.inner.AllocateRow(n)
}

func (f *failingAllocator[T]) DeallocateRow(r []T) error { return f.inner.DeallocateRow(r) }

// countingOver returns a CountingAllocator on top of a failingAllocator, so
// the counters only see allocations that actually succeeded.
func countingOver[T any](failSpine bool, failRowAt int) *grid.CountingAllocator[T] {
	return grid.NewCountingAllocator[T](&failingAllocator[T]{
		inner:     grid.HeapAllocator[T]{},
		failSpine: failSpine,
		failRowAt: failRowAt,
	})
}

// mustDynamic ALLOCATES a filled rows×cols grid or fails the test.
func mustDynamic[T any](t testing.TB, rows, cols int, v T, opts ...grid.Option[T]) *grid.DynamicGrid[T] {
	t.Helper()
	g, err := grid.NewDynamicFilled(rows, cols, v, opts...)
	if err != nil {
		t.Fatalf("NewDynamicFilled(%d,%d): %v", rows, cols, err)
	}

	return g
}

// sequential builds a rows×cols int grid holding 1..rows*cols in row-major order.
func sequential(t testing.TB, rows, cols int, opts ...grid.Option[int]) *grid.DynamicGrid[int] {
	t.Helper()
	g, err := grid.NewDynamicFunc(rows, cols, func(i, j int) (int, error) {
		return i*cols + j + 1, nil
	}, opts...)
	if err != nil {
		t.Fatalf("NewDynamicFunc(%d,%d): %v", rows, cols, err)
	}

	return g
}

// forward collects the elements visited by Begin..End.
func forward[T any](g *grid.DynamicGrid[T]) []T {
	var out []T
	for it, end := g.Begin(), g.End(); !it.Equal(end); it.Next() {
		out = append(out, it.Value())
	}

	return out
}

// backward collects the elements visited by RBegin..REnd.
func backward[T any](g *grid.DynamicGrid[T]) []T {
	var out []T
	for it, end := g.RBegin(), g.REnd(); !it.Equal(end); it.Next() {
		out = append(out, it.Value())
	}

	return out
}
