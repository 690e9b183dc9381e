// Package grid_test contains runnable examples for the grid package.
package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgrid/grid"
)

// ExampleNewFixedFromSlice builds a 3×3 grid from a flat literal.
func ExampleNewFixedFromSlice() {
	g, err := grid.NewFixedFromSlice[int, grid.Shape3x3]([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		fmt.Println(err)
		return
	}
	center, _ := g.At(1, 1)
	fmt.Println("center:", center)
	fmt.Print(g)

	_, err = grid.NewFixedFromSlice[int, grid.Shape3x3]([]int{1, 2})
	fmt.Println(errors.Is(err, grid.ErrShapeMismatch))

	// Output:
	// center: 5
	// [1, 2, 3]
	// [4, 5, 6]
	// [7, 8, 9]
	// true
}

// ExampleDynamicGrid_Begin walks a grid across row boundaries.
func ExampleDynamicGrid_Begin() {
	g, err := grid.NewDynamicFromRows([][]string{{"a", "b"}, {"c", "d"}})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer g.Release()

	for it := g.Begin(); !it.Equal(g.End()); it.Next() {
		if !it.Equal(g.Begin()) {
			fmt.Print(" ")
		}
		r, c := it.Position()
		fmt.Printf("(%d,%d)=%s", r, c, it.Value())
	}
	fmt.Println()
	for it := g.RBegin(); !it.Equal(g.REnd()); it.Next() {
		fmt.Print(it.Value())
	}
	fmt.Println()

	// Output:
	// (0,0)=a (0,1)=b (1,0)=c (1,1)=d
	// dcba
}

// ExampleCountingAllocator shows that a failed construction leaks nothing.
func ExampleCountingAllocator() {
	ca := grid.NewCountingAllocator[int](grid.NewArenaAllocator[int](5, 3))

	_, err := grid.NewDynamicFilled(3, 2, 7, grid.WithAllocator[int](ca))
	st := ca.Stats()
	fmt.Println(errors.Is(err, grid.ErrAllocation), st.RowAllocs, st.Balanced())

	// Output:
	// true 2 true
}
