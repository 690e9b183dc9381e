// SPDX-License-Identifier: MIT

// Package grid: domain types shared by FixedGrid and DynamicGrid.
// This file contains ONLY domain-facing types (shapes, cell coordinates) and
// the shape validation helper. Errors and options live in dedicated files
// (errors.go, options.go).
package grid

import "fmt"

// Shape fixes the extent of a FixedGrid at the type level.
// Implementations are zero-size types whose methods return constants, so
// the shape is part of the grid's type and two FixedGrids are
// interchangeable (Swap, CopyFrom) only when their shapes are identical.
//
//	type Shape2x5 struct{}
//
//	func (Shape2x5) Rows() int { return 2 }
//	func (Shape2x5) Cols() int { return 5 }
type Shape interface {
	// Rows returns the constant row count (>= 0).
	Rows() int

	// Cols returns the constant column count (>= 0).
	Cols() int
}

// Shape2x2 is a predeclared 2×2 shape.
type Shape2x2 struct{}

// Rows returns 2.
func (Shape2x2) Rows() int { return 2 }

// Cols returns 2.
func (Shape2x2) Cols() int { return 2 }

// Shape3x3 is a predeclared 3×3 shape.
type Shape3x3 struct{}

// Rows returns 3.
func (Shape3x3) Rows() int { return 3 }

// Cols returns 3.
func (Shape3x3) Cols() int { return 3 }

// Shape4x4 is a predeclared 4×4 shape.
type Shape4x4 struct{}

// Rows returns 4.
func (Shape4x4) Rows() int { return 4 }

// Cols returns 4.
func (Shape4x4) Cols() int { return 4 }

// Cell is a (Row, Col) coordinate yielded by the range-over-func helpers.
type Cell struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// panicBadShape is raised when a Shape type reports negative extents.
// A broken Shape is a programmer error, not a user-triggered condition.
const panicBadShape = "grid: Shape must report non-negative Rows() and Cols()"

// shapeOf resolves the constant extents of S.
// Complexity: O(1).
func shapeOf[S Shape]() (rows, cols int) {
	var s S
	rows, cols = s.Rows(), s.Cols()
	if rows < 0 || cols < 0 {
		panic(panicBadShape)
	}

	return rows, cols
}
