// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the grid
// package. Public operations MUST return these sentinels (optionally wrapped
// with method context) and tests MUST check them via errors.Is.
// Panics are reserved for programmer errors (invalid Shape types, nil options).

package grid

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "grid: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with the method context
// ("DynamicGrid.At(2,0): grid: row index out of range"); callers match
// with errors.Is.

var (
	// ErrShapeMismatch is returned when a literal sequence does not hold exactly
	// the number of elements the grid requires (flat length != R*C, or a nested
	// literal whose rows are ragged or whose row count is wrong).
	ErrShapeMismatch = errors.New("grid: shape mismatch")

	// ErrOutOfRange indicates that a coordinate is outside the logical bounds.
	// Checked accessors (At/Set/Ref) return one of the axis refinements below,
	// both of which satisfy errors.Is(err, ErrOutOfRange).
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrRowOutOfRange reports that the row index failed the bounds check.
	ErrRowOutOfRange error = &axisError{msg: "grid: row index out of range"}

	// ErrColumnOutOfRange reports that the column index failed the bounds check.
	ErrColumnOutOfRange error = &axisError{msg: "grid: column index out of range"}

	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrAllocation indicates an Allocator could not provide the requested storage.
	// Construction tears down everything built so far before returning it.
	ErrAllocation = errors.New("grid: allocation failed")

	// ErrUnbalancedRelease indicates an Allocator was asked to release storage
	// it has no outstanding allocation for (double release).
	ErrUnbalancedRelease = errors.New("grid: release without matching allocation")

	// ErrNilGrid indicates that a nil grid or matrix argument was used.
	ErrNilGrid = errors.New("grid: nil grid")
)

// axisError names the failing axis while still matching ErrOutOfRange.
type axisError struct{ msg string }

func (e *axisError) Error() string { return e.msg }

func (e *axisError) Unwrap() error { return ErrOutOfRange }

// gridErrorf wraps a sentinel with a uniform "<Type>.<method>(row,col)" context.
// Complexity: O(1).
func gridErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}
