// SPDX-License-Identifier: MIT

// Package grid - gonum interop for float64 grids.
//
// These helpers COPY between grid storage and gonum matrices so numeric code
// can run on gonum while the grid remains a storage-and-iteration primitive.
// No arithmetic is performed here.
package grid

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies g into a new *mat.Dense of the same shape.
// Errors:
//   - ErrNilGrid for a nil grid.
//   - ErrBadShape for a grid with no addressable element (gonum forbids 0×n).
//
// Complexity: O(rows*cols).
func ToDense(g *DynamicGrid[float64]) (*mat.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s.ToDense: %w", typDynamic, ErrNilGrid)
	}
	if g.Empty() {
		return nil, fmt.Errorf("%s.ToDense: %d×%d: %w", typDynamic, g.rows, g.cols, ErrBadShape)
	}
	d := mat.NewDense(g.rows, g.cols, nil)
	for i := 0; i < g.rows; i++ {
		d.SetRow(i, g.Row(i))
	}

	return d, nil
}

// FixedToDense copies a fixed grid into a new *mat.Dense.
// Errors: ErrNilGrid for a nil grid, ErrBadShape for a shape with no element.
func FixedToDense[S Shape](g *FixedGrid[float64, S]) (*mat.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s.ToDense: %w", typFixed, ErrNilGrid)
	}
	r, c := g.Shape()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s.ToDense: %d×%d: %w", typFixed, r, c, ErrBadShape)
	}
	data := g.Data()
	buf := make([]float64, len(data))
	copy(buf, data)

	return mat.NewDense(r, c, buf), nil
}

// FromMatrix copies any gonum matrix into a new DynamicGrid built with opts.
// Errors: ErrNilGrid for a nil matrix (untyped or a typed nil pointer such as
// (*mat.Dense)(nil)), plus any construction error.
func FromMatrix(m mat.Matrix, opts ...Option[float64]) (*DynamicGrid[float64], error) {
	if isNilMatrix(m) {
		return nil, fmt.Errorf("%s.FromMatrix: %w", typDynamic, ErrNilGrid)
	}
	r, c := m.Dims()

	return NewDynamicFunc(r, c, func(i, j int) (float64, error) { return m.At(i, j), nil }, opts...)
}

// isNilMatrix reports an untyped nil or an interface holding a nil pointer.
func isNilMatrix(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
