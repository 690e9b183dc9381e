// Package grid_test contains unit tests for the gonum interop helpers.
package grid_test

import (
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestToDenseRoundTrip verifies a grid survives ToDense/FromMatrix and the copies are independent.
func TestToDenseRoundTrip(t *testing.T) {
	g, err := grid.NewDynamicFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	d, err := grid.ToDense(g)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, d.At(1, 2))

	// The copy is independent of the grid.
	d.Set(0, 0, -1)
	v, _ := g.At(0, 0)
	require.Equal(t, 1.0, v)

	back, err := grid.FromMatrix(d)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 2, 3, 4, 5, 6}, forward(back))
	require.True(t, mat.Equal(d, mat.NewDense(2, 3, forward(back))))
}

// TestToDenseErrors verifies nil and empty inputs are rejected with sentinels.
func TestToDenseErrors(t *testing.T) {
	_, err := grid.ToDense(nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)

	_, err = grid.ToDense(grid.NewDynamic[float64]())
	require.ErrorIs(t, err, grid.ErrBadShape)

	_, err = grid.FromMatrix(nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)

	_, err = grid.FromMatrix((*mat.Dense)(nil))
	require.ErrorIs(t, err, grid.ErrNilGrid)

	_, err = grid.FixedToDense[grid.Shape2x2](nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)
}

// TestFixedToDense verifies fixed grids copy into an independent dense matrix.
func TestFixedToDense(t *testing.T) {
	g, err := grid.NewFixedFromSlice[float64, grid.Shape2x2]([]float64{1, 0, 0, 1})
	require.NoError(t, err)

	d, err := grid.FixedToDense(g)
	require.NoError(t, err)
	require.True(t, mat.Equal(d, mat.NewDiagDense(2, []float64{1, 1})))

	require.NoError(t, g.Set(0, 0, 5))
	require.Equal(t, 1.0, d.At(0, 0))
}

// TestFromMatrixUsesOptions verifies FromMatrix builds through the configured allocator.
func TestFromMatrixUsesOptions(t *testing.T) {
	ca := grid.NewCountingAllocator[float64](nil)
	g, err := grid.FromMatrix(mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}), grid.WithAllocator[float64](ca))
	require.NoError(t, err)
	require.EqualValues(t, 3, ca.Stats().RowAllocs)
	require.NoError(t, g.Release())
	require.True(t, ca.Stats().Balanced())
}
