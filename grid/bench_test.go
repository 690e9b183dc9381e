// Package grid_test provides benchmarks for construction, checked access and
// cursor traversal.
package grid_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
)

// benchSizes are the square grid sizes to benchmark.
var benchSizes = []int{64, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkG *grid.DynamicGrid[float64]
	sinkF float64
)

func BenchmarkNewDynamicFilled(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				g, err := grid.NewDynamicFilled(n, n, 1.5)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}

func BenchmarkNewDynamicArena(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			arena := grid.NewArenaAllocator[float64](n*n, n)
			for i := 0; i < b.N; i++ {
				g, err := grid.NewDynamicFilled(n, n, 1.5, grid.WithAllocator[float64](arena))
				if err != nil {
					b.Fatal(err)
				}
				if err = g.Release(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkIteratorSum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := mustDynamic(b, n, n, 0.5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var s float64
				for it, end := g.CBegin(), g.CEnd(); !it.Equal(end); it.Next() {
					s += it.Value()
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkAtSum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := mustDynamic(b, n, n, 0.5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var s float64
				for r := 0; r < n; r++ {
					for c := 0; c < n; c++ {
						v, err := g.At(r, c)
						if err != nil {
							b.Fatal(err)
						}
						s += v
					}
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkValuesSum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := mustDynamic(b, n, n, 0.5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var s float64
				for v := range g.Values() {
					s += v
				}
				sinkF = s
			}
		})
	}
}
