package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridscope/grid"
	"github.com/katalvlaran/gridscope/gridgraph"
)

// benchGrid returns a deterministic n×n grid with colors in [0,4].
func benchGrid(n int) grid.Grid {
	rng := rand.New(rand.NewSource(42))
	g := grid.Zeros(n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g[r][c] = grid.Color(rng.Intn(5))
		}
	}
	return g
}

// BenchmarkSameColorComponents measures same-color labeling on a 1000×1000 grid.
// Complexity: O(W×H×8)
func BenchmarkSameColorComponents(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(benchGrid(1000), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.SameColorComponents()
	}
}

// BenchmarkCountComponents measures the color-agnostic count on the same grid.
func BenchmarkCountComponents(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(benchGrid(1000), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.CountComponents()
	}
}
