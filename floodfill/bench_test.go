package floodfill_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvchunk/annex"
	"github.com/katalvlaran/lvchunk/chunkgrid"
	"github.com/katalvlaran/lvchunk/floodfill"
)

// BenchmarkGrow_Euclidean measures one full pass on a 512×512 grid with 256 seeds.
// Complexity: O(W×H×k)
func BenchmarkGrow_Euclidean(b *testing.B) {
	benchGrow(b, annex.Euclidean[struct{}])
}

// BenchmarkGrow_Random measures the organic policy on the same layout.
func BenchmarkGrow_Random(b *testing.B) {
	benchGrow(b, annex.Random[struct{}](rand.New(rand.NewSource(2))))
}

func benchGrow(b *testing.B, p annex.Policy[struct{}]) {
	const n = 512
	g, err := chunkgrid.New[struct{}](n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	for g.Regions().Len() < 256 {
		_, _ = g.CreateRegion(chunkgrid.Coord{X: rng.Intn(n), Y: rng.Intn(n)}, struct{}{})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Clear()
		if _, err := floodfill.Grow(g, p); err != nil {
			b.Fatal(err)
		}
	}
}
