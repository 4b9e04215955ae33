package voronoi

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvchunk/chunkgrid"
)

// defaultRNGSeed is used when callers pass seed==0 so default runs repeat.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// RandomDistinctCoords draws n distinct coordinates inside size by rejection
// sampling, returned in the order they were first drawn. A nil rng uses the
// fixed default seed.
// Returns ErrBadRegionCount if n ≤ 0 or n exceeds the cell count.
//
// Complexity: expected O(N·H(N)/(N-n+1)) draws for N cells; near-full
// requests approach the coupon-collector bound.
func RandomDistinctCoords(rng *rand.Rand, size chunkgrid.Size, n int) ([]chunkgrid.Coord, error) {
	if n <= 0 || n > size.Cells() {
		return nil, fmt.Errorf("%w: %d for %dx%d", ErrBadRegionCount, n, size.Width, size.Height)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	seen := make(map[chunkgrid.Coord]struct{}, n)
	out := make([]chunkgrid.Coord, 0, n)
	for len(out) < n {
		c := chunkgrid.Coord{X: rng.Intn(size.Width), Y: rng.Intn(size.Height)}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// validateSeeds checks explicit seeds against the grid and region count.
func validateSeeds(seeds []chunkgrid.Coord, size chunkgrid.Size, n int) error {
	if len(seeds) != n {
		return fmt.Errorf("%w: have %d, want %d", ErrBadSeeds, len(seeds), n)
	}
	seen := make(map[chunkgrid.Coord]struct{}, n)
	for _, c := range seeds {
		if c.X < 0 || c.X >= size.Width || c.Y < 0 || c.Y >= size.Height {
			return fmt.Errorf("%w: %v outside %dx%d", ErrBadSeeds, c, size.Width, size.Height)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate %v", ErrBadSeeds, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
