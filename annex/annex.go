package annex

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/lvchunk/chunkgrid"
)

// ErrUnknownPolicy is returned by Lookup for an unregistered name.
var ErrUnknownPolicy = errors.New("annex: unknown policy")

// Policy decides whether challenger may take over target, a cell currently
// owned by a different region that is not that region's seed.
type Policy[T any] func(g *chunkgrid.Grid[T], challenger *chunkgrid.Region[T], target int) bool

// Names accepted by Lookup.
const (
	NameManhattan = "manhattan"
	NameEuclidean = "euclidean"
	NameChebyshev = "chebyshev"
	NameRandom    = "random"
)

// Probabilities used by Random when the weighted draw refuses.
const (
	// FillBoostFour applies when all four cardinal neighbors belong to the challenger.
	FillBoostFour = 0.9
	// FillBoostThree applies when three cardinal neighbors belong to the challenger.
	FillBoostThree = 0.65
)

// Manhattan grants annexation when the challenger's seed is strictly closer
// in L1 distance than the hop count recorded at target.
func Manhattan[T any](g *chunkgrid.Grid[T], challenger *chunkgrid.Region[T], target int) bool {
	return g.Hop(target) > challenger.Seed().L1(g.Coord(target))
}

// Euclidean grants annexation when the challenger's seed is strictly closer
// to target than the current owner's seed.
func Euclidean[T any](g *chunkgrid.Grid[T], challenger *chunkgrid.Region[T], target int) bool {
	c := g.Coord(target)
	owner := g.MustRegionAt(target)
	return owner.Seed().SquaredL2(c) > challenger.Seed().SquaredL2(c)
}

// Chebyshev grants annexation when the challenger's seed is strictly closer
// to target than the current owner's seed under the L∞ metric.
func Chebyshev[T any](g *chunkgrid.Grid[T], challenger *chunkgrid.Region[T], target int) bool {
	c := g.Coord(target)
	owner := g.MustRegionAt(target)
	return owner.Seed().LInf(c) > challenger.Seed().LInf(c)
}

// Random returns a probabilistic policy drawing from rng.
//
// The challenger wins outright with probability do/(dc+do), where dc and do
// are the squared distances from the challenger's and owner's seeds. Failing
// that, if 4 of the target's cardinal neighbors are owned by the challenger it
// wins with FillBoostFour, if 3 with FillBoostThree.
//
// rng must not be shared across goroutines. A nil rng uses a fixed seed.
func Random[T any](rng *rand.Rand) Policy[T] {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	buf := make([]int, 0, 4)
	return func(g *chunkgrid.Grid[T], challenger *chunkgrid.Region[T], target int) bool {
		c := g.Coord(target)
		own := g.MustRegionAt(target).Seed().SquaredL2(c)
		theirs := challenger.Seed().SquaredL2(c)
		if rng.Float64()*float64(theirs+own) < float64(own) {
			return true
		}
		switch surrounded(g, challenger, target, buf[:0]) {
		case 4:
			return rng.Float64() < FillBoostFour
		case 3:
			return rng.Float64() < FillBoostThree
		}
		return false
	}
}

// surrounded counts target's cardinal neighbors owned by a region anchored at
// the challenger's seed.
func surrounded[T any](g *chunkgrid.Grid[T], challenger *chunkgrid.Region[T], target int, buf []int) int {
	n := 0
	for _, nb := range g.CardinalNeighbors(target, buf) {
		if !g.HasRegion(nb) {
			continue
		}
		if g.MustRegionAt(nb).SeedMatches(challenger) {
			n++
		}
	}
	return n
}

// Lookup resolves a policy by name. rng is only used by NameRandom.
func Lookup[T any](name string, rng *rand.Rand) (Policy[T], error) {
	switch name {
	case NameManhattan:
		return Manhattan[T], nil
	case NameEuclidean:
		return Euclidean[T], nil
	case NameChebyshev:
		return Chebyshev[T], nil
	case NameRandom:
		return Random[T](rng), nil
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownPolicy, name, Names())
}

// Names lists the policy names accepted by Lookup, sorted.
func Names() []string {
	out := []string{NameChebyshev, NameEuclidean, NameManhattan, NameRandom}
	sort.Strings(out)
	return out
}
