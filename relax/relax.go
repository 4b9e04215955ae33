package relax

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvchunk/chunkgrid"
)

var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("relax: grid is nil")
	// ErrIncompleteGrid is returned when some cell has no owner.
	ErrIncompleteGrid = errors.New("relax: grid has unowned cells")
)

// Move is one seed relocation.
type Move struct {
	ID       chunkgrid.RegionID
	From, To chunkgrid.Coord
}

// Shift returns the Euclidean length of the move.
func (m Move) Shift() float64 {
	return math.Hypot(float64(m.To.X-m.From.X), float64(m.To.Y-m.From.Y))
}

// Report summarises one relaxation round.
type Report struct {
	Moves      []Move  // one per region, in id order
	MeanShift  float64 // average Move.Shift
	MaxShift   float64 // largest Move.Shift
	Collisions int     // means that had to be displaced to keep seeds distinct
}

// accumulator holds per-region coordinate sums.
type accumulator struct {
	sumX, sumY, count []int64
}

func accumulate[T any](g *chunkgrid.Grid[T]) (*accumulator, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if n := g.Unowned(); n > 0 {
		return nil, fmt.Errorf("%w: %d of %d", ErrIncompleteGrid, n, g.Len())
	}
	r := g.Regions().Len()
	acc := &accumulator{
		sumX:  make([]int64, r),
		sumY:  make([]int64, r),
		count: make([]int64, r),
	}
	w := g.Size().Width
	for idx := 0; idx < g.Len(); idx++ {
		id := g.RegionID(idx)
		acc.sumX[id] += int64(idx % w)
		acc.sumY[id] += int64(idx / w)
		acc.count[id]++
	}
	return acc, nil
}

// mean returns the truncated average coordinate of region id, or fallback
// when the region owns no cells.
func (a *accumulator) mean(id chunkgrid.RegionID, fallback chunkgrid.Coord) chunkgrid.Coord {
	n := a.count[id]
	if n == 0 {
		return fallback
	}
	return chunkgrid.Coord{X: int(a.sumX[id] / n), Y: int(a.sumY[id] / n)}
}

// Centroids returns the truncated mean coordinate of each region's cells in
// id order without modifying g.
// Returns ErrNilGrid or ErrIncompleteGrid.
func Centroids[T any](g *chunkgrid.Grid[T]) ([]chunkgrid.Coord, error) {
	acc, err := accumulate(g)
	if err != nil {
		return nil, err
	}
	regions := g.Regions().All()
	out := make([]chunkgrid.Coord, len(regions))
	for i, r := range regions {
		out[i] = acc.mean(r.ID(), r.Seed())
	}
	return out, nil
}

// Recentre performs one relaxation round: it computes every region's
// centroid, clears all cells, and moves each seed to its centroid.
// g is left untouched when an error is returned.
// Complexity: O(W×H + R).
func Recentre[T any](g *chunkgrid.Grid[T]) (Report, error) {
	acc, err := accumulate(g)
	if err != nil {
		return Report{}, err
	}
	g.Clear()

	regions := g.Regions().All()
	rep := Report{Moves: make([]Move, 0, len(regions))}
	taken := make(map[chunkgrid.Coord]struct{}, len(regions))
	total := 0.0

	for _, r := range regions {
		from := r.Seed()
		to := acc.mean(r.ID(), from)
		if _, clash := taken[to]; clash {
			rep.Collisions++
			to = free(g, taken, to, from)
		}
		taken[to] = struct{}{}
		if err := g.MoveRegionSeed(r.ID(), to); err != nil {
			return rep, err
		}

		m := Move{ID: r.ID(), From: from, To: to}
		rep.Moves = append(rep.Moves, m)
		s := m.Shift()
		total += s
		if s > rep.MaxShift {
			rep.MaxShift = s
		}
	}
	if len(regions) > 0 {
		rep.MeanShift = total / float64(len(regions))
	}
	return rep, nil
}

// free picks a replacement for a colliding mean: prev if unclaimed, else the
// first unclaimed cell scanning row-major from mean, wrapping at the end.
func free[T any](g *chunkgrid.Grid[T], taken map[chunkgrid.Coord]struct{}, mean, prev chunkgrid.Coord) chunkgrid.Coord {
	if _, ok := taken[prev]; !ok {
		return prev
	}
	n := g.Len()
	start := g.IndexOf(mean)
	for k := 1; k < n; k++ {
		c := g.Coord((start + k) % n)
		if _, ok := taken[c]; !ok {
			return c
		}
	}
	return prev
}
