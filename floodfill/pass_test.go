package floodfill_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchunk/annex"
	"github.com/katalvlaran/lvchunk/chunkgrid"
	"github.com/katalvlaran/lvchunk/floodfill"
)

//----------------------------------------------------------------------------//
// Validation and lifecycle
//----------------------------------------------------------------------------//

// TestNewPass_Errors covers nil inputs, empty registries and bad options.
func TestNewPass_Errors(t *testing.T) {
	g := seeded(t, 2, 2, chunkgrid.Coord{})
	empty := seeded(t, 2, 2)

	_, err := floodfill.NewPass[string](nil, annex.Manhattan[string])
	assert.ErrorIs(t, err, floodfill.ErrNilGrid)

	_, err = floodfill.NewPass(g, nil)
	assert.ErrorIs(t, err, floodfill.ErrNilPolicy)

	_, err = floodfill.NewPass(empty, annex.Manhattan[string])
	assert.ErrorIs(t, err, floodfill.ErrNoRegions)

	_, err = floodfill.NewPass(g, annex.Manhattan[string], floodfill.WithMaxPolls(-1))
	assert.ErrorIs(t, err, floodfill.ErrOptionViolation)

	_, err = floodfill.Grow(empty, annex.Euclidean[string])
	assert.ErrorIs(t, err, floodfill.ErrNoRegions)
}

// TestPass_Phases walks a 2×1 grid one step at a time.
func TestPass_Phases(t *testing.T) {
	g := seeded(t, 2, 1, chunkgrid.Coord{})
	p, err := floodfill.NewPass(g, annex.Manhattan[string])
	require.NoError(t, err)

	assert.Equal(t, floodfill.PhaseInitial, p.Phase())
	assert.Equal(t, 1, p.Pending())

	assert.True(t, p.Step()) // seed claims (1,0)
	assert.Equal(t, floodfill.PhaseRunning, p.Phase())

	assert.True(t, p.Step()) // (1,0) has nothing left to claim
	assert.Equal(t, floodfill.PhaseDone, p.Phase())

	assert.False(t, p.Step())
	assert.Equal(t, floodfill.PhaseDone, p.Phase())
	assert.Equal(t, floodfill.Stats{Polled: 2, Claimed: 1}, p.Stats())
	assert.Equal(t, "done", p.Phase().String())
	assert.Equal(t, "Phase(9)", floodfill.Phase(9).String())
}

//----------------------------------------------------------------------------//
// Concrete scenarios
//----------------------------------------------------------------------------//

// TestGrow_SingleRegion2x2 fills a 2×2 grid from (0,0).
func TestGrow_SingleRegion2x2(t *testing.T) {
	g := seeded(t, 2, 2, chunkgrid.Coord{})
	st, err := floodfill.Grow(g, annex.Manhattan[string])
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 0}, {0, 0}}, regionRows(g))
	assert.Equal(t, [][]int{{0, 1}, {1, 2}}, hopRows(g))
	assert.Equal(t, floodfill.Stats{Polled: 4, Claimed: 3}, st)
}

// TestGrow_Manhattan4x4 grows two opposite corners of a 4×4 grid.
//
// Cells with x+y ≤ 3 go to region 0; the anti-diagonal tie is settled by
// arrival order in region 0's favour since it is seeded first.
func TestGrow_Manhattan4x4(t *testing.T) {
	g := seeded(t, 4, 4, chunkgrid.Coord{X: 0, Y: 0}, chunkgrid.Coord{X: 3, Y: 3})
	st, err := floodfill.Grow(g, annex.Manhattan[string], floodfill.WithAdjacency(true))
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 1},
		{0, 1, 1, 1},
	}, regionRows(g))
	assert.Equal(t, [][]int{
		{0, 1, 2, 3},
		{1, 2, 3, 2},
		{2, 3, 2, 1},
		{3, 2, 1, 0},
	}, hopRows(g))
	assert.Equal(t, floodfill.Stats{Polled: 16, Claimed: 14, Contested: 12, Refused: 12, Edges: 2}, st)

	r0, _ := g.Region(0)
	r1, _ := g.Region(1)
	assert.Equal(t, []chunkgrid.RegionID{1}, r0.Neighbors())
	assert.Equal(t, []chunkgrid.RegionID{0}, r1.Neighbors())
}

// TestGrow_EuclideanReannex exercises a cell changing hands mid-pass.
func TestGrow_EuclideanReannex(t *testing.T) {
	g := seeded(t, 4, 2, chunkgrid.Coord{X: 3, Y: 0}, chunkgrid.Coord{X: 0, Y: 1})
	st, err := floodfill.Grow(g, annex.Euclidean[string])
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 1, 0, 0}, {1, 1, 0, 0}}, regionRows(g))
	assert.Equal(t, [][]int{{1, 2, 1, 0}, {0, 1, 2, 1}}, hopRows(g))
	assert.Equal(t, floodfill.Stats{Polled: 9, Claimed: 6, Contested: 5, Reannexed: 1, Refused: 4}, st)
}

// TestGrow_AdjacencyDisabled records nothing when tracking is off.
func TestGrow_AdjacencyDisabled(t *testing.T) {
	g := seeded(t, 5, 1, chunkgrid.Coord{X: 0}, chunkgrid.Coord{X: 4})
	st, err := floodfill.Grow(g, annex.Manhattan[string])
	require.NoError(t, err)

	assert.Equal(t, 2, st.Refused)
	assert.Zero(t, st.Edges)
	for _, r := range g.Regions().All() {
		assert.Zero(t, r.NeighborCount())
	}
}

// TestGrow_Hooks checks OnAnnex/OnRefuse fire once per event.
func TestGrow_Hooks(t *testing.T) {
	g := seeded(t, 5, 1, chunkgrid.Coord{X: 0}, chunkgrid.Coord{X: 4})
	var annexed, refused int
	var pairs [][2]chunkgrid.RegionID
	st, err := floodfill.Grow(g, annex.Manhattan[string],
		floodfill.WithOnAnnex(func(chunkgrid.RegionID, int, int) { annexed++ }),
		floodfill.WithOnRefuse(func(c, o chunkgrid.RegionID, _ int) {
			refused++
			pairs = append(pairs, [2]chunkgrid.RegionID{c, o})
		}),
		floodfill.WithOnAnnex(nil), // ignored
	)
	require.NoError(t, err)

	assert.Equal(t, st.Claimed+st.Reannexed, annexed)
	assert.Equal(t, st.Refused, refused)
	assert.ElementsMatch(t, [][2]chunkgrid.RegionID{{1, 0}, {0, 1}}, pairs)
}

// TestGrow_PollBudget stops early with ErrPollBudget.
func TestGrow_PollBudget(t *testing.T) {
	g := seeded(t, 8, 8, chunkgrid.Coord{})
	st, err := floodfill.Grow(g, annex.Manhattan[string], floodfill.WithMaxPolls(5))
	assert.ErrorIs(t, err, floodfill.ErrPollBudget)
	assert.Equal(t, 5, st.Polled)
	assert.Positive(t, g.Unowned())

	g2 := seeded(t, 2, 2, chunkgrid.Coord{})
	_, err = floodfill.Grow(g2, annex.Manhattan[string], floodfill.WithMaxPolls(4))
	assert.NoError(t, err, "budget equal to the work needed is not exceeded")
}

//----------------------------------------------------------------------------//
// Properties over random seedings
//----------------------------------------------------------------------------//

// TestGrow_ManhattanProperties checks, over several random seedings, that the
// partition is complete, every seed anchors its own region at hop 0, every
// requested region survives, and the stored hop equals the L1 distance to the
// nearest seed with a same-region predecessor one hop closer.
func TestGrow_ManhattanProperties(t *testing.T) {
	const w, h, n = 29, 17, 11
	for s := int64(1); s <= 20; s++ {
		rng := rand.New(rand.NewSource(s))
		seeds := distinct(rng, w, h, n)
		g := seeded(t, w, h, seeds...)

		_, err := floodfill.Grow(g, annex.Manhattan[string], floodfill.WithAdjacency(true))
		require.NoError(t, err)
		require.Zero(t, g.Unowned(), "seed %d", s)

		seen := map[chunkgrid.RegionID]bool{}
		for idx := 0; idx < g.Len(); idx++ {
			id := g.RegionID(idx)
			seen[id] = true
			c := g.Coord(idx)

			nearest := w + h
			for _, sd := range seeds {
				if d := sd.L1(c); d < nearest {
					nearest = d
				}
			}
			require.Equal(t, nearest, g.Hop(idx), "seed %d cell %v", s, c)

			if g.Hop(idx) == 0 {
				continue
			}
			found := false
			for _, nb := range g.CardinalNeighbors(idx, nil) {
				if g.RegionID(nb) == id && g.Hop(nb) == g.Hop(idx)-1 {
					found = true
				}
				if g.RegionID(nb) == id {
					require.LessOrEqual(t, abs(g.Hop(nb)-g.Hop(idx)), 1)
				}
			}
			require.True(t, found, "seed %d cell %v has no predecessor", s, c)
		}
		assert.Len(t, seen, n)

		for _, r := range g.Regions().All() {
			idx := g.IndexOf(r.Seed())
			assert.Equal(t, r.ID(), g.RegionID(idx))
			assert.Equal(t, 0, g.Hop(idx))
		}
	}
}

// TestGrow_DeterministicPolicies checks two runs from the same seeds agree.
func TestGrow_DeterministicPolicies(t *testing.T) {
	policies := map[string]annex.Policy[string]{
		"manhattan": annex.Manhattan[string],
		"euclidean": annex.Euclidean[string],
		"chebyshev": annex.Chebyshev[string],
	}
	seeds := distinct(rand.New(rand.NewSource(3)), 40, 25, 14)
	for name, p := range policies {
		t.Run(name, func(t *testing.T) {
			a := seeded(t, 40, 25, seeds...)
			b := seeded(t, 40, 25, seeds...)
			_, err := floodfill.Grow(a, p, floodfill.WithAdjacency(true))
			require.NoError(t, err)
			_, err = floodfill.Grow(b, p, floodfill.WithAdjacency(true))
			require.NoError(t, err)

			assert.Equal(t, regionRows(a), regionRows(b))
			assert.Equal(t, hopRows(a), hopRows(b))
			for i, r := range a.Regions().All() {
				other, _ := b.Region(chunkgrid.RegionID(i))
				assert.Equal(t, r.Neighbors(), other.Neighbors())
			}
			assert.Zero(t, a.Unowned())
		})
	}
}

// TestGrow_RandomPolicyComplete checks the organic policy still covers the
// grid and never moves a seed's ownership.
func TestGrow_RandomPolicyComplete(t *testing.T) {
	seeds := distinct(rand.New(rand.NewSource(5)), 30, 30, 9)
	g := seeded(t, 30, 30, seeds...)
	st, err := floodfill.Grow(g, annex.Random[string](rand.New(rand.NewSource(8))), floodfill.WithAdjacency(true))
	require.NoError(t, err)

	assert.Zero(t, g.Unowned())
	assert.Positive(t, st.Edges)
	for _, r := range g.Regions().All() {
		assert.True(t, g.IsSeed(g.IndexOf(r.Seed())))
	}
}

//----------------------------------------------------------------------------//
// helpers
//----------------------------------------------------------------------------//

func regionRows(g *chunkgrid.Grid[string]) [][]int {
	return rows(g, func(idx int) int { return int(g.RegionID(idx)) })
}

func hopRows(g *chunkgrid.Grid[string]) [][]int {
	return rows(g, g.Hop)
}

func rows(g *chunkgrid.Grid[string], at func(int) int) [][]int {
	sz := g.Size()
	out := make([][]int, sz.Height)
	for y := range out {
		out[y] = make([]int, sz.Width)
		for x := range out[y] {
			out[y][x] = at(g.Index(x, y))
		}
	}
	return out
}

func distinct(rng *rand.Rand, w, h, n int) []chunkgrid.Coord {
	seen := map[chunkgrid.Coord]bool{}
	out := make([]chunkgrid.Coord, 0, n)
	for len(out) < n {
		c := chunkgrid.Coord{X: rng.Intn(w), Y: rng.Intn(h)}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
