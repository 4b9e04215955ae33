package chunkgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchunk/chunkgrid"
)

// TestRegionNeighbors checks set semantics, ordering and self-edge filtering.
func TestRegionNeighbors(t *testing.T) {
	g := mustGrid(t, 4, 1)
	for x := 0; x < 4; x++ {
		_, err := g.CreateRegion(chunkgrid.Coord{X: x}, "")
		require.NoError(t, err)
	}
	r, _ := g.Region(1)

	r.AddNeighbor(3)
	r.AddNeighbor(0)
	r.AddNeighbor(3)
	r.AddNeighbor(1) // self

	assert.Equal(t, []chunkgrid.RegionID{0, 3}, r.Neighbors())
	assert.Equal(t, 2, r.NeighborCount())
	assert.True(t, r.HasNeighbor(3))
	assert.False(t, r.HasNeighbor(1))

	other, _ := g.Region(3)
	assert.False(t, other.HasNeighbor(1), "adjacency is one-directional")

	r.ClearNeighbors()
	assert.Empty(t, r.Neighbors())
}

// TestRegistryAccessors covers Has/Get/All/Seeds.
func TestRegistryAccessors(t *testing.T) {
	g := mustGrid(t, 3, 3)
	seeds := []chunkgrid.Coord{{X: 2, Y: 2}, {X: 0, Y: 1}}
	for _, s := range seeds {
		_, err := g.CreateRegion(s, s.String())
		require.NoError(t, err)
	}
	reg := g.Regions()

	assert.True(t, reg.Has(1))
	assert.False(t, reg.Has(2))
	assert.False(t, reg.Has(chunkgrid.NoRegion))
	_, ok := reg.Get(5)
	assert.False(t, ok)

	all := reg.All()
	require.Len(t, all, 2)
	for i, r := range all {
		assert.Equal(t, chunkgrid.RegionID(i), r.ID())
		assert.Equal(t, seeds[i].String(), r.Data)
	}
	assert.Equal(t, seeds, reg.Seeds())

	a, _ := reg.Get(0)
	b, _ := reg.Get(1)
	assert.False(t, a.SeedMatches(b))
	assert.True(t, a.SeedMatches(a))
	assert.False(t, a.SeedMatches(nil))
}
