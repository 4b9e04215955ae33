package chunkgrid

import "fmt"

// Grid holds per-cell ownership for a W×H partition together with the
// registry of regions that own those cells.
//
// Cells are addressed by row-major index y*Width+x. region[i] is the owning
// RegionID or Unset; hop[i] is the hop distance from the owner's seed and is
// only meaningful when region[i] != Unset.
type Grid[T any] struct {
	size    Size
	region  []int32
	hop     []int32
	regions Registry[T]
}

// New allocates a W×H grid with every cell unowned.
// Returns ErrEmptyGrid for non-positive dimensions and ErrGridTooLarge when
// W×H exceeds the int32 index space.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	if int64(width)*int64(height) > maxCells {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, width, height)
	}
	n := width * height
	g := &Grid[T]{
		size:   Size{Width: width, Height: height},
		region: make([]int32, n),
		hop:    make([]int32, n),
	}
	g.Clear()

	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return g.size }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.region) }

// Index converts (x,y) to a row-major cell index. No bounds check.
func (g *Grid[T]) Index(x, y int) int { return y*g.size.Width + x }

// IndexOf converts a coordinate to a row-major cell index. No bounds check.
func (g *Grid[T]) IndexOf(c Coord) int { return c.Y*g.size.Width + c.X }

// Coord converts a row-major index back to its coordinate.
func (g *Grid[T]) Coord(idx int) Coord {
	return Coord{X: idx % g.size.Width, Y: idx / g.size.Width}
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.size.Width && y >= 0 && y < g.size.Height
}

// Contains reports whether c lies within the grid.
func (g *Grid[T]) Contains(c Coord) bool { return g.InBounds(c.X, c.Y) }

// CardinalNeighbors appends the in-bounds 4-connected neighbors of idx to buf
// in N, E, S, W order and returns the extended slice. Edges clip; there is no
// wraparound between rows or columns.
func (g *Grid[T]) CardinalNeighbors(idx int, buf []int) []int {
	w := g.size.Width
	x, y := idx%w, idx/w
	if y > 0 {
		buf = append(buf, idx-w)
	}
	if x < w-1 {
		buf = append(buf, idx+1)
	}
	if y < g.size.Height-1 {
		buf = append(buf, idx+w)
	}
	if x > 0 {
		buf = append(buf, idx-1)
	}
	return buf
}

// RegionID returns the owner of cell idx, or NoRegion.
func (g *Grid[T]) RegionID(idx int) RegionID { return RegionID(g.region[idx]) }

// Hop returns the hop distance stored at cell idx, or Unset.
func (g *Grid[T]) Hop(idx int) int { return int(g.hop[idx]) }

// RegionIDAt returns the owner of cell (x,y), or NoRegion.
func (g *Grid[T]) RegionIDAt(x, y int) RegionID { return g.RegionID(g.Index(x, y)) }

// HopAt returns the hop distance stored at cell (x,y), or Unset.
func (g *Grid[T]) HopAt(x, y int) int { return g.Hop(g.Index(x, y)) }

// HasRegion reports whether cell idx is owned.
func (g *Grid[T]) HasRegion(idx int) bool { return g.region[idx] != Unset }

// IsSeed reports whether idx is the anchor cell of the region that owns it.
// Complexity: O(1).
func (g *Grid[T]) IsSeed(idx int) bool {
	id := g.region[idx]
	if id == Unset {
		return false
	}
	return g.IndexOf(g.regions.regions[id].seed) == idx
}

// Set assigns cell idx to region id at the given hop distance.
func (g *Grid[T]) Set(idx int, id RegionID, hop int) {
	g.region[idx] = int32(id)
	g.hop[idx] = int32(hop)
}

// SetAt assigns cell c to region id at the given hop distance.
func (g *Grid[T]) SetAt(c Coord, id RegionID, hop int) {
	g.Set(g.IndexOf(c), id, hop)
}

// ClearCell resets both values of cell idx to Unset.
func (g *Grid[T]) ClearCell(idx int) {
	g.region[idx] = Unset
	g.hop[idx] = Unset
}

// Clear resets every cell to Unset. Regions and their seeds are kept.
func (g *Grid[T]) Clear() {
	for i := range g.region {
		g.region[i] = Unset
		g.hop[i] = Unset
	}
}

// Regions returns the registry backing this grid.
func (g *Grid[T]) Regions() *Registry[T] { return &g.regions }

// Region returns the region with the given id.
func (g *Grid[T]) Region(id RegionID) (*Region[T], bool) { return g.regions.Get(id) }

// RegionAt returns the region owning cell idx.
// Returns ErrCellUnassigned if the cell is unowned.
func (g *Grid[T]) RegionAt(idx int) (*Region[T], error) {
	id := g.region[idx]
	if id == Unset {
		return nil, fmt.Errorf("%w: %v", ErrCellUnassigned, g.Coord(idx))
	}
	return g.regions.regions[id], nil
}

// MustRegionAt is RegionAt for callers that have already established the
// cell is owned. It panics with ErrCellUnassigned otherwise.
func (g *Grid[T]) MustRegionAt(idx int) *Region[T] {
	r, err := g.RegionAt(idx)
	if err != nil {
		panic(err)
	}
	return r
}

// CreateRegion registers a new region anchored at seed and marks the seed
// cell as owned with hop 0. The id is the next unused sequential value.
// Returns ErrOutOfBounds or ErrSeedTaken.
func (g *Grid[T]) CreateRegion(seed Coord, data T) (RegionID, error) {
	if !g.Contains(seed) {
		return NoRegion, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, seed, g.size.Width, g.size.Height)
	}
	if other, taken := g.regions.seedOwner(seed); taken {
		return NoRegion, fmt.Errorf("%w: %v by region %d", ErrSeedTaken, seed, other.id)
	}
	r := g.regions.create(seed, data)
	g.SetAt(seed, r.id, 0)

	return r.id, nil
}

// MoveRegionSeed relocates the anchor of region id. Cell ownership is not
// touched; callers move seeds between passes on a cleared grid.
// Returns ErrRegionNotFound or ErrOutOfBounds.
func (g *Grid[T]) MoveRegionSeed(id RegionID, c Coord) error {
	r, ok := g.regions.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrRegionNotFound, id)
	}
	if !g.Contains(c) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.size.Width, g.size.Height)
	}
	r.seed = c
	return nil
}

// Sizes returns the number of cells owned by each region, indexed by id.
func (g *Grid[T]) Sizes() []int {
	out := make([]int, g.regions.Len())
	for _, id := range g.region {
		if id != Unset {
			out[id]++
		}
	}
	return out
}

// Unowned returns the number of cells with no region.
func (g *Grid[T]) Unowned() int {
	n := 0
	for _, id := range g.region {
		if id == Unset {
			n++
		}
	}
	return n
}
