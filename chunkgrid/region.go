package chunkgrid

import "sort"

// Region is one chunk of the partition: an anchor seed, a caller payload and
// the ids of regions it was found to border during growth.
type Region[T any] struct {
	// Data is the payload produced for this region by the caller's factory.
	Data T

	id        RegionID
	seed      Coord
	neighbors map[RegionID]struct{}
}

// ID returns the region's identifier.
func (r *Region[T]) ID() RegionID { return r.id }

// Seed returns the region's current anchor coordinate.
func (r *Region[T]) Seed() Coord { return r.seed }

// SeedMatches reports whether r and o are anchored at the same coordinate.
func (r *Region[T]) SeedMatches(o *Region[T]) bool {
	return o != nil && r.seed == o.seed
}

// AddNeighbor records a one-directional adjacency r→id. Self-edges are ignored.
func (r *Region[T]) AddNeighbor(id RegionID) {
	if id == r.id {
		return
	}
	if r.neighbors == nil {
		r.neighbors = make(map[RegionID]struct{})
	}
	r.neighbors[id] = struct{}{}
}

// HasNeighbor reports whether r→id has been recorded.
func (r *Region[T]) HasNeighbor(id RegionID) bool {
	_, ok := r.neighbors[id]
	return ok
}

// NeighborCount returns the number of recorded neighbors.
func (r *Region[T]) NeighborCount() int { return len(r.neighbors) }

// Neighbors returns the recorded neighbor ids in ascending order.
func (r *Region[T]) Neighbors() []RegionID {
	out := make([]RegionID, 0, len(r.neighbors))
	for id := range r.neighbors {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ClearNeighbors forgets every recorded adjacency.
func (r *Region[T]) ClearNeighbors() {
	r.neighbors = nil
}

// Registry is the dense arena of regions owned by a Grid.
// Slot i always holds the region with RegionID(i).
type Registry[T any] struct {
	regions []*Region[T]
}

func (rg *Registry[T]) create(seed Coord, data T) *Region[T] {
	r := &Region[T]{
		Data: data,
		id:   RegionID(len(rg.regions)),
		seed: seed,
	}
	rg.regions = append(rg.regions, r)
	return r
}

// Len returns the number of regions created so far.
func (rg *Registry[T]) Len() int { return len(rg.regions) }

// Has reports whether id names an existing region.
func (rg *Registry[T]) Has(id RegionID) bool {
	return id >= 0 && int(id) < len(rg.regions)
}

// Get returns the region with the given id.
func (rg *Registry[T]) Get(id RegionID) (*Region[T], bool) {
	if !rg.Has(id) {
		return nil, false
	}
	return rg.regions[id], true
}

// All returns every region in id order. The slice is a copy; the regions are not.
func (rg *Registry[T]) All() []*Region[T] {
	out := make([]*Region[T], len(rg.regions))
	copy(out, rg.regions)
	return out
}

// Seeds returns the current seed of every region in id order.
func (rg *Registry[T]) Seeds() []Coord {
	out := make([]Coord, len(rg.regions))
	for i, r := range rg.regions {
		out[i] = r.seed
	}
	return out
}

// seedOwner returns the region anchored at c, if any. O(R).
func (rg *Registry[T]) seedOwner(c Coord) (*Region[T], bool) {
	for _, r := range rg.regions {
		if r.seed == c {
			return r, true
		}
	}
	return nil, false
}
