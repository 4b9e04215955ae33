package regiongraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvchunk/chunkgrid"
)

// Sentinel errors for region graph queries.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("regiongraph: grid is nil")
	// ErrRegionNotFound is returned for an id outside the graph.
	ErrRegionNotFound = errors.New("regiongraph: region not found")
)

// Unreachable marks regions Hops could not reach.
const Unreachable = -1

// Mode selects how recorded adjacency is read.
type Mode int

const (
	// Directed keeps edges exactly as recorded: A→B when A was refused B's cell.
	Directed Mode = iota
	// Symmetric adds B→A for every recorded A→B.
	Symmetric
)

// Edge is a directed pair of region ids.
type Edge struct {
	From, To chunkgrid.RegionID
}

// Graph is an immutable adjacency view over regions 0..Len()-1.
// adj[i] is sorted and duplicate-free.
type Graph struct {
	adj      [][]chunkgrid.RegionID
	directed bool
}

// FromGrid builds a graph from the neighbor sets recorded on g's regions.
func FromGrid[T any](g *chunkgrid.Grid[T], mode Mode) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	regions := g.Regions().All()
	sets := make([]map[chunkgrid.RegionID]struct{}, len(regions))
	for i := range sets {
		sets[i] = make(map[chunkgrid.RegionID]struct{})
	}
	for _, r := range regions {
		for _, nb := range r.Neighbors() {
			sets[r.ID()][nb] = struct{}{}
			if mode == Symmetric {
				sets[nb][r.ID()] = struct{}{}
			}
		}
	}
	return build(sets, mode == Directed), nil
}

// FromBorders builds the exact undirected adjacency of g's current ownership.
// Unowned cells are ignored.
func FromBorders[T any](g *chunkgrid.Grid[T]) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	sets := make([]map[chunkgrid.RegionID]struct{}, g.Regions().Len())
	for i := range sets {
		sets[i] = make(map[chunkgrid.RegionID]struct{})
	}
	sz := g.Size()
	link := func(a, b int) {
		ra, rb := g.RegionID(a), g.RegionID(b)
		if ra == chunkgrid.NoRegion || rb == chunkgrid.NoRegion || ra == rb {
			return
		}
		sets[ra][rb] = struct{}{}
		sets[rb][ra] = struct{}{}
	}
	for y := 0; y < sz.Height; y++ {
		for x := 0; x < sz.Width; x++ {
			idx := g.Index(x, y)
			if x+1 < sz.Width {
				link(idx, idx+1)
			}
			if y+1 < sz.Height {
				link(idx, idx+sz.Width)
			}
		}
	}
	return build(sets, false), nil
}

func build(sets []map[chunkgrid.RegionID]struct{}, directed bool) *Graph {
	adj := make([][]chunkgrid.RegionID, len(sets))
	for i, s := range sets {
		row := make([]chunkgrid.RegionID, 0, len(s))
		for nb := range s {
			row = append(row, nb)
		}
		sort.Slice(row, func(a, b int) bool { return row[a] < row[b] })
		adj[i] = row
	}
	return &Graph{adj: adj, directed: directed}
}

// Len returns the number of regions.
func (gr *Graph) Len() int { return len(gr.adj) }

// Directed reports whether edges are one-way.
func (gr *Graph) Directed() bool { return gr.directed }

// Neighbors returns the out-neighbors of id in ascending order.
func (gr *Graph) Neighbors(id chunkgrid.RegionID) []chunkgrid.RegionID {
	if !gr.has(id) {
		return nil
	}
	return append([]chunkgrid.RegionID(nil), gr.adj[id]...)
}

// Degree returns the out-degree of id, or 0 if id is unknown.
func (gr *Graph) Degree(id chunkgrid.RegionID) int {
	if !gr.has(id) {
		return 0
	}
	return len(gr.adj[id])
}

// HasEdge reports whether a→b exists.
func (gr *Graph) HasEdge(a, b chunkgrid.RegionID) bool {
	if !gr.has(a) {
		return false
	}
	row := gr.adj[a]
	i := sort.Search(len(row), func(i int) bool { return row[i] >= b })
	return i < len(row) && row[i] == b
}

// EdgeCount returns the number of edges; undirected edges count once.
func (gr *Graph) EdgeCount() int {
	n := 0
	for _, row := range gr.adj {
		n += len(row)
	}
	if !gr.directed {
		n /= 2
	}
	return n
}

// Edges lists every edge sorted by (From, To). Undirected edges are listed
// once with From < To.
func (gr *Graph) Edges() []Edge {
	var out []Edge
	for from, row := range gr.adj {
		for _, to := range row {
			if !gr.directed && to < chunkgrid.RegionID(from) {
				continue
			}
			out = append(out, Edge{From: chunkgrid.RegionID(from), To: to})
		}
	}
	return out
}

// Missing returns the edges of other that gr lacks.
func (gr *Graph) Missing(other *Graph) []Edge {
	var out []Edge
	for _, e := range other.Edges() {
		if !gr.HasEdge(e.From, e.To) {
			out = append(out, e)
		}
	}
	return out
}

func (gr *Graph) has(id chunkgrid.RegionID) bool {
	return id >= 0 && int(id) < len(gr.adj)
}

// Hops returns the breadth-first region-hop distance from start to every
// region following edge direction; unreachable regions get Unreachable.
// Returns ErrRegionNotFound for an unknown start.
func (gr *Graph) Hops(start chunkgrid.RegionID) ([]int, error) {
	if !gr.has(start) {
		return nil, fmt.Errorf("%w: %d", ErrRegionNotFound, start)
	}
	dist := make([]int, len(gr.adj))
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[start] = 0
	queue := []chunkgrid.RegionID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range gr.adj[cur] {
			if dist[nb] == Unreachable {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}
	return dist, nil
}

// Components groups regions connected by edges in either direction.
// Each component is sorted; components are ordered by their smallest id.
func (gr *Graph) Components() [][]chunkgrid.RegionID {
	undirected := gr.adj
	if gr.directed {
		undirected = gr.undirected()
	}
	seen := make([]bool, len(undirected))
	var comps [][]chunkgrid.RegionID
	for i := range undirected {
		if seen[i] {
			continue
		}
		seen[i] = true
		comp := []chunkgrid.RegionID{chunkgrid.RegionID(i)}
		for qi := 0; qi < len(comp); qi++ {
			for _, nb := range undirected[comp[qi]] {
				if !seen[nb] {
					seen[nb] = true
					comp = append(comp, nb)
				}
			}
		}
		sort.Slice(comp, func(a, b int) bool { return comp[a] < comp[b] })
		comps = append(comps, comp)
	}
	return comps
}

func (gr *Graph) undirected() [][]chunkgrid.RegionID {
	out := make([][]chunkgrid.RegionID, len(gr.adj))
	for from, row := range gr.adj {
		for _, to := range row {
			out[from] = append(out[from], to)
			out[to] = append(out[to], chunkgrid.RegionID(from))
		}
	}
	return out
}

// Symmetrize adds B→A to g's registry for every recorded A→B that lacks its
// reverse and returns the number of edges added.
func Symmetrize[T any](g *chunkgrid.Grid[T]) int {
	if g == nil {
		return 0
	}
	added := 0
	reg := g.Regions()
	for _, r := range reg.All() {
		for _, nb := range r.Neighbors() {
			other, ok := reg.Get(nb)
			if !ok || other.HasNeighbor(r.ID()) {
				continue
			}
			other.AddNeighbor(r.ID())
			added++
		}
	}
	return added
}
