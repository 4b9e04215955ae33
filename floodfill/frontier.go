package floodfill

import "github.com/katalvlaran/lvchunk/chunkgrid"

// compactAt is the consumed-prefix length after which the queue is shifted down.
const compactAt = 1 << 12

// Frontier is the FIFO of cell indices awaiting expansion during one pass.
// Registering a cell also writes its owner and hop into the grid.
type Frontier[T any] struct {
	grid  *chunkgrid.Grid[T]
	queue []int
	head  int
}

// NewFrontier returns an empty frontier over g.
func NewFrontier[T any](g *chunkgrid.Grid[T]) *Frontier[T] {
	return &Frontier[T]{grid: g, queue: make([]int, 0, g.Regions().Len())}
}

// SeedAll enqueues every region's seed cell in id order, marking it owned by
// that region at hop 0.
func (f *Frontier[T]) SeedAll() {
	for _, r := range f.grid.Regions().All() {
		f.Register(r.ID(), f.grid.IndexOf(r.Seed()), 0)
	}
}

// Register assigns idx to region id at the given hop and enqueues it.
func (f *Frontier[T]) Register(id chunkgrid.RegionID, idx, hop int) {
	f.grid.Set(idx, id, hop)
	f.queue = append(f.queue, idx)
}

// Poll removes and returns the oldest queued index.
func (f *Frontier[T]) Poll() (int, bool) {
	if f.head >= len(f.queue) {
		return 0, false
	}
	idx := f.queue[f.head]
	f.head++
	if f.head >= compactAt && f.head*2 >= len(f.queue) {
		n := copy(f.queue, f.queue[f.head:])
		f.queue = f.queue[:n]
		f.head = 0
	}
	return idx, true
}

// Empty reports whether no indices are queued.
func (f *Frontier[T]) Empty() bool { return f.head >= len(f.queue) }

// Len returns the number of queued indices.
func (f *Frontier[T]) Len() int { return len(f.queue) - f.head }
