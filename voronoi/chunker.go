package voronoi

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvchunk/annex"
	"github.com/katalvlaran/lvchunk/chunkgrid"
	"github.com/katalvlaran/lvchunk/floodfill"
	"github.com/katalvlaran/lvchunk/regiongraph"
	"github.com/katalvlaran/lvchunk/relax"
)

// Chunker partitions one grid into a fixed number of regions.
// It is single-use: CreateChunks runs once, after which Grid is read-only.
type Chunker[T any] struct {
	grid    *chunkgrid.Grid[T]
	count   int
	factory Factory[T]
	policy  annex.Policy[T]
	opts    Options
	done    bool
}

// New validates the configuration and allocates the grid.
// Returns chunkgrid.ErrEmptyGrid / ErrGridTooLarge for bad dimensions,
// ErrBadRegionCount, ErrNilFactory, ErrNilPolicy, ErrBadSeeds or
// ErrOptionViolation.
func New[T any](width, height, count int, factory Factory[T], policy annex.Policy[T], opts ...Option) (*Chunker[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if factory == nil {
		return nil, ErrNilFactory
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}

	g, err := chunkgrid.New[T](width, height)
	if err != nil {
		return nil, err
	}
	size := g.Size()
	if count <= 0 || count > size.Cells() {
		return nil, fmt.Errorf("%w: %d for %dx%d", ErrBadRegionCount, count, width, height)
	}
	if o.Seeds != nil {
		if err := validateSeeds(o.Seeds, size, count); err != nil {
			return nil, err
		}
	}

	return &Chunker[T]{
		grid:    g,
		count:   count,
		factory: factory,
		policy:  policy,
		opts:    o,
	}, nil
}

// Grid returns the partitioned grid. Callers must treat it as read-only.
func (c *Chunker[T]) Grid() *chunkgrid.Grid[T] { return c.grid }

// CreateChunks seeds the regions, relaxes them and runs the final pass.
// A call that fails before any region is placed may be retried; once
// placement succeeds the Chunker is spent and further calls return
// ErrAlreadyChunked.
func (c *Chunker[T]) CreateChunks() (*Result, error) {
	if c.done {
		return nil, ErrAlreadyChunked
	}
	start := time.Now()
	log := c.opts.Logger

	seeds, err := c.place()
	if err != nil {
		return nil, err
	}
	c.done = true
	res := &Result{Seeds: seeds, Regions: len(seeds)}
	log.Debug("seeds placed", "regions", len(seeds), "width", c.grid.Size().Width, "height", c.grid.Size().Height)

	for k := 0; k < c.opts.RelaxRounds; k++ {
		if _, err := floodfill.Grow(c.grid, annex.Euclidean[T]); err != nil {
			return nil, fmt.Errorf("voronoi: relaxation round %d: %w", k+1, err)
		}
		rep, err := relax.Recentre(c.grid)
		if err != nil {
			return nil, fmt.Errorf("voronoi: relaxation round %d: %w", k+1, err)
		}
		res.Rounds = append(res.Rounds, rep)
		log.Debug("relaxation round",
			"round", k+1,
			"mean_shift", rep.MeanShift,
			"max_shift", rep.MaxShift,
			"collisions", rep.Collisions,
		)
	}

	st, err := floodfill.Grow(c.grid, c.policy, floodfill.WithAdjacency(true))
	if err != nil {
		return nil, fmt.Errorf("voronoi: final pass: %w", err)
	}
	res.Final = st
	if c.opts.Symmetric {
		st.Edges += regiongraph.Symmetrize(c.grid)
		res.Final = st
	}

	log.Info("chunks created",
		"regions", res.Regions,
		"cells", c.grid.Len(),
		"relax_rounds", len(res.Rounds),
		"edges", res.Final.Edges,
		"reannexed", res.Final.Reannexed,
		"elapsed", time.Since(start),
	)
	return res, nil
}

// place creates one region per seed, explicit or random, via the factory.
// Seeds are fully chosen before the first region is created.
func (c *Chunker[T]) place() ([]chunkgrid.Coord, error) {
	seeds := c.opts.Seeds
	if seeds == nil {
		var err error
		seeds, err = RandomDistinctCoords(c.opts.Rand, c.grid.Size(), c.count)
		if err != nil {
			return nil, err
		}
	}
	for _, s := range seeds {
		if _, err := c.grid.CreateRegion(s, c.factory(s)); err != nil {
			return nil, err
		}
	}
	return seeds, nil
}
