package voronoi

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lvchunk/chunkgrid"
	"github.com/katalvlaran/lvchunk/floodfill"
	"github.com/katalvlaran/lvchunk/relax"
)

// Sentinel errors for chunking runs.
var (
	// ErrBadRegionCount indicates a region count ≤ 0 or above the cell count.
	ErrBadRegionCount = errors.New("voronoi: region count must be in [1, cells]")
	// ErrNilFactory indicates a nil payload factory.
	ErrNilFactory = errors.New("voronoi: factory is nil")
	// ErrNilPolicy indicates a nil final-pass policy.
	ErrNilPolicy = errors.New("voronoi: policy is nil")
	// ErrBadSeeds indicates explicit seeds that are out of bounds, duplicated
	// or not equal in number to the region count.
	ErrBadSeeds = errors.New("voronoi: invalid explicit seeds")
	// ErrAlreadyChunked indicates CreateChunks was called twice.
	ErrAlreadyChunked = errors.New("voronoi: chunks already created")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("voronoi: invalid option supplied")
)

// Factory builds a region's payload from its initial seed coordinate.
type Factory[T any] func(seed chunkgrid.Coord) T

// Option configures a Chunker.
type Option func(*Options)

// Options holds the tunables of a Chunker.
type Options struct {
	// RelaxRounds is the number of Lloyd relaxation rounds before the final pass.
	RelaxRounds int

	// Rand is the source for seed placement.
	Rand *rand.Rand

	// Seeds, if non-nil, replaces random placement.
	Seeds []chunkgrid.Coord

	// Symmetric adds reverse adjacency edges after the final pass.
	Symmetric bool

	// Logger receives progress records.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with no relaxation, a fixed-seed RNG,
// random placement, directed adjacency and slog.Default().
func DefaultOptions() Options {
	return Options{
		RelaxRounds: 0,
		Rand:        rngFromSeed(0),
		Logger:      slog.Default(),
	}
}

// WithRelaxRounds sets the number of relaxation rounds. Negative is invalid.
func WithRelaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: RelaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.RelaxRounds = n
	}
}

// WithRand injects the random source for seed placement. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed builds the random source from seed; 0 selects the fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rngFromSeed(seed) }
}

// WithSeeds places regions at exactly these coordinates, in order.
func WithSeeds(seeds []chunkgrid.Coord) Option {
	return func(o *Options) {
		o.Seeds = append([]chunkgrid.Coord(nil), seeds...)
	}
}

// WithSymmetricAdjacency makes the final adjacency relation undirected.
func WithSymmetricAdjacency(on bool) Option {
	return func(o *Options) { o.Symmetric = on }
}

// WithLogger sets the progress logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result summarises a completed run.
type Result struct {
	// Seeds are the initial seed coordinates in region id order.
	Seeds []chunkgrid.Coord
	// Rounds holds one report per relaxation round.
	Rounds []relax.Report
	// Final is the growth summary of the final pass.
	Final floodfill.Stats
	// Regions is the number of regions created.
	Regions int
}
