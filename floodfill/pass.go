package floodfill

import (
	"fmt"

	"github.com/katalvlaran/lvchunk/annex"
	"github.com/katalvlaran/lvchunk/chunkgrid"
)

// Pass is one multi-source growth over a grid. Create it with NewPass, then
// drive it with Step or Run.
type Pass[T any] struct {
	grid     *chunkgrid.Grid[T]
	policy   annex.Policy[T]
	opts     Options
	frontier *Frontier[T]
	phase    Phase
	stats    Stats
	nbuf     []int
}

// NewPass validates its inputs, seeds a fresh frontier from every region and
// returns the pass in PhaseInitial. Seeding writes each seed cell into g.
func NewPass[T any](g *chunkgrid.Grid[T], policy annex.Policy[T], opts ...Option) (*Pass[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.Regions().Len() == 0 {
		return nil, ErrNoRegions
	}

	p := &Pass[T]{
		grid:     g,
		policy:   policy,
		opts:     o,
		frontier: NewFrontier(g),
		phase:    PhaseInitial,
		nbuf:     make([]int, 0, 4),
	}
	p.frontier.SeedAll()

	return p, nil
}

// Phase returns the current lifecycle state.
func (p *Pass[T]) Phase() Phase { return p.phase }

// Stats returns the counters accumulated so far.
func (p *Pass[T]) Stats() Stats { return p.stats }

// Pending returns the number of queued cells.
func (p *Pass[T]) Pending() int { return p.frontier.Len() }

// Step polls one cell and offers its neighbors to the cell's owner.
// It returns false, and moves to PhaseDone, once the frontier is empty.
func (p *Pass[T]) Step() bool {
	idx, ok := p.frontier.Poll()
	if !ok {
		p.phase = PhaseDone
		return false
	}
	p.phase = PhaseRunning
	p.stats.Polled++
	p.expand(idx)
	if p.frontier.Empty() {
		p.phase = PhaseDone
	}
	return true
}

// Run steps until the frontier drains and returns the final stats.
// With WithMaxPolls it stops early and reports ErrPollBudget.
func (p *Pass[T]) Run() (Stats, error) {
	for p.Step() {
		if p.opts.MaxPolls > 0 && p.stats.Polled >= p.opts.MaxPolls && !p.frontier.Empty() {
			return p.stats, fmt.Errorf("%w: %d polls, %d pending", ErrPollBudget, p.stats.Polled, p.frontier.Len())
		}
	}
	return p.stats, nil
}

// expand offers every cardinal neighbor of idx to idx's current owner.
func (p *Pass[T]) expand(idx int) {
	g := p.grid
	owner := g.MustRegionAt(idx)
	hop := g.Hop(idx) + 1

	for _, nb := range g.CardinalNeighbors(idx, p.nbuf[:0]) {
		if p.shouldAnnex(owner, nb) {
			p.frontier.Register(owner.ID(), nb, hop)
			p.opts.OnAnnex(owner.ID(), nb, hop)
		}
	}
}

// shouldAnnex applies the neighbor rules in order: seeds are immovable,
// unowned cells are free, own cells are skipped, the policy decides the rest.
func (p *Pass[T]) shouldAnnex(challenger *chunkgrid.Region[T], target int) bool {
	g := p.grid
	if g.IsSeed(target) {
		return false
	}
	if !g.HasRegion(target) {
		p.stats.Claimed++
		return true
	}
	holder := g.MustRegionAt(target)
	if challenger.SeedMatches(holder) {
		return false
	}

	p.stats.Contested++
	if p.policy(g, challenger, target) {
		p.stats.Reannexed++
		return true
	}
	p.stats.Refused++
	p.opts.OnRefuse(challenger.ID(), holder.ID(), target)
	if p.opts.Adjacency && !challenger.HasNeighbor(holder.ID()) {
		challenger.AddNeighbor(holder.ID())
		p.stats.Edges++
	}
	return false
}

// Grow runs a complete pass over g with policy and returns its stats.
func Grow[T any](g *chunkgrid.Grid[T], policy annex.Policy[T], opts ...Option) (Stats, error) {
	p, err := NewPass(g, policy, opts...)
	if err != nil {
		return Stats{}, err
	}
	return p.Run()
}
