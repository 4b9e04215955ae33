package floodfill

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvchunk/chunkgrid"
)

// Sentinel errors for growth passes.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("floodfill: grid is nil")
	// ErrNilPolicy is returned when a nil annexation policy is passed.
	ErrNilPolicy = errors.New("floodfill: policy is nil")
	// ErrNoRegions is returned when the grid has no regions to grow.
	ErrNoRegions = errors.New("floodfill: grid has no regions")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("floodfill: invalid option supplied")
	// ErrPollBudget is returned when a pass exceeds its MaxPolls budget.
	ErrPollBudget = errors.New("floodfill: poll budget exhausted")
)

// Phase is the lifecycle state of a Pass.
type Phase int

const (
	// PhaseInitial: frontier seeded, nothing polled yet.
	PhaseInitial Phase = iota
	// PhaseRunning: at least one cell polled, frontier not yet empty.
	PhaseRunning
	// PhaseDone: frontier drained.
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Option configures a Pass via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by NewPass.
type Option func(*Options)

// Options holds the tunables of a growth pass.
type Options struct {
	// Adjacency records expanding→owner edges whenever the policy refuses.
	Adjacency bool

	// MaxPolls, if > 0, stops the pass after that many polls.
	MaxPolls int

	// OnAnnex is called after a region claims a cell, contested or not.
	OnAnnex func(id chunkgrid.RegionID, idx, hop int)

	// OnRefuse is called when the policy refuses challenger access to a
	// cell owned by owner.
	OnRefuse func(challenger, owner chunkgrid.RegionID, idx int)

	err error
}

// DefaultOptions returns Options with adjacency off, no poll budget and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Adjacency: false,
		MaxPolls:  0,
		OnAnnex:   func(chunkgrid.RegionID, int, int) {},
		OnRefuse:  func(chunkgrid.RegionID, chunkgrid.RegionID, int) {},
	}
}

// WithAdjacency enables or disables adjacency recording.
func WithAdjacency(on bool) Option {
	return func(o *Options) { o.Adjacency = on }
}

// WithMaxPolls bounds the number of polls.
//
//	n > 0:  limit to n polls
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPolls(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPolls cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPolls = n
	}
}

// WithOnAnnex registers a callback run after every claim.
func WithOnAnnex(fn func(id chunkgrid.RegionID, idx, hop int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAnnex = fn
		}
	}
}

// WithOnRefuse registers a callback run after every refused contest.
func WithOnRefuse(fn func(challenger, owner chunkgrid.RegionID, idx int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRefuse = fn
		}
	}
}

// Stats summarises a pass.
type Stats struct {
	Polled    int // cells dequeued
	Claimed   int // unowned cells taken
	Contested int // policy consultations
	Reannexed int // contests the challenger won
	Refused   int // contests the challenger lost
	Edges     int // new adjacency edges recorded
}
