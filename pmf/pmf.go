// Package pmf draws items at random in proportion to non-negative weights.
//
// A Distribution is immutable once built and may be shared between
// goroutines; the *rand.Rand passed to Next may not.
package pmf

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors for distribution construction and sampling.
var (
	// ErrEmpty is returned when a distribution is built without items.
	ErrEmpty = errors.New("pmf: no items")
	// ErrLengthMismatch is returned when items and weights differ in length.
	ErrLengthMismatch = errors.New("pmf: items and weights differ in length")
	// ErrNegativeWeight is returned for a negative, NaN or infinite weight.
	ErrNegativeWeight = errors.New("pmf: weight must be finite and non-negative")
	// ErrExhausted is returned when a draw has no mass to land on, which
	// happens when every weight is zero.
	ErrExhausted = errors.New("pmf: draw fell through the distribution")
	// ErrNilRand is returned when Next is called without a source.
	ErrNilRand = errors.New("pmf: rand source is nil")
)

// Distribution is a weighted choice over a fixed list of items.
type Distribution[E any] struct {
	items   []E
	weights []float64
	mass    float64
	// last is the index of the last non-zero weight, or -1.
	last int
}

// New pairs items with weights. Both slices are copied.
func New[E any](items []E, weights []float64) (*Distribution[E], error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	if len(items) != len(weights) {
		return nil, fmt.Errorf("%w: %d items, %d weights", ErrLengthMismatch, len(items), len(weights))
	}
	var mass float64
	last := -1
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weights[%d]=%v", ErrNegativeWeight, i, w)
		}
		mass += w
		if w > 0 {
			last = i
		}
	}
	return &Distribution[E]{
		items:   append([]E(nil), items...),
		weights: append([]float64(nil), weights...),
		mass:    mass,
		last:    last,
	}, nil
}

// Uniform gives every item weight 1.
func Uniform[E any](items []E) (*Distribution[E], error) {
	w := make([]float64, len(items))
	for i := range w {
		w[i] = 1
	}
	return New(items, w)
}

// FromFunc weighs each item with fn.
func FromFunc[E any](items []E, fn func(E) float64) (*Distribution[E], error) {
	w := make([]float64, len(items))
	for i, it := range items {
		w[i] = fn(it)
	}
	return New(items, w)
}

// Len returns the number of items.
func (d *Distribution[E]) Len() int { return len(d.items) }

// Mass returns the sum of all weights.
func (d *Distribution[E]) Mass() float64 { return d.mass }

// Prob returns the probability of drawing items[i], or 0 when the mass is zero.
func (d *Distribution[E]) Prob(i int) float64 {
	if i < 0 || i >= len(d.weights) || d.mass == 0 {
		return 0
	}
	return d.weights[i] / d.mass
}

// Next draws one item. The draw is a single rng.Float64 scaled to the total
// mass and walked through the weights in order. Rounding residue left after
// the walk lands on the last item with non-zero weight.
func (d *Distribution[E]) Next(rng *rand.Rand) (E, error) {
	var zero E
	if rng == nil {
		return zero, ErrNilRand
	}
	chance := rng.Float64() * d.mass
	for i, w := range d.weights {
		if chance < w {
			return d.items[i], nil
		}
		chance -= w
	}
	if d.last < 0 {
		return zero, ErrExhausted
	}
	return d.items[d.last], nil
}

// MustNext is Next that panics on error.
func (d *Distribution[E]) MustNext(rng *rand.Rand) E {
	e, err := d.Next(rng)
	if err != nil {
		panic(err)
	}
	return e
}
