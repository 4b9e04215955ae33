// Package annex provides the tie-break policies consulted when a growing
// region reaches a cell that another region already owns.
//
// A Policy is only asked about contested cells: the target is owned by a
// different region and is not that region's seed. Unowned cells are always
// claimed and seed cells are never taken, so policies need not handle either.
//
// Reference policies:
//
//   - Manhattan: challenger wins if its L1 distance beats the hop count
//     recorded at the target.
//   - Euclidean: challenger wins if its seed is strictly closer to the target
//     than the owner's seed (squared L2). Used for relaxation rounds.
//   - Chebyshev: as Euclidean with L∞.
//   - Random: weighted coin on the two squared distances, then a boost when
//     the challenger already surrounds the target on 3 or 4 sides. Produces
//     organic borders; needs an injected *rand.Rand.
//
// The deterministic policies are plain generic functions and can be passed
// directly, e.g. annex.Euclidean[MyPayload].
package annex
