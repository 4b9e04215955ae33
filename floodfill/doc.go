// Package floodfill grows every region of a chunkgrid.Grid outward from its
// seed at once, as a multi-source breadth-first wavefront.
//
// A Pass seeds a FIFO Frontier with every region's anchor at hop 0, then
// repeatedly polls a cell and offers each of its 4-connected neighbors to the
// cell's current owner:
//
//   - a seed cell of any region is never taken;
//   - an unowned cell is claimed unconditionally at hop+1;
//   - a cell already owned by the expanding region is skipped;
//   - otherwise the injected annex.Policy decides. A granted cell changes
//     owner and is re-enqueued; a refused cell optionally records the
//     adjacency expanding→owner on the expanding region.
//
// A cell may change hands several times within one pass as closer
// challengers arrive later in FIFO order. Hop values along any expansion path
// never decrease, so the pass terminates once the frontier drains.
//
// Phases:
//
//	PhaseInitial → PhaseRunning → PhaseDone
//
// Complexity: O(W×H×k) polls where k is the number of times a cell is
// re-annexed (small in practice); memory O(W×H) for the frontier.
//
// Errors:
//
//   - ErrNilGrid, ErrNilPolicy: missing inputs.
//   - ErrNoRegions: the grid has no regions to grow.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrPollBudget: WithMaxPolls was exceeded before the frontier drained.
//
// Growth is single-threaded; a Pass must finish before the grid is read.
package floodfill
