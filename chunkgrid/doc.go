// Package chunkgrid stores the ownership state of a rectangular cell grid
// that is being partitioned into regions ("chunks").
//
// What:
//
//   - Grid keeps two flat per-cell arrays: the owning RegionID and the hop
//     distance from that region's seed. Both use Unset as the empty sentinel.
//   - Registry is a dense arena of Region values indexed by RegionID. Ids are
//     handed out sequentially and never reused within one Grid.
//   - Region owns a mutable seed coordinate, a caller-supplied payload and a
//     set of neighbor ids. Neighbors are ids into the arena, never pointers.
//
// Why:
//
//   - Grids routinely exceed a million cells; two []int32 slices are far
//     denser than a per-cell struct or object graph.
//   - Growth, policies and relaxation all need O(1) answers to "who owns this
//     cell" and "is this cell the owner's anchor".
//
// Complexity:
//
//   - New:               O(W×H) time and memory.
//   - Index/Coord/IsSeed: O(1).
//   - CardinalNeighbors: O(1), no allocation when buf has capacity 4.
//   - Clear:             O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      width or height is not positive.
//   - ErrGridTooLarge:   W×H does not fit the int32 index space.
//   - ErrOutOfBounds:    a coordinate lies outside the grid.
//   - ErrSeedTaken:      another region already anchors the coordinate.
//   - ErrRegionNotFound: an id has no region in the registry.
//   - ErrCellUnassigned: region data requested for an unowned cell. The
//     Must* accessors panic with this error; it marks a caller logic bug.
//
// A Grid is not safe for concurrent mutation. Once a partition is finished it
// may be read from any number of goroutines.
package chunkgrid
