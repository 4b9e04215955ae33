// Package regiongraph turns the region adjacency of a finished
// chunkgrid.Grid into a small graph that consumers can query.
//
// What:
//
//   - FromGrid reads the adjacency recorded during growth, either as the raw
//     directed relation or symmetrised.
//   - FromBorders derives the exact undirected adjacency by scanning every
//     pair of 4-connected cells with different owners.
//   - Hops runs breadth-first search over regions; Components groups regions
//     that are connected ignoring edge direction.
//   - Symmetrize writes missing reverse edges back into the grid's registry.
//
// Recorded adjacency comes from refused annexations and only approximates the
// final borders: a refusal can happen along a border that later moves, and a
// border next to a seed cell is never contested. Use FromBorders when exact
// adjacency matters.
//
// Complexity:
//
//   - FromGrid:    O(R + E log E).
//   - FromBorders: O(W×H + E log E).
//   - Hops, Components: O(R + E).
package regiongraph
