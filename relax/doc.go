// Package relax moves every region's seed to the centroid of the cells it
// currently owns: one round of Lloyd relaxation over a chunkgrid.Grid.
//
// Recentre expects a complete partition (every cell owned), typically the
// output of a Euclidean floodfill pass. It sums the coordinates of each
// region's cells in row-major order, clears the grid, and moves each seed to
// the truncated integer mean. Coordinates are derived from the index being
// visited, so the sums do not depend on traversal order.
//
// Seeds stay distinct: when two means land on the same cell the later region
// keeps its previous seed if that is free, otherwise it takes the first free
// cell in row-major order from its mean.
//
// The Report returned by Recentre records every move and the mean and
// maximum shift, which callers use to watch convergence across rounds.
package relax
