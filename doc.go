// Package lvchunk partitions rectangular grids into contiguous, roughly
// Voronoi-shaped regions ("chunks") that carry a caller-defined payload.
//
// 🚀 What is lvchunk?
//
//	A small, deterministic, pure-Go toolkit that brings together:
//		• Grid state: flat per-cell owner and hop arrays plus a region arena
//		• Annexation policies: Manhattan, Euclidean, Chebyshev, Random
//		• Flood fill: multi-source BFS growth with re-annexation
//		• Relaxation: Lloyd-style seed recentring between passes
//		• Region graphs: recorded or exact border adjacency, hops, components
//		• Weighted selection: PMF draws for payload generation
//
// Under the hood, everything is organized under these subpackages:
//
//	chunkgrid/   Grid, Region, Registry, Coord and sentinel errors
//	annex/       pluggable Policy[T] deciding contested cells
//	floodfill/   Frontier and Pass: one growth pass over a Grid
//	relax/       centroid computation and seed recentring
//	voronoi/     Chunker orchestrating placement, relaxation and the final pass
//	regiongraph/ adjacency views over a finished partition
//	pmf/         weighted random choice
//	cmd/chunkmap CLI that builds a terrain map and prints a summary
//
// Quick ASCII example (4×4, seeds at the corners, Manhattan policy):
//
//	0 0 0 0
//	0 0 0 1
//	0 0 1 1
//	0 1 1 1
//
// Everything is single-threaded; a Grid must not be mutated concurrently.
//
//	go get github.com/katalvlaran/lvchunk
package lvchunk
