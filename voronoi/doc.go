// Package voronoi orchestrates a full chunking run: random seeding, Lloyd
// relaxation rounds and a final growth pass with the caller's policy.
//
// What:
//
//   - Chunker owns a chunkgrid.Grid sized at construction.
//   - CreateChunks places the requested number of distinct seeds (rejection
//     sampling, or caller-supplied via WithSeeds), creates one region per seed
//     through the caller's Factory, then runs WithRelaxRounds rounds of
//     Euclidean growth + relax.Recentre, and finally one growth pass with the
//     caller's annex.Policy and adjacency tracking on.
//   - Grid exposes the finished partition for read-only consumers such as
//     renderers.
//
// Randomness:
//
//	All draws come from one *rand.Rand threaded through construction:
//	WithRand injects one, WithSeed builds one, and the default is a fixed
//	seed so runs are reproducible unless the caller asks otherwise. The
//	Random policy takes its own *rand.Rand; pass the same one to share a
//	stream.
//
// Logging:
//
//	Progress is logged through log/slog: Debug per relaxation round, Info when
//	the run completes. Use WithLogger to redirect; the default is
//	slog.Default().
//
// Adjacency:
//
//	Growth records region A→B when A is refused a cell owned by B. The raw
//	relation is directed. WithSymmetricAdjacency(true) adds every reverse edge
//	after the final pass.
package voronoi
