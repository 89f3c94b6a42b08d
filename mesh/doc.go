// Package mesh builds the vertex mesh of a maze and carves a random
// spanning tree into it.
//
// What:
//
//   - Space: the pure mapping between mesh cells (i, j) and grid positions
//     (S·(i+1), S·(j+1)). N×N cells (exclusive convention).
//   - CreateVertexMesh: one isolated vertex per mesh cell.
//   - ConnectRandom: randomized depth-first "recursive backtracker"; the
//     unvisited-neighbour set is recomputed at every step and one candidate
//     is drawn uniformly with the configured *rand.Rand.
//
// Determinism:
//
//   - Same Space, start cell and seed ⇒ identical edge set and adjacency order.
//
// Options:
//
//   - WithSeed(seed) / WithRand(r): the random source; one is required.
//
// Errors:
//
//   - ErrInvalidSize, ErrInvalidSpacing: Space validation.
//   - ErrStartNotFound: start cell outside the mesh or without a vertex.
//   - ErrNeedRand: no random source configured.
package mesh
