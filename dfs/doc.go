// Package dfs implements the depth-first search of the maze pipeline on a
// core.Graph.
//
// What:
//
//   - Search: iterative, stack-based DFS with explicit backtracking that
//     stops as soon as the target is reached. It is not a "visit all"
//     traversal.
//   - Deterministic tie-break: the first unvisited neighbour in the
//     graph's adjacency (insertion) order. Randomness lives upstream, in
//     the order the mesh builder adds edges.
//   - Every call resets all visited flags first.
//
// Why:
//
//   - Route extraction between the start and finish cells of a carved maze.
//   - In a spanning tree the DFS route is the unique simple path.
//
// Result order:
//
//	Search returns edges from the target side back toward the source
//	(the history stack read top→bottom). Reverse yields from→to order and
//	Walk turns it into a vertex sequence.
//
// Complexity:
//
//   - Search:  Time O(V+E·d), Memory O(V)
//   - Reverse: Time O(n)
//   - Walk:    Time O(n)
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrVertexNotFound    from/to not in graph
//   - ErrNoPath            target unreachable
//   - hook errors          propagated from OnVisit or OnBacktrack
package dfs
