// SPDX-License-Identifier: MIT
// Package: lvlgen/mesh
//
// carve.go: ConnectRandom, the randomized recursive-backtracker.
//
// Canonical model:
//   • History stack starting at the start cell; current vertex marked visited.
//   • At each step the unvisited mesh neighbours of the current vertex are
//     recomputed from scratch in the fixed order N, E, S, W and one is drawn
//     with rng.Intn(len(candidates)).
//   • Found: connect, push, advance. None: pop and resume at the new top.
//
// Result:
//   • A spanning tree over every vertex reachable through mesh positions:
//     |E| = |V| - 1 on a freshly built mesh, no cycles.
//
// Determinism:
//   • Fully determined by the mesh, the start cell and the rng state.

package mesh

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/core"
)

const methodConnectRandom = "ConnectRandom"

// neighbourOffsets lists mesh-neighbour offsets in candidate order: N, E, S, W.
var neighbourOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// ConnectRandom carves a spanning tree into g, starting at cell start.
//
// Errors:
//   - ErrInvalidSize / ErrInvalidSpacing: invalid space.
//   - ErrNeedRand: no WithSeed/WithRand option.
//   - ErrStartNotFound: start is outside the mesh or has no vertex; g is
//     left untouched.
//
// Complexity: O(N²) steps, each O(1) amortized.
func ConnectRandom(g *core.Graph, space Space, start Cell, opts ...Option) error {
	// 1) Validate before any mutation.
	if err := space.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodConnectRandom, err)
	}
	cfg := newCarveConfig(opts...)
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", methodConnectRandom, ErrNeedRand)
	}
	current, ok := space.VertexAt(g, start)
	if !ok {
		return fmt.Errorf("%s: start %v: %w", methodConnectRandom, start, ErrStartNotFound)
	}

	// 2) Fresh traversal state.
	g.SetAllVisited(false)
	history := []core.Vertex{current}
	g.SetVisited(current, true)

	// 3) Grow the tree.
	for len(history) > 0 {
		candidates := unvisitedNeighbours(g, space, current)
		if len(candidates) > 0 {
			next := candidates[cfg.rng.Intn(len(candidates))]
			g.Connect(current, next)
			history = append(history, next)
			current = next
			g.SetVisited(current, true)
			continue
		}

		history = history[:len(history)-1]
		if len(history) > 0 {
			current = history[len(history)-1]
		}
	}

	return nil
}

// unvisitedNeighbours returns the unvisited vertices one spacing unit away
// from v, in neighbourOffsets order, restricted to cells inside the mesh.
func unvisitedNeighbours(g *core.Graph, space Space, v core.Vertex) []core.Vertex {
	c, ok := space.CellOf(v)
	if !ok {
		return nil
	}
	out := make([]core.Vertex, 0, len(neighbourOffsets))
	for _, d := range neighbourOffsets {
		n, ok := space.VertexAt(g, Cell{I: c.I + d[0], J: c.J + d[1]})
		if !ok || g.Visited(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}
