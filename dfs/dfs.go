// Package dfs implements the iterative, stack-based depth-first search used
// by the maze pipeline to find the route between two vertices.
//
// Key features:
//   - Search(g, from, to, opts...): stops as soon as `to` is reached
//   - Tie-break: first unvisited neighbour in adjacency (insertion) order
//   - Explicit backtracking over a history stack; no recursion
//   - Hooks: OnVisit (arrival) & OnBacktrack (dead end) with error aborts
//
// Complexity:
//
//   - Time:   O(V + E·d) where d is the maximum degree (neighbour rescans on backtrack).
//   - Memory: O(V) for the history stack.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrVertexNotFound    if from or to is missing.
//   - ErrNoPath            if to is unreachable from from.
//   - any error returned by a hook, wrapped with the vertex.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/core"
)

// Search performs a depth-first search from `from` to `to` and returns the
// edges of the discovered path.
//
// Behavior:
//  1. Reset every traversal flag in g (no state leaks between searches).
//  2. Push `from`; mark it visited.
//  3. While current != to: advance to the first unvisited neighbour, or pop
//     the stack and resume at the new top. An empty stack means ErrNoPath.
//  4. Rebuild the path by walking the stack top→bottom and looking up the
//     edge between consecutive entries.
//
// The result is ordered from the `to` side back toward `from`; each edge is
// returned in its stored direction. Use Reverse for a from→to order.
// from == to yields an empty, non-nil path.
func Search(g *core.Graph, from, to core.Vertex, opts ...Option) ([]core.Edge, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("dfs: from %v: %w", from, ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("dfs: to %v: %w", to, ErrVertexNotFound)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Traverse
	g.SetAllVisited(false)

	stack := []core.Vertex{from}
	current := from
	if err := arrive(g, &o, current); err != nil {
		return nil, err
	}

	for current != to {
		next, ok := g.FirstUnvisitedNeighbour(current)
		if ok {
			stack = append(stack, next)
			current = next
			if err := arrive(g, &o, current); err != nil {
				return nil, err
			}
			continue
		}

		// Dead end: backtrack.
		if o.OnBacktrack != nil {
			if err := o.OnBacktrack(current); err != nil {
				return nil, fmt.Errorf("dfs: OnBacktrack hook for %v: %w", current, err)
			}
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return nil, ErrNoPath
		}
		current = stack[len(stack)-1]
	}

	// 4. Reconstruct: stack top→bottom.
	path := make([]core.Edge, 0, len(stack)-1)
	for i := len(stack) - 1; i > 0; i-- {
		e, ok := g.FindEdge(stack[i], stack[i-1])
		if !ok {
			// Consecutive stack entries are adjacent by construction.
			return nil, fmt.Errorf("dfs: missing edge %v-%v: %w", stack[i], stack[i-1], ErrNoPath)
		}
		path = append(path, e)
	}

	return path, nil
}

// arrive marks v visited and runs the arrival hook.
func arrive(g *core.Graph, o *Options, v core.Vertex) error {
	g.SetVisited(v, true)
	if o.OnVisit != nil {
		if err := o.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}
	return nil
}
