// Package dfs provides helpers for working with search results.
package dfs

import (
	"github.com/katalvlaran/lvlgen/core"
)

// Reverse returns a new slice containing the edges of path in reverse order.
// Search results are ordered to→from; Reverse gives from→to.
// Time Complexity: O(n).
func Reverse(path []core.Edge) []core.Edge {
	out := make([]core.Edge, len(path)) // allocate new slice of same length
	for i := range path {
		out[i] = path[len(path)-1-i] // assign from opposite end
	}

	return out
}

// Walk returns the vertices visited when following a from→to ordered path
// starting at from: from, then the far endpoint of each edge in turn.
// The second result is false if the edges do not form a chain from `from`.
// Time Complexity: O(n).
func Walk(from core.Vertex, path []core.Edge) ([]core.Vertex, bool) {
	out := make([]core.Vertex, 0, len(path)+1)
	out = append(out, from)
	cur := from
	for _, e := range path {
		next, ok := e.Other(cur)
		if !ok {
			return nil, false
		}
		out = append(out, next)
		cur = next
	}

	return out, true
}
