// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/DeleteEdge/HasEdge/FindEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges sorted by canonical key (EdgeKey.A, then EdgeKey.B).
//   - Adjacency lists grow in AddEdge call order; DFS tie-breaks depend on it.
//
// Policy:
//   - Self-loops and duplicate unordered pairs are silently ignored.
//   - Deleting an absent edge is a no-op.
//   - DeleteEdge removes endpoints that end up unreferenced.

package core

// AddEdge inserts e unless it is a self-loop or its unordered pair already exists.
//
// Steps:
//  1. Reject loops and duplicates (no-op).
//  2. Register missing endpoints.
//  3. Store the edge under its canonical key, keeping e's direction.
//  4. Append each endpoint to the other's adjacency list.
//
// Complexity: O(log E) for the ordered index.
func (g *Graph) AddEdge(e Edge) {
	if e.IsLoop() {
		return
	}
	key := e.Key()
	if _, exists := g.edges[key]; exists {
		return
	}

	from := g.ensureVertex(e.From)
	to := g.ensureVertex(e.To)

	g.edges[key] = e
	g.edgeOrder.Set(key)

	from.neighbours = append(from.neighbours, e.To)
	to.neighbours = append(to.neighbours, e.From)
}

// Connect is shorthand for AddEdge(NewEdge(a, b)).
func (g *Graph) Connect(a, b Vertex) {
	g.AddEdge(NewEdge(a, b))
}

// DeleteEdge removes the unordered pair of e, if present, and then deletes
// every endpoint that is no longer referenced by any edge.
//
// Complexity: O(d) for adjacency removal plus O(log E) for the index.
func (g *Graph) DeleteEdge(e Edge) {
	key := e.Key()
	if _, ok := g.edges[key]; !ok {
		return
	}
	delete(g.edges, key)
	g.edgeOrder.Delete(key)

	g.removeNeighbour(e.From, e.To)
	g.removeNeighbour(e.To, e.From)

	for _, v := range [2]Vertex{e.From, e.To} {
		if !g.IsReferenced(v) {
			g.dropVertex(v)
		}
	}
}

// removeNeighbour drops the first occurrence of n from v's adjacency list,
// preserving the order of the remaining entries.
func (g *Graph) removeNeighbour(v, n Vertex) {
	st, ok := g.vertices[v]
	if !ok {
		return
	}
	for i, cur := range st.neighbours {
		if cur == n {
			st.neighbours = append(st.neighbours[:i], st.neighbours[i+1:]...)
			return
		}
	}
}

// HasEdge reports whether the unordered pair of e is present.
// Complexity: O(1) expected.
func (g *Graph) HasEdge(e Edge) bool {
	_, ok := g.edges[e.Key()]
	return ok
}

// FindEdge returns the stored edge connecting a and b, in its stored direction.
// The second result is false when a and b are not adjacent.
// Complexity: O(1) expected.
func (g *Graph) FindEdge(a, b Vertex) (Edge, bool) {
	e, ok := g.edges[Edge{From: a, To: b}.Key()]
	return e, ok
}

// Edges returns all edges, in their stored direction, sorted by canonical key.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeOrder.Len())
	g.edgeOrder.Scan(func(k EdgeKey) bool {
		out = append(out, g.edges[k])
		return true
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
