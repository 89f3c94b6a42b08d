// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices sorted row-major (Y asc, then X asc).
//
// Policy:
//   - AddVertex is idempotent.
//   - DeleteVertex on an absent vertex is a no-op.
//   - Deleting a vertex removes its incident edges; a neighbour left with no
//     edge is removed with it (cascading cleanup).

package core

// VertexAt returns the vertex stored at (x, y).
// The second result is false when no such vertex exists.
// Complexity: O(1) expected.
func (g *Graph) VertexAt(x, y int) (Vertex, bool) {
	v := Vertex{X: x, Y: y}
	if _, ok := g.vertices[v]; !ok {
		return Vertex{}, false
	}
	return v, true
}

// HasVertex reports whether v is present.
// Complexity: O(1) expected.
func (g *Graph) HasVertex(v Vertex) bool {
	_, ok := g.vertices[v]
	return ok
}

// AddVertex inserts the vertex (x, y) if missing.
// Complexity: O(log V) for the ordered index.
func (g *Graph) AddVertex(x, y int) {
	g.ensureVertex(Vertex{X: x, Y: y})
}

// ensureVertex registers v when absent and returns its state.
func (g *Graph) ensureVertex(v Vertex) *vertexState {
	if st, ok := g.vertices[v]; ok {
		return st
	}
	st := &vertexState{}
	g.vertices[v] = st
	g.vertexOrder.Set(v)

	return st
}

// DeleteVertex removes v together with every edge incident to it.
//
// Each neighbour drops v from its adjacency list; a neighbour whose list
// becomes empty is no longer referenced by any edge and is removed too.
// Absent vertices are ignored.
//
// Complexity: O(d·d') where d is deg(v) and d' the neighbours' degree.
func (g *Graph) DeleteVertex(v Vertex) {
	st, ok := g.vertices[v]
	if !ok {
		return
	}

	// Snapshot: removeNeighbour mutates the neighbours' lists, not ours,
	// but we drop ours wholesale below.
	neighbours := append([]Vertex(nil), st.neighbours...)
	for _, n := range neighbours {
		key := Edge{From: v, To: n}.Key()
		delete(g.edges, key)
		g.edgeOrder.Delete(key)
		g.removeNeighbour(n, v)
	}

	g.dropVertex(v)

	for _, n := range neighbours {
		if !g.IsReferenced(n) {
			g.dropVertex(n)
		}
	}
}

// dropVertex removes v from the catalogs without touching edges.
func (g *Graph) dropVertex(v Vertex) {
	delete(g.vertices, v)
	g.vertexOrder.Delete(v)
}

// IsReferenced reports whether v is an endpoint of at least one edge.
func (g *Graph) IsReferenced(v Vertex) bool {
	st, ok := g.vertices[v]
	return ok && len(st.neighbours) > 0
}

// Vertices returns all vertices sorted row-major.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, 0, g.vertexOrder.Len())
	g.vertexOrder.Scan(func(v Vertex) bool {
		out = append(out, v)
		return true
	})

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}
