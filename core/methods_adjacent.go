// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighbourhood queries and traversal flags.
//
// Determinism:
//   - Neighbours() returns adjacency in insertion order (AddEdge call order).
//
// Traversal flags:
//   - Every vertex carries one visited flag owned by the Graph.
//   - Searches reset all flags with SetAllVisited(false) before starting;
//     flags never carry meaning across searches.

package core

// Neighbours returns a copy of v's adjacency list in insertion order.
// Absent vertices and vertices without edges yield an empty slice.
func (g *Graph) Neighbours(v Vertex) []Vertex {
	st, ok := g.vertices[v]
	if !ok || len(st.neighbours) == 0 {
		return []Vertex{}
	}
	return append([]Vertex(nil), st.neighbours...)
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v Vertex) int {
	st, ok := g.vertices[v]
	if !ok {
		return 0
	}
	return len(st.neighbours)
}

// HasNeighbours reports whether v has at least one incident edge.
func (g *Graph) HasNeighbours(v Vertex) bool {
	return g.IsReferenced(v)
}

// FirstUnvisitedNeighbour returns the first neighbour of v, in adjacency
// order, whose visited flag is false.
func (g *Graph) FirstUnvisitedNeighbour(v Vertex) (Vertex, bool) {
	st, ok := g.vertices[v]
	if !ok {
		return Vertex{}, false
	}
	for _, n := range st.neighbours {
		if ns := g.vertices[n]; !ns.visited {
			return n, true
		}
	}
	return Vertex{}, false
}

// HasUnvisitedNeighbours reports whether any neighbour of v is unvisited.
func (g *Graph) HasUnvisitedNeighbours(v Vertex) bool {
	_, ok := g.FirstUnvisitedNeighbour(v)
	return ok
}

// Visited returns v's traversal flag; absent vertices report false.
func (g *Graph) Visited(v Vertex) bool {
	st, ok := g.vertices[v]
	return ok && st.visited
}

// SetVisited sets v's traversal flag. Absent vertices are ignored.
func (g *Graph) SetVisited(v Vertex, visited bool) {
	if st, ok := g.vertices[v]; ok {
		st.visited = visited
	}
}

// SetAllVisited sets the traversal flag of every vertex.
// Complexity: O(V).
func (g *Graph) SetAllVisited(visited bool) {
	for _, st := range g.vertices {
		st.visited = visited
	}
}

// AllVisited reports whether every vertex's flag equals visited.
// An empty graph reports true.
func (g *Graph) AllVisited(visited bool) bool {
	for _, st := range g.vertices {
		if st.visited != visited {
			return false
		}
	}
	return true
}
