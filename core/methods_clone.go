// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
//
// Determinism:
//   - Clone replays vertices and edges so that adjacency lists keep their
//     insertion order on the copy; traversal flags are copied verbatim.

package core

// Clone returns a deep copy of the Graph: vertices, edges, adjacency order
// and traversal flags. Mutating the clone never affects g.
// Complexity: O(V + E log E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for v, st := range g.vertices {
		clone.vertices[v] = &vertexState{
			visited:    st.visited,
			neighbours: append([]Vertex(nil), st.neighbours...),
		}
		clone.vertexOrder.Set(v)
	}
	for k, e := range g.edges {
		clone.edges[k] = e
		clone.edgeOrder.Set(k)
	}

	return clone
}

// Clear removes every vertex and edge.
func (g *Graph) Clear() {
	*g = *NewGraph()
}
