// Package core provides the undirected, coordinate-keyed Graph used by the
// maze generation pipeline.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are comparable (X, Y) values; equality is coordinate equality.
//   - Edges are unordered pairs; (a,b) and (b,a) are the same edge.
//   - Adjacency lists keep insertion order, which fixes DFS tie-breaks.
//   - Self-loops and duplicate pairs are ignored, never errors.
//   - Deleting an edge or a vertex removes every vertex left without edges
//     (cascading cleanup), so pruning a spanning tree leaves no dangling
//     mesh cells.
//   - Vertices() and Edges() iterate in row-major order through B-tree
//     indexes, keeping logs and golden tests stable.
//
// Traversal flags:
//
//	Each vertex carries a single visited flag owned by the Graph
//	(Visited, SetVisited, SetAllVisited). Searches reset all flags first.
//
// Core Methods:
//
//	// Vertex lifecycle
//	VertexAt(x, y int) (Vertex, bool)   // O(1)
//	AddVertex(x, y int)                 // O(log V), idempotent
//	DeleteVertex(v Vertex)              // O(deg²), cascading
//
//	// Edge lifecycle
//	AddEdge(e Edge)                     // O(log E), no-op on loop/duplicate
//	DeleteEdge(e Edge)                  // O(deg + log E), cascading
//	HasEdge(e Edge) bool                // O(1)
//	FindEdge(a, b Vertex) (Edge, bool)  // O(1)
//
//	// Queries
//	Neighbours(v Vertex) []Vertex       // insertion order
//	Vertices() []Vertex; Edges() []Edge // row-major
//	Stats() GraphStats
//
// Concurrency:
//
//	A Graph is owned by exactly one generation run; it holds no locks.
//
// Quick ASCII example (spacing 10, mesh cells (0,0),(1,0),(0,1)):
//
//	(10,10)───(20,10)
//	   │
//	(10,20)
package core
