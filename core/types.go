// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types used by the
// maze pipeline: a coordinate-keyed undirected graph with insertion-ordered
// adjacency and cascading vertex cleanup.
//
// This file declares Vertex, Edge, EdgeKey, Graph and the NewGraph constructor.
//
// Structural violations (self-loops, duplicate edges, deleting absent
// elements) are no-ops rather than errors; lookups report misses through a
// second boolean result.
package core

import (
	"strconv"

	"github.com/tidwall/btree"
)

// Vertex is a point in mesh/grid space.
//
// Vertex is a comparable value: two vertices with equal (X, Y) are the same
// vertex for every graph operation, map key and set membership. The
// traversal flag is not part of the value; it is kept by the owning Graph
// (see Graph.Visited).
type Vertex struct {
	X int
	Y int
}

// V is shorthand for Vertex{X: x, Y: y}.
func V(x, y int) Vertex {
	return Vertex{X: x, Y: y}
}

// Less orders vertices row-major: by Y, then by X.
// It is the ordering used by Vertices() and Edges().
func (v Vertex) Less(o Vertex) bool {
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.X < o.X
}

// String renders the vertex as "(x,y)".
func (v Vertex) String() string {
	return "(" + strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y) + ")"
}

// Edge is an undirected connection between two vertices.
//
// The From/To direction is kept only as storage order; Equal, Key and every
// Graph lookup treat (a,b) and (b,a) as the same edge.
type Edge struct {
	From Vertex
	To   Vertex
}

// NewEdge returns the edge from→to.
func NewEdge(from, to Vertex) Edge {
	return Edge{From: from, To: to}
}

// EdgeKey is the canonical unordered form of an edge: A never sorts after B.
type EdgeKey struct {
	A Vertex
	B Vertex
}

// Key returns the canonical unordered key of e.
func (e Edge) Key() EdgeKey {
	if e.To.Less(e.From) {
		return EdgeKey{A: e.To, B: e.From}
	}
	return EdgeKey{A: e.From, B: e.To}
}

// Equal reports whether e and o connect the same unordered pair.
func (e Edge) Equal(o Edge) bool {
	return e.Key() == o.Key()
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool {
	return e.From == e.To
}

// IsVertical reports whether both endpoints share the X coordinate.
func (e Edge) IsVertical() bool {
	return e.From.X == e.To.X
}

// IsHorizontal reports whether both endpoints share the Y coordinate.
func (e Edge) IsHorizontal() bool {
	return e.From.Y == e.To.Y
}

// HasVertex reports whether v is one of the endpoints (by coordinates).
func (e Edge) HasVertex(v Vertex) bool {
	return e.From == v || e.To == v
}

// Other returns the endpoint opposite to v. The second result is false when
// v is not an endpoint of e.
func (e Edge) Other(v Vertex) (Vertex, bool) {
	switch v {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	}
	return Vertex{}, false
}

// Reversed returns the edge with swapped storage direction.
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From}
}

// String renders the edge as "(x1,y1)-(x2,y2)".
func (e Edge) String() string {
	return e.From.String() + "-" + e.To.String()
}

// vertexState holds the mutable per-vertex data owned by the Graph.
type vertexState struct {
	visited    bool     // traversal flag, reset by every search
	neighbours []Vertex // adjacency in insertion order
}

// Graph is the in-memory undirected graph of the maze pipeline.
//
// Invariants (hold after every exported call):
//   - every edge endpoint is present in vertices;
//   - adjacency is symmetric;
//   - no duplicate unordered pair, no self-loop;
//   - a vertex that loses its last edge through DeleteEdge or DeleteVertex is removed.
//
// vertexOrder and edgeOrder mirror the maps and give deterministic iteration.
// Graph is not safe for concurrent mutation; one generation run owns it.
type Graph struct {
	vertices map[Vertex]*vertexState
	edges    map[EdgeKey]Edge

	vertexOrder *btree.BTreeG[Vertex]
	edgeOrder   *btree.BTreeG[EdgeKey]
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:    make(map[Vertex]*vertexState),
		edges:       make(map[EdgeKey]Edge),
		vertexOrder: btree.NewBTreeG[Vertex](Vertex.Less),
		edgeOrder:   btree.NewBTreeG[EdgeKey](edgeKeyLess),
	}
}

// edgeKeyLess orders keys by A, then by B.
func edgeKeyLess(a, b EdgeKey) bool {
	if a.A != b.A {
		return a.A.Less(b.A)
	}
	return a.B.Less(b.B)
}
