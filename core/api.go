// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a graph for diagnostics, logs and tests.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a snapshot of catalog sizes and edge orientation counts.
type GraphStats struct {
	VertexCount int // number of vertices
	EdgeCount   int // number of edges

	// IsolatedCount counts vertices without incident edges (fresh mesh cells).
	IsolatedCount int

	HorizontalEdgeCount int // edges with equal Y
	VerticalEdgeCount   int // edges with equal X
	DiagonalEdgeCount   int // neither; never produced by the mesh builder
}

// Stats produces a deterministic snapshot of g.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, st := range g.vertices {
		if len(st.neighbours) == 0 {
			stats.IsolatedCount++
		}
	}
	for _, e := range g.edges {
		switch {
		case e.IsHorizontal():
			stats.HorizontalEdgeCount++
		case e.IsVertical():
			stats.VerticalEdgeCount++
		default:
			stats.DiagonalEdgeCount++
		}
	}

	return stats
}
