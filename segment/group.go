// Package segment collapses runs of collinear route edges into single
// straight segments and indexes them spatially.
//
// Grouping is a flood fill over edges: starting from each edge not yet
// grouped, it spreads through shared vertices to every edge of the same
// orientation and stops at an orientation change or an edge already taken.
// Each maximal run becomes one merged Edge spanning the minimum to the
// maximum coordinate of the varying axis.
//
// Determinism: groups are discovered in input order (Group uses the sorted
// g.Edges()); merged endpoints are chosen by explicit min/max.
package segment

import (
	"github.com/katalvlaran/lvlgen/core"
)

// Orientation classifies an edge by its direction.
type Orientation int

const (
	// Horizontal edges share their Y coordinate.
	Horizontal Orientation = iota
	// Vertical edges share their X coordinate.
	Vertical
	// Diagonal edges share neither; they always form a run of their own.
	Diagonal
)

// OrientationOf reports the orientation of e.
func OrientationOf(e core.Edge) Orientation {
	switch {
	case e.IsHorizontal():
		return Horizontal
	case e.IsVertical():
		return Vertical
	default:
		return Diagonal
	}
}

// Group merges the collinear runs of g's edges.
// Complexity: O(E log E).
func Group(g *core.Graph) []core.Edge {
	return GroupEdges(g.Edges())
}

// GroupEdges merges the collinear runs of edges.
func GroupEdges(edges []core.Edge) []core.Edge {
	runs := Runs(edges)
	out := make([]core.Edge, 0, len(runs))
	for _, run := range runs {
		if e, ok := Merge(run); ok {
			out = append(out, e)
		}
	}
	return out
}

// Runs partitions edges into maximal connected runs of one orientation.
// Duplicate unordered pairs in the input are counted once.
func Runs(edges []core.Edge) [][]core.Edge {
	incident := make(map[core.Vertex][]core.Edge, len(edges)*2)
	for _, e := range edges {
		incident[e.From] = append(incident[e.From], e)
		incident[e.To] = append(incident[e.To], e)
	}

	grouped := make(map[core.EdgeKey]struct{}, len(edges))
	var runs [][]core.Edge
	for _, seed := range edges {
		if _, done := grouped[seed.Key()]; done {
			continue
		}
		grouped[seed.Key()] = struct{}{}
		run := []core.Edge{seed}

		orient := OrientationOf(seed)
		if orient == Diagonal {
			runs = append(runs, run)
			continue
		}

		queue := []core.Vertex{seed.From, seed.To}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, e := range incident[v] {
				if _, done := grouped[e.Key()]; done || OrientationOf(e) != orient {
					continue
				}
				grouped[e.Key()] = struct{}{}
				run = append(run, e)
				next, _ := e.Other(v)
				queue = append(queue, next)
			}
		}
		runs = append(runs, run)
	}

	return runs
}

// Merge returns the single edge standing in for run: from the vertex with
// the smallest varying coordinate to the one with the largest. A diagonal
// run (always one edge) is returned as is. An empty run reports false.
func Merge(run []core.Edge) (core.Edge, bool) {
	if len(run) == 0 {
		return core.Edge{}, false
	}
	orient := OrientationOf(run[0])
	if orient == Diagonal {
		return run[0], true
	}

	lo, hi := run[0].From, run[0].From
	for _, e := range run {
		for _, v := range [2]core.Vertex{e.From, e.To} {
			if axis(orient, v) < axis(orient, lo) {
				lo = v
			}
			if axis(orient, v) > axis(orient, hi) {
				hi = v
			}
		}
	}
	return core.NewEdge(lo, hi), true
}

// axis returns the coordinate that varies along orientation o.
func axis(o Orientation, v core.Vertex) int {
	if o == Horizontal {
		return v.X
	}
	return v.Y
}
