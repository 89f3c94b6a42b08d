// Package route implements the path extraction stage of the maze pipeline.
//
// Extract resolves the configured start and finish mesh cells, runs a
// depth-first search between them and collapses the carved spanning tree
// into the single simple route joining them.
//
// Complexity: O(V + E·d) for the search plus O(E log E) for pruning.
package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/dfs"
	"github.com/katalvlaran/lvlgen/mesh"
)

const methodExtract = "Extract"

// Extract finds the route between the start and finish cells of space.
//
// Steps:
//  1. Resolve start and finish to graph vertices.
//  2. dfs.Search(start→finish); ErrNoPath leaves g untouched.
//  3. Order the path start→finish and partition g's edges into on/off route.
//  4. Prune mode: delete off-route edges and any vertex not on the route.
func Extract(g *core.Graph, space mesh.Space, start, finish mesh.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1) Resolve endpoints.
	from, ok := space.VertexAt(g, start)
	if !ok {
		return nil, fmt.Errorf("%s: start %v: %w", methodExtract, start, ErrStartNotFound)
	}
	to, ok := space.VertexAt(g, finish)
	if !ok {
		return nil, fmt.Errorf("%s: finish %v: %w", methodExtract, finish, ErrFinishNotFound)
	}

	// 2) Search.
	found, err := dfs.Search(g, from, to, o.Search...)
	if err != nil {
		if errors.Is(err, dfs.ErrNoPath) {
			return nil, fmt.Errorf("%s: %v→%v: %w", methodExtract, from, to, ErrNoPath)
		}
		return nil, fmt.Errorf("%s: %w", methodExtract, err)
	}

	// 3) Partition.
	res := &Result{
		Start:  from,
		Finish: to,
		Path:   dfs.Reverse(found),
		Mode:   o.Mode,
	}
	onPath := make(map[core.EdgeKey]struct{}, len(res.Path))
	for _, e := range res.Path {
		onPath[e.Key()] = struct{}{}
	}
	for _, e := range g.Edges() {
		if _, ok := onPath[e.Key()]; !ok {
			res.OffPath = append(res.OffPath, e)
		}
	}

	// 4) Prune.
	if o.Mode == Prune {
		prune(g, res)
	}

	return res, nil
}

// prune removes off-route edges, then any vertex that is not a route vertex
// and carries no edge (mesh cells the carving never reached).
func prune(g *core.Graph, res *Result) {
	for _, e := range res.OffPath {
		g.DeleteEdge(e)
	}
	keep := make(map[core.Vertex]struct{}, len(res.Path)+1)
	for _, v := range res.Vertices() {
		keep[v] = struct{}{}
	}
	for _, v := range g.Vertices() {
		if _, ok := keep[v]; !ok {
			g.DeleteVertex(v)
		}
	}
	// A zero-length route loses its only vertex to the cascade.
	if !g.HasVertex(res.Start) {
		g.AddVertex(res.Start.X, res.Start.Y)
	}
}
