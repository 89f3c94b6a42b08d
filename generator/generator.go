// SPDX-License-Identifier: MIT
// Package: lvlgen/generator
//
// generator.go: One level generation run.
//
// Pipeline (each stage completes before the next starts):
//  1. grid  S·(N+1) square, filled with Hookable
//  2. mesh  N×N vertices
//  3. carve randomized backtracker from the start cell
//  4. route DFS start→finish, prune everything else
//  5. shape smooth: spline through route vertices; segments: merged runs
//  6. paint noise widths, square-brush stroke of Empty
//  7. marks Start/Finish squares at the route ends
//  8. rim   Freeze border of border_width, painted last
//
// Determinism:
//   • One *rand.Rand seeded from the preset drives carving, then widths.

package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/mesh"
	"github.com/katalvlaran/lvlgen/preset"
	"github.com/katalvlaran/lvlgen/raster"
	"github.com/katalvlaran/lvlgen/route"
	"github.com/katalvlaran/lvlgen/segment"
	"github.com/katalvlaran/lvlgen/smooth"
)

// ErrRun wraps any stage failure of Run; the message names the stage.
var ErrRun = errors.New("generator: run failed")

// Generator runs the pipeline for one validated preset.
type Generator struct {
	preset preset.Preset
	space  mesh.Space
}

// Result is everything one run produced.
type Result struct {
	RunID  string
	Preset preset.Preset
	Space  mesh.Space

	Grid  *level.Grid // painted level
	Tree  *core.Graph // carved spanning tree, before extraction
	Graph *core.Graph // pruned graph: the route only
	Route *route.Result

	Segments []core.Edge    // merged straight runs of the route
	Index    *segment.Index // R-tree over Segments
	Points   []core.Vertex  // stroked polyline (smooth mode) or segment endpoints
	Widths   []int          // one per stroked point (smooth) or per segment
}

// New validates p and returns a Generator for it.
func New(p preset.Preset) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	space, err := mesh.NewSpace(p.MeshSize, p.MeshSpacing)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	return &Generator{preset: p, space: space}, nil
}

// Preset returns the preset the generator was built with.
func (gen *Generator) Preset() preset.Preset {
	return gen.preset
}

// Run executes the whole pipeline. Each call starts from the preset seed,
// so repeated runs return identical levels.
func (gen *Generator) Run() (*Result, error) {
	p := gen.preset
	res := &Result{RunID: uuid.NewString(), Preset: p, Space: gen.space}
	log := Logger().With("run_id", res.RunID, "preset", p.Name, "seed", p.Seed)

	if err := gen.run(res); err != nil {
		log.Warn("level generation failed", "err", err)
		return nil, err
	}

	log.Info("level generated",
		"grid", res.Grid.Width(),
		"tree_edges", res.Tree.EdgeCount(),
		"route_edges", res.Route.Len(),
		"segments", len(res.Segments),
		"points", len(res.Points),
		"corridor_cells", res.Grid.Count(level.Empty),
	)
	return res, nil
}

func (gen *Generator) run(res *Result) error {
	p := gen.preset
	log := Logger().With("run_id", res.RunID)
	rng := rand.New(rand.NewSource(p.Seed))
	start, finish := mesh.C(p.Start[0], p.Start[1]), mesh.C(p.Finish[0], p.Finish[1])

	// 1) grid
	grid, err := level.NewGrid(gen.space.Extent(), gen.space.Extent(), level.Hookable)
	if err != nil {
		return stageErr("grid", err)
	}
	res.Grid = grid

	// 2–3) mesh and carving
	g := core.NewGraph()
	if err := mesh.CreateVertexMesh(g, gen.space); err != nil {
		return stageErr("mesh", err)
	}
	if err := mesh.ConnectRandom(g, gen.space, start, mesh.WithRand(rng)); err != nil {
		return stageErr("carve", err)
	}
	res.Tree = g.Clone()
	log.Debug("carved", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	// 4) route
	rt, err := route.Extract(g, gen.space, start, finish)
	if err != nil {
		return stageErr("route", err)
	}
	res.Graph, res.Route = g, rt
	log.Debug("route extracted", "edges", rt.Len(), "pruned", len(rt.OffPath))

	// 5) shape
	res.Segments = segment.Group(g)
	res.Index = segment.NewIndex(res.Segments)
	log.Debug("segments grouped", "count", len(res.Segments))

	// 6) paint
	widthOpt := raster.WithWidthConfig(raster.WidthConfig{
		Base:      p.Width.Base,
		Variation: p.Width.Variation,
		Frequency: p.Width.Frequency,
	})
	switch p.RenderMode {
	case preset.Segments:
		err = gen.paintSegments(res, rng, widthOpt)
	default:
		err = gen.paintSmooth(res, rng, widthOpt)
	}
	if err != nil {
		return stageErr("paint", err)
	}
	log.Debug("corridor painted", "mode", p.RenderMode, "points", len(res.Points))

	// 7) markers
	if err := raster.Square(grid, rt.Start, p.MarkerRadius, level.Start); err != nil {
		return stageErr("marks", err)
	}
	if err := raster.Square(grid, rt.Finish, p.MarkerRadius, level.Finish); err != nil {
		return stageErr("marks", err)
	}

	// 8) rim
	grid.FillBorder(p.BorderWidth, level.Freeze)

	return nil
}

// paintSmooth strokes the spline through the route vertices.
func (gen *Generator) paintSmooth(res *Result, rng *rand.Rand, opt raster.WidthOption) error {
	pts, err := smooth.Smooth(res.Route.Vertices())
	if err != nil {
		return err
	}
	// The spline may overshoot the outer mesh rows; keep it on the mesh.
	for i, p := range pts {
		pts[i] = res.Space.Clamp(p)
	}
	widths, err := raster.Widths(len(pts), rng, opt)
	if err != nil {
		return err
	}
	res.Points, res.Widths = pts, widths

	return raster.Stroke(res.Grid, pts, widths, level.Empty)
}

// paintSegments strokes every merged run with its own width. All runs are
// bounds-checked before the first one is painted.
func (gen *Generator) paintSegments(res *Result, rng *rand.Rand, opt raster.WidthOption) error {
	if len(res.Segments) == 0 {
		// Zero-length route: a single square at the start.
		res.Points = []core.Vertex{res.Route.Start}
		widths, err := raster.Widths(1, rng, opt)
		if err != nil {
			return err
		}
		res.Widths = widths
		return raster.Stroke(res.Grid, res.Points, widths, level.Empty)
	}

	widths, err := raster.Widths(len(res.Segments), rng, opt)
	if err != nil {
		return err
	}
	res.Widths = widths
	res.Points = make([]core.Vertex, 0, 2*len(res.Segments))
	for _, s := range res.Segments {
		res.Points = append(res.Points, s.From, s.To)
	}

	trial := res.Grid.Clone()
	for i, s := range res.Segments {
		if err := raster.Stroke(trial, []core.Vertex{s.From, s.To}, []int{widths[i], widths[i]}, level.Empty); err != nil {
			return fmt.Errorf("segment %v: %w", s, err)
		}
	}
	*res.Grid = *trial
	return nil
}

func stageErr(stage string, err error) error {
	return fmt.Errorf("generator: %s: %w: %w", stage, ErrRun, err)
}
