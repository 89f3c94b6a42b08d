// SPDX-License-Identifier: MIT
// Package: lvlgen/render
//
// render.go: Image export of a level grid.
//
// Model:
//   • Every grid cell becomes a scale×scale square coloured by the palette.
//   • Cells are drawn as horizontal runs; runs of one block share a path and
//     a single Fill.
//   • The optional graph overlay draws edges as lines and vertices as dots
//     centred in their cells, on top of the tiles.

package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gogpu/gg"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/level"
)

// ErrNilGrid is returned when no grid is given.
var ErrNilGrid = errors.New("render: grid is nil")

// Option customizes Draw.
type Option func(*options)

type options struct {
	scale        int
	palette      level.Palette
	overlay      *core.Graph
	edgeColor    string
	vertexColor  string
	overlayWidth float64
}

func defaultOptions() options {
	return options{
		scale:        1,
		palette:      level.DefaultPalette(),
		edgeColor:    "#ff0000",
		vertexColor:  "#0000ff",
		overlayWidth: 1,
	}
}

// WithScale renders every cell as an n×n pixel square. Panics if n < 1.
func WithScale(n int) Option {
	if n < 1 {
		panic("render: WithScale(n<1)")
	}
	return func(o *options) { o.scale = n }
}

// WithPalette replaces the block colours. Panics on nil.
func WithPalette(p level.Palette) Option {
	if p == nil {
		panic("render: WithPalette(nil)")
	}
	return func(o *options) { o.palette = p }
}

// WithGraphOverlay draws g's edges and vertices over the tiles.
// Panics on nil.
func WithGraphOverlay(g *core.Graph) Option {
	if g == nil {
		panic("render: WithGraphOverlay(nil)")
	}
	return func(o *options) { o.overlay = g }
}

// WithOverlayColors sets the overlay edge and vertex colours ("#rrggbb").
func WithOverlayColors(edge, vertex string) Option {
	return func(o *options) {
		o.edgeColor = edge
		o.vertexColor = vertex
	}
}

// Draw paints grid into a new gg.Context. The caller owns the context and
// must Close it.
func Draw(grid *level.Grid, opts ...Option) (*gg.Context, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := float64(o.scale)
	dc := gg.NewContext(grid.Width()*o.scale, grid.Height()*o.scale)

	if err := drawTiles(dc, grid, o.palette, s); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("render: tiles: %w", err)
	}
	if o.overlay != nil {
		if err := drawOverlay(dc, grid, o, s); err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("render: overlay: %w", err)
		}
	}
	return dc, nil
}

// PNG encodes the rendered grid as PNG to w.
func PNG(w io.Writer, grid *level.Grid, opts ...Option) error {
	dc, err := Draw(grid, opts...)
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.EncodePNG(w)
}

// SavePNG renders grid and writes it to path.
func SavePNG(path string, grid *level.Grid, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create '%s': %w", path, err)
	}
	if err := PNG(f, grid, opts...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// drawTiles fills one path per block from the row runs of that block.
func drawTiles(dc *gg.Context, grid *level.Grid, p level.Palette, s float64) error {
	type run struct{ x, y, n int }
	runs := make(map[level.Block][]run)
	for y, row := range grid.Rows() {
		for x := 0; x < len(row); {
			b, n := row[x], 1
			for x+n < len(row) && row[x+n] == b {
				n++
			}
			runs[b] = append(runs[b], run{x: x, y: y, n: n})
			x += n
		}
	}

	blocks := make([]level.Block, 0, len(runs))
	for b := range runs {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i] < blocks[j] })

	for _, b := range blocks {
		dc.SetHexColor(p.Color(b))
		for _, r := range runs[b] {
			dc.DrawRectangle(float64(r.x)*s, float64(r.y)*s, float64(r.n)*s, s)
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("block %v: %w", b, err)
		}
	}
	return nil
}

// drawOverlay strokes every edge and dots every vertex that lies on the grid.
func drawOverlay(dc *gg.Context, grid *level.Grid, o options, s float64) error {
	area := orb.Bound{
		Min: orb.Point{0, 0},
		Max: orb.Point{float64(grid.Width() - 1), float64(grid.Height() - 1)},
	}
	centre := func(v core.Vertex) (float64, float64) {
		return (float64(v.X) + 0.5) * s, (float64(v.Y) + 0.5) * s
	}
	onGrid := func(v core.Vertex) bool {
		return area.Contains(orb.Point{float64(v.X), float64(v.Y)})
	}

	edges := o.overlay.Edges()
	if len(edges) > 0 {
		dc.SetHexColor(o.edgeColor)
		dc.SetLineWidth(o.overlayWidth * s)
		for _, e := range edges {
			if !onGrid(e.From) || !onGrid(e.To) {
				continue
			}
			x1, y1 := centre(e.From)
			x2, y2 := centre(e.To)
			dc.DrawLine(x1, y1, x2, y2)
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	vertices := o.overlay.Vertices()
	if len(vertices) > 0 {
		dc.SetHexColor(o.vertexColor)
		r := max(s/2, 1)
		for _, v := range vertices {
			if !onGrid(v) {
				continue
			}
			x, y := centre(v)
			dc.DrawCircle(x, y, r)
		}
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
