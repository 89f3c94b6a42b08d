package generator_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/generator"
	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/preset"
)

func smallPreset(t *testing.T) preset.Preset {
	t.Helper()
	p, err := preset.Builtin("small")
	require.NoError(t, err)
	return p
}

func run(t *testing.T, p preset.Preset) *generator.Result {
	t.Helper()
	gen, err := generator.New(p)
	require.NoError(t, err)
	res, err := gen.Run()
	require.NoError(t, err)
	return res
}

// Mesh 3, spacing 10, start (0,0), finish (2,2), fixed seed.
func TestRun_Deterministic(t *testing.T) {
	p := smallPreset(t)
	a := run(t, p)
	b := run(t, p)

	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, a.Tree.Edges(), b.Tree.Edges())
	assert.Equal(t, a.Graph.Vertices(), b.Graph.Vertices())
	assert.Equal(t, a.Graph.Edges(), b.Graph.Edges())
	assert.Equal(t, a.Points, b.Points)
	assert.Equal(t, a.Widths, b.Widths)
	assert.True(t, a.Grid.Equal(b.Grid))
}

func TestRun_SmallShape(t *testing.T) {
	res := run(t, smallPreset(t))

	assert.Equal(t, 40, res.Grid.Width())
	assert.Equal(t, 40, res.Grid.Height())
	assert.Equal(t, 9, res.Tree.VertexCount())
	assert.Equal(t, 8, res.Tree.EdgeCount())

	assert.Equal(t, core.V(10, 10), res.Route.Start)
	assert.Equal(t, core.V(30, 30), res.Route.Finish)
	assert.Equal(t, res.Route.Len(), res.Graph.EdgeCount())
	assert.Equal(t, len(res.Widths), len(res.Points))

	// Markers at the route ends.
	b, _ := res.Grid.At(10, 10)
	assert.Equal(t, level.Start, b)
	b, _ = res.Grid.At(30, 30)
	assert.Equal(t, level.Finish, b)
	assert.Equal(t, 25, res.Grid.Count(level.Start))

	// Freeze rim, two cells wide.
	for _, c := range [][2]int{{0, 0}, {1, 20}, {39, 39}, {20, 38}} {
		b, _ := res.Grid.At(c[0], c[1])
		assert.Equal(t, level.Freeze, b, "rim at %v", c)
	}

	// Every route vertex sits on a covered segment cell.
	for _, v := range res.Route.Vertices() {
		assert.True(t, res.Index.Covered(v.X, v.Y), "vertex %v", v)
	}
}

func TestRun_CorridorIsConnected(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		for _, mode := range []preset.RenderMode{preset.Smooth, preset.Segments} {
			p := smallPreset(t)
			p.Seed = seed
			p.RenderMode = mode
			res := run(t, p)

			walkable := res.Grid.Regions(level.Is(level.Empty, level.Start, level.Finish))
			assert.Len(t, walkable, 1, "seed %d mode %s", seed, mode)
			assert.Greater(t, res.Grid.Count(level.Empty), 0)
			assert.Greater(t, res.Grid.Count(level.Hookable), 0)
		}
	}
}

func TestRun_SegmentsMode(t *testing.T) {
	p := smallPreset(t)
	p.RenderMode = preset.Segments
	res := run(t, p)

	assert.Len(t, res.Widths, len(res.Segments))
	assert.Len(t, res.Points, 2*len(res.Segments))
	for _, s := range res.Segments {
		assert.True(t, s.IsHorizontal() || s.IsVertical())
	}
}

func TestRun_StartEqualsFinish(t *testing.T) {
	for _, mode := range []preset.RenderMode{preset.Smooth, preset.Segments} {
		p := smallPreset(t)
		p.Finish = p.Start
		p.RenderMode = mode
		res := run(t, p)
		assert.Equal(t, 0, res.Route.Len())
		assert.Equal(t, []core.Vertex{core.V(10, 10)}, res.Points)
		assert.Equal(t, level.Finish, mustAt(t, res.Grid, 10, 10), "finish painted last")
	}
}

func TestRun_DifferentSeeds(t *testing.T) {
	p := smallPreset(t)
	p.MeshSize, p.Finish = 6, [2]int{5, 5}
	a := run(t, p)
	p.Seed++
	b := run(t, p)
	assert.False(t, a.Grid.Equal(b.Grid))
}

// Widest corridor and marker the validation rules allow, smooth mode:
// overshooting spline samples must stay on the mesh.
func TestRun_WidestValidPresetsFit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, spacing := range []int{2, 3, 5, 8} {
		for size := 2; size <= 6; size++ {
			for k := 0; k < 25; k++ {
				p := preset.Preset{
					Name:         "edge",
					MeshSize:     size,
					MeshSpacing:  spacing,
					Start:        [2]int{rng.Intn(size), rng.Intn(size)},
					Finish:       [2]int{rng.Intn(size), rng.Intn(size)},
					Seed:         rng.Int63(),
					RenderMode:   preset.Smooth,
					Width:        preset.Width{Base: spacing - 1, Frequency: 0.1},
					MarkerRadius: spacing - 1,
				}
				gen, err := generator.New(p)
				require.NoError(t, err, "%+v", p)
				res, err := gen.Run()
				require.NoError(t, err, "%+v", p)
				for _, pt := range res.Points {
					assert.Equal(t, pt, res.Space.Clamp(pt))
				}
			}
		}
	}

	p := preset.Preset{
		Name: "edge", MeshSize: 5, MeshSpacing: 2,
		Start: [2]int{0, 4}, Finish: [2]int{4, 2},
		Seed:       8217821123116538819,
		RenderMode: preset.Smooth,
		Width:      preset.Width{Base: 1, Frequency: 0.1},
	}
	res := run(t, p)
	assert.Equal(t, 12, res.Grid.Width())
}

func TestNew_Invalid(t *testing.T) {
	p := smallPreset(t)
	p.MeshSize = 0
	_, err := generator.New(p)
	assert.ErrorIs(t, err, preset.ErrInvalidPreset)
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	generator.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { generator.SetLogger(nil) })

	res := run(t, smallPreset(t))
	out := buf.String()
	assert.Contains(t, out, "level generated")
	assert.Contains(t, out, "run_id="+res.RunID)
	assert.Contains(t, out, "route extracted")

	generator.SetLogger(nil)
	assert.False(t, generator.Logger().Enabled(context.Background(), slog.LevelError))
}

func mustAt(t *testing.T, g *level.Grid, x, y int) level.Block {
	t.Helper()
	b, ok := g.At(x, y)
	require.True(t, ok)
	return b
}
