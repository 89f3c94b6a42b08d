package raster_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/raster"
)

func newGrid(t *testing.T, w, h int) *level.Grid {
	t.Helper()
	g, err := level.NewGrid(w, h, level.Hookable)
	require.NoError(t, err)
	return g
}

func TestStroke_SquareBrush(t *testing.T) {
	g := newGrid(t, 10, 10)
	pts := []core.Vertex{core.V(3, 4), core.V(6, 4)}
	require.NoError(t, raster.Stroke(g, pts, []int{1, 1}, level.Empty))

	// Line (3..6, 4) widened by 1: x 2..7, y 3..5.
	assert.Equal(t, 6*3, g.Count(level.Empty))
	for y := 3; y <= 5; y++ {
		for x := 2; x <= 7; x++ {
			b, _ := g.At(x, y)
			assert.Equal(t, level.Empty, b, "(%d,%d)", x, y)
		}
	}
}

func TestStroke_SinglePoint(t *testing.T) {
	g := newGrid(t, 5, 5)
	require.NoError(t, raster.Stroke(g, []core.Vertex{core.V(2, 2)}, []int{2}, level.Empty))
	assert.Equal(t, 25, g.Count(level.Empty))
}

func TestStroke_OutOfBoundsNoMutation(t *testing.T) {
	g := newGrid(t, 8, 8)
	before := g.Clone()

	pts := []core.Vertex{core.V(2, 2), core.V(5, 2), core.V(5, 6)}
	err := raster.Stroke(g, pts, []int{1, 2, 9}, level.Empty) // 5+2 ok, 6+2 = 8 overflows
	assert.ErrorIs(t, err, raster.ErrOutOfBounds)
	assert.True(t, before.Equal(g))

	err = raster.Stroke(g, []core.Vertex{core.V(0, 0)}, []int{1}, level.Empty)
	assert.ErrorIs(t, err, raster.ErrOutOfBounds)
	assert.True(t, before.Equal(g))
}

func TestStroke_Errors(t *testing.T) {
	g := newGrid(t, 4, 4)
	err := raster.Stroke(g, []core.Vertex{core.V(1, 1)}, nil, level.Empty)
	assert.ErrorIs(t, err, raster.ErrWidthsMismatch)

	err = raster.Stroke(g, []core.Vertex{core.V(1, 1)}, []int{-1}, level.Empty)
	assert.ErrorIs(t, err, raster.ErrNegativeWidth)

	assert.NoError(t, raster.Stroke(g, nil, nil, level.Empty))
}

func TestStrokeBounds(t *testing.T) {
	b, err := raster.StrokeBounds(
		[]core.Vertex{core.V(5, 5), core.V(10, 5), core.V(10, 8)},
		[]int{2, 1, 7},
	)
	require.NoError(t, err)
	// Last width never paints: segment i uses widths[i].
	assert.Equal(t, 3.0, b.Min.X())
	assert.Equal(t, 3.0, b.Min.Y())
	assert.Equal(t, 12.0, b.Max.X())
	assert.Equal(t, 9.0, b.Max.Y())
}

func TestSquare(t *testing.T) {
	g := newGrid(t, 5, 5)
	require.NoError(t, raster.Square(g, core.V(1, 1), 1, level.Start))
	assert.Equal(t, 9, g.Count(level.Start))

	assert.ErrorIs(t, raster.Square(g, core.V(4, 4), 1, level.Finish), raster.ErrOutOfBounds)
	assert.ErrorIs(t, raster.Square(g, core.V(2, 2), -1, level.Finish), raster.ErrNegativeWidth)
	assert.Equal(t, 0, g.Count(level.Finish))
}

func TestWidths(t *testing.T) {
	w1, err := raster.Widths(200, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	w2, err := raster.Widths(200, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	assert.Equal(t, w1, w2, "deterministic for a seed")

	for i, w := range w1 {
		assert.GreaterOrEqual(t, w, 1)
		// Three octaves sum to at most 1.75 in magnitude.
		assert.LessOrEqual(t, w, 4+5, "index %d", i)
	}

	flat, err := raster.Widths(10, rand.New(rand.NewSource(1)), raster.WithVariation(0), raster.WithBase(2))
	require.NoError(t, err)
	for _, w := range flat {
		assert.Equal(t, 2, w)
	}

	empty, err := raster.Widths(0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = raster.Widths(3, nil)
	assert.ErrorIs(t, err, raster.ErrNeedRand)

	assert.Panics(t, func() { raster.WithBase(0) })
	assert.Panics(t, func() { raster.WithVariation(-1) })
	assert.Panics(t, func() { raster.WithFrequency(0) })
}

func TestWidths_Gradual(t *testing.T) {
	ws, err := raster.Widths(500, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	for i := 1; i < len(ws); i++ {
		d := ws[i] - ws[i-1]
		assert.True(t, d >= -3 && d <= 3, "jump at %d: %d→%d", i, ws[i-1], ws[i])
	}
}
