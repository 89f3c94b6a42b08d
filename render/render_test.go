package render_test

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/render"
)

func sample(t *testing.T) *level.Grid {
	t.Helper()
	g, err := level.FromRows([][]level.Block{
		{level.Freeze, level.Freeze, level.Freeze, level.Freeze},
		{level.Freeze, level.Start, level.Empty, level.Freeze},
		{level.Freeze, level.Empty, level.Finish, level.Freeze},
		{level.Freeze, level.Freeze, level.Freeze, level.Freeze},
	})
	require.NoError(t, err)
	return g
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestPNG_Size(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, sample(t), render.WithScale(3)))

	img := decode(t, buf.Bytes())
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())
}

func TestPNG_Colors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, sample(t), render.WithScale(4)))
	img := decode(t, buf.Bytes())

	// Sample cell centres to stay clear of anti-aliased edges.
	assertColor := func(x, y int, want [3]uint32) {
		r, g, b, _ := img.At(x*4+2, y*4+2).RGBA()
		got := [3]uint32{r >> 8, g >> 8, b >> 8}
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1, "cell (%d,%d) channel %d", x, y, i)
		}
	}
	assertColor(0, 0, [3]uint32{0x89, 0x89, 0x89}) // freeze
	assertColor(1, 1, [3]uint32{0x00, 0xff, 0x00}) // start
	assertColor(2, 2, [3]uint32{0xff, 0xa5, 0x00}) // finish
	assertColor(2, 1, [3]uint32{0xd3, 0xd3, 0xd3}) // empty
}

func TestDraw_Overlay(t *testing.T) {
	g := core.NewGraph()
	g.Connect(core.V(1, 1), core.V(2, 1))
	g.Connect(core.V(2, 1), core.V(9, 9)) // off-grid edge is skipped

	dc, err := render.Draw(sample(t), render.WithScale(8), render.WithGraphOverlay(g),
		render.WithOverlayColors("#ff0000", "#0000ff"))
	require.NoError(t, err)
	defer dc.Close()

	r, _, b, _ := dc.Image().At(1*8+4, 1*8+4).RGBA()
	assert.InDelta(t, 0, r>>8, 1, "vertex dot covers the start cell centre")
	assert.InDelta(t, 0xff, b>>8, 1)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.png")
	require.NoError(t, render.SavePNG(path, sample(t)))

	err := render.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), sample(t))
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	_, err := render.Draw(nil)
	assert.ErrorIs(t, err, render.ErrNilGrid)

	assert.Panics(t, func() { render.WithScale(0) })
	assert.Panics(t, func() { render.WithPalette(nil) })
	assert.Panics(t, func() { render.WithGraphOverlay(nil) })
}
