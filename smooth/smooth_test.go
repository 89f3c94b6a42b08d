package smooth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/smooth"
)

var zigzag = []core.Vertex{
	core.V(10, 10), core.V(20, 10), core.V(20, 20), core.V(30, 20), core.V(30, 30), core.V(40, 30),
}

func TestSmooth_FewPointsUnchanged(t *testing.T) {
	cases := [][]core.Vertex{
		nil,
		{core.V(1, 1)},
		{core.V(1, 1), core.V(2, 1), core.V(2, 2)},
		{core.V(1, 1), core.V(2, 1), core.V(2, 1), core.V(1, 1)}, // 2 distinct
	}
	for _, in := range cases {
		out, err := smooth.Smooth(in)
		require.NoError(t, err)
		assert.Equal(t, len(in), len(out))
		for i := range in {
			assert.Equal(t, in[i], out[i])
		}
	}
}

func TestSmooth_ResamplesFiveN(t *testing.T) {
	for _, kind := range []smooth.Kind{smooth.NotAKnotSpline, smooth.NaturalSpline} {
		out, err := smooth.Smooth(zigzag, smooth.WithKind(kind))
		require.NoError(t, err, kind.String())
		require.Len(t, out, 5*len(zigzag))
		assert.Equal(t, zigzag[0], out[0])
		assert.Equal(t, zigzag[len(zigzag)-1], out[len(out)-1])
	}
}

func TestSmooth_SamplesPerPoint(t *testing.T) {
	out, err := smooth.Smooth(zigzag, smooth.WithSamplesPerPoint(2))
	require.NoError(t, err)
	assert.Len(t, out, 12)

	assert.Panics(t, func() { smooth.WithSamplesPerPoint(0) })
}

func TestSmooth_StraightLineStaysOnLine(t *testing.T) {
	line := []core.Vertex{core.V(0, 5), core.V(10, 5), core.V(20, 5), core.V(30, 5)}
	out, err := smooth.Smooth(line)
	require.NoError(t, err)
	for _, p := range out {
		assert.Equal(t, 5, p.Y)
		assert.GreaterOrEqual(t, p.X, 0)
		assert.LessOrEqual(t, p.X, 30)
	}
}

func TestCurve_TooFewPoints(t *testing.T) {
	_, err := smooth.Curve(zigzag[:3])
	assert.ErrorIs(t, err, smooth.ErrFit)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, 0, smooth.Distinct(nil))
	assert.Equal(t, 2, smooth.Distinct([]core.Vertex{core.V(1, 1), core.V(1, 1), core.V(0, 1)}))
}
