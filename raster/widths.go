// SPDX-License-Identifier: MIT
// Package: lvlgen/raster
//
// widths.go: Gradually varying stroke widths.
//
// Model:
//   • w_i = base + trunc(noise((i + offset)·frequency) · variation), floored at 1.
//   • noise is 1D Perlin noise; offset ∈ [0, 1000].
//   • rng draws, in order: offset = rng.Intn(1001), noise seed = rng.Int63().

package raster

import (
	"fmt"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters: persistence, lacunarity and octave count.
const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3
)

// WidthOption configures Widths.
type WidthOption func(*WidthConfig)

// WidthConfig holds the width model parameters.
type WidthConfig struct {
	Base      int     // width with zero noise
	Variation int     // noise amplitude in cells
	Frequency float64 // noise samples per point index
}

// DefaultWidthConfig returns base 4, variation 3, frequency 0.1.
func DefaultWidthConfig() WidthConfig {
	return WidthConfig{Base: 4, Variation: 3, Frequency: 0.1}
}

// WithBase sets the base width. Panics if base < 1.
func WithBase(base int) WidthOption {
	if base < 1 {
		panic("raster: WithBase(base<1)")
	}
	return func(c *WidthConfig) { c.Base = base }
}

// WithVariation sets the noise amplitude. Panics if variation < 0.
func WithVariation(variation int) WidthOption {
	if variation < 0 {
		panic("raster: WithVariation(variation<0)")
	}
	return func(c *WidthConfig) { c.Variation = variation }
}

// WithFrequency sets the noise frequency. Panics if frequency ≤ 0.
func WithFrequency(frequency float64) WidthOption {
	if frequency <= 0 {
		panic("raster: WithFrequency(frequency<=0)")
	}
	return func(c *WidthConfig) { c.Frequency = frequency }
}

// WithWidthConfig replaces the whole configuration; used when the values
// come from an already validated preset.
func WithWidthConfig(cfg WidthConfig) WidthOption {
	return func(c *WidthConfig) { *c = cfg }
}

// Widths returns n stroke half-thicknesses, each ≥ 1.
func Widths(n int, rng *rand.Rand, opts ...WidthOption) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("raster: Widths: %w", ErrNeedRand)
	}
	cfg := DefaultWidthConfig()
	for _, fn := range opts {
		fn(&cfg)
	}

	offset := rng.Intn(1001)
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, rng.Int63())

	out := make([]int, n)
	for i := range out {
		v := noise.Noise1D(float64(i+offset) * cfg.Frequency)
		out[i] = max(1, cfg.Base+int(v*float64(cfg.Variation)))
	}
	return out, nil
}
