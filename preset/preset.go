// Package preset describes one level generation run: mesh geometry,
// route endpoints, seed, stroke widths and rendering mode.
//
// Presets come from YAML files (Load, Parse) or from the built-in table
// (Builtin). Every preset is validated before a run starts; an invalid
// preset never reaches the pipeline.
package preset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPreset wraps every validation failure; the message names the field.
	ErrInvalidPreset = errors.New("preset: invalid preset")

	// ErrUnknownPreset indicates that no preset has the requested name.
	ErrUnknownPreset = errors.New("preset: unknown preset")
)

// RenderMode selects how the route is turned into a corridor.
type RenderMode string

const (
	// Smooth strokes the spline-smoothed route with noise widths.
	Smooth RenderMode = "smooth"
	// Segments strokes each merged straight run with its own width.
	Segments RenderMode = "segments"
)

// Width holds the stroke width model.
type Width struct {
	Base      int     `yaml:"base"`      // half-thickness with zero noise
	Variation int     `yaml:"variation"` // noise amplitude
	Frequency float64 `yaml:"frequency"` // noise frequency per point
}

// Preset is one generation configuration.
type Preset struct {
	Name         string     `yaml:"name"`
	BorderWidth  int        `yaml:"border_width"`  // Freeze rim thickness
	MeshSize     int        `yaml:"mesh_size"`     // N: mesh cells per axis
	MeshSpacing  int        `yaml:"mesh_spacing"`  // S: grid cells between mesh vertices
	Start        [2]int     `yaml:"start"`         // mesh cell (i, j)
	Finish       [2]int     `yaml:"finish"`        // mesh cell (i, j)
	Seed         int64      `yaml:"seed"`          // rng seed
	RenderMode   RenderMode `yaml:"render_mode"`   // smooth | segments
	Width        Width      `yaml:"width"`         // stroke widths
	MarkerRadius int        `yaml:"marker_radius"` // Start/Finish square half-size
}

// DefaultWidth returns base 4, variation 3, frequency 0.1.
func DefaultWidth() Width {
	return Width{Base: 4, Variation: 3, Frequency: 0.1}
}

// ApplyDefaults fills unset optional fields: an all-zero Width block and
// an empty RenderMode.
func (p *Preset) ApplyDefaults() {
	if p.Width == (Width{}) {
		p.Width = DefaultWidth()
	}
	if p.RenderMode == "" {
		p.RenderMode = Smooth
	}
}

// GridSize returns the side of the square grid, S·(N+1).
func (p Preset) GridSize() int {
	return p.MeshSpacing * (p.MeshSize + 1)
}

// Validate checks every field and reports the first failure wrapped in
// ErrInvalidPreset.
func (p Preset) Validate() error {
	switch {
	case p.MeshSize < 1:
		return p.invalid("mesh_size=%d, want ≥ 1", p.MeshSize)
	case p.MeshSpacing < 1:
		return p.invalid("mesh_spacing=%d, want ≥ 1", p.MeshSpacing)
	case !p.inMesh(p.Start):
		return p.invalid("start=%v outside [0,%d)", p.Start, p.MeshSize)
	case !p.inMesh(p.Finish):
		return p.invalid("finish=%v outside [0,%d)", p.Finish, p.MeshSize)
	case p.BorderWidth < 0 || p.BorderWidth > p.MeshSpacing:
		return p.invalid("border_width=%d, want 0..%d", p.BorderWidth, p.MeshSpacing)
	case p.RenderMode != Smooth && p.RenderMode != Segments:
		return p.invalid("render_mode=%q, want %q or %q", p.RenderMode, Smooth, Segments)
	case p.Width.Base < 1:
		return p.invalid("width.base=%d, want ≥ 1", p.Width.Base)
	case p.Width.Variation < 0:
		return p.invalid("width.variation=%d, want ≥ 0", p.Width.Variation)
	case p.Width.Frequency <= 0:
		return p.invalid("width.frequency=%v, want > 0", p.Width.Frequency)
	case p.Width.Base+2*p.Width.Variation >= p.MeshSpacing:
		return p.invalid("width.base+2·width.variation=%d, want < mesh_spacing=%d",
			p.Width.Base+2*p.Width.Variation, p.MeshSpacing)
	case p.MarkerRadius < 0 || p.MarkerRadius >= p.MeshSpacing:
		return p.invalid("marker_radius=%d, want 0..%d", p.MarkerRadius, p.MeshSpacing-1)
	}
	return nil
}

func (p Preset) inMesh(c [2]int) bool {
	return c[0] >= 0 && c[0] < p.MeshSize && c[1] >= 0 && c[1] < p.MeshSize
}

func (p Preset) invalid(format string, args ...any) error {
	return fmt.Errorf("preset %q: %s: %w", p.Name, fmt.Sprintf(format, args...), ErrInvalidPreset)
}
