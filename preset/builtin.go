package preset

import (
	"fmt"
	"sort"
)

var builtins = map[string]Preset{
	// 3×3 mesh used by tests and quick previews.
	"small": {
		Name:         "small",
		BorderWidth:  2,
		MeshSize:     3,
		MeshSpacing:  10,
		Start:        [2]int{0, 0},
		Finish:       [2]int{2, 2},
		Seed:         1,
		RenderMode:   Smooth,
		Width:        Width{Base: 2, Variation: 1, Frequency: 0.1},
		MarkerRadius: 2,
	},
	// Full-size map: 30×30 mesh, corner to corner.
	"default": {
		Name:         "default",
		BorderWidth:  10,
		MeshSize:     30,
		MeshSpacing:  30,
		Start:        [2]int{0, 0},
		Finish:       [2]int{29, 29},
		Seed:         1,
		RenderMode:   Smooth,
		Width:        DefaultWidth(),
		MarkerRadius: 3,
	},
}

// Builtin returns a copy of the built-in preset called name.
func Builtin(name string) (Preset, error) {
	p, ok := builtins[name]
	if !ok {
		return Preset{}, fmt.Errorf("builtin %q: %w", name, ErrUnknownPreset)
	}
	return p, nil
}

// BuiltinNames lists the built-in preset names, sorted.
func BuiltinNames() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
