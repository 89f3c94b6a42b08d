// SPDX-License-Identifier: MIT
// Package: lvlgen/preset
//
// load.go: YAML preset files.
//
// Format:
//
//	presets:
//	  - name: tiny
//	    mesh_size: 4
//	    ...
//
// Strict mode (KnownFields) rejects unknown keys; ${VAR} references are
// expanded from the environment before decoding.

package preset

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the top-level structure of a preset file.
type File struct {
	Presets []Preset `yaml:"presets"`
}

// Load reads, decodes, defaults and validates the preset file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read preset file '%s': %w", path, err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preset file '%s': %w", path, err)
	}
	return f, nil
}

// Parse decodes a preset document from r; see Load.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	expanded := os.ExpandEnv(string(data))

	var f File
	decoder := yaml.NewDecoder(strings.NewReader(expanded))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("YAML syntax error: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Presets))
	for i := range f.Presets {
		p := &f.Presets[i]
		p.ApplyDefaults()
		if p.Name == "" {
			return nil, fmt.Errorf("presets[%d]: name is required: %w", i, ErrInvalidPreset)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("presets[%d]: duplicate name %q: %w", i, p.Name, ErrInvalidPreset)
		}
		seen[p.Name] = struct{}{}
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// Find returns the preset called name.
func (f *File) Find(name string) (Preset, error) {
	for _, p := range f.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
}

// Names lists the preset names in file order.
func (f *File) Names() []string {
	out := make([]string, len(f.Presets))
	for i, p := range f.Presets {
		out[i] = p.Name
	}
	return out
}
