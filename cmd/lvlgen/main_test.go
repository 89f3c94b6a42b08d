package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/generator"
)

func TestRun_Builtin(t *testing.T) {
	t.Cleanup(func() { generator.SetLogger(nil) })
	out := filepath.Join(t.TempDir(), "small.png")

	var stderr bytes.Buffer
	err := run([]string{"-name", "small", "-seed", "3", "-scale", "2", "-overlay", "route", "-out", out, "-v"}, &stderr)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Contains(t, stderr.String(), "level generated")
	assert.Contains(t, stderr.String(), "seed=3")
}

func TestRun_PresetFile(t *testing.T) {
	t.Cleanup(func() { generator.SetLogger(nil) })
	dir := t.TempDir()
	path := filepath.Join(dir, "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`presets:
  - name: mini
    mesh_size: 2
    mesh_spacing: 8
    finish: [1, 1]
    width: {base: 1, variation: 1, frequency: 0.3}
`), 0o644))

	var stderr bytes.Buffer
	err := run([]string{"-preset", path, "-name", "mini", "-out", filepath.Join(dir, "mini.png")}, &stderr)
	require.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	t.Cleanup(func() { generator.SetLogger(nil) })
	var stderr bytes.Buffer

	assert.ErrorIs(t, run([]string{"-bogus"}, &stderr), errUsage)
	assert.Error(t, run([]string{"-scale", "0"}, &stderr))
	assert.Error(t, run([]string{"-overlay", "mesh"}, &stderr))
	assert.Error(t, run([]string{"-name", "nope"}, &stderr))
	assert.Error(t, run([]string{"-preset", "missing.yaml"}, &stderr))
}
