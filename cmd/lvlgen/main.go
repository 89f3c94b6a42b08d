// Command lvlgen generates a corridor-maze level and writes it as a PNG.
//
// Usage:
//
//	lvlgen [-preset file.yaml] [-name default] [-seed n] [-out level.png]
//	       [-scale 4] [-overlay none|tree|route] [-v]
//
// Without -preset the built-in presets ("small", "default") are used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/lvlgen/generator"
	"github.com/katalvlaran/lvlgen/preset"
	"github.com/katalvlaran/lvlgen/render"
)

var errUsage = errors.New("lvlgen: usage")

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	presetPath string
	name       string
	seed       int64
	seedSet    bool
	out        string
	scale      int
	overlay    string
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lvlgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.presetPath, "preset", "", "YAML preset file (default: built-in presets)")
	fs.StringVar(&cfg.name, "name", "default", "preset name")
	fs.Int64Var(&cfg.seed, "seed", 0, "override the preset seed")
	fs.StringVar(&cfg.out, "out", "level.png", "output PNG path")
	fs.IntVar(&cfg.scale, "scale", 4, "pixels per grid cell")
	fs.StringVar(&cfg.overlay, "overlay", "none", "graph overlay: none, tree or route")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, errUsage
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.seedSet = true
		}
	})
	if cfg.scale < 1 {
		return cfg, fmt.Errorf("lvlgen: -scale=%d, want ≥ 1", cfg.scale)
	}
	switch cfg.overlay {
	case "none", "tree", "route":
	default:
		return cfg, fmt.Errorf("lvlgen: -overlay=%q, want none, tree or route", cfg.overlay)
	}
	return cfg, nil
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	generator.SetLogger(logger)
	gg.SetLogger(logger)

	p, err := loadPreset(cfg)
	if err != nil {
		return err
	}
	if cfg.seedSet {
		p.Seed = cfg.seed
	}

	gen, err := generator.New(p)
	if err != nil {
		return err
	}
	res, err := gen.Run()
	if err != nil {
		return err
	}

	opts := []render.Option{render.WithScale(cfg.scale)}
	switch cfg.overlay {
	case "tree":
		opts = append(opts, render.WithGraphOverlay(res.Tree))
	case "route":
		opts = append(opts, render.WithGraphOverlay(res.Graph))
	}
	if err := render.SavePNG(cfg.out, res.Grid, opts...); err != nil {
		return err
	}

	logger.Info("level written", "path", cfg.out, "run_id", res.RunID)
	return nil
}

func loadPreset(cfg config) (preset.Preset, error) {
	if cfg.presetPath == "" {
		return preset.Builtin(cfg.name)
	}
	f, err := preset.Load(cfg.presetPath)
	if err != nil {
		return preset.Preset{}, err
	}
	return f.Find(cfg.name)
}
