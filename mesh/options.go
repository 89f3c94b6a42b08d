// SPDX-License-Identifier: MIT
// Package: lvlgen/mesh
//
// options.go: Functional options for carving.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package mesh

import (
	"math/rand"
)

// Option customizes ConnectRandom by mutating a carveConfig before use.
type Option func(*carveConfig)

// carveConfig aggregates the knobs of ConnectRandom.
type carveConfig struct {
	// RNG for neighbour choice; nil means "not configured" (ErrNeedRand).
	rng *rand.Rand
}

// newCarveConfig applies options in order (last wins).
func newCarveConfig(opts ...Option) carveConfig {
	var cfg carveConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG. The same *rand.Rand is typically
// threaded on to width generation so that one seed drives a whole run.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mesh: WithRand(nil)")
	}
	return func(c *carveConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *carveConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
