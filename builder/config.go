// SPDX-License-Identifier: MIT
// Package: volmesh/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • origin        = (0,0,0)
//   • spacing       = 1.0
//   • rng           = nil   (no randomness unless seeded)
//   • jitter        = 0.0
//   • topologyCheck = true

package builder

import (
	"math/rand"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	origin  v3.Vec
	spacing float64

	// RNG for jitter; nil means "no randomness".
	rng    *rand.Rand
	jitter float64 // >=0, in units of spacing

	topologyCheck bool
}

const (
	defaultSpacing = 1.0
	defaultJitter  = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing:       defaultSpacing,
		jitter:        defaultJitter,
		topologyCheck: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// place maps a lattice point p to world space: origin + spacing·p, plus
// jitter drawn from cfg.rng. Callers check needRand beforehand.
func (c builderConfig) place(p v3.Vec) v3.Vec {
	q := c.origin.Add(p.MulScalar(c.spacing))
	if c.jitter == 0 || c.rng == nil {
		return q
	}
	a := c.jitter * c.spacing
	return q.Add(v3.Vec{
		X: a * (2*c.rng.Float64() - 1),
		Y: a * (2*c.rng.Float64() - 1),
		Z: a * (2*c.rng.Float64() - 1),
	})
}
