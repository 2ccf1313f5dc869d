// SPDX-License-Identifier: MIT
// Package: volmesh/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// BuilderOption customizes the behavior of constructors by mutating a
// builderConfig instance before mesh construction begins.
type BuilderOption func(*builderConfig)

// WithOrigin translates every generated vertex by o.
func WithOrigin(o v3.Vec) BuilderOption {
	return func(c *builderConfig) { c.origin = o }
}

// WithSpacing sets the edge length of lattice-based constructors (>0).
// Panics on non-positive or non-finite values.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) { c.spacing = s }
}

// WithRand provides an explicit RNG for jitter. Panics on nil; prefer
// WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible jitter.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter perturbs every generated vertex by up to a·spacing per
// component. Requires an RNG (WithSeed/WithRand). Panics unless 0 ≤ a < 0.5,
// which keeps lattice cells from inverting.
func WithJitter(a float64) BuilderOption {
	if !(a >= 0 && a < maxJitter) {
		panic("builder: WithJitter(a out of [0,0.5))")
	}
	return func(c *builderConfig) { c.jitter = a }
}

// WithTopologyCheck toggles core.CheckCell validation of generated cells
// (default on).
func WithTopologyCheck(on bool) BuilderOption {
	return func(c *builderConfig) { c.topologyCheck = on }
}
