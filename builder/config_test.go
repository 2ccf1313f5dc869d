// SPDX-License-Identifier: MIT
// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and
// override behavior.
package builder

import (
	"math/rand"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigDefaults verifies the deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, v3.Vec{}, cfg.origin)
	assert.Equal(t, defaultSpacing, cfg.spacing)
	assert.Nil(t, cfg.rng)
	assert.Zero(t, cfg.jitter)
	assert.True(t, cfg.topologyCheck)
}

// TestConfigPlace verifies origin and spacing, and that later options win.
func TestConfigPlace(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSpacing(3), WithOrigin(v3.Vec{X: 1}), WithSpacing(2))
	assert.Equal(t, v3.Vec{X: 3, Y: 2, Z: 4}, cfg.place(v3.Vec{X: 1, Y: 1, Z: 2}))
}

// TestConfigJitterIsSeeded verifies reproducible, bounded jitter.
func TestConfigJitterIsSeeded(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(7), WithJitter(0.25))
	b := newBuilderConfig(WithRand(rand.New(rand.NewSource(7))), WithJitter(0.25))
	for range 16 {
		p, q := a.place(v3.Vec{}), b.place(v3.Vec{})
		require.Equal(t, p, q)
		assert.LessOrEqual(t, max(abs(p.X), abs(p.Y), abs(p.Z)), 0.25)
	}

	// Jitter without a source leaves points on the lattice.
	c := newBuilderConfig(WithJitter(0.25))
	assert.Equal(t, v3.Vec{X: 1}, c.place(v3.Vec{X: 1}))
}

// TestOptionPanics verifies option constructors reject meaningless values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithSpacing(0) })
	assert.Panics(t, func() { WithSpacing(-1) })
	assert.Panics(t, func() { WithJitter(-0.1) })
	assert.Panics(t, func() { WithJitter(0.5) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.NotPanics(t, func() { WithJitter(0) })
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
