// SPDX-License-Identifier: MIT
// Package: volmesh/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMesh(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/volmesh/core"
	"github.com/katalvlaran/volmesh/geometry"
)

// Constructor applies a deterministic mesh mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only append entities; never delete or renumber existing ones.
//   - Preserve determinism for the same config and call order.
type Constructor func(m *geometry.Mesh, cfg builderConfig) error

// BuildMesh creates a new geometry.Mesh with kernel options mopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Constructors do not share vertices with each other. Any constructor
// error is wrapped with the context "BuildMesh: %w" and returned immediately;
// the partial mesh is dropped.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildMesh(mopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*geometry.Mesh, error) {
	// Create the mesh first so kernel options (incidences, topology type) are
	// active while constructors run.
	m := geometry.New(mopts...)

	// Resolve deterministic builder configuration (O(len(bopts))).
	cfg := newBuilderConfig(bopts...)

	// Face lookup and the cell checks stay local while constructors run; the
	// requested incidences are restored afterwards.
	vbu, ebu, fbu := m.HasVertexBottomUpIncidences(), m.HasEdgeBottomUpIncidences(), m.HasFaceBottomUpIncidences()
	m.EnableBottomUpIncidences(true)

	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	m.EnableVertexBottomUpIncidences(vbu)
	m.EnableEdgeBottomUpIncidences(ebu)
	m.EnableFaceBottomUpIncidences(fbu)
	return m, nil
}
