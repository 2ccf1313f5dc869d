// SPDX-License-Identifier: MIT
// Package: volmesh/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name) and Tetrahedron().
//
// Contract:
//   • name ∈ {PlatonicTetrahedron, PlatonicCube, PlatonicOctahedron}; unknown name → ErrOptionViolation.
//   • Adds the shell's corners in table order, then one polyhedral cell whose
//     faces are the shell's faces, oriented outward.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(V+F) for the selected shell (V≤8, F≤8).

package builder

import (
	"fmt"

	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
)

// PlatonicSolid returns a Constructor that adds one cell bounded by the
// chosen Platonic shell.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *geometry.Mesh, cfg builderConfig) error {
		// 1) Lookup canonical data (O(1) map lookup).
		shell, ok := platonicShells[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		if err := validateRand(MethodPlatonicSolid, cfg); err != nil {
			return err
		}

		// 2) Corners in table order → stable vertex handles.
		vs := addPoints(m, cfg, shell.corners)

		// 3) One loop per face; orientation is fixed by cellFromLoops.
		loops := make([][]handle.Vertex, len(shell.faces))
		for i, f := range shell.faces {
			loops[i] = pick(vs, f...)
		}
		_, err := cellFromLoops(m, cfg, MethodPlatonicSolid, loops)
		return err
	}
}

// Tetrahedron adds one tetrahedral cell with corners at the origin and the
// three unit axis points.
func Tetrahedron() Constructor {
	build := PlatonicSolid(PlatonicTetrahedron)
	return func(m *geometry.Mesh, cfg builderConfig) error {
		if err := build(m, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodTetrahedron, err)
		}
		return nil
	}
}
