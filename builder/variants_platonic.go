// SPDX-License-Identifier: MIT
// Package: volmesh/builder
//
// variants_platonic.go - canonical corner and face data for Platonic cells.
//
// Design:
//   • Single source of truth for the supported shells (corners and face loops).
//   • Face loops may be listed in any winding; cellFromLoops orients them.
//   • Datasets are immutable package-level tables.

package builder

import v3 "github.com/deadsy/sdfx/vec/v3"

// PlatonicName enumerates the Platonic shells PlatonicSolid can build.
type PlatonicName int

// Enum values (stable ordering).
const (
	PlatonicTetrahedron PlatonicName = iota // V=4, F=4
	PlatonicCube                            // V=8, F=6
	PlatonicOctahedron                      // V=6, F=8
)

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case PlatonicTetrahedron:
		return "Tetrahedron"
	case PlatonicCube:
		return "Cube"
	case PlatonicOctahedron:
		return "Octahedron"
	default:
		return "Unknown"
	}
}

type platonicShell struct {
	corners []v3.Vec
	faces   [][]int
}

var platonicShells = map[PlatonicName]platonicShell{
	PlatonicTetrahedron: {
		corners: []v3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}},
		faces:   [][]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}},
	},
	PlatonicCube: {
		corners: []v3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
		},
		faces: [][]int{{0, 2, 3, 1}, {4, 5, 7, 6}, {0, 1, 5, 4}, {2, 6, 7, 3}, {0, 4, 6, 2}, {1, 3, 7, 5}},
	},
	PlatonicOctahedron: {
		corners: []v3.Vec{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		},
		// One face per octant: pick one pole of each axis.
		faces: [][]int{
			{0, 2, 4}, {0, 2, 5}, {0, 3, 4}, {0, 3, 5},
			{1, 2, 4}, {1, 2, 5}, {1, 3, 4}, {1, 3, 5},
		},
	},
}
