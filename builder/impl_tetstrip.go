// SPDX-License-Identifier: MIT
// Package: volmesh/builder
//
// impl_tetstrip.go - implementation of TetStrip(n).
//
// Canonical model:
//   • n+3 vertices on a helix; tetrahedron k spans vertices k..k+3.
//   • Consecutive tetrahedra share the triangle (k+1, k+2, k+3).
//
// Contract:
//   • n ≥ MinStripCells (else ErrTooFewCells).
//   • Vertices are added in helix order, cells in strip order.
//
// Complexity: O(n) vertices, faces and cells.

package builder

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
)

// tetFaces lists the four triangles of a tetrahedron by local corner.
var tetFaces = [4][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}

// TetStrip returns a Constructor that glues n tetrahedra face to face.
func TetStrip(n int) Constructor {
	return func(m *geometry.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodTetStrip, "n", n, MinStripCells); err != nil {
			return err
		}
		if err := validateRand(MethodTetStrip, cfg); err != nil {
			return err
		}

		pts := make([]v3.Vec, n+3)
		for k := range pts {
			a := helixTurn * float64(k)
			pts[k] = v3.Vec{X: math.Cos(a), Y: math.Sin(a), Z: helixRise * float64(k)}
		}
		vs := addPoints(m, cfg, pts)

		for k := range n {
			loops := make([][]handle.Vertex, len(tetFaces))
			for f, tri := range tetFaces {
				loops[f] = pick(vs, k+tri[0], k+tri[1], k+tri[2])
			}
			if _, err := cellFromLoops(m, cfg, MethodTetStrip, loops); err != nil {
				return err
			}
		}
		return nil
	}
}
