// SPDX-License-Identifier: MIT
// Package: volmesh/builder
//
// impl_hexgrid.go - implementation of HexGrid(nx, ny, nz) and Hexahedron().
//
// Canonical model:
//   • An nx×ny×nz block of unit hexahedra on the integer lattice.
//   • Lattice point (i, j, l) becomes vertex base + i + (nx+1)·(j + (ny+1)·l),
//     where base is the vertex count before the constructor ran.
//   • Cells are emitted x-fastest, then y, then z; cell (i, j, l) gets
//     handle base' + i + nx·(j + ny·l).
//
// Contract:
//   • nx, ny, nz ≥ MinGridDim (else ErrTooFewCells).
//   • Interior faces are shared by the two cells on either side.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(nx·ny·nz) vertices, faces and cells.
//   • Space: O(lattice) for the vertex handle table.

package builder

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
)

// hexCorners lists the corner offsets of a unit cube; index bit 0 is x,
// bit 1 is y, bit 2 is z.
var hexCorners = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

// hexFaces lists the six quads of a unit cube by corner index.
var hexFaces = [6][4]int{
	{0, 2, 3, 1}, {4, 5, 7, 6}, // z- z+
	{0, 1, 5, 4}, {2, 6, 7, 3}, // y- y+
	{0, 4, 6, 2}, {1, 3, 7, 5}, // x- x+
}

// HexGrid returns a Constructor that builds an nx×ny×nz block of hexahedra.
func HexGrid(nx, ny, nz int) Constructor {
	return func(m *geometry.Mesh, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		for _, d := range []struct {
			name string
			n    int
		}{{"nx", nx}, {"ny", ny}, {"nz", nz}} {
			if err := validateMin(MethodHexGrid, d.name, d.n, MinGridDim); err != nil {
				return err
			}
		}
		if err := validateRand(MethodHexGrid, cfg); err != nil {
			return err
		}

		// 2) Lattice points in index order (x fastest).
		pts := make([]v3.Vec, 0, (nx+1)*(ny+1)*(nz+1))
		for l := range nz + 1 {
			for j := range ny + 1 {
				for i := range nx + 1 {
					pts = append(pts, v3.Vec{X: float64(i), Y: float64(j), Z: float64(l)})
				}
			}
		}
		vs := addPoints(m, cfg, pts)
		at := func(i, j, l int) handle.Vertex { return vs[i+(nx+1)*(j+(ny+1)*l)] }

		// 3) Cells; shared faces are found again by their vertex cycle.
		for l := range nz {
			for j := range ny {
				for i := range nx {
					loops := make([][]handle.Vertex, len(hexFaces))
					for f, quad := range hexFaces {
						loop := make([]handle.Vertex, len(quad))
						for q, c := range quad {
							o := hexCorners[c]
							loop[q] = at(i+o[0], j+o[1], l+o[2])
						}
						loops[f] = loop
					}
					if _, err := cellFromLoops(m, cfg, MethodHexGrid, loops); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// Hexahedron adds a single unit hexahedron.
func Hexahedron() Constructor { return HexGrid(1, 1, 1) }
