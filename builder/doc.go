// SPDX-License-Identifier: MIT
// Package builder provides deterministic volumetric mesh generators for
// tests, examples, benchmarks and the ovmconv tool.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMesh:        creates a geometry.Mesh and applies Constructors in order.
//     – Constructor:      a closure adding vertices, faces and cells to a mesh.
//   - Constructors:
//     – Tetrahedron:      one tetrahedral cell.
//     – Hexahedron:       one hexahedral cell (a 1×1×1 HexGrid).
//     – HexGrid:          an nx×ny×nz block of hexahedra sharing faces.
//     – TetStrip:         n tetrahedra glued face to face along a helix.
//     – FacePrism:        one polyhedral prism over a regular n-gon.
//     – PlatonicSolid:    one polyhedral cell bounded by a Platonic shell.
//   - Options (BuilderOption):
//     – WithOrigin, WithSpacing:  placement and scale of generated vertices.
//     – WithSeed, WithRand:       random source for WithJitter.
//     – WithJitter:               uniform per-component vertex perturbation.
//     – WithTopologyCheck:        validate every cell through core.CheckCell.
//
// Guarantees:
//
//   - Every cell is bounded by outward halffaces, whatever the jitter: face
//     orientation is decided geometrically against the cell's centroid.
//   - Faces shared by neighboring cells are created once and reused.
//   - Same inputs, options and seed produce identical meshes.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
package builder
