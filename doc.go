// Package volmesh is an in-memory library for polyhedral volume meshes:
// vertices, edges, faces and cells with full incidence queries, typed
// per-entity properties and a compact binary file format.
//
// What is in the box?
//
//	• Typed handles: Vertex, Edge, HalfEdge, Face, HalfFace, Cell, Mesh
//	• Properties: generic per-entity columns that follow every add, delete,
//	  swap and garbage collection, shared by name and persisted on request
//	• Topology kernel: top-down records, optional bottom-up incidences,
//	  deferred deletion, boundary classification and index swaps
//	• Circulators: lap-bounded cursors and range-over-func sequences over
//	  every local neighborhood (vertex→cells, cell→cells, ...)
//	• Geometry: vertex positions, barycenters, normals and bounding boxes
//	• ovmb: chunked little-endian file codec with a pluggable type registry
//	• Builders: hex grids, tetrahedral strips, prisms and platonic solids
//
// Package layout:
//
//	handle/    - typed entity handles and halfedge/halfface arithmetic
//	property/  - property manager, typed views and lifecycle
//	core/      - topology kernel, circulators, BFS over cells
//	geometry/  - kernel + vertex positions
//	ovmb/      - binary reader/writer and codec registry
//	builder/   - deterministic mesh generators
//	cmd/ovmconv/ - convert and inspect .ovmb files from the shell
//
// Quick ASCII example, two hexahedra sharing one face:
//
//	  +-----+-----+
//	 /     /     /|
//	+-----+-----+ |
//	|     |     | +
//	|  C0 |  C1 |/
//	+-----+-----+
//
// has 12 vertices, 20 edges, 11 faces and 2 cells; the shared face is the
// only interior one.
//
//	go get github.com/katalvlaran/volmesh
package volmesh
