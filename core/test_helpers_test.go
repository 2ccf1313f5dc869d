// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the kernel tests.
//
// Purpose:
//   - Build small, deterministic meshes (one tetrahedron, hex grids) through
//     the public API only.
//   - Snapshot incidence data so two kernels can be compared.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volmesh/core"
	"github.com/katalvlaran/volmesh/handle"
)

// Tetrahedron face loops, listed so that halfface 0 of every face points out
// of the cell.
var tetLoops = [4][3]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}}

// Outward quad loops of a unit hex, by corner offset (dx, dy, dz).
var hexLoops = [6][4][3]int{
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}, // z-
	{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, // z+
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // y-
	{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}, // y+
	{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, // x-
	{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, // x+
}

// newTet builds a single tetrahedron and returns its cell.
func newTet(t testing.TB, opts ...core.Option) (*core.Kernel, handle.Cell) {
	t.Helper()
	k := core.New(opts...)
	vs := make([]handle.Vertex, 4)
	for i := range vs {
		vs[i] = k.AddVertex()
	}
	hfs := make([]handle.HalfFace, 0, 4)
	for _, loop := range tetLoops {
		f := k.AddFaceFromVertices([]handle.Vertex{vs[loop[0]], vs[loop[1]], vs[loop[2]]})
		require.True(t, f.IsValid())
		hfs = append(hfs, handle.HalfFaceOf(f, 0))
	}
	c := k.AddCell(hfs, true)
	require.True(t, c.IsValid())
	return k, c
}

// halfFaceOf returns the halfface running through vs in order, creating the
// face if it does not exist yet.
func halfFaceOf(t testing.TB, k *core.Kernel, vs []handle.Vertex) handle.HalfFace {
	t.Helper()
	if hf := k.FindHalfFaceFromVertices(vs); hf.IsValid() {
		return hf
	}
	f := k.AddFaceFromVertices(vs)
	require.True(t, f.IsValid())
	return handle.HalfFaceOf(f, 0)
}

// newHexGrid builds an nx×ny×nz block of unit hexahedra. Vertex (i, j, l)
// has index i + (nx+1)*(j + (ny+1)*l).
func newHexGrid(t testing.TB, nx, ny, nz int, opts ...core.Option) *core.Kernel {
	t.Helper()
	k := core.New(opts...)
	for range (nx + 1) * (ny + 1) * (nz + 1) {
		k.AddVertex()
	}
	at := func(i, j, l int) handle.Vertex {
		return handle.Vertex(i + (nx+1)*(j+(ny+1)*l))
	}
	for l := range nz {
		for j := range ny {
			for i := range nx {
				hfs := make([]handle.HalfFace, 0, 6)
				for _, loop := range hexLoops {
					vs := make([]handle.Vertex, 4)
					for n, d := range loop {
						vs[n] = at(i+d[0], j+d[1], l+d[2])
					}
					hfs = append(hfs, halfFaceOf(t, k, vs))
				}
				c := k.AddCell(hfs, true)
				require.True(t, c.IsValid())
			}
		}
	}
	return k
}

// incidenceSnapshot captures every bottom-up incidence of k.
type incidenceSnapshot struct {
	out  [][]handle.HalfEdge
	fans [][]handle.HalfFace
	cell []handle.Cell
}

func snapshot(k *core.Kernel) incidenceSnapshot {
	var s incidenceSnapshot
	for v := range k.Vertices() {
		s.out = append(s.out, append([]handle.HalfEdge{}, k.VertexOHalfEdges(v).Slice()...))
	}
	for he := range k.HalfEdges() {
		s.fans = append(s.fans, append([]handle.HalfFace{}, k.HalfEdgeHalfFaces(he).Slice()...))
	}
	for hf := range k.HalfFaces() {
		s.cell = append(s.cell, k.IncidentCell(hf))
	}
	return s
}

// collect drains a circulator lap into a slice.
func collect[T handle.Tag](c core.Circulator[T]) []handle.Handle[T] {
	var out []handle.Handle[T]
	for h := range c.All() {
		out = append(out, h)
	}
	return out
}
