// SPDX-License-Identifier: MIT
// Package core_test verifies construction and topology checks.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volmesh/core"
	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/property"
)

func TestKernel_AddVertexGrowsProperties(t *testing.T) {
	k := core.New()
	p := property.Request[handle.VertexTag](k.Props(), "weight", 0.5)

	for range 3 {
		k.AddVertex()
	}
	require.Equal(t, 3, k.NVertices())
	require.Equal(t, 3, p.Len())
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, p.Values())
}

func TestKernel_AddEdgeDeduplicates(t *testing.T) {
	for _, bu := range []bool{false, true} {
		k := core.New(core.WithVertexBottomUp(bu))
		a, b := k.AddVertex(), k.AddVertex()

		e := k.AddEdge(a, b, false)
		require.True(t, e.IsValid())
		require.Equal(t, e, k.AddEdge(a, b, false), "same direction")
		require.Equal(t, e, k.AddEdge(b, a, false), "reverse direction")
		require.Equal(t, 1, k.NEdges())

		dup := k.AddEdge(a, b, true)
		require.NotEqual(t, e, dup)
		require.Equal(t, 2, k.NEdges())
		require.Equal(t, 4, k.Props().Size(handle.KindHalfEdge))
	}
}

func TestKernel_AddEdgeRejects(t *testing.T) {
	k := core.New()
	a := k.AddVertex()

	require.False(t, k.AddEdge(a, a, false).IsValid(), "self loop")
	require.False(t, k.AddEdge(a, handle.Vertex(7), false).IsValid(), "out of range")
	require.False(t, k.AddEdge(handle.InvalidVertex, a, false).IsValid(), "invalid")
	require.Zero(t, k.NEdges())
}

func TestKernel_HalfEdgeDirections(t *testing.T) {
	k := core.New()
	a, b := k.AddVertex(), k.AddVertex()
	e := k.AddEdge(a, b, false)

	he0, he1 := handle.HalfEdgeOf(e, 0), handle.HalfEdgeOf(e, 1)
	assert.Equal(t, a, k.FromVertex(he0))
	assert.Equal(t, b, k.ToVertex(he0))
	assert.Equal(t, b, k.FromVertex(he1))
	assert.Equal(t, a, k.ToVertex(he1))
	assert.Equal(t, he1, k.FindHalfEdge(b, a))
	assert.False(t, k.FindHalfEdge(a, a).IsValid())
}

func TestKernel_AddFaceTopologyCheck(t *testing.T) {
	k := core.New()
	v := []handle.Vertex{k.AddVertex(), k.AddVertex(), k.AddVertex(), k.AddVertex()}
	e01 := k.AddEdge(v[0], v[1], false)
	e12 := k.AddEdge(v[1], v[2], false)
	e20 := k.AddEdge(v[2], v[0], false)
	e23 := k.AddEdge(v[2], v[3], false)

	// Stage 1: rejected inputs leave the mesh untouched.
	open := []handle.HalfEdge{handle.HalfEdgeOf(e01, 0), handle.HalfEdgeOf(e12, 0), handle.HalfEdgeOf(e23, 0)}
	require.ErrorIs(t, k.CheckFace(open), core.ErrOpenFace)
	require.False(t, k.AddFace(open, true).IsValid())
	require.ErrorIs(t, k.CheckFace(open[:2]), core.ErrDegenerateFace)
	require.ErrorIs(t, k.CheckFace([]handle.HalfEdge{0, 2, 99}), core.ErrInvalidHandle)
	require.Zero(t, k.NFaces())
	require.Zero(t, k.Props().Size(handle.KindHalfFace))

	// Stage 2: a closed loop is accepted.
	tri := []handle.HalfEdge{handle.HalfEdgeOf(e01, 0), handle.HalfEdgeOf(e12, 0), handle.HalfEdgeOf(e20, 0)}
	f := k.AddFace(tri, true)
	require.True(t, f.IsValid())
	require.Equal(t, 2, k.NHalfFaces())

	// Stage 3: halfface 1 walks the loop backwards over opposite halfedges.
	back := k.HalfFace(handle.HalfFaceOf(f, 1))
	assert.Equal(t, []handle.HalfEdge{
		handle.HalfEdgeOf(e20, 1), handle.HalfEdgeOf(e12, 1), handle.HalfEdgeOf(e01, 1),
	}, back)
	assert.Equal(t, handle.HalfFaceOf(f, 1), k.FindHalfFace(back))
	assert.Equal(t, handle.HalfFaceOf(f, 0), k.FindHalfFaceFromVertices([]handle.Vertex{v[1], v[2], v[0]}))
}

func TestKernel_AddFaceFromVerticesReusesEdges(t *testing.T) {
	k := core.New(core.WithBottomUpIncidences(true))
	v := []handle.Vertex{k.AddVertex(), k.AddVertex(), k.AddVertex(), k.AddVertex()}

	require.True(t, k.AddFaceFromVertices([]handle.Vertex{v[0], v[1], v[2]}).IsValid())
	require.True(t, k.AddFaceFromVertices([]handle.Vertex{v[0], v[2], v[3]}).IsValid())
	require.Equal(t, 5, k.NEdges(), "shared edge v0-v2 created once")

	require.False(t, k.AddFaceFromVertices(v[:2]).IsValid())
	require.False(t, k.AddFaceFromVertices([]handle.Vertex{v[0], v[0], v[1]}).IsValid())
	require.Equal(t, 2, k.NFaces())
}

func TestKernel_CheckCell(t *testing.T) {
	k, c := newTet(t)
	hfs := k.Cell(c).HalfFaces

	// A second cell on the same halffaces is rejected.
	require.ErrorIs(t, k.CheckCell(hfs), core.ErrHalfFaceInUse)
	require.False(t, k.AddCell(hfs, true).IsValid())
	require.Equal(t, 1, k.NCells())

	// The opposite side is a valid (inverted) cell.
	opp := make([]handle.HalfFace, len(hfs))
	for i, hf := range hfs {
		opp[i] = handle.Opposite(hf)
	}
	require.NoError(t, k.CheckCell(opp))

	require.ErrorIs(t, k.CheckCell(nil), core.ErrEmptyCell)
	require.ErrorIs(t, k.CheckCell(opp[:3]), core.ErrOpenCell)
	require.ErrorIs(t, k.CheckCell([]handle.HalfFace{opp[0], hfs[0]}), core.ErrDuplicateFace)
	require.ErrorIs(t, k.CheckCell([]handle.HalfFace{opp[0], 999}), core.ErrInvalidHandle)
}

func TestKernel_CheckCellDisconnected(t *testing.T) {
	// Two tetrahedra sharing nothing, offered as one cell.
	k := core.New()
	var hfs []handle.HalfFace
	for range 2 {
		vs := make([]handle.Vertex, 4)
		for i := range vs {
			vs[i] = k.AddVertex()
		}
		for _, loop := range tetLoops {
			f := k.AddFaceFromVertices([]handle.Vertex{vs[loop[0]], vs[loop[1]], vs[loop[2]]})
			hfs = append(hfs, handle.HalfFaceOf(f, 0))
		}
	}
	require.ErrorIs(t, k.CheckCell(hfs), core.ErrDisconnectedCell)
	require.NoError(t, k.CheckCell(hfs[:4]))
}

func TestKernel_TopologyTypeValence(t *testing.T) {
	k := core.New(core.WithTopologyType(core.TopoHexahedral))
	require.Equal(t, core.TopoHexahedral, k.TopologyType())

	v := []handle.Vertex{k.AddVertex(), k.AddVertex(), k.AddVertex()}
	hes := make([]handle.HalfEdge, 3)
	for i := range 3 {
		e := k.AddEdge(v[i], v[(i+1)%3], false)
		hes[i] = handle.HalfEdgeOf(e, 0)
	}
	require.ErrorIs(t, k.CheckFace(hes), core.ErrValence)
	require.False(t, k.AddFace(hes, true).IsValid())
	require.True(t, k.AddFace(hes, false).IsValid(), "unchecked adds trust the caller")

	tk, _ := newTet(t)
	require.Equal(t, core.TopoPolyhedral, tk.TopologyType())
	require.Panics(t, func() { core.WithTopologyType(core.TopoType(9)) })
}

func TestKernel_HexGridCounts(t *testing.T) {
	k := newHexGrid(t, 2, 1, 1)
	assert.Equal(t, 12, k.NVertices())
	assert.Equal(t, 20, k.NEdges())
	assert.Equal(t, 11, k.NFaces())
	assert.Equal(t, 2, k.NCells())
}
