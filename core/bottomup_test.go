// SPDX-License-Identifier: MIT
// Package core_test verifies bottom-up incidences and fan order.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volmesh/core"
	"github.com/katalvlaran/volmesh/handle"
)

func TestKernel_BottomUpDefaultsOff(t *testing.T) {
	k := core.New()
	assert.False(t, k.HasVertexBottomUpIncidences())
	assert.False(t, k.HasEdgeBottomUpIncidences())
	assert.False(t, k.HasFaceBottomUpIncidences())

	k.EnableBottomUpIncidences(true)
	assert.True(t, k.HasFullBottomUpIncidences())
}

func TestKernel_BottomUpRecomputeIsIdempotent(t *testing.T) {
	// Stage 1: one mesh maintains incidences throughout, one computes them late.
	live := newHexGrid(t, 2, 2, 1, core.WithBottomUpIncidences(true))
	late := newHexGrid(t, 2, 2, 1)
	late.EnableBottomUpIncidences(true)
	require.Equal(t, snapshot(live), snapshot(late))

	// Stage 2: disable and re-enable, one index at a time.
	late.EnableVertexBottomUpIncidences(false)
	late.EnableEdgeBottomUpIncidences(false)
	late.EnableFaceBottomUpIncidences(false)
	require.False(t, late.HasVertexBottomUpIncidences())

	late.EnableFaceBottomUpIncidences(true)
	late.EnableEdgeBottomUpIncidences(true)
	late.EnableVertexBottomUpIncidences(true)
	require.Equal(t, snapshot(live), snapshot(late))
}

func TestKernel_IncidentCell(t *testing.T) {
	k, c := newTet(t, core.WithBottomUpIncidences(true))
	for _, hf := range k.Cell(c).HalfFaces {
		assert.Equal(t, c, k.IncidentCell(hf))
		assert.False(t, k.IncidentCell(handle.Opposite(hf)).IsValid())
	}
	for v := range k.Vertices() {
		assert.Equal(t, 3, k.ValenceVertex(v))
	}
	for e := range k.Edges() {
		assert.Equal(t, 2, k.ValenceEdge(e))
	}
	assert.Equal(t, 4, k.ValenceCell(c))
	assert.Equal(t, 3, k.ValenceFace(0))
}

func TestKernel_FanOrderAroundInteriorEdge(t *testing.T) {
	k := newHexGrid(t, 2, 2, 1, core.WithBottomUpIncidences(true))

	// The vertical edge through the grid's center vertex (1,1,0)-(1,1,1).
	center, above := handle.Vertex(4), handle.Vertex(4+9)
	he := k.FindHalfEdge(center, above)
	require.True(t, he.IsValid())
	require.False(t, k.IsBoundaryEdge(handle.EdgeOf(he)))

	fan := k.HalfEdgeHalfFaces(he).Slice()
	require.Len(t, fan, 4)
	for i, hf := range fan {
		next := fan[(i+1)%len(fan)]
		assert.Equal(t, k.IncidentCell(hf), k.IncidentCell(handle.Opposite(next)),
			"consecutive halffaces %s, %s share a cell", hf, next)
	}
	assert.Equal(t, fan[0], minHalfFace(fan), "closed fans start at their smallest halfface")

	cells := collect(k.HalfEdgeCells(he))
	assert.Len(t, cells, 4)

	// The opposite halfedge sees the mirrored fan.
	mirror := k.HalfEdgeHalfFaces(handle.Opposite(he)).Slice()
	for i, hf := range fan {
		assert.Equal(t, handle.Opposite(hf), mirror[len(mirror)-1-i])
	}
}

func TestKernel_FanOrderAtBoundaryEdge(t *testing.T) {
	k := newHexGrid(t, 2, 1, 1, core.WithBottomUpIncidences(true))

	// Bottom edge between the two hexes: (1,0,0)-(1,1,0).
	he := k.FindHalfEdge(1, 4)
	require.True(t, he.IsValid())
	require.True(t, k.IsBoundaryEdge(handle.EdgeOf(he)))

	fan := k.HalfEdgeHalfFaces(he).Slice()
	require.Len(t, fan, 3)
	assert.False(t, k.IncidentCell(handle.Opposite(fan[0])).IsValid(), "fan starts at the boundary")
	assert.False(t, k.IncidentCell(fan[len(fan)-1]).IsValid(), "fan ends at the boundary")
	for i := 0; i+1 < len(fan); i++ {
		assert.Equal(t, k.IncidentCell(fan[i]), k.IncidentCell(handle.Opposite(fan[i+1])))
	}
}

func TestKernel_QueriesWithoutIncidences(t *testing.T) {
	k, c := newTet(t)

	// Soft mode: zero answers, no panic.
	assert.False(t, k.IncidentCell(0).IsValid())
	assert.False(t, k.IsBoundaryFace(0))
	assert.Zero(t, k.ValenceVertex(0))
	assert.False(t, k.VertexCells(0).Valid())
	assert.Empty(t, collect(k.CellCells(c)))

	// Assertion mode panics on contract violations, but circulators stay soft.
	strict, _ := newTet(t, core.WithAssertions(true))
	assert.Panics(t, func() { strict.IncidentCell(0) })
	assert.Panics(t, func() { strict.DeleteVertex(99) })
	assert.NotPanics(t, func() { strict.VertexVertices(0) })
}

func minHalfFace(hfs []handle.HalfFace) handle.HalfFace {
	m := hfs[0]
	for _, hf := range hfs[1:] {
		if hf < m {
			m = hf
		}
	}
	return m
}
