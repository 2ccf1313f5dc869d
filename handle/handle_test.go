package handle_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volmesh/handle"
)

func TestHandle_Validity(t *testing.T) {
	require.False(t, handle.InvalidVertex.IsValid())
	require.False(t, handle.InvalidHalfFace.IsValid())
	require.True(t, handle.Vertex(0).IsValid())
	require.Equal(t, 7, handle.Cell(7).Idx())
	require.Equal(t, uint32(7), handle.Cell(7).UIdx())
}

func TestHandle_Kind(t *testing.T) {
	require.Equal(t, handle.KindVertex, handle.Vertex(1).Kind())
	require.Equal(t, handle.KindHalfEdge, handle.HalfEdge(1).Kind())
	require.Equal(t, handle.KindMesh, handle.MeshHandle.Kind())
	require.Equal(t, "halfface", handle.KindHalfFace.String())
	require.Equal(t, "VH3", handle.Vertex(3).String())
	require.Equal(t, "HFH-1", handle.InvalidHalfFace.String())
}

// TestHandle_HalfArithmetic checks the involution and round-trip laws of the
// half-entity encoding over a range of indices.
func TestHandle_HalfArithmetic(t *testing.T) {
	for i := 0; i < 64; i++ {
		he := handle.HalfEdge(i)
		require.Equal(t, he, handle.Opposite(handle.Opposite(he)))
		require.NotEqual(t, he, handle.Opposite(he))
		require.Equal(t, he, handle.HalfEdgeOf(handle.EdgeOf(he), handle.Sub(he)))
		require.Equal(t, handle.EdgeOf(he), handle.EdgeOf(handle.Opposite(he)))

		hf := handle.HalfFace(i)
		require.Equal(t, hf, handle.Opposite(handle.Opposite(hf)))
		require.Equal(t, hf, handle.HalfFaceOf(handle.FaceOf(hf), handle.Sub(hf)))
	}

	require.Equal(t, handle.HalfEdge(6), handle.HalfEdgeOf(3, 0))
	require.Equal(t, handle.HalfEdge(7), handle.HalfEdgeOf(3, 1))
	require.Equal(t, handle.HalfFace(9), handle.HalfFaceOf(4, 1))
}

func TestHandle_InvalidPropagates(t *testing.T) {
	require.Equal(t, handle.InvalidEdge, handle.EdgeOf(handle.InvalidHalfEdge))
	require.Equal(t, handle.InvalidFace, handle.FaceOf(handle.InvalidHalfFace))
	require.Equal(t, handle.InvalidHalfEdge, handle.HalfEdgeOf(handle.InvalidEdge, 1))
	require.Equal(t, handle.InvalidHalfFace, handle.Opposite(handle.InvalidHalfFace))
}

func TestHandle_Compare(t *testing.T) {
	hs := []handle.Cell{4, handle.InvalidCell, 0, 2}
	slices.SortFunc(hs, handle.Compare[handle.CellTag])
	require.Equal(t, []handle.Cell{handle.InvalidCell, 0, 2, 4}, hs)
	require.Zero(t, handle.Compare(handle.Vertex(3), handle.Vertex(3)))
	require.Positive(t, handle.Compare(handle.Face(1), handle.Face(0)))
}
