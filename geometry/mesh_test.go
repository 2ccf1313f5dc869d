// SPDX-License-Identifier: MIT
// Package geometry_test verifies that positions follow the kernel's
// structural changes.

package geometry_test

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volmesh/core"
	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/property"
)

// unitCube builds one hexahedron with corners at the unit cube.
func unitCube(t *testing.T, opts ...core.Option) (*geometry.Mesh, handle.Cell) {
	t.Helper()
	m := geometry.New(opts...)
	for l := range 2 {
		for j := range 2 {
			for i := range 2 {
				m.AddVertex(v3.Vec{X: float64(i), Y: float64(j), Z: float64(l)})
			}
		}
	}
	loops := [][]handle.Vertex{
		{0, 2, 3, 1}, {4, 5, 7, 6},
		{0, 1, 5, 4}, {2, 6, 7, 3},
		{0, 4, 6, 2}, {1, 3, 7, 5},
	}
	hfs := make([]handle.HalfFace, 0, len(loops))
	for _, loop := range loops {
		f := m.AddFaceFromVertices(loop)
		require.True(t, f.IsValid())
		hfs = append(hfs, handle.HalfFaceOf(f, 0))
	}
	c := m.AddCell(hfs, true)
	require.True(t, c.IsValid())
	return m, c
}

func TestMesh_AddVertexStoresPosition(t *testing.T) {
	m := geometry.New()
	p := v3.Vec{X: 4.97203, Y: 0.504645, Z: 0.913112}
	v := m.AddVertex(p)

	assert.Equal(t, p, m.Vertex(v))
	assert.Equal(t, 1, m.Positions().Len())
	assert.True(t, m.Positions().Persistent())
	assert.Equal(t, geometry.PositionName, m.Positions().Name())

	m.SetVertex(v, v3.Vec{X: 1})
	assert.Equal(t, v3.Vec{X: 1}, m.Vertex(v))

	bare := m.Kernel.AddVertex()
	assert.Equal(t, v3.Vec{}, m.Vertex(bare), "vertices added without a position sit at the origin")
}

func TestMesh_WrapReusesPosition(t *testing.T) {
	k := core.New()
	k.AddVertex()
	pos := property.Request[handle.VertexTag](k.Props(), geometry.PositionName, v3.Vec{})
	pos.Set(0, v3.Vec{Z: 2})

	m := geometry.Wrap(k)
	assert.Equal(t, v3.Vec{Z: 2}, m.Vertex(0))
	assert.True(t, pos.Persistent())
}

func TestMesh_WrapAfterRelease(t *testing.T) {
	m := geometry.New()
	m.AddVertex(v3.Vec{X: 1})
	old := m.Positions()
	m.Release()
	require.True(t, old.Detached())

	var again *geometry.Mesh
	require.NotPanics(t, func() { again = geometry.Wrap(m.Kernel) })
	assert.True(t, again.Positions().Persistent())
	assert.False(t, again.Positions().Detached())
	assert.Equal(t, v3.Vec{}, again.Vertex(0), "a fresh position property starts at the origin")
}

func TestMesh_Barycenter(t *testing.T) {
	m, c := unitCube(t)
	assert.Equal(t, v3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, m.Barycenter(c))
	assert.Equal(t, v3.Vec{X: 0.5, Y: 0.5}, m.FaceBarycenter(0))
	assert.InDelta(t, 1.0, m.EdgeLength(0), 1e-12)
}

func TestMesh_BoundingBox(t *testing.T) {
	_, _, ok := geometry.New().BoundingBox()
	assert.False(t, ok)

	m, _ := unitCube(t)
	far := m.AddVertex(v3.Vec{X: 10, Y: -3, Z: 0})
	lo, hi, ok := m.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, v3.Vec{X: 0, Y: -3, Z: 0}, lo)
	assert.Equal(t, v3.Vec{X: 10, Y: 1, Z: 1}, hi)

	m.DeleteVertex(far)
	lo, hi, _ = m.BoundingBox()
	assert.Equal(t, v3.Vec{}, lo, "deleted vertices do not count")
	assert.Equal(t, v3.Vec{X: 1, Y: 1, Z: 1}, hi)
}

func TestMesh_PositionsSurviveGarbageCollection(t *testing.T) {
	m, _ := unitCube(t)
	want := m.Vertex(7)

	m.DeleteVertex(0)
	m.CollectGarbage()

	require.Equal(t, 7, m.NVertices())
	assert.Equal(t, 7, m.Positions().Len())
	assert.Equal(t, want, m.Vertex(6), "vertex 7 moved down one slot")
	assert.Equal(t, 0, m.NCells())
}

func TestMesh_SwapMovesPosition(t *testing.T) {
	m, _ := unitCube(t)
	a, b := m.Vertex(1), m.Vertex(6)
	m.SwapVertexIndices(1, 6)
	assert.Equal(t, b, m.Vertex(1))
	assert.Equal(t, a, m.Vertex(6))
}

func TestMesh_CloneIsIndependent(t *testing.T) {
	m, c := unitCube(t)
	cp := m.Clone()

	require.Equal(t, m.NCells(), cp.NCells())
	assert.Equal(t, m.Positions().Values(), cp.Positions().Values())
	assert.Equal(t, m.Barycenter(c), cp.Barycenter(c))

	cp.SetVertex(0, v3.Vec{X: -1})
	assert.Equal(t, v3.Vec{}, m.Vertex(0))
	cp.AddVertex(v3.Vec{})
	assert.Equal(t, 8, m.NVertices())
	assert.Equal(t, 9, cp.Positions().Len())
}

func TestMesh_AssignCarriesPositions(t *testing.T) {
	src, _ := unitCube(t)
	dst := geometry.New()
	dst.AddVertex(v3.Vec{X: 42})
	held := dst.Positions()

	dst.Assign(src)

	require.Equal(t, src.NVertices(), dst.NVertices())
	assert.Equal(t, src.Positions().Values(), held.Values(), "the existing position property receives the values")
	assert.Equal(t, 1, dst.Props().NPersistent(handle.KindVertex))
}
