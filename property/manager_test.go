package property_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/property"
)

const (
	nameTemperature = "temperature"
	nameLabel       = "label"
)

// ManagerSuite exercises lookup, lifecycle transitions and broadcasts.
type ManagerSuite struct {
	suite.Suite
	m *property.Manager
}

func (s *ManagerSuite) SetupTest() {
	s.m = property.NewManager()
	s.m.ResizeKind(handle.KindVertex, 4)
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) TestRequestIsIdempotent() {
	p1 := property.Request[handle.VertexTag](s.m, nameTemperature, 1.5)
	p2 := property.Request[handle.VertexTag](s.m, nameTemperature, 99.0)

	require.Equal(s.T(), 4, p1.Len())
	require.Equal(s.T(), 1.5, p2.Get(3), "existing property keeps its own default")

	p1.Set(2, 7)
	require.Equal(s.T(), 7.0, p2.Get(2), "both handles share storage")
	require.True(s.T(), p1.Shared())
	require.False(s.T(), p1.Persistent())
	require.Equal(s.T(), 1, s.m.NProps(handle.KindVertex))
}

func (s *ManagerSuite) TestSameNameDifferentTypeOrKind() {
	f := property.Request[handle.VertexTag](s.m, nameLabel, 0.0)
	i := property.Request[handle.VertexTag](s.m, nameLabel, int32(0))
	c := property.Request[handle.CellTag](s.m, nameLabel, 0.0)

	f.Set(0, 3)
	require.Equal(s.T(), int32(0), i.Get(0))
	require.Equal(s.T(), 0, c.Len())
	require.Equal(s.T(), 2, s.m.NShared(handle.KindVertex))
}

func (s *ManagerSuite) TestAnonymousRequestsAreIndependent() {
	a := property.Request[handle.VertexTag](s.m, "", 0)
	b := property.Request[handle.VertexTag](s.m, "", 0)
	require.Equal(s.T(), 2, s.m.NProps(handle.KindVertex))

	a.Set(1, 42)
	require.Equal(s.T(), 42, a.Get(1))
	require.Equal(s.T(), 0, b.Get(1))
	require.False(s.T(), a.Shared())
	require.False(s.T(), b.Shared())
}

func (s *ManagerSuite) TestCreateSharedRejectsExisting() {
	_, ok := property.CreateShared[handle.VertexTag](s.m, nameTemperature, 0.0)
	require.True(s.T(), ok)

	_, ok = property.CreateShared[handle.VertexTag](s.m, nameTemperature, 0.0)
	require.False(s.T(), ok)

	_, ok = property.CreateShared[handle.VertexTag](s.m, "", 0.0)
	require.False(s.T(), ok)

	_, ok = property.CreatePersistent[handle.VertexTag](s.m, nameTemperature, 0.0)
	require.False(s.T(), ok)
}

func (s *ManagerSuite) TestCreatePersistent() {
	p, ok := property.CreatePersistent[handle.EdgeTag](s.m, nameLabel, "x")
	require.True(s.T(), ok)
	require.True(s.T(), p.Shared())
	require.True(s.T(), p.Persistent())
	require.Equal(s.T(), 1, s.m.NPersistent(handle.KindEdge))
}

func (s *ManagerSuite) TestPrivateIsInvisibleToLookup() {
	priv := property.CreatePrivate[handle.VertexTag](s.m, nameTemperature, 0.0)
	_, found := property.Find[handle.VertexTag, float64](s.m, nameTemperature)
	require.False(s.T(), found)

	shared := property.Request[handle.VertexTag](s.m, nameTemperature, 0.0)
	shared.Set(0, 1)
	require.Equal(s.T(), 0.0, priv.Get(0))
}

func (s *ManagerSuite) TestStateMachine() {
	p := property.CreatePrivate[handle.VertexTag](s.m, nameTemperature, 0.0)

	err := s.m.SetPersistent(p, true)
	require.ErrorIs(s.T(), err, property.ErrPersistentNeedsShared)
	require.False(s.T(), p.Shared())
	require.False(s.T(), p.Persistent())

	require.NoError(s.T(), s.m.SetShared(p, true))
	require.NoError(s.T(), s.m.SetPersistent(p, true))
	require.True(s.T(), p.Persistent())

	found, ok := property.Find[handle.VertexTag, float64](s.m, nameTemperature)
	require.True(s.T(), ok)
	require.Equal(s.T(), p.Array(), found.Array())

	require.NoError(s.T(), s.m.SetPersistent(p, false))
	require.True(s.T(), p.Shared())

	require.NoError(s.T(), s.m.SetPersistent(p, true))
	require.NoError(s.T(), s.m.SetShared(p, false))
	require.False(s.T(), p.Persistent(), "unsharing clears persistence")
	_, ok = property.Find[handle.VertexTag, float64](s.m, nameTemperature)
	require.False(s.T(), ok)
}

func (s *ManagerSuite) TestSharedNeedsNameAndUniqueness() {
	anon := property.CreatePrivate[handle.VertexTag](s.m, "", 0.0)
	require.ErrorIs(s.T(), s.m.SetShared(anon, true), property.ErrSharedNeedsName)

	property.Request[handle.VertexTag](s.m, nameTemperature, 0.0)
	dup := property.CreatePrivate[handle.VertexTag](s.m, nameTemperature, 0.0)
	require.ErrorIs(s.T(), s.m.SetShared(dup, true), property.ErrSharedNameCollision)
	require.False(s.T(), dup.Shared())
}

func (s *ManagerSuite) TestForeignAndNil() {
	other := property.NewManager()
	p := property.Request[handle.VertexTag](other, nameTemperature, 0.0)
	require.ErrorIs(s.T(), s.m.SetShared(p, false), property.ErrForeignProperty)

	var zero property.VertexProperty[float64]
	require.ErrorIs(s.T(), s.m.SetShared(zero, true), property.ErrNilProperty)
}

func (s *ManagerSuite) TestBroadcasts() {
	p := property.Request[handle.VertexTag](s.m, nameTemperature, -1)
	for i := range 4 {
		p.Set(handle.Vertex(i), i*10)
	}

	s.m.PushBackKind(handle.KindVertex)
	require.Equal(s.T(), []int{0, 10, 20, 30, -1}, p.Values())

	s.m.SwapKind(handle.KindVertex, 0, 4)
	require.Equal(s.T(), []int{-1, 10, 20, 30, 0}, p.Values())

	s.m.DeleteKind(handle.KindVertex, 1)
	require.Equal(s.T(), []int{-1, 20, 30, 0}, p.Values())

	s.m.CompactKind(handle.KindVertex, []bool{true, false, true, false})
	require.Equal(s.T(), []int{-1, 30}, p.Values())
	require.Equal(s.T(), 2, s.m.Size(handle.KindVertex))

	s.m.ResizeKind(handle.KindVertex, 3)
	require.Equal(s.T(), []int{-1, 30, -1}, p.Values())

	late := property.Request[handle.VertexTag](s.m, "late", 5)
	require.Equal(s.T(), []int{5, 5, 5}, late.Values(), "new properties match the current size")

	s.m.ClearKind(handle.KindVertex)
	require.Equal(s.T(), 0, p.Len())
}

func (s *ManagerSuite) TestMeshKindHasOneSlot() {
	p := property.Request[handle.MeshTag](s.m, "author", "nobody")
	require.Equal(s.T(), 1, p.Len())
	p.Set(handle.MeshHandle, "someone")
	require.Equal(s.T(), "someone", p.Get(handle.MeshHandle))
}

func (s *ManagerSuite) TestReleaseDetaches() {
	p := property.Request[handle.VertexTag](s.m, nameTemperature, 2.0)
	s.m.Release()

	require.True(s.T(), p.Detached())
	require.Equal(s.T(), 2.0, p.Get(0), "detached properties keep their values")

	s.m.ResizeKind(handle.KindVertex, 10)
	require.Equal(s.T(), 4, p.Len(), "detached properties stop following the mesh")
	require.ErrorIs(s.T(), s.m.SetShared(p, false), property.ErrDetached)
}
