// SPDX-License-Identifier: MIT
//
// File: mesh.go
// Role: Mesh type, position access and position-aware copies.

package geometry

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/volmesh/core"
	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/property"
)

// PositionName is the vertex property that stores coordinates.
const PositionName = "ovm:position"

// Mesh is a topology kernel with per-vertex positions.
type Mesh struct {
	*core.Kernel
	pos property.VertexProperty[v3.Vec]
}

// New returns an empty mesh configured by opts.
func New(opts ...core.Option) *Mesh {
	return Wrap(core.New(opts...))
}

// Wrap attaches positions to an existing kernel. An "ovm:position" property
// already present on k is reused; otherwise one is created with every
// existing vertex at the origin. The property is made persistent either way;
// Wrap panics if the manager refuses that.
func Wrap(k *core.Kernel) *Mesh {
	pos := property.Request[handle.VertexTag](k.Props(), PositionName, v3.Vec{})
	if err := k.Props().SetPersistent(pos, true); err != nil {
		panic(fmt.Sprintf("geometry: Wrap: %v", err))
	}
	return &Mesh{Kernel: k, pos: pos}
}

// AddVertex appends a vertex at p.
func (m *Mesh) AddVertex(p v3.Vec) handle.Vertex {
	v := m.Kernel.AddVertex()
	m.pos.Set(v, p)
	return v
}

// Vertex returns the position of v.
func (m *Mesh) Vertex(v handle.Vertex) v3.Vec { return m.pos.Get(v) }

// SetVertex moves v to p.
func (m *Mesh) SetVertex(v handle.Vertex, p v3.Vec) { m.pos.Set(v, p) }

// Positions returns the position property itself.
func (m *Mesh) Positions() property.VertexProperty[v3.Vec] { return m.pos }

// Clone deep-copies topology, positions and every other persistent property.
func (m *Mesh) Clone() *Mesh {
	return Wrap(m.Kernel.Clone())
}

// Assign replaces m's contents with a copy of src. Positions are carried
// over; see core.Kernel.Assign for what happens to other properties of m.
func (m *Mesh) Assign(src *Mesh) {
	if m == src {
		return
	}
	m.Kernel.Assign(src.Kernel)
}

// Barycenter returns the mean position of the distinct vertices of c.
func (m *Mesh) Barycenter(c handle.Cell) v3.Vec {
	var sum v3.Vec
	n := 0
	for v := range m.CellVertices(c).All() {
		sum = sum.Add(m.pos.Get(v))
		n++
	}
	if n == 0 {
		return sum
	}
	return sum.DivScalar(float64(n))
}

// FaceBarycenter returns the mean position of the corners of f.
func (m *Mesh) FaceBarycenter(f handle.Face) v3.Vec {
	var sum v3.Vec
	n := 0
	for v := range m.FaceVertices(f).All() {
		sum = sum.Add(m.pos.Get(v))
		n++
	}
	if n == 0 {
		return sum
	}
	return sum.DivScalar(float64(n))
}

// EdgeLength returns the distance between the end points of e.
func (m *Mesh) EdgeLength(e handle.Edge) float64 {
	rec := m.Edge(e)
	return m.pos.Get(rec.To).Sub(m.pos.Get(rec.From)).Length()
}

// BoundingBox returns the axis-aligned bounds of all live vertices. ok is
// false for a mesh without live vertices.
func (m *Mesh) BoundingBox() (lo, hi v3.Vec, ok bool) {
	lo = v3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = v3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for v := range m.Vertices() {
		p := m.pos.Get(v)
		lo, hi = lo.Min(p), hi.Max(p)
		ok = true
	}
	if !ok {
		return v3.Vec{}, v3.Vec{}, false
	}
	return lo, hi, true
}
