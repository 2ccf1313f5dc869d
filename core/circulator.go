// SPDX-License-Identifier: MIT
//
// File: circulator.go
// Role: Circulators: the entities directly adjacent to a center entity, as a
//       stable sequence walked with lap semantics.
// Policy:
//   - The adjacency is resolved once, at construction. Lists reachable along
//     several paths are deduplicated (sort + unique where the topology imposes
//     no order, first-occurrence order where it does).
//   - A circulator whose incidences are missing is invalid from the start.

package core

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/volmesh/handle"
)

// Circulator walks a fixed sequence of handles cyclically. It is valid while
// fewer than maxLaps full laps were completed going forward and the lap count
// has not gone negative going backward.
type Circulator[T handle.Tag] struct {
	items   []handle.Handle[T]
	pos     int
	lap     int
	maxLaps int
}

func newCirculator[T handle.Tag](items []handle.Handle[T], laps []int) Circulator[T] {
	maxLaps := 1
	if len(laps) > 0 {
		maxLaps = laps[0]
	}
	return Circulator[T]{items: items, maxLaps: maxLaps}
}

// Valid reports whether the circulator points at an element.
func (c Circulator[T]) Valid() bool {
	return len(c.items) > 0 && c.lap >= 0 && c.lap < c.maxLaps
}

// Handle returns the current element, or the invalid handle.
func (c Circulator[T]) Handle() handle.Handle[T] {
	if !c.Valid() {
		return handle.Handle[T](-1)
	}
	return c.items[c.pos]
}

// Lap returns the number of completed forward laps.
func (c Circulator[T]) Lap() int { return c.lap }

// Len returns the number of distinct elements in one lap.
func (c Circulator[T]) Len() int { return len(c.items) }

// Next steps forward, completing a lap when wrapping around.
func (c *Circulator[T]) Next() {
	if len(c.items) == 0 {
		return
	}
	c.pos++
	if c.pos == len(c.items) {
		c.pos = 0
		c.lap++
	}
}

// Prev steps backward; stepping back past the first element of lap 0 makes
// the circulator invalid.
func (c *Circulator[T]) Prev() {
	if len(c.items) == 0 {
		return
	}
	if c.pos == 0 {
		c.pos = len(c.items) - 1
		c.lap--
		return
	}
	c.pos--
}

// All yields the remaining elements from the current position until the
// circulator becomes invalid. The receiver is not advanced.
func (c Circulator[T]) All() iter.Seq[handle.Handle[T]] {
	return func(yield func(handle.Handle[T]) bool) {
		for cur := c; cur.Valid(); cur.Next() {
			if !yield(cur.Handle()) {
				return
			}
		}
	}
}

// Slice returns one lap of elements. The slice must not be modified.
func (c Circulator[T]) Slice() []handle.Handle[T] { return c.items }

type incidence uint8

const (
	needVertex incidence = 1 << iota
	needEdge
	needFace
)

// circulable reports whether the incidences in need are maintained, logging
// the miss otherwise. Circulators never panic on missing incidences.
func (k *Kernel) circulable(op string, need incidence) bool {
	ok := (need&needVertex == 0 || k.vertexBU) &&
		(need&needEdge == 0 || k.edgeBU) &&
		(need&needFace == 0 || k.faceBU)
	if !ok {
		k.log.Debug("core: circulator needs bottom-up incidences", slog.String("op", op))
	}
	return ok
}

func sortedUnique[T handle.Tag](s []handle.Handle[T]) []handle.Handle[T] {
	slices.Sort(s)
	return slices.Compact(s)
}

func liveCells(cs []handle.Cell) []handle.Cell {
	return lo.Filter(cs, func(c handle.Cell, _ int) bool { return c.IsValid() })
}

// ---- vertex centered ------------------------------------------------------

// VertexOHalfEdges circulates the halfedges leaving v.
func (k *Kernel) VertexOHalfEdges(v handle.Vertex, laps ...int) Circulator[handle.HalfEdgeTag] {
	if !k.circulable("VertexOHalfEdges", needVertex) {
		return Circulator[handle.HalfEdgeTag]{}
	}
	return newCirculator(slices.Clone(k.outHalfEdges[v]), laps)
}

// VertexIHalfEdges circulates the halfedges entering v.
func (k *Kernel) VertexIHalfEdges(v handle.Vertex, laps ...int) Circulator[handle.HalfEdgeTag] {
	if !k.circulable("VertexIHalfEdges", needVertex) {
		return Circulator[handle.HalfEdgeTag]{}
	}
	return newCirculator(lo.Map(k.outHalfEdges[v], func(he handle.HalfEdge, _ int) handle.HalfEdge {
		return handle.Opposite(he)
	}), laps)
}

// VertexEdges circulates the edges at v.
func (k *Kernel) VertexEdges(v handle.Vertex, laps ...int) Circulator[handle.EdgeTag] {
	if !k.circulable("VertexEdges", needVertex) {
		return Circulator[handle.EdgeTag]{}
	}
	return newCirculator(lo.Map(k.outHalfEdges[v], func(he handle.HalfEdge, _ int) handle.Edge {
		return handle.EdgeOf(he)
	}), laps)
}

// VertexVertices circulates the neighbors of v, each once.
func (k *Kernel) VertexVertices(v handle.Vertex, laps ...int) Circulator[handle.VertexTag] {
	if !k.circulable("VertexVertices", needVertex) {
		return Circulator[handle.VertexTag]{}
	}
	return newCirculator(lo.Uniq(lo.Map(k.outHalfEdges[v], func(he handle.HalfEdge, _ int) handle.Vertex {
		return k.ToVertex(he)
	})), laps)
}

func (k *Kernel) vertexHalfFaces(v handle.Vertex) []handle.HalfFace {
	var out []handle.HalfFace
	for _, he := range k.outHalfEdges[v] {
		out = append(out, k.incidentHalfFaces[he]...)
	}
	return sortedUnique(out)
}

// VertexHalfFaces circulates the halffaces through v. Needs vertex and edge
// incidences.
func (k *Kernel) VertexHalfFaces(v handle.Vertex, laps ...int) Circulator[handle.HalfFaceTag] {
	if !k.circulable("VertexHalfFaces", needVertex|needEdge) {
		return Circulator[handle.HalfFaceTag]{}
	}
	return newCirculator(k.vertexHalfFaces(v), laps)
}

// VertexFaces circulates the faces through v.
func (k *Kernel) VertexFaces(v handle.Vertex, laps ...int) Circulator[handle.FaceTag] {
	if !k.circulable("VertexFaces", needVertex|needEdge) {
		return Circulator[handle.FaceTag]{}
	}
	fs := lo.Map(k.vertexHalfFaces(v), func(hf handle.HalfFace, _ int) handle.Face { return handle.FaceOf(hf) })
	return newCirculator(sortedUnique(fs), laps)
}

// VertexCells circulates the cells containing v. Needs all incidences.
func (k *Kernel) VertexCells(v handle.Vertex, laps ...int) Circulator[handle.CellTag] {
	if !k.circulable("VertexCells", needVertex|needEdge|needFace) {
		return Circulator[handle.CellTag]{}
	}
	cs := lo.Map(k.vertexHalfFaces(v), func(hf handle.HalfFace, _ int) handle.Cell { return k.incidentCell[hf] })
	return newCirculator(sortedUnique(liveCells(cs)), laps)
}

// ---- halfedge / edge centered --------------------------------------------

// HalfEdgeHalfFaces circulates the halffaces containing he in fan order.
func (k *Kernel) HalfEdgeHalfFaces(he handle.HalfEdge, laps ...int) Circulator[handle.HalfFaceTag] {
	if !k.circulable("HalfEdgeHalfFaces", needEdge) {
		return Circulator[handle.HalfFaceTag]{}
	}
	return newCirculator(slices.Clone(k.incidentHalfFaces[he]), laps)
}

// HalfEdgeFaces circulates the faces around he in fan order.
func (k *Kernel) HalfEdgeFaces(he handle.HalfEdge, laps ...int) Circulator[handle.FaceTag] {
	if !k.circulable("HalfEdgeFaces", needEdge) {
		return Circulator[handle.FaceTag]{}
	}
	return newCirculator(lo.Map(k.incidentHalfFaces[he], func(hf handle.HalfFace, _ int) handle.Face {
		return handle.FaceOf(hf)
	}), laps)
}

// HalfEdgeCells circulates the cells around he in fan order, each once.
func (k *Kernel) HalfEdgeCells(he handle.HalfEdge, laps ...int) Circulator[handle.CellTag] {
	if !k.circulable("HalfEdgeCells", needEdge|needFace) {
		return Circulator[handle.CellTag]{}
	}
	cs := lo.Map(k.incidentHalfFaces[he], func(hf handle.HalfFace, _ int) handle.Cell { return k.incidentCell[hf] })
	return newCirculator(lo.Uniq(liveCells(cs)), laps)
}

// EdgeHalfFaces circulates the halffaces of both halfedges of e: the fan of
// halfedge 0 followed by that of halfedge 1.
func (k *Kernel) EdgeHalfFaces(e handle.Edge, laps ...int) Circulator[handle.HalfFaceTag] {
	if !k.circulable("EdgeHalfFaces", needEdge) {
		return Circulator[handle.HalfFaceTag]{}
	}
	return newCirculator(slices.Concat(
		k.incidentHalfFaces[handle.HalfEdgeOf(e, 0)],
		k.incidentHalfFaces[handle.HalfEdgeOf(e, 1)]), laps)
}

// EdgeFaces circulates the faces around e.
func (k *Kernel) EdgeFaces(e handle.Edge, laps ...int) Circulator[handle.FaceTag] {
	return k.HalfEdgeFaces(handle.HalfEdgeOf(e, 0), laps...)
}

// EdgeCells circulates the cells around e.
func (k *Kernel) EdgeCells(e handle.Edge, laps ...int) Circulator[handle.CellTag] {
	return k.HalfEdgeCells(handle.HalfEdgeOf(e, 0), laps...)
}

// ---- halfface / face centered --------------------------------------------

// HalfFaceHalfEdges circulates the halfedge loop of hf.
func (k *Kernel) HalfFaceHalfEdges(hf handle.HalfFace, laps ...int) Circulator[handle.HalfEdgeTag] {
	return newCirculator(slices.Clone(k.HalfFace(hf)), laps)
}

// HalfFaceEdges circulates the edges of hf in loop order.
func (k *Kernel) HalfFaceEdges(hf handle.HalfFace, laps ...int) Circulator[handle.EdgeTag] {
	return newCirculator(lo.Map(k.HalfFace(hf), func(he handle.HalfEdge, _ int) handle.Edge {
		return handle.EdgeOf(he)
	}), laps)
}

// HalfFaceVertices circulates the corners of hf in loop order.
func (k *Kernel) HalfFaceVertices(hf handle.HalfFace, laps ...int) Circulator[handle.VertexTag] {
	return newCirculator(k.halfFaceVertices(hf), laps)
}

func (k *Kernel) halfFaceVertices(hf handle.HalfFace) []handle.Vertex {
	return lo.Map(k.HalfFace(hf), func(he handle.HalfEdge, _ int) handle.Vertex { return k.FromVertex(he) })
}

// FaceVertices circulates the corners of f in the order of halfface 0.
func (k *Kernel) FaceVertices(f handle.Face, laps ...int) Circulator[handle.VertexTag] {
	return k.HalfFaceVertices(handle.HalfFaceOf(f, 0), laps...)
}

// FaceHalfEdges circulates the stored halfedge loop of f.
func (k *Kernel) FaceHalfEdges(f handle.Face, laps ...int) Circulator[handle.HalfEdgeTag] {
	return k.HalfFaceHalfEdges(handle.HalfFaceOf(f, 0), laps...)
}

// FaceEdges circulates the edges of f.
func (k *Kernel) FaceEdges(f handle.Face, laps ...int) Circulator[handle.EdgeTag] {
	return k.HalfFaceEdges(handle.HalfFaceOf(f, 0), laps...)
}

// FaceCells circulates the (at most two) cells on either side of f.
func (k *Kernel) FaceCells(f handle.Face, laps ...int) Circulator[handle.CellTag] {
	if !k.circulable("FaceCells", needFace) {
		return Circulator[handle.CellTag]{}
	}
	return newCirculator(liveCells([]handle.Cell{
		k.incidentCell[handle.HalfFaceOf(f, 0)],
		k.incidentCell[handle.HalfFaceOf(f, 1)],
	}), laps)
}

// BoundaryHalfFaceHalfFaces circulates, for each halfedge of the boundary
// halfface hf, the neighboring boundary halfface across that halfedge. Needs
// edge and face incidences.
func (k *Kernel) BoundaryHalfFaceHalfFaces(hf handle.HalfFace, laps ...int) Circulator[handle.HalfFaceTag] {
	if !k.circulable("BoundaryHalfFaceHalfFaces", needEdge|needFace) {
		return Circulator[handle.HalfFaceTag]{}
	}
	opp := handle.Opposite(hf)
	var out []handle.HalfFace
	for _, he := range k.HalfFace(hf) {
		for _, n := range k.incidentHalfFaces[handle.Opposite(he)] {
			if n != opp && !k.incidentCell[n].IsValid() {
				out = append(out, n)
				break
			}
		}
	}
	return newCirculator(lo.Uniq(out), laps)
}

// ---- cell centered --------------------------------------------------------

// CellHalfFaces circulates the halffaces of c.
func (k *Kernel) CellHalfFaces(c handle.Cell, laps ...int) Circulator[handle.HalfFaceTag] {
	return newCirculator(slices.Clone(k.cells[c].HalfFaces), laps)
}

// CellFaces circulates the faces of c.
func (k *Kernel) CellFaces(c handle.Cell, laps ...int) Circulator[handle.FaceTag] {
	return newCirculator(lo.Map(k.cells[c].HalfFaces, func(hf handle.HalfFace, _ int) handle.Face {
		return handle.FaceOf(hf)
	}), laps)
}

func (k *Kernel) cellHalfEdges(c handle.Cell) []handle.HalfEdge {
	var out []handle.HalfEdge
	for _, hf := range k.cells[c].HalfFaces {
		out = append(out, k.HalfFace(hf)...)
	}
	return out
}

func (k *Kernel) cellEdges(c handle.Cell) []handle.Edge {
	return lo.Uniq(lo.Map(k.cellHalfEdges(c), func(he handle.HalfEdge, _ int) handle.Edge {
		return handle.EdgeOf(he)
	}))
}

// CellHalfEdges circulates the halfedges of c's halffaces, face by face.
func (k *Kernel) CellHalfEdges(c handle.Cell, laps ...int) Circulator[handle.HalfEdgeTag] {
	return newCirculator(k.cellHalfEdges(c), laps)
}

// CellEdges circulates the edges of c, each once.
func (k *Kernel) CellEdges(c handle.Cell, laps ...int) Circulator[handle.EdgeTag] {
	return newCirculator(k.cellEdges(c), laps)
}

// CellVertices circulates the vertices of c, each once, in index order.
func (k *Kernel) CellVertices(c handle.Cell, laps ...int) Circulator[handle.VertexTag] {
	var vs []handle.Vertex
	for _, hf := range k.cells[c].HalfFaces {
		vs = append(vs, k.halfFaceVertices(hf)...)
	}
	return newCirculator(sortedUnique(vs), laps)
}

// CellCells circulates the cells sharing a face with c. Needs face incidences.
func (k *Kernel) CellCells(c handle.Cell, laps ...int) Circulator[handle.CellTag] {
	if !k.circulable("CellCells", needFace) {
		return Circulator[handle.CellTag]{}
	}
	cs := lo.Map(k.cells[c].HalfFaces, func(hf handle.HalfFace, _ int) handle.Cell {
		return k.incidentCell[handle.Opposite(hf)]
	})
	return newCirculator(lo.Uniq(liveCells(cs)), laps)
}
