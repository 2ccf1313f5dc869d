// SPDX-License-Identifier: MIT
//
// File: swap.go
// Role: Index swaps for custom reordering. Content and connectivity are
//       unchanged; only the two entities trade handles (and property values).
// Policy:
//   - References are remapped by a full scan of the referencing array.
//   - Deletion marks travel with the entity.

package core

import (
	"github.com/katalvlaran/volmesh/handle"
)

func swapped[T handle.Tag](h, a, b handle.Handle[T]) handle.Handle[T] {
	switch h {
	case a:
		return b
	case b:
		return a
	}
	return h
}

func swapHalf[T handle.Half](h handle.Handle[T], a, b int32) handle.Handle[T] {
	if h < 0 {
		return h
	}
	switch int32(h) / 2 {
	case a:
		return handle.Handle[T](2*b + int32(h)&1)
	case b:
		return handle.Handle[T](2*a + int32(h)&1)
	}
	return h
}

// SwapVertexIndices exchanges the handles of vertices a and b.
// Complexity: O(E) plus the vertex property swap.
func (k *Kernel) SwapVertexIndices(a, b handle.Vertex) {
	if !k.IsValidVertex(a) || !k.IsValidVertex(b) {
		k.violation("SwapVertexIndices", "invalid handle")
		return
	}
	if a == b {
		return
	}
	for i := range k.edges {
		k.edges[i].From = swapped(k.edges[i].From, a, b)
		k.edges[i].To = swapped(k.edges[i].To, a, b)
	}
	k.vertexDeleted[a], k.vertexDeleted[b] = k.vertexDeleted[b], k.vertexDeleted[a]
	if k.vertexBU {
		k.outHalfEdges[a], k.outHalfEdges[b] = k.outHalfEdges[b], k.outHalfEdges[a]
	}
	k.props.SwapKind(handle.KindVertex, a.Idx(), b.Idx())
}

// SwapEdgeIndices exchanges the handles of edges a and b and of their
// halfedges with equal sub index.
// Complexity: O(Σ face sizes) plus the property swaps.
func (k *Kernel) SwapEdgeIndices(a, b handle.Edge) {
	if !k.IsValidEdge(a) || !k.IsValidEdge(b) {
		k.violation("SwapEdgeIndices", "invalid handle")
		return
	}
	if a == b {
		return
	}
	ia, ib := int32(a), int32(b)
	for _, f := range k.faces {
		for j, he := range f.HalfEdges {
			f.HalfEdges[j] = swapHalf(he, ia, ib)
		}
	}
	if k.vertexBU {
		for _, list := range k.outHalfEdges {
			for j, he := range list {
				list[j] = swapHalf(he, ia, ib)
			}
		}
	}
	if k.edgeBU {
		for sub := range 2 {
			ha, hb := handle.HalfEdgeOf(a, sub), handle.HalfEdgeOf(b, sub)
			k.incidentHalfFaces[ha], k.incidentHalfFaces[hb] = k.incidentHalfFaces[hb], k.incidentHalfFaces[ha]
		}
	}
	k.edges[a], k.edges[b] = k.edges[b], k.edges[a]
	k.edgeDeleted[a], k.edgeDeleted[b] = k.edgeDeleted[b], k.edgeDeleted[a]
	k.props.SwapKind(handle.KindEdge, a.Idx(), b.Idx())
	for sub := range 2 {
		k.props.SwapKind(handle.KindHalfEdge, handle.HalfEdgeOf(a, sub).Idx(), handle.HalfEdgeOf(b, sub).Idx())
	}
}

// SwapFaceIndices exchanges the handles of faces a and b and of their
// halffaces with equal sub index.
// Complexity: O(Σ cell sizes + Σ fan sizes) plus the property swaps.
func (k *Kernel) SwapFaceIndices(a, b handle.Face) {
	if !k.IsValidFace(a) || !k.IsValidFace(b) {
		k.violation("SwapFaceIndices", "invalid handle")
		return
	}
	if a == b {
		return
	}
	ia, ib := int32(a), int32(b)
	for _, c := range k.cells {
		for j, hf := range c.HalfFaces {
			c.HalfFaces[j] = swapHalf(hf, ia, ib)
		}
	}
	if k.edgeBU {
		for _, list := range k.incidentHalfFaces {
			for j, hf := range list {
				list[j] = swapHalf(hf, ia, ib)
			}
		}
	}
	if k.faceBU {
		for sub := range 2 {
			ha, hb := handle.HalfFaceOf(a, sub), handle.HalfFaceOf(b, sub)
			k.incidentCell[ha], k.incidentCell[hb] = k.incidentCell[hb], k.incidentCell[ha]
		}
	}
	k.faces[a], k.faces[b] = k.faces[b], k.faces[a]
	k.faceDeleted[a], k.faceDeleted[b] = k.faceDeleted[b], k.faceDeleted[a]
	k.props.SwapKind(handle.KindFace, a.Idx(), b.Idx())
	for sub := range 2 {
		k.props.SwapKind(handle.KindHalfFace, handle.HalfFaceOf(a, sub).Idx(), handle.HalfFaceOf(b, sub).Idx())
	}
	if !k.faceDeleted[a] {
		k.reorderFace(a)
	}
	if !k.faceDeleted[b] {
		k.reorderFace(b)
	}
}

// SwapCellIndices exchanges the handles of cells a and b.
// Complexity: O(1) with face incidences disabled, O(size of a and b) otherwise.
func (k *Kernel) SwapCellIndices(a, b handle.Cell) {
	if !k.IsValidCell(a) || !k.IsValidCell(b) {
		k.violation("SwapCellIndices", "invalid handle")
		return
	}
	if a == b {
		return
	}
	if k.faceBU {
		for _, c := range []handle.Cell{a, b} {
			if k.cellDeleted[c] {
				continue
			}
			for _, hf := range k.cells[c].HalfFaces {
				k.incidentCell[hf] = swapped(k.incidentCell[hf], a, b)
			}
		}
	}
	k.cells[a], k.cells[b] = k.cells[b], k.cells[a]
	k.cellDeleted[a], k.cellDeleted[b] = k.cellDeleted[b], k.cellDeleted[a]
	k.props.SwapKind(handle.KindCell, a.Idx(), b.Idx())
}
