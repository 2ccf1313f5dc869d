// SPDX-License-Identifier: MIT
//
// File: delete.go
// Role: Cascading deletion. A vertex takes its edges, an edge its faces, a
//       face its cells with it.
// Policy:
//   - Deletion marks entities and unlinks them from the bottom-up indices.
//   - Without deferred deletion the mark is collected before returning.
//   - Each Delete* returns an iterator at the next live entity of the same
//     kind, so `for it := k.DeleteX(h); ...` style mass deletion works.

package core

import (
	"slices"

	"github.com/katalvlaran/volmesh/handle"
)

// DeleteVertex deletes v and every edge, face and cell incident to it.
func (k *Kernel) DeleteVertex(v handle.Vertex) EntityIter[handle.VertexTag] {
	if !k.liveVertex(v) {
		k.violation("DeleteVertex", "invalid or deleted "+v.String())
		return k.vertexIterFrom(v.Idx() + 1)
	}
	var edges []handle.Edge
	if k.vertexBU {
		for _, he := range k.outHalfEdges[v] {
			edges = append(edges, handle.EdgeOf(he))
		}
	} else {
		for i, e := range k.edges {
			if !k.edgeDeleted[i] && (e.From == v || e.To == v) {
				edges = append(edges, handle.Edge(i))
			}
		}
	}
	for _, e := range edges {
		k.markEdge(e)
	}
	k.vertexDeleted[v] = true
	k.nDeletedVertices++
	if k.vertexBU {
		k.outHalfEdges[v] = nil
	}
	return k.vertexIterFrom(k.finishDelete(v.Idx()))
}

// DeleteEdge deletes e and every face and cell incident to it.
func (k *Kernel) DeleteEdge(e handle.Edge) EntityIter[handle.EdgeTag] {
	if !k.liveEdge(e) {
		k.violation("DeleteEdge", "invalid or deleted "+e.String())
		return k.edgeIterFrom(e.Idx() + 1)
	}
	k.markEdge(e)
	return k.edgeIterFrom(k.finishDelete(e.Idx()))
}

// DeleteFace deletes f and the cells it bounds.
func (k *Kernel) DeleteFace(f handle.Face) EntityIter[handle.FaceTag] {
	if !k.liveFace(f) {
		k.violation("DeleteFace", "invalid or deleted "+f.String())
		return k.faceIterFrom(f.Idx() + 1)
	}
	k.markFace(f)
	return k.faceIterFrom(k.finishDelete(f.Idx()))
}

// DeleteCell deletes c. Its faces stay.
func (k *Kernel) DeleteCell(c handle.Cell) EntityIter[handle.CellTag] {
	if !k.liveCell(c) {
		k.violation("DeleteCell", "invalid or deleted "+c.String())
		return k.cellIterFrom(c.Idx() + 1)
	}
	k.markCell(c)
	return k.cellIterFrom(k.finishDelete(c.Idx()))
}

// finishDelete collects garbage in eager mode and returns the index at which
// the next live entity of the deleted kind starts. Compaction shifts the
// successor down into the deleted slot.
func (k *Kernel) finishDelete(idx int) int {
	if k.deferred {
		return idx + 1
	}
	k.CollectGarbage()
	return idx
}

func (k *Kernel) markEdge(e handle.Edge) {
	if k.edgeDeleted[e] {
		return
	}
	for _, f := range k.edgeFacesAny(e) {
		k.markFace(f)
	}
	k.edgeDeleted[e] = true
	k.nDeletedEdges++
	if k.vertexBU {
		rec := k.edges[e]
		k.outHalfEdges[rec.From] = removeFirst(k.outHalfEdges[rec.From], handle.HalfEdgeOf(e, 0))
		k.outHalfEdges[rec.To] = removeFirst(k.outHalfEdges[rec.To], handle.HalfEdgeOf(e, 1))
	}
	if k.edgeBU {
		k.incidentHalfFaces[handle.HalfEdgeOf(e, 0)] = nil
		k.incidentHalfFaces[handle.HalfEdgeOf(e, 1)] = nil
	}
}

func (k *Kernel) markFace(f handle.Face) {
	if k.faceDeleted[f] {
		return
	}
	for sub := range 2 {
		if c := k.halfFaceCellAny(handle.HalfFaceOf(f, sub)); c.IsValid() {
			k.markCell(c)
		}
	}
	k.faceDeleted[f] = true
	k.nDeletedFaces++
	if k.edgeBU {
		hf0, hf1 := handle.HalfFaceOf(f, 0), handle.HalfFaceOf(f, 1)
		for _, he := range k.faces[f].HalfEdges {
			opp := handle.Opposite(he)
			k.incidentHalfFaces[he] = removeFirst(k.incidentHalfFaces[he], hf0)
			k.incidentHalfFaces[opp] = removeFirst(k.incidentHalfFaces[opp], hf1)
		}
	}
}

func (k *Kernel) markCell(c handle.Cell) {
	if k.cellDeleted[c] {
		return
	}
	k.cellDeleted[c] = true
	k.nDeletedCells++
	if k.faceBU {
		for _, hf := range k.cells[c].HalfFaces {
			k.incidentCell[hf] = handle.InvalidCell
		}
		k.reorderCell(c)
	}
}

// edgeFacesAny lists the live faces containing e, with or without edge
// incidences.
func (k *Kernel) edgeFacesAny(e handle.Edge) []handle.Face {
	var out []handle.Face
	if k.edgeBU {
		for _, hf := range k.incidentHalfFaces[handle.HalfEdgeOf(e, 0)] {
			out = append(out, handle.FaceOf(hf))
		}
		return out
	}
	for i, f := range k.faces {
		if k.faceDeleted[i] {
			continue
		}
		if slices.ContainsFunc(f.HalfEdges, func(he handle.HalfEdge) bool { return handle.EdgeOf(he) == e }) {
			out = append(out, handle.Face(i))
		}
	}
	return out
}

// halfFaceCellAny returns the live cell bounded by hf, with or without face
// incidences.
func (k *Kernel) halfFaceCellAny(hf handle.HalfFace) handle.Cell {
	if k.faceBU {
		return k.incidentCell[hf]
	}
	for i, c := range k.cells {
		if !k.cellDeleted[i] && slices.Contains(c.HalfFaces, hf) {
			return handle.Cell(i)
		}
	}
	return handle.InvalidCell
}

// removeFirst deletes the first occurrence of x, preserving order.
func removeFirst[T comparable](s []T, x T) []T {
	if i := slices.Index(s, x); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}
