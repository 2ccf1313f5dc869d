// SPDX-License-Identifier: MIT
//
// File: query.go
// Role: Counts, validity, top-down accessors, lookups and the O(1) incidence
//       queries (boundary, incident cell, valence).
// Policy:
//   - Counts include deleted-but-uncollected entities; NLogical* exclude them.
//   - Queries that need a disabled incidence index report a contract
//     violation and return the zero answer.

package core

import (
	"slices"

	"github.com/katalvlaran/volmesh/handle"
)

func (k *Kernel) NVertices() int  { return k.nVertices }
func (k *Kernel) NEdges() int     { return len(k.edges) }
func (k *Kernel) NHalfEdges() int { return 2 * len(k.edges) }
func (k *Kernel) NFaces() int     { return len(k.faces) }
func (k *Kernel) NHalfFaces() int { return 2 * len(k.faces) }
func (k *Kernel) NCells() int     { return len(k.cells) }

func (k *Kernel) NLogicalVertices() int  { return k.nVertices - k.nDeletedVertices }
func (k *Kernel) NLogicalEdges() int     { return len(k.edges) - k.nDeletedEdges }
func (k *Kernel) NLogicalHalfEdges() int { return 2 * k.NLogicalEdges() }
func (k *Kernel) NLogicalFaces() int     { return len(k.faces) - k.nDeletedFaces }
func (k *Kernel) NLogicalHalfFaces() int { return 2 * k.NLogicalFaces() }
func (k *Kernel) NLogicalCells() int     { return len(k.cells) - k.nDeletedCells }

// HasPendingDeletions reports whether deleted entities await CollectGarbage.
func (k *Kernel) HasPendingDeletions() bool {
	return k.nDeletedVertices+k.nDeletedEdges+k.nDeletedFaces+k.nDeletedCells > 0
}

// IsValid* report 0 <= idx < count. Deleted entities are still valid.
func (k *Kernel) IsValidVertex(v handle.Vertex) bool { return v.IsValid() && v.Idx() < k.nVertices }
func (k *Kernel) IsValidEdge(e handle.Edge) bool     { return e.IsValid() && e.Idx() < len(k.edges) }
func (k *Kernel) IsValidHalfEdge(he handle.HalfEdge) bool {
	return he.IsValid() && he.Idx() < 2*len(k.edges)
}
func (k *Kernel) IsValidFace(f handle.Face) bool { return f.IsValid() && f.Idx() < len(k.faces) }
func (k *Kernel) IsValidHalfFace(hf handle.HalfFace) bool {
	return hf.IsValid() && hf.Idx() < 2*len(k.faces)
}
func (k *Kernel) IsValidCell(c handle.Cell) bool { return c.IsValid() && c.Idx() < len(k.cells) }

// IsDeleted* report the deferred-deletion mark. A half-entity is deleted when
// its full entity is.
func (k *Kernel) IsDeletedVertex(v handle.Vertex) bool { return k.vertexDeleted[v] }
func (k *Kernel) IsDeletedEdge(e handle.Edge) bool     { return k.edgeDeleted[e] }
func (k *Kernel) IsDeletedHalfEdge(he handle.HalfEdge) bool {
	return k.edgeDeleted[handle.EdgeOf(he)]
}
func (k *Kernel) IsDeletedFace(f handle.Face) bool { return k.faceDeleted[f] }
func (k *Kernel) IsDeletedHalfFace(hf handle.HalfFace) bool {
	return k.faceDeleted[handle.FaceOf(hf)]
}
func (k *Kernel) IsDeletedCell(c handle.Cell) bool { return k.cellDeleted[c] }

// Edge returns the from/to record of e.
func (k *Kernel) Edge(e handle.Edge) Edge { return k.edges[e] }

// HalfEdge returns he as a from/to pair in its own direction.
func (k *Kernel) HalfEdge(he handle.HalfEdge) Edge {
	e := k.edges[handle.EdgeOf(he)]
	if handle.Sub(he) == 1 {
		return Edge{From: e.To, To: e.From}
	}
	return e
}

// FromVertex returns the vertex he starts at.
func (k *Kernel) FromVertex(he handle.HalfEdge) handle.Vertex { return k.HalfEdge(he).From }

// ToVertex returns the vertex he ends at.
func (k *Kernel) ToVertex(he handle.HalfEdge) handle.Vertex { return k.HalfEdge(he).To }

// Face returns the halfedge loop of f.
func (k *Kernel) Face(f handle.Face) Face { return k.faces[f] }

// HalfFace returns the halfedge loop of hf. Sub index 1 walks the face
// backwards over opposite halfedges; that slice is freshly allocated.
func (k *Kernel) HalfFace(hf handle.HalfFace) []handle.HalfEdge {
	hes := k.faces[handle.FaceOf(hf)].HalfEdges
	if handle.Sub(hf) == 0 {
		return hes
	}
	out := make([]handle.HalfEdge, len(hes))
	for i, he := range hes {
		out[len(hes)-1-i] = handle.Opposite(he)
	}
	return out
}

// Cell returns the halfface list of c.
func (k *Kernel) Cell(c handle.Cell) Cell { return k.cells[c] }

// FindHalfEdge returns the live halfedge running from → to, or InvalidHalfEdge.
// Complexity: O(deg(from)) with vertex incidences, O(E) without.
func (k *Kernel) FindHalfEdge(from, to handle.Vertex) handle.HalfEdge {
	if k.vertexBU {
		for _, he := range k.outHalfEdges[from] {
			if k.ToVertex(he) == to {
				return he
			}
		}
		return handle.InvalidHalfEdge
	}
	for i, e := range k.edges {
		if k.edgeDeleted[i] {
			continue
		}
		switch {
		case e.From == from && e.To == to:
			return handle.HalfEdgeOf(handle.Edge(i), 0)
		case e.From == to && e.To == from:
			return handle.HalfEdgeOf(handle.Edge(i), 1)
		}
	}
	return handle.InvalidHalfEdge
}

// FindHalfFace returns the live halfface whose loop equals hes up to rotation,
// or InvalidHalfFace.
// Complexity: O(fan(hes[0]) · len(hes)) with edge incidences, O(F · len) without.
func (k *Kernel) FindHalfFace(hes []handle.HalfEdge) handle.HalfFace {
	if len(hes) == 0 || !k.IsValidHalfEdge(hes[0]) {
		return handle.InvalidHalfFace
	}
	if k.edgeBU {
		for _, hf := range k.incidentHalfFaces[hes[0]] {
			if sameLoop(k.HalfFace(hf), hes) {
				return hf
			}
		}
		return handle.InvalidHalfFace
	}
	for f := range k.faces {
		if k.faceDeleted[f] {
			continue
		}
		for sub := range 2 {
			hf := handle.HalfFaceOf(handle.Face(f), sub)
			if sameLoop(k.HalfFace(hf), hes) {
				return hf
			}
		}
	}
	return handle.InvalidHalfFace
}

// FindHalfFaceFromVertices resolves the halfedges between consecutive vertices
// and looks up the halfface they form.
func (k *Kernel) FindHalfFaceFromVertices(vs []handle.Vertex) handle.HalfFace {
	if len(vs) < 3 {
		return handle.InvalidHalfFace
	}
	hes := make([]handle.HalfEdge, len(vs))
	for i, v := range vs {
		he := k.FindHalfEdge(v, vs[(i+1)%len(vs)])
		if !he.IsValid() {
			return handle.InvalidHalfFace
		}
		hes[i] = he
	}
	return k.FindHalfFace(hes)
}

// sameLoop reports whether a and b are the same cyclic sequence.
func sameLoop(a, b []handle.HalfEdge) bool {
	if len(a) != len(b) {
		return false
	}
	start := slices.Index(a, b[0])
	if start < 0 {
		return false
	}
	for i := range b {
		if a[(start+i)%len(a)] != b[i] {
			return false
		}
	}
	return true
}

// IncidentCell returns the cell hf bounds, or InvalidCell. Needs face
// incidences.
func (k *Kernel) IncidentCell(hf handle.HalfFace) handle.Cell {
	if !k.needFaceBU("IncidentCell") {
		return handle.InvalidCell
	}
	return k.incidentCell[hf]
}

// AdjacentHalfFaceInCell returns the other halfface of hf's cell that shares
// the edge of he; it contains Opposite(he). Needs face incidences.
func (k *Kernel) AdjacentHalfFaceInCell(hf handle.HalfFace, he handle.HalfEdge) handle.HalfFace {
	if !k.needFaceBU("AdjacentHalfFaceInCell") {
		return handle.InvalidHalfFace
	}
	c := k.incidentCell[hf]
	if !c.IsValid() {
		return handle.InvalidHalfFace
	}
	opp := handle.Opposite(he)
	for _, other := range k.cells[c].HalfFaces {
		if other == hf {
			continue
		}
		if slices.Contains(k.HalfFace(other), opp) {
			return other
		}
	}
	return handle.InvalidHalfFace
}

// IsBoundaryHalfFace reports whether hf bounds no cell.
func (k *Kernel) IsBoundaryHalfFace(hf handle.HalfFace) bool {
	if !k.needFaceBU("IsBoundaryHalfFace") {
		return false
	}
	return !k.incidentCell[hf].IsValid()
}

// IsBoundaryFace reports whether either halfface of f bounds no cell.
func (k *Kernel) IsBoundaryFace(f handle.Face) bool {
	if !k.needFaceBU("IsBoundaryFace") {
		return false
	}
	return !k.incidentCell[handle.HalfFaceOf(f, 0)].IsValid() ||
		!k.incidentCell[handle.HalfFaceOf(f, 1)].IsValid()
}

// IsBoundaryHalfEdge reports whether a boundary halfface contains he. Needs
// edge and face incidences.
func (k *Kernel) IsBoundaryHalfEdge(he handle.HalfEdge) bool {
	if !k.needEdgeBU("IsBoundaryHalfEdge") || !k.needFaceBU("IsBoundaryHalfEdge") {
		return false
	}
	for _, hf := range k.incidentHalfFaces[he] {
		if !k.incidentCell[hf].IsValid() {
			return true
		}
	}
	return false
}

// IsBoundaryEdge reports whether either halfedge of e is a boundary halfedge.
func (k *Kernel) IsBoundaryEdge(e handle.Edge) bool {
	return k.IsBoundaryHalfEdge(handle.HalfEdgeOf(e, 0)) || k.IsBoundaryHalfEdge(handle.HalfEdgeOf(e, 1))
}

// IsBoundaryVertex reports whether an outgoing halfedge of v is a boundary
// halfedge. Isolated vertices are not boundary. Needs all incidences.
func (k *Kernel) IsBoundaryVertex(v handle.Vertex) bool {
	if !k.needVertexBU("IsBoundaryVertex") {
		return false
	}
	for _, he := range k.outHalfEdges[v] {
		if k.IsBoundaryHalfEdge(he) {
			return true
		}
	}
	return false
}

// IsBoundaryCell reports whether some halfface of c faces no neighbor cell.
func (k *Kernel) IsBoundaryCell(c handle.Cell) bool {
	if !k.needFaceBU("IsBoundaryCell") {
		return false
	}
	for _, hf := range k.cells[c].HalfFaces {
		if !k.incidentCell[handle.Opposite(hf)].IsValid() {
			return true
		}
	}
	return false
}

// ValenceVertex returns the number of edges at v. Needs vertex incidences.
func (k *Kernel) ValenceVertex(v handle.Vertex) int {
	if !k.needVertexBU("ValenceVertex") {
		return 0
	}
	return len(k.outHalfEdges[v])
}

// ValenceEdge returns the number of faces around e. Needs edge incidences.
func (k *Kernel) ValenceEdge(e handle.Edge) int {
	if !k.needEdgeBU("ValenceEdge") {
		return 0
	}
	return len(k.incidentHalfFaces[handle.HalfEdgeOf(e, 0)])
}

// ValenceFace returns the number of halfedges of f.
func (k *Kernel) ValenceFace(f handle.Face) int { return len(k.faces[f].HalfEdges) }

// ValenceCell returns the number of halffaces of c.
func (k *Kernel) ValenceCell(c handle.Cell) int { return len(k.cells[c].HalfFaces) }
