// SPDX-License-Identifier: MIT
//
// File: bottomup.go
// Role: Enabling, recomputing and freeing the three bottom-up incidence
//       indices, and the cyclic fan ordering of halffaces around an edge.
// Policy:
//   - Enabling recomputes from the top-down arrays in index order, so the
//     result does not depend on the mesh's construction history.
//   - Disabling frees the index immediately.

package core

import (
	"slices"

	"github.com/katalvlaran/volmesh/handle"
)

func (k *Kernel) HasVertexBottomUpIncidences() bool { return k.vertexBU }
func (k *Kernel) HasEdgeBottomUpIncidences() bool   { return k.edgeBU }
func (k *Kernel) HasFaceBottomUpIncidences() bool   { return k.faceBU }

// HasFullBottomUpIncidences reports whether all three indices are maintained.
func (k *Kernel) HasFullBottomUpIncidences() bool { return k.vertexBU && k.edgeBU && k.faceBU }

// EnableBottomUpIncidences toggles all three indices.
func (k *Kernel) EnableBottomUpIncidences(on bool) {
	k.EnableVertexBottomUpIncidences(on)
	k.EnableEdgeBottomUpIncidences(on)
	k.EnableFaceBottomUpIncidences(on)
}

// EnableVertexBottomUpIncidences toggles vertex → outgoing halfedges.
// Complexity: O(V + E) when enabling.
func (k *Kernel) EnableVertexBottomUpIncidences(on bool) {
	if on == k.vertexBU {
		return
	}
	k.vertexBU = on
	if !on {
		k.outHalfEdges = nil
		return
	}
	k.computeVertexIncidences()
}

// EnableEdgeBottomUpIncidences toggles halfedge → incident halffaces. With
// face incidences present, every fan is reordered.
// Complexity: O(E + Σ face sizes) when enabling, plus reordering.
func (k *Kernel) EnableEdgeBottomUpIncidences(on bool) {
	if on == k.edgeBU {
		return
	}
	k.edgeBU = on
	if !on {
		k.incidentHalfFaces = nil
		return
	}
	k.computeEdgeIncidences()
	if k.faceBU {
		k.reorderAll()
	}
}

// EnableFaceBottomUpIncidences toggles halfface → incident cell. With edge
// incidences present, every fan is reordered.
// Complexity: O(F + Σ cell sizes) when enabling, plus reordering.
func (k *Kernel) EnableFaceBottomUpIncidences(on bool) {
	if on == k.faceBU {
		return
	}
	k.faceBU = on
	if !on {
		k.incidentCell = nil
		return
	}
	k.computeFaceIncidences()
	if k.edgeBU {
		k.reorderAll()
	}
}

func (k *Kernel) computeVertexIncidences() {
	k.outHalfEdges = make([][]handle.HalfEdge, k.nVertices)
	for i, e := range k.edges {
		if k.edgeDeleted[i] {
			continue
		}
		eh := handle.Edge(i)
		k.outHalfEdges[e.From] = append(k.outHalfEdges[e.From], handle.HalfEdgeOf(eh, 0))
		k.outHalfEdges[e.To] = append(k.outHalfEdges[e.To], handle.HalfEdgeOf(eh, 1))
	}
}

func (k *Kernel) computeEdgeIncidences() {
	k.incidentHalfFaces = make([][]handle.HalfFace, 2*len(k.edges))
	for i, f := range k.faces {
		if k.faceDeleted[i] {
			continue
		}
		hf0, hf1 := handle.HalfFaceOf(handle.Face(i), 0), handle.HalfFaceOf(handle.Face(i), 1)
		for _, he := range f.HalfEdges {
			k.incidentHalfFaces[he] = append(k.incidentHalfFaces[he], hf0)
			opp := handle.Opposite(he)
			k.incidentHalfFaces[opp] = append(k.incidentHalfFaces[opp], hf1)
		}
	}
}

func (k *Kernel) computeFaceIncidences() {
	k.incidentCell = make([]handle.Cell, 2*len(k.faces))
	for i := range k.incidentCell {
		k.incidentCell[i] = handle.InvalidCell
	}
	for i, c := range k.cells {
		if k.cellDeleted[i] {
			continue
		}
		for _, hf := range c.HalfFaces {
			k.incidentCell[hf] = handle.Cell(i)
		}
	}
}

func (k *Kernel) reorderAll() {
	for e := range k.edges {
		if !k.edgeDeleted[e] {
			k.ReorderIncidentHalfFaces(handle.Edge(e))
		}
	}
}

func (k *Kernel) reorderFace(f handle.Face) {
	if !k.edgeBU || !k.faceBU {
		return
	}
	for _, he := range k.faces[f].HalfEdges {
		k.ReorderIncidentHalfFaces(handle.EdgeOf(he))
	}
}

func (k *Kernel) reorderCell(c handle.Cell) {
	if !k.edgeBU || !k.faceBU {
		return
	}
	for _, e := range k.cellEdges(c) {
		k.ReorderIncidentHalfFaces(e)
	}
}

// ReorderIncidentHalfFaces arranges the halffaces around e into fan order:
// consecutive entries of halfedge 0's list share a cell. A fan that touches
// the boundary starts at the halfface without a predecessor; a closed fan
// starts at its smallest halfface. Separate fan segments (non-manifold edges)
// follow each other ordered by their first halfface; there the order is best
// effort and only guarantees that each halfface appears once. Halfedge 1's
// list is the reversed list of opposites.
// A no-op unless both edge and face incidences are maintained.
// Complexity: O(fan · cell size).
func (k *Kernel) ReorderIncidentHalfFaces(e handle.Edge) {
	if !k.edgeBU || !k.faceBU {
		return
	}
	he := handle.HalfEdgeOf(e, 0)
	list := k.incidentHalfFaces[he]
	if len(list) < 2 {
		k.mirrorFan(e)
		return
	}

	member := make(map[handle.HalfFace]bool, len(list))
	for _, hf := range list {
		member[hf] = false
	}
	usable := func(hf handle.HalfFace) bool {
		placed, ok := member[hf]
		return hf.IsValid() && ok && !placed
	}

	var segs [][]handle.HalfFace
	for _, seed := range list {
		if member[seed] {
			continue
		}
		start, closed := seed, false
		for range len(list) {
			p := k.prevInFan(start, he)
			if !usable(p) {
				break
			}
			if p == seed {
				closed = true
				break
			}
			start = p
		}
		if closed {
			start = seed
		}

		var seg []handle.HalfFace
		for cur := start; usable(cur); cur = k.nextInFan(cur, he) {
			member[cur] = true
			seg = append(seg, cur)
		}
		if closed {
			m := slices.Index(seg, slices.Min(seg))
			seg = slices.Concat(seg[m:], seg[:m])
		}
		segs = append(segs, seg)
	}
	slices.SortFunc(segs, func(a, b []handle.HalfFace) int { return handle.Compare(a[0], b[0]) })
	out := slices.Concat(segs...)
	if out == nil {
		out = []handle.HalfFace{}
	}
	k.incidentHalfFaces[he] = out
	k.mirrorFan(e)
}

// mirrorFan derives halfedge 1's list from halfedge 0's.
func (k *Kernel) mirrorFan(e handle.Edge) {
	src := k.incidentHalfFaces[handle.HalfEdgeOf(e, 0)]
	dst := make([]handle.HalfFace, len(src))
	for i, hf := range src {
		dst[len(src)-1-i] = handle.Opposite(hf)
	}
	k.incidentHalfFaces[handle.HalfEdgeOf(e, 1)] = dst
}

// nextInFan steps from hf (containing he) through hf's cell to the next
// halfface containing he.
func (k *Kernel) nextInFan(hf handle.HalfFace, he handle.HalfEdge) handle.HalfFace {
	adj := k.AdjacentHalfFaceInCell(hf, he)
	return handle.Opposite(adj)
}

// prevInFan steps from hf (containing he) through the cell behind hf.
func (k *Kernel) prevInFan(hf handle.HalfFace, he handle.HalfEdge) handle.HalfFace {
	return k.AdjacentHalfFaceInCell(handle.Opposite(hf), handle.Opposite(he))
}
