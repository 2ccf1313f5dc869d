// SPDX-License-Identifier: MIT
//
// File: garbage.go
// Role: CollectGarbage, the compaction half of deferred deletion.
// Policy:
//   - Survivors keep their relative order; every kind gets an old → new index
//     map applied to all cross references and bottom-up lists in place.
//   - Properties are compacted with the same keep masks, so each surviving
//     entity keeps its values.

package core

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/katalvlaran/volmesh/handle"
)

// renumber builds the old → new index map for a deletion mask; deleted
// entries map to -1.
func renumber(deleted []bool) (newIdx []int32, keep []bool) {
	newIdx = make([]int32, len(deleted))
	keep = make([]bool, len(deleted))
	var next int32
	for i, d := range deleted {
		if d {
			newIdx[i] = -1
			continue
		}
		newIdx[i] = next
		keep[i] = true
		next++
	}
	return newIdx, keep
}

// halfMask expands a per-entity keep mask to the two halves of each entity.
func halfMask(keep []bool) []bool {
	out := make([]bool, 2*len(keep))
	for i, v := range keep {
		out[2*i], out[2*i+1] = v, v
	}
	return out
}

func compact[T any](s []T, keep []bool) []T {
	out := s[:0]
	for i, v := range s {
		if keep[i] {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}

func mapHalfEdge(he handle.HalfEdge, edgeMap []int32) handle.HalfEdge {
	return handle.HalfEdgeOf(handle.Edge(edgeMap[handle.EdgeOf(he)]), handle.Sub(he))
}

func mapHalfFace(hf handle.HalfFace, faceMap []int32) handle.HalfFace {
	return handle.HalfFaceOf(handle.Face(faceMap[handle.FaceOf(hf)]), handle.Sub(hf))
}

// dropProps removes the values of dropped entities of kind kd from every
// property. One or two removals (a single entity, or one edge or face with
// its halves) are erased element-wise; anything more is one compaction pass.
func (k *Kernel) dropProps(kd handle.Kind, keep []bool) {
	switch removed := lo.Count(keep, false); {
	case removed == 0:
	case removed <= 2:
		for i := len(keep) - 1; i >= 0; i-- {
			if !keep[i] {
				k.props.DeleteKind(kd, i)
			}
		}
	default:
		k.props.CompactKind(kd, keep)
	}
}

// CollectGarbage removes every entity marked deleted and renumbers the rest.
// Handles held by callers are invalidated unless no deletion was pending.
// Complexity: O(V + E + F + C + Σ face sizes + Σ cell sizes + #props · n).
func (k *Kernel) CollectGarbage() {
	if !k.HasPendingDeletions() {
		return
	}
	k.log.Debug("core: collecting garbage",
		slog.Int("vertices", k.nDeletedVertices), slog.Int("edges", k.nDeletedEdges),
		slog.Int("faces", k.nDeletedFaces), slog.Int("cells", k.nDeletedCells))

	vMap, vKeep := renumber(k.vertexDeleted)
	eMap, eKeep := renumber(k.edgeDeleted)
	fMap, fKeep := renumber(k.faceDeleted)
	cMap, cKeep := renumber(k.cellDeleted)
	heKeep, hfKeep := halfMask(eKeep), halfMask(fKeep)

	k.edges = compact(k.edges, eKeep)
	for i := range k.edges {
		k.edges[i].From = handle.Vertex(vMap[k.edges[i].From])
		k.edges[i].To = handle.Vertex(vMap[k.edges[i].To])
	}
	k.faces = compact(k.faces, fKeep)
	for _, f := range k.faces {
		for j, he := range f.HalfEdges {
			f.HalfEdges[j] = mapHalfEdge(he, eMap)
		}
	}
	k.cells = compact(k.cells, cKeep)
	for _, c := range k.cells {
		for j, hf := range c.HalfFaces {
			c.HalfFaces[j] = mapHalfFace(hf, fMap)
		}
	}

	if k.vertexBU {
		k.outHalfEdges = compact(k.outHalfEdges, vKeep)
		for i, list := range k.outHalfEdges {
			out := list[:0]
			for _, he := range list {
				if eKeep[handle.EdgeOf(he)] {
					out = append(out, mapHalfEdge(he, eMap))
				}
			}
			k.outHalfEdges[i] = out
		}
	}
	if k.edgeBU {
		k.incidentHalfFaces = compact(k.incidentHalfFaces, heKeep)
		for i, list := range k.incidentHalfFaces {
			out := list[:0]
			for _, hf := range list {
				if fKeep[handle.FaceOf(hf)] {
					out = append(out, mapHalfFace(hf, fMap))
				}
			}
			k.incidentHalfFaces[i] = out
		}
	}
	if k.faceBU {
		k.incidentCell = compact(k.incidentCell, hfKeep)
		for i, c := range k.incidentCell {
			if c.IsValid() {
				k.incidentCell[i] = handle.Cell(cMap[c])
			}
		}
	}

	k.dropProps(handle.KindVertex, vKeep)
	k.dropProps(handle.KindEdge, eKeep)
	k.dropProps(handle.KindHalfEdge, heKeep)
	k.dropProps(handle.KindFace, fKeep)
	k.dropProps(handle.KindHalfFace, hfKeep)
	k.dropProps(handle.KindCell, cKeep)

	k.nVertices -= k.nDeletedVertices
	k.vertexDeleted = make([]bool, k.nVertices)
	k.edgeDeleted = make([]bool, len(k.edges))
	k.faceDeleted = make([]bool, len(k.faces))
	k.cellDeleted = make([]bool, len(k.cells))
	k.nDeletedVertices, k.nDeletedEdges, k.nDeletedFaces, k.nDeletedCells = 0, 0, 0, 0
}
