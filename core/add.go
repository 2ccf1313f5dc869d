// SPDX-License-Identifier: MIT
//
// File: add.go
// Role: Entity construction (AddVertex, AddEdge, AddFace, AddCell) and the
//       topology checks guarding the checked variants.
// Policy:
//   - A rejected add returns the invalid handle and mutates nothing.
//   - Every successful add pushes one default value into each tracked
//     property of the new entity's kinds (two for half kinds).

package core

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/volmesh/handle"
)

// AddVertex appends an isolated vertex.
// Complexity: O(1) amortized plus O(#vertex properties).
func (k *Kernel) AddVertex() handle.Vertex {
	v := handle.Vertex(k.nVertices)
	k.nVertices++
	k.vertexDeleted = append(k.vertexDeleted, false)
	if k.vertexBU {
		k.outHalfEdges = append(k.outHalfEdges, nil)
	}
	k.props.PushBackKind(handle.KindVertex)
	return v
}

// AddEdge connects from and to. Unless allowDuplicates is set, an existing
// edge between the two vertices (in either direction) is returned instead of
// creating a parallel one. Returns InvalidEdge if from == to or either vertex
// is invalid or deleted.
// Complexity: O(deg(from)) with vertex incidences, O(E) without.
func (k *Kernel) AddEdge(from, to handle.Vertex, allowDuplicates bool) handle.Edge {
	if !k.liveVertex(from) || !k.liveVertex(to) {
		k.log.Debug("core: AddEdge rejected", slog.String("from", from.String()), slog.String("to", to.String()),
			slog.Any("err", ErrInvalidHandle))
		return handle.InvalidEdge
	}
	if from == to {
		k.log.Debug("core: AddEdge rejected self loop", slog.String("vertex", from.String()))
		return handle.InvalidEdge
	}
	if !allowDuplicates {
		if he := k.FindHalfEdge(from, to); he.IsValid() {
			return handle.EdgeOf(he)
		}
	}

	e := handle.Edge(len(k.edges))
	k.edges = append(k.edges, Edge{From: from, To: to})
	k.edgeDeleted = append(k.edgeDeleted, false)
	if k.vertexBU {
		k.outHalfEdges[from] = append(k.outHalfEdges[from], handle.HalfEdgeOf(e, 0))
		k.outHalfEdges[to] = append(k.outHalfEdges[to], handle.HalfEdgeOf(e, 1))
	}
	if k.edgeBU {
		k.incidentHalfFaces = append(k.incidentHalfFaces, nil, nil)
	}
	k.props.PushBackKind(handle.KindEdge)
	k.props.PushBackKind(handle.KindHalfEdge)
	k.props.PushBackKind(handle.KindHalfEdge)
	return e
}

// AddFace creates a face from a cyclic list of halfedges. With topologyCheck
// the list must close (CheckFace); without it malformed input is the caller's
// responsibility.
// Complexity: O(len(hes)).
func (k *Kernel) AddFace(hes []handle.HalfEdge, topologyCheck bool) handle.Face {
	if topologyCheck {
		if err := k.CheckFace(hes); err != nil {
			k.log.Debug("core: AddFace rejected", slog.Any("err", err))
			return handle.InvalidFace
		}
	} else if k.assert {
		for _, he := range hes {
			if !k.liveHalfEdge(he) {
				k.violation("AddFace", "invalid halfedge "+he.String())
			}
		}
	}

	f := handle.Face(len(k.faces))
	k.faces = append(k.faces, Face{HalfEdges: append([]handle.HalfEdge(nil), hes...)})
	k.faceDeleted = append(k.faceDeleted, false)
	if k.edgeBU {
		hf0, hf1 := handle.HalfFaceOf(f, 0), handle.HalfFaceOf(f, 1)
		for _, he := range hes {
			k.incidentHalfFaces[he] = append(k.incidentHalfFaces[he], hf0)
			opp := handle.Opposite(he)
			k.incidentHalfFaces[opp] = append(k.incidentHalfFaces[opp], hf1)
		}
	}
	if k.faceBU {
		k.incidentCell = append(k.incidentCell, handle.InvalidCell, handle.InvalidCell)
		k.reorderFace(f)
	}
	k.props.PushBackKind(handle.KindFace)
	k.props.PushBackKind(handle.KindHalfFace)
	k.props.PushBackKind(handle.KindHalfFace)
	return f
}

// AddFaceFromVertices resolves (or creates) the edges between consecutive
// vertices and adds the face they bound. Returns InvalidFace for fewer than
// three vertices or an invalid vertex; nothing is added in that case.
func (k *Kernel) AddFaceFromVertices(vs []handle.Vertex) handle.Face {
	if len(vs) < 3 {
		k.log.Debug("core: AddFaceFromVertices rejected", slog.Any("err", ErrDegenerateFace))
		return handle.InvalidFace
	}
	for i, v := range vs {
		if !k.liveVertex(v) || v == vs[(i+1)%len(vs)] {
			k.log.Debug("core: AddFaceFromVertices rejected", slog.String("vertex", v.String()),
				slog.Any("err", ErrInvalidHandle))
			return handle.InvalidFace
		}
	}
	hes := make([]handle.HalfEdge, len(vs))
	for i, from := range vs {
		to := vs[(i+1)%len(vs)]
		e := k.AddEdge(from, to, false)
		if k.edges[e].From == from {
			hes[i] = handle.HalfEdgeOf(e, 0)
		} else {
			hes[i] = handle.HalfEdgeOf(e, 1)
		}
	}
	return k.AddFace(hes, false)
}

// AddCell creates a cell bounded by the given outward halffaces. With
// topologyCheck the halffaces must pass CheckCell.
// When both edge and face incidences are maintained, the halfface fans of the
// cell's edges are reordered.
// Complexity: O(Σ face sizes), plus fan reordering.
func (k *Kernel) AddCell(hfs []handle.HalfFace, topologyCheck bool) handle.Cell {
	if topologyCheck {
		if err := k.CheckCell(hfs); err != nil {
			k.log.Debug("core: AddCell rejected", slog.Any("err", err))
			return handle.InvalidCell
		}
	} else if k.assert {
		for _, hf := range hfs {
			if !k.liveHalfFace(hf) {
				k.violation("AddCell", "invalid halfface "+hf.String())
			}
		}
	}

	c := handle.Cell(len(k.cells))
	k.cells = append(k.cells, Cell{HalfFaces: append([]handle.HalfFace(nil), hfs...)})
	k.cellDeleted = append(k.cellDeleted, false)
	if k.faceBU {
		for _, hf := range hfs {
			k.incidentCell[hf] = c
		}
		k.reorderCell(c)
	}
	k.props.PushBackKind(handle.KindCell)
	return c
}

// CheckFace reports why hes would be rejected as a face, or nil.
func (k *Kernel) CheckFace(hes []handle.HalfEdge) error {
	if len(hes) < 3 {
		return ErrDegenerateFace
	}
	for _, he := range hes {
		if !k.liveHalfEdge(he) {
			return fmt.Errorf("CheckFace(%s): %w", he, ErrInvalidHandle)
		}
	}
	for i, he := range hes {
		next := hes[(i+1)%len(hes)]
		if k.ToVertex(he) != k.FromVertex(next) {
			return fmt.Errorf("CheckFace: %s does not lead into %s: %w", he, next, ErrOpenFace)
		}
	}
	if want := k.topo.faceValence(); want != 0 && len(hes) != want {
		return fmt.Errorf("CheckFace: %d halfedges in a %s mesh: %w", len(hes), k.topo, ErrValence)
	}
	return nil
}

// CheckCell reports why hfs would be rejected as a cell, or nil. A valid cell
// references each face once, every halfedge of its halffaces is matched by its
// opposite (closed surface), the halffaces are edge-connected, none of them
// already bounds another cell, and the valence fits the topology type.
func (k *Kernel) CheckCell(hfs []handle.HalfFace) error {
	if len(hfs) == 0 {
		return ErrEmptyCell
	}
	seen := make(map[handle.Face]struct{}, len(hfs))
	for _, hf := range hfs {
		if !k.liveHalfFace(hf) {
			return fmt.Errorf("CheckCell(%s): %w", hf, ErrInvalidHandle)
		}
		f := handle.FaceOf(hf)
		if _, dup := seen[f]; dup {
			return fmt.Errorf("CheckCell(%s): %w", f, ErrDuplicateFace)
		}
		seen[f] = struct{}{}
		if k.halfFaceInUse(hf) {
			return fmt.Errorf("CheckCell(%s): %w", hf, ErrHalfFaceInUse)
		}
	}

	hes := make(map[handle.HalfEdge]struct{})
	for _, hf := range hfs {
		for _, he := range k.HalfFace(hf) {
			hes[he] = struct{}{}
		}
	}
	for he := range hes {
		if _, ok := hes[handle.Opposite(he)]; !ok {
			return fmt.Errorf("CheckCell: %s unmatched: %w", he, ErrOpenCell)
		}
	}

	if n := k.components(hfs); n != 1 {
		return fmt.Errorf("CheckCell: %d components: %w", n, ErrDisconnectedCell)
	}
	if want := k.topo.cellValence(); want != 0 && len(hfs) != want {
		return fmt.Errorf("CheckCell: %d halffaces in a %s mesh: %w", len(hfs), k.topo, ErrValence)
	}
	return nil
}

// halfFaceInUse reports whether hf already bounds a live cell.
func (k *Kernel) halfFaceInUse(hf handle.HalfFace) bool {
	if k.faceBU {
		return k.incidentCell[hf].IsValid()
	}
	for c, cell := range k.cells {
		if k.cellDeleted[c] {
			continue
		}
		for _, x := range cell.HalfFaces {
			if x == hf {
				return true
			}
		}
	}
	return false
}

// components counts edge-connected groups of hfs with a union-find.
func (k *Kernel) components(hfs []handle.HalfFace) int {
	parent := make([]int, len(hfs))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	first := make(map[handle.Edge]int)
	for i, hf := range hfs {
		for _, he := range k.HalfFace(hf) {
			e := handle.EdgeOf(he)
			j, ok := first[e]
			if !ok {
				first[e] = i
				continue
			}
			if ri, rj := find(i), find(j); ri != rj {
				parent[ri] = rj
			}
		}
	}
	n := 0
	for i := range parent {
		if find(i) == i {
			n++
		}
	}
	return n
}

func (k *Kernel) liveVertex(v handle.Vertex) bool {
	return v.IsValid() && v.Idx() < k.nVertices && !k.vertexDeleted[v]
}

func (k *Kernel) liveEdge(e handle.Edge) bool {
	return e.IsValid() && e.Idx() < len(k.edges) && !k.edgeDeleted[e]
}

func (k *Kernel) liveHalfEdge(he handle.HalfEdge) bool { return k.liveEdge(handle.EdgeOf(he)) }

func (k *Kernel) liveFace(f handle.Face) bool {
	return f.IsValid() && f.Idx() < len(k.faces) && !k.faceDeleted[f]
}

func (k *Kernel) liveHalfFace(hf handle.HalfFace) bool { return k.liveFace(handle.FaceOf(hf)) }

func (k *Kernel) liveCell(c handle.Cell) bool {
	return c.IsValid() && c.Idx() < len(k.cells) && !k.cellDeleted[c]
}
