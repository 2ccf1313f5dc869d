// SPDX-License-Identifier: MIT
//
// File: clone.go
// Role: Whole-mesh copy, assignment, reset and teardown.

package core

import (
	"slices"

	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/property"
)

func cloneNested[T any](s [][]T) [][]T {
	if s == nil {
		return nil
	}
	out := make([][]T, len(s))
	for i, inner := range s {
		out[i] = slices.Clone(inner)
	}
	return out
}

// copyTopology deep-copies every array and setting of src into k, leaving
// the property manager untouched.
func (k *Kernel) copyTopology(src *Kernel) {
	k.log = src.log
	k.topo, k.deferred, k.assert = src.topo, src.deferred, src.assert
	k.nVertices = src.nVertices
	k.edges = slices.Clone(src.edges)
	k.faces = make([]Face, len(src.faces))
	for i, f := range src.faces {
		k.faces[i] = Face{HalfEdges: slices.Clone(f.HalfEdges)}
	}
	k.cells = make([]Cell, len(src.cells))
	for i, c := range src.cells {
		k.cells[i] = Cell{HalfFaces: slices.Clone(c.HalfFaces)}
	}
	k.vertexDeleted = slices.Clone(src.vertexDeleted)
	k.edgeDeleted = slices.Clone(src.edgeDeleted)
	k.faceDeleted = slices.Clone(src.faceDeleted)
	k.cellDeleted = slices.Clone(src.cellDeleted)
	k.nDeletedVertices, k.nDeletedEdges = src.nDeletedVertices, src.nDeletedEdges
	k.nDeletedFaces, k.nDeletedCells = src.nDeletedFaces, src.nDeletedCells
	k.vertexBU, k.edgeBU, k.faceBU = src.vertexBU, src.edgeBU, src.faceBU
	k.outHalfEdges = cloneNested(src.outHalfEdges)
	k.incidentHalfFaces = cloneNested(src.incidentHalfFaces)
	k.incidentCell = slices.Clone(src.incidentCell)
}

// Clone returns a deep copy of the mesh. Only persistent properties are
// copied; the copy has its own trackers.
// Complexity: O(mesh size + persistent property size).
func (k *Kernel) Clone() *Kernel {
	c := &Kernel{props: property.NewManager()}
	c.copyTopology(k)
	c.props.CloneFrom(k.props)
	return c
}

// Assign replaces k's contents with a copy of src. Shared properties of k
// matching a persistent property of src by name and type receive src's
// values; all other properties of k survive as anonymous private properties
// resized to the new counts, with stale contents.
func (k *Kernel) Assign(src *Kernel) {
	if k == src {
		return
	}
	k.copyTopology(src)
	k.props.AssignFrom(src.props)
}

// Clear removes every entity. Properties stay registered with zero length;
// the mesh-global slot is kept.
func (k *Kernel) Clear() {
	k.nVertices = 0
	k.edges, k.faces, k.cells = nil, nil, nil
	k.vertexDeleted, k.edgeDeleted, k.faceDeleted, k.cellDeleted = nil, nil, nil, nil
	k.nDeletedVertices, k.nDeletedEdges, k.nDeletedFaces, k.nDeletedCells = 0, 0, 0, 0
	if k.vertexBU {
		k.outHalfEdges = nil
	}
	if k.edgeBU {
		k.incidentHalfFaces = nil
	}
	if k.faceBU {
		k.incidentCell = nil
	}
	for _, kind := range []handle.Kind{
		handle.KindVertex, handle.KindEdge, handle.KindHalfEdge,
		handle.KindFace, handle.KindHalfFace, handle.KindCell,
	} {
		k.props.ClearKind(kind)
	}
}

// Release detaches every property from the mesh. Property values held
// elsewhere stay readable but no longer follow the mesh. Call it when the
// mesh is discarded while its properties live on.
func (k *Kernel) Release() { k.props.Release() }
