// SPDX-License-Identifier: MIT
//
// File: iter.go
// Role: Entity iterators (cursor and range-over-func forms) skipping deleted
//       entities, and their boundary-restricted variants.

package core

import (
	"iter"

	"github.com/katalvlaran/volmesh/handle"
)

// EntityIter is a cursor over the live entities of one kind in index order.
// It reads the kernel on every step, so it observes deletions made while
// iterating.
type EntityIter[T handle.Tag] struct {
	k   *Kernel
	cur int
}

func newEntityIter[T handle.Tag](k *Kernel, from int) EntityIter[T] {
	it := EntityIter[T]{k: k, cur: from - 1}
	it.Next()
	return it
}

func (it EntityIter[T]) kind() handle.Kind { return handle.Handle[T](0).Kind() }

// Valid reports whether the cursor is on a live entity.
func (it EntityIter[T]) Valid() bool { return it.cur < it.k.count(it.kind()) }

// Handle returns the current entity; invalid once the cursor is exhausted.
func (it EntityIter[T]) Handle() handle.Handle[T] {
	if !it.Valid() {
		return handle.Handle[T](-1)
	}
	return handle.Handle[T](it.cur)
}

// Next advances to the next live entity.
func (it *EntityIter[T]) Next() {
	kind, n := it.kind(), it.k.count(it.kind())
	for it.cur++; it.cur < n && it.k.deleted(kind, it.cur); it.cur++ {
	}
}

func (k *Kernel) count(kind handle.Kind) int {
	switch kind {
	case handle.KindVertex:
		return k.nVertices
	case handle.KindEdge:
		return len(k.edges)
	case handle.KindHalfEdge:
		return 2 * len(k.edges)
	case handle.KindFace:
		return len(k.faces)
	case handle.KindHalfFace:
		return 2 * len(k.faces)
	case handle.KindCell:
		return len(k.cells)
	case handle.KindMesh:
		return 1
	}
	return 0
}

func (k *Kernel) deleted(kind handle.Kind, i int) bool {
	switch kind {
	case handle.KindVertex:
		return k.vertexDeleted[i]
	case handle.KindEdge:
		return k.edgeDeleted[i]
	case handle.KindHalfEdge:
		return k.edgeDeleted[i/2]
	case handle.KindFace:
		return k.faceDeleted[i]
	case handle.KindHalfFace:
		return k.faceDeleted[i/2]
	case handle.KindCell:
		return k.cellDeleted[i]
	}
	return false
}

func (k *Kernel) vertexIterFrom(i int) EntityIter[handle.VertexTag] {
	return newEntityIter[handle.VertexTag](k, i)
}
func (k *Kernel) edgeIterFrom(i int) EntityIter[handle.EdgeTag] {
	return newEntityIter[handle.EdgeTag](k, i)
}
func (k *Kernel) faceIterFrom(i int) EntityIter[handle.FaceTag] {
	return newEntityIter[handle.FaceTag](k, i)
}
func (k *Kernel) cellIterFrom(i int) EntityIter[handle.CellTag] {
	return newEntityIter[handle.CellTag](k, i)
}

func (k *Kernel) VertexIter() EntityIter[handle.VertexTag] { return k.vertexIterFrom(0) }
func (k *Kernel) EdgeIter() EntityIter[handle.EdgeTag]     { return k.edgeIterFrom(0) }
func (k *Kernel) HalfEdgeIter() EntityIter[handle.HalfEdgeTag] {
	return newEntityIter[handle.HalfEdgeTag](k, 0)
}
func (k *Kernel) FaceIter() EntityIter[handle.FaceTag] { return k.faceIterFrom(0) }
func (k *Kernel) HalfFaceIter() EntityIter[handle.HalfFaceTag] {
	return newEntityIter[handle.HalfFaceTag](k, 0)
}
func (k *Kernel) CellIter() EntityIter[handle.CellTag] { return k.cellIterFrom(0) }

func seq[T handle.Tag](k *Kernel) iter.Seq[handle.Handle[T]] {
	return func(yield func(handle.Handle[T]) bool) {
		for it := newEntityIter[T](k, 0); it.Valid(); it.Next() {
			if !yield(it.Handle()) {
				return
			}
		}
	}
}

// Vertices yields the live vertices in index order.
func (k *Kernel) Vertices() iter.Seq[handle.Vertex] { return seq[handle.VertexTag](k) }

// Edges yields the live edges in index order.
func (k *Kernel) Edges() iter.Seq[handle.Edge] { return seq[handle.EdgeTag](k) }

// HalfEdges yields the halfedges of live edges in index order.
func (k *Kernel) HalfEdges() iter.Seq[handle.HalfEdge] { return seq[handle.HalfEdgeTag](k) }

// Faces yields the live faces in index order.
func (k *Kernel) Faces() iter.Seq[handle.Face] { return seq[handle.FaceTag](k) }

// HalfFaces yields the halffaces of live faces in index order.
func (k *Kernel) HalfFaces() iter.Seq[handle.HalfFace] { return seq[handle.HalfFaceTag](k) }

// Cells yields the live cells in index order.
func (k *Kernel) Cells() iter.Seq[handle.Cell] { return seq[handle.CellTag](k) }

func filtered[T handle.Tag](src iter.Seq[handle.Handle[T]], keep func(handle.Handle[T]) bool) iter.Seq[handle.Handle[T]] {
	return func(yield func(handle.Handle[T]) bool) {
		for h := range src {
			if keep(h) && !yield(h) {
				return
			}
		}
	}
}

func empty[T handle.Tag](yield func(handle.Handle[T]) bool) {}

// BoundaryVertices yields the live boundary vertices. Empty unless all
// incidences are maintained.
func (k *Kernel) BoundaryVertices() iter.Seq[handle.Vertex] {
	if !k.needFull("BoundaryVertices") {
		return empty[handle.VertexTag]
	}
	return filtered(k.Vertices(), k.IsBoundaryVertex)
}

// BoundaryEdges yields the live boundary edges. Empty unless edge and face
// incidences are maintained.
func (k *Kernel) BoundaryEdges() iter.Seq[handle.Edge] {
	if !k.needEdgeBU("BoundaryEdges") || !k.needFaceBU("BoundaryEdges") {
		return empty[handle.EdgeTag]
	}
	return filtered(k.Edges(), k.IsBoundaryEdge)
}

// BoundaryFaces yields the live faces with a cell on at most one side.
func (k *Kernel) BoundaryFaces() iter.Seq[handle.Face] {
	if !k.needFaceBU("BoundaryFaces") {
		return empty[handle.FaceTag]
	}
	return filtered(k.Faces(), k.IsBoundaryFace)
}

// BoundaryHalfFaces yields the live halffaces that bound no cell.
func (k *Kernel) BoundaryHalfFaces() iter.Seq[handle.HalfFace] {
	if !k.needFaceBU("BoundaryHalfFaces") {
		return empty[handle.HalfFaceTag]
	}
	return filtered(k.HalfFaces(), k.IsBoundaryHalfFace)
}

// BoundaryCells yields the live cells with at least one boundary side.
func (k *Kernel) BoundaryCells() iter.Seq[handle.Cell] {
	if !k.needFaceBU("BoundaryCells") {
		return empty[handle.CellTag]
	}
	return filtered(k.Cells(), k.IsBoundaryCell)
}

func (k *Kernel) needFull(op string) bool {
	return k.needVertexBU(op) && k.needEdgeBU(op) && k.needFaceBU(op)
}
