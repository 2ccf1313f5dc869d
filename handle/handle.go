// SPDX-License-Identifier: MIT
// Package handle defines strongly typed integer handles for the six entity
// kinds of a volumetric mesh (plus the single mesh-global slot).
//
// A handle is a plain int32 index tagged at compile time with its entity kind,
// so a vertex handle can never be passed where a cell handle is expected.
// The value -1 denotes "invalid".
//
// Half-entities are derived algebraically from their full entity:
//
//	half(full, sub) = 2*full + sub
//	full(half)      = half / 2
//	opposite(half)  = half XOR 1
//
// Handles carry no reference to a mesh; whether idx < count-of-kind holds is
// answered by the mesh that issued them (core.Kernel.IsValid*).
package handle

import (
	"cmp"
	"strconv"
)

// Kind enumerates the entity kinds that handles and properties can refer to.
type Kind uint8

// Entity kinds. Mesh is the single-slot kind used for mesh-global properties.
const (
	KindVertex Kind = iota
	KindEdge
	KindHalfEdge
	KindFace
	KindHalfFace
	KindCell
	KindMesh

	// NumKinds is the number of entity kinds.
	NumKinds = int(KindMesh) + 1
)

var kindNames = [NumKinds]string{"vertex", "edge", "halfedge", "face", "halfface", "cell", "mesh"}

var kindPrefixes = [NumKinds]string{"VH", "EH", "HEH", "FH", "HFH", "CH", "MH"}

// String returns the lower-case kind name ("vertex", "halfface", ...).
func (k Kind) String() string {
	if int(k) < NumKinds {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return int(k) < NumKinds }

// Tag is implemented by the zero-sized marker types that parameterize Handle.
type Tag interface {
	Kind() Kind
}

// Marker types, one per entity kind.
type (
	VertexTag   struct{}
	EdgeTag     struct{}
	HalfEdgeTag struct{}
	FaceTag     struct{}
	HalfFaceTag struct{}
	CellTag     struct{}
	MeshTag     struct{}
)

func (VertexTag) Kind() Kind   { return KindVertex }
func (EdgeTag) Kind() Kind     { return KindEdge }
func (HalfEdgeTag) Kind() Kind { return KindHalfEdge }
func (FaceTag) Kind() Kind     { return KindFace }
func (HalfFaceTag) Kind() Kind { return KindHalfFace }
func (CellTag) Kind() Kind     { return KindCell }
func (MeshTag) Kind() Kind     { return KindMesh }

// Handle is an index into the entity array of kind T.
type Handle[T Tag] int32

// Handle aliases per entity kind.
type (
	Vertex   = Handle[VertexTag]
	Edge     = Handle[EdgeTag]
	HalfEdge = Handle[HalfEdgeTag]
	Face     = Handle[FaceTag]
	HalfFace = Handle[HalfFaceTag]
	Cell     = Handle[CellTag]
	MeshH    = Handle[MeshTag]
)

// Invalid handles.
var (
	InvalidVertex   = Vertex(-1)
	InvalidEdge     = Edge(-1)
	InvalidHalfEdge = HalfEdge(-1)
	InvalidFace     = Face(-1)
	InvalidHalfFace = HalfFace(-1)
	InvalidCell     = Cell(-1)
)

// MeshHandle is the only handle of kind Mesh.
const MeshHandle MeshH = 0

// Idx returns the raw index.
func (h Handle[T]) Idx() int { return int(h) }

// UIdx returns the index as an unsigned value; only meaningful when IsValid.
func (h Handle[T]) UIdx() uint32 { return uint32(h) }

// IsValid reports whether the handle is non-negative. It does not check the
// upper bound, which depends on the mesh.
func (h Handle[T]) IsValid() bool { return h >= 0 }

// Kind returns the entity kind encoded in the handle's type.
func (h Handle[T]) Kind() Kind {
	var t T
	return t.Kind()
}

// String renders the handle as e.g. "VH3" or "HFH-1".
func (h Handle[T]) String() string {
	return kindPrefixes[h.Kind()] + strconv.Itoa(int(h))
}

// Compare orders handles by index, for slices.SortFunc and friends.
func Compare[T Tag](a, b Handle[T]) int { return cmp.Compare(a, b) }

// Half is satisfied by the two half-entity handle kinds.
type Half interface {
	HalfEdgeTag | HalfFaceTag
	Tag
}

// HalfEdgeOf returns the halfedge of e with the given sub index (0 or 1).
// Sub index 0 runs from the edge's from-vertex to its to-vertex.
func HalfEdgeOf(e Edge, sub int) HalfEdge {
	if e < 0 {
		return InvalidHalfEdge
	}
	return HalfEdge(2*int32(e) + int32(sub&1))
}

// EdgeOf returns the full edge of a halfedge.
func EdgeOf(he HalfEdge) Edge {
	if he < 0 {
		return InvalidEdge
	}
	return Edge(he / 2)
}

// HalfFaceOf returns the halfface of f with the given sub index (0 or 1).
// Sub index 0 traverses the face's halfedges in stored order.
func HalfFaceOf(f Face, sub int) HalfFace {
	if f < 0 {
		return InvalidHalfFace
	}
	return HalfFace(2*int32(f) + int32(sub&1))
}

// FaceOf returns the full face of a halfface.
func FaceOf(hf HalfFace) Face {
	if hf < 0 {
		return InvalidFace
	}
	return Face(hf / 2)
}

// Opposite returns the other half of the same full entity. Invalid stays invalid.
func Opposite[T Half](h Handle[T]) Handle[T] {
	if h < 0 {
		return h
	}
	return h ^ 1
}

// Sub returns the sub index (0 or 1) of a half handle.
func Sub[T Half](h Handle[T]) int { return int(h & 1) }
