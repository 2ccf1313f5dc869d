// SPDX-License-Identifier: MIT

package property

import (
	"iter"

	"github.com/katalvlaran/volmesh/handle"
)

// Holder is anything that can hand out its Storage (Property values and
// *Array pointers).
type Holder interface {
	Storage() Storage
}

// Property is a typed, reference-like handle to a per-entity array of T
// attached to entity kind K. Copies of a Property share the same storage.
// The zero value is not valid.
type Property[K handle.Tag, T any] struct {
	arr *Array[T]
}

// Property aliases per entity kind.
type (
	VertexProperty[T any]   = Property[handle.VertexTag, T]
	EdgeProperty[T any]     = Property[handle.EdgeTag, T]
	HalfEdgeProperty[T any] = Property[handle.HalfEdgeTag, T]
	FaceProperty[T any]     = Property[handle.FaceTag, T]
	HalfFaceProperty[T any] = Property[handle.HalfFaceTag, T]
	CellProperty[T any]     = Property[handle.CellTag, T]
	MeshProperty[T any]     = Property[handle.MeshTag, T]
)

func wrap[K handle.Tag, T any](a *Array[T]) Property[K, T] { return Property[K, T]{arr: a} }

// Valid reports whether p refers to storage.
func (p Property[K, T]) Valid() bool { return p.arr != nil }

// Get returns the value for h.
func (p Property[K, T]) Get(h handle.Handle[K]) T { return p.arr.vals[h] }

// Set stores v for h.
func (p Property[K, T]) Set(h handle.Handle[K], v T) { p.arr.vals[h] = v }

// Ref returns a pointer to the value for h. The pointer is invalidated by any
// structural mesh mutation.
func (p Property[K, T]) Ref(h handle.Handle[K]) *T { return &p.arr.vals[h] }

// Fill assigns v to every entity.
func (p Property[K, T]) Fill(v T) {
	for i := range p.arr.vals {
		p.arr.vals[i] = v
	}
}

// Len returns the number of values.
func (p Property[K, T]) Len() int { return len(p.arr.vals) }

// Values exposes the backing slice indexed by handle index.
func (p Property[K, T]) Values() []T { return p.arr.vals }

// All yields (handle, value) pairs in index order.
func (p Property[K, T]) All() iter.Seq2[handle.Handle[K], T] {
	return func(yield func(handle.Handle[K], T) bool) {
		for i, v := range p.arr.vals {
			if !yield(handle.Handle[K](i), v) {
				return
			}
		}
	}
}

func (p Property[K, T]) Name() string     { return p.arr.name }
func (p Property[K, T]) Default() T       { return p.arr.def }
func (p Property[K, T]) Shared() bool     { return p.arr.fl.shared }
func (p Property[K, T]) Persistent() bool { return p.arr.fl.persistent }
func (p Property[K, T]) Detached() bool   { return p.arr.fl.detached }

// Anonymous reports whether the property has no name.
func (p Property[K, T]) Anonymous() bool { return p.arr.name == "" }

// Array returns the underlying storage.
func (p Property[K, T]) Array() *Array[T] { return p.arr }

// Storage implements Holder. A zero Property yields a nil Storage.
func (p Property[K, T]) Storage() Storage {
	if p.arr == nil {
		return nil
	}
	return p.arr
}

// kindOf returns the runtime kind of tag K.
func kindOf[K handle.Tag]() handle.Kind {
	var k K
	return k.Kind()
}
