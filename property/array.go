// SPDX-License-Identifier: MIT
//
// File: array.go
// Role: Storage capability interface and its single generic implementation.
// Policy:
//   - Array[T] never shares its backing slice with another Array.
//   - Index arguments are trusted; out-of-range indices panic like any slice.

package property

import (
	"reflect"
	"slices"
	"weak"

	"github.com/katalvlaran/volmesh/handle"
)

// Storage is the type-erased view of a property used by trackers, the
// Manager and serializers. It is implemented only by *Array[T].
type Storage interface {
	// Name returns the property name; "" for anonymous properties.
	Name() string
	// TypeName returns the Go type of the element, for diagnostics.
	TypeName() string
	// Kind returns the entity kind the property is attached to.
	Kind() handle.Kind
	// Len returns the number of values (equals the entity count of Kind).
	Len() int

	Resize(n int)
	Clear()
	PushBack()
	Swap(i, j int)
	Delete(i int)
	// Compact keeps values whose keep flag is true, preserving order.
	Compact(keep []bool)

	Shared() bool
	Persistent() bool
	Detached() bool

	cloneStorage() Storage
	copyValuesFrom(src Storage) bool
	sameType(other Storage) bool
	state() *flags
	newRef() ref
	setName(name string)
}

// flags is the lifecycle state shared by every Array instantiation.
type flags struct {
	shared     bool
	persistent bool
	detached   bool
}

// Array is the backing store of a property with element type T.
type Array[T any] struct {
	name string
	kind handle.Kind
	def  T
	vals []T
	fl   flags
}

func newArray[T any](kind handle.Kind, name string, def T, n int) *Array[T] {
	a := &Array[T]{name: name, kind: kind, def: def, vals: make([]T, n)}
	a.fillFrom(0)
	return a
}

func (a *Array[T]) fillFrom(i int) {
	for ; i < len(a.vals); i++ {
		a.vals[i] = a.def
	}
}

func (a *Array[T]) Name() string      { return a.name }
func (a *Array[T]) TypeName() string  { return reflect.TypeFor[T]().String() }
func (a *Array[T]) Kind() handle.Kind { return a.kind }
func (a *Array[T]) Len() int          { return len(a.vals) }
func (a *Array[T]) Shared() bool      { return a.fl.shared }
func (a *Array[T]) Persistent() bool  { return a.fl.persistent }
func (a *Array[T]) Detached() bool    { return a.fl.detached }

// Default returns the value new entities receive.
func (a *Array[T]) Default() T { return a.def }

// Values exposes the backing slice. The slice is invalidated by any structural
// mesh mutation.
func (a *Array[T]) Values() []T { return a.vals }

// At returns the value at index i.
func (a *Array[T]) At(i int) T { return a.vals[i] }

// SetAt stores v at index i.
func (a *Array[T]) SetAt(i int, v T) { a.vals[i] = v }

// Storage returns a as a Storage; it lets *Array satisfy Holder.
func (a *Array[T]) Storage() Storage { return a }

// Resize grows with the default value or truncates.
func (a *Array[T]) Resize(n int) {
	old := len(a.vals)
	if n <= old {
		clear(a.vals[n:])
		a.vals = a.vals[:n]
		return
	}
	a.vals = slices.Grow(a.vals, n-old)[:n]
	a.fillFrom(old)
}

func (a *Array[T]) Clear() {
	clear(a.vals)
	a.vals = a.vals[:0]
}

func (a *Array[T]) PushBack() { a.vals = append(a.vals, a.def) }

func (a *Array[T]) Swap(i, j int) { a.vals[i], a.vals[j] = a.vals[j], a.vals[i] }

func (a *Array[T]) Delete(i int) { a.vals = slices.Delete(a.vals, i, i+1) }

func (a *Array[T]) Compact(keep []bool) {
	w := 0
	for r, k := range keep {
		if !k {
			continue
		}
		a.vals[w] = a.vals[r]
		w++
	}
	clear(a.vals[w:])
	a.vals = a.vals[:w]
}

func (a *Array[T]) cloneStorage() Storage {
	c := &Array[T]{name: a.name, kind: a.kind, def: a.def, vals: slices.Clone(a.vals), fl: a.fl}
	c.fl.detached = false
	return c
}

func (a *Array[T]) copyValuesFrom(src Storage) bool {
	s, ok := src.(*Array[T])
	if !ok {
		return false
	}
	a.vals = append(a.vals[:0], s.vals...)
	return true
}

func (a *Array[T]) sameType(other Storage) bool {
	_, ok := other.(*Array[T])
	return ok
}

func (a *Array[T]) state() *flags { return &a.fl }

func (a *Array[T]) newRef() ref { return weakRef[T]{p: weak.Make(a)} }

func (a *Array[T]) setName(name string) { a.name = name }
