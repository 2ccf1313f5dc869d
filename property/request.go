// SPDX-License-Identifier: MIT
//
// File: request.go
// Role: Generic get-or-create and create entry points. Go has no generic
//       methods, so these are free functions taking the Manager.
// Policy:
//   - Typed variants (Request, CreateShared, ...) bind the kind at compile time.
//   - *Kind variants take the kind at run time; the binary codec uses them.

package property

import "github.com/katalvlaran/volmesh/handle"

// RequestKind is the runtime-kind form of Request.
func RequestKind[T any](m *Manager, k handle.Kind, name string, def T) *Array[T] {
	if name == "" {
		return CreatePrivateKind(m, k, name, def)
	}
	if a, ok := FindKind[T](m, k, name); ok {
		return a
	}
	a := newArray(k, name, def, m.sizes[k])
	a.fl.shared = true
	m.track(a)
	m.addNamed(a)
	return a
}

// FindKind returns the shared property of kind k, name and element type T.
func FindKind[T any](m *Manager, k handle.Kind, name string) (*Array[T], bool) {
	var probe *Array[T]
	s := m.findNamed(k, name, probe)
	if s == nil {
		return nil, false
	}
	return s.(*Array[T]), true
}

// CreateSharedKind is the runtime-kind form of CreateShared.
func CreateSharedKind[T any](m *Manager, k handle.Kind, name string, def T) (*Array[T], bool) {
	if name == "" {
		return nil, false
	}
	if _, exists := FindKind[T](m, k, name); exists {
		return nil, false
	}
	return RequestKind(m, k, name, def), true
}

// CreatePersistentKind is the runtime-kind form of CreatePersistent.
func CreatePersistentKind[T any](m *Manager, k handle.Kind, name string, def T) (*Array[T], bool) {
	a, ok := CreateSharedKind(m, k, name, def)
	if !ok {
		return nil, false
	}
	a.fl.persistent = true
	return a, true
}

// CreatePrivateKind is the runtime-kind form of CreatePrivate.
func CreatePrivateKind[T any](m *Manager, k handle.Kind, name string, def T) *Array[T] {
	a := newArray(k, name, def, m.sizes[k])
	m.track(a)
	return a
}

// Request returns the shared property (K, name, T), creating it with default
// def if absent; def is ignored when the property exists. An empty name always
// creates a fresh private property.
func Request[K handle.Tag, T any](m *Manager, name string, def T) Property[K, T] {
	return wrap[K](RequestKind(m, kindOf[K](), name, def))
}

// CreateShared creates a new shared property and fails if (K, name, T)
// already exists or name is empty.
func CreateShared[K handle.Tag, T any](m *Manager, name string, def T) (Property[K, T], bool) {
	a, ok := CreateSharedKind(m, kindOf[K](), name, def)
	return wrap[K](a), ok
}

// CreatePersistent is CreateShared followed by marking the property persistent.
func CreatePersistent[K handle.Tag, T any](m *Manager, name string, def T) (Property[K, T], bool) {
	a, ok := CreatePersistentKind(m, kindOf[K](), name, def)
	return wrap[K](a), ok
}

// CreatePrivate creates a property that is invisible to name lookups. It only
// touches the tracker of kind K, never the shared-name table.
func CreatePrivate[K handle.Tag, T any](m *Manager, name string, def T) Property[K, T] {
	return wrap[K](CreatePrivateKind(m, kindOf[K](), name, def))
}

// Find returns the shared property (K, name, T) if it exists.
func Find[K handle.Tag, T any](m *Manager, name string) (Property[K, T], bool) {
	a, ok := FindKind[T](m, kindOf[K](), name)
	return wrap[K](a), ok
}
