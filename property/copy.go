// SPDX-License-Identifier: MIT
//
// File: copy.go
// Role: Mesh copy support. CloneFrom backs copy construction, AssignFrom backs
//       copy assignment onto a mesh that may already carry properties.

package property

import "github.com/katalvlaran/volmesh/handle"

// CloneFrom deep-copies every persistent property of src into m and adopts
// src's entity sizes. m is expected to be fresh; non-persistent properties of
// src are not copied.
func (m *Manager) CloneFrom(src *Manager) {
	m.sizes = src.sizes
	for k := range handle.NumKinds {
		for _, s := range src.PersistentProps(handle.Kind(k)) {
			c := s.cloneStorage()
			m.track(c)
			m.addNamed(c)
		}
	}
}

// AssignFrom gives m the persistent properties of src with copy-assignment
// semantics:
//
//   - A shared property of m matching a persistent one of src by (kind, name,
//     type) receives a copy of its values and becomes persistent; existing
//     Property values held by callers see the new contents.
//   - Persistent properties of src without a match are cloned into m.
//   - Every other property of m is NOT destroyed: it is demoted to an anonymous
//     private property and resized to the new entity counts. Its contents are
//     stale after the assignment. Callers holding such properties must not
//     rely on their values.
func (m *Manager) AssignFrom(src *Manager) {
	m.sizes = src.sizes
	matched := make(map[Storage]struct{})
	for k := range handle.NumKinds {
		kind := handle.Kind(k)
		for _, s := range src.PersistentProps(kind) {
			if d := m.findNamed(kind, s.Name(), s); d != nil {
				d.copyValuesFrom(s)
				d.state().persistent = true
				matched[d] = struct{}{}
				continue
			}
			c := s.cloneStorage()
			m.track(c)
			m.addNamed(c)
			matched[c] = struct{}{}
		}
	}
	for k := range handle.NumKinds {
		kind := handle.Kind(k)
		n := m.sizes[kind]
		m.trackers[kind].each(func(s Storage) {
			if _, ok := matched[s]; ok {
				return
			}
			if s.Shared() {
				m.removeNamed(s)
			}
			fl := s.state()
			fl.shared, fl.persistent = false, false
			s.setName("")
			s.Resize(n)
		})
	}
}
