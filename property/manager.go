// SPDX-License-Identifier: MIT
//
// File: manager.go
// Role: Manager state (trackers, entity sizes, shared-name table), lifecycle
//       transitions and the broadcast API driven by the topology kernel.
// Policy:
//   - The shared-name table is the only strong reference the Manager holds.
//   - Broadcasts walk trackers in registration order.

package property

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/volmesh/handle"
)

type nameKey struct {
	kind handle.Kind
	name string
}

// Manager owns the per-kind trackers of one mesh.
type Manager struct {
	trackers [handle.NumKinds]Tracker
	sizes    [handle.NumKinds]int
	named    map[nameKey][]Storage
}

// NewManager returns an empty Manager. The mesh kind always has one slot.
func NewManager() *Manager {
	m := &Manager{named: make(map[nameKey][]Storage)}
	m.sizes[handle.KindMesh] = 1
	return m
}

// Size returns the entity count the Manager currently sizes kind k to.
func (m *Manager) Size(k handle.Kind) int { return m.sizes[k] }

func (m *Manager) track(s Storage) {
	m.trackers[s.Kind()].add(s.newRef())
}

func (m *Manager) addNamed(s Storage) {
	key := nameKey{s.Kind(), s.Name()}
	m.named[key] = append(m.named[key], s)
}

func (m *Manager) removeNamed(s Storage) {
	key := nameKey{s.Kind(), s.Name()}
	list := lo.Without(m.named[key], s)
	if len(list) == 0 {
		delete(m.named, key)
		return
	}
	m.named[key] = list
}

// findNamed returns the shared storage of kind k and name whose element type
// matches probe.
func (m *Manager) findNamed(k handle.Kind, name string, probe Storage) Storage {
	for _, s := range m.named[nameKey{k, name}] {
		if s.sameType(probe) {
			return s
		}
	}
	return nil
}

// SetShared moves a property between the Private and Shared states.
// Disabling sharing first clears the persistent flag.
func (m *Manager) SetShared(h Holder, enable bool) error {
	s, err := m.owned(h)
	if err != nil {
		return err
	}
	fl := s.state()
	if enable == fl.shared {
		return nil
	}
	if !enable {
		fl.persistent = false
		fl.shared = false
		m.removeNamed(s)
		return nil
	}
	if s.Name() == "" {
		return fmt.Errorf("SetShared: %w", ErrSharedNeedsName)
	}
	if m.findNamed(s.Kind(), s.Name(), s) != nil {
		return fmt.Errorf("SetShared(%s %q): %w", s.Kind(), s.Name(), ErrSharedNameCollision)
	}
	fl.shared = true
	m.addNamed(s)
	return nil
}

// SetPersistent moves a property between the Shared and Persistent states.
func (m *Manager) SetPersistent(h Holder, enable bool) error {
	s, err := m.owned(h)
	if err != nil {
		return err
	}
	fl := s.state()
	if enable && !fl.shared {
		return fmt.Errorf("SetPersistent(%s %q): %w", s.Kind(), s.Name(), ErrPersistentNeedsShared)
	}
	fl.persistent = enable
	return nil
}

func (m *Manager) owned(h Holder) (Storage, error) {
	if h == nil {
		return nil, ErrNilProperty
	}
	s := h.Storage()
	if s == nil {
		return nil, ErrNilProperty
	}
	if s.Detached() {
		return nil, ErrDetached
	}
	if !m.trackers[s.Kind()].contains(s) {
		return nil, ErrForeignProperty
	}
	return s, nil
}

// Props returns all live properties of kind k in registration order.
func (m *Manager) Props(k handle.Kind) []Storage { return m.trackers[k].live() }

// PersistentProps returns the persistent properties of kind k in
// registration order.
func (m *Manager) PersistentProps(k handle.Kind) []Storage {
	return lo.Filter(m.Props(k), func(s Storage, _ int) bool { return s.Persistent() })
}

// NProps returns the number of live properties of kind k.
func (m *Manager) NProps(k handle.Kind) int { return len(m.Props(k)) }

// NShared returns the number of shared (including persistent) properties of kind k.
func (m *Manager) NShared(k handle.Kind) int {
	return lo.CountBy(m.Props(k), func(s Storage) bool { return s.Shared() })
}

// NPersistent returns the number of persistent properties of kind k.
func (m *Manager) NPersistent(k handle.Kind) int {
	return lo.CountBy(m.Props(k), func(s Storage) bool { return s.Persistent() })
}

// ResizeKind resizes every property of kind k to n entities.
func (m *Manager) ResizeKind(k handle.Kind, n int) {
	m.sizes[k] = n
	m.trackers[k].each(func(s Storage) { s.Resize(n) })
}

// PushBackKind appends one default value to every property of kind k.
func (m *Manager) PushBackKind(k handle.Kind) {
	m.sizes[k]++
	m.trackers[k].each(func(s Storage) { s.PushBack() })
}

// SwapKind exchanges the values of entities i and j in every property of kind k.
func (m *Manager) SwapKind(k handle.Kind, i, j int) {
	m.trackers[k].each(func(s Storage) { s.Swap(i, j) })
}

// DeleteKind erases entity i from every property of kind k, shifting the
// following values down by one.
func (m *Manager) DeleteKind(k handle.Kind, i int) {
	m.sizes[k]--
	m.trackers[k].each(func(s Storage) { s.Delete(i) })
}

// CompactKind keeps the entities whose keep flag is set, preserving order.
func (m *Manager) CompactKind(k handle.Kind, keep []bool) {
	m.sizes[k] = lo.Count(keep, true)
	m.trackers[k].each(func(s Storage) { s.Compact(keep) })
}

// ClearKind empties every property of kind k.
func (m *Manager) ClearKind(k handle.Kind) {
	m.sizes[k] = 0
	m.trackers[k].each(func(s Storage) { s.Clear() })
}

// Release detaches every tracked property. Holders keep their values, but the
// properties no longer follow this Manager and cannot change state. The
// Manager itself is left empty and may be reused.
func (m *Manager) Release() {
	for k := range m.trackers {
		m.trackers[k].each(func(s Storage) { s.state().detached = true })
		m.trackers[k].reset()
	}
	clear(m.named)
}
