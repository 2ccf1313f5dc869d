// SPDX-License-Identifier: MIT

package property

import "weak"

// ref is a non-owning reference to a tracked storage.
type ref interface {
	storage() Storage
}

type weakRef[T any] struct {
	p weak.Pointer[Array[T]]
}

func (w weakRef[T]) storage() Storage {
	a := w.p.Value()
	if a == nil {
		return nil
	}
	return a
}

// Tracker enumerates the live properties of one entity kind. It holds weak
// references only; a storage no longer reachable from any holder disappears
// from the tracker on the next walk.
type Tracker struct {
	refs []ref
}

func (t *Tracker) add(r ref) { t.refs = append(t.refs, r) }

// each calls fn for every live storage in registration order and prunes
// collected entries.
func (t *Tracker) each(fn func(Storage)) {
	w := 0
	for _, r := range t.refs {
		s := r.storage()
		if s == nil {
			continue
		}
		t.refs[w] = r
		w++
		fn(s)
	}
	clear(t.refs[w:])
	t.refs = t.refs[:w]
}

func (t *Tracker) live() []Storage {
	out := make([]Storage, 0, len(t.refs))
	t.each(func(s Storage) { out = append(out, s) })
	return out
}

func (t *Tracker) contains(target Storage) bool {
	found := false
	t.each(func(s Storage) {
		if s == target {
			found = true
		}
	})
	return found
}

func (t *Tracker) reset() {
	clear(t.refs)
	t.refs = t.refs[:0]
}
