// SPDX-License-Identifier: MIT
// Package property implements typed per-entity attribute arrays ("properties")
// that stay in lockstep with the entity arrays of a mesh.
//
// Every property is an Array[T] of exactly one value per entity of its kind.
// A Manager owns one Tracker per entity kind; the mesh calls the Manager's
// broadcast methods (ResizeKind, PushBackKind, SwapKind, DeleteKind,
// CompactKind) whenever the entity count or entity order of a kind changes,
// and every live property of that kind follows.
//
// Lifecycle:
//
//	Private    --SetShared(true), name required-->        Shared
//	Shared     --SetPersistent(true)-->                    Persistent
//	Persistent --SetPersistent(false)-->                   Shared
//	Shared     --SetShared(false), clears persistent-->    Private
//
//   - Private properties are owned by whoever holds a Property value. Their
//     trackers hold weak pointers only, so a dropped private property is
//     garbage collected and silently leaves the tracker.
//   - Shared properties are found by (kind, name, type) and are kept alive by
//     the Manager's name table.
//   - Persistent properties are shared properties that survive mesh copies and
//     are written by the binary codec.
//
// Ownership follows "longest holder wins": a Property may outlive its mesh.
// Manager.Release detaches all tracked storages; detached properties keep
// their values but no longer follow any mesh.
//
// Concurrency: none. Callers synchronize externally; concurrent reads are safe
// while nobody mutates.
//
// Errors:
//
//	ErrSharedNeedsName       - SetShared(true) on an anonymous property.
//	ErrSharedNameCollision   - another shared property owns (kind, name, type).
//	ErrPersistentNeedsShared - SetPersistent(true) on a non-shared property.
//	ErrDetached              - state change on a detached property.
//	ErrForeignProperty       - the property is not tracked by this Manager.
package property
