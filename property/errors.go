// SPDX-License-Identifier: MIT

package property

import "errors"

// Sentinel errors for property state transitions. Transitions that fail leave
// the property unchanged.
var (
	// ErrSharedNeedsName indicates an attempt to share an anonymous property.
	ErrSharedNeedsName = errors.New("property: shared property requires a name")

	// ErrSharedNameCollision indicates a shared property with the same kind,
	// name and type already exists.
	ErrSharedNameCollision = errors.New("property: shared property name already in use")

	// ErrPersistentNeedsShared indicates SetPersistent(true) on a property that
	// is not shared.
	ErrPersistentNeedsShared = errors.New("property: persistent property must be shared")

	// ErrDetached indicates the property no longer belongs to a live mesh.
	ErrDetached = errors.New("property: property is detached")

	// ErrForeignProperty indicates the property is tracked by another Manager.
	ErrForeignProperty = errors.New("property: property not tracked by this manager")

	// ErrNilProperty indicates a zero Property value was passed.
	ErrNilProperty = errors.New("property: nil property")
)
