// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors describing why a topology check rejected a face or cell.
// AddFace/AddCell report rejection by returning an invalid handle; CheckFace
// and CheckCell expose the reason.
var (
	// ErrInvalidHandle indicates a referenced entity is out of range or deleted.
	ErrInvalidHandle = errors.New("core: invalid or deleted handle")

	// ErrDegenerateFace indicates a face with fewer than three halfedges.
	ErrDegenerateFace = errors.New("core: face needs at least three halfedges")

	// ErrOpenFace indicates consecutive halfedges do not share a vertex, or the
	// loop does not close.
	ErrOpenFace = errors.New("core: halfedges do not form a closed loop")

	// ErrEmptyCell indicates a cell without halffaces.
	ErrEmptyCell = errors.New("core: cell needs halffaces")

	// ErrDuplicateFace indicates a cell referencing the same face twice.
	ErrDuplicateFace = errors.New("core: cell references a face twice")

	// ErrOpenCell indicates a cell whose halffaces do not form a closed surface
	// (some halfedge lacks its opposite).
	ErrOpenCell = errors.New("core: halffaces do not form a closed surface")

	// ErrDisconnectedCell indicates halffaces falling apart into several
	// edge-connected components.
	ErrDisconnectedCell = errors.New("core: halffaces are not connected")

	// ErrHalfFaceInUse indicates a halfface that already bounds a cell.
	ErrHalfFaceInUse = errors.New("core: halfface already has an incident cell")

	// ErrValence indicates a face or cell violating the kernel's topology type.
	ErrValence = errors.New("core: valence does not match topology type")

	// ErrTopoType indicates an undeclared topology type value.
	ErrTopoType = errors.New("core: unknown topology type")
)
