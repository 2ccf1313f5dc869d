// SPDX-License-Identifier: MIT
// Package: volmesh/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`:
//       fmt.Errorf("%s: n=%d: %w", MethodTetStrip, n, ErrTooFewCells)
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewCells indicates that a size parameter (nx, ny, nz, n, sides) is
// smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewCells) { /* report invalid size */ }.
var ErrTooFewCells = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates WithJitter was requested without an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the kernel rejected a generated face or cell,
// typically because the mesh's topology type forbids its valence.
// Usage: if errors.Is(err, ErrConstructFailed) { /* pick a compatible topology type */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid enumerated parameter that must
// surface as an error rather than a panic (e.g., unknown PlatonicName).
var ErrOptionViolation = errors.New("builder: invalid option value")
