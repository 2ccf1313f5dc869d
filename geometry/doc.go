// SPDX-License-Identifier: MIT
// Package geometry attaches vertex positions to a core.Kernel.
//
// A Mesh is a Kernel plus one shared, persistent vertex property named
// "ovm:position" holding a v3.Vec per vertex. Because the positions live in
// the Kernel's property manager they follow every structural change
// (vertex insertion, deletion, garbage collection, index swaps and copies)
// without any extra bookkeeping here.
//
// Everything else (topology, incidences, circulators) is reached through the
// embedded *core.Kernel:
//
//	m := geometry.New(core.WithBottomUpIncidences(true))
//	a := m.AddVertex(v3.Vec{X: 0, Y: 0, Z: 0})
//	b := m.AddVertex(v3.Vec{X: 1, Y: 0, Z: 0})
//	m.AddEdge(a, b, false)
package geometry
