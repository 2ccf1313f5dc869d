// SPDX-License-Identifier: MIT
// Package builder provides internal helper functions used by Constructor
// implementations to emit vertices, faces and cells.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap with the constructor's method name and a sentinel.
//   - Geometry decides orientation, so callers list face loops in any winding.

package builder

import (
	"fmt"
	"slices"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/samber/lo"

	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
)

// addPoints appends one vertex per lattice point, placed through cfg.
// Complexity: O(len(pts)).
func addPoints(m *geometry.Mesh, cfg builderConfig, pts []v3.Vec) []handle.Vertex {
	vs := make([]handle.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = m.AddVertex(cfg.place(p))
	}
	return vs
}

// newell returns the (unnormalized) Newell normal of a closed polygon.
func newell(m *geometry.Mesh, loop []handle.Vertex) v3.Vec {
	var n v3.Vec
	for i, v := range loop {
		a, b := m.Vertex(v), m.Vertex(loop[(i+1)%len(loop)])
		n = n.Add(a.Cross(b))
	}
	return n
}

func centroid(m *geometry.Mesh, vs []handle.Vertex) v3.Vec {
	var c v3.Vec
	for _, v := range vs {
		c = c.Add(m.Vertex(v))
	}
	return c.DivScalar(float64(len(vs)))
}

// orientOutward returns loop wound so its normal points away from center.
func orientOutward(m *geometry.Mesh, loop []handle.Vertex, center v3.Vec) []handle.Vertex {
	if newell(m, loop).Dot(centroid(m, loop).Sub(center)) >= 0 {
		return loop
	}
	out := slices.Clone(loop)
	slices.Reverse(out)
	return out
}

// halfFaceFor returns the halfface running through loop, creating the face
// when no halfface with that vertex cycle exists yet.
func halfFaceFor(m *geometry.Mesh, method string, loop []handle.Vertex) (handle.HalfFace, error) {
	if hf := m.FindHalfFaceFromVertices(loop); hf.IsValid() {
		return hf, nil
	}
	f := m.AddFaceFromVertices(loop)
	if !f.IsValid() {
		return handle.InvalidHalfFace, fmt.Errorf("%s: face %v rejected: %w", method, loop, ErrConstructFailed)
	}
	return handle.HalfFaceOf(f, 0), nil
}

// cellFromLoops adds the cell bounded by the given vertex loops. Each loop
// is oriented outward against the centroid of all loop vertices; faces
// shared with earlier cells are reused.
// Complexity: O(Σ loop sizes) plus the kernel's face lookup.
func cellFromLoops(m *geometry.Mesh, cfg builderConfig, method string, loops [][]handle.Vertex) (handle.Cell, error) {
	center := centroid(m, lo.Uniq(lo.Flatten(loops)))

	hfs := make([]handle.HalfFace, 0, len(loops))
	for _, loop := range loops {
		hf, err := halfFaceFor(m, method, orientOutward(m, loop, center))
		if err != nil {
			return handle.InvalidCell, err
		}
		hfs = append(hfs, hf)
	}

	if cfg.topologyCheck {
		if err := m.CheckCell(hfs); err != nil {
			return handle.InvalidCell, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
		}
	}
	c := m.AddCell(hfs, false)
	if !c.IsValid() {
		return handle.InvalidCell, fmt.Errorf("%s: cell rejected: %w", method, ErrConstructFailed)
	}
	return c, nil
}

// pick maps local indices to handles.
func pick(vs []handle.Vertex, idx ...int) []handle.Vertex {
	return lo.Map(idx, func(i int, _ int) handle.Vertex { return vs[i] })
}
