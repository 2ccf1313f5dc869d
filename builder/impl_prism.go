// SPDX-License-Identifier: MIT
// Package: volmesh/builder
//
// impl_prism.go - implementation of FacePrism(sides).

package builder

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
)

// FacePrism returns a Constructor adding one polyhedral cell: a unit-height
// prism over a regular polygon with the given number of sides (≥ 3). The
// cell has two sides-gons and sides quads, so it only passes topology checks
// on polyhedral meshes unless sides is 4.
// Complexity: O(sides).
func FacePrism(sides int) Constructor {
	return func(m *geometry.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodFacePrism, "sides", sides, MinPrismSides); err != nil {
			return err
		}
		if err := validateRand(MethodFacePrism, cfg); err != nil {
			return err
		}

		// Bottom ring 0..sides-1, top ring sides..2·sides-1.
		pts := make([]v3.Vec, 2*sides)
		for k := range sides {
			a := 2 * math.Pi * float64(k) / float64(sides)
			pts[k] = v3.Vec{X: math.Cos(a), Y: math.Sin(a)}
			pts[sides+k] = v3.Vec{X: math.Cos(a), Y: math.Sin(a), Z: 1}
		}
		vs := addPoints(m, cfg, pts)

		loops := [][]handle.Vertex{vs[:sides], vs[sides:]}
		for k := range sides {
			next := (k + 1) % sides
			loops = append(loops, pick(vs, k, next, sides+next, sides+k))
		}
		_, err := cellFromLoops(m, cfg, MethodFacePrism, loops)
		return err
	}
}
