// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by mesh builders, ensuring
// consistent validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodTetrahedron is the canonical name for the Tetrahedron constructor.
	MethodTetrahedron = "Tetrahedron"
	// MethodHexGrid is the canonical name for the HexGrid constructor.
	MethodHexGrid = "HexGrid"
	// MethodTetStrip is the canonical name for the TetStrip constructor.
	MethodTetStrip = "TetStrip"
	// MethodFacePrism is the canonical name for the FacePrism constructor.
	MethodFacePrism = "FacePrism"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinGridDim is the smallest allowed cell count along one HexGrid axis.
const MinGridDim = 1

// MinStripCells is the smallest TetStrip.
const MinStripCells = 1

// MinPrismSides is the smallest polygon a FacePrism can extrude.
const MinPrismSides = 3

// maxJitter bounds WithJitter so lattice cells cannot fold over.
const maxJitter = 0.5

//-----------------------------------------------------------------------------
// TetStrip helix
//-----------------------------------------------------------------------------

const (
	// helixTurn is the angle between consecutive strip vertices (radians);
	// 2π/3 keeps any four consecutive vertices in general position.
	helixTurn = 2.0943951023931953
	// helixRise is the height gained per strip vertex, in spacing units.
	helixRise = 0.5
)
