// SPDX-License-Identifier: MIT
// Package core defines the Kernel type, its entity records and the New
// constructor.
//
// Storage layout (all indexed by handle index):
//
//	edges[e]              Edge{From, To}
//	faces[f]              Face{HalfEdges}
//	cells[c]              Cell{HalfFaces}
//	*Deleted[i]           deferred-deletion marks, one slice per full kind
//	outHalfEdges[v]       vertex bottom-up index (nil when disabled)
//	incidentHalfFaces[he] edge bottom-up index (nil when disabled)
//	incidentCell[hf]      face bottom-up index (nil when disabled)
package core

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/property"
)

// TopoType constrains the valence of faces and cells accepted by
// topology-checked adds. The numeric values match the binary file header.
type TopoType uint8

const (
	// TopoPolyhedral accepts any valence.
	TopoPolyhedral TopoType = 0
	// TopoTetrahedral accepts triangles and cells of four halffaces.
	TopoTetrahedral TopoType = 1
	// TopoHexahedral accepts quads and cells of six halffaces.
	TopoHexahedral TopoType = 2
)

func (t TopoType) String() string {
	switch t {
	case TopoPolyhedral:
		return "polyhedral"
	case TopoTetrahedral:
		return "tetrahedral"
	case TopoHexahedral:
		return "hexahedral"
	default:
		return fmt.Sprintf("topo(%d)", uint8(t))
	}
}

// Valid reports whether t is a declared topology type.
func (t TopoType) Valid() bool { return t <= TopoHexahedral }

// faceValence returns the required face size, or 0 for "any".
func (t TopoType) faceValence() int {
	switch t {
	case TopoTetrahedral:
		return 3
	case TopoHexahedral:
		return 4
	}
	return 0
}

// cellValence returns the required cell size, or 0 for "any".
func (t TopoType) cellValence() int {
	switch t {
	case TopoTetrahedral:
		return 4
	case TopoHexahedral:
		return 6
	}
	return 0
}

// Edge is the top-down record of an edge. Halfedge 0 runs From→To.
type Edge struct {
	From handle.Vertex
	To   handle.Vertex
}

// Face is the top-down record of a face: a closed loop of halfedges.
// The slice is owned by the kernel; callers must not modify it.
type Face struct {
	HalfEdges []handle.HalfEdge
}

// Cell is the top-down record of a cell: halffaces oriented outward.
// The slice is owned by the kernel; callers must not modify it.
type Cell struct {
	HalfFaces []handle.HalfFace
}

// Kernel is the topology kernel of a polyhedral mesh.
type Kernel struct {
	props *property.Manager
	log   *slog.Logger

	topo     TopoType
	deferred bool
	assert   bool

	nVertices int
	edges     []Edge
	faces     []Face
	cells     []Cell

	vertexDeleted []bool
	edgeDeleted   []bool
	faceDeleted   []bool
	cellDeleted   []bool

	nDeletedVertices int
	nDeletedEdges    int
	nDeletedFaces    int
	nDeletedCells    int

	vertexBU bool
	edgeBU   bool
	faceBU   bool

	outHalfEdges      [][]handle.HalfEdge
	incidentHalfFaces [][]handle.HalfFace
	incidentCell      []handle.Cell
}

// New creates an empty Kernel. Without options it is polyhedral, uses deferred
// deletion and maintains no bottom-up incidences.
// Complexity: O(1).
func New(opts ...Option) *Kernel {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	k := &Kernel{
		props:    property.NewManager(),
		log:      cfg.logger,
		topo:     cfg.topo,
		deferred: cfg.deferred,
		assert:   cfg.assert,
	}
	k.EnableVertexBottomUpIncidences(cfg.vertexBU)
	k.EnableEdgeBottomUpIncidences(cfg.edgeBU)
	k.EnableFaceBottomUpIncidences(cfg.faceBU)
	return k
}

// Props returns the property manager of the mesh.
func (k *Kernel) Props() *property.Manager { return k.props }

// Logger returns the kernel's logger.
func (k *Kernel) Logger() *slog.Logger { return k.log }

// TopologyType returns the valence policy of the kernel.
func (k *Kernel) TopologyType() TopoType { return k.topo }

// SetTopologyType changes the valence policy for subsequent checked adds.
// Existing entities are not re-validated.
func (k *Kernel) SetTopologyType(t TopoType) error {
	if !t.Valid() {
		return fmt.Errorf("core: SetTopologyType(%d): %w", uint8(t), ErrTopoType)
	}
	k.topo = t
	return nil
}

// DeferredDeletion reports whether deletions wait for CollectGarbage.
func (k *Kernel) DeferredDeletion() bool { return k.deferred }

// SetDeferredDeletion switches deletion mode. Turning deferral off collects
// pending garbage immediately.
func (k *Kernel) SetDeferredDeletion(on bool) {
	k.deferred = on
	if !on {
		k.CollectGarbage()
	}
}

// violation handles a caller-contract violation: panic under assertions,
// otherwise a debug diagnostic.
func (k *Kernel) violation(op, msg string) {
	if k.assert {
		panic("core: " + op + ": " + msg)
	}
	k.log.Debug("core: contract violation", slog.String("op", op), slog.String("reason", msg))
}

func (k *Kernel) needVertexBU(op string) bool {
	if !k.vertexBU {
		k.violation(op, "vertex bottom-up incidences disabled")
	}
	return k.vertexBU
}

func (k *Kernel) needEdgeBU(op string) bool {
	if !k.edgeBU {
		k.violation(op, "edge bottom-up incidences disabled")
	}
	return k.edgeBU
}

func (k *Kernel) needFaceBU(op string) bool {
	if !k.faceBU {
		k.violation(op, "face bottom-up incidences disabled")
	}
	return k.faceBU
}
