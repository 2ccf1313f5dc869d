// Package core provides the topology kernel of a volumetric (polyhedral) mesh:
// vertices, edges, faces and cells, their half-entities, optional bottom-up
// incidence indices, deferred deletion with garbage collection, and the
// circulators that walk adjacency.
//
// Connectivity is top-down and index based:
//
//	edge  = (from vertex, to vertex)
//	face  = cyclic list of halfedges
//	cell  = list of halffaces, each oriented outward from the cell
//
// Bottom-up incidences are opt-in, because bulk construction is far cheaper
// without them:
//
//	vertex   → outgoing halfedges        (EnableVertexBottomUpIncidences)
//	halfedge → incident halffaces, fan   (EnableEdgeBottomUpIncidences)
//	halfface → incident cell or invalid  (EnableFaceBottomUpIncidences)
//
// Enabling an index recomputes it in O(mesh size); disabling frees it.
//
// Kernel options (Option):
//
//	– WithBottomUpIncidences(on)      all three incidence indices (default off)
//	– WithVertexBottomUp(on), WithEdgeBottomUp(on), WithFaceBottomUp(on)
//	– WithDeferredDeletion(on)        mark-then-CollectGarbage (default on);
//	                                  off compacts after every delete
//	– WithTopologyType(t)             tetrahedral/hexahedral valence rules for
//	                                  topology-checked adds
//	– WithAssertions(on)              panic on caller-contract violations
//	– WithLogger(l)                   slog logger for diagnostics
//
// Core Methods:
//
//	// Construction
//	AddVertex() handle.Vertex                                  // O(1) amortized
//	AddEdge(from, to, allowDuplicates) handle.Edge             // O(deg(from)) with vertex incidences
//	AddFace(hes, topologyCheck) handle.Face                    // O(len(hes))
//	AddFaceFromVertices(vs) handle.Face
//	AddCell(hfs, topologyCheck) handle.Cell                    // O(Σ face sizes)
//
//	// Destruction
//	DeleteVertex/DeleteEdge/DeleteFace/DeleteCell(h) EntityIter // cascades upward
//	CollectGarbage()                                           // O(mesh size)
//
//	// Queries
//	IsBoundary*, IncidentCell, Valence*, FindHalfEdge, FindHalfFace
//
//	// Traversal
//	Vertices(), Edges(), ..., Boundary*(), and ~27 circulators
//	(VertexVertices, CellVertices, HalfEdgeHalfFaces, ...)
//
// Failure semantics: mutators never return errors. A topology-checked add that
// rejects its input returns the invalid handle and leaves the mesh unchanged;
// the reason is logged at debug level and available from CheckFace/CheckCell.
// Caller-contract violations (queries that need disabled incidences, invalid
// handles) panic under WithAssertions(true) and are otherwise unchecked.
//
// Concurrency: a Kernel is not safe for concurrent mutation. Concurrent
// read-only traversal is safe while no goroutine mutates.
package core
