// SPDX-License-Identifier: MIT

package core

import "log/slog"

// config collects construction-time settings; options mutate it before the
// Kernel is built.
type config struct {
	vertexBU bool
	edgeBU   bool
	faceBU   bool
	deferred bool
	assert   bool
	topo     TopoType
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		deferred: true,
		topo:     TopoPolyhedral,
		logger:   slog.Default(),
	}
}

// Option configures a Kernel before creation.
type Option func(*config)

// WithBottomUpIncidences enables or disables all three bottom-up indices.
func WithBottomUpIncidences(on bool) Option {
	return func(c *config) { c.vertexBU, c.edgeBU, c.faceBU = on, on, on }
}

// WithVertexBottomUp toggles the vertex → outgoing halfedges index.
func WithVertexBottomUp(on bool) Option {
	return func(c *config) { c.vertexBU = on }
}

// WithEdgeBottomUp toggles the halfedge → incident halffaces index.
func WithEdgeBottomUp(on bool) Option {
	return func(c *config) { c.edgeBU = on }
}

// WithFaceBottomUp toggles the halfface → incident cell index.
func WithFaceBottomUp(on bool) Option {
	return func(c *config) { c.faceBU = on }
}

// WithDeferredDeletion selects mark-then-collect deletion (true, default) or
// compaction after every delete (false).
func WithDeferredDeletion(on bool) Option {
	return func(c *config) { c.deferred = on }
}

// WithTopologyType sets the valence policy enforced by topology-checked adds.
// Panics on an undeclared type.
func WithTopologyType(t TopoType) Option {
	if !t.Valid() {
		panic("core: WithTopologyType: unknown topology type")
	}
	return func(c *config) { c.topo = t }
}

// WithAssertions makes caller-contract violations panic instead of being
// logged and ignored.
func WithAssertions(on bool) Option {
	return func(c *config) { c.assert = on }
}

// WithLogger sets the diagnostics logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
