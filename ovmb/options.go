// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for Reader and Writer.
// Policy:
//   - Options never fail at apply time; invalid arguments panic at
//     construction, like core's option constructors.

package ovmb

import (
	"log/slog"
	"math"
)

// DefaultMaxChunkElements bounds the entities per VERT, TOPO and PROP chunk.
const DefaultMaxChunkElements = 1 << 20

type readConfig struct {
	topologyCheck bool
	bottomUp      bool
	registry      *Registry
	logger        *slog.Logger
}

func defaultReadConfig() readConfig {
	return readConfig{topologyCheck: true, bottomUp: true, logger: slog.Default()}
}

// ReadOption configures a Reader.
type ReadOption func(*readConfig)

// WithTopologyCheck validates every face and cell while reading (default on).
func WithTopologyCheck(on bool) ReadOption {
	return func(c *readConfig) { c.topologyCheck = on }
}

// WithBottomUpIncidences enables all bottom-up incidences on the mesh after a
// successful read (default on).
func WithBottomUpIncidences(on bool) ReadOption {
	return func(c *readConfig) { c.bottomUp = on }
}

// WithRegistry selects the codecs used for properties. Defaults to a
// DefaultRegistry.
func WithRegistry(r *Registry) ReadOption {
	if r == nil {
		panic("ovmb: WithRegistry(nil)")
	}
	return func(c *readConfig) { c.registry = r }
}

// WithReadLogger sets the logger for skipped chunks and properties.
func WithReadLogger(l *slog.Logger) ReadOption {
	if l == nil {
		panic("ovmb: WithReadLogger(nil)")
	}
	return func(c *readConfig) { c.logger = l }
}

type writeConfig struct {
	maxChunk int
	vertex   VertexEncoding
	registry *Registry
	logger   *slog.Logger
}

func defaultWriteConfig() writeConfig {
	return writeConfig{maxChunk: DefaultMaxChunkElements, vertex: VertexDouble, logger: slog.Default()}
}

// WriteOption configures a Writer.
type WriteOption func(*writeConfig)

// WithMaxChunkElements splits VERT, TOPO and PROP data into chunks of at most
// n entities.
func WithMaxChunkElements(n int) WriteOption {
	if n < 1 || uint64(n) > math.MaxUint32 {
		panic("ovmb: WithMaxChunkElements: n out of range")
	}
	return func(c *writeConfig) { c.maxChunk = n }
}

// WithVertexEncoding selects float32 or float64 (default) vertex components.
func WithVertexEncoding(e VertexEncoding) WriteOption {
	if !e.Valid() {
		panic("ovmb: WithVertexEncoding: unknown encoding")
	}
	return func(c *writeConfig) { c.vertex = e }
}

// WithWriteRegistry selects the codecs used for properties.
func WithWriteRegistry(r *Registry) WriteOption {
	if r == nil {
		panic("ovmb: WithWriteRegistry(nil)")
	}
	return func(c *writeConfig) { c.registry = r }
}

// WithWriteLogger sets the logger for properties skipped for lack of a codec.
func WithWriteLogger(l *slog.Logger) WriteOption {
	if l == nil {
		panic("ovmb: WithWriteLogger(nil)")
	}
	return func(c *writeConfig) { c.logger = l }
}
