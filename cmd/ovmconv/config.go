// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: YAML configuration for reading and writing meshes.
// Policy:
//   - Unknown keys are errors, so typos do not pass silently.
//   - Zero values mean "library default".

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/volmesh/ovmb"
)

// Config is the content of the --config file.
//
//	max_chunk_elements: 65536   # entities per VERT/TOPO/PROP chunk
//	vertex_encoding: double     # float | double
//	topology_check: true        # validate faces and cells on read
//	bottom_up_incidences: false # build incidences after reading
type Config struct {
	MaxChunkElements   int    `yaml:"max_chunk_elements"`
	VertexEncoding     string `yaml:"vertex_encoding"`
	TopologyCheck      *bool  `yaml:"topology_check"`
	BottomUpIncidences *bool  `yaml:"bottom_up_incidences"`
}

// loadConfig parses the YAML file at path. An empty path yields the zero
// Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.MaxChunkElements < 0 {
		return cfg, fmt.Errorf("config %s: max_chunk_elements must be positive, got %d", path, cfg.MaxChunkElements)
	}
	if _, err := cfg.vertexEncoding(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) vertexEncoding() (ovmb.VertexEncoding, error) {
	switch c.VertexEncoding {
	case "", "double":
		return ovmb.VertexDouble, nil
	case "float":
		return ovmb.VertexFloat, nil
	default:
		return 0, fmt.Errorf("vertex_encoding %q: want float or double", c.VertexEncoding)
	}
}

func (c Config) readOptions() []ovmb.ReadOption {
	var opts []ovmb.ReadOption
	if c.TopologyCheck != nil {
		opts = append(opts, ovmb.WithTopologyCheck(*c.TopologyCheck))
	}
	// Conversion only walks top-down records, so incidences are skipped
	// unless asked for.
	bu := false
	if c.BottomUpIncidences != nil {
		bu = *c.BottomUpIncidences
	}
	return append(opts, ovmb.WithBottomUpIncidences(bu))
}

func (c Config) writeOptions() []ovmb.WriteOption {
	var opts []ovmb.WriteOption
	if c.MaxChunkElements > 0 {
		opts = append(opts, ovmb.WithMaxChunkElements(c.MaxChunkElements))
	}
	enc, _ := c.vertexEncoding()
	return append(opts, ovmb.WithVertexEncoding(enc))
}
