// SPDX-License-Identifier: MIT

package ovmb

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/volmesh/geometry"
)

// ReadFile reads the ovmb file at path into a new mesh.
func ReadFile(path string, opts ...ReadOption) (*geometry.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ovmb: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadMesh(f, opts...)
}

// WriteMesh writes m to w as one complete file.
func WriteMesh(w io.Writer, m *geometry.Mesh, opts ...WriteOption) error {
	return NewWriter(w, opts...).WriteFile(m)
}

// WriteFile creates or truncates path and writes m to it.
func WriteFile(path string, m *geometry.Mesh, opts ...WriteOption) (err error) {
	if m.HasPendingDeletions() {
		return fmt.Errorf("ovmb: WriteFile %s: %w", path, ErrPendingDeletions)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ovmb: create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return WriteMesh(f, m, opts...)
}
