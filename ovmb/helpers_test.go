// SPDX-License-Identifier: MIT
// Package ovmb contains byte-level fixtures for crafting files by hand.

package ovmb

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/volmesh/core"
	"github.com/katalvlaran/volmesh/geometry"
)

// header returns a current-version polyhedral header with the given counts.
func header(nv, ne, nf, nc uint64) FileHeader {
	return FileHeader{
		FileVersion:   FileVersion,
		HeaderVersion: HeaderVersion,
		VertexDim:     VertexDim,
		TopoType:      core.TopoPolyhedral,
		NVertices:     nv,
		NEdges:        ne,
		NFaces:        nf,
		NCells:        nc,
	}
}

// rawChunk emits h and payload exactly as given.
func rawChunk(h ChunkHeader, payload []byte) []byte {
	return append(h.append(nil), payload...)
}

// chunk emits a version 0, uncompressed chunk with correct padding.
func chunk(t ChunkType, mandatory bool, payload []byte) []byte {
	pad := padding(len(payload))
	h := ChunkHeader{Type: t, Padding: uint8(pad), FileLength: uint64(len(payload) + pad)}
	if mandatory {
		h.Flags = FlagMandatory
	}
	return append(rawChunk(h, payload), make([]byte, pad)...)
}

func eofChunk() []byte { return chunk(ChunkEOF, true, nil) }

func file(h FileHeader, chunks ...[]byte) []byte {
	b := h.append([]byte(Magic))
	for _, c := range chunks {
		b = append(b, c...)
	}
	return b
}

// vertPayload encodes pts as float64 starting at first.
func vertPayload(first uint64, pts ...v3.Vec) []byte {
	b := ArraySpan{First: first, Count: uint32(len(pts))}.append(nil)
	b = append(b, uint8(VertexDouble), 0, 0, 0)
	for _, p := range pts {
		for _, c := range []float64{p.X, p.Y, p.Z} {
			b = binary.LittleEndian.AppendUint64(b, math.Float64bits(c))
		}
	}
	return b
}

// edgePayload encodes vertex pairs with one-byte handles and no offset.
func edgePayload(first uint64, pairs ...[2]uint8) []byte {
	b := ArraySpan{First: first, Count: uint32(len(pairs))}.append(nil)
	b = append(b, uint8(TopoEdges), 2, 0, uint8(IntU8))
	b = binary.LittleEndian.AppendUint64(b, 0)
	for _, p := range pairs {
		b = append(b, p[0], p[1])
	}
	return b
}

func readBytes(t *testing.T, b []byte, opts ...ReadOption) (*Reader, *geometry.Mesh, error) {
	t.Helper()
	m := geometry.New()
	r := NewReader(bytes.NewReader(b), opts...)
	return r, m, r.ReadFile(m)
}
