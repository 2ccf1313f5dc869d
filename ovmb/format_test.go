// SPDX-License-Identifier: MIT

package ovmb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/volmesh/core"
)

func TestChunkType_String(t *testing.T) {
	assert.Equal(t, "VERT", ChunkVertices.String())
	assert.Equal(t, "TOPO", ChunkTopology.String())
	assert.Equal(t, "DIRP", ChunkDirectory.String())
	assert.Equal(t, "PROP", ChunkProperty.String())
	assert.Equal(t, "EOF ", ChunkEOF.String())
}

func TestRecordSizes(t *testing.T) {
	h := FileHeader{FileVersion: 1, HeaderVersion: 1, VertexDim: 3, TopoType: core.TopoHexahedral, NCells: 9}
	b := h.append(nil)
	assert.Len(t, b, fileHeaderSize)
	assert.Equal(t, h, decodeFileHeader(b))

	c := ChunkHeader{Type: ChunkProperty, Padding: 3, Flags: FlagMandatory, FileLength: 20}
	b = c.append(nil)
	assert.Len(t, b, chunkHeaderSize)
	assert.Equal(t, c, decodeChunkHeader(b))
	assert.True(t, c.Mandatory())

	assert.Len(t, ArraySpan{First: 1, Count: 2}.append(nil), spanSize)
	assert.Equal(t, "[4, 9)", ArraySpan{First: 4, Count: 5}.String())
}

func TestEncodings(t *testing.T) {
	assert.Equal(t, IntU8, minimalEncoding(255))
	assert.Equal(t, IntU16, minimalEncoding(256))
	assert.Equal(t, IntU32, minimalEncoding(1<<16))
	assert.False(t, IntEncoding(3).Valid())
	assert.Equal(t, []byte{0x34, 0x12}, IntU16.append(nil, 0x1234))

	for n, want := range []int{0, 3, 2, 1, 0, 3} {
		assert.Equal(t, want, padding(n), "padding(%d)", n)
	}
}

func TestState(t *testing.T) {
	assert.False(t, StateOk.IsError())
	assert.True(t, StateErrorIO.IsError())
	assert.Equal(t, "span error", StateErrorSpan.String())
	assert.Equal(t, "state(200)", State(200).String())

	err := &ReadError{State: StateErrorHandleRange, Msg: "edge 3"}
	assert.ErrorIs(t, err, ErrHandleRange)
	assert.NotErrorIs(t, err, ErrSpan)
	assert.Equal(t, "ovmb: handle out of range: edge 3", err.Error())
}
