// SPDX-License-Identifier: MIT
// Package ovmb verifies the exact byte layout produced by Writer.

package ovmb

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/property"
)

var le64 = binary.LittleEndian.AppendUint64

func TestWriter_EmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteFile(geometry.New()))

	b := buf.Bytes()
	require.Len(t, b, magicSize+fileHeaderSize+chunkHeaderSize)
	assert.Equal(t, int64(len(b)), w.BytesWritten())
	assert.Equal(t, Magic, string(b[:8]))
	assert.Equal(t, []byte{1, 1, 3, 0, 0, 0, 0, 0}, b[8:16])
	assert.Equal(t, make([]byte, 32), b[16:48], "all counts zero")
	assert.Equal(t, []byte{'E', 'O', 'F', ' ', 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}, b[48:])
}

func TestWriter_ThreeVerticesOneEdge(t *testing.T) {
	pts := []v3.Vec{{X: 4.97203, Y: 0.504645, Z: 0.913112}, {}, {X: 1, Y: 1, Z: 1}}
	m := geometry.New()
	for _, p := range pts {
		m.AddVertex(p)
	}
	m.AddEdge(0, 2, false)

	var buf bytes.Buffer
	require.NoError(t, WriteMesh(&buf, m))

	want := []byte(Magic)
	want = append(want, 1, 1, 3, 0, 0, 0, 0, 0)
	want = le64(le64(le64(le64(want, 3), 1), 0), 0)

	want = append(want, 'V', 'E', 'R', 'T', 0, 0, 0, 1)
	want = le64(want, 12+4+3*24)
	want = binary.LittleEndian.AppendUint32(le64(want, 0), 3)
	want = append(want, 2, 0, 0, 0)
	for _, p := range pts {
		want = le64(le64(le64(want, math.Float64bits(p.X)), math.Float64bits(p.Y)), math.Float64bits(p.Z))
	}

	want = append(want, 'T', 'O', 'P', 'O', 0, 2, 0, 1)
	want = le64(want, 28)
	want = binary.LittleEndian.AppendUint32(le64(want, 0), 1)
	want = append(want, 1, 2, 0, 1)
	want = le64(want, 0)
	want = append(want, 0, 2, 0, 0)

	want = append(want, 'E', 'O', 'F', ' ', 0, 0, 0, 1)
	want = le64(want, 0)

	require.Len(t, want, 212)
	assert.Equal(t, want, buf.Bytes())

	got, err := ReadMesh(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, pts, got.Positions().Values(), "positions are bit-exact")
	assert.Equal(t, m.Edge(0), got.Edge(0))
}

func TestWriter_TopologyEncodings(t *testing.T) {
	m := geometry.New()
	for range 300 {
		m.AddVertex(v3.Vec{})
	}
	m.AddEdge(10, 299, false)
	m.AddEdge(20, 11, false)

	var buf bytes.Buffer
	require.NoError(t, WriteMesh(&buf, m))

	// Skip magic, header and the VERT chunk.
	off := magicSize + fileHeaderSize + chunkHeaderSize + 12 + 4 + 300*24
	topo := buf.Bytes()[off:]
	h := decodeChunkHeader(topo)
	require.Equal(t, ChunkTopology, h.Type)
	body := topo[chunkHeaderSize:]
	assert.Equal(t, []byte{uint8(TopoEdges), 2, 0, uint8(IntU16)}, body[12:16], "range 10..299 needs two bytes")
	assert.Equal(t, uint64(10), binary.LittleEndian.Uint64(body[16:]), "offset is the smallest handle")
	assert.Equal(t, []byte{0, 0, 33, 1, 10, 0, 1, 0}, body[24:32])
}

func TestWriter_VariableValence(t *testing.T) {
	m := geometry.New()
	vs := make([]handle.Vertex, 5)
	for i := range vs {
		vs[i] = m.AddVertex(v3.Vec{X: float64(i)})
	}
	m.AddFaceFromVertices(vs[:3])
	m.AddFaceFromVertices(vs[1:])

	var buf bytes.Buffer
	require.NoError(t, WriteMesh(&buf, m, WithVertexEncoding(VertexFloat)))

	got, err := ReadMesh(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 2, got.NFaces())
	assert.Equal(t, m.Face(0), got.Face(0))
	assert.Equal(t, m.Face(1), got.Face(1))
	assert.Equal(t, float64(float32(4)), got.Vertex(4).X)
}

func TestWriter_ChunkSplitting(t *testing.T) {
	m := geometry.New()
	for i := range 7 {
		m.AddVertex(v3.Vec{X: float64(i)})
	}
	w, ok := property.CreatePersistent[handle.VertexTag](m.Props(), "w", int32(0))
	require.True(t, ok)
	for v := range m.Vertices() {
		w.Set(v, int32(v)*3)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMesh(&buf, m, WithMaxChunkElements(3)))

	counts := map[ChunkType]int{}
	b := buf.Bytes()[magicSize+fileHeaderSize:]
	for len(b) > 0 {
		h := decodeChunkHeader(b)
		counts[h.Type]++
		b = b[chunkHeaderSize+int(h.FileLength):]
	}
	assert.Equal(t, map[ChunkType]int{ChunkVertices: 3, ChunkDirectory: 1, ChunkProperty: 3, ChunkEOF: 1}, counts)

	got, err := ReadMesh(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	gw, ok := property.Find[handle.VertexTag, int32](got.Props(), "w")
	require.True(t, ok)
	assert.Equal(t, w.Values(), gw.Values())
}

func TestWriter_SkipsPropertiesWithoutCodec(t *testing.T) {
	type opaque struct{ p *int }
	m := geometry.New()
	m.AddVertex(v3.Vec{})
	_, ok := property.CreatePersistent[handle.VertexTag](m.Props(), "opaque", opaque{})
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, WriteMesh(&buf, m))
	assert.NotContains(t, buf.String(), "DIRP", "no serializable property, no directory")
}

func TestWriter_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { WithMaxChunkElements(0) })
	assert.Panics(t, func() { WithVertexEncoding(VertexEncoding(9)) })
	assert.Panics(t, func() { WithWriteRegistry(nil) })
	assert.Panics(t, func() { WithRegistry(nil) })
	assert.Panics(t, func() { WithWriteLogger(nil) })
	assert.Panics(t, func() { WithReadLogger(nil) })
}
