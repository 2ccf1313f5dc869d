// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Wire constants and fixed-size records of the ovmb format.

package ovmb

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/volmesh/core"
)

// Magic opens every ovmb file.
const Magic = "OVMB\n\r\n\xFF"

// Format versions written by this package and the highest accepted on read.
const (
	FileVersion   uint8 = 1
	HeaderVersion uint8 = 1
	VertexDim     uint8 = 3
)

// Record sizes in bytes.
const (
	magicSize       = 8
	fileHeaderSize  = 40
	chunkHeaderSize = 16
	spanSize        = 12
	alignment       = 4
)

// ChunkType is a four-character chunk tag stored as a little-endian u32.
type ChunkType uint32

// Known chunk types.
const (
	ChunkVertices  ChunkType = 'V' | 'E'<<8 | 'R'<<16 | 'T'<<24
	ChunkTopology  ChunkType = 'T' | 'O'<<8 | 'P'<<16 | 'O'<<24
	ChunkDirectory ChunkType = 'D' | 'I'<<8 | 'R'<<16 | 'P'<<24
	ChunkProperty  ChunkType = 'P' | 'R'<<8 | 'O'<<16 | 'P'<<24
	ChunkEOF       ChunkType = 'E' | 'O'<<8 | 'F'<<16 | ' '<<24
)

// String returns the four characters of t.
func (t ChunkType) String() string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(t))
	return string(b[:])
}

// ChunkFlags is the flag byte of a chunk header.
type ChunkFlags uint8

// FlagMandatory marks chunks a reader must understand.
const FlagMandatory ChunkFlags = 1

// FileHeader follows the magic.
type FileHeader struct {
	FileVersion   uint8
	HeaderVersion uint8
	VertexDim     uint8
	TopoType      core.TopoType
	NVertices     uint64
	NEdges        uint64
	NFaces        uint64
	NCells        uint64
}

func (h FileHeader) append(dst []byte) []byte {
	dst = append(dst, h.FileVersion, h.HeaderVersion, h.VertexDim, uint8(h.TopoType), 0, 0, 0, 0)
	dst = binary.LittleEndian.AppendUint64(dst, h.NVertices)
	dst = binary.LittleEndian.AppendUint64(dst, h.NEdges)
	dst = binary.LittleEndian.AppendUint64(dst, h.NFaces)
	return binary.LittleEndian.AppendUint64(dst, h.NCells)
}

func decodeFileHeader(b []byte) FileHeader {
	return FileHeader{
		FileVersion:   b[0],
		HeaderVersion: b[1],
		VertexDim:     b[2],
		TopoType:      core.TopoType(b[3]),
		NVertices:     binary.LittleEndian.Uint64(b[8:]),
		NEdges:        binary.LittleEndian.Uint64(b[16:]),
		NFaces:        binary.LittleEndian.Uint64(b[24:]),
		NCells:        binary.LittleEndian.Uint64(b[32:]),
	}
}

// ChunkHeader precedes every chunk payload. FileLength counts payload and
// padding; the payload itself is FileLength - Padding bytes.
type ChunkHeader struct {
	Type        ChunkType
	Version     uint8
	Padding     uint8
	Compression uint8
	Flags       ChunkFlags
	FileLength  uint64
}

// Mandatory reports whether the mandatory flag is set.
func (h ChunkHeader) Mandatory() bool { return h.Flags&FlagMandatory != 0 }

func (h ChunkHeader) append(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(h.Type))
	dst = append(dst, h.Version, h.Padding, h.Compression, uint8(h.Flags))
	return binary.LittleEndian.AppendUint64(dst, h.FileLength)
}

func decodeChunkHeader(b []byte) ChunkHeader {
	return ChunkHeader{
		Type:        ChunkType(binary.LittleEndian.Uint32(b)),
		Version:     b[4],
		Padding:     b[5],
		Compression: b[6],
		Flags:       ChunkFlags(b[7]),
		FileLength:  binary.LittleEndian.Uint64(b[8:]),
	}
}

// ArraySpan addresses Count consecutive entities starting at First.
type ArraySpan struct {
	First uint64
	Count uint32
}

func (s ArraySpan) end() uint64 { return s.First + uint64(s.Count) }

func (s ArraySpan) append(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, s.First)
	return binary.LittleEndian.AppendUint32(dst, s.Count)
}

func (s ArraySpan) String() string { return fmt.Sprintf("[%d, %d)", s.First, s.end()) }

// IntEncoding is the byte width of integers in a TOPO chunk.
type IntEncoding uint8

// Integer encodings.
const (
	IntU8  IntEncoding = 1
	IntU16 IntEncoding = 2
	IntU32 IntEncoding = 4
)

// Valid reports whether e is a declared encoding.
func (e IntEncoding) Valid() bool { return e == IntU8 || e == IntU16 || e == IntU32 }

// minimalEncoding returns the narrowest encoding holding max.
func minimalEncoding(max uint32) IntEncoding {
	switch {
	case max <= 0xFF:
		return IntU8
	case max <= 0xFFFF:
		return IntU16
	default:
		return IntU32
	}
}

func (e IntEncoding) append(dst []byte, v uint32) []byte {
	switch e {
	case IntU8:
		return append(dst, uint8(v))
	case IntU16:
		return binary.LittleEndian.AppendUint16(dst, uint16(v))
	default:
		return binary.LittleEndian.AppendUint32(dst, v)
	}
}

// VertexEncoding is the component type of VERT chunks.
type VertexEncoding uint8

// Vertex encodings.
const (
	VertexFloat  VertexEncoding = 1
	VertexDouble VertexEncoding = 2
)

// Valid reports whether e is a declared encoding.
func (e VertexEncoding) Valid() bool { return e == VertexFloat || e == VertexDouble }

func (e VertexEncoding) size() int {
	if e == VertexFloat {
		return 4
	}
	return 8
}

// TopoEntity selects what a TOPO chunk describes.
type TopoEntity uint8

// Topology entities.
const (
	TopoEdges TopoEntity = 1
	TopoFaces TopoEntity = 2
	TopoCells TopoEntity = 3
)

func (e TopoEntity) String() string {
	switch e {
	case TopoEdges:
		return "edges"
	case TopoFaces:
		return "faces"
	case TopoCells:
		return "cells"
	default:
		return fmt.Sprintf("entity(%d)", uint8(e))
	}
}

// padding returns the zero bytes needed to align n.
func padding(n int) int { return (alignment - n%alignment) % alignment }
