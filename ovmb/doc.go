// SPDX-License-Identifier: MIT
// Package ovmb reads and writes volumetric meshes in the chunked binary
// ".ovmb" format.
//
// Layout (all integers little-endian):
//
//	magic        8 bytes  "OVMB\n\r\n\xFF"
//	FileHeader  40 bytes  versions, vertex dimension, topology type, entity counts
//	chunk*               ChunkHeader (16 bytes) + payload + zero padding to 4 bytes
//
// Chunk types:
//
//	VERT  vertex positions over a span, float32 or float64 components
//	TOPO  edges, faces or cells over a span, with per-chunk integer widths
//	DIRP  property directory: kind, name, type tag and default per property
//	PROP  one property's values over a span
//	EOF   terminator; exactly one, nothing may follow
//
// Every chunk carries a mandatory flag. Readers skip unknown optional chunks
// and reject unknown mandatory ones, so files stay forward compatible.
//
// Property values are converted by a Registry of codecs keyed by short type
// tags ("d", "3d", "vh", ...). Properties whose tag is unknown to the reader
// are skipped with their data.
//
// Writing is single pass: header, VERT, TOPO (edges, faces, cells), DIRP,
// PROP, EOF. The mesh must not have pending deletions.
//
// Reading is a small state machine (Init, HeaderRead, ReadingChunks, then Ok
// or one of the error states). A failed read leaves whatever was already added
// in the mesh; callers must discard the mesh on error.
package ovmb
