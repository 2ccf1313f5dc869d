// SPDX-License-Identifier: MIT
//
// File: writer.go
// Role: Single-pass ovmb serialization.
// Policy:
//   - Order: header, VERT, TOPO edges, TOPO faces, TOPO cells, DIRP, PROP, EOF.
//   - Persistent properties with a registered codec are written; the
//     position property travels in VERT and is left out of DIRP.

package ovmb

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/property"
)

// Writer serializes meshes to an io.Writer.
type Writer struct {
	w   *bufio.Writer
	cfg writeConfig
	n   int64
	buf []byte
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer, opts ...WriteOption) *Writer {
	cfg := defaultWriteConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = DefaultRegistry()
	}
	return &Writer{w: bufio.NewWriter(w), cfg: cfg}
}

// BytesWritten returns the number of bytes produced so far.
func (w *Writer) BytesWritten() int64 { return w.n }

// writtenProp is one DIRP entry with its storage.
type writtenProp struct {
	kind  handle.Kind
	store property.Storage
	codec binding
}

// WriteFile writes m as one complete ovmb file and flushes.
// Complexity: O(mesh size + persistent property size).
func (w *Writer) WriteFile(m *geometry.Mesh) error {
	if m.HasPendingDeletions() {
		return fmt.Errorf("ovmb: WriteFile: %w", ErrPendingDeletions)
	}

	// Stage 1: magic and header.
	hdr := FileHeader{
		FileVersion:   FileVersion,
		HeaderVersion: HeaderVersion,
		VertexDim:     VertexDim,
		TopoType:      m.TopologyType(),
		NVertices:     uint64(m.NVertices()),
		NEdges:        uint64(m.NEdges()),
		NFaces:        uint64(m.NFaces()),
		NCells:        uint64(m.NCells()),
	}
	if err := w.write(hdr.append([]byte(Magic))); err != nil {
		return fmt.Errorf("ovmb: write header: %w", err)
	}

	// Stage 2: geometry and topology.
	if err := w.writeVertices(m); err != nil {
		return err
	}
	if err := w.writeEdges(m); err != nil {
		return err
	}
	if err := w.writeFaces(m); err != nil {
		return err
	}
	if err := w.writeCells(m); err != nil {
		return err
	}

	// Stage 3: properties.
	props := w.collectProps(m)
	if len(props) > 0 {
		if err := w.writeDirectory(props); err != nil {
			return err
		}
		for i, p := range props {
			if err := w.writeProperty(uint32(i), p, m.Props().Size(p.kind)); err != nil {
				return err
			}
		}
	}

	// Stage 4: terminator.
	if err := w.chunk(ChunkEOF, true, nil); err != nil {
		return fmt.Errorf("ovmb: write %s chunk: %w", ChunkEOF, err)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("ovmb: flush: %w", err)
	}
	return nil
}

func (w *Writer) write(b []byte) error {
	n, err := w.w.Write(b)
	w.n += int64(n)
	return err
}

// chunk emits header, payload and alignment padding.
func (w *Writer) chunk(t ChunkType, mandatory bool, payload []byte) error {
	pad := padding(len(payload))
	h := ChunkHeader{Type: t, Padding: uint8(pad), FileLength: uint64(len(payload) + pad)}
	if mandatory {
		h.Flags = FlagMandatory
	}
	if err := w.write(h.append(nil)); err != nil {
		return err
	}
	if err := w.write(payload); err != nil {
		return err
	}
	var zeros [alignment]byte
	return w.write(zeros[:pad])
}

// spans cuts [0, n) into pieces of at most maxChunk.
func (w *Writer) spans(n int) []ArraySpan {
	var out []ArraySpan
	for first := 0; first < n; first += w.cfg.maxChunk {
		out = append(out, ArraySpan{First: uint64(first), Count: uint32(min(w.cfg.maxChunk, n-first))})
	}
	return out
}

func (w *Writer) writeVertices(m *geometry.Mesh) error {
	pos := m.Positions()
	for _, s := range w.spans(m.NVertices()) {
		b := s.append(w.buf[:0])
		b = append(b, uint8(w.cfg.vertex), 0, 0, 0)
		for i := s.First; i < s.end(); i++ {
			p := pos.Get(handle.Vertex(i))
			for _, c := range [3]float64{p.X, p.Y, p.Z} {
				if w.cfg.vertex == VertexFloat {
					b = binary.LittleEndian.AppendUint32(b, math.Float32bits(float32(c)))
				} else {
					b = binary.LittleEndian.AppendUint64(b, math.Float64bits(c))
				}
			}
		}
		w.buf = b
		if err := w.chunk(ChunkVertices, true, b); err != nil {
			return fmt.Errorf("ovmb: write %s chunk %s: %w", ChunkVertices, s, err)
		}
	}
	return nil
}

func (w *Writer) writeEdges(m *geometry.Mesh) error {
	return w.writeTopo(TopoEdges, m.NEdges(), func(i int) []uint32 {
		e := m.Edge(handle.Edge(i))
		return []uint32{e.From.UIdx(), e.To.UIdx()}
	})
}

func (w *Writer) writeFaces(m *geometry.Mesh) error {
	return w.writeTopo(TopoFaces, m.NFaces(), func(i int) []uint32 {
		hes := m.Face(handle.Face(i)).HalfEdges
		out := make([]uint32, len(hes))
		for j, he := range hes {
			out[j] = he.UIdx()
		}
		return out
	})
}

func (w *Writer) writeCells(m *geometry.Mesh) error {
	return w.writeTopo(TopoCells, m.NCells(), func(i int) []uint32 {
		hfs := m.Cell(handle.Cell(i)).HalfFaces
		out := make([]uint32, len(hfs))
		for j, hf := range hfs {
			out[j] = hf.UIdx()
		}
		return out
	})
}

// writeTopo emits TOPO chunks for n entities whose handle lists come from at.
// Per chunk it stores handles relative to their minimum with the narrowest
// integer width, and a single valence byte when all entities agree.
func (w *Writer) writeTopo(ent TopoEntity, n int, at func(int) []uint32) error {
	for _, s := range w.spans(n) {
		lists := make([][]uint32, s.Count)
		lo, hi := uint32(math.MaxUint32), uint32(0)
		minVal, maxVal := math.MaxInt, 0
		for i := range lists {
			lists[i] = at(int(s.First) + i)
			for _, h := range lists[i] {
				lo, hi = min(lo, h), max(hi, h)
			}
			minVal, maxVal = min(minVal, len(lists[i])), max(maxVal, len(lists[i]))
		}
		if s.Count == 0 || lo > hi {
			lo, hi = 0, 0
		}

		valence, valEnc := uint8(0), IntEncoding(0)
		if minVal == maxVal && maxVal <= math.MaxUint8 {
			valence = uint8(maxVal)
		} else {
			valEnc = minimalEncoding(uint32(maxVal))
		}
		hEnc := minimalEncoding(hi - lo)

		b := s.append(w.buf[:0])
		b = append(b, uint8(ent), valence, uint8(valEnc), uint8(hEnc))
		b = binary.LittleEndian.AppendUint64(b, uint64(lo))
		if valence == 0 {
			for _, l := range lists {
				b = valEnc.append(b, uint32(len(l)))
			}
		}
		for _, l := range lists {
			for _, h := range l {
				b = hEnc.append(b, h-lo)
			}
		}
		w.buf = b
		if err := w.chunk(ChunkTopology, true, b); err != nil {
			return fmt.Errorf("ovmb: write %s %s chunk %s: %w", ChunkTopology, ent, s, err)
		}
	}
	return nil
}

// collectProps lists persistent properties in kind order, skipping the
// position property and types without a codec.
func (w *Writer) collectProps(m *geometry.Mesh) []writtenProp {
	var out []writtenProp
	for k := range handle.NumKinds {
		kind := handle.Kind(k)
		for _, s := range m.Props().PersistentProps(kind) {
			if kind == handle.KindVertex && s.Name() == geometry.PositionName {
				continue
			}
			c := w.cfg.registry.forStorage(s)
			if c == nil {
				w.cfg.logger.Debug("ovmb: property without codec skipped",
					slog.String("kind", kind.String()),
					slog.String("name", s.Name()),
					slog.String("type", s.TypeName()))
				continue
			}
			out = append(out, writtenProp{kind: kind, store: s, codec: c})
		}
	}
	return out
}

func (w *Writer) writeDirectory(props []writtenProp) error {
	b := binary.LittleEndian.AppendUint32(w.buf[:0], uint32(len(props)))
	for _, p := range props {
		b = append(b, uint8(p.kind))
		b = appendString(b, p.store.Name())
		b = appendString(b, p.codec.tag())
		b = appendBlob(b, p.codec.appendDefault(nil, p.store))
	}
	w.buf = b
	if err := w.chunk(ChunkDirectory, false, b); err != nil {
		return fmt.Errorf("ovmb: write %s chunk: %w", ChunkDirectory, err)
	}
	return nil
}

func (w *Writer) writeProperty(idx uint32, p writtenProp, n int) error {
	for _, s := range w.spans(n) {
		b := s.append(w.buf[:0])
		b = binary.LittleEndian.AppendUint32(b, idx)
		b = p.codec.appendRange(b, p.store, int(s.First), int(s.Count))
		w.buf = b
		if err := w.chunk(ChunkProperty, false, b); err != nil {
			return fmt.Errorf("ovmb: write %s chunk for %q: %w", ChunkProperty, p.store.Name(), err)
		}
	}
	return nil
}
