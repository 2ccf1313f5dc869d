// SPDX-License-Identifier: MIT
//
// File: reader.go
// Role: Chunk-by-chunk ovmb deserialization driven by a small state machine.
// Policy:
//   - Structural violations end the read in a named error state; content
//     already added to the mesh stays there.
//   - Unknown optional chunks and properties with unknown type tags are
//     skipped; unknown mandatory chunks are fatal.
//   - Topology spans per entity kind must be contiguous and in order.

package ovmb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/property"
)

// Reader deserializes one ovmb file from an io.Reader.
type Reader struct {
	r   *bufio.Reader
	cfg readConfig

	state State
	msg   string

	hdr  FileHeader
	mesh *geometry.Mesh
	dir  []dirEntry
	n    int64
}

// dirEntry is one property announced by a DIRP chunk. codec and store are
// nil for properties whose type tag is unknown.
type dirEntry struct {
	kind  handle.Kind
	name  string
	tag   string
	codec binding
	store property.Storage
}

// NewReader returns a Reader on r.
func NewReader(r io.Reader, opts ...ReadOption) *Reader {
	cfg := defaultReadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = DefaultRegistry()
	}
	return &Reader{r: bufio.NewReader(r), cfg: cfg}
}

// State returns the current protocol state.
func (r *Reader) State() State { return r.state }

// Message returns a human-readable detail for the last error state.
func (r *Reader) Message() string { return r.msg }

// Header returns the file header once StateHeaderRead has been reached.
func (r *Reader) Header() FileHeader { return r.hdr }

// BytesRead returns the number of bytes consumed so far.
func (r *Reader) BytesRead() int64 { return r.n }

// ReadFile reads a complete file into m, which must be empty. On failure the
// returned error is a *ReadError and m must be discarded.
func (r *Reader) ReadFile(m *geometry.Mesh) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = r.fail(StateErrorOther, "internal error: %v", p)
		}
	}()
	r.state, r.msg, r.mesh, r.dir = StateInit, "", m, nil

	if m.NVertices() > 0 || m.NEdges() > 0 || m.NFaces() > 0 || m.NCells() > 0 {
		return r.fail(StateErrorNonEmptyMesh, "mesh already has %d vertices, %d cells", m.NVertices(), m.NCells())
	}
	// Checked cell adds look up halfface owners through face incidences.
	faceBU := m.HasFaceBottomUpIncidences()
	if r.cfg.topologyCheck {
		m.EnableFaceBottomUpIncidences(true)
	}
	if err := r.readHeader(); err != nil {
		return err
	}
	r.state = StateReadingChunks
	for {
		done, err := r.readChunk()
		if err != nil {
			return err
		}
		if done {
			break
		}
	}
	if err := r.finish(); err != nil {
		return err
	}
	if r.cfg.bottomUp {
		m.EnableBottomUpIncidences(true)
	} else {
		m.EnableFaceBottomUpIncidences(faceBU)
	}
	r.state = StateOk
	return nil
}

func (r *Reader) fail(s State, format string, args ...any) error {
	r.state = s
	r.msg = fmt.Sprintf(format, args...)
	return &ReadError{State: s, Msg: r.msg}
}

// ioFail classifies a stream error: truncation is missing data, anything
// else is an I/O error.
func (r *Reader) ioFail(what string, err error) error {
	s := StateErrorIO
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		s = StateErrorMissingData
	}
	r.state = s
	r.msg = "reading " + what
	return &ReadError{State: s, Msg: r.msg, Err: err}
}

func (r *Reader) readFull(b []byte) error {
	n, err := io.ReadFull(r.r, b)
	r.n += int64(n)
	return err
}

func (r *Reader) readHeader() error {
	var b [magicSize + fileHeaderSize]byte
	if err := r.readFull(b[:magicSize]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return r.fail(StateErrorInvalidFile, "file shorter than magic")
		}
		return r.ioFail("magic", err)
	}
	if string(b[:magicSize]) != Magic {
		return r.fail(StateErrorInvalidFile, "bad magic %q", b[:magicSize])
	}
	if err := r.readFull(b[magicSize:]); err != nil {
		return r.ioFail("file header", err)
	}
	h := decodeFileHeader(b[magicSize:])
	r.hdr = h
	switch {
	case h.FileVersion > FileVersion:
		return r.fail(StateErrorIncompatibleVersion, "file version %d, supported up to %d", h.FileVersion, FileVersion)
	case h.HeaderVersion > HeaderVersion:
		return r.fail(StateErrorIncompatibleVersion, "header version %d, supported up to %d", h.HeaderVersion, HeaderVersion)
	case h.VertexDim != VertexDim:
		return r.fail(StateErrorInvalidFile, "vertex dimension %d, want %d", h.VertexDim, VertexDim)
	case !h.TopoType.Valid():
		return r.fail(StateErrorInvalidTopoType, "topology type %d", uint8(h.TopoType))
	}
	if err := r.mesh.SetTopologyType(h.TopoType); err != nil {
		return r.fail(StateErrorInvalidTopoType, "%v", err)
	}
	r.state = StateHeaderRead
	return nil
}

// readChunk consumes one chunk; done reports the end chunk.
func (r *Reader) readChunk() (done bool, err error) {
	var hb [chunkHeaderSize]byte
	if err := r.readFull(hb[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return false, r.fail(StateErrorEndNotReached, "stream ended without %s chunk", ChunkEOF)
		}
		return false, r.ioFail("chunk header", err)
	}
	h := decodeChunkHeader(hb[:])
	if uint64(h.Padding) > h.FileLength || h.Padding >= alignment {
		return false, r.fail(StateErrorInvalidFile, "%s chunk: padding %d of length %d", h.Type, h.Padding, h.FileLength)
	}

	known := h.Type == ChunkVertices || h.Type == ChunkTopology ||
		h.Type == ChunkDirectory || h.Type == ChunkProperty || h.Type == ChunkEOF
	switch {
	case !known && h.Mandatory():
		return false, r.fail(StateErrorUnsupportedChunkType, "mandatory chunk %q", h.Type)
	case known && h.Version != 0 && h.Mandatory():
		return false, r.fail(StateErrorUnsupportedChunkVersion, "%s chunk version %d", h.Type, h.Version)
	case !known || h.Version != 0:
		r.cfg.logger.Debug("ovmb: optional chunk skipped",
			slog.String("type", h.Type.String()),
			slog.Int("version", int(h.Version)),
			slog.Uint64("length", h.FileLength))
		return false, r.skip(h)
	case h.Compression != 0:
		return false, r.fail(StateErrorInvalidEncoding, "%s chunk: compression %d", h.Type, h.Compression)
	}

	body, err := r.payload(h)
	if err != nil {
		return false, err
	}
	d := &decoder{b: body}
	switch h.Type {
	case ChunkVertices:
		err = r.readVertices(d)
	case ChunkTopology:
		err = r.readTopology(d)
	case ChunkDirectory:
		err = r.readDirectory(d)
	case ChunkProperty:
		err = r.readProperty(d)
	case ChunkEOF:
		if len(body) != 0 {
			return false, r.fail(StateErrorInvalidFile, "%s chunk with %d payload bytes", ChunkEOF, len(body))
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if d.short {
		return false, r.fail(StateErrorInvalidFile, "%s chunk truncated", h.Type)
	}
	if d.rest() != 0 {
		return false, r.fail(StateErrorInvalidFile, "%s chunk: %d unread payload bytes", h.Type, d.rest())
	}
	return false, nil
}

func (r *Reader) skip(h ChunkHeader) error {
	n, err := io.CopyN(io.Discard, r.r, int64(h.FileLength))
	r.n += n
	if err != nil {
		return r.ioFail(h.Type.String()+" chunk", err)
	}
	return nil
}

// payload reads the chunk body and strips the padding.
func (r *Reader) payload(h ChunkHeader) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r.r, int64(h.FileLength)))
	r.n += int64(len(buf))
	if err != nil {
		return nil, r.ioFail(h.Type.String()+" chunk", err)
	}
	if uint64(len(buf)) != h.FileLength {
		return nil, r.fail(StateErrorMissingData, "%s chunk: %d of %d bytes", h.Type, len(buf), h.FileLength)
	}
	return buf[:len(buf)-int(h.Padding)], nil
}

// checkSpan enforces contiguous, in-range spans: s must start at have and end
// at or before total.
func (r *Reader) checkSpan(what string, s ArraySpan, have int, total uint64) error {
	if s.First != uint64(have) {
		return r.fail(StateErrorSpan, "%s span %s does not continue at %d", what, s, have)
	}
	if s.end() > total {
		return r.fail(StateErrorSpan, "%s span %s exceeds header count %d", what, s, total)
	}
	return nil
}

func (r *Reader) readVertices(d *decoder) error {
	s := d.span()
	enc := VertexEncoding(d.u8())
	d.take(3)
	if d.short {
		return r.fail(StateErrorInvalidFile, "%s chunk truncated", ChunkVertices)
	}
	if !enc.Valid() {
		return r.fail(StateErrorInvalidEncoding, "vertex encoding %d", uint8(enc))
	}
	if err := r.checkSpan("vertex", s, r.mesh.NVertices(), r.hdr.NVertices); err != nil {
		return err
	}
	if uint64(d.rest()) < uint64(s.Count)*uint64(VertexDim)*uint64(enc.size()) {
		return r.fail(StateErrorInvalidFile, "%s chunk: %d bytes for %d vertices", ChunkVertices, d.rest(), s.Count)
	}
	for range s.Count {
		var p v3.Vec
		if enc == VertexFloat {
			p = v3.Vec{X: float64(d.f32()), Y: float64(d.f32()), Z: float64(d.f32())}
		} else {
			p = v3.Vec{X: d.f64(), Y: d.f64(), Z: d.f64()}
		}
		r.mesh.AddVertex(p)
	}
	return nil
}

func (r *Reader) readTopology(d *decoder) error {
	s := d.span()
	ent := TopoEntity(d.u8())
	valence := d.u8()
	valEnc := IntEncoding(d.u8())
	hEnc := IntEncoding(d.u8())
	offset := d.u64()
	if d.short {
		return r.fail(StateErrorInvalidFile, "%s chunk truncated", ChunkTopology)
	}

	var have int
	var total, limit uint64
	switch ent {
	case TopoEdges:
		have, total, limit = r.mesh.NEdges(), r.hdr.NEdges, uint64(r.mesh.NVertices())
		if valence != 2 {
			return r.fail(StateErrorInvalidFile, "edge valence %d", valence)
		}
	case TopoFaces:
		have, total, limit = r.mesh.NFaces(), r.hdr.NFaces, uint64(r.mesh.NHalfEdges())
	case TopoCells:
		have, total, limit = r.mesh.NCells(), r.hdr.NCells, uint64(r.mesh.NHalfFaces())
	default:
		return r.fail(StateErrorInvalidFile, "topology entity %d", uint8(ent))
	}
	if !hEnc.Valid() {
		return r.fail(StateErrorInvalidEncoding, "%s handle encoding %d", ent, uint8(hEnc))
	}
	if valence == 0 && !valEnc.Valid() {
		return r.fail(StateErrorInvalidEncoding, "%s valence encoding %d", ent, uint8(valEnc))
	}
	if err := r.checkSpan(ent.String(), s, have, total); err != nil {
		return err
	}

	perEntity := uint64(valence) * uint64(hEnc)
	if valence == 0 {
		perEntity = uint64(valEnc)
	}
	if uint64(s.Count)*perEntity > uint64(d.rest()) {
		return r.fail(StateErrorInvalidFile, "%s chunk: %d bytes for %d entities", ent, d.rest(), s.Count)
	}

	valences := make([]int, s.Count)
	for i := range valences {
		if valence == 0 {
			valences[i] = int(d.uint(valEnc))
		} else {
			valences[i] = int(valence)
		}
	}
	if d.short {
		return r.fail(StateErrorInvalidFile, "%s valences truncated", ent)
	}

	for i, n := range valences {
		if uint64(n)*uint64(hEnc) > uint64(d.rest()) {
			return r.fail(StateErrorInvalidFile, "%s chunk: handles truncated", ent)
		}
		ids := make([]int32, n)
		for j := range ids {
			raw := uint64(d.uint(hEnc))
			if raw >= limit || offset >= limit-raw {
				return r.fail(StateErrorHandleRange, "%s %d: handle %d + offset %d, limit %d", ent, have+i, raw, offset, limit)
			}
			ids[j] = int32(offset + raw)
		}
		if err := r.addEntity(ent, have+i, ids); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) addEntity(ent TopoEntity, idx int, ids []int32) error {
	m, check := r.mesh, r.cfg.topologyCheck
	switch ent {
	case TopoEdges:
		if e := m.AddEdge(handle.Vertex(ids[0]), handle.Vertex(ids[1]), true); !e.IsValid() {
			return r.fail(StateErrorInvalidFile, "edge %d: %v -> %v rejected", idx, ids[0], ids[1])
		}
	case TopoFaces:
		hes := make([]handle.HalfEdge, len(ids))
		for i, id := range ids {
			hes[i] = handle.HalfEdge(id)
		}
		if check {
			if err := m.CheckFace(hes); err != nil {
				return r.fail(StateErrorInvalidFile, "face %d: %v", idx, err)
			}
		}
		if f := m.AddFace(hes, false); !f.IsValid() {
			return r.fail(StateErrorInvalidFile, "face %d rejected", idx)
		}
	case TopoCells:
		hfs := make([]handle.HalfFace, len(ids))
		for i, id := range ids {
			hfs[i] = handle.HalfFace(id)
		}
		if check {
			if err := m.CheckCell(hfs); err != nil {
				return r.fail(StateErrorInvalidFile, "cell %d: %v", idx, err)
			}
		}
		if c := m.AddCell(hfs, false); !c.IsValid() {
			return r.fail(StateErrorInvalidFile, "cell %d rejected", idx)
		}
	}
	return nil
}

func (r *Reader) readDirectory(d *decoder) error {
	n := d.u32()
	for i := range n {
		kind := handle.Kind(d.u8())
		name := d.str()
		tag := d.str()
		def := d.blob()
		if d.short {
			return r.fail(StateErrorInvalidFile, "%s entry %d truncated", ChunkDirectory, i)
		}
		if !kind.Valid() {
			return r.fail(StateErrorInvalidFile, "%s entry %q: entity kind %d", ChunkDirectory, name, uint8(kind))
		}
		e := dirEntry{kind: kind, name: name, tag: tag, codec: r.cfg.registry.forTag(tag)}
		if e.codec == nil {
			r.cfg.logger.Debug("ovmb: property with unknown type skipped",
				slog.String("kind", kind.String()),
				slog.String("name", name),
				slog.String("type", tag))
			r.dir = append(r.dir, e)
			continue
		}
		store, err := e.codec.request(r.mesh.Props(), kind, name, def)
		if err != nil {
			return r.fail(StateErrorInvalidFile, "%s entry: %v", ChunkDirectory, err)
		}
		e.store = store
		r.dir = append(r.dir, e)
	}
	return nil
}

func (r *Reader) readProperty(d *decoder) error {
	s := d.span()
	idx := d.u32()
	if d.short {
		return r.fail(StateErrorInvalidFile, "%s chunk truncated", ChunkProperty)
	}
	if uint64(idx) >= uint64(len(r.dir)) {
		return r.fail(StateErrorInvalidFile, "%s chunk: property index %d of %d", ChunkProperty, idx, len(r.dir))
	}
	e := r.dir[idx]
	if e.codec == nil {
		d.take(d.rest())
		return nil
	}
	size := r.mesh.Props().Size(e.kind)
	if s.end() > uint64(size) {
		return r.fail(StateErrorSpan, "property %q span %s exceeds %d %ss", e.name, s, size, e.kind)
	}
	used, err := e.codec.decodeRange(d.b, e.store, int(s.First), int(s.Count))
	if err != nil {
		return r.fail(StateErrorInvalidFile, "property %q: %v", e.name, err)
	}
	d.take(used)
	return nil
}

// finish checks entity counts against the header and that nothing follows
// the end chunk.
func (r *Reader) finish() error {
	m, h := r.mesh, r.hdr
	if uint64(m.NVertices()) != h.NVertices || uint64(m.NEdges()) != h.NEdges ||
		uint64(m.NFaces()) != h.NFaces || uint64(m.NCells()) != h.NCells {
		return r.fail(StateErrorMissingData, "read %d/%d/%d/%d entities, header announces %d/%d/%d/%d",
			m.NVertices(), m.NEdges(), m.NFaces(), m.NCells(), h.NVertices, h.NEdges, h.NFaces, h.NCells)
	}
	switch _, err := r.r.ReadByte(); {
	case err == nil:
		return r.fail(StateErrorTrailingData, "bytes after %s chunk", ChunkEOF)
	case !errors.Is(err, io.EOF):
		return r.ioFail("end of stream", err)
	}
	return nil
}

// ReadMesh reads a complete file from r into a new mesh.
func ReadMesh(r io.Reader, opts ...ReadOption) (*geometry.Mesh, error) {
	m := geometry.New()
	if err := NewReader(r, opts...).ReadFile(m); err != nil {
		return nil, err
	}
	return m, nil
}
