// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: Type-tag registry binding Codecs to property storages.
// Policy:
//   - A tag maps to exactly one Go type and a Go type to exactly one tag.
//   - Lookup by storage uses the storage's dynamic type, never its name.

package ovmb

import (
	"fmt"
	"reflect"
	"slices"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/samber/lo"

	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/property"
)

// binding is the type-erased view of a Codec used by Reader and Writer.
type binding interface {
	tag() string
	appendDefault(dst []byte, s property.Storage) []byte
	appendRange(dst []byte, s property.Storage, first, n int) []byte
	request(m *property.Manager, k handle.Kind, name string, def []byte) (property.Storage, error)
	decodeRange(src []byte, s property.Storage, first, n int) (int, error)
}

type typedBinding[T any] struct {
	name  string
	codec Codec[T]
}

func (b typedBinding[T]) tag() string { return b.name }

func (b typedBinding[T]) appendDefault(dst []byte, s property.Storage) []byte {
	return b.codec.AppendOne(dst, s.(*property.Array[T]).Default())
}

func (b typedBinding[T]) appendRange(dst []byte, s property.Storage, first, n int) []byte {
	return b.codec.AppendN(dst, s.(*property.Array[T]).Values()[first:first+n])
}

func (b typedBinding[T]) request(m *property.Manager, k handle.Kind, name string, def []byte) (property.Storage, error) {
	v, used, err := b.codec.DecodeOne(def)
	if err != nil {
		return nil, fmt.Errorf("default of %q: %w", name, err)
	}
	if used != len(def) {
		return nil, fmt.Errorf("default of %q: %d unused bytes", name, len(def)-used)
	}
	a := property.RequestKind(m, k, name, v)
	if err := m.SetPersistent(a, true); err != nil {
		return nil, fmt.Errorf("property %q: %w", name, err)
	}
	return a, nil
}

func (b typedBinding[T]) decodeRange(src []byte, s property.Storage, first, n int) (int, error) {
	return b.codec.DecodeN(src, s.(*property.Array[T]).Values()[first:first+n])
}

// Registry maps type tags to codecs. The zero value is not usable; start
// from NewRegistry or DefaultRegistry. A Registry is not safe for concurrent
// registration, but concurrent reads and writes using it are fine.
type Registry struct {
	byTag  map[string]binding
	byType map[reflect.Type]binding
}

// NewRegistry returns a registry without codecs.
func NewRegistry() *Registry {
	return &Registry{
		byTag:  make(map[string]binding),
		byType: make(map[reflect.Type]binding),
	}
}

// DefaultRegistry returns a new registry holding the built-in codecs:
//
//	b                    bool, bit-packed
//	i8 i16 i32 i64       signed integers
//	u8 u16 u32 u64       unsigned integers
//	f d                  float32, float64
//	s                    string
//	vh eh heh fh hfh ch  mesh handles, as their int32 index
//	2d 4d                [2]float64, [4]float64
//	3d                   v3.Vec
//	3f                   [3]float32
//	3x3d                 [3][3]float64, row-major
func DefaultRegistry() *Registry {
	r := NewRegistry()
	lo.Must0(Register[bool](r, "b", boolCodec{}))
	lo.Must0(Register[int8](r, "i8", i8Codec))
	lo.Must0(Register[int16](r, "i16", i16Codec))
	lo.Must0(Register[int32](r, "i32", i32Codec))
	lo.Must0(Register[int64](r, "i64", i64Codec))
	lo.Must0(Register[uint8](r, "u8", u8Codec))
	lo.Must0(Register[uint16](r, "u16", u16Codec))
	lo.Must0(Register[uint32](r, "u32", u32Codec))
	lo.Must0(Register[uint64](r, "u64", u64Codec))
	lo.Must0(Register[float32](r, "f", f32Codec))
	lo.Must0(Register[float64](r, "d", f64Codec))
	lo.Must0(Register[string](r, "s", stringCodec{}))
	lo.Must0(Register[handle.Vertex](r, "vh", handleCodec[handle.VertexTag]()))
	lo.Must0(Register[handle.Edge](r, "eh", handleCodec[handle.EdgeTag]()))
	lo.Must0(Register[handle.HalfEdge](r, "heh", handleCodec[handle.HalfEdgeTag]()))
	lo.Must0(Register[handle.Face](r, "fh", handleCodec[handle.FaceTag]()))
	lo.Must0(Register[handle.HalfFace](r, "hfh", handleCodec[handle.HalfFaceTag]()))
	lo.Must0(Register[handle.Cell](r, "ch", handleCodec[handle.CellTag]()))
	lo.Must0(Register[[2]float64](r, "2d", vec2dCodec))
	lo.Must0(Register[v3.Vec](r, "3d", vec3dCodec))
	lo.Must0(Register[[4]float64](r, "4d", vec4dCodec))
	lo.Must0(Register[[3]float32](r, "3f", vec3fCodec))
	lo.Must0(Register[[3][3]float64](r, "3x3d", mat3dCodec))
	return r
}

// Register binds tag to c for properties of element type T. It fails with
// ErrDuplicateTag if tag or T is already bound.
func Register[T any](r *Registry, tag string, c Codec[T]) error {
	typ := reflect.TypeFor[*property.Array[T]]()
	if tag == "" {
		return fmt.Errorf("ovmb: Register: empty tag: %w", ErrDuplicateTag)
	}
	if _, ok := r.byTag[tag]; ok {
		return fmt.Errorf("ovmb: Register(%q): %w", tag, ErrDuplicateTag)
	}
	if prev, ok := r.byType[typ]; ok {
		return fmt.Errorf("ovmb: Register(%q): type already bound to %q: %w", tag, prev.tag(), ErrDuplicateTag)
	}
	b := typedBinding[T]{name: tag, codec: c}
	r.byTag[tag] = b
	r.byType[typ] = b
	return nil
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	tags := lo.Keys(r.byTag)
	slices.Sort(tags)
	return tags
}

// TagOf returns the tag serializing s, if any.
func (r *Registry) TagOf(s property.Storage) (string, bool) {
	b, ok := r.byType[reflect.TypeOf(s)]
	if !ok {
		return "", false
	}
	return b.tag(), true
}

func (r *Registry) forStorage(s property.Storage) binding { return r.byType[reflect.TypeOf(s)] }

func (r *Registry) forTag(tag string) binding { return r.byTag[tag] }
