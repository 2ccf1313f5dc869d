// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: The Codec contract and the built-in codecs for scalars, strings,
//       booleans, handles, vectors and matrices.

package ovmb

import (
	"encoding/binary"
	"errors"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/volmesh/handle"
)

var errShortBuffer = errors.New("ovmb: codec input too short")

// Codec converts values of T to and from their wire form. AppendOne and
// DecodeOne handle directory defaults; AppendN and DecodeN handle PROP
// ranges and may pack values more tightly than repeated single encodes.
type Codec[T any] interface {
	AppendOne(dst []byte, v T) []byte
	DecodeOne(src []byte) (v T, n int, err error)
	AppendN(dst []byte, vs []T) []byte
	DecodeN(src []byte, vs []T) (n int, err error)
}

// fixedCodec covers every type with a constant wire size.
type fixedCodec[T any] struct {
	size int
	put  func(b []byte, v T)
	get  func(b []byte) T
}

func (c fixedCodec[T]) AppendOne(dst []byte, v T) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, c.size)...)
	c.put(dst[n:], v)
	return dst
}

func (c fixedCodec[T]) DecodeOne(src []byte) (T, int, error) {
	if len(src) < c.size {
		var zero T
		return zero, 0, errShortBuffer
	}
	return c.get(src), c.size, nil
}

func (c fixedCodec[T]) AppendN(dst []byte, vs []T) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, c.size*len(vs))...)
	for i, v := range vs {
		c.put(dst[n+i*c.size:], v)
	}
	return dst
}

func (c fixedCodec[T]) DecodeN(src []byte, vs []T) (int, error) {
	total := c.size * len(vs)
	if len(src) < total {
		return 0, errShortBuffer
	}
	for i := range vs {
		vs[i] = c.get(src[i*c.size:])
	}
	return total, nil
}

// boolCodec packs eight values per byte, least significant bit first.
type boolCodec struct{}

func (boolCodec) AppendOne(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

func (boolCodec) DecodeOne(src []byte) (bool, int, error) {
	if len(src) < 1 {
		return false, 0, errShortBuffer
	}
	return src[0] != 0, 1, nil
}

func (boolCodec) AppendN(dst []byte, vs []bool) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, (len(vs)+7)/8)...)
	for i, v := range vs {
		if v {
			dst[n+i/8] |= 1 << (i % 8)
		}
	}
	return dst
}

func (boolCodec) DecodeN(src []byte, vs []bool) (int, error) {
	total := (len(vs) + 7) / 8
	if len(src) < total {
		return 0, errShortBuffer
	}
	for i := range vs {
		vs[i] = src[i/8]&(1<<(i%8)) != 0
	}
	return total, nil
}

// stringCodec stores a u32 byte length followed by the bytes.
type stringCodec struct{}

func (stringCodec) AppendOne(dst []byte, v string) []byte { return appendString(dst, v) }

func (stringCodec) DecodeOne(src []byte) (string, int, error) {
	d := decoder{b: src}
	s := d.str()
	if d.short {
		return "", 0, errShortBuffer
	}
	return s, len(src) - d.rest(), nil
}

func (stringCodec) AppendN(dst []byte, vs []string) []byte {
	for _, v := range vs {
		dst = appendString(dst, v)
	}
	return dst
}

func (stringCodec) DecodeN(src []byte, vs []string) (int, error) {
	d := decoder{b: src}
	for i := range vs {
		vs[i] = d.str()
	}
	if d.short {
		return 0, errShortBuffer
	}
	return len(src) - d.rest(), nil
}

var le = binary.LittleEndian

func putF64(b []byte, v float64) { le.PutUint64(b, math.Float64bits(v)) }
func getF64(b []byte) float64    { return math.Float64frombits(le.Uint64(b)) }
func putF32(b []byte, v float32) { le.PutUint32(b, math.Float32bits(v)) }
func getF32(b []byte) float32    { return math.Float32frombits(le.Uint32(b)) }

func float64Components[A any](n int, at func(*A, int) *float64) fixedCodec[A] {
	return fixedCodec[A]{
		size: 8 * n,
		put: func(b []byte, v A) {
			for i := range n {
				putF64(b[8*i:], *at(&v, i))
			}
		},
		get: func(b []byte) A {
			var v A
			for i := range n {
				*at(&v, i) = getF64(b[8*i:])
			}
			return v
		},
	}
}

func handleCodec[T handle.Tag]() fixedCodec[handle.Handle[T]] {
	return fixedCodec[handle.Handle[T]]{
		size: 4,
		put:  func(b []byte, v handle.Handle[T]) { le.PutUint32(b, uint32(v)) },
		get:  func(b []byte) handle.Handle[T] { return handle.Handle[T](int32(le.Uint32(b))) },
	}
}

var (
	i8Codec = fixedCodec[int8]{1,
		func(b []byte, v int8) { b[0] = byte(v) },
		func(b []byte) int8 { return int8(b[0]) }}
	i16Codec = fixedCodec[int16]{2,
		func(b []byte, v int16) { le.PutUint16(b, uint16(v)) },
		func(b []byte) int16 { return int16(le.Uint16(b)) }}
	i32Codec = fixedCodec[int32]{4,
		func(b []byte, v int32) { le.PutUint32(b, uint32(v)) },
		func(b []byte) int32 { return int32(le.Uint32(b)) }}
	i64Codec = fixedCodec[int64]{8,
		func(b []byte, v int64) { le.PutUint64(b, uint64(v)) },
		func(b []byte) int64 { return int64(le.Uint64(b)) }}
	u8Codec = fixedCodec[uint8]{1,
		func(b []byte, v uint8) { b[0] = v },
		func(b []byte) uint8 { return b[0] }}
	u16Codec = fixedCodec[uint16]{2, le.PutUint16, le.Uint16}
	u32Codec = fixedCodec[uint32]{4, le.PutUint32, le.Uint32}
	u64Codec = fixedCodec[uint64]{8, le.PutUint64, le.Uint64}
	f32Codec = fixedCodec[float32]{4, putF32, getF32}
	f64Codec = fixedCodec[float64]{8, putF64, getF64}

	vec3dCodec = fixedCodec[v3.Vec]{24,
		func(b []byte, v v3.Vec) {
			putF64(b, v.X)
			putF64(b[8:], v.Y)
			putF64(b[16:], v.Z)
		},
		func(b []byte) v3.Vec {
			return v3.Vec{X: getF64(b), Y: getF64(b[8:]), Z: getF64(b[16:])}
		}}
	vec3fCodec = fixedCodec[[3]float32]{12,
		func(b []byte, v [3]float32) {
			for i := range 3 {
				putF32(b[4*i:], v[i])
			}
		},
		func(b []byte) (v [3]float32) {
			for i := range 3 {
				v[i] = getF32(b[4*i:])
			}
			return v
		}}
	vec2dCodec = float64Components(2, func(v *[2]float64, i int) *float64 { return &v[i] })
	vec4dCodec = float64Components(4, func(v *[4]float64, i int) *float64 { return &v[i] })
	// Matrices are row-major.
	mat3dCodec = fixedCodec[[3][3]float64]{72,
		func(b []byte, m [3][3]float64) {
			for r := range 3 {
				for c := range 3 {
					putF64(b[8*(3*r+c):], m[r][c])
				}
			}
		},
		func(b []byte) (m [3][3]float64) {
			for r := range 3 {
				for c := range 3 {
					m[r][c] = getF64(b[8*(3*r+c):])
				}
			}
			return m
		}}
)
