// SPDX-License-Identifier: MIT
//
// File: wire.go
// Role: Bounds-checked little-endian cursor over a chunk payload.
// Policy:
//   - A short read sets a sticky flag and yields zero values; callers check
//     short once per record instead of after every field.

package ovmb

import (
	"encoding/binary"
	"math"
)

type decoder struct {
	b     []byte
	short bool
}

func (d *decoder) take(n int) []byte {
	if d.short || n < 0 || len(d.b) < n {
		d.short = true
		return nil
	}
	out := d.b[:n]
	d.b = d.b[n:]
	return out
}

func (d *decoder) rest() int { return len(d.b) }

func (d *decoder) u8() uint8 {
	if b := d.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (d *decoder) u16() uint16 {
	if b := d.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (d *decoder) u32() uint32 {
	if b := d.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (d *decoder) u64() uint64 {
	if b := d.take(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func (d *decoder) f32() float32 { return math.Float32frombits(d.u32()) }
func (d *decoder) f64() float64 { return math.Float64frombits(d.u64()) }

func (d *decoder) span() ArraySpan {
	first := d.u64()
	return ArraySpan{First: first, Count: d.u32()}
}

// str reads a u32 length followed by that many bytes.
func (d *decoder) str() string {
	n := d.u32()
	if uint64(n) > uint64(len(d.b)) {
		d.short = true
		return ""
	}
	return string(d.take(int(n)))
}

// blob reads a u32 length followed by that many bytes, without copying.
func (d *decoder) blob() []byte {
	n := d.u32()
	if uint64(n) > uint64(len(d.b)) {
		d.short = true
		return nil
	}
	return d.take(int(n))
}

func (d *decoder) uint(e IntEncoding) uint32 {
	switch e {
	case IntU8:
		return uint32(d.u8())
	case IntU16:
		return uint32(d.u16())
	default:
		return d.u32()
	}
}

func appendString(dst []byte, s string) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(s)))
	return append(dst, s...)
}

func appendBlob(dst, b []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(b)))
	return append(dst, b...)
}
