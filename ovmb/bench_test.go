package ovmb_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/volmesh/builder"
	"github.com/katalvlaran/volmesh/ovmb"
)

func BenchmarkWriteMesh(b *testing.B) {
	m, err := builder.BuildMesh(nil, nil, builder.HexGrid(8, 8, 8))
	if err != nil {
		b.Fatal(err)
	}
	var buf bytes.Buffer
	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		if err := ovmb.WriteMesh(&buf, m); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(buf.Len()))
}

func BenchmarkReadMesh(b *testing.B) {
	m, err := builder.BuildMesh(nil, nil, builder.HexGrid(8, 8, 8))
	if err != nil {
		b.Fatal(err)
	}
	var buf bytes.Buffer
	if err := ovmb.WriteMesh(&buf, m); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := ovmb.ReadMesh(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
