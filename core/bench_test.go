// Package core_test provides benchmarks for kernel construction and
// incidence computation.
package core_test

import (
	"testing"

	"github.com/katalvlaran/volmesh/core"
)

// BenchmarkHexGrid_Incremental measures building with incidences maintained
// during insertion.
func BenchmarkHexGrid_Incremental(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		newHexGrid(b, 6, 6, 6, core.WithBottomUpIncidences(true))
	}
}

// BenchmarkHexGrid_Deferred measures building bare and computing the
// incidences once at the end.
func BenchmarkHexGrid_Deferred(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		k := newHexGrid(b, 6, 6, 6)
		k.EnableBottomUpIncidences(true)
	}
}
