package core_test

import (
	"fmt"

	"github.com/katalvlaran/volmesh/core"
	"github.com/katalvlaran/volmesh/handle"
)

// ExampleKernel builds one tetrahedron and walks its adjacency.
func ExampleKernel() {
	k := core.New(core.WithBottomUpIncidences(true))
	v := make([]handle.Vertex, 4)
	for i := range v {
		v[i] = k.AddVertex()
	}
	var hfs []handle.HalfFace
	for _, loop := range [][]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}} {
		f := k.AddFaceFromVertices([]handle.Vertex{v[loop[0]], v[loop[1]], v[loop[2]]})
		hfs = append(hfs, handle.HalfFaceOf(f, 0))
	}
	c := k.AddCell(hfs, true)

	fmt.Println("counts:", k.NVertices(), k.NEdges(), k.NFaces(), k.NCells())
	var corners []handle.Vertex
	for vh := range k.CellVertices(c).All() {
		corners = append(corners, vh)
	}
	fmt.Println("cell vertices:", corners)
	fmt.Println("boundary cell:", k.IsBoundaryCell(c))

	// Output:
	// counts: 4 6 4 1
	// cell vertices: [VH0 VH1 VH2 VH3]
	// boundary cell: true
}

// ExampleKernel_CollectGarbage shows the mark-then-collect deletion cycle.
func ExampleKernel_CollectGarbage() {
	k := core.New()
	for range 3 {
		k.AddVertex()
	}
	k.AddFaceFromVertices([]handle.Vertex{0, 1, 2})
	k.DeleteVertex(1)
	fmt.Println("before:", k.NVertices(), k.NLogicalVertices(), k.NLogicalFaces())
	k.CollectGarbage()
	fmt.Println("after:", k.NVertices(), k.NEdges(), k.NFaces())

	// Output:
	// before: 3 2 0
	// after: 2 1 0
}
