package ovmb_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/katalvlaran/volmesh/builder"
	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/ovmb"
	"github.com/katalvlaran/volmesh/property"
)

// Example writes a hex block with a persistent cell property and reads it
// back.
func Example() {
	m, err := builder.BuildMesh(nil, nil, builder.HexGrid(2, 1, 1))
	if err != nil {
		panic(err)
	}
	quality, _ := property.CreatePersistent[handle.CellTag](m.Props(), "quality", 1.0)
	quality.Set(1, 0.75)

	var buf bytes.Buffer
	if err := ovmb.WriteMesh(&buf, m); err != nil {
		panic(err)
	}
	got, err := ovmb.ReadMesh(&buf)
	if err != nil {
		panic(err)
	}
	q, _ := property.Find[handle.CellTag, float64](got.Props(), "quality")
	fmt.Println("cells:", got.NCells(), "quality:", q.Values())

	// Output:
	// cells: 2 quality: [1 0.75]
}

// ExampleReader_State shows how a failed read reports its state.
func ExampleReader_State() {
	r := ovmb.NewReader(bytes.NewReader([]byte("not a mesh file")))
	err := r.ReadFile(geometry.New())
	fmt.Println(r.State(), errors.Is(err, ovmb.ErrInvalidFile))

	// Output:
	// invalid file true
}
