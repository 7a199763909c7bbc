package voxel_test

import (
	"fmt"

	"github.com/andrewsmike/redhdl/voxel"
)

// Example demonstrates the exact region-algebra boundary scenario from the
// engine's testable properties: intersecting two touching prisms yields the
// single shared voxel, and a composite region intersects another region iff
// one of its subregions does.
func Example() {
	a := voxel.NewPrism(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 2, Y: 3, Z: 4})
	b := voxel.NewPrism(voxel.Pos{X: 2, Y: 3, Z: 4}, voxel.Pos{X: 3, Y: 4, Z: 5})

	shared := a.Intersect(b)
	fmt.Println(shared)

	composite := voxel.NewComposite(a, b)
	fmt.Println(composite.Intersects(b))

	// Output:
	// Prism(Pos(2, 3, 4), Pos(2, 3, 4))
	// true
}
