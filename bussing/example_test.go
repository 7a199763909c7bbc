package bussing_test

import (
	"fmt"

	"github.com/andrewsmike/redhdl/bussing"
	"github.com/andrewsmike/redhdl/voxel"
)

func ExampleRoute() {
	start := voxel.Pos{X: 0, Y: 0, Z: 0}
	end := voxel.Pos{X: 0, Y: 0, Z: 2}

	path, err := bussing.Route(start, end, nil, nil, nil, bussing.WirePath{}, bussing.Options{})
	if err != nil {
		fmt.Println("route failed:", err)
		return
	}
	fmt.Println(len(path.Elements))
	// Output: 3
}
