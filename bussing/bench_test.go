package bussing_test

import (
	"testing"

	"github.com/andrewsmike/redhdl/bussing"
	"github.com/andrewsmike/redhdl/voxel"
)

func BenchmarkRouteStraightRun(b *testing.B) {
	start := voxel.Pos{X: 0, Y: 0, Z: 0}
	end := voxel.Pos{X: 0, Y: 0, Z: 10}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bussing.Route(start, end, nil, nil, nil, bussing.WirePath{}, bussing.Options{MaxSteps: 5000}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMinCost(b *testing.B) {
	start := voxel.Pos{X: 0, Y: 0, Z: 0}
	end := voxel.Pos{X: 10, Y: 5, Z: 10}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bussing.MinCost(start, end, nil, nil)
	}
}
