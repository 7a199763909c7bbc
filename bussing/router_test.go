package bussing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewsmike/redhdl/bussing"
	"github.com/andrewsmike/redhdl/voxel"
)

func TestRouteStraightFlatRun(t *testing.T) {
	start := voxel.Pos{X: 0, Y: 0, Z: 0}
	end := voxel.Pos{X: 0, Y: 0, Z: 3}
	south := voxel.South

	path, err := bussing.Route(start, end, &south, nil, nil, bussing.WirePath{}, bussing.Options{})
	require.NoError(t, err)

	assert.True(t, path.HasElement(start))
	assert.True(t, path.HasElement(end))
	assert.False(t, path.IsRepeaterAt(end))
	for z := 0; z <= 3; z++ {
		pos := voxel.Pos{X: 0, Y: 0, Z: z}
		assert.True(t, path.HasElement(pos), "expected element at %v", pos)
		assert.False(t, path.IsRepeaterAt(pos), "expected plain wire at %v", pos)
	}
}

func TestRouteSingleStep(t *testing.T) {
	start := voxel.Pos{X: 0, Y: 0, Z: 0}
	end := voxel.Pos{X: 0, Y: 0, Z: 1}

	path, err := bussing.Route(start, end, nil, nil, nil, bussing.WirePath{}, bussing.Options{MaxSteps: 50})
	require.NoError(t, err)
	assert.True(t, path.HasElement(end))
}

func TestRouteTimesOutWithTinyStepBudget(t *testing.T) {
	start := voxel.Pos{X: 0, Y: 0, Z: 0}
	end := voxel.Pos{X: 0, Y: 0, Z: 10}

	_, err := bussing.Route(start, end, nil, nil, nil, bussing.WirePath{}, bussing.Options{MaxSteps: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, bussing.ErrBussingTimeout)
}

func TestMinCostStraightLineMatchesDistance(t *testing.T) {
	start := voxel.Pos{X: 0, Y: 0, Z: 0}
	end := voxel.Pos{X: 0, Y: 0, Z: 3}
	south := voxel.South

	cost := bussing.MinCost(start, end, &south, nil)
	assert.Equal(t, 3.0, cost)
}

func TestMinCostZeroAtSamePosition(t *testing.T) {
	p := voxel.Pos{X: 2, Y: 2, Z: 2}
	assert.Equal(t, 0.0, bussing.MinCost(p, p, nil, nil))
}

func TestWirePathPlacedVoxelsExcludesAirspace(t *testing.T) {
	start := voxel.Pos{X: 0, Y: 0, Z: 0}
	end := voxel.Pos{X: 0, Y: 2, Z: 2}

	path, err := bussing.Route(start, end, nil, nil, nil, bussing.WirePath{}, bussing.Options{MaxSteps: 2000})
	require.NoError(t, err)

	placed := path.PlacedVoxels()
	seen := map[voxel.Pos]bool{}
	for _, pos := range placed {
		seen[pos] = true
	}
	for pos := range path.Airspace {
		assert.False(t, seen[pos], "airspace voxel %v must not be a placed (solid) voxel", pos)
	}
}
