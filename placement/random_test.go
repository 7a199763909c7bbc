package placement_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placement"
	"github.com/andrewsmike/redhdl/voxel"
)

func twoBlockNetlist(t *testing.T) *netlist.Netlist {
	t.Helper()
	footprint := voxel.NewPrism(voxel.Zero, voxel.Pos{X: 1, Y: 1, Z: 1})
	pins, err := voxel.NewPositionSequence(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 1, Y: 0, Z: 0}, 2)
	require.NoError(t, err)

	inst := netlist.Instance{
		Ports:     map[string]netlist.Port{"a": {Direction: netlist.Out, PinCount: 2}},
		Footprint: footprint,
		Pins:      map[string]netlist.PinDescriptor{"a": {Positions: pins, Facing: voxel.North}},
	}

	nl, err := netlist.NewNetlist(map[netlist.InstanceId]netlist.Instance{
		"not1": inst,
		"not2": inst,
	}, nil)
	require.NoError(t, err)
	return nl
}

func TestRandomPlacementNonOverlapping(t *testing.T) {
	nl := twoBlockNetlist(t)
	rng := rand.New(rand.NewSource(1))

	p, err := placement.RandomPlacement(nl, rng)
	require.NoError(t, err)
	require.Len(t, p, 2)

	valid, err := placement.Valid(nl, p, 1)
	require.NoError(t, err)
	require.True(t, valid)
}

func TestRandomPlacementDeterministic(t *testing.T) {
	nl := twoBlockNetlist(t)

	p1, err := placement.RandomPlacement(nl, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	p2, err := placement.RandomPlacement(nl, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, p1, p2)
}

func TestMutatePreservesInstanceSet(t *testing.T) {
	nl := twoBlockNetlist(t)
	rng := rand.New(rand.NewSource(7))
	p, err := placement.RandomPlacement(nl, rng)
	require.NoError(t, err)

	mutated := placement.Mutate(p, rng)
	require.Len(t, mutated, len(p))
	for id := range p {
		_, ok := mutated[id]
		require.True(t, ok)
	}
}

func TestMutateDoesNotAliasOriginal(t *testing.T) {
	nl := twoBlockNetlist(t)
	rng := rand.New(rand.NewSource(3))
	p, err := placement.RandomPlacement(nl, rng)
	require.NoError(t, err)

	original := p.Clone()
	_ = placement.Mutate(p, rng)
	require.Equal(t, original, p)
}
