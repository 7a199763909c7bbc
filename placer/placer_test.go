package placer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewsmike/redhdl/assembly"
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placer"
	"github.com/andrewsmike/redhdl/voxel"
)

func fullSlice(n int) voxel.Slice {
	return voxel.Slice{Start: 0, Stop: n, Step: 1}
}

// driverSinkNetlist builds a minimal two-instance, single-bit netlist: a
// "driver" instance's "out" port feeds a "sink" instance's "in" port.
func driverSinkNetlist(t *testing.T) *netlist.Netlist {
	t.Helper()

	footprint := voxel.NewPrism(voxel.Zero, voxel.Pos{X: 1, Y: 1, Z: 1})
	outPins, err := voxel.NewPositionSequence(voxel.Pos{X: 1, Y: 0, Z: 0}, voxel.Pos{X: 1, Y: 0, Z: 0}, 1)
	require.NoError(t, err)
	inPins, err := voxel.NewPositionSequence(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 0, Y: 0, Z: 0}, 1)
	require.NoError(t, err)

	driver := netlist.Instance{
		Ports:     map[string]netlist.Port{"out": {Direction: netlist.Out, PinCount: 1}},
		Footprint: footprint,
		Pins:      map[string]netlist.PinDescriptor{"out": {Positions: outPins, Facing: voxel.East}},
	}
	sink := netlist.Instance{
		Ports:     map[string]netlist.Port{"in": {Direction: netlist.In, PinCount: 1}},
		Footprint: footprint,
		Pins:      map[string]netlist.PinDescriptor{"in": {Positions: inPins, Facing: voxel.West}},
	}

	network, err := netlist.NewNetwork(
		netlist.PinIdSequence{PortId: netlist.PortId{InstanceID: "driver", PortName: "out"}, Slice: fullSlice(1)},
		netlist.PinIdSequence{PortId: netlist.PortId{InstanceID: "sink", PortName: "in"}, Slice: fullSlice(1)},
	)
	require.NoError(t, err)

	nl, err := netlist.NewNetlist(
		map[netlist.InstanceId]netlist.Instance{"driver": driver, "sink": sink},
		map[netlist.NetworkId]netlist.Network{0: network},
	)
	require.NoError(t, err)
	return nl
}

func TestRunDeterministicGivenSeed(t *testing.T) {
	nl := driverSinkNetlist(t)
	opts := placer.Options{Seed: 7, Rounds: 512, Restarts: 4, PrewarmRounds: 32, FirstPrewarmRounds: 64}

	r1, err := placer.Run(nl, opts)
	require.NoError(t, err)
	r2, err := placer.Run(nl, opts)
	require.NoError(t, err)

	require.Equal(t, r1.Placement, r2.Placement)
	require.Equal(t, r1.BestCost, r2.BestCost)
}

func TestRunProducesCompletePlacement(t *testing.T) {
	nl := driverSinkNetlist(t)
	opts := placer.Options{Seed: 1, Rounds: 1024, Restarts: 4, PrewarmRounds: 64, FirstPrewarmRounds: 256}

	result, err := placer.Run(nl, opts)
	require.NoError(t, err)
	require.Len(t, result.Placement, 2)
	_, hasDriver := result.Placement["driver"]
	_, hasSink := result.Placement["sink"]
	require.True(t, hasDriver)
	require.True(t, hasSink)
}

func TestRunRoutableResultHasConsistentVoxels(t *testing.T) {
	nl := driverSinkNetlist(t)
	opts := placer.Options{Seed: 1, Rounds: 2048, Restarts: 8, PrewarmRounds: 64, FirstPrewarmRounds: 512}

	result, err := placer.Run(nl, opts)
	require.NoError(t, err)

	if result.Routes == nil {
		t.Skip("best placement did not route within the round budget")
	}
	require.NotNil(t, result.Voxels)
	require.Len(t, result.Voxels.Voxels(assembly.BlockInstance), 2)
}
