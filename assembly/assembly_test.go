package assembly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewsmike/redhdl/assembly"
	"github.com/andrewsmike/redhdl/bussing"
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placement"
	"github.com/andrewsmike/redhdl/voxel"
)

func oneBlockNetlist(t *testing.T) *netlist.Netlist {
	t.Helper()
	footprint := voxel.NewPrism(voxel.Zero, voxel.Pos{X: 1, Y: 1, Z: 1})
	pins, err := voxel.NewPositionSequence(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 0, Y: 0, Z: 0}, 1)
	require.NoError(t, err)

	inst := netlist.Instance{
		Ports:     map[string]netlist.Port{"a": {Direction: netlist.Out, PinCount: 1}},
		Footprint: footprint,
		Pins:      map[string]netlist.PinDescriptor{"a": {Positions: pins, Facing: voxel.North}},
	}

	nl, err := netlist.NewNetlist(map[netlist.InstanceId]netlist.Instance{
		"not1": inst,
		"not2": {Ports: inst.Ports, Footprint: voxel.NewPrism(voxel.Zero, voxel.Pos{X: 1, Y: 1, Z: 1}), Pins: inst.Pins},
	}, nil)
	require.NoError(t, err)
	return nl
}

func TestAssembleNonOverlappingInstances(t *testing.T) {
	nl := oneBlockNetlist(t)
	p := placement.Placement{
		"not1": {Pos: voxel.Pos{X: 0, Y: 0, Z: 0}, Direction: voxel.North},
		"not2": {Pos: voxel.Pos{X: 10, Y: 0, Z: 0}, Direction: voxel.North},
	}

	vs, err := assembly.Assemble(nl, p, nil)
	require.NoError(t, err)
	require.Len(t, vs.Voxels(assembly.BlockInstance), 2)
	require.Equal(t, netlist.InstanceId("not1"), vs[voxel.Pos{X: 0, Y: 0, Z: 0}].Instance)
	require.Equal(t, netlist.InstanceId("not2"), vs[voxel.Pos{X: 10, Y: 0, Z: 0}].Instance)
}

func TestAssembleOverlappingInstancesErrors(t *testing.T) {
	nl := oneBlockNetlist(t)
	p := placement.Placement{
		"not1": {Pos: voxel.Pos{X: 0, Y: 0, Z: 0}, Direction: voxel.North},
		"not2": {Pos: voxel.Pos{X: 0, Y: 0, Z: 0}, Direction: voxel.North},
	}

	_, err := assembly.Assemble(nl, p, nil)
	require.ErrorIs(t, err, assembly.ErrOverlappingPlacement)
}

func TestAssembleAddsWireVoxelsBesideInstances(t *testing.T) {
	nl := oneBlockNetlist(t)
	p := placement.Placement{
		"not1": {Pos: voxel.Pos{X: 0, Y: 0, Z: 0}, Direction: voxel.North},
		"not2": {Pos: voxel.Pos{X: 10, Y: 0, Z: 0}, Direction: voxel.North},
	}

	wire := bussing.NewWirePath()
	wire.Elements[voxel.Pos{X: 5, Y: 0, Z: 0}] = 15
	wire.Elements[voxel.Pos{X: 6, Y: 0, Z: 0}] = 14
	sink := netlist.PinId{PortId: netlist.PortId{InstanceID: "not2", PortName: "a"}, Index: 0}

	vs, err := assembly.Assemble(nl, p, map[netlist.PinId]*bussing.WirePath{sink: &wire})
	require.NoError(t, err)

	require.Equal(t, assembly.BlockWireElement, vs[voxel.Pos{X: 5, Y: 0, Z: 0}].Kind)
	require.Equal(t, bussing.Strength(15), vs[voxel.Pos{X: 5, Y: 0, Z: 0}].Strength)
	require.Equal(t, assembly.BlockFoundation, vs[voxel.Pos{X: 5, Y: -1, Z: 0}].Kind)
	require.Equal(t, assembly.BlockInstance, vs[voxel.Pos{X: 10, Y: 0, Z: 0}].Kind)
}
