package placer_test

import (
	"fmt"

	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placer"
	"github.com/andrewsmike/redhdl/voxel"
)

// Example places a single driver/sink pair and reports how many instances
// ended up placed. The search's exact placement and cost are seed- and
// round-budget-dependent (see TestRunDeterministicGivenSeed for that
// guarantee pinned against a fixed Options value); this Example only
// demonstrates the entry point's shape.
func Example() {
	footprint := voxel.NewPrism(voxel.Zero, voxel.Pos{X: 1, Y: 1, Z: 1})
	outPins, err := voxel.NewPositionSequence(voxel.Pos{X: 1, Y: 0, Z: 0}, voxel.Pos{X: 1, Y: 0, Z: 0}, 1)
	if err != nil {
		panic(err)
	}
	inPins, err := voxel.NewPositionSequence(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 0, Y: 0, Z: 0}, 1)
	if err != nil {
		panic(err)
	}

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
		netlist.PinIdSequence{PortId: netlist.PortId{InstanceID: "driver", PortName: "out"}, Slice: voxel.Slice{Start: 0, Stop: 1, Step: 1}},
		netlist.PinIdSequence{PortId: netlist.PortId{InstanceID: "sink", PortName: "in"}, Slice: voxel.Slice{Start: 0, Stop: 1, Step: 1}},
	)
	if err != nil {
		panic(err)
	}
	nl, err := netlist.NewNetlist(
		map[netlist.InstanceId]netlist.Instance{"driver": driver, "sink": sink},
		map[netlist.NetworkId]netlist.Network{0: network},
	)
	if err != nil {
		panic(err)
	}

	result, err := placer.Run(nl, placer.Options{Seed: 1, Rounds: 256, Restarts: 4, PrewarmRounds: 16, FirstPrewarmRounds: 64})
	if err != nil {
		panic(err)
	}

	fmt.Println(len(result.Placement))

	// Output:
	// 2
}
