package netlist_test

import (
	"fmt"

	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/voxel"
)

// Example builds a one-driver, one-sink network from an adder to the output
// stub and shows that the
// netlist's external I/O ports are derived from the reserved "output"
// pseudo-instance with its port direction inverted.
func Example() {
	adder := netlist.Instance{Ports: map[string]netlist.Port{
		"a":   {Direction: netlist.In, PinCount: 4},
		"out": {Direction: netlist.Out, PinCount: 4},
	}}
	outputStub := netlist.Instance{Ports: map[string]netlist.Port{
		"out": {Direction: netlist.In, PinCount: 4},
	}}

	full := voxel.Slice{Start: 0, Stop: 4, Step: 1}
	network, err := netlist.NewNetwork(
		netlist.PinIdSequence{PortId: netlist.PortId{InstanceID: "adder", PortName: "out"}, Slice: full},
		netlist.PinIdSequence{PortId: netlist.PortId{InstanceID: netlist.OutputInstanceID, PortName: "out"}, Slice: full},
	)
	if err != nil {
		panic(err)
	}

	nl, err := netlist.NewNetlist(
		map[netlist.InstanceId]netlist.Instance{"adder": adder, netlist.OutputInstanceID: outputStub},
		map[netlist.NetworkId]netlist.Network{0: network},
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(nl.IOPorts()["out"])

	// Output:
	// {out 4}
}
