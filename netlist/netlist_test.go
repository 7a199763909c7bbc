package netlist

import (
	"testing"

	"github.com/andrewsmike/redhdl/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSlice(n int) voxel.Slice {
	return voxel.Slice{Start: 0, Stop: n, Step: 1}
}

func TestNewNetworkValidatesWidth(t *testing.T) {
	driver := PinIdSequence{PortId: PortId{"adder", "out"}, Slice: fullSlice(4)}
	sink := PinIdSequence{PortId: PortId{"reg", "in"}, Slice: fullSlice(2)}

	_, err := NewNetwork(driver, sink)
	assert.ErrorIs(t, err, ErrMismatchedWidth)
}

func TestNewNetworkRejectsCycles(t *testing.T) {
	driver := PinIdSequence{PortId: PortId{"a", "out"}, Slice: fullSlice(4)}
	sink := driver // same pins, reused as a sink: cyclic.

	_, err := NewNetwork(driver, sink)
	assert.ErrorIs(t, err, ErrCyclicNetwork)
}

func TestNewNetworkRejectsEmpty(t *testing.T) {
	driver := PinIdSequence{PortId: PortId{"a", "out"}, Slice: fullSlice(0)}
	_, err := NewNetwork(driver)
	assert.ErrorIs(t, err, ErrEmptyPinSequence)
}

func buildExampleNetlist(t *testing.T) *Netlist {
	t.Helper()
	constant := Instance{Ports: map[string]Port{"output": {Direction: Out, PinCount: 4}}}
	adder := Instance{Ports: map[string]Port{
		"a":   {Direction: In, PinCount: 4},
		"b":   {Direction: In, PinCount: 4},
		"out": {Direction: Out, PinCount: 4},
	}}
	outputStub := Instance{Ports: map[string]Port{"out": {Direction: In, PinCount: 4}}}

	instances := map[InstanceId]Instance{
		"constant_a":        constant,
		"constant_b":        constant,
		"adder":             adder,
		OutputInstanceID:    outputStub,
	}

	n0, err := NewNetwork(
		PinIdSequence{PortId: PortId{"constant_a", "output"}, Slice: fullSlice(4)},
		PinIdSequence{PortId: PortId{"adder", "a"}, Slice: fullSlice(4)},
	)
	require.NoError(t, err)
	n1, err := NewNetwork(
		PinIdSequence{PortId: PortId{"constant_b", "output"}, Slice: fullSlice(4)},
		PinIdSequence{PortId: PortId{"adder", "b"}, Slice: fullSlice(4)},
	)
	require.NoError(t, err)
	n2, err := NewNetwork(
		PinIdSequence{PortId: PortId{"adder", "out"}, Slice: fullSlice(4)},
		PinIdSequence{PortId: PortId{OutputInstanceID, "out"}, Slice: fullSlice(4)},
	)
	require.NoError(t, err)

	nl, err := NewNetlist(instances, map[NetworkId]Network{0: n0, 1: n1, 2: n2})
	require.NoError(t, err)
	return nl
}

func TestIOPorts(t *testing.T) {
	nl := buildExampleNetlist(t)
	ports := nl.IOPorts()
	assert.Equal(t, Port{Direction: Out, PinCount: 4}, ports["out"])
	assert.Len(t, ports, 1)
}

func TestSourceDestPinIDSeqPairsSkipsIOStubs(t *testing.T) {
	nl := buildExampleNetlist(t)
	pairs := nl.SourceDestPinIDSeqPairs()
	require.Len(t, pairs, 2)
	for _, pair := range pairs {
		assert.NotEqual(t, OutputInstanceID, pair.Dest.PortId.InstanceID)
		assert.NotEqual(t, InputInstanceID, pair.Source.PortId.InstanceID)
	}
}

func TestSubnetlistAndIsSubset(t *testing.T) {
	nl := buildExampleNetlist(t)
	sub := nl.Subnetlist(map[InstanceId]bool{"adder": true, "constant_a": true})

	assert.True(t, sub.IsSubset(nl))
	assert.False(t, nl.IsSubset(sub))
	assert.Len(t, sub.Networks, 1)
}
