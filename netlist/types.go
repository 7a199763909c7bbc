package netlist

import (
	"fmt"

	"github.com/andrewsmike/redhdl/voxel"
)

// InstanceId names one placed copy of a sub-circuit template.
type InstanceId string

// Reserved instance ids representing the netlist's external I/O boundary.
// Neither has a footprint; InputInstanceID's "out" ports feed the circuit
// (they are the netlist's external inputs), OutputInstanceID's "in" ports
// are driven by the circuit (the netlist's external outputs).
const (
	InputInstanceID  InstanceId = "input"
	OutputInstanceID InstanceId = "output"
)

// PortDirection is a port's signal direction from the owning instance's
// point of view.
type PortDirection int

const (
	In PortDirection = iota
	Out
)

func (d PortDirection) String() string {
	if d == In {
		return "in"
	}
	return "out"
}

// Port is a named, directed, contiguously-indexed bundle of pins.
type Port struct {
	Direction PortDirection
	PinCount  int
}

// PortId identifies one port on one instance.
type PortId struct {
	InstanceID InstanceId
	PortName   string
}

func (p PortId) String() string {
	return fmt.Sprintf("(%s, %s)", p.InstanceID, p.PortName)
}

// PinId identifies one pin: the Index-th pin of a PortId.
type PinId struct {
	PortId PortId
	Index  int
}

func (p PinId) String() string {
	return fmt.Sprintf("(%s, %d)", p.PortId, p.Index)
}

// PinIdSequence is a contiguous subset of one port's pins, described by a
// Slice over pin indices.
type PinIdSequence struct {
	PortId PortId
	Slice  voxel.Slice
}

// Len returns the number of pins the sequence selects.
func (s PinIdSequence) Len() int {
	return len(s.Slice.Indices())
}

// PinIds enumerates the concrete pin ids the sequence selects.
func (s PinIdSequence) PinIds() []PinId {
	indices := s.Slice.Indices()
	out := make([]PinId, len(indices))
	for i, idx := range indices {
		out[i] = PinId{PortId: s.PortId, Index: idx}
	}
	return out
}

// PinDescriptor locates a port's pins in an instance's local frame: a
// collinear PositionSequence plus the facing direction a wire should
// approach from.
type PinDescriptor struct {
	Positions voxel.PositionSequence
	Facing    voxel.Direction
}

// Instance is a named copy of a sub-circuit template: its ports, its
// footprint region in the instance's local frame (minimum corner at the
// origin for real templates; zero-value for the "input"/"output" stubs,
// which have no physical footprint), and each port's PinDescriptor.
type Instance struct {
	Ports     map[string]Port
	Footprint voxel.Region
	Pins      map[string]PinDescriptor
}

// IsIOStub reports whether this is the reserved "input"/"output" pseudo
// instance representation (no footprint, pins optional).
func (inst Instance) IsIOStub() bool {
	return inst.Footprint == nil
}
