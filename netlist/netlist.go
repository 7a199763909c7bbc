package netlist

import (
	"fmt"
	"sort"
)

// Network is one driver PinIdSequence feeding one or more sink
// PinIdSequences. Invariants: driver pins are disjoint from every sink's
// pins (acyclic at the pin level), and every sink sequence has the same
// length as the driver.
type Network struct {
	Driver PinIdSequence
	Sinks  []PinIdSequence
}

// NewNetwork validates and constructs a Network.
func NewNetwork(driver PinIdSequence, sinks ...PinIdSequence) (Network, error) {
	if driver.Len() == 0 {
		return Network{}, fmt.Errorf("%w: driver %v", ErrEmptyPinSequence, driver.PortId)
	}

	driverPins := make(map[PinId]struct{}, driver.Len())
	for _, p := range driver.PinIds() {
		driverPins[p] = struct{}{}
	}

	for _, sink := range sinks {
		if sink.Len() == 0 {
			return Network{}, fmt.Errorf("%w: sink %v", ErrEmptyPinSequence, sink.PortId)
		}
		if sink.Len() != driver.Len() {
			return Network{}, fmt.Errorf("%w: driver %v has %d pins, sink %v has %d",
				ErrMismatchedWidth, driver.PortId, driver.Len(), sink.PortId, sink.Len())
		}
		for _, p := range sink.PinIds() {
			if _, ok := driverPins[p]; ok {
				return Network{}, fmt.Errorf("%w: pin %v is both driver and sink", ErrCyclicNetwork, p)
			}
		}
	}

	return Network{Driver: driver, Sinks: append([]PinIdSequence(nil), sinks...)}, nil
}

// BitWidth returns the number of bits this network carries.
func (n Network) BitWidth() int {
	return n.Driver.Len()
}

// AllPinIds returns the set of every pin (driver and sink) in the network.
func (n Network) AllPinIds() map[PinId]struct{} {
	out := make(map[PinId]struct{})
	for _, p := range n.Driver.PinIds() {
		out[p] = struct{}{}
	}
	for _, sink := range n.Sinks {
		for _, p := range sink.PinIds() {
			out[p] = struct{}{}
		}
	}
	return out
}

// Subnetwork restricts the network to the given instance id set, returning
// false if the driver's instance is not included, or if no sink's instance
// is included.
func (n Network) Subnetwork(instanceIds map[InstanceId]bool) (Network, bool) {
	if !instanceIds[n.Driver.PortId.InstanceID] {
		return Network{}, false
	}
	var sinks []PinIdSequence
	for _, sink := range n.Sinks {
		if instanceIds[sink.PortId.InstanceID] {
			sinks = append(sinks, sink)
		}
	}
	if len(sinks) == 0 {
		return Network{}, false
	}
	return Network{Driver: n.Driver, Sinks: sinks}, true
}

// NetworkId addresses one Network within a Netlist.
type NetworkId int

// Netlist is the abstract, immutable logic graph the engine places and
// routes: a mapping of instance id to Instance, and a mapping of network id
// to Network. The abstract netlist is input; nothing in this module
// mutates it.
type Netlist struct {
	Instances map[InstanceId]Instance
	Networks  map[NetworkId]Network
}

// NewNetlist validates that every PortId referenced by every network names
// an existing instance and port.
func NewNetlist(instances map[InstanceId]Instance, networks map[NetworkId]Network) (*Netlist, error) {
	nl := &Netlist{Instances: instances, Networks: networks}
	for _, network := range networks {
		for _, seq := range append([]PinIdSequence{network.Driver}, network.Sinks...) {
			if _, err := nl.Port(seq.PortId); err != nil {
				return nil, err
			}
		}
	}
	return nl, nil
}

// Port resolves a PortId to its Port descriptor.
func (nl *Netlist) Port(portId PortId) (Port, error) {
	inst, ok := nl.Instances[portId.InstanceID]
	if !ok {
		return Port{}, fmt.Errorf("%w: %s", ErrUnknownInstance, portId.InstanceID)
	}
	port, ok := inst.Ports[portId.PortName]
	if !ok {
		return Port{}, fmt.Errorf("%w: %v", ErrUnknownPort, portId)
	}
	return port, nil
}

// NextNetworkID returns one more than the largest NetworkId in use (0 for a
// netlist with no networks), convenient when a caller needs to add networks
// to the netlist.
func (nl *Netlist) NextNetworkID() NetworkId {
	next := NetworkId(0)
	for id := range nl.Networks {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// IOPorts returns the netlist's external I/O ports, derived from the
// reserved "input"/"output" pseudo-instances with direction inverted: the
// "input" stub's out-ports become external in-ports (they feed the
// circuit), and the "output" stub's in-ports become external out-ports.
func (nl *Netlist) IOPorts() map[string]Port {
	out := make(map[string]Port)
	if inputInst, ok := nl.Instances[InputInstanceID]; ok {
		for name, port := range inputInst.Ports {
			if port.Direction == Out {
				out[name] = Port{Direction: In, PinCount: port.PinCount}
			}
		}
	}
	if outputInst, ok := nl.Instances[OutputInstanceID]; ok {
		for name, port := range outputInst.Ports {
			if port.Direction == In {
				out[name] = Port{Direction: Out, PinCount: port.PinCount}
			}
		}
	}
	return out
}

// IsSubset reports whether every instance and network of nl also appears
// (as an exact or narrowed subnetwork) in other.
func (nl *Netlist) IsSubset(other *Netlist) bool {
	for id, inst := range nl.Instances {
		otherInst, ok := other.Instances[id]
		if !ok || !instanceEqual(inst, otherInst) {
			return false
		}
	}
	otherInstanceIds := make(map[InstanceId]bool, len(other.Instances))
	for id := range other.Instances {
		otherInstanceIds[id] = true
	}
	for id, network := range nl.Networks {
		otherNetwork, ok := other.Networks[id]
		if !ok {
			return false
		}
		subnet, subOK := network.Subnetwork(otherInstanceIds)
		if !subOK || !networkEqual(subnet, otherNetwork) {
			return false
		}
	}
	return true
}

// Subnetlist restricts the netlist to the given instance ids, dropping any
// network whose driver instance (or every sink instance) falls outside the
// set.
func (nl *Netlist) Subnetlist(instanceIds map[InstanceId]bool) *Netlist {
	instances := make(map[InstanceId]Instance)
	for id, inst := range nl.Instances {
		if instanceIds[id] {
			instances[id] = inst
		}
	}
	networks := make(map[NetworkId]Network)
	for id, network := range nl.Networks {
		if sub, ok := network.Subnetwork(instanceIds); ok {
			networks[id] = sub
		}
	}
	return &Netlist{Instances: instances, Networks: networks}
}

// PinSeqPair is a (source, destination) PinIdSequence pair, as yielded by
// SourceDestPinIDSeqPairs.
type PinSeqPair struct {
	Source, Dest PinIdSequence
}

// SourceDestPinIDSeqPairs enumerates every non-I/O driver->sink
// PinIdSequence pair in the netlist: the concrete connections the router
// must realize as voxel wires, in deterministic (network id, then sink
// order) iteration order. Pairs touching the "input"/"output" pseudo
// instances are skipped, since those represent the netlist's external
// boundary rather than an internal wire.
func (nl *Netlist) SourceDestPinIDSeqPairs() []PinSeqPair {
	ids := make([]NetworkId, 0, len(nl.Networks))
	for id := range nl.Networks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var pairs []PinSeqPair
	for _, id := range ids {
		network := nl.Networks[id]
		if network.Driver.PortId.InstanceID == InputInstanceID {
			continue
		}
		sinks := append([]PinIdSequence(nil), network.Sinks...)
		sort.Slice(sinks, func(i, j int) bool {
			return pinSeqLess(sinks[i], sinks[j])
		})
		for _, sink := range sinks {
			if sink.PortId.InstanceID == OutputInstanceID {
				continue
			}
			pairs = append(pairs, PinSeqPair{Source: network.Driver, Dest: sink})
		}
	}
	return pairs
}

func pinSeqLess(a, b PinIdSequence) bool {
	if a.PortId.InstanceID != b.PortId.InstanceID {
		return a.PortId.InstanceID < b.PortId.InstanceID
	}
	if a.PortId.PortName != b.PortId.PortName {
		return a.PortId.PortName < b.PortId.PortName
	}
	return a.Slice.Start < b.Slice.Start
}

func instanceEqual(a, b Instance) bool {
	if len(a.Ports) != len(b.Ports) {
		return false
	}
	for name, port := range a.Ports {
		if b.Ports[name] != port {
			return false
		}
	}
	return true
}

func networkEqual(a, b Network) bool {
	if a.Driver != b.Driver || len(a.Sinks) != len(b.Sinks) {
		return false
	}
	aSinks := make(map[PinIdSequence]bool, len(a.Sinks))
	for _, s := range a.Sinks {
		aSinks[s] = true
	}
	for _, s := range b.Sinks {
		if !aSinks[s] {
			return false
		}
	}
	return true
}
