package assembly

import (
	"fmt"
	"sort"

	"github.com/andrewsmike/redhdl/bussing"
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placement"
	"github.com/andrewsmike/redhdl/voxel"
)

// Assemble merges every non-stub instance's placed footprint and every
// routed WirePath's placed voxels into one VoxelSet, per spec.md 4.6.
// Instances are visited in sorted id order and wires in sorted sink-PinId
// order so two runs against the same (netlist, placement, routes) produce
// byte-identical results; a voxel-level overlap between two instances'
// footprints is ErrOverlappingPlacement. Wires are written after every
// instance and are not checked for overlap at all (bussing.Route and
// cost.RouteAll gate on the COLLISION rules during routing): a wire or
// repeater element replaces whatever block is already at its position,
// an instance voxel included, while foundation and spacer voxels are only
// written where no block exists yet.
func Assemble(
	nl *netlist.Netlist,
	p placement.Placement,
	routes map[netlist.PinId]*bussing.WirePath,
) (VoxelSet, error) {
	out := make(VoxelSet)

	if err := placeInstances(nl, p, out); err != nil {
		return nil, err
	}
	placeWires(routes, out)

	return out, nil
}

func placeInstances(nl *netlist.Netlist, p placement.Placement, out VoxelSet) error {
	ids := make([]netlist.InstanceId, 0, len(nl.Instances))
	for id, inst := range nl.Instances {
		if inst.IsIOStub() {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		region, err := placement.InstanceRegion(nl, p, id)
		if err != nil {
			return err
		}
		for _, pos := range region.Points() {
			if existing, ok := out[pos]; ok && existing.Kind == BlockInstance {
				return fmt.Errorf("%w: %s and %s both occupy %v", ErrOverlappingPlacement, existing.Instance, id, pos)
			}
			out[pos] = Block{Kind: BlockInstance, Instance: id}
		}
	}
	return nil
}

func placeWires(routes map[netlist.PinId]*bussing.WirePath, out VoxelSet) {
	sinks := make([]netlist.PinId, 0, len(routes))
	for sink := range routes {
		sinks = append(sinks, sink)
	}
	sort.Slice(sinks, func(i, j int) bool { return pinIdLess(sinks[i], sinks[j]) })

	for _, sink := range sinks {
		placeWire(*routes[sink], out)
	}
}

func placeWire(w bussing.WirePath, out VoxelSet) {
	for pos, strength := range w.Elements {
		kind := BlockWireElement
		if w.IsRepeaterAt(pos) {
			kind = BlockRepeater
		}
		out[pos] = Block{Kind: kind, Strength: strength}
	}
	for pos := range w.FoundationBlocks() {
		if _, occupied := out[pos]; occupied {
			continue
		}
		out[pos] = Block{Kind: BlockFoundation}
	}
	for pos := range w.Spacers {
		if _, occupied := out[pos]; occupied {
			continue
		}
		out[pos] = Block{Kind: BlockSpacer}
	}
}

func pinIdLess(a, b netlist.PinId) bool {
	if a.PortId.InstanceID != b.PortId.InstanceID {
		return a.PortId.InstanceID < b.PortId.InstanceID
	}
	if a.PortId.PortName != b.PortId.PortName {
		return a.PortId.PortName < b.PortId.PortName
	}
	return a.Index < b.Index
}

// Voxels returns the positions in vs for which kind matches, sorted
// lexicographically (voxel.Pos's comparison order) — a convenience for
// tests and driver-layer rendering.
func (vs VoxelSet) Voxels(kind BlockKind) []voxel.Pos {
	var out []voxel.Pos
	for pos, block := range vs {
		if block.Kind == kind {
			out = append(out, pos)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
