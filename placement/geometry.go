package placement

import (
	"fmt"
	"sort"

	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/voxel"
)

// InstanceRegion returns the placed, rotated, and translated footprint of
// one instance.
func InstanceRegion(nl *netlist.Netlist, p Placement, id netlist.InstanceId) (voxel.Region, error) {
	inst, ok := nl.Instances[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstance, id)
	}
	placed, ok := p[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no placement", ErrUnknownInstance, id)
	}
	if inst.Footprint == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotSchematicInstance, id)
	}
	return inst.Footprint.YRotated(quarterTurns(placed.Direction)).Shifted(placed.Pos), nil
}

// orderedInstanceIDs returns the placement's instance ids in sorted order,
// so callers building a Composite region get deterministic subregion order.
func orderedInstanceIDs(p Placement) []netlist.InstanceId {
	ids := make([]netlist.InstanceId, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Region returns the union of every placed instance's footprint region, in
// deterministic instance-id order. Instances with no footprint (the
// "input"/"output" I/O stubs) contribute nothing.
func Region(nl *netlist.Netlist, p Placement) (voxel.Composite, error) {
	ids := orderedInstanceIDs(p)
	regions := make([]voxel.Region, 0, len(ids))
	for _, id := range ids {
		if inst, ok := nl.Instances[id]; !ok || inst.IsIOStub() {
			continue
		}
		region, err := InstanceRegion(nl, p, id)
		if err != nil {
			return voxel.Composite{}, err
		}
		regions = append(regions, region)
	}
	return voxel.NewComposite(regions...), nil
}

// Valid reports whether every pair of placed instance footprints, each
// padded by xzPadding blocks horizontally, is free of overlap. xzPadding
// must be >= 1 for the result to match the engine's "instance overlap (with
// XZ padding >= 1) makes a placement invalid" contract.
func Valid(nl *netlist.Netlist, p Placement, xzPadding int) (bool, error) {
	composite, err := Region(nl, p)
	if err != nil {
		return false, err
	}
	padded := make([]voxel.Region, len(composite.Subregions()))
	for i, region := range composite.Subregions() {
		padded[i] = region.XZPadded(xzPadding)
	}
	return !voxel.AnyOverlap(padded), nil
}

// PinSeqPositions returns the voxel positions a PinIdSequence occupies under
// this placement: the template's pin positions (restricted to the
// sequence's slice), offset to the wire-attachment voxel, rotated by the
// instance's orientation, and translated by the instance's position.
func PinSeqPositions(nl *netlist.Netlist, p Placement, seq netlist.PinIdSequence) (voxel.PositionSequence, error) {
	instanceID := seq.PortId.InstanceID
	inst, ok := nl.Instances[instanceID]
	if !ok {
		return voxel.PositionSequence{}, fmt.Errorf("%w: %s", ErrUnknownInstance, instanceID)
	}
	descriptor, ok := inst.Pins[seq.PortId.PortName]
	if !ok {
		return voxel.PositionSequence{}, fmt.Errorf("%w: %v", ErrUnknownPort, seq.PortId)
	}
	placed, ok := p[instanceID]
	if !ok {
		return voxel.PositionSequence{}, fmt.Errorf("%w: %s has no placement", ErrUnknownInstance, instanceID)
	}

	selected, err := descriptor.Positions.Select(seq.Slice)
	if err != nil {
		return voxel.PositionSequence{}, err
	}

	offset := wireOffset(descriptor.Facing)
	withOffset := selected.Shifted(offset)

	return withOffset.YRotated(quarterTurns(placed.Direction)).Shifted(placed.Pos), nil
}

// PinPosPair pairs a source (driver) pin with a destination (sink) pin at
// their placed voxel positions, along with each port's per-pin stride.
type PinPosPair struct {
	SourcePinID     netlist.PinId
	SourcePos       voxel.Pos
	SourceStride    voxel.Pos
	DestPinID       netlist.PinId
	DestPos         voxel.Pos
	DestStride      voxel.Pos
}

// SourceDestPinPosPairs enumerates every internal driver->sink pin pair
// (skipping the netlist's I/O boundary) at their placed positions.
func SourceDestPinPosPairs(nl *netlist.Netlist, p Placement) ([]PinPosPair, error) {
	var out []PinPosPair
	for _, seqPair := range nl.SourceDestPinIDSeqPairs() {
		sourcePositions, err := PinSeqPositions(nl, p, seqPair.Source)
		if err != nil {
			return nil, err
		}
		destPositions, err := PinSeqPositions(nl, p, seqPair.Dest)
		if err != nil {
			return nil, err
		}
		sourcePinIDs := seqPair.Source.PinIds()
		destPinIDs := seqPair.Dest.PinIds()
		sourceValues := sourcePositions.Values()
		destValues := destPositions.Values()
		n := min(len(sourcePinIDs), len(destPinIDs))
		for i := 0; i < n; i++ {
			out = append(out, PinPosPair{
				SourcePinID:  sourcePinIDs[i],
				SourcePos:    sourceValues[i],
				SourceStride: sourcePositions.Step(),
				DestPinID:    destPinIDs[i],
				DestPos:      destValues[i],
				DestStride:   destPositions.Step(),
			})
		}
	}
	return out, nil
}
