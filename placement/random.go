package placement

import (
	"math/rand"
	"sort"

	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/voxel"
)

// MaxPlacementAttempts bounds the number of rejection-sampling tries
// RandomPlacement spends on a single instance before giving up. Recovered
// from original_source/redhdl/placement.py's MAX_PLACEMENT_ATTEMPTS (see
// SPEC_FULL.md 9.1): the Python engine tunes this constant but spec.md
// itself only names the algorithm, not its cutoff.
const MaxPlacementAttempts = 40

// RandomPlacementXZPadding is the XZ padding random placement enforces
// between instance footprints, separate from (and usually larger than) the
// XZ padding the placer validates a final placement against. Recovered
// from original_source's xz_padding = 3 (SPEC_FULL.md 9.1).
const RandomPlacementXZPadding = 3

// ioStubClearance is the X distance at which the reserved "input"/"output"
// pseudo instances are anchored when they need a placement (they have no
// footprint, so RandomPlacement cannot rejection-sample a position for them
// the way it does for real instances). "input" is anchored this far below
// the placed instances' bounding-box minimum corner in X, "output" this far
// above its maximum corner, both facing into the box.
const ioStubClearance = 2

// RandomPlacement produces a random, non-overlapping initial Placement by
// sequential rejection sampling: instances are placed one at a time (in
// deterministic id order, for reproducibility given a seeded rng), each
// picking a uniformly random position within a bounding volume sized to
// 8 + sum-of-instance-footprint-corners (spec.md 4.5), retried up to
// MaxPlacementAttempts times against the instances already placed.
func RandomPlacement(nl *netlist.Netlist, rng *rand.Rand) (Placement, error) {
	ids := make([]netlist.InstanceId, 0, len(nl.Instances))
	for id := range nl.Instances {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	volume := boundingVolume(nl)

	placement := make(Placement, len(ids))
	for _, id := range ids {
		inst := nl.Instances[id]
		if inst.IsIOStub() {
			continue // placed below, once the real instances have bounds
		}

		placed, err := randomNonOverlappingPos(nl, placement, id, inst, volume, rng)
		if err != nil {
			return nil, err
		}
		placement[id] = placed
	}

	placeIOStubs(nl, placement)

	return placement, nil
}

// boundingVolume returns the corner of the axis-aligned box random
// placement samples within: (8,8,8) plus the sum of every schematic
// instance's footprint max corner, per spec.md 4.5.
func boundingVolume(nl *netlist.Netlist) voxel.Pos {
	sum := voxel.Pos{X: 8, Y: 8, Z: 8}
	for _, inst := range nl.Instances {
		if inst.Footprint == nil {
			continue
		}
		sum = sum.Add(inst.Footprint.MaxPos())
	}
	return sum
}

func randomNonOverlappingPos(
	nl *netlist.Netlist,
	placement Placement,
	id netlist.InstanceId,
	inst netlist.Instance,
	volume voxel.Pos,
	rng *rand.Rand,
) (Placed, error) {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		candidate := Placed{
			Pos:       randomPosIn(volume, rng),
			Direction: voxel.XZDirections[rng.Intn(len(voxel.XZDirections))],
		}

		trial := placement.Clone()
		trial[id] = candidate
		ok, err := overlapsNone(nl, trial, id, inst, candidate)
		if err != nil {
			return Placed{}, err
		}
		if ok {
			return candidate, nil
		}
	}
	return Placed{}, ErrPlacementTimeout
}

func overlapsNone(
	nl *netlist.Netlist,
	trial Placement,
	id netlist.InstanceId,
	inst netlist.Instance,
	candidate Placed,
) (bool, error) {
	candidateRegion := inst.Footprint.YRotated(quarterTurns(candidate.Direction)).
		Shifted(candidate.Pos).XZPadded(RandomPlacementXZPadding)

	for otherID, otherPlaced := range trial {
		if otherID == id {
			continue
		}
		otherInst, ok := nl.Instances[otherID]
		if !ok || otherInst.IsIOStub() {
			continue
		}
		otherRegion := otherInst.Footprint.YRotated(quarterTurns(otherPlaced.Direction)).
			Shifted(otherPlaced.Pos).XZPadded(RandomPlacementXZPadding)
		if candidateRegion.Intersects(otherRegion) {
			return false, nil
		}
	}
	return true, nil
}

func randomPosIn(volume voxel.Pos, rng *rand.Rand) voxel.Pos {
	return voxel.Pos{
		X: randIntn(rng, volume.X),
		Y: randIntn(rng, volume.Y),
		Z: randIntn(rng, volume.Z),
	}
}

func randIntn(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}

// placeIOStubs anchors the "input"/"output" reserved pseudo instances just
// outside the placed bounding box, facing into it. They have no footprint
// and so never participate in overlap checks (Region/Valid both skip
// IsIOStub instances); this just gives their pins a position to derive
// from.
func placeIOStubs(nl *netlist.Netlist, placement Placement) {
	box := schematicBoundingBox(nl, placement)
	if input, ok := nl.Instances[netlist.InputInstanceID]; ok && input.IsIOStub() {
		placement[netlist.InputInstanceID] = Placed{
			Pos:       box.Min.Sub(voxel.Pos{X: ioStubClearance, Y: 0, Z: 0}),
			Direction: voxel.East,
		}
	}
	if output, ok := nl.Instances[netlist.OutputInstanceID]; ok && output.IsIOStub() {
		placement[netlist.OutputInstanceID] = Placed{
			Pos:       box.Max.Add(voxel.Pos{X: ioStubClearance, Y: 0, Z: 0}),
			Direction: voxel.West,
		}
	}
}

func schematicBoundingBox(nl *netlist.Netlist, placement Placement) voxel.Prism {
	var regions []voxel.Region
	for id, inst := range nl.Instances {
		if inst.IsIOStub() {
			continue
		}
		placed, ok := placement[id]
		if !ok {
			continue
		}
		regions = append(regions, inst.Footprint.YRotated(quarterTurns(placed.Direction)).Shifted(placed.Pos))
	}
	if len(regions) == 0 {
		return voxel.NewPrism(voxel.Zero, voxel.Zero)
	}
	composite := voxel.NewComposite(regions...)
	return composite.BoundingBox()
}
