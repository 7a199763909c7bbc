package cost

import (
	"math"

	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placement"
	"github.com/andrewsmike/redhdl/voxel"
)

// computeRaw evaluates the placement-geometry heuristics shared by
// Unbussable and Bussable: everything except the two post-routing
// bus-length heuristics, which the caller fills in separately once a
// routing result exists.
func computeRaw(nl *netlist.Netlist, p placement.Placement) (rawHeuristics, error) {
	pairs, err := placement.SourceDestPinPosPairs(nl, p)
	if err != nil {
		return rawHeuristics{}, err
	}

	valid, err := placement.Valid(nl, p, 1)
	if err != nil {
		return rawHeuristics{}, err
	}
	collisions := 0.0
	if !valid {
		collisions = 1
	}

	compactness, err := compactnessScore(nl, p)
	if err != nil {
		return rawHeuristics{}, err
	}

	lineOfSight, err := interruptedLineOfSight(nl, p, pairs)
	if err != nil {
		return rawHeuristics{}, err
	}

	missingPadding, err := avgMissingPadding(nl, p)
	if err != nil {
		return rawHeuristics{}, err
	}

	shiftMisalign, err := shiftMisalignment(nl, p)
	if err != nil {
		return rawHeuristics{}, err
	}

	strideMisalign, err := strideMisalignment(nl, p)
	if err != nil {
		return rawHeuristics{}, err
	}

	crossed, err := crossedBuses(nl, p)
	if err != nil {
		return rawHeuristics{}, err
	}

	return rawHeuristics{
		minL1Avg:           minConnectionL1Avg(pairs),
		minL1Max:           minConnectionL1Max(pairs),
		collisions:         collisions,
		size:               1 + 1/(compactness+10),
		lineOfSight:        lineOfSight,
		missingPadding:     1 - missingPadding/MaxPadding,
		shiftMisalign:      shiftMisalign,
		strideMisalign:     1 - strideMisalign,
		crossedBuses:       crossed,
		tooDirectlyAbove:   tooDirectlyAbovePct(pairs),
		excessiveDownwards: excessiveDownwardsPct(pairs),
		minRouter:          minRouterLowerBound(pairs),
	}, nil
}

// minConnectionL1Avg/Max are the mean/max L1 driver-sink distance over
// every pin pair, per spec.md 4.4's literal "min-connection-L1, average
// and max" definition — used raw, not log2-transformed (see doc.go).
func minConnectionL1Avg(pairs []placement.PinPosPair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	var sum int
	for _, pair := range pairs {
		sum += pair.DestPos.Sub(pair.SourcePos).L1()
	}
	return float64(sum) / float64(len(pairs))
}

func minConnectionL1Max(pairs []placement.PinPosPair) float64 {
	max := 0
	for i, pair := range pairs {
		l1 := pair.DestPos.Sub(pair.SourcePos).L1()
		if i == 0 || l1 > max {
			max = l1
		}
	}
	return float64(max)
}

// compactnessScore is −sum(extent) of the placement's bounding box,
// ported from placement_compactness_score.
func compactnessScore(nl *netlist.Netlist, p placement.Placement) (float64, error) {
	region, err := placement.Region(nl, p)
	if err != nil {
		return 0, err
	}
	if region.IsEmpty() {
		return 0, nil
	}
	extent := region.MaxPos().Sub(region.MinPos())
	return -float64(extent.X + extent.Y + extent.Z), nil
}

// interruptedLineOfSight is the fraction of pin pairs whose normalized
// driver-sink bounding box intersects the placement's instance regions,
// ported from pin_pair_interrupted_line_of_sight_pct.
func interruptedLineOfSight(nl *netlist.Netlist, p placement.Placement, pairs []placement.PinPosPair) (float64, error) {
	if len(pairs) == 0 {
		return 0, nil
	}
	instanceRegions, err := placement.Region(nl, p)
	if err != nil {
		return 0, err
	}

	interrupted := 0
	for _, pair := range pairs {
		lo, _ := voxel.ElemMin(pair.SourcePos, pair.DestPos)
		hi, _ := voxel.ElemMax(pair.SourcePos, pair.DestPos)
		box := voxel.NewPrism(lo, hi)
		if box.Intersects(instanceRegions) {
			interrupted++
		}
	}
	return float64(interrupted) / float64(len(pairs)), nil
}

// avgMissingPadding is the average per-instance minimum XZ breathing
// room, up to MaxPadding, ported from avg_instance_padding_blocks.
func avgMissingPadding(nl *netlist.Netlist, p placement.Placement) (float64, error) {
	region, err := placement.Region(nl, p)
	if err != nil {
		return 0, err
	}
	subregions := region.Subregions()
	if len(subregions) == 0 {
		return 0, nil
	}

	total := 0
	for i, instanceRegion := range subregions {
		others := make([]voxel.Region, 0, len(subregions)-1)
		for j, other := range subregions {
			if j != i {
				others = append(others, other)
			}
		}
		otherComposite := voxel.NewComposite(others...)

		padding := MaxPadding + 1
		for candidate := 1; candidate <= MaxPadding; candidate++ {
			if instanceRegion.XZPadded(candidate).Intersects(otherComposite) {
				padding = candidate
				break
			}
		}
		total += padding - 1
	}
	return float64(total) / float64(len(subregions)), nil
}

// shiftMisalignment is the mean, over every internal port-pair, of
// min(log2(|delta . step|_1 + 1), 8) / 8 for pairs whose driver and
// sink strides match (0 contribution otherwise), ported from
// misaligned_bus_pct.
func shiftMisalignment(nl *netlist.Netlist, p placement.Placement) (float64, error) {
	seqPairs := nl.SourceDestPinIDSeqPairs()
	if len(seqPairs) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, seqPair := range seqPairs {
		source, err := placement.PinSeqPositions(nl, p, seqPair.Source)
		if err != nil {
			return 0, err
		}
		dest, err := placement.PinSeqPositions(nl, p, seqPair.Dest)
		if err != nil {
			return 0, err
		}
		if source.Step() != dest.Step() {
			continue
		}
		delta := dest.Start.Sub(source.Start)
		strideError := delta.MulElem(source.Step()).L1()
		sum += math.Min(math.Log2(float64(strideError)+1), 8) / 8
	}
	return sum / float64(len(seqPairs)), nil
}

// strideMisalignment returns the fraction of port-pairs whose driver and
// sink strides are equal vectors, ported from stride_aligned_bus_pct;
// computeRaw inverts it into spec.md 4.4's "1 - fraction" form.
func strideMisalignment(nl *netlist.Netlist, p placement.Placement) (float64, error) {
	seqPairs := nl.SourceDestPinIDSeqPairs()
	if len(seqPairs) == 0 {
		return 0, nil
	}

	aligned := 0
	for _, seqPair := range seqPairs {
		source, err := placement.PinSeqPositions(nl, p, seqPair.Source)
		if err != nil {
			return 0, err
		}
		dest, err := placement.PinSeqPositions(nl, p, seqPair.Dest)
		if err != nil {
			return 0, err
		}
		if source.Step() == dest.Step() {
			aligned++
		}
	}
	return float64(aligned) / float64(len(seqPairs)), nil
}

// crossedBuses is the fraction of port-pairs whose (start, stop)
// bounding box intersects the union of every other port-pair's
// bounding box, ported from crossed_bus_pct.
func crossedBuses(nl *netlist.Netlist, p placement.Placement) (float64, error) {
	seqPairs := nl.SourceDestPinIDSeqPairs()
	if len(seqPairs) == 0 {
		return 0, nil
	}

	boxes := make([]voxel.Prism, len(seqPairs))
	for i, seqPair := range seqPairs {
		source, err := placement.PinSeqPositions(nl, p, seqPair.Source)
		if err != nil {
			return 0, err
		}
		dest, err := placement.PinSeqPositions(nl, p, seqPair.Dest)
		if err != nil {
			return 0, err
		}
		lo, _ := voxel.ElemMin(source.Start, dest.Stop)
		hi, _ := voxel.ElemMax(source.Start, dest.Stop)
		boxes[i] = voxel.NewPrism(lo, hi)
	}

	crossed := 0
	for i, box := range boxes {
		others := make([]voxel.Region, 0, len(boxes)-1)
		for j, other := range boxes {
			if j != i {
				others = append(others, other)
			}
		}
		if box.Intersects(voxel.NewComposite(others...)) {
			crossed++
		}
	}
	return float64(crossed) / float64(len(boxes)), nil
}

// excessiveDownwardsPct is the fraction of pin pairs descending more
// steeply than their horizontal run, ported from
// pin_pair_excessive_downwards_pct.
func excessiveDownwardsPct(pairs []placement.PinPosPair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	count := 0
	for _, pair := range pairs {
		delta := pair.DestPos.Sub(pair.SourcePos)
		if delta.Y < 0 && delta.XZ().Abs().L1() < -delta.Y {
			count++
		}
	}
	return float64(count) / float64(len(pairs))
}

// tooDirectlyAbovePct is the fraction of pin pairs that rise with zero
// horizontal offset, ported from pin_pair_straight_up_pct.
func tooDirectlyAbovePct(pairs []placement.PinPosPair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	count := 0
	for _, pair := range pairs {
		delta := pair.DestPos.Sub(pair.SourcePos)
		if delta.Y > 0 && delta.XZ().Abs().L1() == 0 {
			count++
		}
	}
	return float64(count) / float64(len(pairs))
}
