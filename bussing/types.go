package bussing

import "github.com/andrewsmike/redhdl/voxel"

// Strength is a redstone signal strength, 15 down to 1, or the
// RepeaterStrength sentinel for a voxel occupied by a repeater (whose
// "strength" resets the line to 15 on its output side rather than decaying
// like a wire).
type Strength int8

// RepeaterStrength marks an element voxel as a repeater rather than a
// plain wire, mirroring the original engine's SignalStrength union (an int
// 1..15, or the literal string "repeater").
const RepeaterStrength Strength = -1

// IsRepeater reports whether s is the repeater sentinel.
func (s Strength) IsRepeater() bool { return s == RepeaterStrength }

// xzMomentum is the router's horizontal momentum: one of the four
// horizontal facings, or "unknown" at the very start of a route with no
// start-direction hint.
type xzMomentum struct {
	dir   voxel.Direction
	known bool
}

// yMomentum is the router's vertical momentum, matching the original
// engine's BusYDirection literal union.
type yMomentum uint8

const (
	yMomentumUnknown yMomentum = iota
	yMomentumAnyUp
	yMomentumStraightUp
	yMomentumSlantUp
	yMomentumFlat
	yMomentumSlantDown
)

// WirePath is an accumulated redstone bus: every placed wire/repeater
// element (with its signal strength), the spacer blocks separating
// busses, and the airspace that must stay clear above ascending/
// descending runs. It is the Go name for the original engine's
// RedstoneBussing.
//
// A WirePath used as router search state is deliberately tiny — at most
// the current and previous element voxels, per the "History truncation"
// design (spec.md 4.3) — while the WirePath returned by Route is the full,
// non-truncated accumulation suitable for cost evaluation and assembly.
type WirePath struct {
	Elements  map[voxel.Pos]Strength
	Repeaters map[voxel.Pos]voxel.Direction
	Spacers   map[voxel.Pos]struct{}
	Airspace  map[voxel.Pos]struct{}
}

// NewWirePath returns an empty WirePath with its maps initialized.
func NewWirePath() WirePath {
	return WirePath{
		Elements:  map[voxel.Pos]Strength{},
		Repeaters: map[voxel.Pos]voxel.Direction{},
		Spacers:   map[voxel.Pos]struct{}{},
		Airspace:  map[voxel.Pos]struct{}{},
	}
}

// singletonWirePath is a WirePath containing a single starting element,
// used as the initial current_bussing of a route.
func singletonWirePath(pos voxel.Pos, strength Strength) WirePath {
	w := NewWirePath()
	w.Elements[pos] = strength
	return w
}

// HasElement reports whether pos holds a wire or repeater element.
func (w WirePath) HasElement(pos voxel.Pos) bool {
	_, ok := w.Elements[pos]
	return ok
}

// IsRepeaterAt reports whether pos holds a repeater.
func (w WirePath) IsRepeaterAt(pos voxel.Pos) bool {
	_, ok := w.Repeaters[pos]
	return ok
}

// IsWireAt reports whether pos holds a (non-repeater) wire element.
func (w WirePath) IsWireAt(pos voxel.Pos) bool {
	return w.HasElement(pos) && !w.IsRepeaterAt(pos)
}

// HasFoundationAt reports whether pos is directly beneath an element —
// i.e. pos is a foundation voxel.
func (w WirePath) HasFoundationAt(pos voxel.Pos) bool {
	return w.HasElement(pos.Add(voxel.Up.Unit()))
}

// HasSpacer reports whether pos is a spacer voxel.
func (w WirePath) HasSpacer(pos voxel.Pos) bool {
	_, ok := w.Spacers[pos]
	return ok
}

// HasAirspace reports whether pos is an airspace voxel.
func (w WirePath) HasAirspace(pos voxel.Pos) bool {
	_, ok := w.Airspace[pos]
	return ok
}

// ElementBlocks returns every wire/repeater element voxel.
func (w WirePath) ElementBlocks() map[voxel.Pos]struct{} {
	out := make(map[voxel.Pos]struct{}, len(w.Elements))
	for pos := range w.Elements {
		out[pos] = struct{}{}
	}
	return out
}

// FoundationBlocks returns the voxel directly beneath every element.
func (w WirePath) FoundationBlocks() map[voxel.Pos]struct{} {
	out := make(map[voxel.Pos]struct{}, len(w.Elements))
	for pos := range w.Elements {
		out[pos.Add(voxel.Down.Unit())] = struct{}{}
	}
	return out
}

// ElementFoundationBlocks is ElementBlocks union FoundationBlocks.
func (w WirePath) ElementFoundationBlocks() map[voxel.Pos]struct{} {
	out := w.ElementBlocks()
	for pos := range w.FoundationBlocks() {
		out[pos] = struct{}{}
	}
	return out
}

// RepeaterBlocks returns every repeater voxel.
func (w WirePath) RepeaterBlocks() map[voxel.Pos]struct{} {
	out := make(map[voxel.Pos]struct{}, len(w.Repeaters))
	for pos := range w.Repeaters {
		out[pos] = struct{}{}
	}
	return out
}

// WireBlocks is ElementBlocks minus RepeaterBlocks: the plain-wire voxels.
func (w WirePath) WireBlocks() map[voxel.Pos]struct{} {
	out := make(map[voxel.Pos]struct{}, len(w.Elements))
	for pos := range w.Elements {
		if !w.IsRepeaterAt(pos) {
			out[pos] = struct{}{}
		}
	}
	return out
}

// SoftPowerSensitiveBlocks returns each repeater's input voxel (the block
// it reads its signal from), which other busses must not themselves
// soft-power.
func (w WirePath) SoftPowerSensitiveBlocks() map[voxel.Pos]struct{} {
	out := make(map[voxel.Pos]struct{}, len(w.Repeaters))
	for pos, facing := range w.Repeaters {
		out[pos.Sub(facing.Unit())] = struct{}{}
	}
	return out
}

// HardPowerSensitiveBlocks is SoftPowerSensitiveBlocks union every wire
// block and its six neighbors — any voxel a hard-powered (repeater
// output) block from another bus must not touch.
func (w WirePath) HardPowerSensitiveBlocks() map[voxel.Pos]struct{} {
	out := w.SoftPowerSensitiveBlocks()
	wireBlocks := w.WireBlocks()
	for pos := range wireBlocks {
		out[pos] = struct{}{}
		for _, d := range voxel.AllDirections {
			out[pos.Add(d.Unit())] = struct{}{}
		}
	}
	return out
}

// HardPoweredBlocks returns each repeater's output voxel.
func (w WirePath) HardPoweredBlocks() map[voxel.Pos]struct{} {
	out := make(map[voxel.Pos]struct{}, len(w.Repeaters))
	for pos, facing := range w.Repeaters {
		out[pos.Add(facing.Unit())] = struct{}{}
	}
	return out
}

// SoftPoweredBlocks is HardPoweredBlocks union every foundation voxel
// union every horizontal neighbor a wire block could plausibly power
// (WirePossibleDirections).
func (w WirePath) SoftPoweredBlocks() map[voxel.Pos]struct{} {
	out := w.HardPoweredBlocks()
	for pos := range w.FoundationBlocks() {
		out[pos] = struct{}{}
	}
	wireBlocks := w.WireBlocks()
	for pos := range wireBlocks {
		for _, d := range w.WirePossibleDirections(pos, wireBlocks) {
			out[pos.Add(d.Unit())] = struct{}{}
		}
	}
	return out
}

// WirePossibleDirections estimates which horizontal directions a wire at
// pos actually points/signals in, based on adjacent wires: if no
// neighboring wire is found in any of the three vertical offsets for a
// direction, the wire is assumed omnidirectional; if exactly one
// direction has a neighbor, the wire points that way and its opposite;
// otherwise every direction with a neighbor is included.
func (w WirePath) WirePossibleDirections(pos voxel.Pos, wireBlocks map[voxel.Pos]struct{}) []voxel.Direction {
	var withNeighbor []voxel.Direction
	for _, d := range voxel.XZDirections {
		base := pos.Add(d.Unit())
		found := false
		for _, vert := range []voxel.Pos{voxel.Down.Unit(), voxel.Zero, voxel.Up.Unit()} {
			if _, ok := wireBlocks[base.Add(vert)]; ok {
				found = true
				break
			}
		}
		if found {
			withNeighbor = append(withNeighbor, d)
		}
	}
	switch len(withNeighbor) {
	case 0:
		return append([]voxel.Direction(nil), voxel.XZDirections...)
	case 1:
		return []voxel.Direction{withNeighbor[0], withNeighbor[0].Opposite()}
	default:
		return withNeighbor
	}
}

// PlacedVoxels returns every voxel this WirePath occupies with a solid
// block: elements, their foundation, and spacers. Airspace is
// deliberately excluded — it must stay clear for signal propagation, per
// spec.md 4.6.
func (w WirePath) PlacedVoxels() []voxel.Pos {
	seen := w.ElementFoundationBlocks()
	for pos := range w.Spacers {
		seen[pos] = struct{}{}
	}
	out := make([]voxel.Pos, 0, len(seen))
	for pos := range seen {
		out = append(out, pos)
	}
	return out
}

// Merge returns the union of w and other, matching the original engine's
// RedstoneBussing.__or__. It is valid only when w and other occupy
// disjoint regions or when one was built by routing against the other.
func (w WirePath) Merge(other WirePath) WirePath {
	out := NewWirePath()
	for pos, s := range w.Elements {
		out.Elements[pos] = s
	}
	for pos, s := range other.Elements {
		out.Elements[pos] = s
	}
	for pos, d := range w.Repeaters {
		out.Repeaters[pos] = d
	}
	for pos, d := range other.Repeaters {
		out.Repeaters[pos] = d
	}
	for pos := range w.Spacers {
		out.Spacers[pos] = struct{}{}
	}
	for pos := range other.Spacers {
		out.Spacers[pos] = struct{}{}
	}
	for pos := range w.Airspace {
		out.Airspace[pos] = struct{}{}
	}
	for pos := range other.Airspace {
		out.Airspace[pos] = struct{}{}
	}
	return out
}

// withTruncatedHistory returns a WirePath retaining only the entries
// relevant to currentPos/previousPos — the search-time history
// truncation of spec.md 4.3. Element entries are kept at either position;
// repeater/spacer/airspace entries are kept only at currentPos.
func (w WirePath) withTruncatedHistory(currentPos, previousPos voxel.Pos) WirePath {
	out := NewWirePath()
	for pos, s := range w.Elements {
		if pos == currentPos || pos == previousPos {
			out.Elements[pos] = s
		}
	}
	for pos, d := range w.Repeaters {
		if pos == currentPos {
			out.Repeaters[pos] = d
		}
	}
	for pos := range w.Spacers {
		if pos == currentPos {
			out.Spacers[pos] = struct{}{}
		}
	}
	for pos := range w.Airspace {
		if pos == currentPos {
			out.Airspace[pos] = struct{}{}
		}
	}
	return out
}
