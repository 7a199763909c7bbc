package placement

import (
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/voxel"
)

// Placed is one instance's position and XZ quarter-turn orientation.
type Placed struct {
	Pos       voxel.Pos
	Direction voxel.Direction
}

// Placement maps each instance id to its Placed position/orientation.
// Placement is created by the placer (initial random), mutated in place per
// search step, and frozen on best-so-far; nothing in this package mutates a
// Placement value in place (Go map values are already copy-on-write at the
// call site by convention here — mutation helpers return a new Placement).
type Placement map[netlist.InstanceId]Placed

// Clone returns a shallow copy safe to mutate independently of p.
func (p Placement) Clone() Placement {
	out := make(Placement, len(p))
	for id, placed := range p {
		out[id] = placed
	}
	return out
}

// quarterTurns returns the number of quarter turns from voxel.North that d
// represents, i.e. the rotation applied to an instance's local-frame
// geometry when placed facing d.
func quarterTurns(d voxel.Direction) int {
	for i, candidate := range voxel.XZDirections {
		if candidate == d {
			return i
		}
	}
	return 0
}

// wireOffset is the local-frame displacement from a port's raw template pin
// position to the voxel a wire actually attaches to: one block in the
// port's facing direction (clearing the instance's footprint skin) plus one
// block up (the redstone-wire-sits-above-its-foundation convention used
// throughout the engine). The same offset is used for both "in" and "out"
// ports: a pin's Facing is defined as the outward normal of the footprint
// face it sits on, regardless of signal direction.
func wireOffset(facing voxel.Direction) voxel.Pos {
	return facing.Unit().Add(voxel.Up.Unit())
}
