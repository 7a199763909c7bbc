package assembly

import (
	"github.com/andrewsmike/redhdl/bussing"
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/voxel"
)

// BlockKind distinguishes the provenance of a voxel in an assembled
// VoxelSet: a placed instance's footprint, or one of the four wire voxel
// kinds a WirePath can contribute (spec.md 4.6).
type BlockKind int

const (
	// BlockInstance is a voxel inside a placed instance's footprint.
	BlockInstance BlockKind = iota
	// BlockWireElement is a wire voxel carrying a decaying Strength.
	BlockWireElement
	// BlockRepeater is a repeater element, reset to 15 downstream.
	BlockRepeater
	// BlockFoundation is the solid block beneath a wire or repeater.
	BlockFoundation
	// BlockSpacer is a solid block inserted to isolate neighboring
	// wires or bridge a descending repeater.
	BlockSpacer
)

// String names a BlockKind the way a driver layer's logging would want it.
func (k BlockKind) String() string {
	switch k {
	case BlockInstance:
		return "instance"
	case BlockWireElement:
		return "wire"
	case BlockRepeater:
		return "repeater"
	case BlockFoundation:
		return "foundation"
	case BlockSpacer:
		return "spacer"
	default:
		return "unknown"
	}
}

// Block is one voxel's assembled content: its kind, plus the metadata that
// kind carries (the placing instance id for BlockInstance, the signal
// strength for BlockWireElement/BlockRepeater).
type Block struct {
	Kind     BlockKind
	Instance netlist.InstanceId
	Strength bussing.Strength
}

// VoxelSet is the engine's final output: every occupied position mapped to
// its Block. This is the "voxel set (positions -> block identifier)" of
// spec.md 6.
type VoxelSet map[voxel.Pos]Block
