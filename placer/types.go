package placer

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/andrewsmike/redhdl/assembly"
	"github.com/andrewsmike/redhdl/bussing"
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placement"
)

// DefaultRounds, DefaultRestarts, DefaultPrewarmRounds, and
// DefaultFirstPrewarmRounds are the "~256 typical, 2^12 on first random"
// tuning constants spec.md 4.5 names without pinning exact values.
const (
	DefaultRounds             = 4096
	DefaultRestarts           = 8
	DefaultPrewarmRounds      = 256
	DefaultFirstPrewarmRounds = 1 << 12

	// DefaultXZPadding is the padding Valid enforces between instance
	// footprints, spec.md 3's "instance overlap (with XZ padding >= 1)
	// makes a placement invalid" floor.
	DefaultXZPadding = 1

	// DefaultUnbussableThreshold bounds how bad an unbussable placement
	// may be before SolutionCost gives up on routing it at all and skips
	// straight to the 100000-penalty branch, sparing a doomed route
	// attempt. Chosen generously relative to the Unbussable weight table's
	// largest single-heuristic contribution (collisions: 10000) so only
	// grossly invalid placements are skipped.
	DefaultUnbussableThreshold = 20000

	// DefaultCheckpointEvery throttles progress logging to every N outer
	// rounds.
	DefaultCheckpointEvery = 64

	// unbussablePenalty is the "100000 +" floor spec.md 4.5's
	// SolutionCost adds whenever routing was skipped or failed.
	unbussablePenalty = 100000.0
)

// Options configures a single placer.Run invocation.
type Options struct {
	// Seed feeds the single *rand.Rand threaded through the outer SA, the
	// inner pre-warm SA, and the mutation operator (spec.md 4.5/9).
	Seed int64

	// Rounds is the outer SA's total round count T. Zero means
	// DefaultRounds.
	Rounds int
	// Restarts is the outer SA's segment count R. Zero means
	// DefaultRestarts.
	Restarts int

	// PrewarmRounds is the inner unbussable-only SA's round count, run
	// every time a fresh random placement is produced after the first.
	// Zero means DefaultPrewarmRounds.
	PrewarmRounds int
	// FirstPrewarmRounds is the inner SA's round count the very first
	// time RandomSolution is called in a Run. Zero means
	// DefaultFirstPrewarmRounds.
	FirstPrewarmRounds int

	// XZPadding is the padding placement.Valid enforces. Zero means
	// DefaultXZPadding.
	XZPadding int
	// UnbussableThreshold bounds how bad an unbussable cost may be before
	// SolutionCost skips routing. Zero means DefaultUnbussableThreshold.
	UnbussableThreshold float64

	// RouteOptions configures every bussing.Route/cost.RouteAll call this
	// run makes.
	RouteOptions bussing.Options

	// TimeLimit is an additive soft wall-clock budget for the outer SA,
	// passed straight through to localsearch.Options.TimeLimit.
	TimeLimit time.Duration

	// CheckpointEvery throttles progress logging to every N outer rounds.
	// Zero means DefaultCheckpointEvery.
	CheckpointEvery int

	// Logger receives one structured event per logged round plus a
	// summary event at the end of Run. Defaults to zerolog.Nop() (no
	// output), matching spec.md 5's "progress reporting is a pure
	// side-effect ... not part of the algorithmic contract".
	Logger zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Rounds <= 0 {
		o.Rounds = DefaultRounds
	}
	if o.Restarts <= 0 {
		o.Restarts = DefaultRestarts
	}
	if o.PrewarmRounds <= 0 {
		o.PrewarmRounds = DefaultPrewarmRounds
	}
	if o.FirstPrewarmRounds <= 0 {
		o.FirstPrewarmRounds = DefaultFirstPrewarmRounds
	}
	if o.XZPadding <= 0 {
		o.XZPadding = DefaultXZPadding
	}
	if o.UnbussableThreshold <= 0 {
		o.UnbussableThreshold = DefaultUnbussableThreshold
	}
	if o.CheckpointEvery <= 0 {
		o.CheckpointEvery = DefaultCheckpointEvery
	}
	return o
}

// Result is the outcome of a Run: the best placement found, its routes (nil
// if the best placement never routed successfully), the assembled voxel
// set (nil under the same condition), and the best cost observed.
type Result struct {
	Placement placement.Placement
	Routes    map[netlist.PinId]*bussing.WirePath
	Voxels    assembly.VoxelSet
	BestCost  float64
}
