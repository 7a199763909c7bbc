package bussing

import (
	"errors"
	"fmt"

	"github.com/andrewsmike/redhdl/pathsearch"
	"github.com/andrewsmike/redhdl/voxel"
)

// Default cost/search constants, carried over verbatim from
// RedstonePathFindingProblem's field defaults in the original engine.
const (
	DefaultEarlyRepeaterCost = 12
	DefaultMomentumBreakCost = 3
	DefaultMaxSteps          = 20000
)

// RedstoneStep places exactly one element (wire or repeater) at NextPos.
// Facing is meaningful only when IsRepeater is true.
type RedstoneStep struct {
	NextPos    voxel.Pos
	IsRepeater bool
	Facing     voxel.Direction
}

// partialBus is the router's search state: the Go name for the original
// engine's PartialBus, truncated per spec.md 4.3's "History truncation"
// paragraph down to a small comparable value — current/previous element
// voxel and signal, whether current is a repeater and which way it
// faces, and XZ/Y momentum. Valid is false for the dead-end sentinel
// state a failed step transitions into (the Go stand-in for the
// original's `PartialBus | None`).
type partialBus struct {
	Current     voxel.Pos
	Previous    voxel.Pos
	HasPrevious bool

	CurrentSignal     Strength
	CurrentIsRepeater bool
	CurrentFacing     voxel.Direction
	PreviousSignal    Strength

	XZMomentum xzMomentum
	YMomentum  yMomentum

	Valid bool
}

// truncatedSelfWirePath reconstructs the minimal WirePath add_step needs
// to see, from a partialBus's flat fields.
func truncatedSelfWirePath(s partialBus) WirePath {
	w := NewWirePath()
	w.Elements[s.Current] = s.CurrentSignal
	if s.HasPrevious {
		w.Elements[s.Previous] = s.PreviousSignal
	}
	if s.CurrentIsRepeater {
		w.Repeaters[s.Current] = s.CurrentFacing
	}
	return w
}

// otherIndex precomputes the derived voxel sets of a fixed WirePath once,
// so every addStep call during a route's search makes O(1) membership
// checks instead of rebuilding hard/soft-powered sets per step.
type otherIndex struct {
	path               WirePath
	hardPowered        map[voxel.Pos]struct{}
	softPowered        map[voxel.Pos]struct{}
	hardPowerSensitive map[voxel.Pos]struct{}
	softPowerSensitive map[voxel.Pos]struct{}
}

func buildOtherIndex(w WirePath) otherIndex {
	return otherIndex{
		path:               w,
		hardPowered:        w.HardPoweredBlocks(),
		softPowered:        w.SoftPoweredBlocks(),
		hardPowerSensitive: w.HardPowerSensitiveBlocks(),
		softPowerSensitive: w.SoftPowerSensitiveBlocks(),
	}
}

// Options configures a single Route or MinCost call.
type Options struct {
	// MaxSteps bounds the A* search's state expansions. Zero means
	// DefaultMaxSteps.
	MaxSteps int

	// EarlyRepeaterCost penalizes placing a repeater before the signal
	// actually needs one (current strength is still above 1). Zero means
	// DefaultEarlyRepeaterCost.
	EarlyRepeaterCost float64

	// MomentumBreakCost penalizes a direction/elevation change that
	// breaks the established momentum. Zero means DefaultMomentumBreakCost.
	MomentumBreakCost float64
}

func (o Options) withDefaults() Options {
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.EarlyRepeaterCost <= 0 {
		o.EarlyRepeaterCost = DefaultEarlyRepeaterCost
	}
	if o.MomentumBreakCost <= 0 {
		o.MomentumBreakCost = DefaultMomentumBreakCost
	}
	return o
}

// routeProblem implements pathsearch.Problem[partialBus, RedstoneStep].
type routeProblem struct {
	start, end voxel.Pos
	startXZ    xzMomentum
	endXZ      xzMomentum

	obstacles voxel.Region
	otherIdx  otherIndex

	earlyRepeaterCost float64
	momentumBreakCost float64
}

func hintMomentum(dir *voxel.Direction) xzMomentum {
	if dir == nil {
		return xzMomentum{}
	}
	return xzMomentum{dir: *dir, known: true}
}

func newRouteProblem(
	start, end voxel.Pos,
	startFacing, endFacing *voxel.Direction,
	obstacles voxel.Region,
	otherWires WirePath,
	opts Options,
) *routeProblem {
	opts = opts.withDefaults()
	return &routeProblem{
		start:             start,
		end:               end,
		startXZ:           hintMomentum(startFacing),
		endXZ:             hintMomentum(endFacing),
		obstacles:         obstacles,
		otherIdx:          buildOtherIndex(otherWires),
		earlyRepeaterCost: opts.EarlyRepeaterCost,
		momentumBreakCost: opts.MomentumBreakCost,
	}
}

func (p *routeProblem) InitialState() partialBus {
	return partialBus{
		Current:       p.start,
		CurrentSignal: 15,
		XZMomentum:    p.startXZ,
		YMomentum:     yMomentumUnknown,
		Valid:         true,
	}
}

// candidateSteps enumerates every geometrically plausible next element,
// the Go equivalent of RedstonePathStep.next_steps. Wire steps are
// always enumerated in all four XZ directions: the original's
// facing-restricted branch is guarded by a condition (`is_repeater is
// not None`) that is always true for a bool field, so it never actually
// narrows the direction set — behavior this port reproduces rather than
// "fixes", since the search's constraint checks are what actually gate
// validity.
func candidateSteps(current voxel.Pos, isRepeaterAtCurrent, transparentFoundation bool) []RedstoneStep {
	foundationSoftPowered := !(isRepeaterAtCurrent || transparentFoundation)

	var out []RedstoneStep
	for _, xz := range voxel.XZDirections {
		for _, stepDown := range [...]bool{true, false} {
			if !(foundationSoftPowered || !stepDown) {
				continue
			}
			next := current.Add(xz.Unit())
			if stepDown {
				next = next.Add(voxel.Down.Unit())
			}
			out = append(out, RedstoneStep{NextPos: next, IsRepeater: true, Facing: xz})
		}
	}
	for _, xz := range voxel.XZDirections {
		for _, elev := range [...]int{-1, 0, 1} {
			if transparentFoundation && elev == -1 {
				continue
			}
			next := current.Add(xz.Unit()).Add(voxel.Pos{Y: elev})
			out = append(out, RedstoneStep{NextPos: next})
		}
	}
	return out
}

func (p *routeProblem) StateActions(s partialBus) []RedstoneStep {
	if !s.Valid {
		return nil
	}
	transparent := p.otherIdx.path.HasAirspace(s.Current.Add(voxel.Down.Unit()))
	return candidateSteps(s.Current, s.CurrentIsRepeater, transparent)
}

func (p *routeProblem) StateActionResult(s partialBus, a RedstoneStep) partialBus {
	if !s.Valid {
		return partialBus{}
	}
	self := truncatedSelfWirePath(s)
	full, ok := addStep(self, p.otherIdx, p.obstacles, s.Current, p.end, a)
	if !ok {
		return partialBus{}
	}
	truncated := full.withTruncatedHistory(a.NextPos, s.Current)

	xz, y, _ := nextMomentum(s, a)
	next := partialBus{
		Current:        a.NextPos,
		Previous:       s.Current,
		HasPrevious:    true,
		CurrentSignal:  truncated.Elements[a.NextPos],
		PreviousSignal: s.CurrentSignal,
		XZMomentum:     xz,
		YMomentum:      y,
		Valid:          true,
	}
	if truncated.IsRepeaterAt(a.NextPos) {
		next.CurrentIsRepeater = true
		next.CurrentFacing = truncated.Repeaters[a.NextPos]
	}
	return next
}

func (p *routeProblem) StateActionCost(s partialBus, a RedstoneStep) float64 {
	if !s.Valid {
		return 0
	}
	cost := 1.0
	if a.IsRepeater && (s.CurrentSignal.IsRepeater() || s.CurrentSignal > 1) {
		cost += p.earlyRepeaterCost
	}

	xz, _, broken := nextMomentum(s, a)
	endMismatch := a.NextPos == p.end && p.endXZ.known && p.endXZ.dir != xz.dir
	if broken || endMismatch {
		cost += p.momentumBreakCost
	}
	return cost
}

func (p *routeProblem) IsGoalState(s partialBus) bool {
	return s.Valid && s.Current == p.end && !s.CurrentIsRepeater
}

func (p *routeProblem) MinCost(s partialBus) float64 {
	if !s.Valid {
		return 100_000
	}
	distance := p.end.Sub(s.Current)

	yDistance := absInt(distance.Y) + absInt(distance.Y)/16
	xzDistance := distance.XZ().L1()
	minSteps := max(xzDistance, yDistance)

	turnsXZ := minXZTurns(distance, s.XZMomentum, p.endXZ)
	turnsY := minYTurns(distance)
	momentumBreaks := max(turnsXZ, turnsY)

	return float64(minSteps) + float64(momentumBreaks)*p.momentumBreakCost
}

// addStep is the Go port of RedstoneBussing.add_step: given self (the
// partial WirePath accumulated so far — truncated during search, full
// during replay), the fixed other-bus index, the obstacle set, and the
// step being taken, it returns the extended WirePath or false if any
// COLLISION/CONNECTIVITY/INPUT-NOISE/OUTPUT-NOISE constraint rejects the
// step.
func addStep(self WirePath, other otherIndex, obstacles voxel.Region, prevPos, endPos voxel.Pos, a RedstoneStep) (WirePath, bool) {
	next := a.NextPos
	below := next.Add(voxel.Down.Unit())
	atEnd := next == endPos

	blocked := func(pos voxel.Pos) bool {
		if other.path.HasElement(pos) || other.path.HasFoundationAt(pos) {
			return true
		}
		if self.HasElement(pos) || self.HasFoundationAt(pos) {
			return true
		}
		if obstacles != nil && obstacles.Contains(pos) {
			return true
		}
		return false
	}
	// COLLISION-1
	if !atEnd && (blocked(next) || blocked(below)) {
		return WirePath{}, false
	}

	xzNeighbors := make([]voxel.Pos, 0, 4)
	for _, d := range voxel.XZDirections {
		xzNeighbors = append(xzNeighbors, next.Add(d.Unit()))
	}

	if !a.IsRepeater {
		// INPUT-NOISE-1
		anyAdjacentWires := false
		for _, n := range xzNeighbors {
			for _, dy := range [...]int{-1, 0, 1} {
				neighbor := n.Add(voxel.Pos{Y: dy})
				if !other.path.IsWireAt(neighbor) {
					continue
				}
				if dy == -1 && other.path.HasSpacer(neighbor.Add(voxel.Up.Unit())) {
					continue
				}
				if dy == 1 && other.path.HasSpacer(next.Add(voxel.Up.Unit())) {
					continue
				}
				anyAdjacentWires = true
			}
		}

		// INPUT-NOISE-2
		anyAdjacentHardPowered := false
		for _, d := range voxel.AllDirections {
			if _, ok := other.hardPowered[next.Add(d.Unit())]; ok {
				anyAdjacentHardPowered = true
				break
			}
		}

		// OUTPUT-NOISE-1
		_, belowSensitive := other.softPowerSensitive[below]
		anyAdjacentSoftSensitive := belowSensitive
		for _, n := range xzNeighbors {
			if _, ok := other.softPowerSensitive[n]; ok {
				anyAdjacentSoftSensitive = true
			}
		}

		if anyAdjacentWires || anyAdjacentHardPowered || anyAdjacentSoftSensitive {
			return WirePath{}, false
		}
	} else {
		// INPUT-NOISE-3
		inputPos := next.Add(a.Facing.Opposite().Unit())
		_, noisyInput := other.softPowered[inputPos]
		// OUTPUT-NOISE-2
		outputPos := next.Add(a.Facing.Unit())
		_, affectsOthers := other.hardPowerSensitive[outputPos]
		if noisyInput || affectsOthers {
			return WirePath{}, false
		}
	}

	// CONNECTIVITY-1
	var nextSignal Strength
	if a.IsRepeater {
		nextSignal = RepeaterStrength
	} else {
		prevSignal := self.Elements[prevPos]
		if prevSignal.IsRepeater() {
			nextSignal = 15
		} else {
			nextSignal = prevSignal - 1
		}
	}
	if nextSignal == 0 {
		return WirePath{}, false
	}

	prevWasRepeater := self.IsRepeaterAt(prevPos)

	newSpacer := map[voxel.Pos]struct{}{}
	// CONNECTIVITY-2
	if prevWasRepeater && next.Y < prevPos.Y {
		newSpacer[next.Add(voxel.Up.Unit())] = struct{}{}
	}
	if !a.IsRepeater {
		for _, n := range xzNeighbors {
			if other.path.IsWireAt(n.Add(voxel.Up.Unit())) {
				newSpacer[next.Add(voxel.Up.Unit())] = struct{}{}
				break
			}
		}
		for _, n := range xzNeighbors {
			if other.path.IsWireAt(n.Add(voxel.Down.Unit())) {
				newSpacer[n] = struct{}{}
			}
		}
	}

	// CONNECTIVITY-3
	newAirspace := map[voxel.Pos]struct{}{}
	if next.Y < prevPos.Y {
		newAirspace[next.Add(voxel.Up.Unit())] = struct{}{}
	}
	if next.Y > prevPos.Y {
		newAirspace[prevPos.Add(voxel.Up.Unit())] = struct{}{}
	}

	// COLLISION-2
	for pos := range newAirspace {
		if _, ok := newSpacer[pos]; ok {
			return WirePath{}, false
		}
	}
	// COLLISION-3
	for pos := range newAirspace {
		if other.path.HasAirspace(pos) {
			continue
		}
		if other.path.HasFoundationAt(pos) || other.path.HasSpacer(pos) {
			return WirePath{}, false
		}
	}

	out := NewWirePath()
	for pos, s := range self.Elements {
		out.Elements[pos] = s
	}
	out.Elements[next] = nextSignal
	for pos, d := range self.Repeaters {
		out.Repeaters[pos] = d
	}
	if a.IsRepeater {
		out.Repeaters[next] = a.Facing
	}
	for pos := range self.Spacers {
		out.Spacers[pos] = struct{}{}
	}
	for pos := range newSpacer {
		out.Spacers[pos] = struct{}{}
	}
	for pos := range self.Airspace {
		out.Airspace[pos] = struct{}{}
	}
	for pos := range newAirspace {
		out.Airspace[pos] = struct{}{}
	}

	return out, true
}

// expectedSteps returns the displacement vectors that continue the given
// momentum without breaking it, the Go port of
// momentum_expected_step_poses.
func expectedSteps(mom xzMomentum, ymom yMomentum, isRepeater bool) map[voxel.Pos]bool {
	out := map[voxel.Pos]bool{}

	if mom.known {
		xz := mom.dir
		switch ymom {
		case yMomentumUnknown:
			out[xz.Unit().Add(voxel.Up.Unit())] = true
			out[xz.Unit()] = true
			out[xz.Unit().Add(voxel.Down.Unit())] = true
		case yMomentumAnyUp:
			out[xz.Opposite().Unit().Add(voxel.Up.Unit())] = true
			out[xz.Unit().Add(voxel.Up.Unit())] = true
			if isRepeater {
				out[xz.Unit()] = true
			}
		case yMomentumStraightUp:
			out[xz.Opposite().Unit().Add(voxel.Up.Unit())] = true
			if isRepeater {
				out[xz.Unit()] = true
			}
		case yMomentumSlantUp:
			out[xz.Unit().Add(voxel.Up.Unit())] = true
			if isRepeater {
				out[xz.Unit()] = true
			}
		case yMomentumFlat:
			out[xz.Unit()] = true
		case yMomentumSlantDown:
			out[xz.Unit().Add(voxel.Down.Unit())] = true
		}
		return out
	}

	if ymom != yMomentumUnknown {
		var yOffset voxel.Pos
		switch ymom {
		case yMomentumAnyUp, yMomentumStraightUp, yMomentumSlantUp:
			yOffset = voxel.Up.Unit()
		case yMomentumFlat:
			yOffset = voxel.Zero
		case yMomentumSlantDown:
			yOffset = voxel.Down.Unit()
		}
		for _, d := range voxel.XZDirections {
			out[yOffset.Add(d.Unit())] = true
			if isRepeater {
				out[d.Unit()] = true
			}
		}
		return out
	}

	for _, d := range voxel.XZDirections {
		for _, yOff := range [...]voxel.Pos{voxel.Down.Unit(), voxel.Zero, voxel.Up.Unit()} {
			out[yOff.Add(d.Unit())] = true
		}
	}
	return out
}

// nextMomentum computes the momentum carried into the state after taking
// a from s, and whether doing so broke the previous momentum. Ported
// from _next_momentum_xy_z_and_momentum_broken.
func nextMomentum(s partialBus, a RedstoneStep) (xzMomentum, yMomentum, bool) {
	delta := a.NextPos.Sub(s.Current)
	xzDir, _ := voxel.DirectionFromUnit(delta.XZ())

	var stepYDir yMomentum
	switch delta.Y {
	case 1:
		stepYDir = yMomentumAnyUp
	case -1:
		stepYDir = yMomentumSlantDown
	default:
		stepYDir = yMomentumFlat
	}

	broken := !expectedSteps(s.XZMomentum, s.YMomentum, a.IsRepeater)[delta]

	newXZ := xzMomentum{dir: xzDir, known: true}

	var newY yMomentum
	if broken {
		newY = stepYDir
	} else if stepYDir == yMomentumAnyUp {
		switch {
		case s.YMomentum != yMomentumUnknown && s.YMomentum != yMomentumAnyUp:
			newY = s.YMomentum
		case !s.XZMomentum.known:
			newY = yMomentumAnyUp
		case s.XZMomentum.dir == xzDir:
			newY = yMomentumSlantUp
		default:
			newY = yMomentumStraightUp
		}
	} else if a.IsRepeater {
		newY = s.YMomentum
	} else {
		newY = stepYDir
	}

	return newXZ, newY, broken
}

func directionAxisIsPos(d voxel.Direction) (axis byte, isPos bool) {
	u := d.Unit()
	if u.X != 0 {
		return 'x', u.X > 0
	}
	return 'z', u.Z > 0
}

func directionByAxisIsPos(axis byte, isPos bool) voxel.Direction {
	if axis == 'x' {
		if isPos {
			return voxel.East
		}
		return voxel.West
	}
	if isPos {
		return voxel.South
	}
	return voxel.North
}

// minXZTurns computes the minimum number of momentum breaks required on
// the horizontal plane to connect start and end momentum across
// distance, a closed-form lower bound ported from _min_xz_turns.
func minXZTurns(distance voxel.Pos, start, end xzMomentum) int {
	if distance.XZ() == voxel.Zero {
		return 0
	}

	if distance.X == 0 || distance.Z == 0 {
		axis := byte('x')
		isPos := distance.X > 0
		if distance.X == 0 {
			axis = 'z'
			isPos = distance.Z > 0
		}
		required := directionByAxisIsPos(axis, isPos)

		turns := 0
		if start.known && start.dir != required {
			turns++
		}
		if end.known && end.dir != required {
			turns++
		}
		return turns
	}

	if start.known && end.known && start.dir == end.dir {
		return 2
	}

	axisComponent := func(axis byte) int {
		if axis == 'x' {
			return distance.X
		}
		return distance.Z
	}

	turns := 1
	if start.known {
		axis, isPos := directionAxisIsPos(start.dir)
		if (axisComponent(axis) > 0) != isPos {
			turns++
		}
	}
	if end.known {
		axis, isPos := directionAxisIsPos(end.dir)
		if (axisComponent(axis) > 0) != isPos {
			turns++
		}
	}
	return turns
}

// minYTurns is a loose vertical-momentum lower bound: a descent deeper
// than the available horizontal run requires at least one turn. Ported
// from _min_y_turns, whose start-momentum parameter the original leaves
// unused (a documented TODO, not a bug this port needs to fix).
func minYTurns(distance voxel.Pos) int {
	horizontal := distance.XZ().Abs().L1()
	descent := -distance.Y
	if descent > horizontal {
		return 1
	}
	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Route searches for a WirePath connecting start to end, honoring
// optional start/end facing hints, an obstacle region (padded instance
// footprints), and an already-routed otherWires accumulation the new
// route must not collide with or electrically interfere with. The
// action sequence A* finds is replayed against a full, non-truncated
// WirePath to produce the result; a replay disagreement is ErrBussingLogic.
func Route(
	start, end voxel.Pos,
	startFacing, endFacing *voxel.Direction,
	obstacles voxel.Region,
	otherWires WirePath,
	opts Options,
) (WirePath, error) {
	problem := newRouteProblem(start, end, startFacing, endFacing, obstacles, otherWires, opts)

	result, err := pathsearch.Run[partialBus, RedstoneStep](problem, pathsearch.Options[partialBus, RedstoneStep]{
		MaxSteps: opts.withDefaults().MaxSteps,
	})
	if err != nil {
		switch {
		case errors.Is(err, pathsearch.ErrTimeout):
			return WirePath{}, fmt.Errorf("%w: %v", ErrBussingTimeout, err)
		case errors.Is(err, pathsearch.ErrNoSolution):
			return WirePath{}, fmt.Errorf("%w: %v", ErrBussingImpossible, err)
		default:
			return WirePath{}, err
		}
	}

	current := singletonWirePath(start, 15)
	prevPos := start
	for i, step := range result.Actions {
		next, ok := addStep(current, problem.otherIdx, obstacles, prevPos, end, step)
		if !ok {
			return WirePath{}, fmt.Errorf("%w: replay disagreed at step %d (%+v)", ErrBussingLogic, i, step)
		}
		current = next
		prevPos = step.NextPos
	}

	return current, nil
}

// MinCost returns the router's admissible heuristic evaluated at the
// initial state, with no search performed — a cheap lower bound on the
// true routing cost between start and end, used by the cost package's
// min-router-lower-bound heuristic.
func MinCost(start, end voxel.Pos, startFacing, endFacing *voxel.Direction) float64 {
	problem := newRouteProblem(start, end, startFacing, endFacing, nil, WirePath{}, Options{})
	return problem.MinCost(problem.InitialState())
}
