package placer

import (
	"math"
	"math/rand"

	"github.com/andrewsmike/redhdl/cost"
	"github.com/andrewsmike/redhdl/localsearch"
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placement"
)

// maxRandomPlacementRetries bounds how many times mustRandomPlacement will
// re-roll placement.RandomPlacement (with a freshly advanced rng, so each
// retry is a genuinely different attempt) before giving up. A single
// placement.RandomPlacement call already retries each instance up to
// placement.MaxPlacementAttempts times; this outer retry only matters for
// the rare case where instance count and bounding volume combine
// unluckily across an entire pass.
const maxRandomPlacementRetries = 64

func mustRandomPlacement(nl *netlist.Netlist, rng *rand.Rand) (placement.Placement, error) {
	var lastErr error
	for i := 0; i < maxRandomPlacementRetries; i++ {
		p, err := placement.RandomPlacement(nl, rng)
		if err == nil {
			return p, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// prewarmProblem is the inner, unbussable-cost-only SA spec.md 4.5
// describes as a "fast pre-warm" pass run on every freshly produced random
// placement: it repeatedly mutates start, scoring purely on
// cost.Unbussable, with no router involvement at all.
type prewarmProblem struct {
	nl    *netlist.Netlist
	cache *cost.Cache
	start placement.Placement
}

func (pr prewarmProblem) RandomSolution(rng *rand.Rand) placement.Placement {
	return pr.start
}

func (pr prewarmProblem) MutatedSolution(rng *rand.Rand, s placement.Placement) placement.Placement {
	return placement.Mutate(s, rng)
}

func (pr prewarmProblem) SolutionCost(s placement.Placement) float64 {
	value, err := pr.cache.Unbussable(s)
	if err != nil {
		return math.Inf(1)
	}
	return value
}

// GoodEnough never short-circuits the pre-warm pass: it has no routing
// result to judge success by, so it always runs its full round budget.
func (pr prewarmProblem) GoodEnough(s placement.Placement) bool { return false }

// prewarm runs the inner unbussable-only SA for rounds rounds starting from
// start, using rng for every random choice (threaded from the outer SA, per
// spec.md 9's explicit-RNG design note).
func prewarm(nl *netlist.Netlist, cache *cost.Cache, start placement.Placement, rounds int, rng *rand.Rand) placement.Placement {
	if rounds <= 0 {
		return start
	}
	return localsearch.Run[placement.Placement](prewarmProblem{nl: nl, cache: cache, start: start}, localsearch.Options[placement.Placement]{
		Rounds:   rounds,
		Restarts: 1,
		RNG:      rng,
	})
}

// outerProblem is the placer's top-level SA problem: spec.md 4.5's
// RandomSolution/MutatedSolution/SolutionCost/GoodEnough, exactly as
// specified.
type outerProblem struct {
	nl    *netlist.Netlist
	cache *cost.Cache
	opts  Options

	sawFirstRandom bool
}

func (p *outerProblem) RandomSolution(rng *rand.Rand) placement.Placement {
	start, err := mustRandomPlacement(p.nl, rng)
	if err != nil {
		panic(err) // unreachable once Run's initial RandomPlacement has already succeeded
	}

	rounds := p.opts.PrewarmRounds
	if !p.sawFirstRandom {
		rounds = p.opts.FirstPrewarmRounds
		p.sawFirstRandom = true
	}
	return prewarm(p.nl, p.cache, start, rounds, rng)
}

// MutatedSolution applies spec.md 4.5's mutation operator twice when the
// current placement already routes successfully (the router-feasibility
// gate mentioned in spec.md 2's control-flow summary); otherwise it falls
// back to another unbussable-only pre-warm pass from the current
// placement, since a placement that cannot even be routed has no useful
// bussable-cost signal to mutate against yet.
func (p *outerProblem) MutatedSolution(rng *rand.Rand, s placement.Placement) placement.Placement {
	if _, err := p.cache.Route(s); err == nil {
		once := placement.Mutate(s, rng)
		return placement.Mutate(once, rng)
	}
	return prewarm(p.nl, p.cache, s, p.opts.PrewarmRounds, rng)
}

// SolutionCost implements spec.md 4.5's guarded cost: an invalid placement
// or one whose unbussable cost already exceeds UnbussableThreshold is
// scored unbussablePenalty + its unbussable cost without ever invoking the
// router; otherwise the router is tried and, on success, the bussable cost
// (which includes the router's own bus-length terms) is returned.
func (p *outerProblem) SolutionCost(s placement.Placement) float64 {
	valid, err := placement.Valid(p.nl, s, p.opts.XZPadding)
	unbussable, unbErr := p.cache.Unbussable(s)
	if unbErr != nil {
		unbussable = p.opts.UnbussableThreshold
	}

	if err != nil || !valid || unbussable > p.opts.UnbussableThreshold {
		return unbussablePenalty + unbussable
	}

	bussable, err := p.cache.Bussable(s)
	if err != nil {
		return unbussablePenalty + unbussable
	}
	return bussable
}

// GoodEnough is wired to router success only, never to a cost threshold,
// per spec.md 9's explicit resolution of that Open Question.
func (p *outerProblem) GoodEnough(s placement.Placement) bool {
	_, err := p.cache.Route(s)
	return err == nil
}

var _ localsearch.Problem[placement.Placement] = (*outerProblem)(nil)
