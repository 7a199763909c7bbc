package placer

import (
	"fmt"
	"math/rand"

	"github.com/andrewsmike/redhdl/assembly"
	"github.com/andrewsmike/redhdl/cost"
	"github.com/andrewsmike/redhdl/localsearch"
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placement"
)

// Run searches for a placement of nl's instances that routes successfully,
// per spec.md 4.5: an outer simulated annealing pass over Placement, gated
// on router feasibility via GoodEnough, scored by cost.Unbussable before a
// placement routes and cost.Bussable after. It returns the best placement
// found (not necessarily a routable one — spec.md 4.1's SA "never errors;
// it returns its best seen"), its routes and assembled voxel set when that
// placement does route, and the best cost observed.
//
// Run seeds one *rand.Rand from opts.Seed and threads it through every
// random decision the run makes, so a given (nl, opts) pair reproduces the
// same Result on every call (spec.md 4.5/9's determinism contract).
func Run(nl *netlist.Netlist, opts Options) (Result, error) {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewSource(opts.Seed))

	if _, err := mustRandomPlacement(nl, rng); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNoRandomPlacement, err)
	}
	// mustRandomPlacement above only validates the netlist shape fits its
	// bounding volume at all; the rng has now advanced, which is fine —
	// the outer SA's own first RandomSolution call re-rolls independently
	// and is what actually seeds the search.

	cache := cost.NewCache(nl, opts.RouteOptions)
	problem := &outerProblem{nl: nl, cache: cache, opts: opts}

	logger := opts.Logger
	best := localsearch.Run[placement.Placement](problem, localsearch.Options[placement.Placement]{
		Rounds:          opts.Rounds,
		Restarts:        opts.Restarts,
		RNG:             rng,
		TimeLimit:       opts.TimeLimit,
		CheckpointEvery: opts.CheckpointEvery,
		Checkpoint: func(round int, candidate placement.Placement, candidateCost float64, bestSoFar placement.Placement, bestCost float64) {
			logger.Info().
				Int("round", round).
				Int("total_rounds", opts.Rounds).
				Float64("candidate_cost", candidateCost).
				Float64("best_cost", bestCost).
				Msg("placer round")
		},
	})

	bestCost := problem.SolutionCost(best)

	result := Result{Placement: best, BestCost: bestCost}

	routes, err := cache.Route(best)
	if err != nil {
		logger.Warn().Err(err).Float64("best_cost", bestCost).Msg("placer finished without a routable placement")
		return result, nil
	}
	result.Routes = routes

	voxels, err := assembly.Assemble(nl, best, routes)
	if err != nil {
		return Result{}, err
	}
	result.Voxels = voxels

	logger.Info().Float64("best_cost", bestCost).Int("instances", len(best)).Msg("placer finished")

	return result, nil
}
