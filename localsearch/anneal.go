package localsearch

import (
	"math"
	"math/rand"
	"time"
)

// timeCheckInterval is how often (in rounds) the soft wall-clock budget is
// checked, matching the "checked every 256 rounds" throttle in
// SPEC_FULL.md 4.1.
const timeCheckInterval = 256

// Run executes opts.Rounds total rounds of simulated annealing over
// problem, split into opts.Restarts equal segments. At each segment
// boundary the candidate is problem.RandomSolution(); elsewhere it is
// problem.MutatedSolution(current). The candidate is accepted
// unconditionally if there is no current solution yet or its cost is
// lower; otherwise it is accepted with probability
// exp(-(cCand/cCurr) * (4*i/T)), where i is the zero-based round index.
// The best solution/cost seen across every segment is tracked and
// returned at the end; Run returns early with the candidate the instant
// problem.GoodEnough(candidate) holds.
func Run[Solution any](problem Problem[Solution], opts Options[Solution]) Solution {
	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	restarts := opts.Restarts
	if restarts < 1 {
		restarts = 1
	}
	rounds := opts.Rounds
	if rounds <= 0 {
		rounds = 1
	}
	segmentLen := rounds / restarts
	if segmentLen < 1 {
		segmentLen = 1
	}

	var (
		current     Solution
		currentCost float64
		haveCurrent bool
		best        Solution
		bestCost    = math.Inf(1)
		haveBest    bool
	)

	start := time.Now()

	for i := 0; i < rounds; i++ {
		if opts.TimeLimit > 0 && i > 0 && i%timeCheckInterval == 0 {
			if time.Since(start) > opts.TimeLimit {
				break
			}
		}

		var candidate Solution
		if segmentLen == 1 || i%segmentLen == 0 {
			candidate = problem.RandomSolution(rng)
		} else {
			candidate = problem.MutatedSolution(rng, current)
		}
		candidateCost := problem.SolutionCost(candidate)

		accept := !haveCurrent || candidateCost < currentCost
		if !accept && currentCost > 0 {
			exponent := -(candidateCost / currentCost) * (4 * float64(i) / float64(rounds))
			accept = rng.Float64() < math.Exp(exponent)
		}
		if accept {
			current = candidate
			currentCost = candidateCost
			haveCurrent = true
		}

		if !haveBest || candidateCost < bestCost {
			best = candidate
			bestCost = candidateCost
			haveBest = true
		}

		if opts.Checkpoint != nil {
			every := opts.CheckpointEvery
			if every <= 1 || i%every == 0 {
				opts.Checkpoint(i, candidate, candidateCost, best, bestCost)
			}
		}

		if problem.GoodEnough(candidate) {
			return candidate
		}
	}

	if haveBest {
		return best
	}
	return problem.RandomSolution(rng)
}
