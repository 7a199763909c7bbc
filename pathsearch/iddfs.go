package pathsearch

import "math"

// RunIDDFS performs iterative-deepening DFS over problem: repeated
// depth-first search from the root with a cost cap that starts at 1 and,
// if a pass exhausts without finding a goal, is raised to the minimum
// over-cap min_cost value observed during that pass (spec.md 4.2). Per-
// state pruning remembers the best cumulative cost seen at each state
// within one pass (the table starts empty on every pass) and prunes
// re-entries that are not a strict improvement.
//
// Same failure kinds as Run: ErrTimeout when opts.MaxSteps expansions are
// spent, ErrNoSolution when no cap ever admits a goal (which in a finite
// problem means the cap would have to rise forever; RunIDDFS detects this
// when a pass makes no progress and the over-cap minimum is unchanged).
func RunIDDFS[State comparable, Action any](problem Problem[State, Action], opts Options[State, Action]) (Result[Action], error) {
	cap_ := 1.0
	expansions := 0

	for {
		bestCost := make(map[State]float64)
		search := &iddfsSearch[State, Action]{
			problem:    problem,
			opts:       opts,
			cap:        cap_,
			bestCost:   bestCost,
			expansions: &expansions,
		}

		result, overCapMin, found, err := search.run()
		if err != nil {
			return Result[Action]{}, err
		}
		if found {
			return result, nil
		}
		if math.IsInf(overCapMin, 1) {
			return Result[Action]{}, ErrNoSolution
		}
		if overCapMin <= cap_ {
			// No progress possible; avoid looping forever on a cap that
			// cannot rise.
			return Result[Action]{}, ErrNoSolution
		}
		cap_ = overCapMin
	}
}

type iddfsSearch[State comparable, Action any] struct {
	problem    Problem[State, Action]
	opts       Options[State, Action]
	cap        float64
	bestCost   map[State]float64
	expansions *int
}

// run executes one bounded DFS pass. It returns the goal result if found,
// otherwise the smallest priority (cumCost+heuristic) seen that exceeded
// the cap, so the caller can raise the cap for the next pass.
func (s *iddfsSearch[State, Action]) run() (Result[Action], float64, bool, error) {
	overCapMin := math.Inf(1)
	start := s.problem.InitialState()

	var dfs func(state State, cumCost float64, actions []Action) (Result[Action], bool, error)
	dfs = func(state State, cumCost float64, actions []Action) (Result[Action], bool, error) {
		if s.opts.MaxSteps > 0 && *s.expansions >= s.opts.MaxSteps {
			return Result[Action]{}, false, ErrTimeout
		}

		priority := cumCost + s.problem.MinCost(state)
		if priority > s.cap {
			if priority < overCapMin {
				overCapMin = priority
			}
			return Result[Action]{}, false, nil
		}

		if prev, ok := s.bestCost[state]; ok && cumCost >= prev {
			return Result[Action]{}, false, nil
		}
		s.bestCost[state] = cumCost
		*s.expansions++

		if s.problem.IsGoalState(state) {
			return Result[Action]{Actions: actions, TotalCost: cumCost}, true, nil
		}

		for _, action := range s.problem.StateActions(state) {
			next := s.problem.StateActionResult(state, action)
			stepCost := s.problem.StateActionCost(state, action)
			nextActions := make([]Action, len(actions)+1)
			copy(nextActions, actions)
			nextActions[len(actions)] = action

			result, found, err := dfs(next, cumCost+stepCost, nextActions)
			if err != nil {
				return Result[Action]{}, false, err
			}
			if found {
				return result, true, nil
			}
		}
		return Result[Action]{}, false, nil
	}

	result, found, err := dfs(start, 0, nil)
	if err != nil {
		return Result[Action]{}, 0, false, err
	}
	return result, overCapMin, found, nil
}
