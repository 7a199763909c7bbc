package pathsearch

// Problem is the generic search problem a caller implements: State must be
// a comparable Go value (it keys the searches' per-state maps) and Action
// may be any type (the router package, for instance, uses small value
// structs for both). Exactly the operations named in spec.md 4.2.
type Problem[State comparable, Action any] interface {
	// InitialState returns the search's root state.
	InitialState() State

	// StateActions returns every action available from s. An empty slice
	// means s is a dead end (no successors).
	StateActions(s State) []Action

	// StateActionResult returns the state reached by taking a from s.
	StateActionResult(s State, a Action) State

	// StateActionCost returns the (non-negative) cost of taking a from s.
	StateActionCost(s State, a Action) float64

	// IsGoalState reports whether s is an accepting state.
	IsGoalState(s State) bool

	// MinCost is an admissible heuristic: a lower bound on the remaining
	// cost from s to any goal state.
	MinCost(s State) float64
}

// TieBreaker supplies the deterministic secondary ordering spec.md 4.2
// requires among frontier entries of equal priority: "(-cumulative_cost,
// state, action)". It is optional; Options' zero value falls back to
// first-in-first-out insertion order, which is deterministic but does not
// match the spec's exact tie-break unless the caller supplies one.
type TieBreaker[State any, Action any] struct {
	// CompareState returns <0, 0, >0 as a < b, a == b, a > b.
	CompareState func(a, b State) int
	// CompareAction returns <0, 0, >0 as a < b, a == b, a > b.
	CompareAction func(a, b Action) int
}

// Options configures a single Run/RunIDDFS invocation.
type Options[State comparable, Action any] struct {
	// MaxSteps bounds the number of state expansions. Zero means
	// unbounded (the search runs until the frontier is exhausted).
	MaxSteps int

	// TieBreak supplies the deterministic equal-priority ordering; see
	// TieBreaker's doc comment.
	TieBreak TieBreaker[State, Action]
}

// Result is the outcome of a successful search: the action sequence from
// the initial state to a goal state, and its total cost.
type Result[Action any] struct {
	Actions   []Action
	TotalCost float64
}
