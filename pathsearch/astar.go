package pathsearch

import "container/heap"

// node is one frontier entry: the state it represents, the cumulative cost
// to reach it, the action sequence that reached it, and a monotonic
// insertion sequence number used as the tie-break fallback.
type node[State comparable, Action any] struct {
	state     State
	cumCost   float64
	priority  float64
	actions   []Action
	seq       int
	hasAction bool
	lastActn  Action
}

// frontier is a container/heap.Interface priority queue ordered by
// (priority ascending, then the spec's "(-cumulative_cost, state, action)"
// secondary key — i.e. among equal-priority entries, higher cumulative
// cost (deeper/cheaper-remaining paths) expands first, then the caller's
// TieBreaker, then insertion order).
type frontier[State comparable, Action any] struct {
	nodes    []*node[State, Action]
	tieBreak TieBreaker[State, Action]
}

func (f *frontier[State, Action]) Len() int { return len(f.nodes) }

func (f *frontier[State, Action]) Less(i, j int) bool {
	a, b := f.nodes[i], f.nodes[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.cumCost != b.cumCost {
		return a.cumCost > b.cumCost // "-cumulative_cost" ascending == cumCost descending
	}
	if f.tieBreak.CompareState != nil {
		if c := f.tieBreak.CompareState(a.state, b.state); c != 0 {
			return c < 0
		}
	}
	if f.tieBreak.CompareAction != nil && a.hasAction && b.hasAction {
		if c := f.tieBreak.CompareAction(a.lastActn, b.lastActn); c != 0 {
			return c < 0
		}
	}
	return a.seq < b.seq
}

func (f *frontier[State, Action]) Swap(i, j int) { f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i] }

func (f *frontier[State, Action]) Push(x any) {
	f.nodes = append(f.nodes, x.(*node[State, Action]))
}

func (f *frontier[State, Action]) Pop() any {
	old := f.nodes
	n := len(old)
	item := old[n-1]
	f.nodes = old[:n-1]
	return item
}

// Run performs a best-first A* search over problem, expanding at most
// opts.MaxSteps states (unbounded if MaxSteps <= 0). It returns
// ErrTimeout if the budget is spent first, ErrNoSolution if the frontier
// empties without finding a goal.
func Run[State comparable, Action any](problem Problem[State, Action], opts Options[State, Action]) (Result[Action], error) {
	start := problem.InitialState()
	f := &frontier[State, Action]{tieBreak: opts.TieBreak}
	heap.Init(f)
	heap.Push(f, &node[State, Action]{
		state:    start,
		cumCost:  0,
		priority: problem.MinCost(start),
		actions:  nil,
		seq:      0,
	})

	explored := make(map[State]bool)
	expansions := 0
	nextSeq := 1

	for f.Len() > 0 {
		if opts.MaxSteps > 0 && expansions >= opts.MaxSteps {
			return Result[Action]{}, ErrTimeout
		}

		current := heap.Pop(f).(*node[State, Action])
		if explored[current.state] {
			continue
		}
		if problem.IsGoalState(current.state) {
			return Result[Action]{Actions: current.actions, TotalCost: current.cumCost}, nil
		}
		explored[current.state] = true
		expansions++

		for _, action := range problem.StateActions(current.state) {
			next := problem.StateActionResult(current.state, action)
			if explored[next] {
				continue
			}
			stepCost := problem.StateActionCost(current.state, action)
			cumCost := current.cumCost + stepCost
			actions := make([]Action, len(current.actions)+1)
			copy(actions, current.actions)
			actions[len(current.actions)] = action

			heap.Push(f, &node[State, Action]{
				state:     next,
				cumCost:   cumCost,
				priority:  cumCost + problem.MinCost(next),
				actions:   actions,
				seq:       nextSeq,
				hasAction: true,
				lastActn:  action,
			})
			nextSeq++
		}
	}

	return Result[Action]{}, ErrNoSolution
}
