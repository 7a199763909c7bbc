// Package pathsearch implements the generic A* path-search framework
// described in spec.md 4.2: a Problem[State, Action] interface (initial
// state, available actions, transition + cost functions, goal test, and an
// admissible min-cost heuristic), and two interchangeable search variants
// — Run (best-first, a container/heap priority queue) and RunIDDFS
// (iterative-deepening DFS with a monotonically rising cost cap).
//
// Both variants fail with ErrTimeout when MaxSteps expansions are spent
// without reaching a goal, and ErrNoSolution when the search space is
// exhausted first; spec.md 8's property "A* BFS vs IDDFS produce action
// sequences of equal total cost on any problem that has a goal" is the
// reason both variants live in one package sharing one Problem interface.
//
// The router package (bussing) is this framework's first and hardest
// caller: its state space, constraints, and heuristic are all expressed
// against this package's Problem interface.
package pathsearch
