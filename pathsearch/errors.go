package pathsearch

import "errors"

// Sentinel errors returned by Run and RunIDDFS. Both search-exhaustion
// kinds from spec.md 4.2/4.3's "search exhaustion" error family.
var (
	// ErrTimeout indicates MaxSteps state expansions were performed
	// without reaching a goal state.
	ErrTimeout = errors.New("pathsearch: max steps exceeded before reaching a goal")

	// ErrNoSolution indicates the search frontier was exhausted without
	// ever reaching a goal state.
	ErrNoSolution = errors.New("pathsearch: no solution (frontier exhausted)")
)
