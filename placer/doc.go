// Package placer is the outer simulated-annealing driver of spec.md 4.5: it
// searches the space of Placements, gating acceptance on the bussing
// router's feasibility and steering the search with the cost package's
// weighted heuristics, and hands the final (Placement, routes) pair to
// assembly to produce the output voxel set.
//
// Run is the package's single entry point and the one place in the engine
// that owns a *rand.Rand: every random choice made during a run — the
// initial placement, every inner pre-warm round, every mutation — is
// threaded through that one seeded source, so a given netlist and Options
// produce an identical placement on repeat runs (spec.md 4.5's
// deterministic-seed contract).
package placer
