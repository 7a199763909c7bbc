// Package bussing implements the wire router: spec.md 4.3's A*-based
// search that turns a (start voxel, end voxel) pair into a concrete
// WirePath of redstone-wire/repeater elements satisfying the engine's
// signal-propagation constraints (COLLISION-1..3, CONNECTIVITY-1..6,
// INPUT-NOISE-1..3, OUTPUT-NOISE-1..2).
//
// routeProblem implements pathsearch.Problem over a truncated state — the
// current and previous element voxels, their signal strengths, and XZ/Y
// momentum — exactly as spec.md 4.3's "History truncation" paragraph
// describes; once the A* search returns an action sequence, Route
// replays it against a full, non-truncated WirePath accumulator to
// produce the final result. Replay disagreement (which should never
// happen on a well-formed search) is ErrBussingLogic, a programmer-bug
// class per spec.md 7.
//
// This package is grounded directly on
// original_source/redhdl/bussing/redstone_bussing.py: the step
// enumeration, constraint checks, momentum bookkeeping, and cost/
// heuristic formulas (including the early-repeater and momentum-break
// cost constants, 12 and 3) all carry over from RedstonePathFindingProblem
// and RedstoneBussing.add_step, translated from exception-raising Python
// into explicit (value, ok) / (value, error) Go returns.
package bussing
