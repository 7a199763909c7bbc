// Package localsearch implements the generic simulated-annealing
// framework described in spec.md 4.1: a Problem[Solution] interface
// (RandomSolution, MutatedSolution, SolutionCost, GoodEnough), a
// segmented/restarted round schedule, the Boltzmann acceptance rule
// exp(-(cCand/cCurr) * (4*i/T)), best-so-far tracking across every
// segment, and an early return the moment a candidate satisfies
// GoodEnough.
//
// The placer package is this framework's outer loop (annealing over
// Placement); the placer's inner pre-warm pass over each fresh random
// placement is a second, independent Run call over unbussable-only cost.
package localsearch
