// Package redhdl is a place-and-route engine for 3-D voxel circuit
// layouts: given a netlist of pre-built sub-circuit templates and the
// connections between their pins, it places every instance and routes
// every connection as a concrete voxel path, under the signal-propagation
// rules of the underlying simulation substrate.
//
// The engine is organized as a pipeline of small packages, leaves first:
//
//	voxel/      — 3-D integer vectors, directions, and region algebra
//	netlist/    — instances, ports, pin sequences, and networks
//	placement/  — per-instance (position, orientation) and derived pin geometry
//	localsearch/ — generic simulated annealing
//	pathsearch/ — generic A* (best-first and iterative-deepening)
//	bussing/    — the A*-based wire router
//	cost/       — the placement cost heuristics and their two weighted aggregates
//	placer/     — the outer SA driver that ties placement, cost, and bussing together
//	assembly/   — merges placed instances and routed wires into one voxel set
//
// placer.Run is the package's single entry point for a full place-and-route
// pass; everything else is usable independently for testing or for a
// caller that wants finer control over the pipeline.
package redhdl
