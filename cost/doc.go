// Package cost computes scalar placement-quality heuristics for a
// (netlist, placement) pair and aggregates them into the two weighted
// cost functions the placer's simulated annealing optimizes:
// Unbussable (placement geometry only, cheap, used before routing is
// attempted) and Bussable (placement geometry plus actual routed wire
// lengths, used once the router has succeeded).
//
// The eleven named heuristics and both weight tables are grounded on
// original_source/redhdl/assembly/assembly.py's
// unbussable_placement_heuristic_costs/bussable_placement_heuristic_costs
// and their paired weight dicts, with the underlying per-heuristic math
// grounded on original_source/redhdl/assembly/naive_bussing.py. Two
// deliberate deviations from that source, both favoring spec.md's own
// prose over an incidental source quirk: min-connection-L1's avg/max are used raw (spec.md does not call for
// the log2 transform the source applies before weighting it), and the
// interrupted-line-of-sight bounding box is built from normalized
// (elem-min, elem-max) corners rather than the source's unnormalized
// (source_pos, dest_pos) pair.
//
// RouteAll performs the strictly sequential, netlist-order wire routing
// spec.md 5 requires, one sink at a time, each route observing every
// previously routed wire as an obstacle. Cache wraps both RouteAll and
// the two cost functions in a content-hash-keyed memoization layer
// (github.com/mitchellh/hashstructure/v2), the Go-native stand-in for
// spec.md 9's "content-hash the placement" identity-cache replacement.
package cost
