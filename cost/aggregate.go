package cost

import (
	"github.com/andrewsmike/redhdl/bussing"
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placement"
)

// Unbussable is the placement-only aggregate cost, computed before any
// routing is attempted: spec.md 4.4's weighted sum of every heuristic
// except the two post-routing bus-length terms (zero by convention, per
// spec.md 9). Ported from unbussable_placement_cost.
func Unbussable(nl *netlist.Netlist, p placement.Placement) (float64, error) {
	raw, err := computeRaw(nl, p)
	if err != nil {
		return 0, err
	}
	return raw.weighted(unbussableWeights), nil
}

// Bussable is the post-routing aggregate cost: the same placement
// heuristics (at a different weighting) plus the two bus-length
// heuristics derived from a successful RouteAll result. Ported from
// bussable_placement_cost.
func Bussable(nl *netlist.Netlist, p placement.Placement, routes map[netlist.PinId]*bussing.WirePath) (float64, error) {
	raw, err := computeRaw(nl, p)
	if err != nil {
		return 0, err
	}
	raw.busAvgLength, raw.busMaxLength = busLengths(routes)
	return raw.weighted(bussableWeights), nil
}
