package cost

import (
	"math"

	"github.com/andrewsmike/redhdl/bussing"
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placement"
)

// DefaultRouteMaxSteps bounds each sink's A* search within RouteAll,
// ported from original_source/redhdl/assembly/naive_bussing.py's
// dest_pin_buses call (max_steps=2_048).
const DefaultRouteMaxSteps = 2048

// minRouterLowerBound is spec.md 4.4's clamp(log2(avg_min_router_cost +
// 1) / 7, 0, 1), the cost-only router lower bound averaged over every
// pin pair with no search performed, ported from
// avg_min_redstone_bus_len_score.
func minRouterLowerBound(pairs []placement.PinPosPair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	sum := 0.0
	for _, pair := range pairs {
		sum += bussing.MinCost(pair.SourcePos, pair.DestPos, nil, nil)
	}
	avg := sum / float64(len(pairs))
	return math.Min(1, math.Log2(avg+1)/7)
}

// RouteAll performs the strictly sequential, netlist-order wire routing
// spec.md 5 requires: every internal driver-sink pin pair is routed in
// SourceDestPinPosPairs order, each route's obstacles set including
// every instance footprint (XZ-padded by 1, matching dest_pin_buses)
// plus every wire routed so far. The first routing failure aborts the
// whole batch and propagates its error (ErrBussingTimeout,
// ErrBussingImpossible, or ErrBussingLogic) to the caller — mirroring
// dest_pin_buses, which raises out of its loop on the first failed
// redstone_bussing call.
func RouteAll(nl *netlist.Netlist, p placement.Placement, opts bussing.Options) (map[netlist.PinId]*bussing.WirePath, error) {
	pairs, err := placement.SourceDestPinPosPairs(nl, p)
	if err != nil {
		return nil, err
	}

	instanceRegion, err := placement.Region(nl, p)
	if err != nil {
		return nil, err
	}
	obstacles := instanceRegion.XZPadded(1)

	if opts.MaxSteps <= 0 {
		opts.MaxSteps = DefaultRouteMaxSteps
	}

	routes := make(map[netlist.PinId]*bussing.WirePath, len(pairs))
	accumulated := bussing.NewWirePath()
	for _, pair := range pairs {
		route, err := bussing.Route(pair.SourcePos, pair.DestPos, nil, nil, obstacles, accumulated, opts)
		if err != nil {
			return nil, err
		}
		placed := route
		routes[pair.DestPinID] = &placed
		accumulated = accumulated.Merge(route)
	}

	return routes, nil
}

// busLengths returns the average and maximum element count across every
// routed WirePath, ported from bussing_avg_length/bussing_max_length.
// RouteAll never returns a partial result (it aborts on the first
// failure), so every entry here is a successful route — unlike the
// source's PartialPinBuses, there is no per-sink None to filter out.
func busLengths(routes map[netlist.PinId]*bussing.WirePath) (avg, max float64) {
	if len(routes) == 0 {
		return 0, 0
	}
	sum := 0
	for i, route := range mapValues(routes) {
		length := len(route.Elements)
		sum += length
		if i == 0 || float64(length) > max {
			max = float64(length)
		}
	}
	return float64(sum) / float64(len(routes)), max
}

func mapValues(routes map[netlist.PinId]*bussing.WirePath) []*bussing.WirePath {
	out := make([]*bussing.WirePath, 0, len(routes))
	for _, route := range routes {
		out = append(out, route)
	}
	return out
}
