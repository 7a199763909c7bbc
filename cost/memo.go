package cost

import (
	"sync"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/andrewsmike/redhdl/bussing"
	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/placement"
)

// Cache memoizes RouteAll, Unbussable, and Bussable for one fixed
// netlist, keyed by a content hash of the Placement argument
// (github.com/mitchellh/hashstructure/v2), per spec.md 9's "content-hash
// the placement" replacement for the source's identity-keyed
// @first_id_cached memoization. One mutex guards all three maps; the
// single-threaded cooperative scheduling model of spec.md 5 means
// contention is never actually observed from the placer's own call
// pattern, but the guard costs nothing and matches the teacher's
// mutex-per-map style (core.Graph). Entries store either a value or a
// captured error, replayed verbatim on a cache hit, matching spec.md 5's
// cache-entry contract.
type Cache struct {
	nl        *netlist.Netlist
	routeOpts bussing.Options

	mu         sync.Mutex
	routes     map[uint64]routeEntry
	unbussable map[uint64]floatEntry
	bussable   map[uint64]floatEntry
}

type routeEntry struct {
	routes map[netlist.PinId]*bussing.WirePath
	err    error
}

type floatEntry struct {
	value float64
	err   error
}

// NewCache returns a Cache for nl, routing every sink with routeOpts
// (zero value uses DefaultRouteMaxSteps via RouteAll).
func NewCache(nl *netlist.Netlist, routeOpts bussing.Options) *Cache {
	return &Cache{
		nl:         nl,
		routeOpts:  routeOpts,
		routes:     make(map[uint64]routeEntry),
		unbussable: make(map[uint64]floatEntry),
		bussable:   make(map[uint64]floatEntry),
	}
}

func placementHash(p placement.Placement) (uint64, error) {
	return hashstructure.Hash(p, hashstructure.FormatV2, nil)
}

// Route returns RouteAll's result for p, memoized.
func (c *Cache) Route(p placement.Placement) (map[netlist.PinId]*bussing.WirePath, error) {
	key, err := placementHash(p)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if entry, ok := c.routes[key]; ok {
		c.mu.Unlock()
		return entry.routes, entry.err
	}
	c.mu.Unlock()

	routes, err := RouteAll(c.nl, p, c.routeOpts)

	c.mu.Lock()
	c.routes[key] = routeEntry{routes: routes, err: err}
	c.mu.Unlock()

	return routes, err
}

// Unbussable returns Unbussable's result for p, memoized.
func (c *Cache) Unbussable(p placement.Placement) (float64, error) {
	key, err := placementHash(p)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	if entry, ok := c.unbussable[key]; ok {
		c.mu.Unlock()
		return entry.value, entry.err
	}
	c.mu.Unlock()

	value, err := Unbussable(c.nl, p)

	c.mu.Lock()
	c.unbussable[key] = floatEntry{value: value, err: err}
	c.mu.Unlock()

	return value, err
}

// Bussable returns Bussable's result for p, routing p (memoized via
// Route) if needed.
func (c *Cache) Bussable(p placement.Placement) (float64, error) {
	key, err := placementHash(p)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	if entry, ok := c.bussable[key]; ok {
		c.mu.Unlock()
		return entry.value, entry.err
	}
	c.mu.Unlock()

	routes, err := c.Route(p)
	var value float64
	if err == nil {
		value, err = Bussable(c.nl, p, routes)
	}

	c.mu.Lock()
	c.bussable[key] = floatEntry{value: value, err: err}
	c.mu.Unlock()

	return value, err
}
