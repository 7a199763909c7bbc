package bussing

import "errors"

// ErrBussingTimeout is returned when the router's A* search exhausts its
// MaxSteps budget before reaching a goal state.
var ErrBussingTimeout = errors.New("bussing: router search exhausted its step budget")

// ErrBussingImpossible is returned when the router's frontier empties out
// before reaching a goal state — no sequence of steps connects start and
// end under the given obstacles and other-wire set.
var ErrBussingImpossible = errors.New("bussing: no route between start and end voxels")

// ErrBussingLogic is returned when the verifying replay (run against a
// full, non-truncated WirePath) disagrees with the truncated search that
// produced the action sequence. This should never happen on a correctly
// implemented router; it signals a programming bug rather than a routing
// failure, the same distinction the original engine draws between
// BussingImpossibleError and BussingLogicError.
var ErrBussingLogic = errors.New("bussing: search solution failed verifying replay")
