package placement

import "errors"

var (
	// ErrUnknownInstance indicates a Placement referenced an instance id
	// not present in the netlist, or vice versa.
	ErrUnknownInstance = errors.New("placement: unknown instance")

	// ErrNotSchematicInstance indicates an operation needing footprint/pin
	// geometry was given an instance with no footprint (an "input"/"output"
	// pseudo instance).
	ErrNotSchematicInstance = errors.New("placement: instance has no physical footprint")

	// ErrUnknownPort indicates a PinIdSequence referenced a port absent
	// from its instance.
	ErrUnknownPort = errors.New("placement: unknown port")

	// ErrPlacementTimeout indicates RandomPlacement could not find a valid
	// position for some instance within MaxPlacementAttempts tries.
	ErrPlacementTimeout = errors.New("placement: could not find a non-overlapping position for an instance")
)
