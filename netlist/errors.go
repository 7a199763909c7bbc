package netlist

import "errors"

// Sentinel errors for netlist construction. All are input-validity errors
// in the error taxonomy's family 1 ("fatal at construction").
var (
	// ErrCyclicNetwork indicates a network's driver pins and sink pins were
	// not disjoint.
	ErrCyclicNetwork = errors.New("netlist: cyclic network (driver/sink pins overlap)")

	// ErrEmptyPinSequence indicates a PinIdSequence or Network had zero
	// pins.
	ErrEmptyPinSequence = errors.New("netlist: zero-length pin sequence")

	// ErrMismatchedWidth indicates a network's sink sequence length did not
	// match its driver sequence length.
	ErrMismatchedWidth = errors.New("netlist: mismatched pin sequence widths")

	// ErrUnknownInstance indicates a PortId referenced an instance not
	// present in the netlist.
	ErrUnknownInstance = errors.New("netlist: unknown instance")

	// ErrUnknownPort indicates a PortId referenced a port not present on
	// its instance.
	ErrUnknownPort = errors.New("netlist: unknown port")

	// ErrNonOriginFootprint indicates a template instance's footprint did
	// not have its minimum corner at the origin.
	ErrNonOriginFootprint = errors.New("netlist: template footprint must have min corner at origin")
)
