// Package netlist defines the abstract logic netlist the place-and-route
// engine consumes: instances (named copies of pre-built sub-circuit
// templates, each with a footprint and labeled pin positions), ports
// (directed, contiguously-indexed pin bundles), pin-id sequences (a
// contiguous slice of one port's pins), and networks (one driver sequence
// feeding one or more sink sequences).
//
// A Netlist is immutable once constructed; the engine never mutates it.
// Instances breaks out into small integer/string-keyed tables rather than a
// pointer graph, per the "cyclic graphs" design note: instances and
// networks are addressed by small ids (InstanceId, NetworkId), and a
// Network references pins by (InstanceId, PortName, index) rather than by
// pointer.
//
// Two reserved instance ids, "input" and "output", represent the netlist's
// external I/O boundary: they carry ports but no footprint, and their
// declared port direction is inverted relative to the netlist's external
// interface (see Netlist.IOPorts).
package netlist
