package voxel

import "errors"

// Sentinel errors for voxel primitives.
var (
	// ErrEmptyPointSet indicates an operation required at least one point
	// (e.g. ElemMin/ElemMax) but received none.
	ErrEmptyPointSet = errors.New("voxel: empty point set")

	// ErrIndivisible indicates a Pos division or modulus had a component
	// that did not divide cleanly (the 0/0 == 0 convention excepted).
	ErrIndivisible = errors.New("voxel: position does not divide cleanly")

	// ErrShortSequence indicates a PositionSequence was constructed with
	// count < 1.
	ErrShortSequence = errors.New("voxel: position sequence needs count >= 1")

	// ErrNonCollinearStep indicates a PositionSequence's start/stop could
	// not be reached by any integer step repeated (count-1) times.
	ErrNonCollinearStep = errors.New("voxel: start/stop do not divide cleanly by count-1")
)
