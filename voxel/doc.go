// Package voxel provides the 3-D integer geometry primitives the rest of
// redhdl is built on: Pos (an integer vector3), Direction (a six-element
// facing enum with an XZ quarter-turn cycle), PositionSequence (a collinear
// run of positions used to describe a port's pins), and Region — a sum type
// with three variants (PointRegion, Prism, Composite) supporting padding,
// rotation, translation, union, intersection, containment, and iteration.
//
// Every Region operation that can short-circuit on a bounding-box miss does
// so before enumerating a single point; callers with large composite regions
// depend on this for interactive-speed overlap checks during placement
// search.
package voxel
