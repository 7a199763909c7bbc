// Package assembly merges a Placement and its routed WirePaths into one
// output voxel set: spec.md 4.6's final "combine placed template voxels
// with routed wire voxels into the output schematic" step.
//
// The core never loads or renders real block types (spec.md 1 places
// template/schematic introspection and the voxel-schematic file format out
// of scope); a Block here only distinguishes instance-footprint voxels from
// the wire voxel kinds (element, repeater, foundation, spacer) and carries
// enough metadata (instance id, signal strength) for a driver layer to map
// onto real blockstates.
package assembly
