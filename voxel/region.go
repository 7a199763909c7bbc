package voxel

// Region is a 3-D point set. It has three concrete implementations —
// PointRegion (an explicit point set), Prism (an axis-aligned rectangular
// prism with inclusive bounds), and Composite (an ordered list of
// subregions) — mirroring the sum-type-as-interface idiom the rest of the
// engine uses for WirePath's derived sets.
//
// Every implementation must short-circuit using an axis-aligned bounding
// box overlap test before enumerating any point; Intersects and Intersect
// depend on this to stay cheap for large composite regions built up over a
// whole netlist's instances.
type Region interface {
	// MinPos and MaxPos give the region's axis-aligned bounding box. An
	// empty PointRegion or a Composite with no subregions returns Zero for
	// both; an empty (inverted) Prism returns its own Min and Max.
	MinPos() Pos
	MaxPos() Pos

	// XZPadded expands the region by paddingBlocks in the horizontal plane
	// only (Y is untouched).
	XZPadded(paddingBlocks int) Region

	// YRotated rotates the region by quarterTurns quarter turns about the Y
	// axis.
	YRotated(quarterTurns int) Region

	// Shifted translates the region by offset.
	Shifted(offset Pos) Region

	// Union returns the set union of the region with other.
	Union(other Region) Region

	// Intersect returns the set intersection of the region with other.
	Intersect(other Region) Region

	// Intersects reports whether the region and other share any point,
	// short-circuiting on the bounding-box test.
	Intersects(other Region) bool

	// Contains reports whether point is a member of the region.
	Contains(point Pos) bool

	// Len returns the number of distinct points in the region.
	Len() int

	// IsEmpty reports whether the region contains no points.
	IsEmpty() bool

	// Points materializes every point the region contains. Callers should
	// avoid this on large Prism/Composite regions when only containment or
	// intersection is needed.
	Points() []Pos

	// BoundingBox returns the smallest Prism containing the region.
	BoundingBox() Prism
}

func boundingBoxesOverlap(aMin, aMax, bMin, bMax Pos) bool {
	return aMin.LessEqElem(bMax) && aMax.GreaterEqElem(bMin)
}

// AnyOverlap reports whether any two distinct regions in the slice
// intersect.
func AnyOverlap(regions []Region) bool {
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].Intersects(regions[j]) {
				return true
			}
		}
	}
	return false
}
