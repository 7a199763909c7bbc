package voxel

import (
	"fmt"
	"strings"
)

// Composite is an ordered list of subregions, unioned. It is not
// necessarily minimal: subregions may overlap, and empty subregions are
// allowed.
type Composite struct {
	subregions []Region
}

// NewComposite builds a Composite over the given subregions.
func NewComposite(subregions ...Region) Composite {
	return Composite{subregions: subregions}
}

// Subregions returns the subregions in order.
func (c Composite) Subregions() []Region {
	return append([]Region(nil), c.subregions...)
}

func (c Composite) MinPos() Pos {
	if len(c.subregions) == 0 {
		return Zero
	}
	mins := make([]Pos, len(c.subregions))
	for i, r := range c.subregions {
		mins[i] = r.MinPos()
	}
	out, _ := ElemMin(mins...)
	return out
}

func (c Composite) MaxPos() Pos {
	if len(c.subregions) == 0 {
		return Zero
	}
	maxs := make([]Pos, len(c.subregions))
	for i, r := range c.subregions {
		maxs[i] = r.MaxPos()
	}
	out, _ := ElemMax(maxs...)
	return out
}

func (c Composite) Shifted(offset Pos) Region {
	out := make([]Region, len(c.subregions))
	for i, r := range c.subregions {
		out[i] = r.Shifted(offset)
	}
	return Composite{subregions: out}
}

func (c Composite) XZPadded(paddingBlocks int) Region {
	out := make([]Region, len(c.subregions))
	for i, r := range c.subregions {
		out[i] = r.XZPadded(paddingBlocks)
	}
	return Composite{subregions: out}
}

func (c Composite) YRotated(quarterTurns int) Region {
	out := make([]Region, len(c.subregions))
	for i, r := range c.subregions {
		out[i] = r.YRotated(quarterTurns)
	}
	return Composite{subregions: out}
}

// Len computes the size of the union of the subregions (not merely the sum
// of their sizes). This does not scale gracefully to large subregion
// counts, matching the upstream engine's own caveat.
func (c Composite) Len() int {
	count := 0
	var counted Region = Composite{}
	for _, sub := range c.subregions {
		count += sub.Len() - sub.Intersect(counted).Len()
		counted = counted.Union(sub)
	}
	return count
}

func (c Composite) IsEmpty() bool {
	for _, r := range c.subregions {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}

func (c Composite) Contains(point Pos) bool {
	for _, r := range c.subregions {
		if r.Contains(point) {
			return true
		}
	}
	return false
}

func (c Composite) Points() []Pos {
	seen := make(map[Pos]struct{})
	for _, r := range c.subregions {
		for _, p := range r.Points() {
			seen[p] = struct{}{}
		}
	}
	out := make([]Pos, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	return out
}

func (c Composite) BoundingBox() Prism {
	return Prism{Min: c.MinPos(), Max: c.MaxPos()}
}

// Intersects reports whether any subregion intersects other, after an
// overall bounding-box short-circuit.
func (c Composite) Intersects(other Region) bool {
	if len(c.subregions) == 0 {
		return false
	}
	if !boundingBoxesOverlap(c.MinPos(), c.MaxPos(), other.MinPos(), other.MaxPos()) {
		return false
	}
	for _, r := range c.subregions {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

func (c Composite) Intersect(other Region) Region {
	if !boundingBoxesOverlap(c.MinPos(), c.MaxPos(), other.MinPos(), other.MaxPos()) {
		return PointRegion{}
	}
	if oc, ok := other.(Composite); ok {
		var regions []Region
		for _, a := range c.subregions {
			for _, b := range oc.subregions {
				combined := a.Intersect(b)
				if !combined.IsEmpty() {
					regions = append(regions, combined)
				}
			}
		}
		return Composite{subregions: regions}
	}
	var regions []Region
	for _, r := range c.subregions {
		combined := r.Intersect(other)
		if !combined.IsEmpty() {
			regions = append(regions, combined)
		}
	}
	return Composite{subregions: regions}
}

func (c Composite) Union(other Region) Region {
	if oc, ok := other.(Composite); ok {
		return Composite{subregions: append(append([]Region(nil), c.subregions...), oc.subregions...)}
	}
	return Composite{subregions: append(append([]Region(nil), c.subregions...), other)}
}

func (c Composite) String() string {
	parts := make([]string, len(c.subregions))
	for i, r := range c.subregions {
		parts[i] = fmt.Sprint(r)
	}
	return "Composite(" + strings.Join(parts, ", ") + ")"
}
