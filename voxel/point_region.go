package voxel

// PointRegion is a Region backed by an explicit set of points. Use it for
// small, irregular shapes (a WirePath's element/spacer/airspace sets); use
// Prism for a single solid volume.
type PointRegion struct {
	points map[Pos]struct{}
}

// NewPointRegion builds a PointRegion from the given points, deduplicating.
func NewPointRegion(points ...Pos) PointRegion {
	set := make(map[Pos]struct{}, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return PointRegion{points: set}
}

func (r PointRegion) MinPos() Pos {
	if len(r.points) == 0 {
		return Zero
	}
	pts := r.Points()
	out, _ := ElemMin(pts...)
	return out
}

func (r PointRegion) MaxPos() Pos {
	if len(r.points) == 0 {
		return Zero
	}
	pts := r.Points()
	out, _ := ElemMax(pts...)
	return out
}

func (r PointRegion) Shifted(offset Pos) Region {
	out := make(map[Pos]struct{}, len(r.points))
	for p := range r.points {
		out[p.Add(offset)] = struct{}{}
	}
	return PointRegion{points: out}
}

// XZPadded expands every point into the (2*paddingBlocks+1)^2 horizontal
// square centered on it.
func (r PointRegion) XZPadded(paddingBlocks int) Region {
	out := make(map[Pos]struct{})
	for p := range r.points {
		for dx := -paddingBlocks; dx <= paddingBlocks; dx++ {
			for dz := -paddingBlocks; dz <= paddingBlocks; dz++ {
				out[p.Add(Pos{dx, 0, dz})] = struct{}{}
			}
		}
	}
	return PointRegion{points: out}
}

func (r PointRegion) YRotated(quarterTurns int) Region {
	out := make(map[Pos]struct{}, len(r.points))
	for p := range r.points {
		out[p.YRotated(quarterTurns)] = struct{}{}
	}
	return PointRegion{points: out}
}

func (r PointRegion) Len() int { return len(r.points) }

func (r PointRegion) IsEmpty() bool { return len(r.points) == 0 }

func (r PointRegion) Contains(point Pos) bool {
	_, ok := r.points[point]
	return ok
}

func (r PointRegion) Points() []Pos {
	out := make([]Pos, 0, len(r.points))
	for p := range r.points {
		out = append(out, p)
	}
	return out
}

func (r PointRegion) BoundingBox() Prism {
	return Prism{Min: r.MinPos(), Max: r.MaxPos()}
}

func (r PointRegion) Intersects(other Region) bool {
	if !boundingBoxesOverlap(r.MinPos(), r.MaxPos(), other.MinPos(), other.MaxPos()) {
		return false
	}
	if o, ok := other.(PointRegion); ok {
		small, big := r, o
		if len(big.points) < len(small.points) {
			small, big = big, small
		}
		for p := range small.points {
			if _, ok := big.points[p]; ok {
				return true
			}
		}
		return false
	}
	return other.Intersects(r)
}

func (r PointRegion) Intersect(other Region) Region {
	if !boundingBoxesOverlap(r.MinPos(), r.MaxPos(), other.MinPos(), other.MaxPos()) {
		return PointRegion{}
	}
	out := make(map[Pos]struct{})
	for p := range r.points {
		if other.Contains(p) {
			out[p] = struct{}{}
		}
	}
	return PointRegion{points: out}
}

func (r PointRegion) Union(other Region) Region {
	if o, ok := other.(PointRegion); ok {
		out := make(map[Pos]struct{}, len(r.points)+len(o.points))
		for p := range r.points {
			out[p] = struct{}{}
		}
		for p := range o.points {
			out[p] = struct{}{}
		}
		return PointRegion{points: out}
	}
	if c, ok := other.(Composite); ok {
		return Composite{subregions: append([]Region{r}, c.subregions...)}
	}
	return Composite{subregions: []Region{r, other}}
}

func (r PointRegion) String() string {
	return "PointRegion(" + pointsString(r.Points()) + ")"
}
