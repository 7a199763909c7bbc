package voxel

import "fmt"

// Prism is an axis-aligned rectangular prism, inclusive on every edge.
type Prism struct {
	Min, Max Pos
}

// NewPrism builds a Prism. It does not validate Min <= Max; an "inverted"
// prism is simply empty (see IsEmpty), matching the Python reference's
// treatment of degenerate bounds.
func NewPrism(min, max Pos) Prism {
	return Prism{Min: min, Max: max}
}

func (p Prism) MinPos() Pos { return p.Min }
func (p Prism) MaxPos() Pos { return p.Max }

func (p Prism) Shifted(offset Pos) Region {
	return Prism{Min: p.Min.Add(offset), Max: p.Max.Add(offset)}
}

// XZPadded expands the prism by paddingBlocks in X and Z only.
func (p Prism) XZPadded(paddingBlocks int) Region {
	pad := Pos{paddingBlocks, 0, paddingBlocks}
	return Prism{Min: p.Min.Sub(pad), Max: p.Max.Add(pad)}
}

func (p Prism) YRotated(quarterTurns int) Region {
	a := p.Min.YRotated(quarterTurns)
	b := p.Max.YRotated(quarterTurns)
	lo, _ := ElemMin(a, b)
	hi, _ := ElemMax(a, b)
	return Prism{Min: lo, Max: hi}
}

func (p Prism) IsEmpty() bool {
	return !p.Min.LessEqElem(p.Max)
}

// Len returns the volume (width * height * depth); 0 if empty.
func (p Prism) Len() int {
	if p.IsEmpty() {
		return 0
	}
	extent := p.Max.Sub(p.Min).Add(Pos{1, 1, 1})
	return extent.X * extent.Y * extent.Z
}

func (p Prism) Contains(point Pos) bool {
	return p.Min.LessEqElem(point) && point.LessEqElem(p.Max)
}

func (p Prism) Points() []Pos {
	if p.IsEmpty() {
		return nil
	}
	out := make([]Pos, 0, p.Len())
	for x := p.Min.X; x <= p.Max.X; x++ {
		for y := p.Min.Y; y <= p.Max.Y; y++ {
			for z := p.Min.Z; z <= p.Max.Z; z++ {
				out = append(out, Pos{x, y, z})
			}
		}
	}
	return out
}

func (p Prism) BoundingBox() Prism { return p }

func (p Prism) Intersects(other Region) bool {
	if !boundingBoxesOverlap(p.Min, p.Max, other.MinPos(), other.MaxPos()) {
		return false
	}
	switch o := other.(type) {
	case Prism:
		return true // AABB check above already proved overlap.
	case PointRegion:
		for pt := range o.points {
			if p.Contains(pt) {
				return true
			}
		}
		return false
	default:
		return other.Intersects(p)
	}
}

func (p Prism) Intersect(other Region) Region {
	if !boundingBoxesOverlap(p.Min, p.Max, other.MinPos(), other.MaxPos()) {
		return PointRegion{}
	}
	switch o := other.(type) {
	case Prism:
		lo, _ := ElemMax(p.Min, o.Min)
		hi, _ := ElemMin(p.Max, o.Max)
		return Prism{Min: lo, Max: hi}
	default:
		out := make(map[Pos]struct{})
		for _, pt := range other.Points() {
			if p.Contains(pt) {
				out[pt] = struct{}{}
			}
		}
		return PointRegion{points: out}
	}
}

func (p Prism) Union(other Region) Region {
	if c, ok := other.(Composite); ok {
		return Composite{subregions: append([]Region{p}, c.subregions...)}
	}
	return Composite{subregions: []Region{p, other}}
}

func (p Prism) String() string {
	return fmt.Sprintf("Prism(%v, %v)", p.Min, p.Max)
}
