package voxel

import "fmt"

// PositionSequence is a collinear, evenly-spaced run of positions: Start
// (inclusive), Stop (inclusive), and Count total positions linearly spaced
// between them. It is the representation used for a port's pin positions.
type PositionSequence struct {
	Start, Stop Pos
	Count       int
}

// NewPositionSequence validates and constructs a PositionSequence. Start and
// Stop must divide cleanly into Count-1 equal integer steps along every axis
// that moves (the zero axes are left alone), matching the "collinear,
// integer-stepped" contract in the data model.
func NewPositionSequence(start, stop Pos, count int) (PositionSequence, error) {
	if count < 1 {
		return PositionSequence{}, ErrShortSequence
	}
	if count == 1 {
		if start != stop {
			return PositionSequence{}, fmt.Errorf("%w: count=1 requires start==stop", ErrNonCollinearStep)
		}
		return PositionSequence{Start: start, Stop: stop, Count: count}, nil
	}

	delta := stop.Sub(start)
	step, err := delta.DivElem(Pos{count - 1, count - 1, count - 1})
	if err != nil {
		return PositionSequence{}, fmt.Errorf("%w: %v", ErrNonCollinearStep, err)
	}

	maxSteps := 0
	for _, axisDelta := range [3]int{delta.X, delta.Y, delta.Z} {
		if a := absInt(axisDelta); a > maxSteps {
			maxSteps = a
		}
	}
	stepCounts := [3]int{0, 0, 0}
	if step.X != 0 {
		stepCounts[0] = delta.X / step.X
	}
	if step.Y != 0 {
		stepCounts[1] = delta.Y / step.Y
	}
	if step.Z != 0 {
		stepCounts[2] = delta.Z / step.Z
	}
	maxStepCount := 0
	for _, c := range stepCounts {
		if absInt(c) > maxStepCount {
			maxStepCount = absInt(c)
		}
	}
	for _, c := range stepCounts {
		if c != 0 && absInt(c) != maxStepCount {
			return PositionSequence{}, fmt.Errorf("%w: start=%v stop=%v count=%d", ErrNonCollinearStep, start, stop, count)
		}
	}

	return PositionSequence{Start: start, Stop: stop, Count: count}, nil
}

// Step returns the per-position displacement; zero if Count == 1.
func (ps PositionSequence) Step() Pos {
	if ps.Count <= 1 {
		return Zero
	}
	step, _ := ps.Stop.Sub(ps.Start).DivElem(Pos{ps.Count - 1, ps.Count - 1, ps.Count - 1})
	return step
}

// Len returns the number of positions in the sequence.
func (ps PositionSequence) Len() int {
	return ps.Count
}

// At returns the i-th position (0-indexed).
func (ps PositionSequence) At(i int) Pos {
	return ps.Start.Add(ps.Step().MulScalar(i))
}

// Values materializes the full sequence of positions.
func (ps PositionSequence) Values() []Pos {
	out := make([]Pos, ps.Count)
	step := ps.Step()
	cur := ps.Start
	for i := 0; i < ps.Count; i++ {
		out[i] = cur
		cur = cur.Add(step)
	}
	return out
}

// Shifted translates the whole sequence by offset.
func (ps PositionSequence) Shifted(offset Pos) PositionSequence {
	return PositionSequence{Start: ps.Start.Add(offset), Stop: ps.Stop.Add(offset), Count: ps.Count}
}

// YRotated rotates the whole sequence by quarterTurns about the Y axis.
func (ps PositionSequence) YRotated(quarterTurns int) PositionSequence {
	return PositionSequence{
		Start: ps.Start.YRotated(quarterTurns),
		Stop:  ps.Stop.YRotated(quarterTurns),
		Count: ps.Count,
	}
}

// Slice describes a Python-style [start:stop:step] subselection over a
// PositionSequence's indices.
type Slice struct {
	Start, Stop, Step int
}

// Indices returns the concrete 0-based indices this slice selects.
func (s Slice) Indices() []int {
	step := s.Step
	if step == 0 {
		step = 1
	}
	var out []int
	if step > 0 {
		for i := s.Start; i < s.Stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := s.Start; i > s.Stop; i += step {
			out = append(out, i)
		}
	}
	return out
}

// Select returns the sub-sequence of ps picked out by s.
func (ps PositionSequence) Select(s Slice) (PositionSequence, error) {
	indices := s.Indices()
	if len(indices) == 0 {
		return PositionSequence{}, fmt.Errorf("%w: empty slice selection", ErrShortSequence)
	}
	values := ps.Values()
	first, last := indices[0], indices[len(indices)-1]
	if first < 0 || last >= len(values) {
		return PositionSequence{}, fmt.Errorf("voxel: slice index out of range for sequence of length %d", len(values))
	}
	return PositionSequence{Start: values[first], Stop: values[last], Count: len(indices)}, nil
}

func (ps PositionSequence) String() string {
	return fmt.Sprintf("PositionSequence(%v, %v, count=%d)", ps.Start, ps.Stop, ps.Count)
}
