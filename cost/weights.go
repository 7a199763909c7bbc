package cost

// MaxPadding is the per-instance XZ breathing room avg-missing-padding
// stops crediting beyond — enough for two busses to fit between
// instances. Recovered from original_source's MAX_PADDING = 5 constant
// (SPEC_FULL.md 9.1); spec.md 4.4 already specifies "up to 5" but not a
// named constant.
const MaxPadding = 5

// rawHeuristics holds the eleven named heuristics' unweighted values,
// shared between the Unbussable and Bussable aggregates. BusAvgLength
// and BusMaxLength are zero whenever no routing result is available
// (spec.md 9's explicitly resolved ambiguity), and are only ever
// populated by Bussable.
type rawHeuristics struct {
	minL1Avg           float64
	minL1Max           float64
	collisions         float64
	size               float64
	lineOfSight        float64
	missingPadding     float64
	shiftMisalign      float64
	strideMisalign     float64
	crossedBuses       float64
	tooDirectlyAbove   float64
	excessiveDownwards float64
	minRouter          float64
	busAvgLength       float64
	busMaxLength       float64
}

// unbussableWeights and bussableWeights are the two named weight tables
// of spec.md 4.4, ported verbatim from assembly.py's
// _unbussable_placement_heuristic_weights/_bussable_placement_heuristic_weights.
type weights struct {
	minL1Avg           float64
	minL1Max           float64
	collisions         float64
	size               float64
	lineOfSight        float64
	missingPadding     float64
	shiftMisalign      float64
	strideMisalign     float64
	crossedBuses       float64
	tooDirectlyAbove   float64
	excessiveDownwards float64
	minRouter          float64
	busAvgLength       float64
	busMaxLength       float64
}

var unbussableWeights = weights{
	minL1Avg:           5,
	minL1Max:           5,
	collisions:         10000,
	size:               20,
	lineOfSight:        30,
	missingPadding:     10,
	shiftMisalign:      150,
	strideMisalign:     150,
	crossedBuses:       60,
	tooDirectlyAbove:   70,
	excessiveDownwards: 80,
	minRouter:          20,
}

var bussableWeights = weights{
	collisions:         10000,
	size:               20,
	lineOfSight:        10,
	missingPadding:     10,
	shiftMisalign:      50,
	strideMisalign:     35,
	crossedBuses:       20,
	tooDirectlyAbove:   20,
	excessiveDownwards: 30,
	minRouter:          10,
	busAvgLength:       20,
	busMaxLength:       20,
}

// weighted sums raw * w field-by-field, the Go equivalent of
// assembly.py's _weighted_costs(...).values() summed.
func (raw rawHeuristics) weighted(w weights) float64 {
	return raw.minL1Avg*w.minL1Avg +
		raw.minL1Max*w.minL1Max +
		raw.collisions*w.collisions +
		raw.size*w.size +
		raw.lineOfSight*w.lineOfSight +
		raw.missingPadding*w.missingPadding +
		raw.shiftMisalign*w.shiftMisalign +
		raw.strideMisalign*w.strideMisalign +
		raw.crossedBuses*w.crossedBuses +
		raw.tooDirectlyAbove*w.tooDirectlyAbove +
		raw.excessiveDownwards*w.excessiveDownwards +
		raw.minRouter*w.minRouter +
		raw.busAvgLength*w.busAvgLength +
		raw.busMaxLength*w.busMaxLength
}
