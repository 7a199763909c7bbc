package placement

import (
	"math/rand"
	"sort"

	"github.com/andrewsmike/redhdl/netlist"
	"github.com/andrewsmike/redhdl/voxel"
)

// mutationDirectionProbability and mutationSwapProbability are the two
// per-mutation coin-flip probabilities named in spec.md 4.5's mutation
// operator.
const (
	mutationDirectionProbability = 0.1
	mutationSwapProbability      = 0.1
)

// Mutate returns a copy of p perturbed by spec.md 4.5's mutation operator:
// pick max(n/3, 2) random instances; for each, with probability 0.1
// reassign its XZ direction, and always translate it by a random unit
// direction vector; then with probability 0.1 swap the (pos, dir) of two
// random instances. n is the number of instances in p.
func Mutate(p Placement, rng *rand.Rand) Placement {
	out := p.Clone()
	if len(out) == 0 {
		return out
	}

	ids := orderedInstanceIDs(out)
	count := len(ids) / 3
	if count < 2 {
		count = 2
	}
	if count > len(ids) {
		count = len(ids)
	}

	chosen := sampleDistinct(ids, count, rng)
	for _, id := range chosen {
		placed := out[id]
		if rng.Float64() < mutationDirectionProbability {
			placed.Direction = voxel.XZDirections[rng.Intn(len(voxel.XZDirections))]
		}
		placed.Pos = placed.Pos.Add(randomUnitTranslation(rng))
		out[id] = placed
	}

	if rng.Float64() < mutationSwapProbability && len(ids) >= 2 {
		a, b := ids[rng.Intn(len(ids))], ids[rng.Intn(len(ids))]
		out[a], out[b] = out[b], out[a]
	}

	return out
}

// randomUnitTranslation returns a uniformly random single-axis unit step
// (one of the six Direction unit vectors), matching "translate by a random
// unit direction vector".
func randomUnitTranslation(rng *rand.Rand) voxel.Pos {
	return voxel.AllDirections[rng.Intn(len(voxel.AllDirections))].Unit()
}

func sampleDistinct(ids []netlist.InstanceId, count int, rng *rand.Rand) []netlist.InstanceId {
	shuffled := append([]netlist.InstanceId(nil), ids...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	if count > len(shuffled) {
		count = len(shuffled)
	}
	out := shuffled[:count]
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
