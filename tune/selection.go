package tune

import (
	"math/rand"
	"sort"
)

// TournamentSelection selects an individual by sampling k candidates
// uniformly and returning the fittest, ported directly from the
// teacher's evolution.TournamentSelection.
func TournamentSelection(pop *Population, k int, rng *rand.Rand) *Individual {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil
	}
	if k > len(pop.Individuals) {
		k = len(pop.Individuals)
	}
	if k < 1 {
		k = 1
	}

	indices := rng.Perm(len(pop.Individuals))[:k]
	best := pop.Individuals[indices[0]]
	for _, idx := range indices[1:] {
		if pop.Individuals[idx].Fitness > best.Fitness {
			best = pop.Individuals[idx]
		}
	}
	return best
}

// SelectElite returns the top n individuals by fitness.
func SelectElite(pop *Population, n int) []*Individual {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil
	}
	if n > len(pop.Individuals) {
		n = len(pop.Individuals)
	}
	if n < 1 {
		return nil
	}

	sorted := make([]*Individual, len(pop.Individuals))
	copy(sorted, pop.Individuals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fitness > sorted[j].Fitness })
	return sorted[:n]
}

// SelectEliteByRate returns the top elitismRate fraction of the
// population by fitness.
func SelectEliteByRate(pop *Population, elitismRate float64) []*Individual {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil
	}
	n := int(float64(len(pop.Individuals)) * elitismRate)
	if n < 1 {
		n = 1
	}
	return SelectElite(pop, n)
}

// RouletteWheelSelection selects an individual with probability
// proportional to fitness, falling back to uniform selection if every
// individual has non-positive fitness.
func RouletteWheelSelection(pop *Population, rng *rand.Rand) *Individual {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil
	}

	var totalFitness float64
	for _, ind := range pop.Individuals {
		if ind.Fitness > 0 {
			totalFitness += ind.Fitness
		}
	}
	if totalFitness <= 0 {
		return pop.Individuals[rng.Intn(len(pop.Individuals))]
	}

	spin := rng.Float64() * totalFitness
	var cumulative float64
	for _, ind := range pop.Individuals {
		if ind.Fitness > 0 {
			cumulative += ind.Fitness
			if cumulative >= spin {
				return ind
			}
		}
	}
	return pop.Individuals[len(pop.Individuals)-1]
}
