// Package tune evolves the weight vector behind a WeightedRandom strategy
// using a genetic algorithm whose fitness is a Tournament Score — "how
// much utility does this weight vector earn against a fixed field of
// opponents." Grounded on the teacher's evolution package: Individual/
// Population (evolution/population.go), tournament and roulette-wheel
// selection (evolution/selection.go), and the overall generational loop
// shape (evolution/engine.go's EvolutionEngine), all repurposed from
// evolving card-game genomes to evolving a strategy's weight vector.
package tune

import "math/rand"

// WeightGenome is the evolved unit: a weight per candidate move, fed to
// strategy.WeightedRandom after normalization via dist.New.
type WeightGenome struct {
	Weights []float64
}

// Clone returns a deep copy of g.
func (g *WeightGenome) Clone() *WeightGenome {
	w := make([]float64, len(g.Weights))
	copy(w, g.Weights)
	return &WeightGenome{Weights: w}
}

// RandomGenome builds a genome of n uniform-ish weights perturbed
// slightly so an initial population isn't degenerate.
func RandomGenome(n int, rng *rand.Rand) *WeightGenome {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 + rng.Float64()
	}
	return &WeightGenome{Weights: w}
}

// Individual pairs a genome with its evaluated fitness, mirroring the
// teacher's evolution.Individual.
type Individual struct {
	Genome    *WeightGenome
	Fitness   float64
	Evaluated bool
}

// Clone deep-copies an Individual.
func (ind *Individual) Clone() *Individual {
	return &Individual{Genome: ind.Genome.Clone(), Fitness: ind.Fitness, Evaluated: ind.Evaluated}
}

// Population is a generation's worth of individuals.
type Population struct {
	Individuals []*Individual
	Generation  int
}

// NewPopulation wraps an individual slice as generation zero.
func NewPopulation(individuals []*Individual) *Population {
	return &Population{Individuals: individuals}
}

// Size is the number of individuals in the population.
func (p *Population) Size() int { return len(p.Individuals) }

// BestIndividual returns the highest-fitness individual, or nil if empty.
func (p *Population) BestIndividual() *Individual {
	if len(p.Individuals) == 0 {
		return nil
	}
	best := p.Individuals[0]
	for _, ind := range p.Individuals[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}

// AverageFitness is the mean fitness across evaluated individuals.
func (p *Population) AverageFitness() float64 {
	var sum float64
	var count int
	for _, ind := range p.Individuals {
		if ind.Evaluated {
			sum += ind.Fitness
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
