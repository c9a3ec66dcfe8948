package tune

import (
	"log"
	"math/rand"
)

// Config controls a tuning run, mirroring the shape (field-for-field
// where it still applies) of the teacher's evolution.EvolutionConfig.
type Config struct {
	PopulationSize int
	MaxGenerations int
	ElitismRate    float64
	CrossoverRate  float64
	TournamentSize int
	NumWeights     int
	RandomSeed     int64
	Verbose        bool
}

// DefaultConfig returns reasonable defaults for tuning a small weight
// vector against a fixed opponent field.
func DefaultConfig(numWeights int) Config {
	return Config{
		PopulationSize: 40,
		MaxGenerations: 30,
		ElitismRate:    0.1,
		CrossoverRate:  0.7,
		TournamentSize: 4,
		NumWeights:     numWeights,
	}
}

// GenerationStats records one generation's summary, mirroring the
// teacher's evolution.GenerationStats (minus the wall-clock timestamp,
// which this package's caller may attach if it wants one).
type GenerationStats struct {
	Generation  int
	BestFitness float64
	AvgFitness  float64
}

// FitnessFunc scores a weight genome, typically by running it through a
// Tournament as a WeightedRandom strategy and reading its Score. Higher
// is better.
type FitnessFunc func(g *WeightGenome) float64

// Engine runs the generational loop: evaluate, select elites, breed the
// remainder via tournament selection + crossover + mutation, repeat.
// Grounded on the teacher's evolution.EvolutionEngine.Evolve, simplified
// to a single synchronous fitness function rather than a parallel
// game-evaluator pool (fitness here is usually itself a parallel
// Tournament.Play, so a second layer of worker pooling isn't needed).
type Engine struct {
	Config           Config
	Population       *Population
	StatsHistory     []GenerationStats
	BestEver         *Individual
	Rng              *rand.Rand
	Fitness          FitnessFunc
	MutationPipeline *MutationPipeline
	Crossover        CrossoverOperator
}

// NewEngine builds an Engine ready to Evolve, seeding its population
// randomly since weight genomes (unlike the teacher's card genomes)
// have no meaningful hand-authored seed set.
func NewEngine(config Config, fitness FitnessFunc) *Engine {
	seed := config.RandomSeed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	individuals := make([]*Individual, config.PopulationSize)
	for i := range individuals {
		individuals[i] = &Individual{Genome: RandomGenome(config.NumWeights, rng)}
	}

	return &Engine{
		Config:           config,
		Population:       NewPopulation(individuals),
		Rng:              rng,
		Fitness:          fitness,
		MutationPipeline: DefaultPipeline(),
		Crossover:        NewUniformCrossover(config.CrossoverRate),
		StatsHistory:     make([]GenerationStats, 0, config.MaxGenerations),
	}
}

// EvaluatePopulation scores every unevaluated individual.
func (e *Engine) EvaluatePopulation() {
	for _, ind := range e.Population.Individuals {
		if ind.Evaluated {
			continue
		}
		ind.Fitness = e.Fitness(ind.Genome)
		ind.Evaluated = true
	}
}

// CreateOffspring builds the next generation: elitism, then tournament
// selection with crossover and mutation, mirroring the teacher's
// EvolutionEngine.CreateOffspring.
func (e *Engine) CreateOffspring() []*Individual {
	offspring := make([]*Individual, 0, e.Config.PopulationSize)

	nElite := int(float64(e.Config.PopulationSize) * e.Config.ElitismRate)
	for _, ind := range SelectElite(e.Population, nElite) {
		offspring = append(offspring, ind.Clone())
	}

	for len(offspring) < e.Config.PopulationSize {
		parent1 := TournamentSelection(e.Population, e.Config.TournamentSize, e.Rng)
		parent2 := TournamentSelection(e.Population, e.Config.TournamentSize, e.Rng)

		var child1, child2 *WeightGenome
		if e.Rng.Float64() < e.Crossover.Probability() {
			child1, child2 = e.Crossover.Crossover(parent1.Genome, parent2.Genome, e.Rng)
		} else {
			child1, child2 = parent1.Genome.Clone(), parent2.Genome.Clone()
		}

		child1 = e.MutationPipeline.Apply(child1, e.Rng)
		child2 = e.MutationPipeline.Apply(child2, e.Rng)

		offspring = append(offspring, &Individual{Genome: child1})
		if len(offspring) < e.Config.PopulationSize {
			offspring = append(offspring, &Individual{Genome: child2})
		}
	}

	return offspring[:e.Config.PopulationSize]
}

// Evolve runs the full generational loop and returns the best genome
// found, mirroring the teacher's EvolutionEngine.Evolve.
func (e *Engine) Evolve() *WeightGenome {
	e.EvaluatePopulation()

	for generation := 0; generation < e.Config.MaxGenerations; generation++ {
		best := e.Population.BestIndividual()
		avg := e.Population.AverageFitness()

		if e.BestEver == nil || best.Fitness > e.BestEver.Fitness {
			e.BestEver = best.Clone()
		}

		e.StatsHistory = append(e.StatsHistory, GenerationStats{
			Generation:  generation,
			BestFitness: best.Fitness,
			AvgFitness:  avg,
		})

		if e.Config.Verbose {
			log.Printf("generation %d/%d: best=%.4f avg=%.4f", generation+1, e.Config.MaxGenerations, best.Fitness, avg)
		}

		offspring := e.CreateOffspring()
		e.Population = &Population{Individuals: offspring, Generation: e.Population.Generation + 1}
		e.EvaluatePopulation()
	}

	final := e.Population.BestIndividual()
	if e.BestEver != nil && e.BestEver.Fitness > final.Fitness {
		return e.BestEver.Genome
	}
	return final.Genome
}
