package tune

import "math/rand"

// CrossoverOperator combines two parent genomes into two children,
// mirroring the teacher's evolution/crossover.go CrossoverOperator
// interface.
type CrossoverOperator interface {
	Crossover(parent1, parent2 *WeightGenome, rng *rand.Rand) (*WeightGenome, *WeightGenome)
	Probability() float64
}

// UniformCrossover swaps each weight independently between the two
// parents with 50% probability, generalizing the teacher's per-field
// coin-flip UniformCrossover from genome struct fields to weight-vector
// indices.
type UniformCrossover struct {
	probability float64
}

// NewUniformCrossover builds a uniform crossover operator that fires
// with the given probability.
func NewUniformCrossover(probability float64) *UniformCrossover {
	return &UniformCrossover{probability: probability}
}

// Probability is the chance this operator applies to a given parent pair.
func (c *UniformCrossover) Probability() float64 { return c.probability }

// Crossover returns two children built by independently swapping each
// weight index between the parents. If the parents have different
// lengths, the shorter length is used and the longer parent's extra
// weights pass through unchanged to its own child.
func (c *UniformCrossover) Crossover(parent1, parent2 *WeightGenome, rng *rand.Rand) (*WeightGenome, *WeightGenome) {
	child1 := parent1.Clone()
	child2 := parent2.Clone()

	n := len(child1.Weights)
	if len(child2.Weights) < n {
		n = len(child2.Weights)
	}
	for i := 0; i < n; i++ {
		if rng.Float64() < 0.5 {
			child1.Weights[i], child2.Weights[i] = child2.Weights[i], child1.Weights[i]
		}
	}
	return child1, child2
}

// BlendCrossover produces children by linear interpolation between the
// parents' weights at a random mixing ratio per index, a continuous
// analogue better suited to float genomes than a pure swap.
type BlendCrossover struct {
	probability float64
}

// NewBlendCrossover builds a blend crossover operator.
func NewBlendCrossover(probability float64) *BlendCrossover {
	return &BlendCrossover{probability: probability}
}

// Probability is the chance this operator applies to a given parent pair.
func (c *BlendCrossover) Probability() float64 { return c.probability }

// Crossover blends each weight index between the two parents.
func (c *BlendCrossover) Crossover(parent1, parent2 *WeightGenome, rng *rand.Rand) (*WeightGenome, *WeightGenome) {
	child1 := parent1.Clone()
	child2 := parent2.Clone()

	n := len(child1.Weights)
	if len(child2.Weights) < n {
		n = len(child2.Weights)
	}
	for i := 0; i < n; i++ {
		t := rng.Float64()
		a, b := parent1.Weights[i], parent2.Weights[i]
		child1.Weights[i] = a*t + b*(1-t)
		child2.Weights[i] = a*(1-t) + b*t
	}
	return child1, child2
}
