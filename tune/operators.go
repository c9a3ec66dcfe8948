package tune

import (
	"math"
	"math/rand"
)

// MutationOperator perturbs a genome, mirroring the teacher's
// evolution/operators.MutationOperator interface (Mutate/Probability),
// generalized from per-field genome edits to per-weight perturbation.
type MutationOperator interface {
	Mutate(g *WeightGenome, rng *rand.Rand) *WeightGenome
	Probability() float64
}

// BaseMutation holds the apply probability shared by every mutation
// operator, grounded on operators.BaseMutation.
type BaseMutation struct {
	probability float64
}

// Probability is the chance this operator applies on a given call.
func (m BaseMutation) Probability() float64 { return m.probability }

// ShouldApply rolls the dice for whether this operator fires.
func (m BaseMutation) ShouldApply(rng *rand.Rand) bool {
	return rng.Float64() < m.probability
}

// GaussianMutation perturbs a single randomly-chosen weight by noise
// drawn from N(0, sigma), clamped at zero since WeightedRandom rejects
// negative weights.
type GaussianMutation struct {
	BaseMutation
	sigma float64
}

// NewGaussianMutation builds a Gaussian perturbation operator.
func NewGaussianMutation(probability, sigma float64) *GaussianMutation {
	return &GaussianMutation{BaseMutation: BaseMutation{probability: probability}, sigma: sigma}
}

// Mutate returns a clone of g with one weight perturbed.
func (m *GaussianMutation) Mutate(g *WeightGenome, rng *rand.Rand) *WeightGenome {
	clone := g.Clone()
	if len(clone.Weights) == 0 {
		return clone
	}
	i := rng.Intn(len(clone.Weights))
	clone.Weights[i] += rng.NormFloat64() * m.sigma
	if clone.Weights[i] < 0 {
		clone.Weights[i] = 0
	}
	return clone
}

// RescaleMutation multiplies every weight by a common random factor,
// useful for escaping a local optimum that only differs from a better
// one by overall scale (WeightedRandom normalizes, so this is usually a
// no-op — it matters only in combination with a subsequent per-weight
// mutation).
type RescaleMutation struct {
	BaseMutation
	maxFactor float64
}

// NewRescaleMutation builds a uniform-rescale operator; factors are drawn
// from [1/maxFactor, maxFactor].
func NewRescaleMutation(probability, maxFactor float64) *RescaleMutation {
	if maxFactor < 1 {
		maxFactor = 1
	}
	return &RescaleMutation{BaseMutation: BaseMutation{probability: probability}, maxFactor: maxFactor}
}

// Mutate returns a clone of g with every weight rescaled by one factor.
func (m *RescaleMutation) Mutate(g *WeightGenome, rng *rand.Rand) *WeightGenome {
	clone := g.Clone()
	logMax := 0.0
	if m.maxFactor > 1 {
		logMax = math.Log(m.maxFactor)
	}
	factor := math.Exp(rng.Float64()*2*logMax - logMax)
	for i := range clone.Weights {
		clone.Weights[i] *= factor
	}
	return clone
}

// MutationPipeline applies each registered operator in turn, according
// to its own probability, mirroring operators.MutationPipeline.Apply.
type MutationPipeline struct {
	operators []MutationOperator
}

// NewMutationPipeline wraps a set of operators as a single pipeline.
func NewMutationPipeline(operators ...MutationOperator) *MutationPipeline {
	return &MutationPipeline{operators: operators}
}

// Apply runs every operator over g in sequence, returning the resulting
// genome (g itself is never mutated in place).
func (p *MutationPipeline) Apply(g *WeightGenome, rng *rand.Rand) *WeightGenome {
	current := g
	for _, op := range p.operators {
		if rng.Float64() < op.Probability() {
			current = op.Mutate(current, rng)
		}
	}
	return current
}

// DefaultPipeline is the stock mutation pipeline: mostly gentle Gaussian
// perturbation, with an occasional rescale to escape scale-locked optima.
func DefaultPipeline() *MutationPipeline {
	return NewMutationPipeline(
		NewGaussianMutation(0.8, 0.15),
		NewRescaleMutation(0.05, 2.0),
	)
}
