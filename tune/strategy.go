package tune

import (
	"fmt"

	"github.com/signalnine/theoretic/dist"
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/strategy"
)

// ToStrategy builds a WeightedRandom strategy over moves with weights
// taken from g, in the same order. It panics if g has a different
// number of weights than moves — callers should always size genomes
// with NumWeights == len(moves).
func ToStrategy[V any, M any, U perplayer.Number](g *WeightGenome, moves []M) strategy.Strategy[V, M, U] {
	if len(g.Weights) != len(moves) {
		panic(fmt.Sprintf("tune: genome has %d weights, expected %d for %d moves", len(g.Weights), len(moves), len(moves)))
	}
	d, err := dist.New(moves, g.Weights)
	if err != nil {
		// A zero-sum weight vector happens when every weight mutated to
		// zero; fall back to uniform weights rather than propagating a
		// construction error through the strategy.Strategy interface,
		// which has no error return.
		uniform := make([]float64, len(moves))
		for i := range uniform {
			uniform[i] = 1
		}
		d, err = dist.New(moves, uniform)
		if err != nil {
			panic(err)
		}
	}
	return strategy.WeightedRandom[V, M, U](d)
}
