package strategy

import (
	"math/rand"

	"github.com/signalnine/theoretic/dist"
	"github.com/signalnine/theoretic/perplayer"
)

// Constant always plays the same move, regardless of context. Grounded on
// the source's t4t-games axelrod.rs AlwaysCooperate/AlwaysDefect pattern.
func Constant[V any, M any, U perplayer.Number](move M) Strategy[V, M, U] {
	return Func[V, M, U](func(Context[V, M, U]) M { return move })
}

// UniformRandom picks uniformly at random among the given moves, using
// the process-wide default randomness source.
func UniformRandom[V any, M any, U perplayer.Number](moves []M) Strategy[V, M, U] {
	opts := make([]M, len(moves))
	copy(opts, moves)
	if len(opts) == 0 {
		panic("strategy: UniformRandom requires at least one candidate move")
	}
	return Func[V, M, U](func(Context[V, M, U]) M {
		return opts[dist.Intn(len(opts))]
	})
}

// UniformRandomUsing is UniformRandom with an injected RNG, for
// deterministic tests (spec.md §6's sample_using variant).
func UniformRandomUsing[V any, M any, U perplayer.Number](moves []M, rng *rand.Rand) Strategy[V, M, U] {
	opts := make([]M, len(moves))
	copy(opts, moves)
	if len(opts) == 0 {
		panic("strategy: UniformRandomUsing requires at least one candidate move")
	}
	return Func[V, M, U](func(Context[V, M, U]) M {
		return opts[rng.Intn(len(opts))]
	})
}

// WeightedRandom picks among moves according to distribution d.
func WeightedRandom[V any, M any, U perplayer.Number](d *dist.Distribution[M]) Strategy[V, M, U] {
	return Func[V, M, U](func(Context[V, M, U]) M {
		return d.Sample()
	})
}

// WeightedRandomUsing is WeightedRandom with an injected RNG.
func WeightedRandomUsing[V any, M any, U perplayer.Number](d *dist.Distribution[M], rng *rand.Rand) Strategy[V, M, U] {
	return Func[V, M, U](func(Context[V, M, U]) M {
		return d.SampleUsing(rng)
	})
}

// Periodic cycles through a fixed sequence of moves, one per decision,
// wrapping around. It is stateful: each instance tracks its own position
// in the cycle, so a Player's factory must construct a fresh Periodic per
// match (periodic closes over its own counter, which is exactly what a
// factory closure gives you).
func Periodic[V any, M any, U perplayer.Number](sequence []M) Strategy[V, M, U] {
	if len(sequence) == 0 {
		panic("strategy: Periodic requires a non-empty move sequence")
	}
	seq := make([]M, len(sequence))
	copy(seq, sequence)
	i := 0
	return Func[V, M, U](func(Context[V, M, U]) M {
		move := seq[i%len(seq)]
		i++
		return move
	})
}

// FirstOf tries each candidate strategy in order, using the first whose
// Try function reports ok; the last candidate is expected to always
// succeed (e.g. an unconditional fallback) or FirstOf panics on exhaustion.
type Candidate[V any, M any, U perplayer.Number] struct {
	Try func(ctx Context[V, M, U]) (M, bool)
}

// FirstOf builds a Strategy from an ordered list of candidates, returning
// the first move any candidate is willing to make.
func FirstOf[V any, M any, U perplayer.Number](candidates []Candidate[V, M, U]) Strategy[V, M, U] {
	cs := make([]Candidate[V, M, U], len(candidates))
	copy(cs, candidates)
	return Func[V, M, U](func(ctx Context[V, M, U]) M {
		for _, c := range cs {
			if move, ok := c.Try(ctx); ok {
				return move
			}
		}
		panic("strategy: FirstOf exhausted all candidates without a move")
	})
}

// FromStrategies adapts a list of plain Strategy values into FirstOf
// candidates that always succeed with the underlying strategy's move —
// useful when "first applicable" degenerates to "first in a priority
// list", as with a list of specialist strategies followed by a
// catch-all default.
func FromStrategies[V any, M any, U perplayer.Number](strategies ...Strategy[V, M, U]) []Candidate[V, M, U] {
	out := make([]Candidate[V, M, U], len(strategies))
	for i, s := range strategies {
		s := s
		out[i] = Candidate[V, M, U]{Try: func(ctx Context[V, M, U]) (M, bool) {
			return s.NextMove(ctx), true
		}}
	}
	return out
}
