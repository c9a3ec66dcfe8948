// Package tournament implements Matchup, Tournament and Score: enumerating
// player assignments, playing matches (optionally in parallel), and
// aggregating utility (spec.md §4.9). Grounded on the source's
// t4t::matchup.rs/score.rs for the data shapes, and on the teacher's
// simulation/parallel.go worker-pool-over-channels pattern for parallel
// execution.
package tournament

import (
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/strategy"
)

// Matchup is a fixed assignment of one Player per seat, ready to play.
type Matchup[V any, M any, U perplayer.Number] struct {
	players perplayer.PerPlayer[strategy.Player[V, M, U]]
}

// NewMatchup builds a Matchup from a per-seat player assignment.
func NewMatchup[V any, M any, U perplayer.Number](players perplayer.PerPlayer[strategy.Player[V, M, U]]) Matchup[V, M, U] {
	return Matchup[V, M, U]{players: players}
}

// Players returns the per-seat player assignment.
func (m Matchup[V, M, U]) Players() perplayer.PerPlayer[strategy.Player[V, M, U]] {
	return m.players
}

// Names returns the per-seat player names, the key a Tournament's results
// and Score are indexed by.
func (m Matchup[V, M, U]) Names() perplayer.PerPlayer[string] {
	return perplayer.Map(m.players, func(p strategy.Player[V, M, U]) string { return p.Name })
}

// Strategies draws a fresh Strategy instance from each seat's player, per
// spec.md §4.8: "each match draws a new strategy from each player."
func (m Matchup[V, M, U]) Strategies() perplayer.PerPlayer[strategy.Strategy[V, M, U]] {
	return perplayer.Map(m.players, func(p strategy.Player[V, M, U]) strategy.Strategy[V, M, U] {
		return p.NewStrategy()
	})
}
