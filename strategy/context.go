// Package strategy implements the Strategy/Context/Player triad: how a
// decision is computed from the visible state and history (spec.md §4.8),
// plus the stock strategies the core must provide.
package strategy

import (
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
)

// Context is what a strategy sees at a decision point. It is read-only
// from the strategy's perspective — every field is a value type or an
// immutable record, so a strategy cannot corrupt the engine's bookkeeping
// by holding onto a Context past the call that produced it.
type Context[V any, M any, U perplayer.Number] struct {
	// MyIndex is the deciding player's own index.
	MyIndex perplayer.Index
	// StateView is the (possibly redacted) view of game state visible to
	// this player — identity for perfect-information games.
	StateView V
	// InProgress is the transcript of the current iteration so far.
	InProgress record.Transcript[M]
	// History is the record of past iterations, for repeated games. Empty
	// for a single-iteration game.
	History record.History[M, U]
	// Score is the cumulative payoff across past iterations. Zero for a
	// single-iteration game.
	Score perplayer.Payoff[U]
}

// Strategy is a callable that, given a Context, returns a move. A
// Strategy may be stateful across calls within one match (e.g.
// remembering the opponent's last move) but must be reconstructable from
// scratch for each new matchup — see Player.
type Strategy[V any, M any, U perplayer.Number] interface {
	NextMove(ctx Context[V, M, U]) M
}

// Func adapts a plain function to the Strategy interface, for strategies
// with no state to carry between decisions.
type Func[V any, M any, U perplayer.Number] func(ctx Context[V, M, U]) M

func (f Func[V, M, U]) NextMove(ctx Context[V, M, U]) M { return f(ctx) }
