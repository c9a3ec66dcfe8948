package game

import (
	"errors"

	"github.com/signalnine/theoretic/gameerr"
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
	"github.com/signalnine/theoretic/tree"
)

// DeriveTree adapts a StateBased game into a Playable whose GameTree is
// built lazily by repeatedly consulting NextTurn/NextState/
// CheckFinalState. Grounded on the source's t4t::state_based.rs, which
// performs the identical derivation from the same four primitives.
//
// Every DeriveTree node is single-player (NextTurn names exactly one
// player to move next); games with genuinely simultaneous turns should
// build a GameTree directly instead, as Normal's GameTree does.
func DeriveTree[S any, M any, U perplayer.Number, V any](g StateBased[S, M, U, V]) tree.Node[S, M, U, record.SequentialOutcome[M, U]] {
	return stateBasedNode(g, g.InitialState(), record.NewTranscript[M](nil))
}

func stateBasedNode[S any, M any, U perplayer.Number, V any](
	g StateBased[S, M, U, V],
	state S,
	so record.Transcript[M],
) tree.Node[S, M, U, record.SequentialOutcome[M, U]] {
	player := g.NextTurn(state)

	if payoff, ok := g.CheckFinalState(player, state); ok {
		return tree.End[S, M, U, record.SequentialOutcome[M, U]](state, record.SequentialOutcome[M, U]{
			Seq:    so,
			Payout: payoff,
		})
	}

	return tree.Player(state, player, func(s S, moves []M) (tree.Node[S, M, U, record.SequentialOutcome[M, U]], error) {
		move := moves[0]
		next, err := g.NextState(player, move, s)
		var noNext *gameerr.NoNextState[M]
		if errors.As(err, &noNext) {
			return tree.Node[S, M, U, record.SequentialOutcome[M, U]]{}, err
		}
		if err != nil {
			return tree.Node[S, M, U, record.SequentialOutcome[M, U]]{}, &gameerr.InvalidMove[S, M]{
				State:  s,
				Player: player,
				Move:   move,
			}
		}
		appended := so.Append(record.NewPlayerPly(player, move))
		return stateBasedNode(g, next, appended), nil
	})
}

// StateBasedPlayable adapts a StateBased into a Playable by delegating
// GameTree to DeriveTree.
type StateBasedPlayable[S any, M any, U perplayer.Number, V any] struct {
	StateBased[S, M, U, V]
}

func (p StateBasedPlayable[S, M, U, V]) GameTree() tree.Node[S, M, U, record.SequentialOutcome[M, U]] {
	return DeriveTree[S, M, U, V](p.StateBased)
}

var _ Playable[int, int, int, int, record.SequentialOutcome[int, int]] = StateBasedPlayable[int, int, int, int]{}
