// Package game ties together tree, strategy and record into the four
// game-shaped interfaces spec.md §4 describes (Game, Finite, Playable,
// StateBased) plus the executor that plays a Playable to completion.
// Grounded on the source's t4t::Game/Playable traits and, for the walking
// loop itself, on the teacher's mcts/search.go playout loop (drive a tree
// one decision at a time, collecting a transcript as you go).
package game

import (
	"reflect"

	"github.com/signalnine/theoretic/gameerr"
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
	"github.com/signalnine/theoretic/strategy"
	"github.com/signalnine/theoretic/tree"
)

// Game is the minimal shape every game implements: how many players, and
// what a given player is allowed to see of a state.
type Game[S any, M any, U perplayer.Number, V any] interface {
	NumPlayers() int
	StateView(state S, player perplayer.Index) V
}

// Finite additionally exposes the set of legal moves for a player at a
// state, enabling exhaustive search (minimax, equilibrium enumeration).
type Finite[S any, M any, U perplayer.Number, V any] interface {
	Game[S, M, U, V]
	PossibleMoves(player perplayer.Index, state S) []M
}

// Playable is a game that can actually be driven to completion: it
// exposes a lazy GameTree rooted at its initial state, and produces an
// outcome O on the End node.
type Playable[S any, M any, U perplayer.Number, V any, O record.Outcome[M, U]] interface {
	Game[S, M, U, V]
	GameTree() tree.Node[S, M, U, O]
}

// StateBased is the common case: a game defined by an initial state, a
// turn-order function, a transition function, and a terminal check,
// rather than by hand-building a GameTree directly. DeriveTree adapts it
// into a Playable.
type StateBased[S any, M any, U perplayer.Number, V any] interface {
	Game[S, M, U, V]
	InitialState() S
	NextTurn(state S) perplayer.Index
	NextState(player perplayer.Index, move M, state S) (S, error)
	CheckFinalState(player perplayer.Index, state S) (perplayer.Payoff[U], bool)
}

// Play drives a Playable to completion, asking each strategy for a move
// at every Turns node, sampling Chance nodes from their distribution, and
// returning the outcome at the End node. It returns the first
// gameerr.InvalidMove or gameerr.NoNextState a transition reports; a game
// tree that only ever returns those two error shapes (spec.md §7) is the
// contract Play relies on.
func Play[S any, M any, U perplayer.Number, V any, O record.Outcome[M, U]](
	g Playable[S, M, U, V, O],
	strategies perplayer.PerPlayer[strategy.Strategy[V, M, U]],
) (O, error) {
	var zero O

	node := g.GameTree()
	transcript := record.NewTranscript[M](nil)
	hist := record.NewHistory[M, U](g.NumPlayers())
	score := perplayer.Zeros[U](g.NumPlayers())

	for {
		// A repeated game's state (RepeatedState) carries the stages completed
		// so far: strategies see them as History and Score, and InProgress
		// restarts whenever a new stage begins.
		if sv := reflect.ValueOf(node.State); sv.Kind() == reflect.Struct {
			if f := sv.FieldByName("Completed"); f.IsValid() && f.CanInterface() {
				if h, ok := f.Interface().(record.History[M, U]); ok && h.Rounds() != hist.Rounds() {
					hist, score = h, h.Score()
					transcript = record.NewTranscript[M](nil)
				}
			}
		}

		switch node.Kind {
		case tree.KindTurns:
			moves := make([]M, len(node.ToMove))
			for i, idx := range node.ToMove {
				view := g.StateView(node.State, idx)
				ctx := strategy.Context[V, M, U]{
					MyIndex:    idx,
					StateView:  view,
					InProgress: transcript,
					History:    hist,
					Score:      score,
				}
				mv := strategies.At(idx).NextMove(ctx)
				moves[i] = mv
				transcript = transcript.Append(record.NewPlayerPly(idx, mv))
			}
			next, err := node.Next(node.State, moves)
			if err != nil {
				return zero, err
			}
			node = next

		case tree.KindChance:
			mv := node.Distribution.Sample()
			transcript = transcript.Append(record.NewChancePly(mv))
			next, err := node.ChanceTo(node.State, mv)
			if err != nil {
				return zero, err
			}
			node = next

		case tree.KindEnd:
			return node.Outcome, nil

		default:
			var unreachable M
			return zero, &gameerr.NoNextState[M]{Move: unreachable}
		}
	}
}
