// Package tree implements GameTree, the lazy three-variant decision tree
// (Turns, Chance, End) every game reduces to. Grounded on the source's
// t4t::kind/turn modules (Action::Players/Chance/End) and, in Go idiom, on
// the teacher's node-as-struct-with-callback shape (mcts/node.go): rather
// than a closure-carrying enum, each Node is a small tagged struct whose
// transition function is invoked by the caller (game.Play) rather than by
// the node itself, matching spec.md §9's guidance for languages where a
// sum-type-of-closures is awkward to express directly.
package tree

import (
	"github.com/signalnine/theoretic/dist"
	"github.com/signalnine/theoretic/perplayer"
)

// Kind tags which of the three node shapes a Node holds.
type Kind int

const (
	KindTurns Kind = iota
	KindChance
	KindEnd
)

// TurnsNext is the transition closure for a Turns node: given the current
// state and exactly len(ToMove) moves, positionally aligned to ToMove,
// produce the next node or fail with InvalidMove.
type TurnsNext[S any, M any, U perplayer.Number, O any] func(state S, moves []M) (Node[S, M, U, O], error)

// ChanceNext is the transition closure for a Chance node.
type ChanceNext[S any, M any, U perplayer.Number, O any] func(state S, move M) (Node[S, M, U, O], error)

// Node is a tagged value with three variants: Turns (one or more players
// move simultaneously), Chance (the environment moves according to a
// distribution), or End (the game is over and produced outcome O).
//
// The tree is lazy: TurnsNext/ChanceNext are invoked on demand by the
// engine that walks the tree (game.Play), not eagerly when the node is
// constructed. It is pure: invoking the same closure twice with the same
// inputs must yield an equivalent subtree modulo Chance sampling — callers
// must not mutate state captured by closures across invocations.
type Node[S any, M any, U perplayer.Number, O any] struct {
	Kind  Kind
	State S

	// Turns fields.
	ToMove []perplayer.Index
	Next   TurnsNext[S, M, U, O]

	// Chance fields.
	Distribution *dist.Distribution[M]
	ChanceTo     ChanceNext[S, M, U, O]

	// End field.
	Outcome O
}

// End constructs a terminal node.
func End[S any, M any, U perplayer.Number, O any](state S, outcome O) Node[S, M, U, O] {
	return Node[S, M, U, O]{Kind: KindEnd, State: state, Outcome: outcome}
}

// Player constructs a single-player turn node.
func Player[S any, M any, U perplayer.Number, O any](state S, p perplayer.Index, next TurnsNext[S, M, U, O]) Node[S, M, U, O] {
	return Players(state, []perplayer.Index{p}, next)
}

// Players constructs a turn node for a subset of players moving
// simultaneously. to_move must be non-empty and contain no duplicates
// (spec.md §3's GameTree invariant); next must be invoked with exactly
// len(toMove) moves, positionally aligned.
func Players[S any, M any, U perplayer.Number, O any](state S, toMove []perplayer.Index, next TurnsNext[S, M, U, O]) Node[S, M, U, O] {
	if len(toMove) == 0 {
		panic("tree: Turns node must have at least one player to move")
	}
	seen := make(map[int]bool, len(toMove))
	for _, idx := range toMove {
		if seen[idx.Value()] {
			panic("tree: Turns node's to_move list contains a duplicate player")
		}
		seen[idx.Value()] = true
	}
	cp := make([]perplayer.Index, len(toMove))
	copy(cp, toMove)
	return Node[S, M, U, O]{Kind: KindTurns, State: state, ToMove: cp, Next: wrapTurnsNext(len(cp), next)}
}

// AllPlayers constructs a turn node where every one of arity players
// moves simultaneously; the closure receives the raw move slice, one move
// per player in index order, not a Profile.
func AllPlayers[S any, M any, U perplayer.Number, O any](state S, arity int, next func(S, []M) (Node[S, M, U, O], error)) Node[S, M, U, O] {
	return Players(state, perplayer.Indices(arity), next)
}

// Chance constructs a chance node: the environment draws a move from dist
// and the game transitions accordingly.
func Chance[S any, M any, U perplayer.Number, O any](state S, distribution *dist.Distribution[M], next ChanceNext[S, M, U, O]) Node[S, M, U, O] {
	return Node[S, M, U, O]{Kind: KindChance, State: state, Distribution: distribution, ChanceTo: next}
}

// wrapTurnsNext enforces the assertion-level precondition from spec.md
// §4.4: next must be invoked with exactly n moves. A caller that reaches
// this with the wrong count has a bug in the tree walker, not in a
// strategy or game definition, so it panics rather than returning an
// error.
func wrapTurnsNext[S any, M any, U perplayer.Number, O any](n int, next TurnsNext[S, M, U, O]) TurnsNext[S, M, U, O] {
	return func(state S, moves []M) (Node[S, M, U, O], error) {
		if len(moves) != n {
			panic("tree: Turns transition invoked with wrong number of moves")
		}
		return next(state, moves)
	}
}
