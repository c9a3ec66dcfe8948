// Package search implements stock search-based strategies for finite
// two-player zero-sum perfect-information games: minimax, alpha-beta
// pruned minimax, and Monte Carlo tree search. Grounded on spec.md §4.8's
// "minimax / total-minimax for two-player finite zero-sum games" and on
// the source's t4t::state_based.rs generate_tree (matched by
// game.DeriveTree) together with its stubbed, never-completed
// state_based_total_minimax — the source leaves total-minimax as a TODO,
// so the search here is designed fresh from the surrounding contract
// rather than transcribed. Node pooling and UCB1 selection for the MCTS
// strategy are grounded on the teacher's mcts/node.go and mcts/search.go.
package search

import (
	"fmt"

	"github.com/signalnine/theoretic/game"
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
	"github.com/signalnine/theoretic/strategy"
	"github.com/signalnine/theoretic/tree"
)

// TwoPlayerGame is what minimax, total-minimax and MCTS all need: a
// finite, playable, perfect-information game (View == State) for exactly
// two players.
type TwoPlayerGame[S any, M any, U perplayer.Number, O record.Outcome[M, U]] interface {
	game.Finite[S, M, U, S]
	game.Playable[S, M, U, S, O]
}

// replay walks from root by following one single-player ply at a time,
// reconstructing the current node from the transcript played so far.
// This only supports games whose Turns nodes carry exactly one player
// (the case DeriveTree produces; Normal's GameTree, whose single Turns
// node lists every player, is not supported) and contain no Chance
// nodes — minimax requires deterministic perfect information.
func replay[S any, M any, U perplayer.Number, O record.Outcome[M, U]](
	root tree.Node[S, M, U, O],
	plies []record.Ply[M],
) (tree.Node[S, M, U, O], error) {
	node := root
	for _, ply := range plies {
		if node.Kind != tree.KindTurns {
			var zero tree.Node[S, M, U, O]
			return zero, errNotSupported
		}
		next, err := node.Next(node.State, []M{ply.Move})
		if err != nil {
			var zero tree.Node[S, M, U, O]
			return zero, err
		}
		node = next
	}
	return node, nil
}

var errNotSupported = fmt.Errorf("search: minimax requires a single-player-per-turn, chance-free game tree")

// Minimax returns an alpha-beta-pruned exhaustive-search strategy: the
// move that maximizes the deciding player's worst-case utility, assuming
// optimal zero-sum-opposed play from the other player.
func Minimax[S any, M comparable, U perplayer.Number, O record.Outcome[M, U]](g TwoPlayerGame[S, M, U, O]) strategy.Strategy[S, M, U] {
	return strategy.Func[S, M, U](func(ctx strategy.Context[S, M, U]) M {
		root := g.GameTree()
		node, err := replay(root, ctx.InProgress.Plies())
		if err != nil {
			node = root
		}
		_, move, ok := minimaxValue(g, node, ctx.MyIndex, nil, nil)
		if !ok {
			panic("search: Minimax found no legal move at a non-terminal node")
		}
		return move
	})
}

// TotalMinimax is Minimax without alpha-beta pruning: it explores every
// node of the subtree rather than cutting off provably-irrelevant
// branches. It always agrees with Minimax's choice of move; it exists
// for games small enough that the simpler, unpruned traversal is
// preferable (and easier to reason about in tests).
func TotalMinimax[S any, M comparable, U perplayer.Number, O record.Outcome[M, U]](g TwoPlayerGame[S, M, U, O]) strategy.Strategy[S, M, U] {
	return strategy.Func[S, M, U](func(ctx strategy.Context[S, M, U]) M {
		root := g.GameTree()
		node, err := replay(root, ctx.InProgress.Plies())
		if err != nil {
			node = root
		}
		_, move, ok := totalMinimaxValue(g, node, ctx.MyIndex)
		if !ok {
			panic("search: TotalMinimax found no legal move at a non-terminal node")
		}
		return move
	})
}

func totalMinimaxValue[S any, M comparable, U perplayer.Number, O record.Outcome[M, U]](
	g TwoPlayerGame[S, M, U, O], node tree.Node[S, M, U, O], maximizer perplayer.Index,
) (U, M, bool) {
	var zeroMove M

	switch node.Kind {
	case tree.KindEnd:
		return node.Outcome.Payoff().At(maximizer), zeroMove, false
	case tree.KindChance:
		panic("search: TotalMinimax does not support Chance nodes")
	}

	player := node.ToMove[0]
	moves := g.PossibleMoves(player, node.State)
	if len(moves) == 0 {
		panic("search: no possible moves at a non-terminal Turns node")
	}

	maximizing := player.Value() == maximizer.Value()

	var bestValue U
	var bestMove M
	haveBest := false

	for _, m := range moves {
		child, err := node.Next(node.State, []M{m})
		if err != nil {
			continue
		}
		value, _, _ := totalMinimaxValue(g, child, maximizer)
		if !haveBest {
			bestValue, bestMove, haveBest = value, m, true
			continue
		}
		if (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			bestValue, bestMove = value, m
		}
	}

	return bestValue, bestMove, true
}

// minimaxValue explores node's subtree with alpha-beta pruning. alpha and
// beta are nil-able bounds — nil means unbounded (-∞/+∞ respectively) —
// so pruning works over any Number-constrained utility type without
// needing a representable sentinel "infinity" (narrow integer utility
// types like int8 have no safe stand-in for it).
func minimaxValue[S any, M comparable, U perplayer.Number, O record.Outcome[M, U]](
	g TwoPlayerGame[S, M, U, O], node tree.Node[S, M, U, O], maximizer perplayer.Index, alpha, beta *U,
) (U, M, bool) {
	var zeroMove M

	switch node.Kind {
	case tree.KindEnd:
		return node.Outcome.Payoff().At(maximizer), zeroMove, false
	case tree.KindChance:
		panic("search: Minimax does not support Chance nodes")
	}

	player := node.ToMove[0]
	moves := g.PossibleMoves(player, node.State)
	if len(moves) == 0 {
		panic("search: no possible moves at a non-terminal Turns node")
	}

	maximizing := player.Value() == maximizer.Value()

	var bestValue U
	var bestMove M
	haveBest := false

	for _, m := range moves {
		child, err := node.Next(node.State, []M{m})
		if err != nil {
			continue
		}
		value, _, _ := minimaxValue(g, child, maximizer, alpha, beta)

		if !haveBest {
			bestValue, bestMove, haveBest = value, m, true
		} else if (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			bestValue, bestMove = value, m
		}

		if maximizing {
			if alpha == nil || bestValue > *alpha {
				v := bestValue
				alpha = &v
			}
		} else {
			if beta == nil || bestValue < *beta {
				v := bestValue
				beta = &v
			}
		}
		if alpha != nil && beta != nil && *alpha >= *beta {
			break
		}
	}

	return bestValue, bestMove, true
}
