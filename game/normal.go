package game

import (
	"fmt"

	"github.com/signalnine/theoretic/gameerr"
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
	"github.com/signalnine/theoretic/tree"
)

// Normal is a finite payoff-table game: every player chooses a move from
// their own move list, simultaneously, and the table maps the resulting
// profile to a payoff. Grounded on the source's Normal/big_normal form
// (tft::form.rs's Sim marker plus a flat payoff table) and spec.md §4.6.
type Normal[M comparable, U perplayer.Number] struct {
	moves perplayer.PerPlayer[[]M]
	table map[string]perplayer.Payoff[U]
}

// Symmetric builds a Normal game where every player shares the same move
// list and a flat payoff table of length len(moves)^arity, laid out with
// the last player varying fastest (spec.md §6's index formula). The
// payoff for player 0 given profile (i_0, ..., i_{P-1}) is table[Σ i_j ·
// k^(P-1-j)]; other players' payoffs are obtained by rotating that same
// entry so that symmetry only requires one table.
func Symmetric[M comparable, U perplayer.Number](arity int, moves []M, table []U) (*Normal[M, U], error) {
	if arity <= 0 {
		return nil, fmt.Errorf("game: Symmetric requires a positive arity, got %d", arity)
	}
	k := len(moves)
	if k == 0 {
		return nil, fmt.Errorf("game: Symmetric requires a non-empty move list")
	}
	want := 1
	for i := 0; i < arity; i++ {
		want *= k
	}
	if len(table) != want {
		return nil, fmt.Errorf("game: Symmetric table length %d does not equal |moves|^P = %d", len(table), want)
	}

	perPlayerMoves := perplayer.Generate(arity, func(perplayer.Index) []M {
		cp := make([]M, k)
		copy(cp, moves)
		return cp
	})

	out := make(map[string]perplayer.Payoff[U], want)
	indices := make([]int, arity)
	for {
		key := symmetricKey(indices, moves)
		out[key] = payoffForProfile(indices, k, table, arity)
		if !incrementOdometer(indices, k) {
			break
		}
	}

	return &Normal[M, U]{moves: perPlayerMoves, table: out}, nil
}

// payoffForProfile computes, for the given move-index profile, the payoff
// to every player by rotating the base table lookup — player j's utility
// is whatever player 0 would earn in the profile obtained by rotating the
// indices so that j's choice occupies slot 0.
func payoffForProfile[U perplayer.Number](indices []int, k int, table []U, arity int) perplayer.Payoff[U] {
	values := make([]U, arity)
	for player := 0; player < arity; player++ {
		rotated := make([]int, arity)
		for j := 0; j < arity; j++ {
			rotated[j] = indices[(player+j)%arity]
		}
		flat := flatIndex(rotated, k)
		values[player] = table[flat]
	}
	return perplayer.NewPayoff(perplayer.Of(values...))
}

// flatIndex computes Σ i_j · k^(P-1-j), spec.md §6's payoff table layout.
func flatIndex(indices []int, k int) int {
	flat := 0
	for _, i := range indices {
		flat = flat*k + i
	}
	return flat
}

func incrementOdometer(indices []int, k int) bool {
	for i := len(indices) - 1; i >= 0; i-- {
		indices[i]++
		if indices[i] < k {
			return true
		}
		indices[i] = 0
	}
	return false
}

// FromTable builds a Normal game from an explicit per-player move list and
// an explicit payoff for every legal profile; construction fails if any
// legal profile (every combination of each player's moves) is missing
// from payoffs.
func FromTable[M comparable, U perplayer.Number](moves perplayer.PerPlayer[[]M], payoffs map[string]perplayer.Payoff[U]) (*Normal[M, U], error) {
	arity := moves.Arity()
	indices := make([]int, arity)
	lens := make([]int, arity)
	for i, idx := range perplayer.Indices(arity) {
		lens[i] = len(moves.At(idx))
		if lens[i] == 0 {
			return nil, fmt.Errorf("game: FromTable player %s has no moves", idx)
		}
	}

	out := make(map[string]perplayer.Payoff[U], len(payoffs))
	for {
		profileMoves := make([]M, arity)
		for i, idx := range perplayer.Indices(arity) {
			profileMoves[i] = moves.At(idx)[indices[i]]
		}
		key := profileKey(profileMoves)
		payoff, ok := payoffs[key]
		if !ok {
			return nil, fmt.Errorf("game: FromTable missing payoff for profile %v", profileMoves)
		}
		out[key] = payoff

		if !incrementMixedOdometer(indices, lens) {
			break
		}
	}

	return &Normal[M, U]{moves: moves, table: out}, nil
}

func incrementMixedOdometer(indices, lens []int) bool {
	for i := len(indices) - 1; i >= 0; i-- {
		indices[i]++
		if indices[i] < lens[i] {
			return true
		}
		indices[i] = 0
	}
	return false
}

func symmetricKey[M comparable](indices []int, moves []M) string {
	ms := make([]M, len(indices))
	for i, v := range indices {
		ms[i] = moves[v]
	}
	return profileKey(ms)
}

func profileKey[M any](moves []M) string {
	return fmt.Sprintf("%v", moves)
}

// NumPlayers implements Game.
func (n *Normal[M, U]) NumPlayers() int { return n.moves.Arity() }

// StateView implements Game; normal-form games are perfect information, so
// the view is the move list unchanged.
func (n *Normal[M, U]) StateView(state perplayer.PerPlayer[[]M], _ perplayer.Index) perplayer.PerPlayer[[]M] {
	return state
}

// PossibleMoves implements Finite.
func (n *Normal[M, U]) PossibleMoves(player perplayer.Index, _ perplayer.PerPlayer[[]M]) []M {
	return n.moves.At(player)
}

// Payoff looks up the table entry for profile, or reports InvalidMove if
// any player's move is not in their own list.
func (n *Normal[M, U]) Payoff(profile record.Profile[M]) (perplayer.Payoff[U], error) {
	arity := n.moves.Arity()
	moves := make([]M, arity)
	for i, idx := range perplayer.Indices(arity) {
		mv := profile.At(idx)
		if !contains(n.moves.At(idx), mv) {
			return perplayer.Payoff[U]{}, &gameerr.InvalidMove[record.Profile[M], M]{
				State:  profile,
				Player: idx,
				Move:   mv,
			}
		}
		moves[i] = mv
	}
	payoff, ok := n.table[profileKey(moves)]
	if !ok {
		return perplayer.Payoff[U]{}, &gameerr.InvalidMove[record.Profile[M], M]{State: profile, Player: perplayer.MustIndex(0, arity), Move: moves[0]}
	}
	return payoff, nil
}

func contains[M comparable](moves []M, m M) bool {
	for _, cand := range moves {
		if cand == m {
			return true
		}
	}
	return false
}

// GameTree implements Playable: a single Turns node listing every player,
// whose transition looks up the tabulated payoff and immediately
// terminates — spec.md §9's "simultaneous games are a one-node tree"
// collapse.
func (n *Normal[M, U]) GameTree() tree.Node[perplayer.PerPlayer[[]M], M, U, record.SimultaneousOutcome[M, U]] {
	arity := n.moves.Arity()
	return tree.AllPlayers(n.moves, arity, func(state perplayer.PerPlayer[[]M], moves []M) (tree.Node[perplayer.PerPlayer[[]M], M, U, record.SimultaneousOutcome[M, U]], error) {
		profile := record.NewProfile(perplayer.Of(moves...))
		payoff, err := n.Payoff(profile)
		if err != nil {
			return tree.Node[perplayer.PerPlayer[[]M], M, U, record.SimultaneousOutcome[M, U]]{}, err
		}
		outcome := record.SimultaneousOutcome[M, U]{Profile: profile, Payout: payoff}
		return tree.End[perplayer.PerPlayer[[]M], M, U, record.SimultaneousOutcome[M, U]](state, outcome), nil
	})
}

var (
	_ Game[perplayer.PerPlayer[[]int], int, int, perplayer.PerPlayer[[]int]]     = (*Normal[int, int])(nil)
	_ Finite[perplayer.PerPlayer[[]int], int, int, perplayer.PerPlayer[[]int]]   = (*Normal[int, int])(nil)
	_ Playable[perplayer.PerPlayer[[]int], int, int, perplayer.PerPlayer[[]int], record.SimultaneousOutcome[int, int]] = (*Normal[int, int])(nil)
)
