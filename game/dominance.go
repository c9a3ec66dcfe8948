package game

import "github.com/signalnine/theoretic/perplayer"

// Dominated reports a domination relationship between two moves for one
// player: dominator always yields at least as much utility as dominated
// (strict: always strictly more), holding every other player's move
// fixed. Grounded on the source's tft::dominated.rs Dominated struct.
type Dominated[M any] struct {
	Dominated M
	Dominator M
	IsStrict  bool
}

// profileUtility returns player idx's utility when every player j plays
// moves[j], by rebuilding the profile key the table was indexed under.
func (n *Normal[M, U]) profileUtility(idx perplayer.Index, moves []M) (U, bool) {
	var zero U
	payoff, ok := n.table[profileKey(moves)]
	if !ok {
		return zero, false
	}
	return payoff.At(idx), true
}

// Dominations finds every domination relationship among player idx's own
// moves: for each ordered pair (dominated, dominator) in player's move
// list, it holds if, for every combination of the other players' moves,
// switching from dominated to dominator never decreases (weak) or always
// strictly increases (strict, when strictOnly) idx's utility, and differs
// in at least one profile.
func (n *Normal[M, U]) Dominations(idx perplayer.Index, strictOnly bool) []Dominated[M] {
	arity := n.moves.Arity()
	own := n.moves.At(idx)

	others := make([]perplayer.Index, 0, arity-1)
	for _, j := range perplayer.Indices(arity) {
		if j.Value() != idx.Value() {
			others = append(others, j)
		}
	}

	var out []Dominated[M]
	for _, dominated := range own {
		for _, dominator := range own {
			if dominated == dominator {
				continue
			}
			if d, ok := n.checkDomination(idx, others, dominated, dominator, strictOnly); ok {
				out = append(out, d)
			}
		}
	}
	return out
}

func (n *Normal[M, U]) checkDomination(idx perplayer.Index, others []perplayer.Index, dominated, dominator M, strictOnly bool) (Dominated[M], bool) {
	arity := n.moves.Arity()
	otherLens := make([]int, len(others))
	otherMoves := make([][]M, len(others))
	for i, j := range others {
		otherMoves[i] = n.moves.At(j)
		otherLens[i] = len(otherMoves[i])
	}

	indices := make([]int, len(others))
	everStrict := false
	alwaysStrict := true
	alwaysAtLeastAsGood := true

	for {
		profileDominated := make([]M, arity)
		profileDominator := make([]M, arity)
		for k, j := range others {
			profileDominated[j.Value()] = otherMoves[k][indices[k]]
			profileDominator[j.Value()] = otherMoves[k][indices[k]]
		}
		profileDominated[idx.Value()] = dominated
		profileDominator[idx.Value()] = dominator

		uDominated, ok1 := n.profileUtility(idx, profileDominated)
		uDominator, ok2 := n.profileUtility(idx, profileDominator)
		if ok1 && ok2 {
			if uDominator < uDominated {
				alwaysAtLeastAsGood = false
			}
			if uDominator > uDominated {
				everStrict = true
			} else {
				alwaysStrict = false
			}
		}

		if len(others) == 0 || !incrementMixedOdometer(indices, otherLens) {
			break
		}
	}

	if !alwaysAtLeastAsGood || !everStrict {
		return Dominated[M]{}, false
	}
	if strictOnly && !alwaysStrict {
		return Dominated[M]{}, false
	}
	return Dominated[M]{Dominated: dominated, Dominator: dominator, IsStrict: alwaysStrict}, true
}

// EliminateDominated repeatedly removes strictly (or, if strictOnly is
// false, weakly) dominated moves from every player's move list until no
// further eliminations are possible, returning a new reduced Normal game
// and the sequence of eliminations applied, in order.
func (n *Normal[M, U]) EliminateDominated(strictOnly bool) (*Normal[M, U], []Dominated[M]) {
	remaining := perplayer.Map(n.moves, func(moves []M) []M {
		cp := make([]M, len(moves))
		copy(cp, moves)
		return cp
	})

	var eliminated []Dominated[M]
	for {
		reduced, err := FromTable(remaining, n.restrictedTable(remaining))
		if err != nil {
			break
		}

		progressed := false
		for _, idx := range perplayer.Indices(remaining.Arity()) {
			doms := reduced.Dominations(idx, strictOnly)
			if len(doms) == 0 {
				continue
			}
			d := doms[0]
			remaining = remaining.WithAt(idx, removeMove(remaining.At(idx), d.Dominated))
			eliminated = append(eliminated, d)
			progressed = true
			break
		}
		if !progressed {
			break
		}
	}

	final, err := FromTable(remaining, n.restrictedTable(remaining))
	if err != nil {
		return n, eliminated
	}
	return final, eliminated
}

func removeMove[M comparable](moves []M, target M) []M {
	out := make([]M, 0, len(moves))
	for _, m := range moves {
		if m != target {
			out = append(out, m)
		}
	}
	return out
}

// restrictedTable builds the payoff map for the sub-game restricted to
// the given per-player move lists, drawn from n's existing table.
func (n *Normal[M, U]) restrictedTable(moves perplayer.PerPlayer[[]M]) map[string]perplayer.Payoff[U] {
	arity := moves.Arity()
	lens := make([]int, arity)
	for i, idx := range perplayer.Indices(arity) {
		lens[i] = len(moves.At(idx))
	}
	out := make(map[string]perplayer.Payoff[U])
	indices := make([]int, arity)
	for {
		profile := make([]M, arity)
		for i, idx := range perplayer.Indices(arity) {
			profile[i] = moves.At(idx)[indices[i]]
		}
		if payoff, ok := n.table[profileKey(profile)]; ok {
			out[profileKey(profile)] = payoff
		}
		if !incrementMixedOdometer(indices, lens) {
			break
		}
	}
	return out
}

// PureNashEquilibria enumerates every profile (as a slice of moves, one
// per player in index order) at which no player can unilaterally deviate
// to strictly increase their own utility.
func (n *Normal[M, U]) PureNashEquilibria() [][]M {
	arity := n.moves.Arity()
	lens := make([]int, arity)
	moveLists := make([][]M, arity)
	for i, idx := range perplayer.Indices(arity) {
		moveLists[i] = n.moves.At(idx)
		lens[i] = len(moveLists[i])
	}

	var equilibria [][]M
	indices := make([]int, arity)
	for {
		profile := make([]M, arity)
		for i := range profile {
			profile[i] = moveLists[i][indices[i]]
		}
		if n.isEquilibrium(profile, moveLists) {
			cp := make([]M, arity)
			copy(cp, profile)
			equilibria = append(equilibria, cp)
		}
		if !incrementMixedOdometer(indices, lens) {
			break
		}
	}
	return equilibria
}

func (n *Normal[M, U]) isEquilibrium(profile []M, moveLists [][]M) bool {
	arity := len(profile)
	if _, ok := n.profileUtility(perplayer.MustIndex(0, arity), profile); !ok {
		return false
	}
	for p := 0; p < arity; p++ {
		idx := perplayer.MustIndex(p, arity)
		current, ok := n.profileUtility(idx, profile)
		if !ok {
			return false
		}
		for _, alt := range moveLists[p] {
			if alt == profile[p] {
				continue
			}
			deviated := make([]M, arity)
			copy(deviated, profile)
			deviated[p] = alt
			altUtil, ok := n.profileUtility(idx, deviated)
			if !ok {
				continue
			}
			if altUtil > current {
				return false
			}
		}
	}
	return true
}
