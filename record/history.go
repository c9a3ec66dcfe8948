package record

import "github.com/signalnine/theoretic/perplayer"

// History is the record for a repeated game: an ordered sequence of
// completed stage-game outcomes plus a running score equal to the
// element-wise sum of all stage payoffs. Grounded on the source's
// t4t::History, which recomputes score as payoffs are added rather than
// caching a value that could drift — Add below does the same.
type History[M any, U perplayer.Number] struct {
	outcomes []Outcome[M, U]
	score    perplayer.Payoff[U]
	arity    int
}

// NewHistory constructs an empty history for a game of the given arity.
func NewHistory[M any, U perplayer.Number](arity int) History[M, U] {
	return History[M, U]{score: perplayer.Zeros[U](arity), arity: arity}
}

// Add appends a completed stage outcome and updates the running score
// atomically: score always equals the sum of the payoffs of every
// contained outcome (spec.md §3's History invariant).
func (h History[M, U]) Add(outcome Outcome[M, U]) History[M, U] {
	outcomes := make([]Outcome[M, U], len(h.outcomes)+1)
	copy(outcomes, h.outcomes)
	outcomes[len(h.outcomes)] = outcome
	return History[M, U]{
		outcomes: outcomes,
		score:    h.score.Add(outcome.Payoff()),
		arity:    h.arity,
	}
}

// Outcomes returns the stage outcomes in chronological order.
func (h History[M, U]) Outcomes() []Outcome[M, U] {
	cp := make([]Outcome[M, U], len(h.outcomes))
	copy(cp, h.outcomes)
	return cp
}

// Score is the running sum of all contained stage payoffs.
func (h History[M, U]) Score() perplayer.Payoff[U] { return h.score }

// Rounds is the number of completed stage outcomes.
func (h History[M, U]) Rounds() int { return len(h.outcomes) }

func (h History[M, U]) Payoff() perplayer.Payoff[U] { return h.score }

func (h History[M, U]) Plies() []Ply[M] {
	var plies []Ply[M]
	for _, outcome := range h.outcomes {
		plies = append(plies, outcome.Plies()...)
	}
	return plies
}

func (h History[M, U]) Len() int {
	total := 0
	for _, outcome := range h.outcomes {
		total += outcome.Len()
	}
	return total
}

func (h History[M, U]) Transcript() Transcript[M] {
	return NewTranscript(h.Plies())
}

func (h History[M, U]) ByPlayer(player perplayer.Index) []Ply[M] {
	return byPlayer(h.Plies(), player)
}

func (h History[M, U]) ByChance() []Ply[M] {
	return byChance(h.Plies())
}

func (h History[M, U]) Counts() map[int]int {
	return countPlies(h.Plies())
}

var _ Outcome[int, int] = History[int, int]{}
