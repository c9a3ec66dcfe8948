package tournament

import (
	"runtime"
	"sync"

	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
	"github.com/signalnine/theoretic/strategy"
)

// PlayFunc drives one matchup's strategies to a completed outcome. A
// Tournament is built around a PlayFunc rather than a concrete Playable
// so this package never needs to depend on the game package — callers
// supply `func(s) (O, error) { return game.Play(g, s) }` for their chosen
// game g.
type PlayFunc[V any, M any, U perplayer.Number, O record.Outcome[M, U]] func(perplayer.PerPlayer[strategy.Strategy[V, M, U]]) (O, error)

// PlayResult is the result of one playing of one matchup: either a
// completed outcome or the error a failed match produced. Failed matches
// are surfaced here, never thrown (spec.md §4.9).
type PlayResult[O any] struct {
	Outcome O
	Err     error
}

// Tournament enumerates matchups from a shared game and a player roster,
// plays each (optionally in parallel across matchups; sequential within
// a match, per spec.md §5), and aggregates utility into a Score.
type Tournament[V any, M any, U perplayer.Number, O record.Outcome[M, U]] struct {
	play     PlayFunc[V, M, U, O]
	arity    int
	matchups []Matchup[V, M, U]
	repeat   int
}

func newTournament[V any, M any, U perplayer.Number, O record.Outcome[M, U]](
	play PlayFunc[V, M, U, O],
	arity int,
	players []strategy.Player[V, M, U],
	scheme func(n, k int) [][]int,
) *Tournament[V, M, U, O] {
	assignments := scheme(len(players), arity)
	matchups := make([]Matchup[V, M, U], 0, len(assignments))
	for _, assignment := range assignments {
		seats := make([]strategy.Player[V, M, U], arity)
		for seat, playerIdx := range assignment {
			seats[seat] = players[playerIdx]
		}
		matchups = append(matchups, NewMatchup(perplayer.Of(seats...)))
	}
	return &Tournament[V, M, U, O]{play: play, arity: arity, matchups: matchups, repeat: 1}
}

// CombinationsWithReplacement enumerates every multiset-of-size-arity
// assignment of players to seats.
func CombinationsWithReplacement[V any, M any, U perplayer.Number, O record.Outcome[M, U]](
	play PlayFunc[V, M, U, O], arity int, players []strategy.Player[V, M, U],
) *Tournament[V, M, U, O] {
	return newTournament(play, arity, players, combinationsWithReplacement)
}

// PermutationsWithoutReplacement enumerates every ordered distinct
// assignment of players to seats.
func PermutationsWithoutReplacement[V any, M any, U perplayer.Number, O record.Outcome[M, U]](
	play PlayFunc[V, M, U, O], arity int, players []strategy.Player[V, M, U],
) *Tournament[V, M, U, O] {
	return newTournament(play, arity, players, permutationsWithoutReplacement)
}

// CombinationsWithoutReplacement enumerates every distinct subset of
// players, assigned to seats in ascending order.
func CombinationsWithoutReplacement[V any, M any, U perplayer.Number, O record.Outcome[M, U]](
	play PlayFunc[V, M, U, O], arity int, players []strategy.Player[V, M, U],
) *Tournament[V, M, U, O] {
	return newTournament(play, arity, players, combinationsWithoutReplacement)
}

// AllPermutationsWithReplacement enumerates every ordered assignment of
// players to seats, with repetition allowed.
func AllPermutationsWithReplacement[V any, M any, U perplayer.Number, O record.Outcome[M, U]](
	play PlayFunc[V, M, U, O], arity int, players []strategy.Player[V, M, U],
) *Tournament[V, M, U, O] {
	return newTournament(play, arity, players, allPermutationsWithReplacement)
}

// Repeat multiplies each matchup's playings by k.
func (t *Tournament[V, M, U, O]) Repeat(k int) *Tournament[V, M, U, O] {
	t.repeat = k
	return t
}

// matchupKey identifies a matchup's slot in a TournamentResult: the
// per-seat player names, joined so distinct seat assignments of the same
// names never collide with different assignments.
func matchupKey(names perplayer.PerPlayer[string]) string {
	key := ""
	for i, n := range names.Slice() {
		if i > 0 {
			key += "\x00"
		}
		key += n
	}
	return key
}

// TournamentResult is indexed by matchup key (PerPlayer<name>), each
// entry a slice of PlayResult, one per playing.
type TournamentResult[M any, U perplayer.Number, O record.Outcome[M, U]] struct {
	names   map[string]perplayer.PerPlayer[string]
	results map[string][]PlayResult[O]
}

// MatchupResults returns every playing's result for the matchup
// identified by the given per-seat names, in the order they completed.
func (r *TournamentResult[M, U, O]) MatchupResults(names perplayer.PerPlayer[string]) ([]PlayResult[O], bool) {
	results, ok := r.results[matchupKey(names)]
	return results, ok
}

// HasErrors reports whether any playing in the tournament failed.
func (r *TournamentResult[M, U, O]) HasErrors() bool {
	for _, results := range r.results {
		for _, res := range results {
			if res.Err != nil {
				return true
			}
		}
	}
	return false
}

// Play runs every matchup Tournament.repeat times, dispatching playings
// to a worker pool sized to the host's CPU count — the same
// channel-plus-WaitGroup shape the teacher's simulation/parallel.go uses
// for batches of independent game simulations.
func (t *Tournament[V, M, U, O]) Play() *TournamentResult[M, U, O] {
	type job struct {
		matchupIdx int
		names      perplayer.PerPlayer[string]
		strategies perplayer.PerPlayer[strategy.Strategy[V, M, U]]
	}
	type outcome struct {
		key    string
		names  perplayer.PerPlayer[string]
		result PlayResult[O]
	}

	totalJobs := len(t.matchups) * t.repeat
	jobs := make(chan job, totalJobs)
	outcomes := make(chan outcome, totalJobs)

	numWorkers := runtime.NumCPU()
	if numWorkers > totalJobs {
		numWorkers = totalJobs
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				out, err := t.play(j.strategies)
				outcomes <- outcome{
					key:    matchupKey(j.names),
					names:  j.names,
					result: PlayResult[O]{Outcome: out, Err: err},
				}
			}
		}()
	}

	for idx, m := range t.matchups {
		names := m.Names()
		for i := 0; i < t.repeat; i++ {
			jobs <- job{matchupIdx: idx, names: names, strategies: m.Strategies()}
		}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	result := &TournamentResult[M, U, O]{
		names:   make(map[string]perplayer.PerPlayer[string]),
		results: make(map[string][]PlayResult[O]),
	}
	for out := range outcomes {
		result.names[out.key] = out.names
		result.results[out.key] = append(result.results[out.key], out.result)
	}
	return result
}

// Score iterates every successful outcome and, for each player in each
// matchup, adds their payoff entry to that player's running Score.
// Grounded on the source's t4t::score.rs Score::add accumulation.
func (r *TournamentResult[M, U, O]) Score() *Score[U] {
	s := NewScore[U]()
	for key, results := range r.results {
		names, ok := r.names[key]
		if !ok {
			continue
		}
		for _, res := range results {
			if res.Err != nil {
				continue
			}
			payoff := res.Outcome.Payoff()
			for _, idx := range perplayer.Indices(names.Arity()) {
				s.Add(names.At(idx), payoff.At(idx))
			}
		}
	}
	return s
}
