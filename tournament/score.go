package tournament

import (
	"fmt"
	"sort"
	"sync"

	"github.com/signalnine/theoretic/perplayer"
)

// Score is the cumulative utility for each player across all matchups in
// a tournament, keyed by player name. Grounded on the source's
// t4t::score.rs Score<U>, a name-to-utility map with best/worst-sorted
// iteration; guarded by a mutex here since TournamentResult.Score can be
// fed by concurrently-completed matchups (spec.md §5's "must guard the
// map when aggregating in parallel").
type Score[U perplayer.Number] struct {
	mu     sync.Mutex
	scores map[string]U
}

// NewScore creates an empty score tracker.
func NewScore[U perplayer.Number]() *Score[U] {
	return &Score[U]{scores: make(map[string]U)}
}

// Add adds a utility value to the given player's current score. A
// player's current score is zero if they don't have one yet.
func (s *Score[U]) Add(name string, utility U) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[name] += utility
}

// AddAll merges all scores from another tracker into this one, useful
// for combining scores from multiple tournaments.
func (s *Score[U]) AddAll(other *Score[U]) {
	other.mu.Lock()
	snapshot := make(map[string]U, len(other.scores))
	for name, score := range other.scores {
		snapshot[name] = score
	}
	other.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	for name, score := range snapshot {
		s.scores[name] += score
	}
}

// Get returns the current score for the given player, and whether they
// have one yet.
func (s *Score[U]) Get(name string) (U, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.scores[name]
	return v, ok
}

// GetOrZero returns the current score for the given player, or zero if
// they don't have one yet.
func (s *Score[U]) GetOrZero(name string) U {
	v, _ := s.Get(name)
	return v
}

type NameScore[U perplayer.Number] struct {
	Name  string
	Score U
}

func (s *Score[U]) snapshot() []NameScore[U] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]NameScore[U], 0, len(s.scores))
	for name, score := range s.scores {
		out = append(out, NameScore[U]{Name: name, Score: score})
	}
	return out
}

// BestToWorst returns players with their scores, sorted from highest to
// lowest score. Ties are broken by name for deterministic output.
func (s *Score[U]) BestToWorst() []NameScore[U] {
	out := s.snapshot()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// WorstToBest returns players with their scores, sorted from lowest to
// highest score. Ties are broken by name for deterministic output.
func (s *Score[U]) WorstToBest() []NameScore[U] {
	out := s.snapshot()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// PrintBestToWorst prints one line per player, "<utility>: <name>", from
// best to worst.
func (s *Score[U]) PrintBestToWorst() {
	for _, ns := range s.BestToWorst() {
		fmt.Printf("%v: %s\n", ns.Score, ns.Name)
	}
}

// PrintWorstToBest prints one line per player, "<utility>: <name>", from
// worst to best.
func (s *Score[U]) PrintWorstToBest() {
	for _, ns := range s.WorstToBest() {
		fmt.Printf("%v: %s\n", ns.Score, ns.Name)
	}
}
