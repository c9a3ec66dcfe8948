package tournament

import (
	"testing"

	"github.com/signalnine/theoretic/game"
	"github.com/signalnine/theoretic/gameerr"
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
	"github.com/signalnine/theoretic/strategy"
)

// pdPlay plays a single-stage Prisoner's Dilemma directly against a
// fixed payoff table, without depending on the game package (tournament
// intentionally has no such dependency).
func pdPlay(strategies perplayer.PerPlayer[strategy.Strategy[int, string, int]]) (record.SimultaneousOutcome[string, int], error) {
	ctx0 := strategy.Context[int, string, int]{MyIndex: perplayer.MustIndex(0, 2)}
	ctx1 := strategy.Context[int, string, int]{MyIndex: perplayer.MustIndex(1, 2)}
	m0 := strategies.At(perplayer.MustIndex(0, 2)).NextMove(ctx0)
	m1 := strategies.At(perplayer.MustIndex(1, 2)).NextMove(ctx1)

	table := map[[2]string][2]int{
		{"C", "C"}: {3, 3},
		{"C", "D"}: {0, 5},
		{"D", "C"}: {5, 0},
		{"D", "D"}: {1, 1},
	}
	payoffs, ok := table[[2]string{m0, m1}]
	if !ok {
		return record.SimultaneousOutcome[string, int]{}, &gameerr.InvalidMove[string, string]{Move: m0}
	}
	profile := record.NewProfile(perplayer.Of(m0, m1))
	payoff := perplayer.NewPayoff(perplayer.Of(payoffs[0], payoffs[1]))
	return record.SimultaneousOutcome[string, int]{Profile: profile, Payout: payoff}, nil
}

func TestTournamentScoresAlwaysDefectAboveAlwaysCooperate(t *testing.T) {
	players := []strategy.Player[int, string, int]{
		{Name: "always-cooperate", Factory: func() strategy.Strategy[int, string, int] {
			return strategy.Constant[int, string, int]("C")
		}},
		{Name: "always-defect", Factory: func() strategy.Strategy[int, string, int] {
			return strategy.Constant[int, string, int]("D")
		}},
	}

	tourney := AllPermutationsWithReplacement[int, string, int, record.SimultaneousOutcome[string, int]](pdPlay, 2, players).Repeat(10)
	result := tourney.Play()
	if result.HasErrors() {
		t.Fatal("unexpected errors in tournament")
	}

	score := result.Score()
	defectScore := score.GetOrZero("always-defect")
	cooperateScore := score.GetOrZero("always-cooperate")
	if defectScore <= cooperateScore {
		t.Fatalf("always-defect score %d should exceed always-cooperate score %d", defectScore, cooperateScore)
	}
}

// TestTournamentErrorIsolatesFailingMatch reproduces testable property
// 8: an illegal-move strategy fails its own matchups without corrupting
// the others' recorded outcomes.
func TestTournamentErrorIsolatesFailingMatch(t *testing.T) {
	players := []strategy.Player[int, string, int]{
		{Name: "always-cooperate", Factory: func() strategy.Strategy[int, string, int] {
			return strategy.Constant[int, string, int]("C")
		}},
		{Name: "always-defect", Factory: func() strategy.Strategy[int, string, int] {
			return strategy.Constant[int, string, int]("D")
		}},
		{Name: "always-illegal", Factory: func() strategy.Strategy[int, string, int] {
			return strategy.Constant[int, string, int]("X")
		}},
	}

	tourney := CombinationsWithoutReplacement[int, string, int, record.SimultaneousOutcome[string, int]](pdPlay, 2, players)
	result := tourney.Play()

	if !result.HasErrors() {
		t.Fatal("expected HasErrors() to report the illegal-move matchups")
	}

	names := perplayer.Of("always-cooperate", "always-defect")
	results, ok := result.MatchupResults(names)
	if !ok {
		t.Fatal("expected a recorded result for always-cooperate vs always-defect")
	}
	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("unaffected matchup reported an error: %v", res.Err)
		}
		payoff := res.Outcome.Payoff().Slice()
		if payoff[0] != 0 || payoff[1] != 5 {
			t.Fatalf("unaffected matchup payoff = %v, want [0 5]", payoff)
		}
	}
}

// repeatedPDPlay plays 100 rounds of the S1 literal Prisoner's Dilemma
// table via the game package, for S6's tournament-scoring scenario.
func repeatedPDPlay(strategies perplayer.PerPlayer[strategy.Strategy[perplayer.PerPlayer[[]string], string, int]]) (record.History[string, int], error) {
	pd, err := game.Symmetric[string, int](2, []string{"C", "D"}, []int{2, 0, 3, 1})
	if err != nil {
		return record.History[string, int]{}, err
	}
	repeated := game.NewRepeated[perplayer.PerPlayer[[]string], string, int, perplayer.PerPlayer[[]string], record.SimultaneousOutcome[string, int]](pd, 100)
	return game.Play[game.RepeatedState[perplayer.PerPlayer[[]string], string, int], string, int, perplayer.PerPlayer[[]string], record.History[string, int]](repeated, strategies)
}

// tournamentTitForTat duplicates game_test's titForTat for this package,
// which deliberately avoids depending on game in production code.
func tournamentTitForTat() strategy.Strategy[perplayer.PerPlayer[[]string], string, int] {
	return strategy.Func[perplayer.PerPlayer[[]string], string, int](
		func(ctx strategy.Context[perplayer.PerPlayer[[]string], string, int]) string {
			outcomes := ctx.History.Outcomes()
			if len(outcomes) == 0 {
				return "C"
			}
			opponent := perplayer.MustIndex(1-ctx.MyIndex.Value(), ctx.MyIndex.Arity())
			last := outcomes[len(outcomes)-1]
			plies := last.ByPlayer(opponent)
			if len(plies) == 0 {
				return "C"
			}
			return plies[0].Move
		},
	)
}

// TestTournamentS6ThreePlayerRoundRobinRepeatedPDScoring reproduces S6:
// over a three-player round robin of repeated PD-100, AlwaysDefect's
// score strictly exceeds AlwaysCooperate's.
func TestTournamentS6ThreePlayerRoundRobinRepeatedPDScoring(t *testing.T) {
	players := []strategy.Player[perplayer.PerPlayer[[]string], string, int]{
		{Name: "always-cooperate", Factory: func() strategy.Strategy[perplayer.PerPlayer[[]string], string, int] {
			return strategy.Constant[perplayer.PerPlayer[[]string], string, int]("C")
		}},
		{Name: "always-defect", Factory: func() strategy.Strategy[perplayer.PerPlayer[[]string], string, int] {
			return strategy.Constant[perplayer.PerPlayer[[]string], string, int]("D")
		}},
		{Name: "tit-for-tat", Factory: func() strategy.Strategy[perplayer.PerPlayer[[]string], string, int] {
			return tournamentTitForTat()
		}},
	}

	tourney := CombinationsWithReplacement[perplayer.PerPlayer[[]string], string, int, record.History[string, int]](repeatedPDPlay, 2, players)
	result := tourney.Play()
	if result.HasErrors() {
		t.Fatal("unexpected errors in tournament")
	}

	score := result.Score()
	defectScore := score.GetOrZero("always-defect")
	cooperateScore := score.GetOrZero("always-cooperate")
	if defectScore <= cooperateScore {
		t.Fatalf("always-defect score %d should exceed always-cooperate score %d", defectScore, cooperateScore)
	}
}

func TestMatchupNamesAndStrategies(t *testing.T) {
	players := perplayer.Of(
		strategy.Player[int, string, int]{Name: "A", Factory: func() strategy.Strategy[int, string, int] {
			return strategy.Constant[int, string, int]("C")
		}},
		strategy.Player[int, string, int]{Name: "B", Factory: func() strategy.Strategy[int, string, int] {
			return strategy.Constant[int, string, int]("D")
		}},
	)
	m := NewMatchup(players)
	names := m.Names().Slice()
	if names[0] != "A" || names[1] != "B" {
		t.Fatalf("Names() = %v, want [A B]", names)
	}
	strategies := m.Strategies()
	ctx := strategy.Context[int, string, int]{MyIndex: perplayer.MustIndex(0, 2)}
	if move := strategies.At(perplayer.MustIndex(0, 2)).NextMove(ctx); move != "C" {
		t.Fatalf("seat 0 move = %q, want C", move)
	}
}
