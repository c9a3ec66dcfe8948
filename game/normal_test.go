package game

import (
	"math/rand"
	"testing"

	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
	"github.com/signalnine/theoretic/strategy"
)

func prisonersDilemma(t *testing.T) *Normal[string, int] {
	t.Helper()
	g, err := Symmetric[string, int](2, []string{"C", "D"}, []int{
		3, 0,
		5, 1,
	})
	if err != nil {
		t.Fatalf("Symmetric: %v", err)
	}
	return g
}

func TestSymmetricRejectsWrongTableLength(t *testing.T) {
	if _, err := Symmetric[string, int](2, []string{"C", "D"}, []int{1, 2, 3}); err == nil {
		t.Fatal("expected error for mismatched table length")
	}
}

func TestSymmetricPayoffIsRotationallyConsistent(t *testing.T) {
	pd := prisonersDilemma(t)
	profile := record.NewProfile(perplayer.Of("D", "C"))
	payoff, err := pd.Payoff(profile)
	if err != nil {
		t.Fatalf("Payoff: %v", err)
	}
	got := payoff.Slice()
	if got[0] != 5 || got[1] != 0 {
		t.Fatalf("Payoff(D,C) = %v, want [5 0]", got)
	}
}

func TestSymmetricPayoffRejectsMoveNotInList(t *testing.T) {
	pd := prisonersDilemma(t)
	profile := record.NewProfile(perplayer.Of("C", "bogus"))
	if _, err := pd.Payoff(profile); err == nil {
		t.Fatal("expected InvalidMove error for a move outside the move list")
	}
}

func TestPlayPrisonersDilemmaSingleStage(t *testing.T) {
	pd := prisonersDilemma(t)
	strategies := perplayer.Of(
		strategy.Constant[perplayer.PerPlayer[[]string], string, int]("C"),
		strategy.Constant[perplayer.PerPlayer[[]string], string, int]("D"),
	)
	outcome, err := Play[perplayer.PerPlayer[[]string], string, int, perplayer.PerPlayer[[]string], record.SimultaneousOutcome[string, int]](pd, strategies)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	got := outcome.Payoff().Slice()
	if got[0] != 0 || got[1] != 5 {
		t.Fatalf("payoffs = %v, want [0 5] for (C,D)", got)
	}
}

func TestDominationsFindsStrictDominance(t *testing.T) {
	pd := prisonersDilemma(t)
	doms := pd.Dominations(perplayer.MustIndex(0, 2), true)
	if len(doms) != 1 {
		t.Fatalf("Dominations = %v, want exactly one strict domination", doms)
	}
	if doms[0].Dominator != "D" || doms[0].Dominated != "C" {
		t.Fatalf("Dominations[0] = %+v, want Defect dominates Cooperate", doms[0])
	}
}

func TestPureNashEquilibriaFindsMutualDefect(t *testing.T) {
	pd := prisonersDilemma(t)
	eq := pd.PureNashEquilibria()
	if len(eq) != 1 {
		t.Fatalf("PureNashEquilibria = %v, want exactly one equilibrium", eq)
	}
	if eq[0][0] != "D" || eq[0][1] != "D" {
		t.Fatalf("equilibrium = %v, want [D D]", eq[0])
	}
}

func TestEliminateDominatedReducesToDefectDefect(t *testing.T) {
	pd := prisonersDilemma(t)
	reduced, eliminated := pd.EliminateDominated(true)
	if len(eliminated) == 0 {
		t.Fatal("expected at least one elimination")
	}
	eq := reduced.PureNashEquilibria()
	if len(eq) != 1 || eq[0][0] != "D" || eq[0][1] != "D" {
		t.Fatalf("reduced game's equilibria = %v, want [[D D]]", eq)
	}
}

// literalPrisonersDilemma builds the S1 scenario's exact table
// ([(2,2),(0,3),(3,0),(1,1)] over profiles (C,C),(C,D),(D,C),(D,D)), a
// different payoff convention from prisonersDilemma's table above.
func literalPrisonersDilemma(t *testing.T) *Normal[string, int] {
	t.Helper()
	g, err := Symmetric[string, int](2, []string{"C", "D"}, []int{2, 0, 3, 1})
	if err != nil {
		t.Fatalf("Symmetric: %v", err)
	}
	return g
}

func TestS1AlwaysCooperateVsAlwaysDefectYieldsZeroThree(t *testing.T) {
	pd := literalPrisonersDilemma(t)
	strategies := perplayer.Of(
		strategy.Constant[perplayer.PerPlayer[[]string], string, int]("C"),
		strategy.Constant[perplayer.PerPlayer[[]string], string, int]("D"),
	)
	outcome, err := Play[perplayer.PerPlayer[[]string], string, int, perplayer.PerPlayer[[]string], record.SimultaneousOutcome[string, int]](pd, strategies)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	got := outcome.Payoff().Slice()
	if got[0] != 0 || got[1] != 3 {
		t.Fatalf("payoffs = %v, want [0 3] for (AlwaysC, AlwaysD)", got)
	}
}

func rockPaperScissors(t *testing.T) *Normal[string, int] {
	t.Helper()
	beats := map[string]string{"R": "S", "P": "R", "S": "P"}
	moves := []string{"R", "P", "S"}
	table := make([]int, 0, 9)
	for _, a := range moves {
		for _, b := range moves {
			switch {
			case a == b:
				table = append(table, 0)
			case beats[a] == b:
				table = append(table, 1)
			default:
				table = append(table, -1)
			}
		}
	}
	g, err := Symmetric[string, int](2, moves, table)
	if err != nil {
		t.Fatalf("Symmetric: %v", err)
	}
	return g
}

func TestRockPaperScissorsIsZeroSum(t *testing.T) {
	rps := rockPaperScissors(t)
	profile := record.NewProfile(perplayer.Of("R", "S"))
	payoff, err := rps.Payoff(profile)
	if err != nil {
		t.Fatalf("Payoff: %v", err)
	}
	if !payoff.IsZeroSum() {
		t.Fatalf("payoff %v is not zero-sum", payoff.Slice())
	}
}

func TestRockPaperScissorsHasNoPureEquilibrium(t *testing.T) {
	rps := rockPaperScissors(t)
	if eq := rps.PureNashEquilibria(); len(eq) != 0 {
		t.Fatalf("expected no pure equilibria in RPS, got %v", eq)
	}
}

// TestS3UniformRandomWinRateAgainstConstantIsNearOneThird reproduces S3:
// over many matches, a uniform-random player's empirical win rate
// against a fixed pure strategy should sit close to 1/3.
func TestS3UniformRandomWinRateAgainstConstantIsNearOneThird(t *testing.T) {
	rps := rockPaperScissors(t)
	rng := rand.New(rand.NewSource(1))
	const trials = 10000
	wins := 0
	for i := 0; i < trials; i++ {
		strategies := perplayer.Of(
			strategy.UniformRandomUsing[perplayer.PerPlayer[[]string], string, int]([]string{"R", "P", "S"}, rng),
			strategy.Constant[perplayer.PerPlayer[[]string], string, int]("R"),
		)
		outcome, err := Play[perplayer.PerPlayer[[]string], string, int, perplayer.PerPlayer[[]string], record.SimultaneousOutcome[string, int]](rps, strategies)
		if err != nil {
			t.Fatalf("Play: %v", err)
		}
		if outcome.Payoff().At(perplayer.MustIndex(0, 2)) > 0 {
			wins++
		}
	}
	rate := float64(wins) / float64(trials)
	if rate < 0.3133 || rate > 0.3467 {
		t.Fatalf("uniform-random win rate against Constant(R) = %v, want within +/-2%% of 1/3", rate)
	}
}
