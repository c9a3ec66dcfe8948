// Command tourney is a demonstration CLI exercising the library end to
// end: single-stage and repeated normal-form play, uniform-random
// strategies scored across a round robin, and minimax/MCTS search on a
// sequential perfect-information game. Grounded on the source's
// t4t-games tic_tac_toe.rs and axelrod.rs examples and on the teacher's
// cmd/evolve's flag-driven CLI shape.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/signalnine/theoretic/game"
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
	"github.com/signalnine/theoretic/search"
	"github.com/signalnine/theoretic/strategy"
	"github.com/signalnine/theoretic/tournament"
	"github.com/signalnine/theoretic/tune"
)

var demo = flag.String("demo", "pd", "which demo to run: pd, repeated, rps, dominance, tictactoe, tune")

func main() {
	flag.Parse()

	switch *demo {
	case "pd":
		runPrisonersDilemma()
	case "repeated":
		runRepeatedPrisonersDilemma()
	case "rps":
		runRockPaperScissorsTournament()
	case "dominance":
		runDominance()
	case "tictactoe":
		runTicTacToe()
	case "tune":
		runTune()
	default:
		fmt.Fprintf(os.Stderr, "tourney: unknown demo %q\n", *demo)
		os.Exit(1)
	}
}

func runPrisonersDilemma() {
	pd := newPrisonersDilemma()
	strategies := perplayer.Of(
		strategy.Constant[perplayer.PerPlayer[[]string], string, int]("C"),
		strategy.Constant[perplayer.PerPlayer[[]string], string, int]("D"),
	)
	outcome, err := game.Play[perplayer.PerPlayer[[]string], string, int, perplayer.PerPlayer[[]string], record.SimultaneousOutcome[string, int]](pd, strategies)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tourney: %v\n", err)
		os.Exit(1)
	}
	payoff := outcome.Payoff()
	fmt.Printf("Prisoner's Dilemma, Cooperate vs Defect: payoffs %v\n", payoff.Slice())
}

func runRepeatedPrisonersDilemma() {
	pd := newPrisonersDilemma()
	repeated := game.NewRepeated[perplayer.PerPlayer[[]string], string, int, perplayer.PerPlayer[[]string], record.SimultaneousOutcome[string, int]](pd, 10)

	strategies := perplayer.Of(
		titForTat(),
		strategy.Constant[perplayer.PerPlayer[[]string], string, int]("D"),
	)
	history, err := game.Play[game.RepeatedState[perplayer.PerPlayer[[]string], string, int], string, int, perplayer.PerPlayer[[]string], record.History[string, int]](repeated, strategies)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tourney: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("10-round repeated PD, TitForTat vs AlwaysDefect: final score %v over %d rounds\n",
		history.Score().Slice(), history.Rounds())
}

func runRockPaperScissorsTournament() {
	rps := newRockPaperScissors()
	players := []strategy.Player[perplayer.PerPlayer[[]string], string, int]{
		{Name: "uniform-A", Factory: func() strategy.Strategy[perplayer.PerPlayer[[]string], string, int] {
			return strategy.UniformRandom[perplayer.PerPlayer[[]string], string, int](rpsMoves)
		}},
		{Name: "uniform-B", Factory: func() strategy.Strategy[perplayer.PerPlayer[[]string], string, int] {
			return strategy.UniformRandom[perplayer.PerPlayer[[]string], string, int](rpsMoves)
		}},
		{Name: "always-rock", Factory: func() strategy.Strategy[perplayer.PerPlayer[[]string], string, int] {
			return strategy.Constant[perplayer.PerPlayer[[]string], string, int]("R")
		}},
	}

	play := func(s perplayer.PerPlayer[strategy.Strategy[perplayer.PerPlayer[[]string], string, int]]) (record.SimultaneousOutcome[string, int], error) {
		return game.Play[perplayer.PerPlayer[[]string], string, int, perplayer.PerPlayer[[]string], record.SimultaneousOutcome[string, int]](rps, s)
	}

	t := tournament.AllPermutationsWithReplacement[perplayer.PerPlayer[[]string], string, int, record.SimultaneousOutcome[string, int]](play, 2, players).Repeat(200)
	result := t.Play()
	if result.HasErrors() {
		fmt.Fprintln(os.Stderr, "tourney: some matchups reported errors")
	}
	fmt.Println("Rock-Paper-Scissors round robin, 200 playings per pairing:")
	result.Score().PrintBestToWorst()
}

func runDominance() {
	pd := newPrisonersDilemma()
	idx := perplayer.MustIndex(0, 2)
	dominations := pd.Dominations(idx, true)
	fmt.Println("Prisoner's Dilemma strict dominations for player 0:")
	for _, d := range dominations {
		fmt.Printf("  %s strictly dominates %s\n", d.Dominator, d.Dominated)
	}
	equilibria := pd.PureNashEquilibria()
	fmt.Println("Pure Nash equilibria:")
	for _, profile := range equilibria {
		fmt.Printf("  %v\n", profile)
	}
}

func runTicTacToe() {
	g := newTicTacToeGame()
	x := search.Minimax[ticTacToeBoard, int, int, record.SequentialOutcome[int, int]](g)
	o := search.MCTS[ticTacToeBoard, int, int, record.SequentialOutcome[int, int]](g, 500, search.DefaultExplorationParam)

	strategies := perplayer.Of(x, o)
	outcome, err := game.Play[ticTacToeBoard, int, int, ticTacToeBoard, record.SequentialOutcome[int, int]](g, strategies)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tourney: %v\n", err)
		os.Exit(1)
	}
	printTicTacToeBoard(finalBoard(outcome))
	fmt.Printf("Minimax (X) vs MCTS (O): payoffs %v\n", outcome.Payoff().Slice())
}

// runTune evolves a WeightedRandom strategy's per-move weights against a
// fixed always-rock opponent, reporting the best weight vector found.
// Grounded on the teacher's evolution package, adapted via tune.Engine.
func runTune() {
	rps := newRockPaperScissors()
	opponent := strategy.Constant[perplayer.PerPlayer[[]string], string, int]("R")

	const trialsPerEvaluation = 60
	fitness := func(g *tune.WeightGenome) float64 {
		candidate := tune.ToStrategy[perplayer.PerPlayer[[]string], string, int](g, rpsMoves)
		strategies := perplayer.Of(candidate, opponent)
		var total int
		for i := 0; i < trialsPerEvaluation; i++ {
			outcome, err := game.Play[perplayer.PerPlayer[[]string], string, int, perplayer.PerPlayer[[]string], record.SimultaneousOutcome[string, int]](rps, strategies)
			if err != nil {
				continue
			}
			total += outcome.Payoff().At(perplayer.MustIndex(0, 2))
		}
		return float64(total) / float64(trialsPerEvaluation)
	}

	config := tune.DefaultConfig(len(rpsMoves))
	config.Verbose = true
	engine := tune.NewEngine(config, fitness)
	best := engine.Evolve()

	fmt.Println("Tuned Rock-Paper-Scissors weights against always-rock:")
	for i, move := range rpsMoves {
		fmt.Printf("  %s: %.3f\n", move, best.Weights[i])
	}
}

// finalBoard replays outcome's transcript onto an empty board for display.
func finalBoard(outcome record.SequentialOutcome[int, int]) ticTacToeBoard {
	var board ticTacToeBoard
	for _, ply := range outcome.Plies() {
		if ply.Player == nil {
			continue
		}
		board[ply.Move] = ply.Player.Value() + 1
	}
	return board
}
