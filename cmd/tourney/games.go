package main

import "github.com/signalnine/theoretic/game"

// pdMoves are the two Prisoner's Dilemma moves. Index 0 is Cooperate,
// index 1 is Defect, matching the payoff table below.
var pdMoves = []string{"C", "D"}

// newPrisonersDilemma builds the standard two-player Prisoner's Dilemma
// as a symmetric normal-form game: player 0's payoff for profile (i0,
// i1) is table[i0*2+i1] (spec.md §6's flat index for k=2).
func newPrisonersDilemma() *game.Normal[string, int] {
	g, err := game.Symmetric[string, int](2, pdMoves, []int{
		3, 0, // (C,C)=3, (C,D)=0
		5, 1, // (D,C)=5, (D,D)=1
	})
	if err != nil {
		panic(err)
	}
	return g
}

// rpsMoves are Rock-Paper-Scissors' three moves.
var rpsMoves = []string{"R", "P", "S"}

// newRockPaperScissors builds zero-sum Rock-Paper-Scissors as a symmetric
// normal-form game: win=1, lose=-1, tie=0 for player 0.
func newRockPaperScissors() *game.Normal[string, int] {
	beats := map[string]string{"R": "S", "P": "R", "S": "P"}
	table := make([]int, 0, 9)
	for _, a := range rpsMoves {
		for _, b := range rpsMoves {
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
	g, err := game.Symmetric[string, int](2, rpsMoves, table)
	if err != nil {
		panic(err)
	}
	return g
}
