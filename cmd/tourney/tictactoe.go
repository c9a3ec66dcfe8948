package main

import (
	"fmt"

	"github.com/signalnine/theoretic/game"
	"github.com/signalnine/theoretic/perplayer"
)

// ticTacToeBoard is a 3x3 board, cell i holding 0 (empty), 1 (X) or 2 (O).
type ticTacToeBoard [9]int

// ticTacToe is a StateBased implementation of tic-tac-toe, grounded on the
// source's tic_tac_toe.rs example's board/turn/winner shape, adapted to
// the StateBased four-primitive contract.
type ticTacToe struct{}

func (ticTacToe) NumPlayers() int { return 2 }

func (ticTacToe) StateView(state ticTacToeBoard, _ perplayer.Index) ticTacToeBoard { return state }

func (ticTacToe) InitialState() ticTacToeBoard { return ticTacToeBoard{} }

func (ticTacToe) NextTurn(state ticTacToeBoard) perplayer.Index {
	x, o := 0, 0
	for _, cell := range state {
		switch cell {
		case 1:
			x++
		case 2:
			o++
		}
	}
	if x <= o {
		return perplayer.MustIndex(0, 2)
	}
	return perplayer.MustIndex(1, 2)
}

func (ticTacToe) NextState(player perplayer.Index, move int, state ticTacToeBoard) (ticTacToeBoard, error) {
	if move < 0 || move >= 9 || state[move] != 0 {
		return state, fmt.Errorf("tictactoe: cell %d is not empty", move)
	}
	state[move] = player.Value() + 1
	return state, nil
}

func (ticTacToe) CheckFinalState(_ perplayer.Index, state ticTacToeBoard) (perplayer.Payoff[int], bool) {
	if winner := ticTacToeWinner(state); winner != 0 {
		payoff := perplayer.Zeros[int](2)
		payoff = payoff.WithAt(perplayer.MustIndex(winner-1, 2), 1)
		payoff = payoff.WithAt(perplayer.MustIndex(2-winner, 2), -1)
		return payoff, true
	}
	for _, cell := range state {
		if cell == 0 {
			return perplayer.Payoff[int]{}, false
		}
	}
	return perplayer.Zeros[int](2), true
}

func ticTacToePossibleMoves(state ticTacToeBoard) []int {
	var moves []int
	for i, cell := range state {
		if cell == 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

var ticTacToeLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func ticTacToeWinner(state ticTacToeBoard) int {
	for _, line := range ticTacToeLines {
		a, b, c := state[line[0]], state[line[1]], state[line[2]]
		if a != 0 && a == b && b == c {
			return a
		}
	}
	return 0
}

func printTicTacToeBoard(state ticTacToeBoard) {
	symbols := map[int]string{0: ".", 1: "X", 2: "O"}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			fmt.Print(symbols[state[row*3+col]])
		}
		fmt.Println()
	}
}

// ticTacToeGame adapts ticTacToe (StateBased) into a Finite+Playable pair
// by pairing game.StateBasedPlayable's GameTree with a direct
// PossibleMoves implementation — StateBasedPlayable only promotes the
// StateBased methods, so Finite needs this explicit addition.
type ticTacToeGame struct {
	game.StateBasedPlayable[ticTacToeBoard, int, int, ticTacToeBoard]
}

func newTicTacToeGame() ticTacToeGame {
	return ticTacToeGame{StateBasedPlayable: game.StateBasedPlayable[ticTacToeBoard, int, int, ticTacToeBoard]{StateBased: ticTacToe{}}}
}

func (ticTacToeGame) PossibleMoves(_ perplayer.Index, state ticTacToeBoard) []int {
	return ticTacToePossibleMoves(state)
}
