package tree

import (
	"testing"

	"github.com/signalnine/theoretic/perplayer"
)

func TestPlayersRejectsEmptyToMove(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty to_move")
		}
	}()
	Players[int, int, int, int](0, nil, nil)
}

func TestPlayersRejectsDuplicatePlayers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate to_move entries")
		}
	}()
	p0 := perplayer.MustIndex(0, 2)
	Players[int, int, int, int](0, []perplayer.Index{p0, p0}, nil)
}

func TestWrapTurnsNextPanicsOnWrongMoveCount(t *testing.T) {
	node := Players[int, int, int, int](0, perplayer.Indices(2), func(state int, moves []int) (Node[int, int, int, int], error) {
		return End[int, int, int, int](state, 0), nil
	})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for wrong move count")
		}
	}()
	node.Next(0, []int{1})
}

func TestWrapTurnsNextAcceptsExactMoveCount(t *testing.T) {
	node := Players[int, int, int, int](0, perplayer.Indices(2), func(state int, moves []int) (Node[int, int, int, int], error) {
		return End[int, int, int, int](state, moves[0]+moves[1]), nil
	})
	next, err := node.Next(0, []int{3, 4})
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if next.Kind != KindEnd || next.Outcome != 7 {
		t.Fatalf("Next produced %+v, want End node with outcome 7", next)
	}
}

func TestEndConstructsTerminalNode(t *testing.T) {
	node := End[int, int, int, string](5, "done")
	if node.Kind != KindEnd {
		t.Fatalf("Kind = %v, want KindEnd", node.Kind)
	}
	if node.Outcome != "done" {
		t.Fatalf("Outcome = %v, want %q", node.Outcome, "done")
	}
}

func TestPlayerConstructsSingleToMoveEntry(t *testing.T) {
	p1 := perplayer.MustIndex(1, 2)
	node := Player[int, int, int, int](0, p1, func(state int, moves []int) (Node[int, int, int, int], error) {
		return End[int, int, int, int](state, 0), nil
	})
	if len(node.ToMove) != 1 || node.ToMove[0].Value() != 1 {
		t.Fatalf("ToMove = %v, want [P1]", node.ToMove)
	}
}
