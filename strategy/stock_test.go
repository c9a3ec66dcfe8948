package strategy

import (
	"math/rand"
	"testing"

	"github.com/signalnine/theoretic/dist"
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
)

func emptyContext[M any, U perplayer.Number](arity int) Context[int, M, U] {
	return Context[int, M, U]{
		MyIndex:    perplayer.MustIndex(0, arity),
		StateView:  0,
		InProgress: record.Transcript[M]{},
		History:    record.NewHistory[M, U](arity),
		Score:      perplayer.Zeros[U](arity),
	}
}

func TestConstantAlwaysReturnsSameMove(t *testing.T) {
	s := Constant[int, string, int]("D")
	ctx := emptyContext[string, int](2)
	for i := 0; i < 5; i++ {
		if got := s.NextMove(ctx); got != "D" {
			t.Fatalf("NextMove = %q, want %q", got, "D")
		}
	}
}

func TestUniformRandomUsingStaysWithinCandidates(t *testing.T) {
	moves := []string{"R", "P", "S"}
	s := UniformRandomUsing[int, string, int](moves, rand.New(rand.NewSource(1)))
	ctx := emptyContext[string, int](2)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		move := s.NextMove(ctx)
		seen[move] = true
		valid := false
		for _, m := range moves {
			if m == move {
				valid = true
			}
		}
		if !valid {
			t.Fatalf("NextMove returned %q, not among candidates", move)
		}
	}
	if len(seen) < 2 {
		t.Fatalf("only observed %v across 100 draws, expected more variety", seen)
	}
}

func TestUniformRandomPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty candidate list")
		}
	}()
	UniformRandom[int, string, int](nil)
}

func TestWeightedRandomUsingFavorsHeavierWeight(t *testing.T) {
	d, err := dist.New([]string{"a", "b"}, []float64{99, 1})
	if err != nil {
		t.Fatalf("dist.New: %v", err)
	}
	s := WeightedRandomUsing[int, string, int](d, rand.New(rand.NewSource(2)))
	ctx := emptyContext[string, int](2)
	var countA int
	for i := 0; i < 1000; i++ {
		if s.NextMove(ctx) == "a" {
			countA++
		}
	}
	if countA < 900 {
		t.Fatalf("countA = %d/1000, expected heavily skewed toward a", countA)
	}
}

func TestPeriodicCyclesAndWraps(t *testing.T) {
	s := Periodic[int, string, int]([]string{"A", "B", "C"})
	ctx := emptyContext[string, int](2)
	want := []string{"A", "B", "C", "A", "B"}
	for i, w := range want {
		if got := s.NextMove(ctx); got != w {
			t.Fatalf("call %d: NextMove = %q, want %q", i, got, w)
		}
	}
}

func TestPeriodicPanicsOnEmptySequence(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty sequence")
		}
	}()
	Periodic[int, string, int](nil)
}

func TestFirstOfTriesCandidatesInOrder(t *testing.T) {
	candidates := []Candidate[int, string, int]{
		{Try: func(ctx Context[int, string, int]) (string, bool) { return "", false }},
		{Try: func(ctx Context[int, string, int]) (string, bool) { return "second", true }},
		{Try: func(ctx Context[int, string, int]) (string, bool) { return "third", true }},
	}
	s := FirstOf(candidates)
	if got := s.NextMove(emptyContext[string, int](2)); got != "second" {
		t.Fatalf("NextMove = %q, want %q", got, "second")
	}
}

func TestFirstOfPanicsOnExhaustion(t *testing.T) {
	s := FirstOf([]Candidate[int, string, int]{
		{Try: func(ctx Context[int, string, int]) (string, bool) { return "", false }},
	})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when no candidate succeeds")
		}
	}()
	s.NextMove(emptyContext[string, int](2))
}

func TestFromStrategiesAlwaysSucceeds(t *testing.T) {
	candidates := FromStrategies[int, string, int](Constant[int, string, int]("X"))
	move, ok := candidates[0].Try(emptyContext[string, int](2))
	if !ok || move != "X" {
		t.Fatalf("candidate returned (%q, %v), want (%q, true)", move, ok, "X")
	}
}

func TestPlayerFactoryProducesFreshStrategy(t *testing.T) {
	calls := 0
	p := Player[int, string, int]{
		Name: "counter",
		Factory: func() Strategy[int, string, int] {
			calls++
			return Constant[int, string, int]("C")
		},
	}
	p.NewStrategy()
	p.NewStrategy()
	if calls != 2 {
		t.Fatalf("factory invoked %d times, want 2", calls)
	}
}
