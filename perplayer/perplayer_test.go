package perplayer

import "testing"

func TestNewIndexRejectsOutOfRange(t *testing.T) {
	if _, err := NewIndex(-1, 2); err == nil {
		t.Fatal("expected error for negative value")
	}
	if _, err := NewIndex(2, 2); err == nil {
		t.Fatal("expected error for value == arity")
	}
	if _, err := NewIndex(0, 0); err == nil {
		t.Fatal("expected error for non-positive arity")
	}
}

func TestGenerateThenAtRoundTrip(t *testing.T) {
	p := Generate(3, func(idx Index) int { return idx.Value() * 10 })
	for _, idx := range Indices(3) {
		if got := p.At(idx); got != idx.Value()*10 {
			t.Fatalf("At(%v) = %d, want %d", idx, got, idx.Value()*10)
		}
	}
}

func TestOfCopiesInput(t *testing.T) {
	values := []string{"a", "b"}
	p := Of(values...)
	values[0] = "mutated"
	if got := p.At(MustIndex(0, 2)); got != "a" {
		t.Fatalf("Of did not defensively copy: got %q", got)
	}
}

func TestAtPanicsOnArityMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on arity mismatch")
		}
	}()
	p := Of(1, 2)
	p.At(MustIndex(0, 3))
}

func TestWithAtReplacesOneSlot(t *testing.T) {
	p := Of(1, 2, 3)
	updated := p.WithAt(MustIndex(1, 3), 99)
	if got := updated.Slice(); got[0] != 1 || got[1] != 99 || got[2] != 3 {
		t.Fatalf("WithAt produced %v", got)
	}
	if got := p.Slice()[1]; got != 2 {
		t.Fatalf("WithAt mutated original: %v", p.Slice())
	}
}

func TestMapPreservesArity(t *testing.T) {
	p := Of(1, 2, 3)
	mapped := Map(p, func(v int) string { return string(rune('a' + v)) })
	if mapped.Arity() != 3 {
		t.Fatalf("Map changed arity to %d", mapped.Arity())
	}
}

func TestZipMismatchedArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zip arity mismatch")
		}
	}()
	Zip(Of(1, 2), Of(1, 2, 3), func(a, b int) int { return a + b })
}

func TestPayoffAddAndScale(t *testing.T) {
	a := NewPayoff(Of(1, 2))
	b := NewPayoff(Of(10, 20))
	sum := a.Add(b)
	if got := sum.Slice(); got[0] != 11 || got[1] != 22 {
		t.Fatalf("Add = %v", got)
	}
	scaled := a.Scale(3)
	if got := scaled.Slice(); got[0] != 3 || got[1] != 6 {
		t.Fatalf("Scale = %v", got)
	}
}

func TestPayoffIsZeroSum(t *testing.T) {
	zeroSum := NewPayoff(Of(5, -5))
	if !zeroSum.IsZeroSum() {
		t.Fatal("expected zero-sum payoff")
	}
	notZeroSum := NewPayoff(Of(5, -4))
	if notZeroSum.IsZeroSum() {
		t.Fatal("expected non-zero-sum payoff")
	}
}

func TestPayoffIsZeroSumWinner(t *testing.T) {
	p := NewPayoff(Of(5, -2, -3))
	if !p.IsZeroSumWinner(MustIndex(0, 3)) {
		t.Fatal("expected player 0 to be the zero-sum winner")
	}
	if p.IsZeroSumWinner(MustIndex(1, 3)) {
		t.Fatal("player 1 has negative utility, cannot be winner")
	}
}

func TestPayoffDominates(t *testing.T) {
	high := NewPayoff(Of(3, 3))
	low := NewPayoff(Of(1, 2))
	if !high.Dominates(low) {
		t.Fatal("expected high to dominate low")
	}
	if low.Dominates(high) {
		t.Fatal("low should not dominate high")
	}
	mixed := NewPayoff(Of(5, 0))
	if high.Dominates(mixed) || mixed.Dominates(high) {
		t.Fatal("neither payoff should dominate the other")
	}
}
