package tournament

import "testing"

func TestAllPermutationsWithReplacementCount(t *testing.T) {
	out := allPermutationsWithReplacement(3, 2)
	if len(out) != 9 {
		t.Fatalf("len = %d, want 9 (3^2)", len(out))
	}
}

func TestPermutationsWithoutReplacementExcludesRepeats(t *testing.T) {
	out := permutationsWithoutReplacement(3, 2)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6 (3*2)", len(out))
	}
	for _, assignment := range out {
		if assignment[0] == assignment[1] {
			t.Fatalf("assignment %v repeats a player, want distinct seats", assignment)
		}
	}
}

func TestCombinationsWithoutReplacementIsStrictlyIncreasing(t *testing.T) {
	out := combinationsWithoutReplacement(4, 2)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6 (C(4,2))", len(out))
	}
	for _, c := range out {
		if c[0] >= c[1] {
			t.Fatalf("combination %v is not strictly increasing", c)
		}
	}
}

func TestCombinationsWithReplacementIsNonDecreasing(t *testing.T) {
	out := combinationsWithReplacement(3, 2)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6 (multiset count for n=3,k=2)", len(out))
	}
	for _, c := range out {
		if c[0] > c[1] {
			t.Fatalf("combination %v is not non-decreasing", c)
		}
	}
}

func TestZeroSeatsProducesOneEmptyAssignment(t *testing.T) {
	for _, scheme := range []func(int, int) [][]int{
		combinationsWithReplacement,
		permutationsWithoutReplacement,
		combinationsWithoutReplacement,
		allPermutationsWithReplacement,
	} {
		out := scheme(5, 0)
		if len(out) != 1 || len(out[0]) != 0 {
			t.Fatalf("k=0 scheme produced %v, want a single empty assignment", out)
		}
	}
}
