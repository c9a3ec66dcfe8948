package record

import (
	"testing"

	"github.com/signalnine/theoretic/perplayer"
)

func TestPlyPlayerVsChance(t *testing.T) {
	idx := perplayer.MustIndex(0, 2)
	p := NewPlayerPly(idx, "C")
	if !p.IsPlayer() || p.IsChance() {
		t.Fatal("player ply misclassified")
	}
	c := NewChancePly("heads")
	if !c.IsChance() || c.IsPlayer() {
		t.Fatal("chance ply misclassified")
	}
}

func TestProfilePliesAndByPlayer(t *testing.T) {
	moves := perplayer.Of("C", "D")
	profile := NewProfile(moves)
	if profile.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", profile.Len())
	}
	p0 := perplayer.MustIndex(0, 2)
	plies := profile.ByPlayer(p0)
	if len(plies) != 1 || plies[0].Move != "C" {
		t.Fatalf("ByPlayer(0) = %v", plies)
	}
	if len(profile.ByChance()) != 0 {
		t.Fatal("Profile should have no chance plies")
	}
}

func TestTranscriptAppendIsImmutable(t *testing.T) {
	base := NewTranscript([]Ply[int]{NewChancePly(1)})
	extended := base.Append(NewChancePly(2))
	if base.Len() != 1 {
		t.Fatalf("base.Len() = %d, want 1 (Append mutated base)", base.Len())
	}
	if extended.Len() != 2 {
		t.Fatalf("extended.Len() = %d, want 2", extended.Len())
	}
}

func TestHistoryScoreTracksSumOfPayoffs(t *testing.T) {
	h := NewHistory[string, int](2)
	if h.Rounds() != 0 {
		t.Fatalf("new History has %d rounds, want 0", h.Rounds())
	}

	stage1 := SimultaneousOutcome[string, int]{
		Profile: NewProfile(perplayer.Of("C", "C")),
		Payout:  perplayer.NewPayoff(perplayer.Of(3, 3)),
	}
	h = h.Add(stage1)
	if got := h.Score().Slice(); got[0] != 3 || got[1] != 3 {
		t.Fatalf("Score after 1 round = %v", got)
	}

	stage2 := SimultaneousOutcome[string, int]{
		Profile: NewProfile(perplayer.Of("D", "C")),
		Payout:  perplayer.NewPayoff(perplayer.Of(5, 0)),
	}
	h = h.Add(stage2)
	if got := h.Score().Slice(); got[0] != 8 || got[1] != 3 {
		t.Fatalf("Score after 2 rounds = %v", got)
	}
	if h.Rounds() != 2 {
		t.Fatalf("Rounds() = %d, want 2", h.Rounds())
	}
	if h.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (2 plies per round)", h.Len())
	}
}

func TestHistoryAddDoesNotMutateOriginal(t *testing.T) {
	h := NewHistory[string, int](1)
	stage := SimultaneousOutcome[string, int]{
		Profile: NewProfile(perplayer.Of("C")),
		Payout:  perplayer.NewPayoff(perplayer.Of(1)),
	}
	extended := h.Add(stage)
	if h.Rounds() != 0 {
		t.Fatalf("original History mutated: Rounds() = %d", h.Rounds())
	}
	if extended.Rounds() != 1 {
		t.Fatalf("extended.Rounds() = %d, want 1", extended.Rounds())
	}
}
