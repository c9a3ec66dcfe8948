// Package record implements the three move-record shapes spec.md §3/§4.3
// describe (Ply, Profile, Transcript) plus History, all sharing one
// read interface. Grounded on the source's t4t::ply/profile/record/history
// modules: a Ply attributes a move to a player or to chance; a Profile is
// one per-player ply per simultaneous iteration; a Transcript is an
// ordered sequence of plies for a sequential iteration; a History
// concatenates the plies of its completed stage outcomes.
package record

import (
	"github.com/signalnine/theoretic/perplayer"
)

// Ply is a single action: a move, optionally attributed to a player. A
// nil Player means the move was made by chance.
type Ply[M any] struct {
	Player *perplayer.Index
	Move   M
}

// NewPlayerPly constructs a ply played by the given player.
func NewPlayerPly[M any](player perplayer.Index, move M) Ply[M] {
	return Ply[M]{Player: &player, Move: move}
}

// NewChancePly constructs a ply played by chance.
func NewChancePly[M any](move M) Ply[M] {
	return Ply[M]{Player: nil, Move: move}
}

// IsPlayer reports whether this ply was played by a player (not chance).
func (p Ply[M]) IsPlayer() bool { return p.Player != nil }

// IsChance reports whether this ply was played by chance.
func (p Ply[M]) IsChance() bool { return p.Player == nil }

// Record is the shared read interface every move-record shape
// (Profile, Transcript, History) implements: spec.md §4.3's "enumerate
// plies, produce a transcript, filter plies by player or chance, summarize
// per-player ply counts".
type Record[M any] interface {
	// Plies enumerates every ply in the record, in order.
	Plies() []Ply[M]
	// Len is the exact number of plies.
	Len() int
	// Transcript renders the record as a flat, ordered Transcript.
	Transcript() Transcript[M]
	// ByPlayer returns the plies attributed to the given player, in order.
	ByPlayer(player perplayer.Index) []Ply[M]
	// ByChance returns the plies attributed to chance, in order.
	ByChance() []Ply[M]
	// Counts summarizes how many plies each player made, keyed by player
	// index value.
	Counts() map[int]int
}

// countPlies is the shared implementation of Record.Counts given a flat
// slice of plies, used by every Record implementation below.
func countPlies[M any](plies []Ply[M]) map[int]int {
	counts := make(map[int]int)
	for _, ply := range plies {
		if ply.Player != nil {
			counts[ply.Player.Value()]++
		}
	}
	return counts
}

func byPlayer[M any](plies []Ply[M], player perplayer.Index) []Ply[M] {
	var out []Ply[M]
	for _, ply := range plies {
		if ply.Player != nil && ply.Player.Value() == player.Value() {
			out = append(out, ply)
		}
	}
	return out
}

func byChance[M any](plies []Ply[M]) []Ply[M] {
	var out []Ply[M]
	for _, ply := range plies {
		if ply.Player == nil {
			out = append(out, ply)
		}
	}
	return out
}
