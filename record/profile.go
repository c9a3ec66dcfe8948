package record

import (
	"github.com/signalnine/theoretic/perplayer"
)

// Profile is a PerPlayer of moves: the record for one simultaneous
// iteration, exactly one move per player. Grounded on the source's
// t4t::Profile, a newtype over PerPlayer implementing Record by attributing
// each entry to its index.
type Profile[M any] struct {
	moves perplayer.PerPlayer[M]
}

// NewProfile wraps an already-built PerPlayer of moves as a Profile.
func NewProfile[M any](moves perplayer.PerPlayer[M]) Profile[M] {
	return Profile[M]{moves: moves}
}

// Moves returns the underlying per-player move collection.
func (p Profile[M]) Moves() perplayer.PerPlayer[M] { return p.moves }

// At returns the move played by the given player.
func (p Profile[M]) At(player perplayer.Index) M { return p.moves.At(player) }

// Arity is the number of players in this profile.
func (p Profile[M]) Arity() int { return p.moves.Arity() }

func (p Profile[M]) Plies() []Ply[M] {
	indices := perplayer.Indices(p.moves.Arity())
	plies := make([]Ply[M], len(indices))
	for i, idx := range indices {
		plies[i] = NewPlayerPly(idx, p.moves.At(idx))
	}
	return plies
}

func (p Profile[M]) Len() int { return p.moves.Arity() }

func (p Profile[M]) Transcript() Transcript[M] {
	return NewTranscript(p.Plies())
}

func (p Profile[M]) ByPlayer(player perplayer.Index) []Ply[M] {
	return byPlayer(p.Plies(), player)
}

func (p Profile[M]) ByChance() []Ply[M] {
	return nil // a Profile has no chance plies by definition
}

func (p Profile[M]) Counts() map[int]int {
	counts := make(map[int]int, p.moves.Arity())
	for _, idx := range perplayer.Indices(p.moves.Arity()) {
		counts[idx.Value()] = 1
	}
	return counts
}

var _ Record[int] = Profile[int]{}
