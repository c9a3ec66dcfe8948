package record

import "github.com/signalnine/theoretic/perplayer"

// Transcript is an ordered sequence of plies: the record for one
// sequential iteration. Grounded on the source's t4t::Transcript.
type Transcript[M any] struct {
	plies []Ply[M]
}

// NewTranscript wraps an already-ordered slice of plies as a Transcript.
// The slice is copied.
func NewTranscript[M any](plies []Ply[M]) Transcript[M] {
	cp := make([]Ply[M], len(plies))
	copy(cp, plies)
	return Transcript[M]{plies: cp}
}

// Append returns a new Transcript with ply appended. Transcript values are
// otherwise immutable.
func (t Transcript[M]) Append(ply Ply[M]) Transcript[M] {
	cp := make([]Ply[M], len(t.plies)+1)
	copy(cp, t.plies)
	cp[len(t.plies)] = ply
	return Transcript[M]{plies: cp}
}

func (t Transcript[M]) Plies() []Ply[M] {
	cp := make([]Ply[M], len(t.plies))
	copy(cp, t.plies)
	return cp
}

func (t Transcript[M]) Len() int { return len(t.plies) }

func (t Transcript[M]) Transcript() Transcript[M] { return t }

func (t Transcript[M]) ByPlayer(player perplayer.Index) []Ply[M] {
	return byPlayer(t.plies, player)
}

func (t Transcript[M]) ByChance() []Ply[M] {
	return byChance(t.plies)
}

func (t Transcript[M]) Counts() map[int]int {
	return countPlies(t.plies)
}

var _ Record[int] = Transcript[int]{}
