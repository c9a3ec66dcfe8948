package record

import "github.com/signalnine/theoretic/perplayer"

// Outcome is a record together with the payoff it produced: the common
// shape of SimultaneousOutcome, SequentialOutcome, and History. Grounded
// on the source's t4t::Outcome trait.
type Outcome[M any, U perplayer.Number] interface {
	Record[M]
	Payoff() perplayer.Payoff[U]
}

// SimultaneousOutcome is the outcome of one simultaneous-move iteration:
// the profile played plus the payoff it produced.
type SimultaneousOutcome[M any, U perplayer.Number] struct {
	Profile Profile[M]
	Payout  perplayer.Payoff[U]
}

func (o SimultaneousOutcome[M, U]) Payoff() perplayer.Payoff[U]     { return o.Payout }
func (o SimultaneousOutcome[M, U]) Plies() []Ply[M]                 { return o.Profile.Plies() }
func (o SimultaneousOutcome[M, U]) Len() int                        { return o.Profile.Len() }
func (o SimultaneousOutcome[M, U]) Transcript() Transcript[M]       { return o.Profile.Transcript() }
func (o SimultaneousOutcome[M, U]) ByPlayer(p perplayer.Index) []Ply[M] { return o.Profile.ByPlayer(p) }
func (o SimultaneousOutcome[M, U]) ByChance() []Ply[M]              { return o.Profile.ByChance() }
func (o SimultaneousOutcome[M, U]) Counts() map[int]int             { return o.Profile.Counts() }

// SequentialOutcome is the outcome of one sequential iteration: the
// transcript of plies plus the payoff it produced.
type SequentialOutcome[M any, U perplayer.Number] struct {
	Seq    Transcript[M]
	Payout perplayer.Payoff[U]
}

func (o SequentialOutcome[M, U]) Payoff() perplayer.Payoff[U]         { return o.Payout }
func (o SequentialOutcome[M, U]) Plies() []Ply[M]                     { return o.Seq.Plies() }
func (o SequentialOutcome[M, U]) Len() int                            { return o.Seq.Len() }
func (o SequentialOutcome[M, U]) Transcript() Transcript[M]           { return o.Seq }
func (o SequentialOutcome[M, U]) ByPlayer(p perplayer.Index) []Ply[M] { return o.Seq.ByPlayer(p) }
func (o SequentialOutcome[M, U]) ByChance() []Ply[M]                  { return o.Seq.ByChance() }
func (o SequentialOutcome[M, U]) Counts() map[int]int                 { return o.Seq.Counts() }

var (
	_ Outcome[int, int] = SimultaneousOutcome[int, int]{}
	_ Outcome[int, int] = SequentialOutcome[int, int]{}
)
