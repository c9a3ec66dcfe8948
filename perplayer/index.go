// Package perplayer implements the fixed-arity per-player vector and payoff
// algebra: PlayerIndex, PerPlayer, and Payoff.
package perplayer

import "fmt"

// Index is a checked reference to one of a game's players. Go has no
// const-generic arity, so unlike the source this package's Index carries
// its arity (P) as a runtime field rather than a type parameter; every
// PerPlayer operation validates that an Index's arity matches its own
// before using it, so an Index built for a 3-player game can never silently
// index into a 2-player PerPlayer. See DESIGN.md for the reasoning.
type Index struct {
	value int
	arity int
}

// NewIndex constructs a player index in [0, arity). Construction fails if
// value is out of range or arity is non-positive.
func NewIndex(value, arity int) (Index, error) {
	if arity <= 0 {
		return Index{}, fmt.Errorf("perplayer: arity must be positive, got %d", arity)
	}
	if value < 0 || value >= arity {
		return Index{}, fmt.Errorf("perplayer: player index %d out of range [0,%d)", value, arity)
	}
	return Index{value: value, arity: arity}, nil
}

// MustIndex is NewIndex but panics on error; for construction of static
// indices where the arity is known to be valid at compile time (tests,
// fixed two-player games).
func MustIndex(value, arity int) Index {
	idx, err := NewIndex(value, arity)
	if err != nil {
		panic(err)
	}
	return idx
}

// Value returns the underlying [0,arity) value.
func (i Index) Value() int { return i.value }

// Arity returns the player count this index was constructed against.
func (i Index) Arity() int { return i.arity }

func (i Index) String() string {
	return fmt.Sprintf("P%d", i.value)
}

// Indices returns every valid Index for the given arity, in order.
func Indices(arity int) []Index {
	out := make([]Index, arity)
	for i := range out {
		out[i] = Index{value: i, arity: arity}
	}
	return out
}
