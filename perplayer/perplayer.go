package perplayer

import "fmt"

// PerPlayer is a fixed-size ordered sequence of one T per player, indexed
// exclusively by Index. Length always equals arity; there is no resize
// after construction.
type PerPlayer[T any] struct {
	values []T
}

// Generate builds a PerPlayer of the given arity by calling f once per
// index, in index order. Mirrors t4t's PerPlayer::generate and is the
// basis for the construction-then-index round-trip law in spec.md §8.1.
func Generate[T any](arity int, f func(Index) T) PerPlayer[T] {
	if arity <= 0 {
		panic(fmt.Sprintf("perplayer: arity must be positive, got %d", arity))
	}
	values := make([]T, arity)
	for i := range values {
		idx := Index{value: i, arity: arity}
		values[i] = f(idx)
	}
	return PerPlayer[T]{values: values}
}

// Of constructs a PerPlayer directly from an already-populated slice; the
// slice's length becomes the arity. The slice is copied, so later mutation
// of the caller's slice does not affect the PerPlayer.
func Of[T any](values ...T) PerPlayer[T] {
	if len(values) == 0 {
		panic("perplayer: PerPlayer must have at least one player")
	}
	cp := make([]T, len(values))
	copy(cp, values)
	return PerPlayer[T]{values: cp}
}

// Arity is the fixed player count P.
func (p PerPlayer[T]) Arity() int { return len(p.values) }

// At returns the value for idx. Panics if idx's arity does not match p's
// arity — this is the construction-time-checked-index discipline spec.md
// §9 requires in a language without const generics.
func (p PerPlayer[T]) At(idx Index) T {
	p.checkArity(idx)
	return p.values[idx.value]
}

// WithAt returns a copy of p with idx's slot replaced by v. PerPlayer
// values are otherwise immutable from the caller's perspective.
func (p PerPlayer[T]) WithAt(idx Index, v T) PerPlayer[T] {
	p.checkArity(idx)
	cp := make([]T, len(p.values))
	copy(cp, p.values)
	cp[idx.value] = v
	return PerPlayer[T]{values: cp}
}

func (p PerPlayer[T]) checkArity(idx Index) {
	if idx.arity != len(p.values) {
		panic(fmt.Sprintf("perplayer: index arity %d does not match PerPlayer arity %d", idx.arity, len(p.values)))
	}
}

// Slice returns a defensive copy of the underlying values in index order.
func (p PerPlayer[T]) Slice() []T {
	cp := make([]T, len(p.values))
	copy(cp, p.values)
	return cp
}

// Map transforms every value, preserving arity.
func Map[T, U any](p PerPlayer[T], f func(T) U) PerPlayer[U] {
	out := make([]U, len(p.values))
	for i, v := range p.values {
		out[i] = f(v)
	}
	return PerPlayer[U]{values: out}
}

// MapWithIndex transforms every value with its Index available to f.
func MapWithIndex[T, U any](p PerPlayer[T], f func(Index, T) U) PerPlayer[U] {
	out := make([]U, len(p.values))
	for i, v := range p.values {
		idx := Index{value: i, arity: len(p.values)}
		out[i] = f(idx, v)
	}
	return PerPlayer[U]{values: out}
}

// Zip combines two equal-arity PerPlayers pointwise. Panics on arity
// mismatch.
func Zip[T, U, V any](a PerPlayer[T], b PerPlayer[U], f func(T, U) V) PerPlayer[V] {
	if a.Arity() != b.Arity() {
		panic(fmt.Sprintf("perplayer: zip arity mismatch %d vs %d", a.Arity(), b.Arity()))
	}
	out := make([]V, a.Arity())
	for i := range out {
		out[i] = f(a.values[i], b.values[i])
	}
	return PerPlayer[V]{values: out}
}
