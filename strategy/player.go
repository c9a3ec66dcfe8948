package strategy

import "github.com/signalnine/theoretic/perplayer"

// Player wraps a name and a factory that produces a fresh Strategy. Each
// match draws a new strategy instance from the factory, so a Player can
// be shared and reused across many matchups (even in parallel) without
// its strategies' internal state leaking between matches. Name uniqueness
// within a tournament is a precondition the engine does not enforce (see
// spec.md §3) — duplicate names produce unspecified Score bookkeeping.
type Player[V any, M any, U perplayer.Number] struct {
	Name    string
	Factory func() Strategy[V, M, U]
}

// NewStrategy draws a fresh Strategy instance from the player's factory.
func (p Player[V, M, U]) NewStrategy() Strategy[V, M, U] {
	return p.Factory()
}
