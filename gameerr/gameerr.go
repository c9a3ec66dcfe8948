// Package gameerr defines the two failure kinds a game can surface while
// being played: InvalidMove and NoNextState. See spec.md §7.
package gameerr

import (
	"fmt"

	"github.com/signalnine/theoretic/perplayer"
)

// InvalidMove reports that a strategy returned a move not admissible at
// the current node. It carries the state at the point of failure so
// callers (tournament bookkeeping, tests) can inspect what went wrong
// without re-walking the tree.
type InvalidMove[S any, M any] struct {
	State  S
	Player perplayer.Index
	Move   M
}

func (e *InvalidMove[S, M]) Error() string {
	return fmt.Sprintf("player %s played an invalid move: %v", e.Player, e.Move)
}

// NoNextState reports that a transition closure failed on a move the game
// itself considered valid — a bug in the game's definition, not in a
// strategy. Reserved for games that validate moves separately from
// computing their successor state (e.g. StateBased.NextState).
type NoNextState[M any] struct {
	Move M
}

func (e *NoNextState[M]) Error() string {
	return fmt.Sprintf("no next state for apparently valid move: %v", e.Move)
}
