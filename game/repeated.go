package game

import (
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
	"github.com/signalnine/theoretic/tree"
)

// RepeatedState carries a stage game's own state alongside the
// in-progress History of completed stage outcomes and how many rounds
// remain.
type RepeatedState[S any, M any, U perplayer.Number] struct {
	Stage     S
	Completed record.History[M, U]
	Remaining int
}

// Repeated wraps a stage Playable into an iterated Playable whose State
// is a RepeatedState, whose Move type is the stage's Move, and whose
// Outcome is the accumulated History. Grounded on spec.md §4.7: the tree
// is built by generating the stage game's tree and substituting the End
// constructor so that, on stage completion, the outcome is appended to
// the history and either another stage tree is spliced in or the full
// History is emitted as the final outcome.
type Repeated[S any, M any, U perplayer.Number, V any, SO record.Outcome[M, U]] struct {
	stage Playable[S, M, U, V, SO]
	n     int
}

// NewRepeated constructs a Repeated game that plays stage exactly n times.
func NewRepeated[S any, M any, U perplayer.Number, V any, SO record.Outcome[M, U]](stage Playable[S, M, U, V, SO], n int) *Repeated[S, M, U, V, SO] {
	return &Repeated[S, M, U, V, SO]{stage: stage, n: n}
}

func (r *Repeated[S, M, U, V, SO]) NumPlayers() int { return r.stage.NumPlayers() }

func (r *Repeated[S, M, U, V, SO]) StateView(state RepeatedState[S, M, U], player perplayer.Index) V {
	return r.stage.StateView(state.Stage, player)
}

// GameTree splices the stage tree's End nodes into the history
// accumulator: when a stage reaches its End node, the stage outcome is
// appended to History; if rounds remain, a fresh stage tree is spliced
// in at the successor RepeatedState, otherwise the node becomes an End
// carrying the completed History. A stage transition error propagates
// unchanged: Play returns it with a zero History, so the stages completed
// before the failure are not returned to the caller.
func (r *Repeated[S, M, U, V, SO]) GameTree() tree.Node[RepeatedState[S, M, U], M, U, record.History[M, U]] {
	initial := RepeatedState[S, M, U]{
		Stage:     r.stageInitialState(),
		Completed: record.NewHistory[M, U](r.stage.NumPlayers()),
		Remaining: r.n,
	}
	return r.splice(initial, r.stage.GameTree())
}

// stageInitialState extracts the stage's initial state by pulling the
// State off its root GameTree node, since Playable does not separately
// expose an InitialState accessor.
func (r *Repeated[S, M, U, V, SO]) stageInitialState() S {
	return r.stage.GameTree().State
}

// splice rewrites a stage subtree so that every End node defers to the
// repetition bookkeeping instead of terminating the overall game.
func (r *Repeated[S, M, U, V, SO]) splice(rstate RepeatedState[S, M, U], node tree.Node[S, M, U, SO]) tree.Node[RepeatedState[S, M, U], M, U, record.History[M, U]] {
	switch node.Kind {
	case tree.KindEnd:
		return r.afterStage(rstate, node.Outcome)

	case tree.KindChance:
		return tree.Chance(
			withStage(rstate, node.State),
			node.Distribution,
			func(outer RepeatedState[S, M, U], move M) (tree.Node[RepeatedState[S, M, U], M, U, record.History[M, U]], error) {
				next, err := node.ChanceTo(outer.Stage, move)
				if err != nil {
					return tree.Node[RepeatedState[S, M, U], M, U, record.History[M, U]]{}, err
				}
				return r.splice(RepeatedState[S, M, U]{Stage: next.State, Completed: outer.Completed, Remaining: outer.Remaining}, next), nil
			},
		)

	default: // tree.KindTurns
		return tree.Players(
			withStage(rstate, node.State),
			node.ToMove,
			func(outer RepeatedState[S, M, U], moves []M) (tree.Node[RepeatedState[S, M, U], M, U, record.History[M, U]], error) {
				next, err := node.Next(outer.Stage, moves)
				if err != nil {
					return tree.Node[RepeatedState[S, M, U], M, U, record.History[M, U]]{}, err
				}
				return r.splice(RepeatedState[S, M, U]{Stage: next.State, Completed: outer.Completed, Remaining: outer.Remaining}, next), nil
			},
		)
	}
}

func withStage[S any, M any, U perplayer.Number](rstate RepeatedState[S, M, U], stage S) RepeatedState[S, M, U] {
	rstate.Stage = stage
	return rstate
}

// afterStage appends the just-completed stage outcome to the history and
// either starts a fresh stage (if rounds remain) or terminates with the
// full History.
func (r *Repeated[S, M, U, V, SO]) afterStage(rstate RepeatedState[S, M, U], outcome SO) tree.Node[RepeatedState[S, M, U], M, U, record.History[M, U]] {
	completed := rstate.Completed.Add(outcome)
	remaining := rstate.Remaining - 1

	if remaining <= 0 {
		return tree.End[RepeatedState[S, M, U], M, U, record.History[M, U]](RepeatedState[S, M, U]{Stage: rstate.Stage, Completed: completed, Remaining: 0}, completed)
	}

	freshStage := r.stage.GameTree()
	nextState := RepeatedState[S, M, U]{Stage: freshStage.State, Completed: completed, Remaining: remaining}
	return r.splice(nextState, freshStage)
}

var (
	_ Game[RepeatedState[int, int, int], int, int, int]     = (*Repeated[int, int, int, int, record.SimultaneousOutcome[int, int]])(nil)
	_ Playable[RepeatedState[int, int, int], int, int, int, record.History[int, int]] = (*Repeated[int, int, int, int, record.SimultaneousOutcome[int, int]])(nil)
)
