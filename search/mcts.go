package search

import (
	"math"
	"sync"

	"github.com/signalnine/theoretic/dist"
	"github.com/signalnine/theoretic/perplayer"
	"github.com/signalnine/theoretic/record"
	"github.com/signalnine/theoretic/strategy"
	"github.com/signalnine/theoretic/tree"
)

// DefaultExplorationParam is the UCB1 exploration constant √2, the
// teacher's mcts/search.go default.
const DefaultExplorationParam = 1.414

// mctsNode mirrors the teacher's MCTSNode shape (mcts/node.go), adapted
// from a card-game-specific node to a generic game-tree node: State
// becomes the tree.Node being explored, Move the move that reached it,
// and Mover the perplayer.Index to move at this node (the zero Index at
// a terminal node).
type mctsNode[S any, M any, U perplayer.Number, O record.Outcome[M, U]] struct {
	Node         tree.Node[S, M, U, O]
	Move         M
	Parent       *mctsNode[S, M, U, O]
	Children     []*mctsNode[S, M, U, O]
	Visits       int
	Wins         float64
	UntriedMoves []M
	Mover        perplayer.Index
}

func newMCTSNodePool[S any, M any, U perplayer.Number, O record.Outcome[M, U]]() *sync.Pool {
	return &sync.Pool{
		New: func() interface{} {
			return &mctsNode[S, M, U, O]{
				Children:     make([]*mctsNode[S, M, U, O], 0, 8),
				UntriedMoves: make([]M, 0, 16),
			}
		},
	}
}

func (n *mctsNode[S, M, U, O]) reset() {
	var zeroNode tree.Node[S, M, U, O]
	var zeroMove M
	n.Node = zeroNode
	n.Move = zeroMove
	n.Parent = nil
	n.Children = n.Children[:0]
	n.Visits = 0
	n.Wins = 0
	n.UntriedMoves = n.UntriedMoves[:0]
	n.Mover = perplayer.Index{}
}

// ucb1 is the Upper Confidence Bound for Trees score used to balance
// exploration and exploitation during selection.
func (n *mctsNode[S, M, U, O]) ucb1(explorationParam float64) float64 {
	if n.Visits == 0 {
		return math.Inf(1)
	}
	exploitation := n.Wins / float64(n.Visits)
	exploration := explorationParam * math.Sqrt(math.Log(float64(n.Parent.Visits))/float64(n.Visits))
	return exploitation + exploration
}

func (n *mctsNode[S, M, U, O]) bestChild(explorationParam float64) *mctsNode[S, M, U, O] {
	if len(n.Children) == 0 {
		return nil
	}
	best := n.Children[0]
	bestValue := best.ucb1(explorationParam)
	for _, child := range n.Children[1:] {
		if v := child.ucb1(explorationParam); v > bestValue {
			bestValue, best = v, child
		}
	}
	return best
}

func (n *mctsNode[S, M, U, O]) mostVisitedChild() *mctsNode[S, M, U, O] {
	if len(n.Children) == 0 {
		return nil
	}
	best := n.Children[0]
	for _, child := range n.Children[1:] {
		if child.Visits > best.Visits {
			best = child
		}
	}
	return best
}

func (n *mctsNode[S, M, U, O]) isFullyExpanded() bool { return len(n.UntriedMoves) == 0 }
func (n *mctsNode[S, M, U, O]) isTerminal() bool       { return n.Node.Kind == tree.KindEnd }

// MCTS returns a Monte Carlo tree search strategy: iterations playouts
// per decision, UCB1 selection, random simulation to a terminal state,
// and move choice by most-visited child. Grounded on the teacher's
// mcts/node.go (NodePool, UCB1, BestChild/MostVisitedChild) and
// mcts/search.go's select/expand/simulate/backpropagate loop, adapted
// from card-specific GameState/LegalMove/Genome types to the generic
// tree.Node/Finite/Playable pair.
func MCTS[S any, M comparable, U perplayer.Number, O record.Outcome[M, U]](
	g TwoPlayerGame[S, M, U, O], iterations int, explorationParam float64,
) strategy.Strategy[S, M, U] {
	if explorationParam == 0 {
		explorationParam = DefaultExplorationParam
	}
	pool := newMCTSNodePool[S, M, U, O]()

	return strategy.Func[S, M, U](func(ctx strategy.Context[S, M, U]) M {
		root := g.GameTree()
		startNode, err := replay(root, ctx.InProgress.Plies())
		if err != nil {
			startNode = root
		}

		rootMCTS := pool.Get().(*mctsNode[S, M, U, O])
		rootMCTS.reset()
		rootMCTS.Node = startNode
		if startNode.Kind == tree.KindTurns {
			rootMCTS.Mover = startNode.ToMove[0]
			rootMCTS.UntriedMoves = g.PossibleMoves(startNode.ToMove[0], startNode.State)
		}
		defer releaseMCTSTree(pool, rootMCTS)

		for i := 0; i < iterations; i++ {
			node := rootMCTS

			for !node.isTerminal() && node.isFullyExpanded() && len(node.Children) > 0 {
				next := node.bestChild(explorationParam)
				if next == nil {
					break
				}
				node = next
			}

			if !node.isTerminal() && len(node.UntriedMoves) > 0 {
				node = expandMCTS(g, pool, node)
			}

			winner, ok := simulateRandomly(g, node.Node, ctx.MyIndex)
			backpropagateMCTS(node, ctx.MyIndex, winner, ok)
		}

		best := rootMCTS.mostVisitedChild()
		if best == nil {
			if len(rootMCTS.UntriedMoves) > 0 {
				return rootMCTS.UntriedMoves[0]
			}
			panic("search: MCTS found no legal move at a non-terminal node")
		}
		return best.Move
	})
}

func releaseMCTSTree[S any, M any, U perplayer.Number, O record.Outcome[M, U]](pool *sync.Pool, n *mctsNode[S, M, U, O]) {
	for _, child := range n.Children {
		releaseMCTSTree(pool, child)
	}
	pool.Put(n)
}

func expandMCTS[S any, M comparable, U perplayer.Number, O record.Outcome[M, U]](
	g TwoPlayerGame[S, M, U, O], pool *sync.Pool, node *mctsNode[S, M, U, O],
) *mctsNode[S, M, U, O] {
	move := node.UntriedMoves[dist.Intn(len(node.UntriedMoves))]
	node.UntriedMoves = removeFirst(node.UntriedMoves, move)

	child, err := node.Node.Next(node.Node.State, []M{move})
	if err != nil {
		return node
	}

	childMCTS := pool.Get().(*mctsNode[S, M, U, O])
	childMCTS.reset()
	childMCTS.Node = child
	childMCTS.Move = move
	childMCTS.Parent = node
	if child.Kind == tree.KindTurns {
		childMCTS.Mover = child.ToMove[0]
		childMCTS.UntriedMoves = g.PossibleMoves(child.ToMove[0], child.State)
	}
	node.Children = append(node.Children, childMCTS)
	return childMCTS
}

func removeFirst[M comparable](moves []M, target M) []M {
	for i, m := range moves {
		if m == target {
			out := make([]M, 0, len(moves)-1)
			out = append(out, moves[:i]...)
			out = append(out, moves[i+1:]...)
			return out
		}
	}
	return moves
}

// simulateRandomly plays out node's subtree to a terminal state using
// uniform-random moves, returning whether the simulation favored the
// perspective player (win), per the teacher's simulate()'s random
// playout policy.
func simulateRandomly[S any, M comparable, U perplayer.Number, O record.Outcome[M, U]](
	g TwoPlayerGame[S, M, U, O], node tree.Node[S, M, U, O], perspective perplayer.Index,
) (won bool, ok bool) {
	const maxDepth = 10000
	for depth := 0; depth < maxDepth; depth++ {
		if node.Kind == tree.KindEnd {
			payoff := node.Outcome.Payoff()
			return payoff.At(perspective) > 0, true
		}
		if node.Kind == tree.KindChance {
			move := node.Distribution.Sample()
			next, err := node.ChanceTo(node.State, move)
			if err != nil {
				return false, false
			}
			node = next
			continue
		}
		player := node.ToMove[0]
		moves := g.PossibleMoves(player, node.State)
		if len(moves) == 0 {
			return false, false
		}
		move := moves[dist.Intn(len(moves))]
		next, err := node.Next(node.State, []M{move})
		if err != nil {
			return false, false
		}
		node = next
	}
	return false, false
}

// backpropagateMCTS updates visit/win statistics up the tree: a node's
// wins count the playouts won by the player who chose the move into it
// (its parent's Mover), so bestChild and mostVisitedChild at a node rank
// children from the point of view of the player deciding there. Since
// won is already relative to perspective, that player shares the win
// when it matches perspective and perspective won, or when it is the
// other player and perspective lost. The root has no parent and only
// counts visits.
func backpropagateMCTS[S any, M any, U perplayer.Number, O record.Outcome[M, U]](node *mctsNode[S, M, U, O], perspective perplayer.Index, won bool, ok bool) {
	for n := node; n != nil; n = n.Parent {
		n.Visits++
		if !ok || n.Parent == nil {
			continue
		}
		moverIsPerspective := n.Parent.Mover == perspective
		if moverIsPerspective == won {
			n.Wins += 1.0
		}
	}
}
