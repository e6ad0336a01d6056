package engine

import (
	"github.com/benbeisheim/chessbot-backend/internal/chess"
)

// node memoizes one explored position in the tree rooted at the live game.
// The tree is indexed by move sequence, not by board identity, which is why
// AdvanceMove throws it away.
type node struct {
	children []child
	value    int
	depth    int // deepest completed search through this node; -1 when never searched
	expanded bool
}

type child struct {
	move chess.Move
	node *node
}

func newNode() *node {
	return &node{depth: -1}
}

// terminal reports a position known to have no legal moves. Such a node is
// never re-expanded.
func (n *node) terminal() bool {
	return n.expanded && len(n.children) == 0
}

// BestMoveIterative deepens the cached tree one ply at a time up to
// maxDepth, reusing every node already searched at least as deep as the
// current pass asks for. The cache survives across calls until the live
// game advances. This variant runs plain minimax: cached values must be
// exact, and values computed under narrowed alpha-beta windows are only
// bounds.
func (e *Engine) BestMoveIterative(maxDepth int) (chess.Move, bool) {
	if maxDepth < 1 {
		maxDepth = e.depth
	}
	if e.root == nil {
		e.root = newNode()
	}

	for d := 1; d <= maxDepth; d++ {
		e.searchNode(e.root, &e.game, d, true)
	}

	if len(e.root.children) == 0 {
		return chess.Move{}, false
	}

	best := e.root.children[0]
	for _, ch := range e.root.children[1:] {
		if ch.node.value > best.node.value {
			best = ch
		}
	}
	return best.move, true
}

// searchNode evaluates a node to the requested depth, reusing the cached
// value when it is already deep enough.
func (e *Engine) searchNode(n *node, g *chess.Game, depth int, maximizing bool) int {
	if n.depth >= depth || n.terminal() {
		return n.value
	}

	if depth == 0 {
		n.value = e.evaluate(g)
		n.depth = 0
		return n.value
	}

	if !n.expanded {
		for _, m := range g.LegalMoves() {
			n.children = append(n.children, child{move: m, node: newNode()})
		}
		n.expanded = true
		if len(n.children) == 0 {
			if g.InCheck() {
				n.value = mateValue(depth, maximizing)
			} else {
				n.value = 0
			}
			n.depth = depth
			return n.value
		}
	}

	best := -infinity
	if !maximizing {
		best = infinity
	}
	for _, ch := range n.children {
		next := *g
		next.MakeMove(ch.move)
		v := e.searchNode(ch.node, &next, depth-1, !maximizing)
		if maximizing && v > best {
			best = v
		} else if !maximizing && v < best {
			best = v
		}
	}

	n.value = best
	n.depth = depth
	return best
}
