package engine

import (
	"sync"

	"github.com/benbeisheim/chessbot-backend/internal/chess"
)

const (
	infinity = 1 << 30

	// winScore dominates any evaluation total; the remaining-depth bonus
	// makes the search prefer the faster of two forced mates.
	winScore       = 1_000_000
	mateDepthBonus = 1_000

	// Flat nudge for castling at the root of the parallel search.
	castleMoveBonus = 25
)

// mateValue scores a no-legal-moves position from the maximizing side's
// perspective: a loss if the side to move is the maximizer, a win if it is
// the opponent. Stalemate is handled by the callers (value 0).
func mateValue(depth int, maximizing bool) int {
	v := winScore + depth*mateDepthBonus
	if maximizing {
		return -v
	}
	return v
}

// minimax is the workhorse: depth-limited alternation between the engine
// maximizing and the opponent minimizing, with alpha-beta cutoffs.
func (e *Engine) minimax(g *chess.Game, depth, alpha, beta int, maximizing bool) int {
	if depth <= 0 {
		return e.evaluate(g)
	}

	moves := g.LegalMoves()
	if len(moves) == 0 {
		if g.InCheck() {
			return mateValue(depth, maximizing)
		}
		return 0
	}

	if maximizing {
		best := -infinity
		for _, m := range moves {
			next := *g
			next.MakeMove(m)
			if v := e.minimax(&next, depth-1, alpha, beta, false); v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
			if best >= beta {
				break
			}
		}
		return best
	}

	best := infinity
	for _, m := range moves {
		next := *g
		next.MakeMove(m)
		if v := e.minimax(&next, depth-1, alpha, beta, true); v < best {
			best = v
		}
		if best < beta {
			beta = best
		}
		if best <= alpha {
			break
		}
	}
	return best
}

// BestMove evaluates each root move's subtree to depth-1 and returns the
// move maximizing the engine's score. Ties keep the first move found. The
// second return is false when there is no legal move (mate, stalemate, or
// a kingless misconfiguration).
func (e *Engine) BestMove() (chess.Move, bool) {
	moves := e.game.LegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, false
	}

	best := moves[0]
	bestScore := -infinity
	alpha := -infinity
	for _, m := range moves {
		next := e.game
		next.MakeMove(m)
		v := e.minimax(&next, e.depth-1, alpha, infinity, false)
		if v > bestScore {
			bestScore = v
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best, true
}

type leafScore struct {
	root  int
	score int
}

// BestMoveParallel expands two plies up front (own move x opponent reply)
// and evaluates each resulting subtree concurrently. Per root move the
// reply scores reduce by minimum (the opponent picks the worst case for
// us); the chosen move maximizes that minimum, with a flat bonus for
// castling. Every worker owns a private cloned Game, so there is no shared
// mutable state to guard.
func (e *Engine) BestMoveParallel() (chess.Move, bool) {
	moves := e.game.LegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, false
	}

	scores := make([]int, len(moves))
	for i := range scores {
		scores[i] = infinity
	}

	var wg sync.WaitGroup
	results := make(chan leafScore, 64)

	for i, m := range moves {
		next := e.game
		next.MakeMove(m)

		replies := next.LegalMoves()
		if len(replies) == 0 {
			// Terminal after our own move: mate or stalemate.
			if next.InCheck() {
				scores[i] = winScore + (e.depth-1)*mateDepthBonus
			} else {
				scores[i] = 0
			}
			continue
		}

		for _, r := range replies {
			leaf := next
			leaf.MakeMove(r)
			wg.Add(1)
			go func(root int, leaf chess.Game) {
				defer wg.Done()
				results <- leafScore{root: root, score: e.minimax(&leaf, e.depth-2, -infinity, infinity, true)}
			}(i, leaf)
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if r.score < scores[r.root] {
			scores[r.root] = r.score
		}
	}

	best := 0
	for i, m := range moves {
		if m.Kind == chess.CastleKingside || m.Kind == chess.CastleQueenside {
			scores[i] += castleMoveBonus
		}
		if scores[i] > scores[best] {
			best = i
		}
	}
	return moves[best], true
}
