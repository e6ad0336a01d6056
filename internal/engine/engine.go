// Package engine selects moves by adversarial search over cloned Game
// values. The live game advances only through AdvanceMove; every search
// works on private copies, so nothing the search does can corrupt the
// authoritative state.
package engine

import (
	"github.com/benbeisheim/chessbot-backend/internal/chess"
)

// DefaultDepth is the search depth used when the caller does not choose one.
const DefaultDepth = 4

// Engine owns a Game and picks moves for one side.
type Engine struct {
	game   chess.Game
	color  chess.Color
	depth  int
	jitter bool
	root   *node
}

// New builds an engine playing color on game, searching to depth plies.
// Evaluation jitter is on by default so repeated games do not replay the
// same line; tests turn it off.
func New(game chess.Game, color chess.Color, depth int) *Engine {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Engine{game: game, color: color, depth: depth, jitter: true}
}

// Game exposes the live game. Callers may read it freely but must mutate
// it only through AdvanceMove.
func (e *Engine) Game() *chess.Game {
	return &e.game
}

// Color returns the side the engine plays.
func (e *Engine) Color() chess.Color {
	return e.color
}

// Depth returns the configured search depth.
func (e *Engine) Depth() int {
	return e.depth
}

// SetJitter toggles the evaluation tie-break noise.
func (e *Engine) SetJitter(enabled bool) {
	e.jitter = enabled
}

// AdvanceMove applies a move to the live game. The iterative-deepening
// cache is indexed by move sequence from the old root, so it is discarded
// here.
func (e *Engine) AdvanceMove(m chess.Move) {
	e.game.MakeMove(m)
	e.root = nil
}
