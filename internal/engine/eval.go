package engine

import (
	"math/rand"

	"github.com/benbeisheim/chessbot-backend/internal/chess"
)

// Material values are (midgame, endgame) pairs interpolated by the phase of
// the game. Pawns gain weight as material comes off; the queen is held
// cheap early so the search does not rush her out.
var pieceValues = [...][2]int{
	chess.Pawn:   {100, 160},
	chess.Knight: {300, 320},
	chess.Bishop: {325, 360},
	chess.Rook:   {500, 500},
	chess.Queen:  {800, 1000},
	chess.King:   {0, 0},
}

// phaseWeights drive the midgame/endgame interpolation: a full board scores
// totalPhase, a bare-kings board scores 0.
var phaseWeights = [...]int{
	chess.Knight: 1,
	chess.Bishop: 1,
	chess.Rook:   2,
	chess.Queen:  4,
}

const totalPhase = 24

const (
	bishopPairBonus  = 50
	castleRightBonus = 15
	jitterSpan       = 7 // evaluation jitter drawn from [-3, 3]
)

// Piece-square tables are immutable process-wide configuration. They are
// written from White's point of view with row 0 as White's home rank;
// Black indexes them through the mirrored row.

var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

// kingTableMid keeps the king tucked behind its pawns in the midgame;
// kingTableEnd pulls it toward the center and away from edges and corners
// once material thins out.
var kingTableMid = [8][8]int{
	{20, 30, 10, 0, 0, 10, 30, 20},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
}

var kingTableEnd = [8][8]int{
	{-50, -30, -30, -30, -30, -30, -30, -50},
	{-30, -30, 0, 0, 0, 0, -30, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -20, -10, 0, 0, -10, -20, -30},
	{-50, -40, -30, -20, -20, -30, -40, -50},
}

// phase measures how much of the starting material is still on the board,
// in [0, totalPhase].
func phase(b *chess.Board) int {
	p := 0
	for _, c := range [2]chess.Color{chess.White, chess.Black} {
		for _, pp := range b.Pieces(c) {
			if int(pp.Type) < len(phaseWeights) {
				p += phaseWeights[pp.Type]
			}
		}
	}
	if p > totalPhase {
		p = totalPhase
	}
	return p
}

// taper interpolates a midgame/endgame value pair by game phase.
func taper(mid, end, ph int) int {
	return (mid*ph + end*(totalPhase-ph)) / totalPhase
}

// tableRow mirrors the piece-square table row for Black.
func tableRow(row int, c chess.Color) int {
	if c == chess.White {
		return row
	}
	return 7 - row
}

// evaluate scores a position from the engine's own perspective: material
// with tapered values and a bishop-pair bonus, piece-square terms for
// pawns, knights and kings, a flat bonus per retained own castling right
// and penalty per retained opponent right, plus a small jitter to break
// ties between equal moves.
func (e *Engine) evaluate(g *chess.Game) int {
	ph := phase(&g.Board)
	score := 0

	for _, c := range [2]chess.Color{chess.White, chess.Black} {
		side := 0
		bishops := 0
		for _, pp := range g.Board.Pieces(c) {
			side += taper(pieceValues[pp.Type][0], pieceValues[pp.Type][1], ph)
			row := tableRow(pp.Pos.Row, c)
			switch pp.Type {
			case chess.Pawn:
				side += pawnTable[row][pp.Pos.Col]
			case chess.Knight:
				side += knightTable[row][pp.Pos.Col]
			case chess.Bishop:
				bishops++
			case chess.King:
				side += taper(kingTableMid[row][pp.Pos.Col], kingTableEnd[row][pp.Pos.Col], ph)
			}
		}
		if bishops >= 2 {
			side += bishopPairBonus
		}

		rights := g.Castling[c]
		if rights.Kingside {
			side += castleRightBonus
		}
		if rights.Queenside {
			side += castleRightBonus
		}

		if c == e.color {
			score += side
		} else {
			score -= side
		}
	}

	if e.jitter {
		score += rand.Intn(jitterSpan) - jitterSpan/2
	}
	return score
}
