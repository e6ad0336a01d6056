package chess

// CastleRights are one side's remaining castling options. They are only
// ever cleared, never re-granted.
type CastleRights struct {
	Kingside  bool
	Queenside bool
}

// Game is the authoritative rules state machine: a board plus turn,
// castling rights, en-passant target and move clocks. A Game is a plain
// value; copying one yields an independent clone, which is how the search
// explores hypothetical futures.
type Game struct {
	Board     Board
	Turn      Color
	Castling  [2]CastleRights // indexed by Color
	HalfMoves int
	FullMoves int

	enPassant    Position
	hasEnPassant bool
}

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGame returns the standard start position.
func NewGame() Game {
	g, err := FromFEN(StartFEN)
	if err != nil {
		panic("chess: decode standard start FEN failed: " + err.Error())
	}
	return g
}

// EnPassantTarget returns the square a pawn skipped on the immediately
// preceding double step, if any.
func (g *Game) EnPassantTarget() (Position, bool) {
	return g.enPassant, g.hasEnPassant
}

// InCheck reports whether the side to move has its king attacked.
// A position with no king is never in check.
func (g *Game) InCheck() bool {
	kingSq, ok := g.Board.KingSquare(g.Turn)
	if !ok {
		return false
	}
	return g.Board.HasCheck(kingSq, g.Turn)
}

func homeRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

func kingsideRookHome(c Color) Position  { return Pos(homeRow(c), 7) }
func queensideRookHome(c Color) Position { return Pos(homeRow(c), 0) }

// LegalMoves produces the exact set of legal moves for the side to move.
// Every candidate passes through Board.TestMove against the real king
// square, so pins and discovered checks need no special tracking. If the
// side to move has no king (only reachable through a malformed FEN) the
// result is empty; callers must treat that as a configuration error, not
// as mate.
func (g *Game) LegalMoves() []Move {
	var moves []Move

	pieces := g.Board.Pieces(g.Turn)
	kingSq, ok := g.Board.KingSquare(g.Turn)
	if !ok {
		return nil
	}

	for _, pp := range pieces {
		from := pp.Pos
		switch pp.Type {
		case King:
			for _, d := range kingOffsets {
				to, ok := from.Offset(d[0], d[1])
				if !ok {
					continue
				}
				if occ := g.Board.Get(to); !occ.IsEmpty() && occ.Color == g.Turn {
					continue
				}
				// The destination is the king square after the move.
				if g.Board.TestMove(from, to, to, g.Turn) {
					moves = append(moves, Move{Kind: NormalMove, From: from, To: to})
				}
			}
		case Queen:
			for _, to := range g.Board.slideTargets(from, g.Turn, bishopDirs, false) {
				if g.Board.TestMove(from, to, kingSq, g.Turn) {
					moves = append(moves, Move{Kind: NormalMove, From: from, To: to})
				}
			}
			for _, to := range g.Board.slideTargets(from, g.Turn, rookDirs, false) {
				if g.Board.TestMove(from, to, kingSq, g.Turn) {
					moves = append(moves, Move{Kind: NormalMove, From: from, To: to})
				}
			}
		case Bishop:
			for _, to := range g.Board.slideTargets(from, g.Turn, bishopDirs, false) {
				if g.Board.TestMove(from, to, kingSq, g.Turn) {
					moves = append(moves, Move{Kind: NormalMove, From: from, To: to})
				}
			}
		case Rook:
			for _, to := range g.Board.slideTargets(from, g.Turn, rookDirs, false) {
				if g.Board.TestMove(from, to, kingSq, g.Turn) {
					moves = append(moves, Move{Kind: NormalMove, From: from, To: to})
				}
			}
		case Knight:
			for _, to := range g.Board.knightTargets(from, g.Turn, false) {
				if g.Board.TestMove(from, to, kingSq, g.Turn) {
					moves = append(moves, Move{Kind: NormalMove, From: from, To: to})
				}
			}
		case Pawn:
			moves = g.appendPawnMoves(moves, from, kingSq)
		}
	}

	moves = g.appendCastleMoves(moves, kingSq)
	return moves
}

// appendPawnMoves emits pushes, double steps, captures, en-passant and
// promotions for one pawn. A pawn reaching the farthest rank is emitted
// only as the four promotion variants, never as a plain move.
func (g *Game) appendPawnMoves(moves []Move, from, kingSq Position) []Move {
	mustPromote := (g.Turn == White && from.Row == 6) || (g.Turn == Black && from.Row == 1)
	startRank := from.Row == 1
	if g.Turn == Black {
		startRank = from.Row == 6
	}

	emit := func(to Position) []Move {
		if mustPromote {
			for _, pt := range [...]PieceType{Queen, Rook, Bishop, Knight} {
				moves = append(moves, Move{Kind: Promotion, From: from, To: to, Promote: pt})
			}
			return moves
		}
		return append(moves, Move{Kind: NormalMove, From: from, To: to})
	}

	to, ok := from.Forward(g.Turn)
	if !ok {
		return moves
	}

	if g.Board.Get(to).IsEmpty() {
		if g.Board.TestMove(from, to, kingSq, g.Turn) {
			moves = emit(to)
		}
		if startRank {
			if to2, ok := to.Forward(g.Turn); ok && g.Board.Get(to2).IsEmpty() &&
				g.Board.TestMove(from, to2, kingSq, g.Turn) {
				moves = append(moves, Move{Kind: NormalMove, From: from, To: to2})
			}
		}
	}

	for _, dCol := range [2]int{-1, 1} {
		capTo := Pos(to.Row, from.Col+dCol)
		if !capTo.Valid() {
			continue
		}
		if g.hasEnPassant && capTo == g.enPassant {
			// The capture empties a square other than the destination,
			// so simulate the pawn removal too before rechecking the king.
			next := g.Board
			next.Move(from, capTo)
			if passed, ok := capTo.Backward(g.Turn); ok {
				next.Remove(passed)
			}
			if !next.HasCheck(kingSq, g.Turn) {
				moves = append(moves, Move{Kind: NormalMove, From: from, To: capTo})
			}
			continue
		}
		occ := g.Board.Get(capTo)
		if !occ.IsEmpty() && occ.Color != g.Turn && g.Board.TestMove(from, capTo, kingSq, g.Turn) {
			moves = emit(capTo)
		}
	}

	return moves
}

// appendCastleMoves emits O-O and O-O-O when the right is held, the squares
// between king and rook are empty, and neither the king square nor any
// transit/destination square is attacked.
func (g *Game) appendCastleMoves(moves []Move, kingSq Position) []Move {
	row := homeRow(g.Turn)

	if g.Castling[g.Turn].Kingside {
		valid := !g.Board.HasCheck(kingSq, g.Turn)
		for _, col := range [2]int{5, 6} {
			sq := Pos(row, col)
			if !g.Board.Get(sq).IsEmpty() || g.Board.HasCheck(sq, g.Turn) {
				valid = false
				break
			}
		}
		if valid {
			moves = append(moves, Move{Kind: CastleKingside})
		}
	}

	if g.Castling[g.Turn].Queenside {
		valid := g.Board.Get(Pos(row, 1)).IsEmpty() && !g.Board.HasCheck(kingSq, g.Turn)
		if valid {
			for _, col := range [2]int{2, 3} {
				sq := Pos(row, col)
				if !g.Board.Get(sq).IsEmpty() || g.Board.HasCheck(sq, g.Turn) {
					valid = false
					break
				}
			}
		}
		if valid {
			moves = append(moves, Move{Kind: CastleQueenside})
		}
	}

	return moves
}

// MakeMove applies a move in place without re-validating it. It must only
// be given moves obtained from LegalMoves on this position; anything else
// is undefined behavior. All side effects happen here: castling-rights
// clearing, en-passant set/clear/capture, promotion, clocks, turn flip.
func (g *Game) MakeMove(m Move) {
	clearEnPassant := true
	movedByBlack := g.Turn == Black
	g.HalfMoves++

	switch m.Kind {
	case CastleKingside:
		g.Castling[g.Turn] = CastleRights{}
		row := homeRow(g.Turn)
		g.Board.Move(Pos(row, 4), Pos(row, 6))
		g.Board.Move(Pos(row, 7), Pos(row, 5))

	case CastleQueenside:
		g.Castling[g.Turn] = CastleRights{}
		row := homeRow(g.Turn)
		g.Board.Move(Pos(row, 4), Pos(row, 2))
		g.Board.Move(Pos(row, 0), Pos(row, 3))

	case NormalMove:
		moving := g.Board.Get(m.From)

		switch moving.Type {
		case King:
			g.Castling[g.Turn] = CastleRights{}
		case Rook:
			if m.From == kingsideRookHome(g.Turn) {
				g.Castling[g.Turn].Kingside = false
			} else if m.From == queensideRookHome(g.Turn) {
				g.Castling[g.Turn].Queenside = false
			}
		}

		g.clearRightsOnRookCapture(m.To)

		if g.hasEnPassant && m.To == g.enPassant && moving.Type == Pawn {
			if passed, ok := m.To.Backward(g.Turn); ok {
				g.Board.Remove(passed)
			}
		}

		if moving.Type == Pawn && m.From.Col == m.To.Col &&
			(m.To.Row-m.From.Row == 2 || m.From.Row-m.To.Row == 2) {
			if skipped, ok := m.To.Backward(g.Turn); ok {
				g.enPassant = skipped
				g.hasEnPassant = true
				clearEnPassant = false
			}
		}

		g.Board.Move(m.From, m.To)

	case Promotion:
		g.clearRightsOnRookCapture(m.To)
		g.Board.Remove(m.From)
		g.Board.Put(m.To, Piece{Type: m.Promote, Color: g.Turn})
	}

	g.Turn = g.Turn.Opponent()
	if movedByBlack {
		g.FullMoves++
	}
	if clearEnPassant {
		g.hasEnPassant = false
	}
}

// clearRightsOnRookCapture permanently drops the opponent's castling right
// when one of their rooks is captured on its home square.
func (g *Game) clearRightsOnRookCapture(to Position) {
	opp := g.Turn.Opponent()
	target := g.Board.Get(to)
	if target.Type != Rook || target.Color != opp {
		return
	}
	if to == kingsideRookHome(opp) {
		g.Castling[opp].Kingside = false
	} else if to == queensideRookHome(opp) {
		g.Castling[opp].Queenside = false
	}
}
