package chess

// Board is an 8x8 grid of squares, each holding at most one piece. It has
// no notion of turn or castling rights; the Game layer owns those. Board is
// a plain value, so copying one is a full, independent clone.
type Board struct {
	grid [8][8]Piece
}

// PlacedPiece pairs a piece type with the square it stands on.
type PlacedPiece struct {
	Pos  Position
	Type PieceType
}

var (
	rookDirs    = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	kingOffsets = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightJumps = [8][2]int{{-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {-2, -1}, {-2, 1}, {2, -1}, {2, 1}}
)

// Get returns the piece on a square; the zero Piece means empty.
func (b *Board) Get(p Position) Piece {
	return b.grid[p.Row][p.Col]
}

// Put places a piece, returning whatever occupied the square before.
func (b *Board) Put(p Position, pc Piece) Piece {
	prev := b.grid[p.Row][p.Col]
	b.grid[p.Row][p.Col] = pc
	return prev
}

// Remove clears a square and returns its prior occupant.
func (b *Board) Remove(p Position) Piece {
	prev := b.grid[p.Row][p.Col]
	b.grid[p.Row][p.Col] = Piece{}
	return prev
}

// Move relocates whatever stands on from to to, returning any capture.
// No legality check of any kind: en-passant pawn removal and the castling
// rook hop are the Game layer's business.
func (b *Board) Move(from, to Position) Piece {
	moving := b.grid[from.Row][from.Col]
	if moving.IsEmpty() {
		return Piece{}
	}
	captured := b.grid[to.Row][to.Col]
	b.grid[to.Row][to.Col] = moving
	b.grid[from.Row][from.Col] = Piece{}
	return captured
}

// Pieces lists every piece of one color with its square, scanning
// rank by rank.
func (b *Board) Pieces(c Color) []PlacedPiece {
	var out []PlacedPiece
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pc := b.grid[row][col]
			if !pc.IsEmpty() && pc.Color == c {
				out = append(out, PlacedPiece{Pos: Pos(row, col), Type: pc.Type})
			}
		}
	}
	return out
}

// KingSquare finds the king of one color.
func (b *Board) KingSquare(c Color) (Position, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pc := b.grid[row][col]
			if pc.Type == King && pc.Color == c {
				return Pos(row, col), true
			}
		}
	}
	return Position{}, false
}

// castRay walks from a square in one direction until it hits a piece or
// the edge, returning the first occupant and its distance in steps.
func (b *Board) castRay(from Position, dRow, dCol int) (Piece, int, bool) {
	dist := 0
	p, ok := from.Offset(dRow, dCol)
	for ok {
		dist++
		if pc := b.Get(p); !pc.IsEmpty() {
			return pc, dist, true
		}
		p, ok = p.Offset(dRow, dCol)
	}
	return Piece{}, 0, false
}

// knightTargets enumerates knight-jump destinations from a square that a
// piece of the given color could land on. With capturesOnly, empty squares
// are excluded, which turns the result into the set of squares a knight
// could attack from.
func (b *Board) knightTargets(from Position, c Color, capturesOnly bool) []Position {
	var out []Position
	for _, d := range knightJumps {
		to, ok := from.Offset(d[0], d[1])
		if !ok {
			continue
		}
		pc := b.Get(to)
		if pc.IsEmpty() {
			if !capturesOnly {
				out = append(out, to)
			}
		} else if pc.Color != c {
			out = append(out, to)
		}
	}
	return out
}

// slideTargets enumerates destinations along the given directions up to and
// including the first enemy blocker. With capturesOnly only the blockers
// are returned.
func (b *Board) slideTargets(from Position, c Color, dirs [4][2]int, capturesOnly bool) []Position {
	var out []Position
	for _, d := range dirs {
		p, ok := from.Offset(d[0], d[1])
		for ok {
			pc := b.Get(p)
			if !pc.IsEmpty() {
				if pc.Color != c {
					out = append(out, p)
				}
				break
			}
			if !capturesOnly {
				out = append(out, p)
			}
			p, ok = p.Offset(d[0], d[1])
		}
	}
	return out
}

// HasCheck reports whether square is attacked by any piece of the opponent
// of color: a knight on a jump square, a rook or queen along an unblocked
// line, a bishop or queen along an unblocked diagonal, an enemy king at
// distance one, or an enemy pawn one step diagonally forward of square from
// color's point of view.
func (b *Board) HasCheck(square Position, c Color) bool {
	for _, d := range knightJumps {
		p, ok := square.Offset(d[0], d[1])
		if !ok {
			continue
		}
		if pc := b.Get(p); pc.Type == Knight && pc.Color != c {
			return true
		}
	}

	for _, d := range rookDirs {
		pc, dist, hit := b.castRay(square, d[0], d[1])
		if !hit || pc.Color == c {
			continue
		}
		if pc.Type == Rook || pc.Type == Queen || (pc.Type == King && dist == 1) {
			return true
		}
	}

	pawnRow := square.Row + 1
	if c == Black {
		pawnRow = square.Row - 1
	}
	for _, d := range bishopDirs {
		pc, dist, hit := b.castRay(square, d[0], d[1])
		if !hit || pc.Color == c {
			continue
		}
		switch pc.Type {
		case Bishop, Queen:
			return true
		case King:
			if dist == 1 {
				return true
			}
		case Pawn:
			if dist == 1 && square.Row+d[0] == pawnRow {
				return true
			}
		}
	}

	return false
}

// TestMove simulates from-to on a scratch copy and reports whether
// kingSquare would be safe afterwards. This is the single legality filter
// used for every move type; pins fall out of it for free.
func (b *Board) TestMove(from, to, kingSquare Position, c Color) bool {
	next := *b
	next.Move(from, to)
	return !next.HasCheck(kingSquare, c)
}
