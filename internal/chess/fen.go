package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// FromFEN constructs a Game from a six-field FEN record. Any defect in any
// field is an error and no partial Game is returned.
func FromFEN(fen string) (Game, error) {
	var g Game

	sections := strings.Split(fen, " ")
	if len(sections) != 6 {
		return Game{}, fmt.Errorf("fen: want 6 fields, got %d", len(sections))
	}

	rows := strings.Split(sections[0], "/")
	if len(rows) != 8 {
		return Game{}, fmt.Errorf("fen: want 8 board rows, got %d", len(rows))
	}

	// FEN lists rank 8 first; row 7 is rank 8.
	for i, rowStr := range rows {
		row := 7 - i
		col := 0
		for j := 0; j < len(rowStr); j++ {
			if col >= 8 {
				return Game{}, fmt.Errorf("fen: too many columns in rank %d", row+1)
			}
			c := rowStr[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			pc, ok := PieceFromLetter(c)
			if !ok {
				return Game{}, fmt.Errorf("fen: invalid square value %q", c)
			}
			g.Board.Put(Pos(row, col), pc)
			col++
		}
		if col < 8 {
			return Game{}, fmt.Errorf("fen: too few columns in rank %d", row+1)
		}
		if col > 8 {
			return Game{}, fmt.Errorf("fen: too many columns in rank %d", row+1)
		}
	}

	turn, ok := ParseColor(sections[1])
	if !ok {
		return Game{}, fmt.Errorf("fen: invalid side to move %q", sections[1])
	}
	g.Turn = turn

	if sections[2] != "-" {
		if len(sections[2]) == 0 || len(sections[2]) > 4 {
			return Game{}, fmt.Errorf("fen: invalid castling field %q", sections[2])
		}
		for i := 0; i < len(sections[2]); i++ {
			switch sections[2][i] {
			case 'K':
				g.Castling[White].Kingside = true
			case 'Q':
				g.Castling[White].Queenside = true
			case 'k':
				g.Castling[Black].Kingside = true
			case 'q':
				g.Castling[Black].Queenside = true
			default:
				return Game{}, fmt.Errorf("fen: invalid castling letter %q", sections[2][i])
			}
		}
	}

	if sections[3] != "-" {
		target, err := ParseSquare(sections[3])
		if err != nil {
			return Game{}, fmt.Errorf("fen: invalid en-passant field: %w", err)
		}
		// The skipped square must sit behind a pawn that just double
		// stepped, from the mover's point of view.
		wantRow, pawnRow := 5, 4
		doubleStepper := Piece{Type: Pawn, Color: Black}
		if g.Turn == Black {
			wantRow, pawnRow = 2, 3
			doubleStepper = Piece{Type: Pawn, Color: White}
		}
		if target.Row != wantRow || g.Board.Get(Pos(pawnRow, target.Col)) != doubleStepper {
			return Game{}, fmt.Errorf("fen: inconsistent en-passant square %q", sections[3])
		}
		g.enPassant = target
		g.hasEnPassant = true
	}

	halfMoves, err := strconv.Atoi(sections[4])
	if err != nil || halfMoves < 0 {
		return Game{}, fmt.Errorf("fen: invalid halfmove clock %q", sections[4])
	}
	g.HalfMoves = halfMoves

	fullMoves, err := strconv.Atoi(sections[5])
	if err != nil || fullMoves < 0 {
		return Game{}, fmt.Errorf("fen: invalid fullmove counter %q", sections[5])
	}
	g.FullMoves = fullMoves

	return g, nil
}

// FEN renders the position as a full six-field FEN record.
func (g *Game) FEN() string {
	var sb strings.Builder

	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			pc := g.Board.Get(Pos(row, col))
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	castle := ""
	if g.Castling[White].Kingside {
		castle += "K"
	}
	if g.Castling[White].Queenside {
		castle += "Q"
	}
	if g.Castling[Black].Kingside {
		castle += "k"
	}
	if g.Castling[Black].Queenside {
		castle += "q"
	}
	if castle == "" {
		castle = "-"
	}

	enPassant := "-"
	if g.hasEnPassant {
		enPassant = g.enPassant.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d", sb.String(), g.Turn, castle, enPassant, g.HalfMoves, g.FullMoves)
}
