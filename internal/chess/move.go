package chess

import "fmt"

// MoveKind discriminates the Move union.
type MoveKind int8

const (
	NormalMove MoveKind = iota
	CastleKingside
	CastleQueenside
	Promotion
)

// Move is one of: kingside castle, queenside castle, a plain from-to move,
// or a pawn promotion carrying the chosen piece type. Moves compare
// structurally, so they can key maps.
type Move struct {
	Kind    MoveKind
	From    Position
	To      Position
	Promote PieceType
}

// String renders the move-text form: "O-O", "O-O-O", "e2e4" or "e7e8q".
func (m Move) String() string {
	switch m.Kind {
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	case Promotion:
		return fmt.Sprintf("%s%s%c", m.From, m.To, m.Promote.Letter())
	default:
		return fmt.Sprintf("%s%s", m.From, m.To)
	}
}

// ParseMove decodes move text: "O-O" and "O-O-O" for castling, four
// algebraic characters for a plain move, or four characters plus one of
// q, r, b, n for a promotion.
func ParseMove(s string) (Move, error) {
	switch s {
	case "O-O":
		return Move{Kind: CastleKingside}, nil
	case "O-O-O":
		return Move{Kind: CastleQueenside}, nil
	}

	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}

	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}

	if len(s) == 4 {
		return Move{Kind: NormalMove, From: from, To: to}, nil
	}

	switch s[4] {
	case 'q':
		return Move{Kind: Promotion, From: from, To: to, Promote: Queen}, nil
	case 'r':
		return Move{Kind: Promotion, From: from, To: to, Promote: Rook}, nil
	case 'b':
		return Move{Kind: Promotion, From: from, To: to, Promote: Bishop}, nil
	case 'n':
		return Move{Kind: Promotion, From: from, To: to, Promote: Knight}, nil
	}
	return Move{}, fmt.Errorf("invalid move %q: bad promotion piece %q", s, s[4])
}
