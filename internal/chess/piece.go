package chess

// Color identifies a side. Black is 0 so a Color can index the
// castling-rights array the same way on both sides.
type Color int8

const (
	Black Color = iota
	White
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// ParseColor accepts the FEN side-to-move letters.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "w", "W":
		return White, true
	case "b", "B":
		return Black, true
	}
	return White, false
}

// PieceType identifies a chessman kind. The zero value means "no piece",
// which lets an empty board square be the zero Piece.
type PieceType int8

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Letter returns the lowercase FEN letter for the type.
func (t PieceType) Letter() byte {
	switch t {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	}
	return '?'
}

// PieceTypeFromLetter decodes a FEN piece letter of either case.
func PieceTypeFromLetter(c byte) (PieceType, bool) {
	switch c | 0x20 {
	case 'p':
		return Pawn, true
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	case 'k':
		return King, true
	}
	return NoPiece, false
}

// Piece is a pure value: a kind and a color. The zero Piece is an empty
// square.
type Piece struct {
	Type  PieceType
	Color Color
}

// IsEmpty reports whether the value represents no piece at all.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// Letter returns the FEN letter, uppercase for White.
func (p Piece) Letter() byte {
	c := p.Type.Letter()
	if p.Color == White {
		return c &^ 0x20
	}
	return c
}

// PieceFromLetter decodes a FEN piece letter; uppercase is White.
func PieceFromLetter(c byte) (Piece, bool) {
	t, ok := PieceTypeFromLetter(c)
	if !ok {
		return Piece{}, false
	}
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
	}
	return Piece{Type: t, Color: color}, true
}
