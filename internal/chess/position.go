package chess

import "fmt"

// Position addresses a board square. Row 0 is White's home rank (rank 1),
// column 0 is the a-file. Positions compare by value.
type Position struct {
	Row, Col int
}

// Pos builds a position without bounds checking; use Offset for arithmetic
// that may leave the board.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

// Offset steps by the given deltas; ok is false if the result leaves
// the board.
func (p Position) Offset(dRow, dCol int) (Position, bool) {
	q := Position{Row: p.Row + dRow, Col: p.Col + dCol}
	return q, q.Valid()
}

// Forward steps one rank toward the opponent's back rank.
func (p Position) Forward(c Color) (Position, bool) {
	if c == White {
		return p.Offset(1, 0)
	}
	return p.Offset(-1, 0)
}

// Backward steps one rank toward the player's own back rank.
func (p Position) Backward(c Color) (Position, bool) {
	if c == White {
		return p.Offset(-1, 0)
	}
	return p.Offset(1, 0)
}

// String renders the algebraic square name, e.g. "e4".
func (p Position) String() string {
	if !p.Valid() {
		return "--"
	}
	return fmt.Sprintf("%c%d", byte('a')+byte(p.Col), p.Row+1)
}

// ParseSquare decodes a two-character algebraic square name
// (file a-h, rank 1-8).
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid square %q: must be 2 characters", s)
	}
	if s[0] < 'a' || s[0] > 'h' {
		return Position{}, fmt.Errorf("invalid square %q: bad file %q", s, s[0])
	}
	if s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("invalid square %q: bad rank %q", s, s[1])
	}
	return Position{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}, nil
}
