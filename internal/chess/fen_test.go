package chess

import (
	"testing"

	"github.com/benbeisheim/chessbot-backend/internal/testutil"
)

func TestFromFENStartPosition(t *testing.T) {
	g, err := FromFEN(StartFEN)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, g.Turn, White)
	testutil.AssertEqual(t, g.Castling[White], CastleRights{Kingside: true, Queenside: true})
	testutil.AssertEqual(t, g.Castling[Black], CastleRights{Kingside: true, Queenside: true})
	testutil.AssertEqual(t, g.HalfMoves, 0)
	testutil.AssertEqual(t, g.FullMoves, 1)

	if _, ok := g.EnPassantTarget(); ok {
		t.Error("start position should have no en-passant target")
	}

	testutil.AssertEqual(t, g.Board.Get(Pos(0, 4)), Piece{Type: King, Color: White})
	testutil.AssertEqual(t, g.Board.Get(Pos(7, 3)), Piece{Type: Queen, Color: Black})
	testutil.AssertEqual(t, g.Board.Get(Pos(1, 0)), Piece{Type: Pawn, Color: White})
	testutil.AssertEqual(t, g.Board.Get(Pos(4, 4)), Piece{})
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/6k1/4K2R w K - 12 40",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		g, err := FromFEN(fen)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, g.FEN(), fen)
	}
}

func TestFromFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq"},
		{"too many fields", StartFEN + " 0"},
		{"seven rows", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"invalid piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"row overflow", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"row underflow", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"digit overflow", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1"},
		{"castling too long", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqK - 0 1"},
		{"en passant bad square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1"},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1"},
		{"en passant without pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 1"},
		{"non-numeric halfmove clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
		{"negative halfmove clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1"},
		{"non-numeric fullmove counter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromFEN(tt.fen); err == nil {
				t.Errorf("FromFEN(%q): expected error", tt.fen)
			}
		})
	}
}

func TestFromFENEnPassant(t *testing.T) {
	g, err := FromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertNoError(t, err)

	target, ok := g.EnPassantTarget()
	testutil.AssertTrue(t, ok, "en-passant target should be set")
	testutil.AssertEqual(t, target, Pos(2, 4))
}
