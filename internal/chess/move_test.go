package chess

import (
	"testing"

	"github.com/benbeisheim/chessbot-backend/internal/testutil"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		text string
		want Move
	}{
		{"O-O", Move{Kind: CastleKingside}},
		{"O-O-O", Move{Kind: CastleQueenside}},
		{"e2e4", Move{Kind: NormalMove, From: Pos(1, 4), To: Pos(3, 4)}},
		{"a7a8q", Move{Kind: Promotion, From: Pos(6, 0), To: Pos(7, 0), Promote: Queen}},
		{"b7b8r", Move{Kind: Promotion, From: Pos(6, 1), To: Pos(7, 1), Promote: Rook}},
		{"c2c1b", Move{Kind: Promotion, From: Pos(1, 2), To: Pos(0, 2), Promote: Bishop}},
		{"d2d1n", Move{Kind: Promotion, From: Pos(1, 3), To: Pos(0, 3), Promote: Knight}},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.text)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, tt.want)
		testutil.AssertEqual(t, got.String(), tt.text)
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, s := range []string{"", "e2", "e2e", "e2e9", "i2e4", "e2e4x", "e7e8k", "e7e8qq", "o-o"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q): expected error", s)
		}
	}
}
