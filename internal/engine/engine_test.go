package engine

import (
	"testing"

	"github.com/benbeisheim/chessbot-backend/internal/chess"
	"github.com/benbeisheim/chessbot-backend/internal/testutil"
)

func TestNewClampsDepth(t *testing.T) {
	e := New(chess.NewGame(), chess.White, 0)
	testutil.AssertEqual(t, e.Depth(), DefaultDepth)

	e = New(chess.NewGame(), chess.Black, 2)
	testutil.AssertEqual(t, e.Depth(), 2)
	testutil.AssertEqual(t, e.Color(), chess.Black)
}

func TestAdvanceMoveDiscardsSearchTree(t *testing.T) {
	e := quietEngine(t, chess.StartFEN, chess.Black, 2)

	if _, ok := e.BestMoveIterative(2); !ok {
		t.Fatal("expected a move from the start position")
	}
	if e.root == nil {
		t.Fatal("iterative search should leave a cached tree behind")
	}

	m, err := chess.ParseMove("e2e4")
	testutil.AssertNoError(t, err)
	e.AdvanceMove(m)

	if e.root != nil {
		t.Error("advancing the live game must discard the cached tree")
	}
	testutil.AssertEqual(t, e.Game().Turn, chess.Black)
}

func TestIterativeSearchReusesTree(t *testing.T) {
	e := quietEngine(t, chess.StartFEN, chess.White, 2)

	if _, ok := e.BestMoveIterative(2); !ok {
		t.Fatal("expected a move from the start position")
	}
	root := e.root

	if _, ok := e.BestMoveIterative(2); !ok {
		t.Fatal("expected a move on the repeat search")
	}
	if e.root != root {
		t.Error("a repeat search at the same depth should reuse the cached tree")
	}
	testutil.AssertEqual(t, root.depth, 2)
	testutil.AssertEqual(t, len(root.children), 20)
}
