package service

import (
	"strings"
	"testing"

	"github.com/benbeisheim/chessbot-backend/internal/chess"
	"github.com/benbeisheim/chessbot-backend/internal/testutil"
)

const testPlayerID = "player-1"

func TestCreateSessionAsWhite(t *testing.T) {
	gm := NewGameManager(2)

	session, err := gm.CreateSession(testPlayerID, "", chess.White, 0)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, session.ID != "", "session should get an ID")
	testutil.AssertTrue(t, session.IsPlayer(testPlayerID), "creator is the player")
	testutil.AssertTrue(t, !session.IsPlayer("someone-else"), "strangers are not the player")

	state := session.State()
	testutil.AssertEqual(t, state.FEN, chess.StartFEN)
	testutil.AssertEqual(t, state.ToMove, "white")
	testutil.AssertEqual(t, state.PlayerColor, "white")
	testutil.AssertEqual(t, state.IsCheck, false)
	testutil.AssertEqual(t, len(state.LegalMoves), 20)
	testutil.AssertEqual(t, state.EngineMove, "")
	testutil.AssertEqual(t, state.Resolve, "")
}

func TestCreateSessionAsBlackEngineOpens(t *testing.T) {
	gm := NewGameManager(2)

	session, err := gm.CreateSession(testPlayerID, "", chess.Black, 0)
	testutil.AssertNoError(t, err)

	state := session.State()
	testutil.AssertEqual(t, state.ToMove, "black")
	testutil.AssertEqual(t, state.PlayerColor, "black")
	testutil.AssertTrue(t, state.EngineMove != "", "engine should open when it has white")
	testutil.AssertTrue(t, state.FEN != chess.StartFEN, "board should have advanced")
	testutil.AssertTrue(t, len(state.LegalMoves) > 0, "black should have replies")
}

func TestCreateSessionRejectsBadPositions(t *testing.T) {
	gm := NewGameManager(2)

	if _, err := gm.CreateSession(testPlayerID, "not a fen", chess.White, 0); err == nil {
		t.Error("malformed FEN should be rejected")
	}
	// Black pieces but no black king.
	if _, err := gm.CreateSession(testPlayerID, "8/8/8/8/8/8/p7/K7 w - - 0 1", chess.White, 0); err == nil {
		t.Error("kingless position should be rejected")
	}
}

func TestMakeMove(t *testing.T) {
	gm := NewGameManager(2)
	session, err := gm.CreateSession(testPlayerID, "", chess.White, 0)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, gm.MakeMove(session.ID, testPlayerID, "e2e4"))

	state := session.State()
	testutil.AssertEqual(t, state.LastMove, "e2e4")
	testutil.AssertTrue(t, state.EngineMove != "", "engine should have replied")
	testutil.AssertEqual(t, state.ToMove, "white")
}

func TestMakeMoveRejections(t *testing.T) {
	gm := NewGameManager(2)
	session, err := gm.CreateSession(testPlayerID, "", chess.White, 0)
	testutil.AssertNoError(t, err)

	testutil.AssertError(t, gm.MakeMove(session.ID, "someone-else", "e2e4"))
	testutil.AssertError(t, gm.MakeMove(session.ID, testPlayerID, "zz"))
	testutil.AssertError(t, gm.MakeMove(session.ID, testPlayerID, "e2e5"))
	testutil.AssertError(t, gm.MakeMove(session.ID, testPlayerID, "e7e5"))
	testutil.AssertError(t, gm.MakeMove("no-such-game", testPlayerID, "e2e4"))

	// None of the rejected moves may have touched the game.
	testutil.AssertEqual(t, session.State().FEN, chess.StartFEN)
}

func TestSessionResolvedAtCreation(t *testing.T) {
	gm := NewGameManager(2)

	// Fool's mate, with the human holding the mated side.
	session, err := gm.CreateSession(testPlayerID,
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 2 3", chess.White, 0)
	testutil.AssertNoError(t, err)

	state := session.State()
	testutil.AssertEqual(t, state.Resolve, "checkmate")
	testutil.AssertEqual(t, state.IsCheck, true)
	testutil.AssertEqual(t, len(state.LegalMoves), 0)

	err = gm.MakeMove(session.ID, testPlayerID, "e2e3")
	testutil.AssertError(t, err)
	if err != nil && !strings.Contains(err.Error(), "game is over") {
		t.Errorf("want game-over rejection, got %v", err)
	}
}

func TestEngineDeliversMate(t *testing.T) {
	gm := NewGameManager(3)

	// White mates in one with Ra8; the engine holds white.
	session, err := gm.CreateSession(testPlayerID, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", chess.Black, 0)
	testutil.AssertNoError(t, err)

	state := session.State()
	testutil.AssertEqual(t, state.EngineMove, "a1a8")
	testutil.AssertEqual(t, state.Resolve, "checkmate")
	testutil.AssertEqual(t, state.IsCheck, true)
	testutil.AssertEqual(t, len(state.LegalMoves), 0)
}

func TestGetStateAndSessionLookup(t *testing.T) {
	gm := NewGameManager(2)
	session, err := gm.CreateSession(testPlayerID, "", chess.White, 0)
	testutil.AssertNoError(t, err)

	got, err := gm.GetSession(session.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got == session, "lookup should return the same session")

	state, err := gm.GetState(session.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state, session.State())

	if _, err := gm.GetSession("no-such-game"); err == nil {
		t.Error("unknown game ID should be an error")
	}
	if _, err := gm.GetState("no-such-game"); err == nil {
		t.Error("unknown game ID should be an error")
	}
}

func TestGameServiceCreateGame(t *testing.T) {
	gs := NewGameService(NewGameManager(2))

	id, state, err := gs.CreateGame(testPlayerID, "", chess.White, 0)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, id != "", "game should get an ID")
	testutil.AssertEqual(t, state.PlayerColor, "white")

	got, err := gs.GetGameState(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, state)

	testutil.AssertNoError(t, gs.HandleMove(id, testPlayerID, "d2d4"))
	if _, _, err := gs.CreateGame(testPlayerID, "bad fen", chess.White, 0); err == nil {
		t.Error("malformed FEN should fail game creation")
	}
}
