package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chessbot-backend/internal/chess"
	"github.com/benbeisheim/chessbot-backend/internal/engine"
	"github.com/benbeisheim/chessbot-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// SessionConnections holds the live websocket connections for one session.
type SessionConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func newSessionConnections() *SessionConnections {
	return &SessionConnections{connections: make(map[string]*websocket.Conn)}
}

// Session is one human-versus-engine game: the engine owns the
// authoritative Game, the session owns turn discipline, resolution and
// the observers.
type Session struct {
	ID string

	mu          sync.Mutex
	engine      *engine.Engine
	playerID    string
	playerColor chess.Color
	connections *SessionConnections
	lastMove    string
	engineMove  string
	resolve     string // "", "checkmate" or "stalemate"
}

// SessionState is the client-facing snapshot broadcast after every move.
type SessionState struct {
	FEN         string   `json:"fen"`
	ToMove      string   `json:"toMove"`
	PlayerColor string   `json:"playerColor"`
	IsCheck     bool     `json:"isCheck"`
	LegalMoves  []string `json:"legalMoves"`
	LastMove    string   `json:"lastMove,omitempty"`
	EngineMove  string   `json:"engineMove,omitempty"`
	Resolve     string   `json:"resolve,omitempty"`
}

func colorName(c chess.Color) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// NewSession starts a session where the engine plays the opposite color of
// playerColor. If the position already has the engine to move, its first
// move is played before the session is handed back.
func NewSession(id, playerID string, game chess.Game, playerColor chess.Color, depth int) (*Session, error) {
	for _, c := range [2]chess.Color{chess.White, chess.Black} {
		if _, ok := game.Board.KingSquare(c); !ok {
			return nil, fmt.Errorf("position has no %s king", colorName(c))
		}
	}

	s := &Session{
		ID:          id,
		engine:      engine.New(game, playerColor.Opponent(), depth),
		playerID:    playerID,
		playerColor: playerColor,
		connections: newSessionConnections(),
	}
	s.updateResolve()
	if err := s.playEngineMove(); err != nil {
		return nil, err
	}
	return s, nil
}

// MakeMove validates and applies one player move, then obtains and applies
// the engine's reply. The authoritative game only ever advances here, and
// only with moves drawn from legal move generation.
func (s *Session) MakeMove(playerID, moveText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if playerID != s.playerID {
		return errors.New("not a player in this game")
	}
	if s.resolve != "" {
		return errors.New("game is over")
	}

	game := s.engine.Game()
	if game.Turn != s.playerColor {
		return errors.New("not your turn")
	}

	move, err := chess.ParseMove(moveText)
	if err != nil {
		return err
	}

	legal := false
	for _, m := range game.LegalMoves() {
		if m == move {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("illegal move %q", moveText)
	}

	s.engine.AdvanceMove(move)
	s.lastMove = move.String()
	s.engineMove = ""
	s.updateResolve()

	if err := s.playEngineMove(); err != nil {
		return err
	}

	go s.broadcastState()
	return nil
}

// playEngineMove advances the engine's reply when it is the engine's turn
// and the game is not over. Caller must hold s.mu or have exclusive access.
func (s *Session) playEngineMove() error {
	if s.resolve != "" {
		return nil
	}
	game := s.engine.Game()
	if game.Turn == s.playerColor {
		return nil
	}

	reply, ok := s.engine.BestMoveParallel()
	if !ok {
		// updateResolve already classified mate/stalemate, so an empty
		// move set here means the position lost a king somewhere.
		return errors.New("engine has no legal moves in unresolved position")
	}
	s.engine.AdvanceMove(reply)
	s.engineMove = reply.String()
	s.updateResolve()
	return nil
}

// updateResolve classifies the position for the side to move.
func (s *Session) updateResolve() {
	game := s.engine.Game()
	if _, ok := game.Board.KingSquare(game.Turn); !ok {
		return
	}
	if len(game.LegalMoves()) > 0 {
		return
	}
	if game.InCheck() {
		s.resolve = "checkmate"
	} else {
		s.resolve = "stalemate"
	}
}

// State snapshots the session for clients.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() SessionState {
	game := s.engine.Game()

	var legal []string
	if s.resolve == "" && game.Turn == s.playerColor {
		for _, m := range game.LegalMoves() {
			legal = append(legal, m.String())
		}
	}

	return SessionState{
		FEN:         game.FEN(),
		ToMove:      colorName(game.Turn),
		PlayerColor: colorName(s.playerColor),
		IsCheck:     game.InCheck(),
		LegalMoves:  legal,
		LastMove:    s.lastMove,
		EngineMove:  s.engineMove,
		Resolve:     s.resolve,
	}
}

// IsPlayer reports whether playerID is the human in this session.
func (s *Session) IsPlayer(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerID == playerID
}

// RegisterConnection attaches a websocket to the session and pushes the
// current state to it. A second connection for the same player is rejected
// in favor of the existing one.
func (s *Session) RegisterConnection(playerID string, conn *websocket.Conn) error {
	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		s.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()

	go s.broadcastState()
	return nil
}

// UnregisterConnection detaches a player's websocket.
func (s *Session) UnregisterConnection(playerID string) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	delete(s.connections.connections, playerID)
}

// broadcastState pushes the session state to every connection, dropping
// any connection that fails to accept the write. A failed push never
// touches the game state itself; clients can always re-fetch over REST.
func (s *Session) broadcastState() {
	state := s.State()
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("session %s: marshal state: %v", s.ID, err)
		return
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for playerID, conn := range s.connections.connections {
		err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: payload,
		})
		if err != nil {
			log.Printf("session %s: push to %s failed, dropping connection: %v", s.ID, playerID, err)
			delete(s.connections.connections, playerID)
		}
	}
}
