package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessbot-backend/internal/chess"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// GameManager owns every live session, keyed by uuid.
type GameManager struct {
	sessions     map[string]*Session
	defaultDepth int
	mu           sync.RWMutex
}

func NewGameManager(defaultDepth int) *GameManager {
	return &GameManager{
		sessions:     make(map[string]*Session),
		defaultDepth: defaultDepth,
	}
}

// CreateSession builds a session from the standard start position or a FEN
// string, assigns it a fresh ID, and returns it. depth <= 0 selects the
// manager's default.
func (gm *GameManager) CreateSession(playerID, fen string, playerColor chess.Color, depth int) (*Session, error) {
	game := chess.NewGame()
	if fen != "" {
		var err error
		game, err = chess.FromFEN(fen)
		if err != nil {
			return nil, err
		}
	}
	if depth <= 0 {
		depth = gm.defaultDepth
	}

	id := uuid.New().String()
	session, err := NewSession(id, playerID, game, playerColor, depth)
	if err != nil {
		return nil, err
	}

	gm.mu.Lock()
	gm.sessions[id] = session
	gm.mu.Unlock()
	return session, nil
}

// GetSession looks a session up by ID.
func (gm *GameManager) GetSession(id string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.sessions[id]
	if !exists {
		return nil, errors.New("game not found")
	}
	return session, nil
}

// GetState returns the client-facing snapshot of a session.
func (gm *GameManager) GetState(id string) (SessionState, error) {
	session, err := gm.GetSession(id)
	if err != nil {
		return SessionState{}, err
	}
	return session.State(), nil
}

// MakeMove forwards a player move to the session.
func (gm *GameManager) MakeMove(id, playerID, moveText string) error {
	session, err := gm.GetSession(id)
	if err != nil {
		return err
	}
	return session.MakeMove(playerID, moveText)
}

// RegisterConnection attaches a websocket connection to a session.
func (gm *GameManager) RegisterConnection(id, playerID string, conn *websocket.Conn) error {
	session, err := gm.GetSession(id)
	if err != nil {
		return fmt.Errorf("register connection: %w", err)
	}
	return session.RegisterConnection(playerID, conn)
}

// UnregisterConnection detaches a websocket connection from a session.
func (gm *GameManager) UnregisterConnection(id, playerID string) {
	session, err := gm.GetSession(id)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID)
}
