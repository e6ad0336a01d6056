package service

import (
	"fmt"

	"github.com/benbeisheim/chessbot-backend/internal/chess"
	"github.com/gofiber/websocket/v2"
)

// GameService is the thin application boundary the controllers talk to.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{gameManager: gameManager}
}

// CreateGame starts a human-versus-engine session and returns its ID
// together with the initial state.
func (gs *GameService) CreateGame(playerID, fen string, playerColor chess.Color, depth int) (string, SessionState, error) {
	session, err := gs.gameManager.CreateSession(playerID, fen, playerColor, depth)
	if err != nil {
		return "", SessionState{}, fmt.Errorf("failed to create game: %w", err)
	}
	return session.ID, session.State(), nil
}

func (gs *GameService) GetGameState(gameID string) (SessionState, error) {
	return gs.gameManager.GetState(gameID)
}

func (gs *GameService) HandleMove(gameID, playerID, moveText string) error {
	return gs.gameManager.MakeMove(gameID, playerID, moveText)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}
