package controller

import (
	"github.com/benbeisheim/chessbot-backend/internal/chess"
	"github.com/benbeisheim/chessbot-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	FEN   string `json:"fen"`
	Color string `json:"color"` // "white" (default) or "black"
	Depth int    `json:"depth"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	playerColor := chess.White
	switch req.Color {
	case "", "white":
	case "black":
		playerColor = chess.Black
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "color must be \"white\" or \"black\"",
		})
	}

	gameID, state, err := gc.gameService.CreateGame(playerID, req.FEN, playerColor, req.Depth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"game_id": gameID,
		"state":   state,
	})
}

type moveRequest struct {
	Move string `json:"move"`
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := gc.gameService.HandleMove(gameID, playerID, req.Move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch game state",
		})
	}
	return c.JSON(state)
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		if err.Error() == "game not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch game state",
		})
	}

	return c.JSON(state)
}
