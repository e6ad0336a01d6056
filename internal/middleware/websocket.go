package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade rejects plain HTTP requests to websocket endpoints and
// checks that the game and player identifiers are present before the
// upgrade happens. The locals set here survive into the connection
// context, which is distinct from the upgrade context.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}

		playerID := c.Locals("playerID")
		if playerID == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player ID is required",
			})
		}

		c.Locals("wsGameID", gameID)
		c.Locals("wsPlayerID", playerID)

		return c.Next()
	}
}
