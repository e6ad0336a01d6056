package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// EnsurePlayerID requires a player identity on every request, taken from
// the X-Player-ID header or the playerId query parameter, and stores it in
// the request locals.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}

		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player ID is required",
			})
		}

		c.Locals("playerID", playerID)
		return c.Next()
	}
}
