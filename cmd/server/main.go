package main

import (
	"flag"
	"log"

	"github.com/benbeisheim/chessbot-backend/internal/controller"
	"github.com/benbeisheim/chessbot-backend/internal/middleware"
	"github.com/benbeisheim/chessbot-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

var (
	listenAddr  = flag.String("addr", ":3000", "listen address")
	searchDepth = flag.Int("depth", 4, "default engine search depth in plies")
	corsOrigin  = flag.String("origin", "http://localhost:5173", "allowed CORS origin")
)

func main() {
	flag.Parse()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     *corsOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(func(c *fiber.Ctx) error {
		log.Printf("%s %s", c.Method(), c.Path())
		return c.Next()
	})

	// Initialize services
	gameManager := service.NewGameManager(*searchDepth)
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{*corsOrigin},
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Get("/:gameId", gameController.GetGameState)

	log.Fatal(app.Listen(*listenAddr))
}
