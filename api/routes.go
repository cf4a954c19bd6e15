package api

import (
	"github.com/Lucas-Veillard/KanalBack/handlers"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	router := app.Group("/api")
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("✅ API en bonne santé !")
	})

	channels := router.Group("/channels/:channelId")
	ChannelRoutes(channels, h)
	debug := router.Group("/debug")
	DebugRoutes(debug, h)
}

func ChannelRoutes(router fiber.Router, h *handlers.Handler) {
	router.Post("/messages", h.PostMessage) // POST /channels/:channelId/messages
	router.Get("/messages", h.GetMessages)  // GET  /channels/:channelId/messages
}

// Routes de maintenance, protégées par le token debug.
func DebugRoutes(router fiber.Router, h *handlers.Handler) {
	router.Post("/seed/channels/:channelId", h.SeedChannelWithMessages)
	router.Delete("/dedup/:channelId/:clientKey", h.ReleaseDedupKey)
}
