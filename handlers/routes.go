package handlers

import "github.com/gofiber/fiber/v2"

// SetupRoutes registers the intake gateway routes on app.
func SetupRoutes(app *fiber.App, h *ApplicationHandler) {
	app.Get("/health", h.Health)

	sessions := app.Group("/intake")
	sessions.Post("/sessions", h.CreateSession)
	sessions.Get("/sessions", h.ListSessions)
	sessions.Get("/sessions/:id/summary", h.GetSessionSummary)
	sessions.Get("/summaries", h.ListSummaries)

	ws := app.Group("/ws", RequireWebSocketUpgrade)
	ws.Get("/intake/:id", h.IntakeWebSocket())
}
