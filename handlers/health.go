package handlers

import "github.com/gofiber/fiber/v2"

// Health godoc
// @Summary Health check
// @Description Reports liveness and the number of live intake sessions.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *ApplicationHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(HealthResponse{
		Status:         "ok",
		Message:        "Intake gateway is healthy",
		ActiveSessions: h.Intake.Registry().Len(),
	})
}
