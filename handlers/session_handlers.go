package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentintel/intake-gateway/internal/db"
	"talentintel/intake-gateway/internal/intake"
	"talentintel/intake-gateway/utils"
)

// ListSummariesQuery are the query parameters of the history endpoint.
type ListSummariesQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// CreateSession godoc
// @Summary Create an intake session
// @Description Allocates a session id and returns the WebSocket address to connect to.
// @Tags intake
// @Produce json
// @Success 200 {object} SessionCreatedResponse
// @Router /intake/sessions [post]
func (h *ApplicationHandler) CreateSession(c *fiber.Ctx) error {
	sessionID := h.Intake.NewSessionID()

	scheme := "ws"
	if c.Protocol() == "https" {
		scheme = "wss"
	}
	created := SessionCreated{
		SessionID:    sessionID,
		WebsocketURL: fmt.Sprintf("%s://%s/ws/intake/%s", scheme, c.Hostname(), sessionID),
	}

	h.Logger.WithField("session_id", sessionID).Info("Intake session created")
	return utils.RespondWithJSON(c, fiber.StatusOK, created)
}

// ListSessions godoc
// @Summary List live intake sessions
// @Tags intake
// @Produce json
// @Success 200 {object} SessionListResponse
// @Router /intake/sessions [get]
func (h *ApplicationHandler) ListSessions(c *fiber.Ctx) error {
	return utils.RespondWithJSON(c, fiber.StatusOK, h.Intake.Registry().IDs())
}

// GetSessionSummary godoc
// @Summary Get a live session summary
// @Description Returns participants, duration, transcript length, counts and missing information of a live session.
// @Tags intake
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionSummaryResponse
// @Failure 404 {object} ErrorResponse "Session not found or already closed"
// @Router /intake/sessions/{id}/summary [get]
func (h *ApplicationHandler) GetSessionSummary(c *fiber.Ctx) error {
	sessionID := utils.SanitizeInput(c.Params("id"))

	summary, err := h.Intake.Summary(sessionID)
	if err != nil {
		if errors.Is(err, intake.ErrSessionNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, "Session not found")
		}
		h.Logger.WithError(err).WithField("session_id", sessionID).Error("Failed to build session summary")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not build session summary")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, summary)
}

// ListSummaries godoc
// @Summary List persisted meeting summaries
// @Description Returns summaries of closed sessions, newest first.
// @Tags intake
// @Produce json
// @Param limit query int false "Maximum number of summaries (1-100, default 20)"
// @Success 200 {object} SummaryHistoryResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 503 {object} ErrorResponse "No summary store configured"
// @Failure 500 {object} ErrorResponse "Store query failed"
// @Router /intake/summaries [get]
func (h *ApplicationHandler) ListSummaries(c *fiber.Ctx) error {
	if h.Summaries == nil {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "Summary history is not configured")
	}

	query := new(ListSummariesQuery)
	if err := c.QueryParser(query); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse query: %v", err))
	}
	if err := h.validate.Struct(query); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(utils.FormatValidationErrors(err), ", "))
	}

	summaries, err := h.Summaries.ListSummaries(c.Context(), db.ClampLimit(query.Limit))
	if err != nil {
		h.Logger.WithError(err).Error("Failed to list meeting summaries")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not retrieve meeting summaries")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, summaries)
}
