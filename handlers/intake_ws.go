package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"talentintel/intake-gateway/internal/intake"
)

// wsConn adapts a fiber WebSocket to the text-frame Conn used by intake sessions.
type wsConn struct {
	conn *websocket.Conn
}

func (w wsConn) ReadMessage() ([]byte, error) {
	_, data, err := w.conn.ReadMessage()
	return data, err
}

func (w wsConn) WriteMessage(data []byte) error {
	return w.conn.WriteMessage(websocket.TextMessage, data)
}

// Close unblocks a pending ReadMessage before closing. Closing a hijacked
// fasthttp connection is a no-op while the handler is still running.
func (w wsConn) Close() error {
	if err := w.conn.SetReadDeadline(time.Now()); err != nil {
		return err
	}
	return w.conn.Close()
}

// RequireWebSocketUpgrade rejects plain HTTP requests to WebSocket routes.
func RequireWebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// IntakeWebSocket godoc
// @Summary Intake session stream
// @Description Upgrades to a WebSocket carrying audio_chunk, participant_join, manual_requirement and question_asked frames in, and transcription_update and analysis_update frames out.
// @Tags intake
// @Param id path string true "Session ID"
// @Success 101
// @Failure 426 {object} ErrorResponse "Upgrade required"
// @Router /ws/intake/{id} [get]
func (h *ApplicationHandler) IntakeWebSocket() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		sessionID := c.Params("id")
		log := h.Logger.WithField("session_id", sessionID)

		err := h.Intake.Run(h.BaseContext, sessionID, wsConn{conn: c})
		switch {
		case err == nil:
		case errors.Is(err, intake.ErrSessionExists):
			log.Warn("Rejected connection for an already active session")
			msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "session already active")
			c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
			c.Close()
		case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived):
			log.Info("Client disconnected")
		case websocket.IsUnexpectedCloseError(err):
			log.WithError(err).Warn("Client closed the connection unexpectedly")
		default:
			log.WithError(err).Info("Session connection ended")
		}
	})
}
