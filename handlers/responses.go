package handlers

import "talentintel/intake-gateway/models"

// ErrorResponse defines a common structure for error responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SessionCreated is returned by create-session.
type SessionCreated struct {
	SessionID    string `json:"session_id"`
	WebsocketURL string `json:"websocket_url"`
}

// SessionCreatedResponse wraps SessionCreated in the success envelope.
type SessionCreatedResponse struct {
	Status string         `json:"status"`
	Data   SessionCreated `json:"data"`
}

// SessionListResponse lists live session ids.
type SessionListResponse struct {
	Status string   `json:"status"`
	Data   []string `json:"data"`
}

// SessionSummaryResponse wraps a live session summary.
type SessionSummaryResponse struct {
	Status string                `json:"status"`
	Data   models.SessionSummary `json:"data"`
}

// SummaryHistoryResponse wraps persisted meeting summaries.
type SummaryHistoryResponse struct {
	Status string                  `json:"status"`
	Data   []models.MeetingSummary `json:"data"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	ActiveSessions int    `json:"active_sessions"`
}
