package demo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"talentintel/intake-gateway/models"
)

// ErrSessionNotFound is returned when the gateway does not know a session.
var ErrSessionNotFound = errors.New("session not found")

// SessionInfo is the gateway's answer to create-session.
type SessionInfo struct {
	SessionID    string `json:"session_id"`
	WebsocketURL string `json:"websocket_url"`
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client talks to an intake gateway over HTTP and WebSocket.
type Client struct {
	baseURL string
	http    *http.Client
	dialer  *websocket.Dialer
}

// NewClient creates a client for the gateway at baseURL, e.g. http://localhost:8080.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		dialer:  websocket.DefaultDialer,
	}
}

// CreateSession allocates a new intake session.
func (c *Client) CreateSession(ctx context.Context) (SessionInfo, error) {
	var info SessionInfo
	if err := c.do(ctx, http.MethodPost, "/intake/sessions", &info); err != nil {
		return SessionInfo{}, fmt.Errorf("creating session: %w", err)
	}
	return info, nil
}

// Summary fetches the live summary of a session.
func (c *Client) Summary(ctx context.Context, sessionID string) (models.SessionSummary, error) {
	var summary models.SessionSummary
	if err := c.do(ctx, http.MethodGet, "/intake/sessions/"+sessionID+"/summary", &summary); err != nil {
		return models.SessionSummary{}, fmt.Errorf("fetching summary: %w", err)
	}
	return summary, nil
}

// Connect opens the session's WebSocket.
func (c *Client) Connect(ctx context.Context, wsURL string) (*websocket.Conn, error) {
	conn, _, err := c.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", wsURL, err)
	}
	return conn, nil
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response (HTTP %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrSessionNotFound
	}
	if resp.StatusCode >= 300 || env.Status != "success" {
		return fmt.Errorf("gateway returned HTTP %d: %s", resp.StatusCode, env.Message)
	}
	return json.Unmarshal(env.Data, out)
}
