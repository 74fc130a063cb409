package demo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"talentintel/intake-gateway/models"
)

// Simulator plays a Scenario against a gateway and prints what comes back.
type Simulator struct {
	client *Client
	out    *Formatter
}

func NewSimulator(client *Client, out *Formatter) *Simulator {
	return &Simulator{client: client, out: out}
}

// Run creates a session, plays every statement as a manual requirement
// followed by a silent audio chunk, and returns the session summary taken
// before disconnecting.
func (s *Simulator) Run(ctx context.Context, sc *Scenario) (models.SessionSummary, error) {
	s.out.Step(1, "Creating intake session...")
	info, err := s.client.CreateSession(ctx)
	if err != nil {
		return models.SessionSummary{}, err
	}
	s.out.Success("Session created: " + info.SessionID)

	s.out.Step(2, "Connecting to WebSocket...")
	conn, err := s.client.Connect(ctx, info.WebsocketURL)
	if err != nil {
		return models.SessionSummary{}, err
	}
	defer conn.Close()
	s.out.Success("WebSocket connected")

	listenDone := make(chan struct{})
	go func() {
		defer close(listenDone)
		s.listen(conn)
	}()

	s.out.Step(3, "Simulating intake meeting...")
	if err := s.play(ctx, conn, sc); err != nil {
		return models.SessionSummary{}, err
	}

	s.out.Step(4, "Meeting summary")
	summary, err := s.client.Summary(ctx, info.SessionID)
	if err != nil {
		return models.SessionSummary{}, err
	}
	s.out.Summary(summary)

	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "demo finished"),
		time.Now().Add(time.Second))
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	<-listenDone
	return summary, nil
}

func (s *Simulator) play(ctx context.Context, conn *websocket.Conn, sc *Scenario) error {
	if err := conn.WriteJSON(map[string]any{
		"type": models.MessageParticipantJoin,
		"name": sc.Participant,
	}); err != nil {
		return err
	}
	s.out.Success(sc.Participant + " joined the meeting")

	for i, statement := range sc.Statements {
		s.out.Said(sc.Participant, statement)
		if err := conn.WriteJSON(map[string]any{
			"type":     models.MessageManualRequirement,
			"text":     statement,
			"category": Categorize(statement),
		}); err != nil {
			return err
		}
		if err := sleep(ctx, sc.settle()); err != nil {
			return err
		}

		if sc.AudioSamples > 0 {
			if err := conn.WriteJSON(map[string]any{
				"type":  models.MessageAudioChunk,
				"audio": make([]float32, sc.AudioSamples),
			}); err != nil {
				return err
			}
		}

		if i < len(sc.Statements)-1 {
			if err := sleep(ctx, sc.pause()); err != nil {
				return err
			}
		}
	}
	return nil
}

// listen prints server events until the connection closes.
func (s *Simulator) listen(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var head struct {
			Type string `json:"type"`
		}
		if json.Unmarshal(data, &head) != nil {
			continue
		}
		switch head.Type {
		case models.EventTranscriptionUpdate:
			var u models.TranscriptionUpdate
			if json.Unmarshal(data, &u) == nil {
				s.out.Transcription(u)
			}
		case models.EventAnalysisUpdate:
			var u models.AnalysisUpdate
			if json.Unmarshal(data, &u) == nil {
				s.out.Analysis(u)
			}
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
