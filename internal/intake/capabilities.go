package intake

import (
	"context"

	"talentintel/intake-gateway/models"
)

// Transcription is the result of one speech-to-text call.
type Transcription struct {
	Text     string
	Language string
}

// Transcriber converts a buffer of mono float samples into text. Calls may
// block for as long as the backing model needs.
type Transcriber interface {
	Transcribe(ctx context.Context, samples []float32) (Transcription, error)
}

// Prompt is one completion request: a system instruction, the user content
// and a sampling temperature.
type Prompt struct {
	System      string
	User        string
	Temperature float32
}

// Completer returns the free-form model response for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// SummarySink receives the meeting summary when a session is torn down.
type SummarySink interface {
	SaveSummary(ctx context.Context, summary models.MeetingSummary) error
}

// Conn is the persistent bidirectional connection of one session. Every
// message is a single JSON text frame.
type Conn interface {
	ReadMessage() ([]byte, error)
	WriteMessage(data []byte) error
	Close() error
}
