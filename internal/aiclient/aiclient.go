package aiclient

import (
	"context"
	"errors"

	"talentintel/intake-gateway/internal/intake"
)

// ErrNotConfigured is returned by adapters whose backing service has no
// credentials or address.
var ErrNotConfigured = errors.New("ai capability not configured")

// Disabled stands in for a capability that is switched off. Every call
// fails with ErrNotConfigured.
type Disabled struct{}

// Transcribe implements intake.Transcriber.
func (Disabled) Transcribe(context.Context, []float32) (intake.Transcription, error) {
	return intake.Transcription{}, ErrNotConfigured
}

// Complete implements intake.Completer.
func (Disabled) Complete(context.Context, intake.Prompt) (string, error) {
	return "", ErrNotConfigured
}
