package aiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"talentintel/intake-gateway/config"
	"talentintel/intake-gateway/internal/intake"
)

// OpenAIClient transcribes audio with Whisper and answers prompts with chat
// completions. It satisfies both intake.Transcriber and intake.Completer.
type OpenAIClient struct {
	client             *openai.Client
	chatModel          string
	transcriptionModel string
	sampleRate         int
	logger             *logrus.Logger
}

// NewOpenAIClient creates a client from cfg. Without an API key the client
// is created but every call returns ErrNotConfigured.
func NewOpenAIClient(cfg config.OpenAIConfig, sampleRate int, logger *logrus.Logger) *OpenAIClient {
	c := &OpenAIClient{
		chatModel:          cfg.ChatModel,
		transcriptionModel: cfg.TranscriptionModel,
		sampleRate:         sampleRate,
		logger:             logger,
	}
	if cfg.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, transcription and analysis will produce no results")
		return c
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	c.client = openai.NewClientWithConfig(clientCfg)
	logger.WithFields(logrus.Fields{
		"chat_model":          cfg.ChatModel,
		"transcription_model": cfg.TranscriptionModel,
	}).Info("OpenAI client initialized")
	return c
}

// Transcribe implements intake.Transcriber.
func (c *OpenAIClient) Transcribe(ctx context.Context, samples []float32) (intake.Transcription, error) {
	if c.client == nil {
		return intake.Transcription{}, ErrNotConfigured
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcriptionModel,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(encodeWAV(samples, c.sampleRate)),
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return intake.Transcription{}, fmt.Errorf("whisper transcription: %w", err)
	}
	return intake.Transcription{Text: resp.Text, Language: resp.Language}, nil
}

// Complete implements intake.Completer.
func (c *OpenAIClient) Complete(ctx context.Context, p intake.Prompt) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
		Temperature: p.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
