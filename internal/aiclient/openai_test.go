package aiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentintel/intake-gateway/config"
	"talentintel/intake-gateway/internal/intake"
)

func newTestOpenAI(t *testing.T, handler http.Handler) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewOpenAIClient(config.OpenAIConfig{
		APIKey:             "test-key",
		BaseURL:            srv.URL + "/v1",
		ChatModel:          "gpt-3.5-turbo",
		TranscriptionModel: "whisper-1",
	}, 16000, quietLogger())
}

func TestOpenAIComplete(t *testing.T) {
	var got struct {
		Model       string  `json:"model"`
		Temperature float32 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-3.5-turbo",
			"choices":[{"index":0,"message":{"role":"assistant","content":"[{\"text\":\"Go\"}]"},"finish_reason":"stop"}]}`)
	})
	c := newTestOpenAI(t, mux)

	out, err := c.Complete(context.Background(), intake.Prompt{System: "sys", User: "usr", Temperature: 0.3})
	require.NoError(t, err)
	assert.Equal(t, `[{"text":"Go"}]`, out)

	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	assert.InDelta(t, 0.3, got.Temperature, 1e-6)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "sys", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "usr", got.Messages[1].Content)
}

func TestOpenAICompleteServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":{"message":"overloaded","type":"server_error"}}`)
	})
	c := newTestOpenAI(t, mux)

	_, err := c.Complete(context.Background(), intake.Prompt{User: "x"})
	assert.Error(t, err)
}

func TestOpenAITranscribe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/audio/transcriptions", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		assert.Equal(t, "verbose_json", r.FormValue("response_format"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "audio.wav", header.Filename)
		assert.Len(t, data, 44+2*1024)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"task":"transcribe","language":"english","duration":0.06,"text":"we need a Go engineer"}`)
	})
	c := newTestOpenAI(t, mux)

	res, err := c.Transcribe(context.Background(), make([]float32, 1024))
	require.NoError(t, err)
	assert.Equal(t, "we need a Go engineer", res.Text)
	assert.Equal(t, "english", res.Language)
}

func TestOpenAIWithoutKey(t *testing.T) {
	c := NewOpenAIClient(config.OpenAIConfig{ChatModel: "m", TranscriptionModel: "w"}, 16000, quietLogger())

	_, err := c.Complete(context.Background(), intake.Prompt{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.Transcribe(context.Background(), []float32{0})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDisabled(t *testing.T) {
	var d Disabled
	_, err := d.Transcribe(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = d.Complete(context.Background(), intake.Prompt{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
