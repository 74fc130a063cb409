package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := load("", envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 3*time.Second, cfg.Intake.TranscriptionInterval)
	assert.Equal(t, 5*time.Second, cfg.Intake.AnalysisInterval)
	assert.Len(t, cfg.Intake.RequiredCategories, 4)
	assert.Equal(t, "Hiring timeline and urgency", cfg.Intake.RequiredCategories["timeline"])
	assert.Len(t, cfg.Intake.ExtractionCategories, 7)
	assert.Equal(t, "openai", cfg.Intake.Transcriber)
	assert.Equal(t, "intake_session_summaries", cfg.Supabase.SummariesTable)
}

func TestYAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":9090"
intake:
  analysis_interval: 10s
  required_categories:
    salary: Compensation range
persistence:
  workers: 4
`)
	cfg, err := load(path, envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.Intake.AnalysisInterval)
	assert.Equal(t, 3*time.Second, cfg.Intake.TranscriptionInterval, "unset keys keep defaults")
	assert.Equal(t, map[string]string{"salary": "Compensation range"}, cfg.Intake.RequiredCategories)
	assert.Equal(t, 4, cfg.Persistence.Workers)
	assert.Equal(t, 64, cfg.Persistence.QueueSize)
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "listen_addr: \":9090\"\n")
	cfg, err := load(path, envFrom(map[string]string{
		"INTAKE_LISTEN_ADDR":            ":7070",
		"INTAKE_TRANSCRIPTION_INTERVAL": "500ms",
		"OPENAI_API_KEY":                "sk-test",
		"SUPABASE_URL":                  "https://example.supabase.co",
		"PERSIST_QUEUE_SIZE":            "8",
		"INTAKE_TRANSCRIBER":            "grpc",
		"AI_SERVICE_ADDR":               "localhost:50051",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, 500*time.Millisecond, cfg.Intake.TranscriptionInterval)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "https://example.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, 8, cfg.Persistence.QueueSize)
	assert.Equal(t, "grpc", cfg.Intake.Transcriber)
	assert.Equal(t, "localhost:50051", cfg.AIService.Addr)
}

func TestInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		yaml string
	}{
		{name: "bad duration", env: map[string]string{"INTAKE_ANALYSIS_INTERVAL": "soon"}},
		{name: "zero period", env: map[string]string{"INTAKE_TRANSCRIPTION_INTERVAL": "0s"}},
		{name: "bad int", env: map[string]string{"PERSIST_WORKERS": "two"}},
		{name: "unknown transcriber", env: map[string]string{"INTAKE_TRANSCRIBER": "whisper.cpp"}},
		{name: "grpc without addr", env: map[string]string{"INTAKE_TRANSCRIBER": "grpc"}},
		{name: "empty vocabulary", yaml: "intake:\n  extraction_categories: []\n"},
		{name: "malformed yaml", yaml: "intake: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.yaml != "" {
				path = writeConfig(t, tt.yaml)
			}
			_, err := load(path, envFrom(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), envFrom(nil))
	assert.Error(t, err)
}

func TestInitLoggerFallsBackToInfo(t *testing.T) {
	logger := InitLogger("verbose")
	assert.Equal(t, "info", logger.GetLevel().String())

	logger = InitLogger("debug")
	assert.Equal(t, "debug", logger.GetLevel().String())
}

func TestInitSupabaseRequiresCredentials(t *testing.T) {
	_, err := InitSupabase(SupabaseConfig{URL: "https://example.supabase.co"})
	assert.ErrorIs(t, err, ErrSupabaseNotConfigured)
}
