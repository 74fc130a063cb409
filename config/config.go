package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration of the intake gateway.
type Config struct {
	ListenAddr  string            `yaml:"listen_addr" validate:"required"`
	LogLevel    string            `yaml:"log_level" validate:"required"`
	Intake      IntakeConfig      `yaml:"intake"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	AIService   AIServiceConfig   `yaml:"ai_service"`
	Supabase    SupabaseConfig    `yaml:"supabase"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

// IntakeConfig drives the per-session transcription and analysis loops.
type IntakeConfig struct {
	TranscriptionInterval time.Duration `yaml:"transcription_interval" validate:"gt=0"`
	AnalysisInterval      time.Duration `yaml:"analysis_interval" validate:"gt=0"`
	// RequiredCategories maps each category that must be covered to the
	// label reported while it is missing.
	RequiredCategories   map[string]string `yaml:"required_categories" validate:"required,min=1"`
	ExtractionCategories []string          `yaml:"extraction_categories" validate:"required,min=1,dive,required"`
	SampleRate           int               `yaml:"sample_rate" validate:"gt=0"`
	Transcriber          string            `yaml:"transcriber" validate:"oneof=openai grpc none"`
}

// OpenAIConfig configures both the Whisper transcriber and the chat completer.
type OpenAIConfig struct {
	APIKey             string `yaml:"api_key"`
	BaseURL            string `yaml:"base_url"`
	ChatModel          string `yaml:"chat_model" validate:"required"`
	TranscriptionModel string `yaml:"transcription_model" validate:"required"`
}

// AIServiceConfig points at the gRPC speech service.
type AIServiceConfig struct {
	Addr string `yaml:"addr"`
}

// SupabaseConfig holds the credentials for the summaries store. An empty URL
// disables persistence.
type SupabaseConfig struct {
	URL            string `yaml:"url"`
	ServiceKey     string `yaml:"service_key"`
	SummariesTable string `yaml:"summaries_table" validate:"required"`
}

// PersistenceConfig sizes the background persistence worker pool.
type PersistenceConfig struct {
	Workers   int `yaml:"workers" validate:"gt=0"`
	QueueSize int `yaml:"queue_size" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ListenAddr: ":8080",
		LogLevel:   "info",
		Intake: IntakeConfig{
			TranscriptionInterval: 3 * time.Second,
			AnalysisInterval:      5 * time.Second,
			RequiredCategories: map[string]string{
				"technical_skills": "Specific technical skills and technologies",
				"experience_level": "Required years of experience and seniority level",
				"timeline":         "Hiring timeline and urgency",
				"location":         "Work location and remote policy",
			},
			ExtractionCategories: []string{
				"technical_skills", "experience_level", "culture_fit",
				"timeline", "location", "salary", "team_size",
			},
			SampleRate:  16000,
			Transcriber: "openai",
		},
		OpenAI: OpenAIConfig{
			ChatModel:          "gpt-3.5-turbo",
			TranscriptionModel: "whisper-1",
		},
		Supabase: SupabaseConfig{
			SummariesTable: "intake_session_summaries",
		},
		Persistence: PersistenceConfig{
			Workers:   2,
			QueueSize: 64,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, an
// optional .env file and the process environment, in that order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}
	return load(configFilePath(), os.Getenv)
}

func load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config %s: %w", path, err)
		}
		// yaml merges into non-nil maps; the file's table replaces the default one.
		defaults := cfg.Intake.RequiredCategories
		cfg.Intake.RequiredCategories = nil
		decErr := yaml.NewDecoder(f).Decode(cfg)
		f.Close()
		if decErr != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, decErr)
		}
		if cfg.Intake.RequiredCategories == nil {
			cfg.Intake.RequiredCategories = defaults
		}
	}

	if err := applyEnvOverrides(cfg, getenv); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Intake.Transcriber == "grpc" && cfg.AIService.Addr == "" {
		return nil, fmt.Errorf("invalid configuration: AI_SERVICE_ADDR is required for the grpc transcriber")
	}
	return cfg, nil
}

// configFilePath resolves INTAKE_CONFIG, then config/<CONFIG_ENV>/config.yaml.
// It returns "" when neither exists.
func configFilePath() string {
	if p := os.Getenv("INTAKE_CONFIG"); p != "" {
		return p
	}
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	p := filepath.Join("config", env, "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

func applyEnvOverrides(cfg *Config, getenv func(string) string) error {
	setString := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) error {
		if v := getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", key, v, err)
			}
			*dst = d
		}
		return nil
	}
	setInt := func(key string, dst *int) error {
		if v := getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", key, v, err)
			}
			*dst = n
		}
		return nil
	}

	setString("INTAKE_LISTEN_ADDR", &cfg.ListenAddr)
	setString("LOG_LEVEL", &cfg.LogLevel)
	setString("INTAKE_TRANSCRIBER", &cfg.Intake.Transcriber)
	setString("OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	setString("OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	setString("OPENAI_CHAT_MODEL", &cfg.OpenAI.ChatModel)
	setString("OPENAI_TRANSCRIPTION_MODEL", &cfg.OpenAI.TranscriptionModel)
	setString("AI_SERVICE_ADDR", &cfg.AIService.Addr)
	setString("SUPABASE_URL", &cfg.Supabase.URL)
	setString("SUPABASE_SERVICE_KEY", &cfg.Supabase.ServiceKey)
	setString("SUPABASE_SUMMARIES_TABLE", &cfg.Supabase.SummariesTable)

	if err := setDuration("INTAKE_TRANSCRIPTION_INTERVAL", &cfg.Intake.TranscriptionInterval); err != nil {
		return err
	}
	if err := setDuration("INTAKE_ANALYSIS_INTERVAL", &cfg.Intake.AnalysisInterval); err != nil {
		return err
	}
	if err := setInt("INTAKE_SAMPLE_RATE", &cfg.Intake.SampleRate); err != nil {
		return err
	}
	if err := setInt("PERSIST_WORKERS", &cfg.Persistence.Workers); err != nil {
		return err
	}
	return setInt("PERSIST_QUEUE_SIZE", &cfg.Persistence.QueueSize)
}
