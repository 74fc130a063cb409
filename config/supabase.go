package config

import (
	"errors"
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// ErrSupabaseNotConfigured is returned when no Supabase URL or key is set.
var ErrSupabaseNotConfigured = errors.New("supabase is not configured")

// InitSupabase creates a Supabase client from the given settings.
func InitSupabase(cfg SupabaseConfig) (*supa.Client, error) {
	if cfg.URL == "" || cfg.ServiceKey == "" {
		return nil, ErrSupabaseNotConfigured
	}

	client, err := supa.NewClient(cfg.URL, cfg.ServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("error initializing Supabase client: %w", err)
	}

	if Log != nil {
		Log.WithField("url", cfg.URL).Info("Supabase client initialized successfully.")
	}
	return client, nil
}
