package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	postgrest "github.com/supabase-community/postgrest-go"

	"talentintel/intake-gateway/models"
)

// DefaultListLimit and MaxListLimit bound ListSummaries page sizes.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ErrNoRecordReturned is returned when an insert succeeds without echoing the row.
var ErrNoRecordReturned = errors.New("no record returned after insert")

// QueryClient is satisfied by both *supabase.Client and *postgrest.Client.
type QueryClient interface {
	From(table string) *postgrest.QueryBuilder
}

// SummaryStore reads and writes meeting summaries in a Supabase table.
type SummaryStore struct {
	client QueryClient
	table  string
	logger *logrus.Logger
}

// NewSummaryStore creates a store over table.
func NewSummaryStore(client QueryClient, table string, logger *logrus.Logger) *SummaryStore {
	return &SummaryStore{client: client, table: table, logger: logger}
}

// SaveSummary inserts one meeting summary.
func (s *SummaryStore) SaveSummary(_ context.Context, summary models.MeetingSummary) error {
	var results []models.MeetingSummary
	_, err := s.client.From(s.table).
		Insert(summary, false, "", "representation", "").
		ExecuteTo(&results)
	if err != nil {
		return fmt.Errorf("failed to insert summary for session %s: %w", summary.SessionID, err)
	}
	if len(results) == 0 {
		return fmt.Errorf("session %s: %w", summary.SessionID, ErrNoRecordReturned)
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": summary.SessionID,
		"table":      s.table,
	}).Info("Meeting summary stored")
	return nil
}

// ListSummaries returns persisted summaries, newest first. limit is clamped
// to [1, MaxListLimit]; zero or less selects DefaultListLimit.
func (s *SummaryStore) ListSummaries(_ context.Context, limit int) ([]models.MeetingSummary, error) {
	limit = ClampLimit(limit)

	var summaries []models.MeetingSummary
	_, err := s.client.From(s.table).
		Select("*", "", false).
		Order("ended_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(&summaries)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	if summaries == nil {
		summaries = []models.MeetingSummary{}
	}
	return summaries, nil
}

// ClampLimit normalises a requested page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
