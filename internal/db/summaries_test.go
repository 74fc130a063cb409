package db

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrest "github.com/supabase-community/postgrest-go"

	"talentintel/intake-gateway/models"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *SummaryStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	client := postgrest.NewClient(srv.URL+"/rest/v1", "", map[string]string{"apikey": "k"})
	return NewSummaryStore(client, "intake_session_summaries", logger)
}

func TestSaveSummary(t *testing.T) {
	var got models.MeetingSummary
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/intake_session_summaries", r.URL.Path)
		assert.Contains(t, r.Header.Get("Prefer"), "return=representation")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `[{"id":7,"session_id":"s1"}]`)
	})

	summary := models.MeetingSummary{
		SessionID:         "s1",
		Participants:      []string{"Sarah"},
		StartTime:         time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		EndedAt:           time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		DurationMinutes:   30,
		RequirementsCount: 1,
		Requirements:      []models.Requirement{{Text: "Go", Category: "technical_skills", Confidence: 1}},
		Questions:         []models.SuggestedQuestion{},
		MissingInfo:       []string{},
	}
	require.NoError(t, store.SaveSummary(context.Background(), summary))

	assert.Nil(t, got.ID, "id is left to the database")
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, []string{"Sarah"}, got.Participants)
	assert.Equal(t, 30.0, got.DurationMinutes)
	require.Len(t, got.Requirements, 1)
	assert.Equal(t, "Go", got.Requirements[0].Text)
}

func TestSaveSummaryNoRowReturned(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `[]`)
	})

	err := store.SaveSummary(context.Background(), models.MeetingSummary{SessionID: "s1"})
	assert.ErrorIs(t, err, ErrNoRecordReturned)
}

func TestListSummaries(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		q := r.URL.Query()
		assert.Equal(t, "*", q.Get("select"))
		assert.Contains(t, q.Get("order"), "ended_at.desc")
		assert.Equal(t, "5", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":2,"session_id":"b","requirements_count":3},{"id":1,"session_id":"a"}]`)
	})

	summaries, err := store.ListSummaries(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "b", summaries[0].SessionID)
	require.NotNil(t, summaries[0].ID)
	assert.Equal(t, int64(2), *summaries[0].ID)
	assert.Equal(t, 3, summaries[0].RequirementsCount)
}

func TestListSummariesEmpty(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	})

	summaries, err := store.ListSummaries(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 20},
		{-3, 20},
		{1, 1},
		{50, 50},
		{100, 100},
		{500, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLimit(tt.in), "limit %d", tt.in)
	}
}
