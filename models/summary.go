package models

import "time"

// SessionSummary is the live view of a session returned by the summary endpoint.
type SessionSummary struct {
	SessionID          string    `json:"session_id"`
	Participants       []string  `json:"participants"`
	StartTime          time.Time `json:"start_time"`
	DurationMinutes    float64   `json:"duration_minutes"`
	TranscriptLength   int       `json:"transcript_length"`
	RequirementsCount  int       `json:"requirements_count"`
	QuestionsGenerated int       `json:"questions_generated"`
	MissingInfo        []string  `json:"missing_info"`
	LastAnalysis       time.Time `json:"last_analysis"`
}

// MeetingSummary is the record written to the summaries table when a
// session is torn down.
type MeetingSummary struct {
	ID                 *int64              `json:"id,omitempty"` // assigned by the database
	SessionID          string              `json:"session_id"`
	Participants       []string            `json:"participants"`
	StartTime          time.Time           `json:"start_time"`
	EndedAt            time.Time           `json:"ended_at"`
	DurationMinutes    float64             `json:"duration_minutes"`
	TranscriptLength   int                 `json:"transcript_length"`
	RequirementsCount  int                 `json:"requirements_count"`
	QuestionsGenerated int                 `json:"questions_generated"`
	MissingInfo        []string            `json:"missing_info"`
	Transcript         string              `json:"transcript"`
	Requirements       []Requirement       `json:"requirements"`
	Questions          []SuggestedQuestion `json:"questions"`
}
