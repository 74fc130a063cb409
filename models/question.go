package models

import "time"

// Question priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// SuggestedQuestion is a generated follow-up question. It stays live until
// the client reports a question with exactly the same text as asked.
type SuggestedQuestion struct {
	Text        string    `json:"text"`
	Priority    string    `json:"priority"`
	Reasoning   string    `json:"reasoning"`
	Category    string    `json:"category"`
	GeneratedAt time.Time `json:"generated_at"`
}
