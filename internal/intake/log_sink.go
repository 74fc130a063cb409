package intake

import (
	"context"

	"github.com/sirupsen/logrus"

	"talentintel/intake-gateway/models"
)

// LogSink is the SummarySink used when no store is configured: it only
// records the summary in the log.
type LogSink struct {
	Logger *logrus.Logger
}

// SaveSummary implements SummarySink.
func (l LogSink) SaveSummary(_ context.Context, summary models.MeetingSummary) error {
	l.Logger.WithFields(logrus.Fields{
		"session_id":          summary.SessionID,
		"duration_minutes":    summary.DurationMinutes,
		"transcript_length":   summary.TranscriptLength,
		"requirements_count":  summary.RequirementsCount,
		"questions_generated": summary.QuestionsGenerated,
		"missing_info":        summary.MissingInfo,
	}).Info("Meeting summary (not persisted: no store configured)")
	return nil
}
