package jobs

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"talentintel/intake-gateway/internal/intake"
	"talentintel/intake-gateway/internal/worker"
	"talentintel/intake-gateway/models"
)

// SaveSummaryJob writes one meeting summary to the store.
type SaveSummaryJob struct {
	Summary models.MeetingSummary
	store   intake.SummarySink
}

// NewSaveSummaryJob creates a new SaveSummaryJob.
func NewSaveSummaryJob(summary models.MeetingSummary, store intake.SummarySink) *SaveSummaryJob {
	return &SaveSummaryJob{Summary: summary, store: store}
}

// ID returns the unique identifier of the job.
func (j *SaveSummaryJob) ID() string {
	return "save-summary-" + j.Summary.SessionID
}

// Execute stores the summary.
func (j *SaveSummaryJob) Execute(ctx context.Context) error {
	if err := j.store.SaveSummary(ctx, j.Summary); err != nil {
		return fmt.Errorf("save summary job %s: %w", j.ID(), err)
	}
	return nil
}

// Submitter accepts jobs for background execution.
type Submitter interface {
	SubmitJob(job worker.Job) error
}

// AsyncSink hands meeting summaries to the worker pool so session teardown
// never waits on the database.
type AsyncSink struct {
	submitter Submitter
	store     intake.SummarySink
	logger    *logrus.Logger
}

var _ intake.SummarySink = (*AsyncSink)(nil)

// NewAsyncSink creates a sink that persists through store on submitter's workers.
func NewAsyncSink(submitter Submitter, store intake.SummarySink, logger *logrus.Logger) *AsyncSink {
	return &AsyncSink{submitter: submitter, store: store, logger: logger}
}

// SaveSummary queues the summary and returns without waiting for the write.
func (s *AsyncSink) SaveSummary(_ context.Context, summary models.MeetingSummary) error {
	job := NewSaveSummaryJob(summary, s.store)
	if err := s.submitter.SubmitJob(job); err != nil {
		return fmt.Errorf("queue %s: %w", job.ID(), err)
	}
	s.logger.WithField("job_id", job.ID()).Debug("Summary persistence queued")
	return nil
}
