package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"talentintel/intake-gateway/models"
)

// Settings are the per-session pacing and vocabulary knobs.
type Settings struct {
	TranscriptionInterval time.Duration
	AnalysisInterval      time.Duration
	// RequiredCategories maps each must-cover category to its missing-info label.
	RequiredCategories map[string]string
	// ExtractionCategories is the vocabulary offered to the extraction prompt.
	ExtractionCategories []string
}

// Service is the session lifecycle manager of the real-time intake feature.
// It owns no global state: sessions live in the injected Registry.
type Service struct {
	settings    Settings
	registry    *Registry
	transcriber Transcriber
	analyzer    *Analyzer
	sink        SummarySink
	logger      *logrus.Logger
	validate    *validator.Validate
	now         func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces time.Now for timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires a Service from its collaborators.
func NewService(settings Settings, registry *Registry, transcriber Transcriber, completer Completer, sink SummarySink, logger *logrus.Logger, opts ...Option) *Service {
	s := &Service{
		settings:    settings,
		registry:    registry,
		transcriber: transcriber,
		sink:        sink,
		logger:      logger,
		validate:    validator.New(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.analyzer = NewAnalyzer(completer, settings.ExtractionCategories, func() time.Time { return s.now() })
	return s
}

// Registry returns the live session registry.
func (s *Service) Registry() *Registry { return s.registry }

// NewSessionID returns a fresh session identifier.
func (s *Service) NewSessionID() string {
	return uuid.NewString()
}

// Summary returns the live summary of a session, or ErrSessionNotFound.
func (s *Service) Summary(sessionID string) (models.SessionSummary, error) {
	sess, err := s.registry.Get(sessionID)
	if err != nil {
		return models.SessionSummary{}, err
	}
	return sess.Summary(s.now()), nil
}

// Run serves one session over conn until the inbound side ends. It registers
// the session, starts the transcription and analysis loops and dispatches
// inbound frames on the calling goroutine. Every exit path cancels the
// loops, hands a summary to the sink and removes the session. The returned
// error is the one that ended the read loop.
func (s *Service) Run(ctx context.Context, sessionID string, conn Conn) (err error) {
	sess, err := s.registry.Open(sessionID, s.now())
	if err != nil {
		return err
	}

	log := s.logger.WithField("session_id", sessionID)
	out := newOutbound(conn)
	loopCtx, cancel := context.WithCancel(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Recovered from panic in session handler: %v", r)
			err = fmt.Errorf("session handler panic: %v", r)
		}
	}()
	defer s.teardown(sess, out, cancel, log)

	stop := context.AfterFunc(ctx, out.closeConn)
	defer stop()

	go s.transcriptionLoop(loopCtx, sess, out, log)
	go s.analysisLoop(loopCtx, sess, out, log)

	log.Info("Intake session started")
	for {
		data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		s.routeMessage(sess, data, log)
	}
}

// teardown runs on every exit path of Run.
func (s *Service) teardown(sess *Session, out *outbound, cancel context.CancelFunc, log *logrus.Entry) {
	cancel()
	out.shutdown()

	summary := sess.meetingSummary(s.now())
	if err := s.sink.SaveSummary(context.Background(), summary); err != nil {
		log.WithError(err).Error("Failed to persist meeting summary")
	} else {
		log.WithFields(logrus.Fields{
			"duration_minutes":   summary.DurationMinutes,
			"transcript_length":  summary.TranscriptLength,
			"requirements_count": summary.RequirementsCount,
		}).Info("Meeting summary handed to persistence")
	}

	s.registry.Remove(sess.ID(), sess)
	log.Info("Intake session closed")
}

// runGuarded executes one loop iteration, containing any panic.
func runGuarded(log *logrus.Entry, loop string, pass func()) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("loop", loop).Errorf("Recovered from panic in %s loop: %v", loop, r)
		}
	}()
	pass()
}
