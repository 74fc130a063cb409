package intake

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"talentintel/intake-gateway/models"
)

func (s *Service) transcriptionLoop(ctx context.Context, sess *Session, out *outbound, log *logrus.Entry) {
	ticker := time.NewTicker(s.settings.TranscriptionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runGuarded(log, "transcription", func() {
				s.transcribePending(ctx, sess, out, log)
			})
		}
	}
}

func (s *Service) analysisLoop(ctx context.Context, sess *Session, out *outbound, log *logrus.Entry) {
	ticker := time.NewTicker(s.settings.AnalysisInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runGuarded(log, "analysis", func() {
				s.analyzeTranscript(ctx, sess, out, log)
			})
		}
	}
}

// transcribePending drains the audio buffer, transcribes the batch and
// appends the text. A failed batch is dropped. It returns the appended text.
func (s *Service) transcribePending(ctx context.Context, sess *Session, out *outbound, log *logrus.Entry) string {
	chunks := sess.Audio().TakeAll()
	if len(chunks) == 0 {
		return ""
	}
	samples := concatChunks(chunks)

	result, err := s.transcriber.Transcribe(ctx, samples)
	if err != nil {
		log.WithError(err).WithField("samples", len(samples)).Warn("Transcription failed, dropping audio batch")
		return ""
	}
	if ctx.Err() != nil {
		return ""
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		return ""
	}

	full := sess.appendTranscript(text)
	s.emit(out, log, models.TranscriptionUpdate{
		Type:           models.EventTranscriptionUpdate,
		Text:           text,
		FullTranscript: full,
		Timestamp:      s.now(),
	})
	return text
}

// analyzeTranscript re-examines the full transcript, merges new requirements,
// questions and missing info, and reports the pass. Capability failures
// contribute nothing to the pass. It returns false when there was nothing to
// analyse.
func (s *Service) analyzeTranscript(ctx context.Context, sess *Session, out *outbound, log *logrus.Entry) bool {
	transcript, known := sess.analysisInput()
	if transcript == "" {
		return false
	}

	newReqs, err := s.analyzer.ExtractRequirements(ctx, transcript)
	if err != nil {
		log.WithError(err).Warn("Requirement extraction unavailable, skipping")
		newReqs = nil
	}

	newQuestions, err := s.analyzer.GenerateQuestions(ctx, transcript, known)
	if err != nil {
		log.WithError(err).Warn("Question generation unavailable, skipping")
		newQuestions = nil
	}

	missing := IdentifyMissingInfo(known, s.settings.RequiredCategories)

	if ctx.Err() != nil {
		return false
	}

	now := s.now()
	allMissing := sess.applyAnalysis(newReqs, newQuestions, missing, now)
	s.emit(out, log, models.AnalysisUpdate{
		Type:               models.EventAnalysisUpdate,
		NewRequirements:    nonNilRequirements(newReqs),
		SuggestedQuestions: nonNilQuestions(newQuestions),
		MissingInfo:        allMissing,
		Timestamp:          now,
	})
	return true
}

func (s *Service) emit(out *outbound, log *logrus.Entry, event any) {
	if err := out.send(event); err != nil {
		if errors.Is(err, ErrOutboundClosed) {
			log.Debug("Dropping event for closed session")
			return
		}
		log.WithError(err).Warn("Failed to push event to client")
	}
}
