package intake

import (
	"sort"
	"sync"
	"time"

	"talentintel/intake-gateway/models"
)

// Session is the meeting state of one live intake connection together with
// its audio buffer. All state access goes through mu; the audio buffer has
// its own lock so appends never wait on state reads.
type Session struct {
	id    string
	audio AudioBuffer

	mu           sync.Mutex
	participants []string
	startTime    time.Time
	transcript   string
	requirements []models.Requirement
	questions    []models.SuggestedQuestion
	missingInfo  map[string]struct{}
	lastAnalysis time.Time
}

// State is a point-in-time copy of a session's meeting state.
type State struct {
	SessionID          string
	Participants       []string
	StartTime          time.Time
	Transcript         string
	Requirements       []models.Requirement
	SuggestedQuestions []models.SuggestedQuestion
	MissingInfo        []string
	LastAnalysis       time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		id:           id,
		startTime:    now,
		lastAnalysis: now,
		missingInfo:  make(map[string]struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Audio returns the session's audio buffer.
func (s *Session) Audio() *AudioBuffer { return &s.audio }

func (s *Session) addParticipant(name string) {
	s.mu.Lock()
	s.participants = append(s.participants, name)
	s.mu.Unlock()
}

func (s *Session) addRequirement(req models.Requirement) {
	s.mu.Lock()
	s.requirements = append(s.requirements, req)
	s.mu.Unlock()
}

// removeQuestion drops every suggested question whose text equals text and
// reports how many were removed.
func (s *Session) removeQuestion(text string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.questions[:0]
	removed := 0
	for _, q := range s.questions {
		if q.Text == text {
			removed++
			continue
		}
		kept = append(kept, q)
	}
	// clear the tail so removed entries are not retained by the backing array
	for i := len(kept); i < len(s.questions); i++ {
		s.questions[i] = models.SuggestedQuestion{}
	}
	s.questions = kept
	return removed
}

// appendTranscript adds text to the transcript with a single leading space
// and returns the full transcript.
func (s *Session) appendTranscript(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript += " " + text
	return s.transcript
}

// analysisInput returns the transcript and a copy of the known requirements.
func (s *Session) analysisInput() (string, []models.Requirement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript, append([]models.Requirement(nil), s.requirements...)
}

// applyAnalysis merges the results of one analysis pass and returns the full
// missing-info set, sorted.
func (s *Session) applyAnalysis(reqs []models.Requirement, questions []models.SuggestedQuestion, missing []string, at time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requirements = append(s.requirements, reqs...)
	s.questions = append(s.questions, questions...)
	for _, m := range missing {
		s.missingInfo[m] = struct{}{}
	}
	s.lastAnalysis = at
	return s.missingInfoLocked()
}

func (s *Session) missingInfoLocked() []string {
	out := make([]string, 0, len(s.missingInfo))
	for m := range s.missingInfo {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Snapshot returns a deep copy of the meeting state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		SessionID:          s.id,
		Participants:       append([]string(nil), s.participants...),
		StartTime:          s.startTime,
		Transcript:         s.transcript,
		Requirements:       append([]models.Requirement(nil), s.requirements...),
		SuggestedQuestions: append([]models.SuggestedQuestion(nil), s.questions...),
		MissingInfo:        s.missingInfoLocked(),
		LastAnalysis:       s.lastAnalysis,
	}
}

// Summary computes the live summary as of now.
func (s *Session) Summary(now time.Time) models.SessionSummary {
	st := s.Snapshot()
	return models.SessionSummary{
		SessionID:          st.SessionID,
		Participants:       nonNilStrings(st.Participants),
		StartTime:          st.StartTime,
		DurationMinutes:    now.Sub(st.StartTime).Minutes(),
		TranscriptLength:   len(st.Transcript),
		RequirementsCount:  len(st.Requirements),
		QuestionsGenerated: len(st.SuggestedQuestions),
		MissingInfo:        st.MissingInfo,
		LastAnalysis:       st.LastAnalysis,
	}
}

// meetingSummary builds the record persisted at teardown.
func (s *Session) meetingSummary(endedAt time.Time) models.MeetingSummary {
	st := s.Snapshot()
	return models.MeetingSummary{
		SessionID:          st.SessionID,
		Participants:       nonNilStrings(st.Participants),
		StartTime:          st.StartTime,
		EndedAt:            endedAt,
		DurationMinutes:    endedAt.Sub(st.StartTime).Minutes(),
		TranscriptLength:   len(st.Transcript),
		RequirementsCount:  len(st.Requirements),
		QuestionsGenerated: len(st.SuggestedQuestions),
		MissingInfo:        st.MissingInfo,
		Transcript:         st.Transcript,
		Requirements:       nonNilRequirements(st.Requirements),
		Questions:          nonNilQuestions(st.SuggestedQuestions),
	}
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func nonNilRequirements(v []models.Requirement) []models.Requirement {
	if v == nil {
		return []models.Requirement{}
	}
	return v
}

func nonNilQuestions(v []models.SuggestedQuestion) []models.SuggestedQuestion {
	if v == nil {
		return []models.SuggestedQuestion{}
	}
	return v
}
