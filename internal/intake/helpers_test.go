package intake

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"talentintel/intake-gateway/models"
)

var errConnClosed = errors.New("connection closed")

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testSettings() Settings {
	return Settings{
		TranscriptionInterval: 10 * time.Millisecond,
		AnalysisInterval:      15 * time.Millisecond,
		RequiredCategories: map[string]string{
			"technical_skills": "Specific technical skills and technologies",
			"experience_level": "Required years of experience and seniority level",
			"timeline":         "Hiring timeline and urgency",
			"location":         "Work location and remote policy",
		},
		ExtractionCategories: []string{
			"technical_skills", "experience_level", "culture_fit",
			"timeline", "location", "salary", "team_size",
		},
	}
}

type fakeTranscriber struct {
	mu    sync.Mutex
	calls [][]float32
	text  string
	err   error
	// failFirst fails the first n calls.
	failFirst int
	// panicFirst panics on the first n calls.
	panicFirst int
}

func (f *fakeTranscriber) Transcribe(_ context.Context, samples []float32) (Transcription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]float32(nil), samples...))
	if f.panicFirst > 0 {
		f.panicFirst--
		panic("decoder crashed")
	}
	if f.failFirst > 0 {
		f.failFirst--
		return Transcription{}, errors.New("model unavailable")
	}
	if f.err != nil {
		return Transcription{}, f.err
	}
	return Transcription{Text: f.text, Language: "en"}, nil
}

func (f *fakeTranscriber) Calls() [][]float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]float32(nil), f.calls...)
}

// scriptedCompleter answers extraction prompts with requirements and
// question prompts with questions.
type scriptedCompleter struct {
	mu           sync.Mutex
	requirements string
	questions    string
	err          error
	failFirst    int
	prompts      []Prompt
}

func (c *scriptedCompleter) Complete(_ context.Context, p Prompt) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = append(c.prompts, p)
	if c.failFirst > 0 {
		c.failFirst--
		return "", errors.New("completion service unavailable")
	}
	if c.err != nil {
		return "", c.err
	}
	if strings.HasPrefix(p.User, "Extract requirements") {
		return c.requirements, nil
	}
	return c.questions, nil
}

func (c *scriptedCompleter) Prompts() []Prompt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Prompt(nil), c.prompts...)
}

type recordingSink struct {
	mu        sync.Mutex
	summaries []models.MeetingSummary
	err       error
}

func (r *recordingSink) SaveSummary(_ context.Context, s models.MeetingSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries = append(r.summaries, s)
	return r.err
}

func (r *recordingSink) Summaries() []models.MeetingSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.MeetingSummary(nil), r.summaries...)
}

type fakeConn struct {
	in        chan []byte
	closed    chan struct{}
	closeOnce sync.Once

	mu     sync.Mutex
	frames [][]byte
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan []byte), closed: make(chan struct{})}
}

func (c *fakeConn) ReadMessage() ([]byte, error) {
	select {
	case data, ok := <-c.in:
		if !ok {
			return nil, io.EOF
		}
		return data, nil
	case <-c.closed:
		return nil, errConnClosed
	}
}

func (c *fakeConn) WriteMessage(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, append([]byte(nil), data...))
	return nil
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) send(t *testing.T, msg map[string]any) {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	c.in <- data
}

func (c *fakeConn) hangup() { close(c.in) }

// events returns the decoded outbound frames of the given type.
func (c *fakeConn) events(t *testing.T, kind string) []map[string]any {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []map[string]any
	for _, f := range c.frames {
		var m map[string]any
		require.NoError(t, json.Unmarshal(f, &m))
		if m["type"] == kind {
			out = append(out, m)
		}
	}
	return out
}

const requirementsJSON = `[
  {"text": "5 years of Go", "category": "experience_level", "confidence": 0.9},
  {"text": "Kubernetes", "category": "technical_skills"}
]`

const questionsJSON = "```json\n" + `[
  {"text": "What is the hiring timeline?", "priority": "High", "reasoning": "Timeline not discussed", "category": "timeline"},
  {"text": "Is the role remote?", "priority": "medium", "reasoning": "Location unknown"}
]` + "\n```"
