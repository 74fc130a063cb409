package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentintel/intake-gateway/models"
)

func TestRemoveQuestionByText(t *testing.T) {
	sess := newSession("s1", time.Now())
	sess.applyAnalysis(nil, []models.SuggestedQuestion{
		{Text: "What is the budget?"},
		{Text: "Is the role remote?"},
		{Text: "What is the budget?"},
		{Text: "When should they start?"},
	}, nil, time.Now())

	assert.Equal(t, 0, sess.removeQuestion("Unknown question"))
	assert.Len(t, sess.Snapshot().SuggestedQuestions, 4)

	assert.Equal(t, 2, sess.removeQuestion("What is the budget?"))
	remaining := sess.Snapshot().SuggestedQuestions
	require.Len(t, remaining, 2)
	assert.Equal(t, "Is the role remote?", remaining[0].Text)
	assert.Equal(t, "When should they start?", remaining[1].Text)

	// asking the same question again is a no-op
	assert.Equal(t, 0, sess.removeQuestion("What is the budget?"))
	assert.Len(t, sess.Snapshot().SuggestedQuestions, 2)
}

func TestTranscriptOnlyGrows(t *testing.T) {
	sess := newSession("s1", time.Now())

	prev := 0
	for _, text := range []string{"hello", "we need a backend engineer", "remote is fine"} {
		full := sess.appendTranscript(text)
		assert.Greater(t, len(full), prev)
		prev = len(full)
	}
	assert.Equal(t, " hello we need a backend engineer remote is fine", sess.Snapshot().Transcript)
}

func TestMissingInfoAccumulatesByUnion(t *testing.T) {
	sess := newSession("s1", time.Now())

	got := sess.applyAnalysis(nil, nil, []string{"b", "a"}, time.Now())
	assert.Equal(t, []string{"a", "b"}, got)

	got = sess.applyAnalysis(nil, nil, []string{"a"}, time.Now())
	assert.Equal(t, []string{"a", "b"}, got, "missing info never shrinks")

	got = sess.applyAnalysis(nil, nil, []string{"c"}, time.Now())
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSnapshotIsACopy(t *testing.T) {
	sess := newSession("s1", time.Now())
	sess.addParticipant("Sarah")

	snap := sess.Snapshot()
	snap.Participants[0] = "Mallory"

	assert.Equal(t, []string{"Sarah"}, sess.Snapshot().Participants)
}

func TestSummary(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sess := newSession("s1", start)
	sess.addParticipant("Sarah")
	sess.addRequirement(models.Requirement{Text: "Go", Category: "technical_skills", Confidence: 1})
	sess.appendTranscript("we need Go")

	sum := sess.Summary(start.Add(90 * time.Second))
	assert.Equal(t, "s1", sum.SessionID)
	assert.Equal(t, []string{"Sarah"}, sum.Participants)
	assert.InDelta(t, 1.5, sum.DurationMinutes, 1e-9)
	assert.Equal(t, len(" we need Go"), sum.TranscriptLength)
	assert.Equal(t, 1, sum.RequirementsCount)
	assert.Equal(t, 0, sum.QuestionsGenerated)
	assert.Equal(t, []string{}, sum.MissingInfo)
}
