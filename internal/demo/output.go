package demo

import (
	"fmt"
	"io"

	"talentintel/intake-gateway/models"
)

// Formatter prints the demo's progress.
type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Step(n int, msg string) {
	fmt.Fprintf(f.w, "\n%d. %s\n", n, msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Said(name, statement string) {
	fmt.Fprintf(f.w, "\n🗣️  %s: %s\n", name, statement)
}

func (f *Formatter) Transcription(u models.TranscriptionUpdate) {
	fmt.Fprintf(f.w, "🎤 TRANSCRIPT: %s\n", u.Text)
}

func (f *Formatter) Analysis(u models.AnalysisUpdate) {
	if len(u.NewRequirements) > 0 {
		fmt.Fprintf(f.w, "\n📋 NEW REQUIREMENTS:\n")
		for _, r := range u.NewRequirements {
			fmt.Fprintf(f.w, "   • %s (%s) - %.0f%%\n", r.Text, r.Category, r.Confidence*100)
		}
	}
	if len(u.SuggestedQuestions) > 0 {
		fmt.Fprintf(f.w, "\n❓ SUGGESTED QUESTIONS:\n")
		for _, q := range u.SuggestedQuestions {
			fmt.Fprintf(f.w, "   [%s] %s\n", q.Priority, q.Text)
			fmt.Fprintf(f.w, "      Reasoning: %s\n", q.Reasoning)
		}
	}
	if len(u.MissingInfo) > 0 {
		fmt.Fprintf(f.w, "\n⚠️  MISSING INFORMATION:\n")
		for _, m := range u.MissingInfo {
			fmt.Fprintf(f.w, "   • %s\n", m)
		}
	}
}

func (f *Formatter) Summary(s models.SessionSummary) {
	fmt.Fprintf(f.w, "📊 Session Duration: %.1f minutes\n", s.DurationMinutes)
	fmt.Fprintf(f.w, "👥 Participants: %d\n", len(s.Participants))
	fmt.Fprintf(f.w, "📝 Transcript Length: %d characters\n", s.TranscriptLength)
	fmt.Fprintf(f.w, "📋 Requirements Captured: %d\n", s.RequirementsCount)
	fmt.Fprintf(f.w, "❓ Open Questions: %d\n", s.QuestionsGenerated)
	fmt.Fprintf(f.w, "⚠️  Missing Info Items: %d\n", len(s.MissingInfo))
	for _, m := range s.MissingInfo {
		fmt.Fprintf(f.w, "   • %s\n", m)
	}
}
