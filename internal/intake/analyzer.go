package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"talentintel/intake-gateway/models"
)

const (
	defaultExtractedConfidence = 0.8
	defaultQuestionCategory    = "general"

	extractionTemperature = 0.3
	questionTemperature   = 0.7
)

const questionSystemPrompt = `Generate 2-3 follow-up questions to fill information gaps.
Return JSON array with fields: text, priority (high/medium/low), reasoning, category.
Focus on missing critical information.`

// Analyzer derives requirements and follow-up questions from a transcript
// through a Completer.
type Analyzer struct {
	completer  Completer
	categories []string
	validate   *validator.Validate
	now        func() time.Time
}

// NewAnalyzer creates an Analyzer whose extraction prompt is restricted to categories.
func NewAnalyzer(completer Completer, categories []string, now func() time.Time) *Analyzer {
	if now == nil {
		now = time.Now
	}
	return &Analyzer{
		completer:  completer,
		categories: categories,
		validate:   validator.New(),
		now:        now,
	}
}

type extractedRequirement struct {
	Text       string   `json:"text" validate:"required"`
	Category   string   `json:"category" validate:"required"`
	Confidence *float64 `json:"confidence"`
}

type generatedQuestion struct {
	Text      string `json:"text" validate:"required"`
	Priority  string `json:"priority" validate:"required,oneof=high medium low"`
	Reasoning string `json:"reasoning" validate:"required"`
	Category  string `json:"category"`
}

// ExtractionPrompt builds the requirement-extraction prompt for transcript.
func (a *Analyzer) ExtractionPrompt(transcript string) Prompt {
	system := "Extract job requirements from the conversation.\n" +
		"Return a JSON array of requirements with fields: text, category, confidence.\n" +
		"Categories: " + strings.Join(a.categories, ", ")
	return Prompt{
		System:      system,
		User:        "Extract requirements from: " + transcript,
		Temperature: extractionTemperature,
	}
}

// QuestionPrompt builds the question-generation prompt for transcript and
// the requirements known so far.
func (a *Analyzer) QuestionPrompt(transcript string, known []models.Requirement) Prompt {
	lines := make([]string, 0, len(known))
	for _, req := range known {
		lines = append(lines, "- "+req.Text)
	}
	return Prompt{
		System:      questionSystemPrompt,
		User:        fmt.Sprintf("Conversation: %s\n\nRequirements: %s\n\nGenerate questions:", transcript, strings.Join(lines, "\n")),
		Temperature: questionTemperature,
	}
}

// ExtractRequirements asks the model for requirements found in transcript.
// Any failure yields no requirements and the error.
func (a *Analyzer) ExtractRequirements(ctx context.Context, transcript string) ([]models.Requirement, error) {
	raw, err := a.completer.Complete(ctx, a.ExtractionPrompt(transcript))
	if err != nil {
		return nil, fmt.Errorf("requirement extraction: %w", err)
	}

	var records []extractedRequirement
	if err := decodeModelJSON(raw, &records); err != nil {
		return nil, fmt.Errorf("requirement extraction: %w", err)
	}

	now := a.now()
	reqs := make([]models.Requirement, 0, len(records))
	for i, rec := range records {
		if err := a.validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("requirement extraction: record %d: %w", i, err)
		}
		confidence := defaultExtractedConfidence
		if rec.Confidence != nil {
			confidence = clamp01(*rec.Confidence)
		}
		reqs = append(reqs, models.Requirement{
			Text:            rec.Text,
			Category:        rec.Category,
			Confidence:      confidence,
			SourceTimestamp: now,
			ExtractedAt:     now,
		})
	}
	return reqs, nil
}

// GenerateQuestions asks the model for follow-up questions. Any failure
// yields no questions and the error.
func (a *Analyzer) GenerateQuestions(ctx context.Context, transcript string, known []models.Requirement) ([]models.SuggestedQuestion, error) {
	raw, err := a.completer.Complete(ctx, a.QuestionPrompt(transcript, known))
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	var records []generatedQuestion
	if err := decodeModelJSON(raw, &records); err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	now := a.now()
	questions := make([]models.SuggestedQuestion, 0, len(records))
	for i, rec := range records {
		rec.Priority = strings.ToLower(strings.TrimSpace(rec.Priority))
		if err := a.validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("question generation: record %d: %w", i, err)
		}
		category := rec.Category
		if category == "" {
			category = defaultQuestionCategory
		}
		questions = append(questions, models.SuggestedQuestion{
			Text:        rec.Text,
			Priority:    rec.Priority,
			Reasoning:   rec.Reasoning,
			Category:    category,
			GeneratedAt: now,
		})
	}
	return questions, nil
}

// decodeModelJSON unmarshals a model response, tolerating a surrounding
// markdown code fence.
func decodeModelJSON(raw string, v any) error {
	out := stripFence(strings.TrimSpace(raw))
	if out == "" {
		return fmt.Errorf("empty model response")
	}
	if err := json.Unmarshal([]byte(out), v); err != nil {
		return fmt.Errorf("parse model response: %w", err)
	}
	return nil
}

// stripFence removes a surrounding markdown code fence and its optional
// language tag, on one line or several.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") || len(s) < 6 || !strings.HasSuffix(s, "```") {
		return s
	}
	body := s[3 : len(s)-3]
	if i := strings.IndexAny(body, "[{ \t\r\n"); i > 0 {
		// language tag such as json
		body = body[i:]
	} else if i < 0 {
		return ""
	}
	return strings.TrimSpace(body)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
