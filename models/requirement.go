package models

import "time"

// Requirement categories recognised by the extraction prompt.
const (
	CategoryTechnicalSkills = "technical_skills"
	CategoryExperienceLevel = "experience_level"
	CategoryCultureFit      = "culture_fit"
	CategoryTimeline        = "timeline"
	CategoryLocation        = "location"
	CategorySalary          = "salary"
	CategoryTeamSize        = "team_size"

	// CategoryManual is assigned to user-entered requirements that arrive without a category.
	CategoryManual = "manual"
)

// ManualConfidence is the confidence given to every manually entered requirement.
const ManualConfidence = 1.0

// Requirement is a structured statement about the hiring need, either
// extracted from the transcript or entered by hand during the meeting.
type Requirement struct {
	Text            string    `json:"text"`
	Category        string    `json:"category"`
	Confidence      float64   `json:"confidence"`
	SourceTimestamp time.Time `json:"source_timestamp"`
	ExtractedAt     time.Time `json:"extracted_at"`
}
