package models

import "time"

// Inbound message kinds sent by the meeting client.
const (
	MessageAudioChunk        = "audio_chunk"
	MessageParticipantJoin   = "participant_join"
	MessageManualRequirement = "manual_requirement"
	MessageQuestionAsked     = "question_asked"
)

// Outbound event kinds pushed to the meeting client.
const (
	EventTranscriptionUpdate = "transcription_update"
	EventAnalysisUpdate      = "analysis_update"
)

// InboundMessage is the envelope of every client frame. Only the fields
// relevant to Type are read. Pointer fields distinguish an absent field from
// an empty one.
type InboundMessage struct {
	Type     string    `json:"type"`
	Audio    []float32 `json:"audio,omitempty"`
	Name     *string   `json:"name,omitempty"`
	Text     *string   `json:"text,omitempty"`
	Category string    `json:"category,omitempty"`
}

// AudioChunkMessage carries decoded audio samples.
type AudioChunkMessage struct {
	Audio []float32 `validate:"required"`
}

// ParticipantJoinMessage announces a participant by display name.
type ParticipantJoinMessage struct {
	Name *string `validate:"required"`
}

// ManualRequirementMessage is a requirement typed in by a participant.
// Category is optional and defaults to CategoryManual.
type ManualRequirementMessage struct {
	Text     *string `validate:"required"`
	Category string
}

// QuestionAskedMessage acknowledges a suggested question by its text.
type QuestionAskedMessage struct {
	Text *string `validate:"required"`
}

// TranscriptionUpdate is emitted after new speech has been transcribed.
type TranscriptionUpdate struct {
	Type           string    `json:"type"`
	Text           string    `json:"text"`
	FullTranscript string    `json:"full_transcript"`
	Timestamp      time.Time `json:"timestamp"`
}

// AnalysisUpdate is emitted after every completed analysis pass. Requirements
// and questions are the ones produced by that pass; MissingInfo is the full
// accumulated set.
type AnalysisUpdate struct {
	Type               string              `json:"type"`
	NewRequirements    []Requirement       `json:"new_requirements"`
	SuggestedQuestions []SuggestedQuestion `json:"suggested_questions"`
	MissingInfo        []string            `json:"missing_info"`
	Timestamp          time.Time           `json:"timestamp"`
}
