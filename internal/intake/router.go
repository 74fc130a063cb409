package intake

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"talentintel/intake-gateway/models"
)

// routeMessage applies one inbound frame to the session. Frames that do not
// decode, carry an unknown type or miss a required field are ignored without
// notifying the client. A present but empty field is applied as is. It
// reports whether the frame changed anything.
func (s *Service) routeMessage(sess *Session, data []byte, log *logrus.Entry) bool {
	var msg models.InboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.WithError(err).Debug("Ignoring undecodable frame")
		return false
	}

	switch msg.Type {
	case models.MessageAudioChunk:
		payload := models.AudioChunkMessage{Audio: msg.Audio}
		if !s.valid(payload, msg.Type, log) {
			return false
		}
		sess.Audio().Append(payload.Audio)

	case models.MessageParticipantJoin:
		payload := models.ParticipantJoinMessage{Name: msg.Name}
		if !s.valid(payload, msg.Type, log) {
			return false
		}
		sess.addParticipant(*payload.Name)
		log.WithField("participant", *payload.Name).Info("Participant joined")

	case models.MessageManualRequirement:
		payload := models.ManualRequirementMessage{Text: msg.Text, Category: msg.Category}
		if !s.valid(payload, msg.Type, log) {
			return false
		}
		category := payload.Category
		if category == "" {
			category = models.CategoryManual
		}
		now := s.now()
		sess.addRequirement(models.Requirement{
			Text:            *payload.Text,
			Category:        category,
			Confidence:      models.ManualConfidence,
			SourceTimestamp: now,
			ExtractedAt:     now,
		})

	case models.MessageQuestionAsked:
		payload := models.QuestionAskedMessage{Text: msg.Text}
		if !s.valid(payload, msg.Type, log) {
			return false
		}
		removed := sess.removeQuestion(*payload.Text)
		log.WithField("removed", removed).Debug("Question marked as asked")

	default:
		log.WithField("type", msg.Type).Debug("Ignoring unknown message type")
		return false
	}
	return true
}

func (s *Service) valid(payload any, kind string, log *logrus.Entry) bool {
	if err := s.validate.Struct(payload); err != nil {
		log.WithError(err).WithField("type", kind).Debug("Ignoring incomplete message")
		return false
	}
	return true
}
