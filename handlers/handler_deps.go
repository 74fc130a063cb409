package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"talentintel/intake-gateway/internal/intake"
	"talentintel/intake-gateway/models"
)

// SummaryLister reads persisted meeting summaries, newest first.
type SummaryLister interface {
	ListSummaries(ctx context.Context, limit int) ([]models.MeetingSummary, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Intake *intake.Service
	// Summaries is nil when no store is configured.
	Summaries SummaryLister
	Logger    *logrus.Logger
	// BaseContext bounds every WebSocket session; cancelling it closes them all.
	BaseContext context.Context

	validate *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(ctx context.Context, svc *intake.Service, summaries SummaryLister, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Intake:      svc,
		Summaries:   summaries,
		Logger:      logger,
		BaseContext: ctx,
		validate:    validator.New(),
	}
}
