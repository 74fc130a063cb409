package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"talentintel/intake-gateway/config"
	_ "talentintel/intake-gateway/docs"
	"talentintel/intake-gateway/handlers"
	"talentintel/intake-gateway/internal/aiclient"
	"talentintel/intake-gateway/internal/db"
	"talentintel/intake-gateway/internal/intake"
	"talentintel/intake-gateway/internal/jobs"
	"talentintel/intake-gateway/internal/worker"
	"talentintel/intake-gateway/middleware"
)

const (
	sessionDrainTimeout = 5 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// @title Intake Gateway API
// @version 1.0
// @description Real-time intake meeting sessions: live transcription, requirement extraction and follow-up question suggestions.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger := config.InitLogger(cfg.LogLevel)

	var store *db.SummaryStore
	supabaseClient, err := config.InitSupabase(cfg.Supabase)
	switch {
	case errors.Is(err, config.ErrSupabaseNotConfigured):
		logger.Warn("Supabase not configured, meeting summaries will only be logged")
	case err != nil:
		logger.WithError(err).Fatal("Failed to initialize Supabase")
	default:
		store = db.NewSummaryStore(supabaseClient, cfg.Supabase.SummariesTable, logger)
	}

	dispatcher := worker.NewDispatcher(cfg.Persistence.Workers, cfg.Persistence.QueueSize, logger)
	dispatcher.Run(context.Background())

	var persist intake.SummarySink = intake.LogSink{Logger: logger}
	var history handlers.SummaryLister
	if store != nil {
		persist = store
		history = store
	}
	sink := jobs.NewAsyncSink(dispatcher, persist, logger)

	completer := aiclient.NewOpenAIClient(cfg.OpenAI, cfg.Intake.SampleRate, logger)
	var transcriber intake.Transcriber
	switch cfg.Intake.Transcriber {
	case "grpc":
		grpcTranscriber, err := aiclient.NewGRPCTranscriber(cfg.AIService.Addr, cfg.Intake.SampleRate, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create AI gRPC client")
		}
		defer grpcTranscriber.Close()
		transcriber = grpcTranscriber
	case "none":
		logger.Warn("Transcription disabled, audio chunks will be discarded")
		transcriber = aiclient.Disabled{}
	default:
		transcriber = completer
	}

	svc := intake.NewService(intakeSettings(cfg.Intake), intake.NewRegistry(), transcriber, completer, sink, logger)

	sessionsCtx, closeSessions := context.WithCancel(context.Background())
	defer closeSessions()
	h := handlers.NewApplicationHandler(sessionsCtx, svc, history, logger)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(logger))

	app.Get("/swagger/*", fiberSwagger.WrapHandler)
	handlers.SetupRoutes(app, h)

	go func() {
		logger.WithField("addr", cfg.ListenAddr).Info("Starting intake gateway")
		if err := app.Listen(cfg.ListenAddr); err != nil {
			logger.WithError(err).Fatal("Server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down intake gateway")
	closeSessions()
	waitForSessions(svc.Registry(), sessionDrainTimeout, logger)

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.WithError(err).Error("HTTP server shutdown failed")
	}
	dispatcher.Stop()
	logger.Info("Intake gateway stopped")
}

func intakeSettings(cfg config.IntakeConfig) intake.Settings {
	return intake.Settings{
		TranscriptionInterval: cfg.TranscriptionInterval,
		AnalysisInterval:      cfg.AnalysisInterval,
		RequiredCategories:    cfg.RequiredCategories,
		ExtractionCategories:  cfg.ExtractionCategories,
	}
}

// waitForSessions gives live sessions time to hand their summaries to the
// dispatcher before it stops accepting jobs.
func waitForSessions(registry *intake.Registry, timeout time.Duration, logger *logrus.Logger) {
	deadline := time.Now().Add(timeout)
	for registry.Len() > 0 {
		if time.Now().After(deadline) {
			logger.WithField("sessions", registry.IDs()).Warn("Sessions still open at shutdown")
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}
