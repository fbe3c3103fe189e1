// Wellbeing Tracker API
//
// REST API for mood, sleep and journal tracking with computed wellbeing analytics.
//
//	@title			Wellbeing Tracker API
//	@version		1.0
//	@description	Track mood, sleep and journal entries, and get analytics, insights and an LLM narrative over them.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management and onboarding
//
//	@tag.name			moods
//	@tag.description	Mood tracking and analytics
//
//	@tag.name			sleep
//	@tag.description	Sleep tracking and analytics
//
//	@tag.name			wellbeing
//	@tag.description	LLM wellbeing narrative
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/api"
	"github.com/blaisecz/wellbeing-tracker/internal/api/handler"
	"github.com/blaisecz/wellbeing-tracker/internal/api/middleware"
	"github.com/blaisecz/wellbeing-tracker/internal/config"
	"github.com/blaisecz/wellbeing-tracker/internal/content"
	"github.com/blaisecz/wellbeing-tracker/internal/langfuse"
	"github.com/blaisecz/wellbeing-tracker/internal/llm"
	"github.com/blaisecz/wellbeing-tracker/internal/logging"
	"github.com/blaisecz/wellbeing-tracker/internal/memes"
	"github.com/blaisecz/wellbeing-tracker/internal/psychologist"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/blaisecz/wellbeing-tracker/internal/seed"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/internal/telemetry"
	"go.uber.org/zap"
)

const (
	narrativePromptName = "wellbeing-narrative-system"
	narrativePromptPath = "prompts/wellbeing-narrative-system.txt"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, telemetry.ServiceName)
	if err != nil {
		logger.Fatal("failed to initialize tracer", zap.Error(err))
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DatabaseDriver), zap.Error(err))
	}

	if err := repository.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database migration completed")

	if cfg.Seed {
		logger.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(db, logger); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	sleepRepo := repository.NewSleepRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	communityRepo := repository.NewCommunityRepository(db)

	// External clients
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      logger,
	})

	systemPrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  narrativePromptName,
		PromptLabel: "production",
		SavePath:    narrativePromptPath,
		Fallback:    llm.DefaultSystemPrompt,
		Logger:      logger,
	})
	if err != nil {
		logger.Warn("using default narrative prompt", zap.Error(err))
	}

	// May be nil if not configured; the narrative endpoint then answers 503.
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIWellbeingModel, systemPrompt)
	if openaiClient == nil {
		logger.Warn("OpenAI API key not configured, narrative endpoint will be unavailable")
	}

	psychologistClient := psychologist.NewClient(psychologist.Config{
		BaseURL: cfg.PsychologistAPIURL,
		Timeout: cfg.PsychologistTimeout,
		Logger:  logger,
	})
	memeClient := memes.NewClient(memes.Config{
		BaseURL: cfg.MemeAPIURL,
		Logger:  logger,
	})

	// Services
	cache := service.NewAnalyticsCache(cfg.AnalyticsCacheSize, cfg.AnalyticsCacheTTL)
	renderer := content.NewRenderer()

	userService := service.NewUserService(userRepo)
	moodService := service.NewMoodService(moodRepo, userRepo, cache)
	sleepService := service.NewSleepService(sleepRepo, userRepo, cache)
	journalService := service.NewJournalService(journalRepo, userRepo, renderer)
	communityService := service.NewCommunityService(communityRepo, userRepo, renderer)
	therapistService := service.NewTherapistService(userService, psychologistClient)
	memeService := service.NewMemeService(memeClient, cfg.MemeMaxAttempts)
	breathingService := service.NewBreathingService()
	focusService := service.NewFocusService()
	narrativeService := service.NewNarrativeService(moodService, sleepService, userRepo, openaiClient, cfg.OpenAIWellbeingModel, langfuseClient)

	handlers := api.Handlers{
		User:      handler.NewUserHandler(userService),
		Mood:      handler.NewMoodHandler(moodService),
		Sleep:     handler.NewSleepHandler(sleepService),
		Journal:   handler.NewJournalHandler(journalService),
		Community: handler.NewCommunityHandler(communityService),
		Therapist: handler.NewTherapistHandler(therapistService),
		Meme:      handler.NewMemeHandler(memeService),
		Breathing: handler.NewBreathingHandler(breathingService),
		Focus:     handler.NewFocusHandler(focusService),
		Narrative: handler.NewNarrativeHandler(narrativeService),
	}

	chatLimiter := middleware.NewRateLimiter(cfg.ChatRateLimitRPS, cfg.ChatRateLimitBurst)
	if err := chatLimiter.TrustProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid TRUSTED_PROXIES", zap.Error(err))
	}
	go chatLimiter.Run(ctx)

	// Setup router
	router := api.NewRouter(handlers, logger, chatLimiter, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	langfuseClient.Flush()
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", zap.Error(err))
	}
}
