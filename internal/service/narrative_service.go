package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/langfuse"
	"github.com/blaisecz/wellbeing-tracker/internal/llm"
	"github.com/blaisecz/wellbeing-tracker/internal/metrics"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/blaisecz/wellbeing-tracker/internal/telemetry"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	narrativeTraceName = "wellbeing-narrative"

	// Issued trace IDs are remembered this long for feedback ownership checks.
	traceOwnerTTL  = 24 * time.Hour
	traceOwnerSize = 4096
)

// NarrativeService turns the mood and sleep snapshots into a short written
// narrative using the LLM.
type NarrativeService interface {
	Generate(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.NarrativeResponse, error)
	// SubmitFeedback records a user rating against a narrative trace issued
	// to the same user. Unknown or expired traces are domain.ErrNotFound and
	// another user's trace is domain.ErrForbidden. When Langfuse is disabled
	// the rating is accepted and dropped.
	SubmitFeedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error
}

type narrativeService struct {
	moods    MoodService
	sleep    SleepService
	userRepo repository.UserRepository
	llm      llm.NarrativeLLM
	model    string
	langfuse langfuse.Client
	traces   *expirable.LRU[string, uuid.UUID]
}

func NewNarrativeService(
	moods MoodService,
	sleep SleepService,
	userRepo repository.UserRepository,
	llmClient llm.NarrativeLLM,
	model string,
	langfuseClient langfuse.Client,
) NarrativeService {
	return &narrativeService{
		moods:    moods,
		sleep:    sleep,
		userRepo: userRepo,
		llm:      llmClient,
		model:    model,
		langfuse: langfuseClient,
		traces:   expirable.NewLRU[string, uuid.UUID](traceOwnerSize, nil, traceOwnerTTL),
	}
}

func (s *narrativeService) Generate(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.NarrativeResponse, error) {
	ctx, span := telemetry.Tracer("service").Start(ctx, "narrative.generate")
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	mood, err := s.moods.Analytics(ctx, userID, timeframe)
	if err != nil {
		return nil, err
	}
	sleep, err := s.sleep.Analytics(ctx, userID, timeframe)
	if err != nil {
		return nil, err
	}

	narrativeCtx := &domain.NarrativeContext{
		Timeframe: mood.Timeframe,
		Profile: domain.NarrativeProfile{
			Age:   user.Age,
			Goals: user.Goals,
		},
		Mood:          mood.Metrics,
		MoodInsights:  mood.Insights,
		Sleep:         sleep.Metrics,
		SleepInsights: sleep.Insights,
	}

	if input, err := json.Marshal(narrativeCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(input)))
	}

	started := time.Now()
	output, err := s.llm.GenerateNarrative(ctx, narrativeCtx)
	metrics.NarrativeDuration.WithLabelValues(s.model).Observe(time.Since(started).Seconds())
	metrics.NarrativeRequestsTotal.WithLabelValues(s.model, metrics.Status(err)).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if out, err := json.Marshal(output); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(out)))
	}

	response := &domain.NarrativeResponse{
		Timeframe: mood.Timeframe,
		Mood:      mood.Metrics,
		Sleep:     sleep.Metrics,
		Narrative: *output,
	}

	traceID, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
		UserID: userID.String(),
		Name:   narrativeTraceName,
		Input:  narrativeCtx,
		Output: output,
		Tags:   []string{string(mood.Timeframe)},
		Metadata: map[string]any{
			"model": s.model,
		},
	})
	if err == nil && traceID != "" {
		response.TraceID = traceID
	} else if sc := span.SpanContext(); sc.IsValid() {
		response.TraceID = sc.TraceID().String()
	}
	if response.TraceID != "" {
		s.traces.Add(response.TraceID, userID)
	}

	return response, nil
}

func (s *narrativeService) SubmitFeedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return err
	}
	if !s.langfuse.IsEnabled() {
		return nil
	}

	owner, ok := s.traces.Get(req.TraceID)
	if !ok {
		return fmt.Errorf("%w: unknown trace %q", domain.ErrNotFound, req.TraceID)
	}
	if owner != userID {
		return domain.ErrForbidden
	}
	return s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Rating),
		Comment: req.Comment,
	})
}
