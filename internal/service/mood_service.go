package service

import (
	"context"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/metrics"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/blaisecz/wellbeing-tracker/internal/telemetry"
	"github.com/blaisecz/wellbeing-tracker/internal/wellbeing"
	"github.com/blaisecz/wellbeing-tracker/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type MoodService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodRequest) (*domain.MoodEntry, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.MoodEntry, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *domain.UpdateMoodRequest) (*domain.MoodEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.MoodListResponse, error)
	// Analytics computes metrics, insights and chart data for the trailing
	// window named by timeframe. Unknown timeframes fall back to a week.
	Analytics(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.MoodAnalyticsResponse, error)
}

type moodService struct {
	repo     repository.MoodRepository
	userRepo repository.UserRepository
	cache    *AnalyticsCache
	now      func() time.Time
}

func NewMoodService(repo repository.MoodRepository, userRepo repository.UserRepository, cache *AnalyticsCache) MoodService {
	return &moodService{
		repo:     repo,
		userRepo: userRepo,
		cache:    cache,
		now:      time.Now,
	}
}

func (s *moodService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodRequest) (*domain.MoodEntry, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	ts := s.now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	entry := &domain.MoodEntry{
		UserID:      userID,
		Mood:        req.Mood,
		EnergyLevel: req.EnergyLevel,
		Activities:  nonNilStrings(req.Activities),
		Note:        req.Note,
		Timestamp:   ts.UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *moodService) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.MoodEntry, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *moodService) Update(ctx context.Context, userID, id uuid.UUID, req *domain.UpdateMoodRequest) (*domain.MoodEntry, error) {
	entry, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Mood != nil {
		entry.Mood = *req.Mood
	}
	if req.EnergyLevel != nil {
		entry.EnergyLevel = req.EnergyLevel
	}
	if req.Activities != nil {
		entry.Activities = nonNilStrings(*req.Activities)
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}
	if req.Timestamp != nil {
		entry.Timestamp = req.Timestamp.UTC()
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *moodService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *moodService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.MoodListResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	entries, hasMore := pagination.Trim(entries, filter.Limit)

	response := &domain.MoodListResponse{
		Data: make([]domain.MoodEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range entries {
		response.Data[i] = entries[i].ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{ID: last.ID, At: last.Timestamp}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *moodService) Analytics(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.MoodAnalyticsResponse, error) {
	ctx, span := telemetry.Tracer("service").Start(ctx, "mood.analytics")
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tf := wellbeing.ParseTimeframe(timeframe)
	span.SetAttributes(attribute.String("wellbeing.timeframe", string(tf)))

	version, err := s.repo.Version(ctx, userID)
	if err != nil {
		return nil, err
	}
	key := analyticsKey(userID.String(), "mood", string(tf), user.Timezone, version)
	if cached, ok := s.cache.get(key); ok {
		metrics.SnapshotsTotal.WithLabelValues("mood", "cache").Inc()
		span.SetAttributes(attribute.Bool("wellbeing.cache_hit", true))
		return cached.(*domain.MoodAnalyticsResponse), nil
	}

	started := time.Now()
	now := s.now()
	loc := user.Location()

	// Load enough history for both the window and the local calendar month
	since := wellbeing.WindowStart(tf, now)
	local := now.In(loc)
	if monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc); monthStart.Before(since) {
		since = monthStart
	}
	entries, err := s.repo.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	window := wellbeing.SelectMoods(entries, tf, now)
	m := wellbeing.ComputeMoodMetrics(window)

	response := &domain.MoodAnalyticsResponse{
		Timeframe:    tf,
		Window:       domain.AnalyticsWindow{From: wellbeing.WindowStart(tf, now).UTC(), To: now.UTC()},
		Metrics:      m,
		Insights:     wellbeing.MoodInsights(m, len(window)),
		Chart:        wellbeing.MoodChart(window),
		Distribution: wellbeing.MoodDistribution(window),
		Calendar:     wellbeing.MoodCalendar(entries, now, loc),
	}

	s.cache.add(key, response)
	metrics.SnapshotsTotal.WithLabelValues("mood", "computed").Inc()
	metrics.SnapshotDuration.WithLabelValues("mood").Observe(time.Since(started).Seconds())
	span.SetAttributes(attribute.Int("wellbeing.entry_count", m.EntryCount))

	return response, nil
}
