package service

import (
	"context"
	"fmt"
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

type SleepService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRequest) (*domain.SleepEntry, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepEntry, error)
	// Update applies the provided fields. The duration is recomputed whenever
	// bed or wake time changes.
	Update(ctx context.Context, userID, id uuid.UUID, req *domain.UpdateSleepRequest) (*domain.SleepEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.SleepListResponse, error)
	Analytics(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.SleepAnalyticsResponse, error)
}

type sleepService struct {
	repo     repository.SleepRepository
	userRepo repository.UserRepository
	cache    *AnalyticsCache
	now      func() time.Time
}

func NewSleepService(repo repository.SleepRepository, userRepo repository.UserRepository, cache *AnalyticsCache) SleepService {
	return &sleepService{
		repo:     repo,
		userRepo: userRepo,
		cache:    cache,
		now:      time.Now,
	}
}

func parseSleepDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: sleep_date %q", domain.ErrInvalidInput, s)
	}
	return d, nil
}

func (s *sleepService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRequest) (*domain.SleepEntry, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	date, err := parseSleepDate(req.SleepDate)
	if err != nil {
		return nil, err
	}

	entry := &domain.SleepEntry{
		UserID:       userID,
		SleepDate:    date,
		SleepQuality: req.SleepQuality,
		WakeMood:     req.WakeMood,
		Activities:   nonNilStrings(req.Activities),
		Notes:        req.Notes,
	}
	if err := entry.SetTimes(req.BedTime, req.WakeTime); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *sleepService) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepEntry, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *sleepService) Update(ctx context.Context, userID, id uuid.UUID, req *domain.UpdateSleepRequest) (*domain.SleepEntry, error) {
	entry, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.SleepDate != nil {
		date, err := parseSleepDate(*req.SleepDate)
		if err != nil {
			return nil, err
		}
		entry.SleepDate = date
	}
	if req.BedTime != nil || req.WakeTime != nil {
		bed, wake := entry.BedTime, entry.WakeTime
		if req.BedTime != nil {
			bed = *req.BedTime
		}
		if req.WakeTime != nil {
			wake = *req.WakeTime
		}
		if err := entry.SetTimes(bed, wake); err != nil {
			return nil, err
		}
	}
	if req.SleepQuality != nil {
		entry.SleepQuality = *req.SleepQuality
	}
	if req.WakeMood != nil {
		entry.WakeMood = *req.WakeMood
	}
	if req.Activities != nil {
		entry.Activities = nonNilStrings(*req.Activities)
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *sleepService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *sleepService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.SleepListResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	entries, hasMore := pagination.Trim(entries, filter.Limit)

	response := &domain.SleepListResponse{
		Data: make([]domain.SleepEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range entries {
		response.Data[i] = entries[i].ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{ID: last.ID, At: last.SleepDate}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *sleepService) Analytics(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.SleepAnalyticsResponse, error) {
	ctx, span := telemetry.Tracer("service").Start(ctx, "sleep.analytics")
	defer span.End()

	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	tf := wellbeing.ParseTimeframe(timeframe)
	span.SetAttributes(attribute.String("wellbeing.timeframe", string(tf)))

	version, err := s.repo.Version(ctx, userID)
	if err != nil {
		return nil, err
	}
	key := analyticsKey(userID.String(), "sleep", string(tf), version)
	if cached, ok := s.cache.get(key); ok {
		metrics.SnapshotsTotal.WithLabelValues("sleep", "cache").Inc()
		span.SetAttributes(attribute.Bool("wellbeing.cache_hit", true))
		return cached.(*domain.SleepAnalyticsResponse), nil
	}

	started := time.Now()
	now := s.now()
	start := wellbeing.WindowStart(tf, now)

	entries, err := s.repo.ListSince(ctx, userID, start)
	if err != nil {
		return nil, err
	}

	window := wellbeing.SelectSleep(entries, tf, now)
	m := wellbeing.ComputeSleepMetrics(window)

	response := &domain.SleepAnalyticsResponse{
		Timeframe:           tf,
		Window:              domain.AnalyticsWindow{From: start.UTC(), To: now.UTC()},
		Metrics:             m,
		Insights:            wellbeing.SleepInsights(m),
		Tips:                wellbeing.SleepTips(m),
		Chart:               wellbeing.SleepChart(window),
		QualityDistribution: wellbeing.QualityDistribution(window),
	}

	s.cache.add(key, response)
	metrics.SnapshotsTotal.WithLabelValues("sleep", "computed").Inc()
	metrics.SnapshotDuration.WithLabelValues("sleep").Observe(time.Since(started).Seconds())
	span.SetAttributes(attribute.Int("wellbeing.entry_count", m.EntryCount))

	return response, nil
}
