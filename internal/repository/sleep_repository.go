package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepRepository interface {
	Create(ctx context.Context, entry *domain.SleepEntry) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepEntry, error)
	Update(ctx context.Context, entry *domain.SleepEntry) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.SleepEntry, error)
	// ListSince returns the nights dated at or after since, latest first.
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.SleepEntry, error)
	Version(ctx context.Context, userID uuid.UUID) (string, error)
}

type sleepRepository struct {
	db *gorm.DB
}

func NewSleepRepository(db *gorm.DB) SleepRepository {
	return &sleepRepository{db: db}
}

func (r *sleepRepository) Create(ctx context.Context, entry *domain.SleepEntry) error {
	return r.db.WithContext(ctx).Omit("User").Create(entry).Error
}

// GetByID scopes the lookup to userID.
func (r *sleepRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepEntry, error) {
	var entry domain.SleepEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *sleepRepository) Update(ctx context.Context, entry *domain.SleepEntry) error {
	return r.db.WithContext(ctx).Omit("User").Save(entry).Error
}

func (r *sleepRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.SleepEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sleepRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.SleepEntry, error) {
	query, err := pageQuery(r.db.WithContext(ctx), userID, "sleep_date", filter)
	if err != nil {
		return nil, err
	}

	var entries []domain.SleepEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *sleepRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.SleepEntry, error) {
	var entries []domain.SleepEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND sleep_date >= ?", userID, since.UTC()).
		Order("sleep_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *sleepRepository) Version(ctx context.Context, userID uuid.UUID) (string, error) {
	return versionOf(r.db.WithContext(ctx), &domain.SleepEntry{}, userID)
}
