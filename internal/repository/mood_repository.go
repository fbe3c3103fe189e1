package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MoodRepository interface {
	Create(ctx context.Context, entry *domain.MoodEntry) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.MoodEntry, error)
	Update(ctx context.Context, entry *domain.MoodEntry) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.MoodEntry, error)
	// ListSince returns every entry at or after since, newest first.
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.MoodEntry, error)
	Version(ctx context.Context, userID uuid.UUID) (string, error)
}

type moodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	return r.db.WithContext(ctx).Omit("User").Create(entry).Error
}

// GetByID only finds entries owned by userID; anything else is not found.
func (r *moodRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.MoodEntry, error) {
	var entry domain.MoodEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *moodRepository) Update(ctx context.Context, entry *domain.MoodEntry) error {
	return r.db.WithContext(ctx).Omit("User").Save(entry).Error
}

func (r *moodRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.MoodEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *moodRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.MoodEntry, error) {
	query, err := pageQuery(r.db.WithContext(ctx), userID, "timestamp", filter)
	if err != nil {
		return nil, err
	}

	var entries []domain.MoodEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *moodRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.MoodEntry, error) {
	var entries []domain.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ?", userID, since.UTC()).
		Order("timestamp DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *moodRepository) Version(ctx context.Context, userID uuid.UUID) (string, error) {
	return versionOf(r.db.WithContext(ctx), &domain.MoodEntry{}, userID)
}
