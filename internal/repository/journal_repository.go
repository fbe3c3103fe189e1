package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntry, error)
	Update(ctx context.Context, entry *domain.JournalEntry) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]domain.JournalEntry, error)
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	return r.db.WithContext(ctx).Omit("User").Create(entry).Error
}

func (r *journalRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	return r.db.WithContext(ctx).Omit("User").Save(entry).Error
}

func (r *journalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.JournalEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns pinned entries first, then newest first. The text query
// matches title or content case-insensitively and literally.
func (r *journalRepository) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("pinned DESC").
		Order("created_at DESC")

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\'`, pattern, pattern)
	}
	if filter.Tag != "" {
		query = query.Where(datatypes.JSONArrayQuery("tags").Contains(filter.Tag))
	}

	entries := make([]domain.JournalEntry, 0)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes s match itself in a LIKE pattern using '\' as the escape
// character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
