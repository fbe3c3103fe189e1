package repository

import (
	"fmt"
	"strconv"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// pageQuery orders a user's entries newest first on column and applies the
// time range and keyset cursor of filter. One extra row is requested so the
// caller can tell whether another page exists.
func pageQuery(db *gorm.DB, userID uuid.UUID, column string, filter domain.ListFilter) (*gorm.DB, error) {
	query := db.Where("user_id = ?", userID).
		Order(column + " DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where(column+" >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where(column+" <= ?", filter.To.UTC())
	}

	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if cursor != nil {
		// For DESC order: rows strictly before the cursor, ties broken by id
		at := cursor.At.UTC()
		query = query.Where(
			"("+column+" < ?) OR ("+column+" = ? AND id < ?)",
			at, at, cursor.ID,
		)
	}

	return query.Limit(pagination.NormalizeLimit(filter.Limit) + 1), nil
}

// versionOf fingerprints a user's rows of model: the row count together with
// the latest update time. Any insert, update or delete changes it.
func versionOf(db *gorm.DB, model any, userID uuid.UUID) (string, error) {
	var count int64
	if err := db.Model(model).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return "0", nil
	}

	var latest struct{ UpdatedAt time.Time }
	err := db.Model(model).
		Select("updated_at").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(1).
		Scan(&latest).Error
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(count, 10) + ":" + strconv.FormatInt(latest.UpdatedAt.UnixNano(), 10), nil
}
