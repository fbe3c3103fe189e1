package repository

import (
	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"gorm.io/gorm"
)

// Models lists every persisted entity in dependency order.
func Models() []any {
	return []any{
		&domain.User{},
		&domain.MoodEntry{},
		&domain.SleepEntry{},
		&domain.JournalEntry{},
		&domain.Post{},
		&domain.Comment{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
