package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with the schema
// migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Name: "Test User", Email: email, Timezone: "UTC"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

var baseTime = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}
