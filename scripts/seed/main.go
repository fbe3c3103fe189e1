// Seeds a database with demo users and wellbeing history.
// Usage: go run scripts/seed/main.go
package main

import (
	"github.com/blaisecz/wellbeing-tracker/internal/config"
	"github.com/blaisecz/wellbeing-tracker/internal/logging"
	"github.com/blaisecz/wellbeing-tracker/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := seed.Run(db, logger); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	for _, user := range seed.Users() {
		logger.Info("demo user ready",
			zap.String("id", user.ID.String()),
			zap.String("email", user.Email),
			zap.String("timezone", user.Timezone),
		)
	}
}
