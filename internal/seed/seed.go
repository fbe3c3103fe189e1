package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seededDays = 40

// namespace derives stable record IDs so reseeding finds existing rows.
var namespace = uuid.MustParse("6f1c2a4e-8d3b-4f0e-9a57-2b8c1d0e7f31")

func seededID(parts ...any) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprint(parts...)))
}

func intPtr(i int) *int { return &i }

// Users returns the demo accounts created by Run.
func Users() []domain.User {
	return []domain.User{
		{
			ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Alex", Email: "alex@example.com",
			Timezone: "Europe/Amsterdam", Age: intPtr(29), Gender: "female", Occupation: "designer",
			Goals: []string{"improve-sleep", "reduce-anxiety"}, OnboardingCompleted: true,
		},
		{
			ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Sam", Email: "sam@example.com",
			Timezone: "America/New_York", Age: intPtr(41), Gender: "male", Occupation: "nurse",
			Goals: []string{"manage-stress"}, OnboardingCompleted: true,
		},
		{
			ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Kai", Email: "kai@example.com",
			Timezone: "Asia/Tokyo", Goals: []string{},
		},
	}
}

// Run seeds the database with demo users, mood and sleep history, journal
// entries and community posts. Safe to call multiple times.
func Run(db *gorm.DB, logger *zap.Logger) error {
	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := Users()
	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	for _, user := range users {
		if err := seedMoods(db, user, now, rng); err != nil {
			return err
		}
		if err := seedSleep(db, user, now, rng); err != nil {
			return err
		}
		if err := seedJournal(db, user); err != nil {
			return err
		}
	}
	if err := seedCommunity(db, users); err != nil {
		return err
	}

	logger.Info("seed completed", zap.Int("users", len(users)), zap.Int("days", seededDays))
	return nil
}

func seedMoods(db *gorm.DB, user domain.User, now time.Time, rng *rand.Rand) error {
	for i := 0; i < seededDays; i++ {
		day := now.AddDate(0, 0, -i)
		for slot, hour := range []int{9, 20} {
			if slot == 1 && rng.Float32() < 0.4 {
				continue
			}
			activities := []string{domain.MoodActivities[rng.Intn(len(domain.MoodActivities))].ID}
			mood := 2 + rng.Intn(4)
			if activities[0] == "exercise" || activities[0] == "nature" {
				mood = 4 + rng.Intn(2)
			}
			entry := domain.MoodEntry{
				ID:          seededID("mood", user.ID, i, slot),
				UserID:      user.ID,
				Mood:        mood,
				EnergyLevel: intPtr(1 + rng.Intn(5)),
				Activities:  activities,
				Timestamp:   time.Date(day.Year(), day.Month(), day.Day(), hour, rng.Intn(60), 0, 0, time.UTC),
			}
			if err := db.Where("id = ?", entry.ID).FirstOrCreate(&entry).Error; err != nil {
				return fmt.Errorf("failed to create mood entry: %w", err)
			}
		}
	}
	return nil
}

func seedSleep(db *gorm.DB, user domain.User, now time.Time, rng *rand.Rand) error {
	wakeMoods := []string{"refreshed", "energized", "tired", "groggy", "neutral"}
	for i := 0; i < seededDays; i++ {
		day := now.AddDate(0, 0, -i)
		bed := fmt.Sprintf("%02d:%02d", []int{22, 23, 0}[rng.Intn(3)], rng.Intn(60))
		wake := fmt.Sprintf("%02d:%02d", 6+rng.Intn(3), rng.Intn(60))

		entry := domain.SleepEntry{
			ID:           seededID("sleep", user.ID, i),
			UserID:       user.ID,
			SleepDate:    time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			SleepQuality: 1 + rng.Intn(5),
			WakeMood:     wakeMoods[rng.Intn(len(wakeMoods))],
			Activities:   []string{domain.SleepActivities[rng.Intn(len(domain.SleepActivities))].ID},
		}
		if err := entry.SetTimes(bed, wake); err != nil {
			return err
		}
		if err := db.Where("id = ?", entry.ID).FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("failed to create sleep entry: %w", err)
		}
	}
	return nil
}

func seedJournal(db *gorm.DB, user domain.User) error {
	entries := []domain.JournalEntry{
		{Title: "Three good things", Content: "1. Coffee with a friend\n2. A **long** walk\n3. Slept before midnight", Tags: []string{"gratitude"}, Pinned: true},
		{Title: "Goals for the month", Content: "- Read before bed\n- Fewer screens after 22:00", Tags: []string{"goals"}},
		{Title: "Odd dream", Content: "Something about an _ocean_ of paper boats.", Tags: []string{"dreams", "reflection"}},
	}
	for i := range entries {
		entries[i].ID = seededID("journal", user.ID, i)
		entries[i].UserID = user.ID
		if err := db.Where("id = ?", entries[i].ID).FirstOrCreate(&entries[i]).Error; err != nil {
			return fmt.Errorf("failed to create journal entry: %w", err)
		}
	}
	return nil
}

func seedCommunity(db *gorm.DB, users []domain.User) error {
	author := users[0]
	post := domain.Post{
		ID:         seededID("post", author.ID, 0),
		UserID:     author.ID,
		AuthorName: author.Name,
		Title:      "Box breathing before meetings",
		Content:    "Four rounds before every call has helped me a lot. Anyone else?",
		Categories: []string{"anxiety", "mindfulness"},
		LikedBy:    []string{users[1].ID.String()},
		SavedBy:    []string{},
	}
	post.Likes = len(post.LikedBy)

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", post.ID).FirstOrCreate(&post)
		if result.Error != nil {
			return fmt.Errorf("failed to create post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		comment := domain.Comment{
			ID:         seededID("comment", post.ID, 0),
			PostID:     post.ID,
			UserID:     users[1].ID,
			AuthorName: users[1].Name,
			Content:    "Trying it tomorrow, thanks!",
		}
		if err := tx.Create(&comment).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		return tx.Model(&domain.Post{}).Where("id = ?", post.ID).
			Update("comment_count", gorm.Expr("comment_count + ?", 1)).Error
	})
}
