package wellbeing

import (
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

// ParseTimeframe maps a keyword to a timeframe. Unknown keywords fall back to
// a week.
func ParseTimeframe(keyword string) domain.Timeframe {
	switch tf := domain.Timeframe(keyword); tf {
	case domain.TimeframeWeek, domain.TimeframeMonth, domain.TimeframeThreeMonths, domain.TimeframeYear:
		return tf
	}
	return domain.TimeframeWeek
}

// WindowStart returns the earliest instant inside the trailing window that
// ends at now.
func WindowStart(tf domain.Timeframe, now time.Time) time.Time {
	return now.AddDate(0, 0, -tf.Days())
}

// SelectMoods returns the entries whose timestamp is at or after the window
// start. The boundary is inclusive and input order is preserved.
func SelectMoods(entries []domain.MoodEntry, tf domain.Timeframe, now time.Time) []domain.MoodEntry {
	return selectSince(entries, WindowStart(tf, now), func(e domain.MoodEntry) time.Time {
		return e.Timestamp
	})
}

// SelectSleep is SelectMoods for sleep entries, keyed on the sleep date.
func SelectSleep(entries []domain.SleepEntry, tf domain.Timeframe, now time.Time) []domain.SleepEntry {
	return selectSince(entries, WindowStart(tf, now), func(e domain.SleepEntry) time.Time {
		return e.SleepDate
	})
}

func selectSince[T any](records []T, start time.Time, at func(T) time.Time) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !at(r).Before(start) {
			out = append(out, r)
		}
	}
	return out
}
