package wellbeing

import (
	"cmp"
	"slices"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

// chartPoints is how many of the latest entries a history chart shows.
const chartPoints = 14

// MoodChart returns the latest entries in ascending time order.
func MoodChart(entries []domain.MoodEntry) []domain.MoodChartPoint {
	sorted := sortedByTimestamp(entries)
	if len(sorted) > chartPoints {
		sorted = sorted[len(sorted)-chartPoints:]
	}
	points := make([]domain.MoodChartPoint, len(sorted))
	for i, e := range sorted {
		points[i] = domain.MoodChartPoint{
			Timestamp:   e.Timestamp,
			Mood:        e.Mood,
			EnergyLevel: e.EnergyLevel,
		}
	}
	return points
}

// SleepChart returns the latest nights in ascending date order.
func SleepChart(entries []domain.SleepEntry) []domain.SleepChartPoint {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.SleepEntry) int {
		return a.SleepDate.Compare(b.SleepDate)
	})
	if len(sorted) > chartPoints {
		sorted = sorted[len(sorted)-chartPoints:]
	}
	points := make([]domain.SleepChartPoint, len(sorted))
	for i, e := range sorted {
		points[i] = domain.SleepChartPoint{
			SleepDate:    e.SleepDate.Format(domain.DateLayout),
			TotalMinutes: e.TotalMinutes,
			SleepQuality: e.SleepQuality,
		}
	}
	return points
}

// MoodDistribution reports the share of each mood level, best first.
func MoodDistribution(entries []domain.MoodEntry) []domain.LevelShare {
	values := make([]int, len(entries))
	for i, e := range entries {
		values[i] = e.Mood
	}
	shares := make([]domain.LevelShare, 0, len(domain.MoodLevels))
	for _, level := range domain.MoodLevels {
		shares = append(shares, share(values, level.Value, level.Label))
	}
	return shares
}

// QualityDistribution reports the share of each sleep quality rating, best
// first.
func QualityDistribution(entries []domain.SleepEntry) []domain.LevelShare {
	values := make([]int, len(entries))
	for i, e := range entries {
		values[i] = e.SleepQuality
	}
	shares := make([]domain.LevelShare, 0, 5)
	for q := 5; q >= 1; q-- {
		shares = append(shares, share(values, q, domain.SleepQualityLabel(q)))
	}
	return shares
}

func share(values []int, value int, label string) domain.LevelShare {
	count := 0
	for _, v := range values {
		if v == value {
			count++
		}
	}
	s := domain.LevelShare{Value: value, Label: label, Count: count}
	if len(values) > 0 {
		s.Percentage = float64(count) / float64(len(values)) * 100
	}
	return s
}

// MoodCalendar averages mood per local calendar day of the month containing
// now, in loc. Days without entries are omitted.
func MoodCalendar(entries []domain.MoodEntry, now time.Time, loc *time.Location) []domain.CalendarDay {
	local := now.In(loc)
	monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	sums := make(map[string][]float64)
	for _, e := range entries {
		ts := e.Timestamp.In(loc)
		if ts.Before(monthStart) || !ts.Before(monthEnd) {
			continue
		}
		day := ts.Format(domain.DateLayout)
		sums[day] = append(sums[day], float64(e.Mood))
	}

	days := make([]domain.CalendarDay, 0, len(sums))
	for day, moods := range sums {
		days = append(days, domain.CalendarDay{
			Date:        day,
			AverageMood: mean(moods),
			Count:       len(moods),
		})
	}
	slices.SortFunc(days, func(a, b domain.CalendarDay) int {
		return cmp.Compare(a.Date, b.Date)
	})
	return days
}
