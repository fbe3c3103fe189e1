package wellbeing

import (
	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

const (
	// targetSleepMinutes is the nightly baseline sleep debt is measured against.
	targetSleepMinutes = 8 * 60
	// consistencyDivisor maps 180 minutes of deviation to a score of zero.
	consistencyDivisor = 1.8
	topSleepActivities = 3
)

// ComputeSleepMetrics builds the sleep snapshot of a window. Durations are
// taken from the stored entry, never recomputed.
func ComputeSleepMetrics(entries []domain.SleepEntry) domain.SleepMetrics {
	metrics := domain.SleepMetrics{
		EntryCount:       len(entries),
		CommonActivities: []domain.ActivityCount{},
	}
	if len(entries) == 0 {
		return metrics
	}

	durations := make([]float64, len(entries))
	qualities := make([]float64, len(entries))
	activities := make([][]string, len(entries))
	wakeMoods := make([][]string, len(entries))
	total := 0
	for i, e := range entries {
		durations[i] = float64(e.TotalMinutes)
		qualities[i] = float64(e.SleepQuality)
		activities[i] = e.Activities
		wakeMoods[i] = []string{e.WakeMood}
		total += e.TotalMinutes
	}

	metrics.AverageDurationMinutes = mean(durations)
	metrics.AverageQuality = mean(qualities)
	metrics.SleepDebtMinutes = len(entries)*targetSleepMinutes - total
	metrics.ConsistencyScore = clamp(100-populationStdDev(durations)/consistencyDivisor, 0, 100)
	metrics.BestQualityDay, metrics.WorstQualityDay = qualityExtremes(entries)
	metrics.CommonActivities = rankTags(activities, topSleepActivities)
	if top := rankTags(wakeMoods, 1); len(top) > 0 {
		mood := top[0].Activity
		metrics.MostCommonWakeMood = &mood
	}

	return metrics
}

// qualityExtremes returns the highest and lowest rated nights. Ties go to the
// most recent sleep date.
func qualityExtremes(entries []domain.SleepEntry) (best, worst *domain.SleepDaySummary) {
	var bestEntry, worstEntry *domain.SleepEntry
	for i := range entries {
		e := &entries[i]
		if bestEntry == nil || e.SleepQuality > bestEntry.SleepQuality ||
			(e.SleepQuality == bestEntry.SleepQuality && e.SleepDate.After(bestEntry.SleepDate)) {
			bestEntry = e
		}
		if worstEntry == nil || e.SleepQuality < worstEntry.SleepQuality ||
			(e.SleepQuality == worstEntry.SleepQuality && e.SleepDate.After(worstEntry.SleepDate)) {
			worstEntry = e
		}
	}
	return daySummary(bestEntry), daySummary(worstEntry)
}

func daySummary(e *domain.SleepEntry) *domain.SleepDaySummary {
	if e == nil {
		return nil
	}
	return &domain.SleepDaySummary{
		SleepDate:    e.SleepDate.Format(domain.DateLayout),
		SleepQuality: e.SleepQuality,
		TotalMinutes: e.TotalMinutes,
	}
}
