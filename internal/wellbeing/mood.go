package wellbeing

import (
	"cmp"
	"math"
	"slices"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

const (
	topActivities    = 5
	topCorrelations  = 3
	minPartitionSize = 2
)

// ComputeMoodMetrics builds the mood snapshot of a window. Entries may be in
// any order.
func ComputeMoodMetrics(entries []domain.MoodEntry) domain.MoodMetrics {
	metrics := domain.MoodMetrics{
		EntryCount:             len(entries),
		MostFrequentActivities: []domain.ActivityCount{},
		MoodTrend:              domain.TrendNeutral,
		EnergyTrend:            domain.TrendNeutral,
		Correlations:           []domain.ActivityCorrelation{},
	}
	if len(entries) == 0 {
		return metrics
	}

	moods := make([]float64, len(entries))
	activities := make([][]string, len(entries))
	for i, e := range entries {
		moods[i] = float64(e.Mood)
		activities[i] = e.Activities
	}

	metrics.AverageMood = mean(moods)
	metrics.MoodVariability = populationStdDev(moods)
	metrics.MostFrequentMood = mostFrequentMood(entries)
	metrics.MostFrequentActivities = rankTags(activities, topActivities)

	chronological := sortedByTimestamp(entries)
	moodSeries := make([]float64, 0, len(chronological))
	energySeries := make([]float64, 0, len(chronological))
	for _, e := range chronological {
		moodSeries = append(moodSeries, float64(e.Mood))
		if e.EnergyLevel != nil {
			energySeries = append(energySeries, float64(*e.EnergyLevel))
		}
	}
	metrics.MoodTrend = classifyTrend(moodSeries, domain.TrendImproving, domain.TrendDeclining)
	metrics.EnergyTrend = classifyTrend(energySeries, domain.TrendIncreasing, domain.TrendDecreasing)

	metrics.Correlations = correlateActivities(entries, metrics.MostFrequentActivities)

	return metrics
}

// mostFrequentMood returns the most common mood value; ties go to the lowest
// value.
func mostFrequentMood(entries []domain.MoodEntry) *int {
	counts := make(map[int]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	values := make([]int, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	slices.Sort(values)

	best, bestCount := 0, 0
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return &best
}

func sortedByTimestamp(entries []domain.MoodEntry) []domain.MoodEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.MoodEntry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return sorted
}

// correlateActivities measures the mood impact of each candidate activity.
// Activities present in fewer than two entries, or missing from fewer than
// two, are skipped.
func correlateActivities(entries []domain.MoodEntry, candidates []domain.ActivityCount) []domain.ActivityCorrelation {
	correlations := make([]domain.ActivityCorrelation, 0, len(candidates))
	for _, c := range candidates {
		var with, without []float64
		for _, e := range entries {
			if e.HasActivity(c.Activity) {
				with = append(with, float64(e.Mood))
			} else {
				without = append(without, float64(e.Mood))
			}
		}
		if len(with) < minPartitionSize || len(without) < minPartitionSize {
			continue
		}
		correlations = append(correlations, domain.ActivityCorrelation{
			Activity: c.Activity,
			Impact:   mean(with) - mean(without),
			Count:    len(with),
		})
	}

	slices.SortStableFunc(correlations, func(a, b domain.ActivityCorrelation) int {
		return cmp.Compare(math.Abs(b.Impact), math.Abs(a.Impact))
	})
	if len(correlations) > topCorrelations {
		correlations = correlations[:topCorrelations]
	}
	return correlations
}
