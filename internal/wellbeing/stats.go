package wellbeing

import (
	"cmp"
	"math"
	"slices"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

const (
	// trendMinRecords is the minimum series length for trend detection.
	trendMinRecords = 3
	// trendRecentRecords is how many of the latest values a trend considers.
	trendRecentRecords = 5
	// trendThreshold is the half-mean difference that counts as a change.
	trendThreshold = 0.5
)

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStdDev divides by N, not N-1.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// classifyTrend compares the mean of the first and second half of the last
// five values of an ascending series. The first half holds ceil(n/2)
// values and the second half starts at floor(n/2), so for odd n the middle
// value belongs to both.
func classifyTrend(series []float64, up, down domain.Trend) domain.Trend {
	if len(series) < trendMinRecords {
		return domain.TrendNeutral
	}
	recent := series
	if len(recent) > trendRecentRecords {
		recent = recent[len(recent)-trendRecentRecords:]
	}
	n := len(recent)
	first := recent[:(n+1)/2]
	second := recent[n/2:]

	diff := mean(second) - mean(first)
	switch {
	case diff > trendThreshold:
		return up
	case diff < -trendThreshold:
		return down
	default:
		return domain.TrendNeutral
	}
}

// rankTags counts the lists each tag appears in and returns at most limit
// tags ordered by count descending; equal counts are ordered by tag id. A tag
// repeated within one list counts once.
func rankTags(lists [][]string, limit int) []domain.ActivityCount {
	counts := make(map[string]int)
	for _, tags := range lists {
		seen := make(map[string]bool, len(tags))
		for _, t := range tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			counts[t]++
		}
	}

	ranked := make([]domain.ActivityCount, 0, len(counts))
	for tag, n := range counts {
		ranked = append(ranked, domain.ActivityCount{Activity: tag, Count: n})
	}
	slices.SortFunc(ranked, func(a, b domain.ActivityCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Activity, b.Activity)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
