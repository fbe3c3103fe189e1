package wellbeing

import (
	"testing"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func intPtr(i int) *int { return &i }

func moodAt(ts time.Time, mood int, activities ...string) domain.MoodEntry {
	return domain.MoodEntry{Mood: mood, Timestamp: ts, Activities: activities}
}

// moodSeries builds entries one hour apart, oldest first.
func moodSeries(moods ...int) []domain.MoodEntry {
	entries := make([]domain.MoodEntry, len(moods))
	start := now.Add(-time.Duration(len(moods)) * time.Hour)
	for i, m := range moods {
		entries[i] = moodAt(start.Add(time.Duration(i)*time.Hour), m)
	}
	return entries
}

func TestParseTimeframe(t *testing.T) {
	tests := map[string]domain.Timeframe{
		"week":    domain.TimeframeWeek,
		"month":   domain.TimeframeMonth,
		"3months": domain.TimeframeThreeMonths,
		"year":    domain.TimeframeYear,
		"":        domain.TimeframeWeek,
		"decade":  domain.TimeframeWeek,
		"WEEK":    domain.TimeframeWeek,
	}
	for keyword, want := range tests {
		assert.Equal(t, want, ParseTimeframe(keyword), "keyword %q", keyword)
	}
}

func TestSelectMoods_WeekBoundary(t *testing.T) {
	boundary := now.AddDate(0, 0, -7)
	entries := []domain.MoodEntry{
		moodAt(now.Add(-time.Hour), 4),
		moodAt(boundary, 3),
		moodAt(boundary.Add(-time.Second), 2),
		moodAt(now.AddDate(0, 0, -30), 1),
		moodAt(now.AddDate(0, 0, -2), 5),
	}

	got := SelectMoods(entries, domain.TimeframeWeek, now)

	require.Len(t, got, 3)
	assert.Equal(t, 4, got[0].Mood, "input order preserved")
	assert.Equal(t, 3, got[1].Mood, "entry exactly 7 days old is inside the window")
	assert.Equal(t, 5, got[2].Mood)
}

func TestSelectMoods_Timeframes(t *testing.T) {
	entries := []domain.MoodEntry{
		moodAt(now.AddDate(0, 0, -3), 1),
		moodAt(now.AddDate(0, 0, -20), 2),
		moodAt(now.AddDate(0, 0, -60), 3),
		moodAt(now.AddDate(0, 0, -200), 4),
		moodAt(now.AddDate(0, 0, -400), 5),
	}

	tests := []struct {
		tf   domain.Timeframe
		want int
	}{
		{domain.TimeframeWeek, 1},
		{domain.TimeframeMonth, 2},
		{domain.TimeframeThreeMonths, 3},
		{domain.TimeframeYear, 4},
	}
	for _, tt := range tests {
		t.Run(string(tt.tf), func(t *testing.T) {
			assert.Len(t, SelectMoods(entries, tt.tf, now), tt.want)
		})
	}
}

func TestSelectMoods_EmptyIsNotNil(t *testing.T) {
	got := SelectMoods(nil, domain.TimeframeWeek, now)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelectSleep_UsesSleepDate(t *testing.T) {
	day := func(daysAgo int) time.Time {
		d := now.AddDate(0, 0, -daysAgo)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	entries := []domain.SleepEntry{
		{SleepDate: day(0)},
		{SleepDate: day(6)},
		{SleepDate: day(7)},
		{SleepDate: day(29)},
	}

	assert.Len(t, SelectSleep(entries, domain.TimeframeWeek, now), 2)
	assert.Len(t, SelectSleep(entries, domain.TimeframeMonth, now), 4)
}

func TestComputeMoodMetrics_Empty(t *testing.T) {
	m := ComputeMoodMetrics(nil)

	assert.Zero(t, m.AverageMood)
	assert.Zero(t, m.MoodVariability)
	assert.Nil(t, m.MostFrequentMood)
	assert.NotNil(t, m.MostFrequentActivities)
	assert.Empty(t, m.MostFrequentActivities)
	assert.NotNil(t, m.Correlations)
	assert.Empty(t, m.Correlations)
	assert.Equal(t, domain.TrendNeutral, m.MoodTrend)
	assert.Equal(t, domain.TrendNeutral, m.EnergyTrend)
	assert.Zero(t, m.EntryCount)
}

func TestComputeMoodMetrics_Variability(t *testing.T) {
	tests := []struct {
		name    string
		moods   []int
		wantAvg float64
		wantStd float64
	}{
		{name: "single entry", moods: []int{4}, wantAvg: 4, wantStd: 0},
		{name: "identical moods", moods: []int{3, 3, 3, 3}, wantAvg: 3, wantStd: 0},
		{name: "population not sample", moods: []int{1, 5}, wantAvg: 3, wantStd: 2},
		{name: "mixed", moods: []int{2, 4, 4, 4, 5, 5, 5, 1}, wantAvg: 3.75, wantStd: 1.3919},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeMoodMetrics(moodSeries(tt.moods...))
			assert.InDelta(t, tt.wantAvg, m.AverageMood, 1e-9)
			assert.InDelta(t, tt.wantStd, m.MoodVariability, 1e-4)
			assert.GreaterOrEqual(t, m.AverageMood, 1.0)
			assert.LessOrEqual(t, m.AverageMood, 5.0)
		})
	}
}

func TestComputeMoodMetrics_Trend(t *testing.T) {
	tests := []struct {
		name  string
		moods []int
		want  domain.Trend
	}{
		{name: "overlapping halves improving", moods: []int{2, 2, 2, 4, 5}, want: domain.TrendImproving},
		{name: "declining", moods: []int{5, 4, 2, 2, 2}, want: domain.TrendDeclining},
		{name: "flat", moods: []int{3, 3, 3}, want: domain.TrendNeutral},
		{name: "two records never trend", moods: []int{1, 5}, want: domain.TrendNeutral},
		{name: "even count halves", moods: []int{1, 1, 3, 3}, want: domain.TrendImproving},
		{name: "only last five count", moods: []int{5, 5, 1, 1, 1, 1, 1}, want: domain.TrendNeutral},
		{name: "difference of exactly half is neutral", moods: []int{3, 3, 4, 3}, want: domain.TrendNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeMoodMetrics(moodSeries(tt.moods...))
			assert.Equal(t, tt.want, m.MoodTrend)
		})
	}
}

func TestComputeMoodMetrics_TrendSortsByTimestamp(t *testing.T) {
	entries := moodSeries(2, 2, 2, 4, 5)
	shuffled := []domain.MoodEntry{entries[4], entries[0], entries[3], entries[2], entries[1]}

	m := ComputeMoodMetrics(shuffled)

	assert.Equal(t, domain.TrendImproving, m.MoodTrend)
	assert.Equal(t, 5, shuffled[0].Mood, "input must not be reordered")
}

func TestComputeMoodMetrics_EnergyTrend(t *testing.T) {
	entries := moodSeries(3, 3, 3, 3, 3)
	entries[0].EnergyLevel = intPtr(1)
	entries[2].EnergyLevel = intPtr(2)

	m := ComputeMoodMetrics(entries)
	assert.Equal(t, domain.TrendNeutral, m.EnergyTrend, "two energy readings are not enough")

	entries[4].EnergyLevel = intPtr(4)
	m = ComputeMoodMetrics(entries)
	assert.Equal(t, domain.TrendIncreasing, m.EnergyTrend)

	entries[0].EnergyLevel = intPtr(5)
	entries[2].EnergyLevel = intPtr(4)
	entries[4].EnergyLevel = intPtr(2)
	m = ComputeMoodMetrics(entries)
	assert.Equal(t, domain.TrendDecreasing, m.EnergyTrend)
	assert.Equal(t, domain.TrendNeutral, m.MoodTrend)
}

func TestComputeMoodMetrics_MostFrequent(t *testing.T) {
	entries := []domain.MoodEntry{
		moodAt(now.Add(-4*time.Hour), 4, "work", "music"),
		moodAt(now.Add(-3*time.Hour), 2, "work", "exercise"),
		moodAt(now.Add(-2*time.Hour), 4, "reading", "exercise"),
		moodAt(now.Add(-1*time.Hour), 2, "work", "nature", "travel", "cooking"),
	}

	m := ComputeMoodMetrics(entries)

	require.NotNil(t, m.MostFrequentMood)
	assert.Equal(t, 2, *m.MostFrequentMood, "ties go to the lowest mood")
	assert.Equal(t, []domain.ActivityCount{
		{Activity: "work", Count: 3},
		{Activity: "exercise", Count: 2},
		{Activity: "cooking", Count: 1},
		{Activity: "music", Count: 1},
		{Activity: "nature", Count: 1},
	}, m.MostFrequentActivities)
}

func correlationFixture() []domain.MoodEntry {
	return []domain.MoodEntry{
		moodAt(now.Add(-6*time.Hour), 5, "exercise", "friends"),
		moodAt(now.Add(-5*time.Hour), 5, "exercise", "friends"),
		moodAt(now.Add(-4*time.Hour), 1, "work", "friends"),
		moodAt(now.Add(-3*time.Hour), 1, "work", "friends"),
		moodAt(now.Add(-2*time.Hour), 3, "music", "reading", "friends"),
		moodAt(now.Add(-1*time.Hour), 3, "music", "reading", "friends"),
	}
}

func TestComputeMoodMetrics_Correlations(t *testing.T) {
	m := ComputeMoodMetrics(correlationFixture())

	require.Len(t, m.Correlations, 3)
	assert.Equal(t, "exercise", m.Correlations[0].Activity)
	assert.InDelta(t, 3.0, m.Correlations[0].Impact, 1e-9)
	assert.Equal(t, 2, m.Correlations[0].Count)
	assert.Equal(t, "work", m.Correlations[1].Activity)
	assert.InDelta(t, -3.0, m.Correlations[1].Impact, 1e-9)
	assert.Equal(t, "music", m.Correlations[2].Activity)
	assert.InDelta(t, 0.0, m.Correlations[2].Impact, 1e-9)

	for _, c := range m.Correlations {
		assert.NotEqual(t, "friends", c.Activity, "activity present in every entry has no comparison group")
	}
}

func TestComputeMoodMetrics_CorrelationNeedsTwoPerPartition(t *testing.T) {
	entries := moodSeries(5, 2, 2, 2)
	entries[0].Activities = []string{"exercise"}

	m := ComputeMoodMetrics(entries)

	assert.Empty(t, m.Correlations)
	assert.Len(t, m.MostFrequentActivities, 1)
}

func TestComputeMoodMetrics_RepeatedTagCountsOncePerEntry(t *testing.T) {
	entries := []domain.MoodEntry{
		moodAt(now.Add(-3*time.Hour), 3, "exercise", "exercise", "exercise"),
		moodAt(now.Add(-2*time.Hour), 3, "work"),
		moodAt(now.Add(-1*time.Hour), 3, "work"),
	}

	m := ComputeMoodMetrics(entries)

	assert.Equal(t, []domain.ActivityCount{
		{Activity: "work", Count: 2},
		{Activity: "exercise", Count: 1},
	}, m.MostFrequentActivities)
}
