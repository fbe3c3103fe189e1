package domain

import "time"

// Timeframe selects a trailing analytics window.
// @Description Trailing window: week (7 days), month (30), 3months (90), year (365).
type Timeframe string

const (
	TimeframeWeek        Timeframe = "week"
	TimeframeMonth       Timeframe = "month"
	TimeframeThreeMonths Timeframe = "3months"
	TimeframeYear        Timeframe = "year"
)

// Days returns the window length; unknown timeframes behave as a week.
func (t Timeframe) Days() int {
	switch t {
	case TimeframeMonth:
		return 30
	case TimeframeThreeMonths:
		return 90
	case TimeframeYear:
		return 365
	default:
		return 7
	}
}

// Trend classifies the direction of a series.
type Trend string

const (
	TrendNeutral    Trend = "neutral"
	TrendImproving  Trend = "improving"
	TrendDeclining  Trend = "declining"
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
)

// ActivityCount is an activity tag and how often it occurred.
type ActivityCount struct {
	Activity string `json:"activity" example:"exercise"`
	Count    int    `json:"count" example:"4"`
}

// ActivityCorrelation is the mood impact of an activity: the mean mood of
// entries with it minus the mean mood of entries without it.
type ActivityCorrelation struct {
	Activity string  `json:"activity" example:"exercise"`
	Impact   float64 `json:"impact" example:"0.75"`
	Count    int     `json:"count" example:"4"`
}

// MoodMetrics is the computed snapshot of a mood window.
// @Description Aggregate mood statistics over a window. Values are unrounded.
type MoodMetrics struct {
	EntryCount             int                   `json:"entry_count" example:"12"`
	AverageMood            float64               `json:"average_mood" example:"3.6"`
	MoodVariability        float64               `json:"mood_variability" example:"0.9"`
	MostFrequentMood       *int                  `json:"most_frequent_mood"`
	MostFrequentActivities []ActivityCount       `json:"most_frequent_activities"`
	MoodTrend              Trend                 `json:"mood_trend" example:"improving"`
	EnergyTrend            Trend                 `json:"energy_trend" example:"neutral"`
	Correlations           []ActivityCorrelation `json:"correlations"`
}

// SleepDaySummary identifies a single night in a sleep snapshot.
type SleepDaySummary struct {
	SleepDate    string `json:"sleep_date" example:"2024-01-15"`
	SleepQuality int    `json:"sleep_quality" example:"5"`
	TotalMinutes int    `json:"total_minutes" example:"480"`
}

// SleepMetrics is the computed snapshot of a sleep window.
// @Description Aggregate sleep statistics over a window. Sleep debt is relative to 8 hours per night and may be negative.
type SleepMetrics struct {
	EntryCount             int              `json:"entry_count" example:"7"`
	AverageDurationMinutes float64          `json:"average_duration_minutes" example:"452.5"`
	AverageQuality         float64          `json:"average_quality" example:"3.7"`
	SleepDebtMinutes       int              `json:"sleep_debt_minutes" example:"190"`
	ConsistencyScore       float64          `json:"consistency_score" example:"78.4"`
	BestQualityDay         *SleepDaySummary `json:"best_quality_day"`
	WorstQualityDay        *SleepDaySummary `json:"worst_quality_day"`
	MostCommonWakeMood     *string          `json:"most_common_wake_mood"`
	CommonActivities       []ActivityCount  `json:"common_activities"`
}

// AnalyticsWindow is the time range covered by an analytics response.
type AnalyticsWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// MoodChartPoint is one entry of the mood history chart.
type MoodChartPoint struct {
	Timestamp   time.Time `json:"timestamp"`
	Mood        int       `json:"mood"`
	EnergyLevel *int      `json:"energy_level,omitempty"`
}

// LevelShare is how many entries of a window fall on one rating value.
type LevelShare struct {
	Value      int     `json:"value" example:"4"`
	Label      string  `json:"label" example:"Good"`
	Count      int     `json:"count" example:"3"`
	Percentage float64 `json:"percentage" example:"42.86"`
}

// CalendarDay is the average mood of one local calendar day.
type CalendarDay struct {
	Date        string  `json:"date" example:"2024-01-15"`
	AverageMood float64 `json:"average_mood" example:"3.5"`
	Count       int     `json:"count" example:"2"`
}

// MoodAnalyticsResponse is the response body of the mood analytics endpoint.
// @Description Mood metrics, insights and chart data for a trailing window.
type MoodAnalyticsResponse struct {
	Timeframe    Timeframe        `json:"timeframe" example:"week"`
	Window       AnalyticsWindow  `json:"window"`
	Metrics      MoodMetrics      `json:"metrics"`
	Insights     []string         `json:"insights"`
	Chart        []MoodChartPoint `json:"chart"`
	Distribution []LevelShare     `json:"distribution"`
	Calendar     []CalendarDay    `json:"calendar"`
}

// SleepChartPoint is one night of the sleep history chart.
type SleepChartPoint struct {
	SleepDate    string `json:"sleep_date"`
	TotalMinutes int    `json:"total_minutes"`
	SleepQuality int    `json:"sleep_quality"`
}

// SleepAnalyticsResponse is the response body of the sleep analytics endpoint.
// @Description Sleep metrics, insights, tips and chart data for a trailing window.
type SleepAnalyticsResponse struct {
	Timeframe           Timeframe         `json:"timeframe" example:"week"`
	Window              AnalyticsWindow   `json:"window"`
	Metrics             SleepMetrics      `json:"metrics"`
	Insights            []string          `json:"insights"`
	Tips                []string          `json:"tips"`
	Chart               []SleepChartPoint `json:"chart"`
	QualityDistribution []LevelShare      `json:"quality_distribution"`
}
