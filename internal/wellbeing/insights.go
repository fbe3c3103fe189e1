package wellbeing

import (
	"fmt"
	"math"
	"strings"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

const (
	insightMoodHigh          = 3.5
	insightMoodLow           = 2.5
	insightImpact            = 0.5
	insightVariabilityHigh   = 1.2
	insightVariabilityLow    = 0.5
	insightStableMinRecords  = 5
	insightGenericBelow      = 3
	insightLogMoreBelow      = 4
	insightLogMoreMaxRecords = 10
)

const (
	msgMoodStart = "Start logging your moods to receive personalized insights."

	msgMoodAverage     = "Your average mood has been %s during this period. %s"
	msgMoodAverageHigh = "That's great! Keep engaging in activities that boost your wellbeing."
	msgMoodAverageLow  = "Consider focusing more on self-care and activities that spark joy."
	msgMoodAverageMid  = "Your emotional state is balanced, but there's room for improvement."

	msgMoodImproving = "Your mood has been improving recently. Whatever you're doing seems to be working well for your mental health."
	msgMoodDeclining = "Your mood has been declining recently. This might be a good time to reflect on stressors in your life and consider additional self-care."
	msgMoodStable    = "Your mood has been relatively stable recently. Consistency can be positive, especially if you're feeling good overall."

	msgPositiveActivities = "Activities associated with improved mood: %s. Consider prioritizing these in your routine."
	msgNegativeActivities = "Activities associated with lower mood: %s. Consider how to manage or balance these activities."

	msgVariabilityHigh = "Your mood shows significant variability. While some fluctuation is normal, extreme swings might indicate a need for mood stabilizing activities like meditation or consistent sleep patterns."
	msgVariabilityLow  = "Your mood is very consistent. This stability can be beneficial, though remember it's also normal to experience a range of emotions."

	msgEnergyIncreasing = "Your energy levels appear to be improving. This often correlates with better sleep, nutrition, or physical activity."
	msgEnergyDecreasing = "Your energy levels seem to be decreasing. Consider evaluating your sleep quality, stress levels, and physical activity."

	msgMoodGeneric = "Regular mood tracking helps identify patterns that affect your emotional wellbeing, allowing for more informed self-care decisions."
	msgMoodLogMore = "Continue logging your moods to receive more personalized insights. More data leads to more accurate patterns and correlations."
)

// MoodInsights turns a mood snapshot into ordered observations. entryCount
// is the number of entries the snapshot was computed from. The result is
// never empty.
func MoodInsights(m domain.MoodMetrics, entryCount int) []string {
	if entryCount == 0 {
		return []string{msgMoodStart}
	}

	var insights []string

	label := strings.ToLower(domain.MoodLabel(int(math.Round(m.AverageMood))))
	framing := msgMoodAverageMid
	switch {
	case m.AverageMood > insightMoodHigh:
		framing = msgMoodAverageHigh
	case m.AverageMood < insightMoodLow:
		framing = msgMoodAverageLow
	}
	insights = append(insights, fmt.Sprintf(msgMoodAverage, label, framing))

	if entryCount >= trendMinRecords {
		switch m.MoodTrend {
		case domain.TrendImproving:
			insights = append(insights, msgMoodImproving)
		case domain.TrendDeclining:
			insights = append(insights, msgMoodDeclining)
		default:
			insights = append(insights, msgMoodStable)
		}
	}

	var positive, negative []string
	for _, c := range m.Correlations {
		switch {
		case c.Impact > insightImpact:
			positive = append(positive, domain.TagLabel(domain.MoodActivities, c.Activity))
		case c.Impact < -insightImpact:
			negative = append(negative, domain.TagLabel(domain.MoodActivities, c.Activity))
		}
	}
	if len(positive) > 0 {
		insights = append(insights, fmt.Sprintf(msgPositiveActivities, strings.Join(positive, ", ")))
	}
	if len(negative) > 0 {
		insights = append(insights, fmt.Sprintf(msgNegativeActivities, strings.Join(negative, ", ")))
	}

	if m.MoodVariability > insightVariabilityHigh {
		insights = append(insights, msgVariabilityHigh)
	} else if m.MoodVariability < insightVariabilityLow && entryCount > insightStableMinRecords {
		insights = append(insights, msgVariabilityLow)
	}

	switch m.EnergyTrend {
	case domain.TrendIncreasing:
		insights = append(insights, msgEnergyIncreasing)
	case domain.TrendDecreasing:
		insights = append(insights, msgEnergyDecreasing)
	}

	if len(insights) < insightGenericBelow {
		insights = append(insights, msgMoodGeneric)
	}
	if len(insights) < insightLogMoreBelow && entryCount < insightLogMoreMaxRecords {
		insights = append(insights, msgMoodLogMore)
	}

	return insights
}
