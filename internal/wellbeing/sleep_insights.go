package wellbeing

import (
	"slices"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

const (
	shortSleepMinutes = 7 * 60
	longSleepMinutes  = 9 * 60
)

const (
	msgSleepStart = "Start logging your sleep to get personalized insights."

	msgSleepShort   = "You're averaging less than 7 hours of sleep, which may not be sufficient for optimal health and functioning. Consider going to bed earlier or adjusting your schedule to allow for more rest."
	msgSleepLong    = "You're sleeping more than 9 hours on average. While some people naturally need more sleep, excessive sleep can sometimes be linked to health conditions or poor sleep quality. If you're still feeling tired despite long sleep, consider consulting a healthcare professional."
	msgSleepInRange = "Your average sleep duration falls within the recommended 7-9 hours for adults. Great job maintaining a healthy sleep duration!"

	msgQualityLow  = "Your sleep quality seems to be below average. Try implementing good sleep hygiene practices like maintaining a consistent schedule and creating a comfortable sleep environment."
	msgQualityHigh = "You're reporting excellent sleep quality! Continue your current sleep habits to maintain this positive pattern."

	msgScheduleIrregular = "Your sleep schedule shows significant variation. Maintaining consistent sleep and wake times, even on weekends, can improve your sleep quality and overall well-being."
	msgScheduleRegular   = "You have a very consistent sleep schedule, which is excellent for your circadian rhythm and sleep quality."

	msgScreenTime   = "Screen time before bed appears frequently in your records. The blue light from screens can interfere with melatonin production. Consider using night mode on devices or avoiding screens 1-2 hours before bedtime."
	msgStimulants   = "Caffeine and/or alcohol consumption may be affecting your sleep. These substances can disrupt sleep architecture and quality, even if they don't prevent you from falling asleep."
	msgWindDownGood = "Your bedtime routine includes relaxing activities like reading or meditation, which are excellent practices for promoting quality sleep."
)

// SleepTier buckets sleep quality for tip selection.
type SleepTier string

const (
	SleepTierPoor     SleepTier = "poor"
	SleepTierModerate SleepTier = "moderate"
	SleepTierGood     SleepTier = "good"
)

var sleepTips = map[SleepTier][]string{
	SleepTierPoor: {
		"Establish a consistent sleep schedule, even on weekends",
		"Create a cool, dark, and quiet sleep environment",
		"Avoid screens at least 1 hour before bedtime",
		"Limit caffeine and alcohol consumption",
		"Try relaxation techniques like deep breathing or meditation before bed",
	},
	SleepTierModerate: {
		"Consider light stretching or yoga before bed to release tension",
		"Keep a sleep journal to identify patterns affecting your rest",
		"Ensure your mattress and pillows provide proper support",
		"Avoid heavy meals within 2 hours of bedtime",
		"Try taking a warm bath or shower before bed",
	},
	SleepTierGood: {
		"You're on the right track! Maintain your healthy sleep habits",
		"For even better sleep, consider adding relaxing activities to your bedtime routine",
		"Keep monitoring your sleep patterns to maintain this quality",
		"Morning sunlight exposure can help reinforce your healthy sleep cycle",
		"Physical activity during the day contributes to better sleep quality",
	},
}

// SleepInsights turns a sleep snapshot into ordered observations. The result
// is never empty.
func SleepInsights(m domain.SleepMetrics) []string {
	if m.EntryCount == 0 {
		return []string{msgSleepStart}
	}

	var insights []string

	switch {
	case m.AverageDurationMinutes < shortSleepMinutes:
		insights = append(insights, msgSleepShort)
	case m.AverageDurationMinutes > longSleepMinutes:
		insights = append(insights, msgSleepLong)
	default:
		insights = append(insights, msgSleepInRange)
	}

	if m.AverageQuality < 3 {
		insights = append(insights, msgQualityLow)
	} else if m.AverageQuality >= 4 {
		insights = append(insights, msgQualityHigh)
	}

	if m.ConsistencyScore < 60 {
		insights = append(insights, msgScheduleIrregular)
	} else if m.ConsistencyScore > 80 {
		insights = append(insights, msgScheduleRegular)
	}

	common := make([]string, len(m.CommonActivities))
	for i, a := range m.CommonActivities {
		common[i] = a.Activity
	}
	if slices.Contains(common, "screen") {
		insights = append(insights, msgScreenTime)
	}
	if slices.Contains(common, "caffeine") || slices.Contains(common, "alcohol") {
		insights = append(insights, msgStimulants)
	}
	if slices.Contains(common, "meditation") || slices.Contains(common, "reading") {
		insights = append(insights, msgWindDownGood)
	}

	return insights
}

// Tier classifies average sleep quality; an empty window is moderate.
func Tier(m domain.SleepMetrics) SleepTier {
	switch {
	case m.EntryCount == 0:
		return SleepTierModerate
	case m.AverageQuality < 2.5:
		return SleepTierPoor
	case m.AverageQuality < 4:
		return SleepTierModerate
	default:
		return SleepTierGood
	}
}

// SleepTips returns the tips for the snapshot's quality tier.
func SleepTips(m domain.SleepMetrics) []string {
	return slices.Clone(sleepTips[Tier(m)])
}
