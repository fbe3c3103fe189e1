package domain

// Fixed vocabularies shared by request validation, the metrics engine and
// insight text. The validate tags on request DTOs list the same identifiers.

// MoodLevel describes one point of the 1-5 mood scale.
type MoodLevel struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

var MoodLevels = []MoodLevel{
	{Value: 5, Label: "Excellent"},
	{Value: 4, Label: "Good"},
	{Value: 3, Label: "Okay"},
	{Value: 2, Label: "Low"},
	{Value: 1, Label: "Bad"},
}

// MoodLabel returns the label for a mood value, or "Neutral" when the value
// is outside the scale.
func MoodLabel(value int) string {
	for _, l := range MoodLevels {
		if l.Value == value {
			return l.Label
		}
	}
	return "Neutral"
}

// Tag is an identifier with a human readable label.
type Tag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var MoodActivities = []Tag{
	{ID: "work", Label: "Work"},
	{ID: "exercise", Label: "Exercise"},
	{ID: "family", Label: "Family"},
	{ID: "friends", Label: "Friends"},
	{ID: "hobbies", Label: "Hobbies"},
	{ID: "studying", Label: "Studying"},
	{ID: "socializing", Label: "Socializing"},
	{ID: "selfCare", Label: "Self-care"},
	{ID: "dating", Label: "Dating"},
	{ID: "gaming", Label: "Gaming"},
	{ID: "resting", Label: "Resting"},
	{ID: "cooking", Label: "Cooking"},
	{ID: "travel", Label: "Travel"},
	{ID: "shopping", Label: "Shopping"},
	{ID: "nature", Label: "Nature"},
	{ID: "music", Label: "Music"},
	{ID: "reading", Label: "Reading"},
}

var SleepActivities = []Tag{
	{ID: "reading", Label: "Reading"},
	{ID: "meditation", Label: "Meditation"},
	{ID: "screen", Label: "Screen Time"},
	{ID: "exercise", Label: "Exercise"},
	{ID: "caffeine", Label: "Caffeine"},
	{ID: "alcohol", Label: "Alcohol"},
	{ID: "heavyMeal", Label: "Heavy Meal"},
	{ID: "nap", Label: "Daytime Nap"},
}

var WakeMoods = []Tag{
	{ID: "refreshed", Label: "Refreshed"},
	{ID: "energized", Label: "Energized"},
	{ID: "tired", Label: "Tired"},
	{ID: "groggy", Label: "Groggy"},
	{ID: "neutral", Label: "Neutral"},
}

// SleepQualityLabels is indexed by quality value; index 0 is unused.
var SleepQualityLabels = []string{"", "Poor", "Fair", "Good", "Very Good", "Excellent"}

var JournalTags = []Tag{
	{ID: "reflection", Label: "Reflection"},
	{ID: "gratitude", Label: "Gratitude"},
	{ID: "goals", Label: "Goals"},
	{ID: "memories", Label: "Memories"},
	{ID: "challenges", Label: "Challenges"},
	{ID: "ideas", Label: "Ideas"},
	{ID: "dreams", Label: "Dreams"},
	{ID: "lessons", Label: "Lessons"},
}

var CommunityCategories = []Tag{
	{ID: "mental-health", Label: "Mental Health"},
	{ID: "anxiety", Label: "Anxiety"},
	{ID: "depression", Label: "Depression"},
	{ID: "mindfulness", Label: "Mindfulness"},
	{ID: "self-care", Label: "Self-Care"},
	{ID: "stress", Label: "Stress Management"},
	{ID: "relationships", Label: "Relationships"},
	{ID: "success-stories", Label: "Success Stories"},
	{ID: "questions", Label: "Questions"},
	{ID: "resources", Label: "Resources"},
}

var WellbeingGoals = []Tag{
	{ID: "reduce-anxiety", Label: "Reduce anxiety"},
	{ID: "improve-sleep", Label: "Improve sleep quality"},
	{ID: "mindfulness", Label: "Practice mindfulness"},
	{ID: "manage-stress", Label: "Manage stress"},
	{ID: "boost-mood", Label: "Boost mood"},
	{ID: "self-discovery", Label: "Self-discovery"},
	{ID: "improve-focus", Label: "Improve focus"},
	{ID: "build-resilience", Label: "Build resilience"},
}

// TagLabel looks up the label of id in tags, falling back to id itself.
func TagLabel(tags []Tag, id string) string {
	for _, t := range tags {
		if t.ID == id {
			return t.Label
		}
	}
	return id
}
