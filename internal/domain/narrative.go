package domain

// NarrativeProfile is the non-identifying part of a profile given to the
// LLM.
type NarrativeProfile struct {
	Age   *int     `json:"age,omitempty"`
	Goals []string `json:"goals,omitempty"`
}

// NarrativeContext is the input sent to the LLM to produce a wellbeing
// narrative.
type NarrativeContext struct {
	Timeframe     Timeframe        `json:"timeframe"`
	Profile       NarrativeProfile `json:"profile"`
	Mood          MoodMetrics      `json:"mood"`
	MoodInsights  []string         `json:"mood_insights"`
	Sleep         SleepMetrics     `json:"sleep"`
	SleepInsights []string         `json:"sleep_insights"`
}

// NarrativeOutput is the structured output returned by the LLM.
// @Description LLM-generated wellbeing narrative.
type NarrativeOutput struct {
	// 2-3 sentence summary of mood and sleep in the window
	Summary string `json:"summary" example:"Your mood has been steady and slightly improving this week."`
	// Observations about patterns in the data
	Observations []string `json:"observations"`
	// Practical, non-medical suggestions
	Guidance []string `json:"guidance"`
}

// NarrativeResponse is the response body of the narrative endpoint.
// @Description Mood and sleep snapshots with an LLM narrative. trace_id is used to submit feedback.
type NarrativeResponse struct {
	TraceID   string          `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timeframe Timeframe       `json:"timeframe" example:"week"`
	Mood      MoodMetrics     `json:"mood"`
	Sleep     SleepMetrics    `json:"sleep"`
	Narrative NarrativeOutput `json:"narrative"`
}

// NarrativeFeedbackRequest rates a generated narrative.
// @Description User rating for a previously generated narrative.
type NarrativeFeedbackRequest struct {
	TraceID string `json:"trace_id" validate:"required,max=64" example:"550e8400-e29b-41d4-a716-446655440000"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"Helpful and specific"`
}
