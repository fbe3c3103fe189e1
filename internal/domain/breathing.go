package domain

// BreathingPattern holds phase lengths in seconds.
type BreathingPattern struct {
	Inhale     int `json:"inhale" example:"4"`
	InhaleHold int `json:"inhale_hold" example:"4"`
	Exhale     int `json:"exhale" example:"4"`
	ExhaleHold int `json:"exhale_hold" example:"4"`
	Cycles     int `json:"cycles" example:"5"`
}

// CycleSeconds is the length of one full breath.
func (p BreathingPattern) CycleSeconds() int {
	return p.Inhale + p.InhaleHold + p.Exhale + p.ExhaleHold
}

// BreathingTechnique is a guided exercise from the static catalog.
// @Description Guided breathing technique with its phase timing.
type BreathingTechnique struct {
	ID           string           `json:"id" example:"box"`
	Name         string           `json:"name" example:"Box Breathing"`
	Description  string           `json:"description"`
	Pattern      BreathingPattern `json:"pattern"`
	CycleSeconds int              `json:"cycle_seconds" example:"16"`
	TotalSeconds int              `json:"total_seconds" example:"80"`
}

// MusicTrack is optional background audio for a session.
type MusicTrack struct {
	ID   string `json:"id" example:"rain"`
	Name string `json:"name" example:"Gentle Rain"`
	Src  string `json:"src,omitempty" example:"/music/rain.mp3"`
}

type BreathingTechniqueListResponse struct {
	Data []BreathingTechnique `json:"data"`
}

type MusicTrackListResponse struct {
	Data []MusicTrack `json:"data"`
}
