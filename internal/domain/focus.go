package domain

// FocusActivityType groups the focus catalog.
type FocusActivityType string

const (
	FocusTypeGame      FocusActivityType = "game"
	FocusTypeExercise  FocusActivityType = "exercise"
	FocusTypeChallenge FocusActivityType = "challenge"
)

// FocusActivity is a mini-game or exercise hosted on an external site.
// @Description Focus mini-game or exercise from the static catalog.
type FocusActivity struct {
	ID          string            `json:"id" example:"memory-tiles"`
	Name        string            `json:"name" example:"Memory Tiles"`
	Description string            `json:"description"`
	Type        FocusActivityType `json:"type" example:"game" enums:"game,exercise,challenge"`
	Duration    string            `json:"duration" example:"5-10 min"`
	Difficulty  string            `json:"difficulty" example:"Medium" enums:"Easy,Medium,Hard"`
	Link        string            `json:"link" example:"https://www.improvememory.org/wp-content/games/memory-game/index.html"`
}

// FocusPlaylist is a named set of tracks to play while concentrating.
type FocusPlaylist struct {
	ID          string   `json:"id" example:"deep-focus"`
	Name        string   `json:"name" example:"Deep Focus"`
	Description string   `json:"description"`
	Duration    string   `json:"duration" example:"2 hours"`
	Tracks      []string `json:"tracks"`
}
