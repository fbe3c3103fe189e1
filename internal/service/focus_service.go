package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

const improveMemoryGames = "https://www.improvememory.org/wp-content/games/"

var focusActivities = []domain.FocusActivity{
	{
		ID:          "memory-tiles",
		Name:        "Memory Tiles",
		Description: "Test and improve your memory by matching pairs of tiles",
		Type:        domain.FocusTypeGame,
		Duration:    "5-10 min",
		Difficulty:  "Medium",
		Link:        improveMemoryGames + "memory-game/index.html",
	},
	{
		ID:          "pattern-recall",
		Name:        "Pattern Recall",
		Description: "Remember and repeat increasingly complex patterns",
		Type:        domain.FocusTypeGame,
		Duration:    "3-5 min",
		Difficulty:  "Easy",
		Link:        improveMemoryGames + "patternmemory_e_fullscreen.htm",
	},
	{
		ID:          "reaction-test",
		Name:        "Reaction Time",
		Description: "Test your reflexes and improve reaction speed",
		Type:        domain.FocusTypeGame,
		Duration:    "2-3 min",
		Difficulty:  "Easy",
		Link:        "https://humanbenchmark.com/tests/reactiontime",
	},
	{
		ID:          "mindful-maze",
		Name:        "Mindful Slider",
		Description: "Solve through a slider while practicing mindfulness",
		Type:        domain.FocusTypeExercise,
		Duration:    "5-8 min",
		Difficulty:  "Medium",
		Link:        improveMemoryGames + "slide/index.html",
	},
	{
		ID:          "focus-flow",
		Name:        "Focus Flow",
		Description: "Follow the moving object while maintaining concentration",
		Type:        domain.FocusTypeExercise,
		Duration:    "3-5 min",
		Difficulty:  "Medium",
		Link:        improveMemoryGames + "trickycups_e_fullscreen.htm",
	},
	{
		ID:          "word-chains",
		Name:        "Word Chains",
		Description: "Build chains of related words to enhance cognitive flexibility",
		Type:        domain.FocusTypeGame,
		Duration:    "5-10 min",
		Difficulty:  "Hard",
		Link:        improveMemoryGames + "word-game/index.html",
	},
}

var focusPlaylists = []domain.FocusPlaylist{
	{
		ID:          "deep-focus",
		Name:        "Deep Focus",
		Description: "Ambient sounds for deep concentration",
		Duration:    "2 hours",
		Tracks:      []string{"Deep Flow", "Mind Space", "Cosmic Focus", "Neural Rhythm"},
	},
	{
		ID:          "study-beats",
		Name:        "Study Beats",
		Description: "Lo-fi beats for productive study sessions",
		Duration:    "1.5 hours",
		Tracks:      []string{"Midnight Code", "Library Vibes", "Chill Study", "Focus Beat"},
	},
	{
		ID:          "nature-sounds",
		Name:        "Nature Sounds",
		Description: "Calming nature ambiance for relaxed focus",
		Duration:    "1 hour",
		Tracks:      []string{"Forest Rain", "Ocean Waves", "Mountain Stream", "Bird Songs"},
	},
}

// FocusService serves the static focus games catalog and focus playlists.
type FocusService interface {
	// ListActivities filters by type; an empty type or "all" returns the
	// whole catalog.
	ListActivities(ctx context.Context, activityType string) ([]domain.FocusActivity, error)
	ListPlaylists(ctx context.Context) []domain.FocusPlaylist
}

type focusService struct{}

func NewFocusService() FocusService {
	return focusService{}
}

func (focusService) ListActivities(ctx context.Context, activityType string) ([]domain.FocusActivity, error) {
	activityType = strings.ToLower(strings.TrimSpace(activityType))
	switch domain.FocusActivityType(activityType) {
	case "", "all":
		return append([]domain.FocusActivity(nil), focusActivities...), nil
	case domain.FocusTypeGame, domain.FocusTypeExercise, domain.FocusTypeChallenge:
	default:
		return nil, fmt.Errorf("%w: type must be one of all, game, exercise, challenge", domain.ErrInvalidInput)
	}

	matched := make([]domain.FocusActivity, 0, len(focusActivities))
	for _, a := range focusActivities {
		if a.Type == domain.FocusActivityType(activityType) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (focusService) ListPlaylists(ctx context.Context) []domain.FocusPlaylist {
	out := make([]domain.FocusPlaylist, len(focusPlaylists))
	for i, p := range focusPlaylists {
		p.Tracks = append([]string(nil), p.Tracks...)
		out[i] = p
	}
	return out
}
