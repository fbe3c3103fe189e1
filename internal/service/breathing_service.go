package service

import (
	"context"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

var breathingTechniques = []domain.BreathingTechnique{
	technique("box", "Box Breathing",
		"Equal counts for inhaling, holding, exhaling and holding again. Used to steady the nervous system under stress.",
		domain.BreathingPattern{Inhale: 4, InhaleHold: 4, Exhale: 4, ExhaleHold: 4, Cycles: 5}),
	technique("478", "4-7-8 Breathing",
		"A long hold and slow exhale that encourages relaxation before sleep.",
		domain.BreathingPattern{Inhale: 4, InhaleHold: 7, Exhale: 8, Cycles: 4}),
	technique("coherent", "Coherent Breathing",
		"Slow, even breaths at about six per minute to balance heart rate variability.",
		domain.BreathingPattern{Inhale: 5, Exhale: 5, Cycles: 6}),
	technique("triangle", "Triangle Breathing",
		"Inhale, hold and exhale for the same count. A gentle start for beginners.",
		domain.BreathingPattern{Inhale: 4, InhaleHold: 4, Exhale: 4, Cycles: 5}),
}

var breathingMusic = []domain.MusicTrack{
	{ID: "none", Name: "No Music"},
	{ID: "ambient", Name: "Ambient Calm", Src: "/music/ambient.mp3"},
	{ID: "meditation", Name: "Meditation Bells", Src: "/music/meditation.mp3"},
	{ID: "rain", Name: "Gentle Rain", Src: "/music/rain.mp3"},
	{ID: "forest", Name: "Forest Sounds", Src: "/music/forest.mp3"},
}

func technique(id, name, description string, p domain.BreathingPattern) domain.BreathingTechnique {
	return domain.BreathingTechnique{
		ID:           id,
		Name:         name,
		Description:  description,
		Pattern:      p,
		CycleSeconds: p.CycleSeconds(),
		TotalSeconds: p.CycleSeconds() * p.Cycles,
	}
}

// BreathingService serves the static breathing exercise catalog.
type BreathingService interface {
	ListTechniques(ctx context.Context) []domain.BreathingTechnique
	GetTechnique(ctx context.Context, id string) (*domain.BreathingTechnique, error)
	ListMusic(ctx context.Context) []domain.MusicTrack
}

type breathingService struct{}

func NewBreathingService() BreathingService {
	return breathingService{}
}

func (breathingService) ListTechniques(ctx context.Context) []domain.BreathingTechnique {
	return append([]domain.BreathingTechnique(nil), breathingTechniques...)
}

func (breathingService) GetTechnique(ctx context.Context, id string) (*domain.BreathingTechnique, error) {
	for _, t := range breathingTechniques {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (breathingService) ListMusic(ctx context.Context) []domain.MusicTrack {
	return append([]domain.MusicTrack(nil), breathingMusic...)
}
