package service

import (
	"context"
	"fmt"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/memes"
	"github.com/blaisecz/wellbeing-tracker/internal/metrics"
)

const defaultMemeAttempts = 5

type MemeService interface {
	// Random returns a safe-for-work meme, refetching flagged results up to
	// the configured number of attempts.
	Random(ctx context.Context) (*domain.Meme, error)
}

type memeService struct {
	client      memes.Client
	maxAttempts int
}

func NewMemeService(client memes.Client, maxAttempts int) MemeService {
	if maxAttempts <= 0 {
		maxAttempts = defaultMemeAttempts
	}
	return &memeService{client: client, maxAttempts: maxAttempts}
}

func (s *memeService) Random(ctx context.Context) (*domain.Meme, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		meme, err := s.client.Gimme(ctx)
		metrics.UpstreamRequestsTotal.WithLabelValues("memes", "gimme", metrics.Status(err)).Inc()
		if err != nil {
			return nil, err
		}
		if !meme.NSFW {
			return meme, nil
		}
	}
	return nil, fmt.Errorf("%w: no safe meme after %d attempts", domain.ErrUpstream, s.maxAttempts)
}
