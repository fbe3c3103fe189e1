package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

func TestMemeService_Random(t *testing.T) {
	safe := &domain.Meme{Title: "cat", URL: "https://i.redd.it/cat.png"}
	nsfw := &domain.Meme{Title: "nope", NSFW: true}

	tests := []struct {
		name      string
		client    *MockMemeClient
		attempts  int
		wantErr   error
		wantCalls int
	}{
		{name: "first is safe", client: &MockMemeClient{memes: []*domain.Meme{safe}}, attempts: 5, wantCalls: 1},
		{name: "skips flagged", client: &MockMemeClient{memes: []*domain.Meme{nsfw, nsfw, safe}}, attempts: 5, wantCalls: 3},
		{name: "gives up", client: &MockMemeClient{memes: []*domain.Meme{nsfw}}, attempts: 3, wantErr: domain.ErrUpstream, wantCalls: 3},
		{name: "default attempts", client: &MockMemeClient{memes: []*domain.Meme{nsfw}}, attempts: 0, wantErr: domain.ErrUpstream, wantCalls: 5},
		{name: "upstream error", client: &MockMemeClient{err: domain.ErrUpstream}, attempts: 5, wantErr: domain.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMemeService(tt.client, tt.attempts)
			meme, err := svc.Random(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Random() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Random() unexpected error: %v", err)
			} else if meme.NSFW {
				t.Fatal("Random() returned a flagged meme")
			}
			if tt.client.calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", tt.client.calls, tt.wantCalls)
			}
		})
	}
}
