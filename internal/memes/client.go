// Package memes fetches random posts from the public meme API.
package memes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"go.uber.org/zap"
)

// Client fetches a single random meme.
type Client interface {
	Gimme(ctx context.Context) (*domain.Meme, error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg Config) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("memes"),
	}
}

// gimmeResponse is the upstream wire format.
type gimmeResponse struct {
	PostLink  string   `json:"postLink"`
	Subreddit string   `json:"subreddit"`
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	NSFW      bool     `json:"nsfw"`
	Spoiler   bool     `json:"spoiler"`
	Author    string   `json:"author"`
	Ups       int      `json:"ups"`
	Preview   []string `json:"preview"`
}

func (c *client) Gimme(ctx context.Context) (*domain.Meme, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/gimme", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("gimme request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: meme request: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: meme api returned %d", domain.ErrUpstream, resp.StatusCode)
	}

	var out gimmeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode meme: %v", domain.ErrUpstream, err)
	}

	preview := out.Preview
	if preview == nil {
		preview = []string{}
	}
	return &domain.Meme{
		PostLink:  out.PostLink,
		Subreddit: out.Subreddit,
		Title:     out.Title,
		URL:       out.URL,
		NSFW:      out.NSFW,
		Spoiler:   out.Spoiler,
		Author:    out.Author,
		Ups:       out.Ups,
		Preview:   preview,
	}, nil
}
