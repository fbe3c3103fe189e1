// Package psychologist is an HTTP client for the external AI therapist
// service. Each call is a single hop with no retry.
package psychologist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"go.uber.org/zap"
)

// Client talks to the therapist service.
type Client interface {
	Chat(ctx context.Context, in ChatInput) (*domain.ChatResponse, error)
	// Feedback forwards free-text feedback and returns the upstream status.
	Feedback(ctx context.Context, userID, feedback string) (string, error)
}

// ChatInput is one chat turn together with the demographics the service
// personalises on.
type ChatInput struct {
	UserID  string
	Message string
	Gender  string
	Age     int
}

// Config holds client configuration.
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
		timeout = 60 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("psychologist"),
	}
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
	Gender  string `json:"gender"`
	Age     int    `json:"age"`
}

type chatResponse struct {
	Response    string `json:"response"`
	AudioBase64 string `json:"audio_base64"`
	Error       string `json:"error"`
}

type feedbackRequest struct {
	UserID   string `json:"user_id"`
	Feedback string `json:"feedback"`
}

type feedbackResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (c *client) Chat(ctx context.Context, in ChatInput) (*domain.ChatResponse, error) {
	var out chatResponse
	if err := c.post(ctx, "/chat", chatRequest(in), &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, fmt.Errorf("%w: therapist chat: %s", domain.ErrUpstream, out.Error)
	}
	return &domain.ChatResponse{Response: out.Response, AudioBase64: out.AudioBase64}, nil
}

func (c *client) Feedback(ctx context.Context, userID, feedback string) (string, error) {
	var out feedbackResponse
	if err := c.post(ctx, "/feedback", feedbackRequest{UserID: userID, Feedback: feedback}, &out); err != nil {
		return "", err
	}
	if out.Error != "" {
		return "", fmt.Errorf("%w: therapist feedback: %s", domain.ErrUpstream, out.Error)
	}
	return out.Status, nil
}

// post sends payload as JSON and decodes the reply into out. Transport
// failures and non-2xx answers wrap domain.ErrUpstream.
func (c *client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: send request: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("upstream returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(snippet))),
		)
		return fmt.Errorf("%w: %s returned %d", domain.ErrUpstream, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}
	return nil
}
