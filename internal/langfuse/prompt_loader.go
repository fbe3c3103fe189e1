package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PromptLoaderConfig describes where a prompt is fetched from and where the
// last good copy is cached.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	// SavePath caches the fetched prompt and serves it when Langfuse is
	// unreachable.
	SavePath string
	// Fallback is returned when neither Langfuse nor SavePath has a prompt.
	Fallback string

	Logger *zap.Logger
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// LoadPrompt resolves a prompt from Langfuse, then the local cache file, then
// the compiled-in fallback.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("langfuse")

	if cfg.PromptName != "" {
		prompt, err := fetchPromptFromLangfuse(ctx, cfg)
		if err == nil {
			if err := savePromptToFile(cfg.SavePath, prompt); err != nil {
				logger.Warn("failed to cache prompt locally", zap.String("path", cfg.SavePath), zap.Error(err))
			}
			return prompt, nil
		}
		if !errors.Is(err, errLangfuseDisabled) {
			logger.Warn("prompt fetch failed", zap.String("prompt", cfg.PromptName), zap.Error(err))
		}
	}

	prompt, err := readPromptFromFile(cfg.SavePath)
	if err == nil {
		return prompt, nil
	}
	if cfg.Fallback != "" {
		return cfg.Fallback, nil
	}
	return "", err
}

func fetchPromptFromLangfuse(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return "", errLangfuseDisabled
	}

	parsed, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	if cfg.PromptLabel != "" {
		query := parsed.Query()
		query.Set("label", cfg.PromptLabel)
		parsed.RawQuery = query.Encode()
	}

	requestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	switch promptResp.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(promptResp.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenChatMessages(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

type chatPromptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

// flattenChatMessages joins chat messages into "ROLE: content" paragraphs.
// Placeholders render as {{name}}.
func flattenChatMessages(messages []chatPromptMessage) string {
	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		content := msg.Content
		if msg.Type == "placeholder" {
			content = ""
			if msg.Name != "" {
				content = "{{" + msg.Name + "}}"
			}
		}
		if content == "" {
			continue
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		parts = append(parts, strings.ToUpper(role)+": "+content)
	}
	return strings.Join(parts, "\n\n")
}

func readPromptFromFile(path string) (string, error) {
	if path == "" {
		return "", errors.New("no local prompt file configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read local prompt file: %w", err)
	}
	return string(data), nil
}

func savePromptToFile(path, prompt string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
