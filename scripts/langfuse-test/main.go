// Script to test Langfuse connectivity by creating a test trace.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/langfuse"
	"github.com/blaisecz/wellbeing-tracker/internal/logging"
	"go.uber.org/zap"
)

func main() {
	logger := logging.New("debug")
	defer func() { _ = logger.Sync() }()

	cfg := langfuse.Config{
		BaseURL:     getEnv("LANGFUSE_BASE_URL", "http://localhost:3001"),
		PublicKey:   os.Getenv("LANGFUSE_PUBLIC_KEY"),
		SecretKey:   os.Getenv("LANGFUSE_SECRET_KEY"),
		Environment: getEnv("LANGFUSE_ENV", "development"),
		Logger:      logger,
	}

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", cfg.BaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(cfg.PublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(cfg.SecretKey))
	fmt.Printf("Environment: %s\n", cfg.Environment)
	fmt.Println()

	client := langfuse.NewClient(cfg)

	if !client.IsEnabled() {
		logger.Fatal("langfuse client is disabled, check LANGFUSE_* env vars")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Create a test trace
	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "test-user-123",
		Name:   "wellbeing-narrative-test",
		Input: map[string]any{
			"timeframe": "week",
			"time":      time.Now().Format(time.RFC3339),
		},
		Output: map[string]any{
			"summary": "Connectivity check from the wellbeing tracker",
		},
		Tags: []string{"test", "manual"},
	})

	if err != nil {
		logger.Fatal("failed to create trace", zap.Error(err))
	}

	if err := client.CreateScore(ctx, langfuse.ScoreInput{TraceID: traceID, Name: "user_rating", Value: 5, Comment: "connectivity check"}); err != nil {
		logger.Fatal("failed to create score", zap.Error(err))
	}
	client.Flush()

	fmt.Println("✓ Test trace and score created successfully!")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.BaseURL, traceID)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
