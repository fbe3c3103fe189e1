package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestTypedEnv(t *testing.T) {
	t.Setenv("CFG_INT", "42")
	t.Setenv("CFG_BAD_INT", "forty")
	t.Setenv("CFG_FLOAT", "0.25")
	t.Setenv("CFG_DURATION", "90s")
	t.Setenv("CFG_BAD_DURATION", "soon")
	t.Setenv("CFG_SLICE", "http://a.test, http://b.test,,")

	if got := getIntEnv("CFG_INT", 1); got != 42 {
		t.Errorf("getIntEnv = %d, want 42", got)
	}
	if got := getIntEnv("CFG_BAD_INT", 7); got != 7 {
		t.Errorf("getIntEnv invalid = %d, want default 7", got)
	}
	if got := getFloatEnv("CFG_FLOAT", 1); got != 0.25 {
		t.Errorf("getFloatEnv = %g, want 0.25", got)
	}
	if got := getDurationEnv("CFG_DURATION", time.Second); got != 90*time.Second {
		t.Errorf("getDurationEnv = %s, want 90s", got)
	}
	if got := getDurationEnv("CFG_BAD_DURATION", time.Second); got != time.Second {
		t.Errorf("getDurationEnv invalid = %s, want default", got)
	}
	got := getSliceEnv("CFG_SLICE", "*")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Errorf("getSliceEnv = %v", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	for _, key := range []string{
		"PORT", "DATABASE_DRIVER", "DATABASE_URL", "LOG_LEVEL", "SEED",
		"OPENAI_API_KEY", "OPENAI_WELLBEING_MODEL", "PSYCHOLOGIST_API_URL",
		"MEME_MAX_ATTEMPTS", "CHAT_RATE_LIMIT_BURST", "ANALYTICS_CACHE_TTL",
		"CORS_ALLOWED_ORIGINS", "TRUSTED_PROXIES",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" || cfg.DatabaseDriver != "postgres" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.PsychologistAPIURL != "https://psychologist-api.onrender.com" || cfg.MemeMaxAttempts != 5 {
		t.Fatalf("external service defaults not applied: %+v", cfg)
	}
	if cfg.AnalyticsCacheTTL != time.Minute || len(cfg.CORSAllowedOrigins) != 1 {
		t.Fatalf("cache/cors defaults not applied: %+v", cfg)
	}
	if len(cfg.TrustedProxies) != 0 {
		t.Fatalf("expected no trusted proxies by default, got %v", cfg.TrustedProxies)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "wellbeing.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SEED", "true")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_WELLBEING_MODEL", "model")
	t.Setenv("CHAT_RATE_LIMIT_BURST", "2")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseDriver != "sqlite" || cfg.DatabaseURL != "wellbeing.db" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAIWellbeingModel != "model" || cfg.ChatRateLimitBurst != 2 {
		t.Fatalf("overrides missing: %+v", cfg)
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[1] != "127.0.0.1" {
		t.Fatalf("TrustedProxies = %v", cfg.TrustedProxies)
	}
}

func TestNewDatabase_SQLite(t *testing.T) {
	db, err := NewDatabase(&Config{DatabaseDriver: "sqlite", DatabaseURL: "file::memory:"})
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil || one != 1 {
		t.Fatalf("query failed: %v (%d)", err, one)
	}
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	if _, err := NewDatabase(&Config{DatabaseDriver: "mysql"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
