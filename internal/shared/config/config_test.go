package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "PORT", "ANTHROPIC_API_KEY", "ANTHROPIC_MODEL",
		"AUTH_USERNAME", "AUTH_PASSWORD", "OUTPUT_DIR", "OUTPUT_TTL",
		"DATABASE_URL", "CHROME_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
	if cfg.Model != "claude-sonnet-4-20250514" {
		t.Fatalf("unexpected default model %q", cfg.Model)
	}
	if cfg.OutputDir != "./outputs" {
		t.Fatalf("unexpected default output dir %q", cfg.OutputDir)
	}
	if cfg.OutputTTL != 15*time.Minute {
		t.Fatalf("unexpected default ttl %v", cfg.OutputTTL)
	}
	if cfg.AuthEnabled() {
		t.Fatalf("expected auth disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "PROD")
	t.Setenv("PORT", "9090")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_MODEL", "claude-test")
	t.Setenv("AUTH_USERNAME", "admin")
	t.Setenv("AUTH_PASSWORD", "secret")
	t.Setenv("OUTPUT_TTL", "30m")
	t.Setenv("DATABASE_URL", "postgres://localhost/tailor")

	cfg := Load()

	if cfg.Env != "production" {
		t.Fatalf("expected production env, got %q", cfg.Env)
	}
	if cfg.Port != "9090" || cfg.APIKey != "sk-test" || cfg.Model != "claude-test" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.OutputTTL != 30*time.Minute {
		t.Fatalf("unexpected ttl %v", cfg.OutputTTL)
	}
	if !cfg.AuthEnabled() {
		t.Fatalf("expected auth enabled")
	}
}

func TestGetEnvDuration(t *testing.T) {
	clearEnv(t)

	cases := []struct {
		value string
		want  time.Duration
	}{
		{"", time.Minute},
		{"90s", 90 * time.Second},
		{"600", 10 * time.Minute},
		{"-5m", time.Minute},
		{"bogus", time.Minute},
	}
	for _, tc := range cases {
		t.Setenv("OUTPUT_TTL", tc.value)
		if got := getEnvDuration("OUTPUT_TTL", time.Minute); got != tc.want {
			t.Fatalf("getEnvDuration(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"PRODUCTION": "production",
		"staging":    "staging",
		"dev":        "dev",
		"":           "dev",
		"local":      "dev",
	}
	for raw, want := range cases {
		if got := normalizeEnv(raw); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", raw, got, want)
		}
	}
}
