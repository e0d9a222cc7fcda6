package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port         string
	Env          string
	APIKey       string
	Model        string
	AuthUsername string
	AuthPassword string
	OutputDir    string
	OutputTTL    time.Duration
	DatabaseURL  string
	ChromePath   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	apiKey := os.Getenv("ANTHROPIC_API_KEY")

	if apiKey == "" {
		log.Printf("ANTHROPIC_API_KEY is not set; generation requests will fail")
	}

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          env,
		APIKey:       apiKey,
		Model:        getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		AuthUsername: strings.TrimSpace(os.Getenv("AUTH_USERNAME")),
		AuthPassword: os.Getenv("AUTH_PASSWORD"),
		OutputDir:    getEnv("OUTPUT_DIR", "./outputs"),
		OutputTTL:    getEnvDuration("OUTPUT_TTL", 15*time.Minute),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ChromePath:   os.Getenv("CHROME_PATH"),
	}

	// Basic auth is all-or-nothing: a lone username or password is a
	// misconfiguration, not a half-open gate.
	if (cfg.AuthUsername == "") != (cfg.AuthPassword == "") {
		log.Fatal("AUTH_USERNAME and AUTH_PASSWORD must be set together")
	}

	return cfg
}

// AuthEnabled reports whether basic auth credentials are configured.
func (c Config) AuthEnabled() bool {
	return c.AuthUsername != "" && c.AuthPassword != ""
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
		return parsed
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}
