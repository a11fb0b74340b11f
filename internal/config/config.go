package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings a scrape starts from. Command-line flags override them.
type Config struct {
	Browser   BrowserConfig
	Challenge ChallengeConfig
	Log       LogConfig
}

// BrowserConfig controls the Chrome instance.
type BrowserConfig struct {
	Headless bool   // default: true
	Proxy    string // default: none
	// Bin overrides the Chrome binary path.
	Bin       string
	NoSandbox bool // default: true

	// NavigationTimeout bounds page.Navigate and the load wait.
	NavigationTimeout time.Duration // default: 30s
}

// ChallengeConfig controls the bot-protection bypass loop.
type ChallengeConfig struct {
	Settle    time.Duration // default: 3s
	MaxPasses int           // default: 0 (unbounded)
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "tint" or "json"; default: "tint"
}

// Load reads a .env file from the working directory when present, then
// builds the configuration from environment variables with defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Browser: BrowserConfig{
			Headless:          envBoolOr("AUTOAD_HEADLESS", true),
			Proxy:             os.Getenv("AUTOAD_PROXY"),
			Bin:               os.Getenv("AUTOAD_BROWSER_BIN"),
			NoSandbox:         envBoolOr("AUTOAD_NO_SANDBOX", true),
			NavigationTimeout: envDurationOr("AUTOAD_NAV_TIMEOUT", 30*time.Second),
		},
		Challenge: ChallengeConfig{
			Settle:    envDurationOr("AUTOAD_CHALLENGE_SETTLE", 3*time.Second),
			MaxPasses: envIntOr("AUTOAD_CHALLENGE_MAX_PASSES", 0),
		},
		Log: LogConfig{
			Level:  envOr("AUTOAD_LOG_LEVEL", "info"),
			Format: envOr("AUTOAD_LOG_FORMAT", "tint"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
