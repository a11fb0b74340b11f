package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"AUTOAD_HEADLESS", "AUTOAD_PROXY", "AUTOAD_BROWSER_BIN", "AUTOAD_NO_SANDBOX",
		"AUTOAD_NAV_TIMEOUT", "AUTOAD_CHALLENGE_SETTLE", "AUTOAD_CHALLENGE_MAX_PASSES",
		"AUTOAD_LOG_LEVEL", "AUTOAD_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.True(t, cfg.Browser.Headless)
	require.True(t, cfg.Browser.NoSandbox)
	require.Empty(t, cfg.Browser.Proxy)
	require.Equal(t, 30*time.Second, cfg.Browser.NavigationTimeout)
	require.Equal(t, 3*time.Second, cfg.Challenge.Settle)
	require.Zero(t, cfg.Challenge.MaxPasses)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "tint", cfg.Log.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AUTOAD_HEADLESS", "false")
	t.Setenv("AUTOAD_PROXY", "http://127.0.0.1:7890")
	t.Setenv("AUTOAD_BROWSER_BIN", "/usr/bin/chromium")
	t.Setenv("AUTOAD_NAV_TIMEOUT", "45s")
	t.Setenv("AUTOAD_CHALLENGE_SETTLE", "500ms")
	t.Setenv("AUTOAD_CHALLENGE_MAX_PASSES", "12")
	t.Setenv("AUTOAD_LOG_LEVEL", "debug")

	cfg := Load()
	require.False(t, cfg.Browser.Headless)
	require.Equal(t, "http://127.0.0.1:7890", cfg.Browser.Proxy)
	require.Equal(t, "/usr/bin/chromium", cfg.Browser.Bin)
	require.Equal(t, 45*time.Second, cfg.Browser.NavigationTimeout)
	require.Equal(t, 500*time.Millisecond, cfg.Challenge.Settle)
	require.Equal(t, 12, cfg.Challenge.MaxPasses)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("AUTOAD_HEADLESS", "sometimes")
	t.Setenv("AUTOAD_CHALLENGE_SETTLE", "soon")
	t.Setenv("AUTOAD_CHALLENGE_MAX_PASSES", "many")

	cfg := Load()
	require.True(t, cfg.Browser.Headless)
	require.Equal(t, 3*time.Second, cfg.Challenge.Settle)
	require.Zero(t, cfg.Challenge.MaxPasses)
}
