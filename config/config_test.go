package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SITE_PORT", "9090")
	t.Setenv("SITE_BASE_URL", "https://pages.example.org/")
	t.Setenv("SITE_SIGNUP_URL", "https://app.example.org/signup")
	t.Setenv("SITE_RATE_LIMIT_MAX", "5")
	t.Setenv("SITE_RATE_LIMIT_EXP", "30s")
	t.Setenv("SITE_LOG_PRETTY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://pages.example.org", cfg.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, "https://app.example.org/signup", cfg.SignupURL)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, 30*time.Second, cfg.RateLimitExp)
	assert.True(t, cfg.LogPretty)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "zero rate limit", key: "SITE_RATE_LIMIT_MAX", val: "0"},
		{name: "relative base url", key: "SITE_BASE_URL", val: "/not-absolute"},
		{name: "negative cache ttl", key: "SITE_RENDER_CACHE_TTL", val: "-1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Port = ""
	cfg.RateLimitExp = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port is empty")
	assert.Contains(t, err.Error(), "rate limit expiration")
}
