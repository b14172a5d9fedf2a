package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoLuiz92/dependente-plan-form/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FORM_API_URL", "https://hooks.example.com/form")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://hooks.example.com/form", cfg.APIURL)
	assert.Equal(t, "dependente-plan-form", cfg.AppName)
	assert.Equal(t, 20, cfg.MaxDependents)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, 255, cfg.MaxStringLength)
	assert.Equal(t, 11, cfg.MaxPhoneLength)
	assert.Equal(t, 20, cfg.MaxDocumentLength)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FORM_API_URL", "https://hooks.example.com/form")
	t.Setenv("FORM_MAX_DEPENDENTES", "5")
	t.Setenv("FORM_RATE_LIMIT_WINDOW", "1m")
	t.Setenv("FORM_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxDependents)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLimits(t *testing.T) {
	t.Setenv("FORM_API_URL", "https://hooks.example.com/form")

	cfg, err := config.Load()
	require.NoError(t, err)

	limits := cfg.Limits()
	assert.Equal(t, 20, limits.MaxDependents)
	assert.Equal(t, 255, limits.MaxStringLen)
	assert.Equal(t, 11, limits.MaxPhoneLen)
	assert.Equal(t, 20, limits.MaxDocumentLen)
}

func TestValidOrigin(t *testing.T) {
	t.Setenv("FORM_API_URL", "https://hooks.example.com/form")
	t.Setenv("FORM_ALLOWED_ORIGINS", "https://a.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.ValidOrigin("https://a.example.com"))
	assert.False(t, cfg.ValidOrigin("https://evil.example.com"))
}
