package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "test-project")
	t.Setenv("STORAGE_BUCKET", "test-bucket")
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_DISABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("CASCADE_RETRIES", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-project", cfg.ProjectID)
	assert.Equal(t, "test-bucket", cfg.StorageBucket)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.AuthDisabled)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, 4, cfg.CascadeRetries)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "test-project")
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("PORT", "")
	t.Setenv("AUTH_DISABLED", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("CASCADE_RETRIES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-project.appspot.com", cfg.StorageBucket)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.AuthDisabled)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, 2, cfg.CascadeRetries)
}

func TestLoadRequiresProject(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "test-project")

	t.Setenv("RATE_LIMIT_RPS", "fast")
	_, err := Load()
	assert.Error(t, err)
	t.Setenv("RATE_LIMIT_RPS", "")

	t.Setenv("CASCADE_RETRIES", "many")
	_, err = Load()
	assert.Error(t, err)
}
