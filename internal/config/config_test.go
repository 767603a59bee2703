package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Нечитаемые значения заменяются значениями по умолчанию
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("STATS_CACHE_TTL", "")
	t.Setenv("SERIES_MAX_DAYS", "")
	t.Setenv("SEED_SAMPLE_DATA", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.StatsCacheTTL)
	assert.Equal(t, 365, cfg.SeriesMaxDays)
	assert.True(t, cfg.SeedSampleData)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("STATS_CACHE_TTL", "1m")
	t.Setenv("SERIES_MAX_DAYS", "90")
	t.Setenv("SEED_SAMPLE_DATA", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, time.Minute, cfg.StatsCacheTTL)
	assert.Equal(t, 90, cfg.SeriesMaxDays)
	assert.False(t, cfg.SeedSampleData)
}

func TestLoadConfig_RejectsNonPositiveSeriesWindow(t *testing.T) {
	t.Setenv("SERIES_MAX_DAYS", "0")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_DUR", "soon")
	t.Setenv("X_BOOL", "maybe")

	assert.Equal(t, 7, getEnvAsInt("X_INT", 7))
	assert.Equal(t, time.Second, getEnvAsDuration("X_DUR", time.Second))
	assert.True(t, getEnvAsBool("X_BOOL", true))
}
