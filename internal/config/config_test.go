package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("CACHE_LIST_TTL", "")
	t.Setenv("CACHE_ENTITY_TTL", "")
	t.Setenv("CACHE_STATS_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "postgres://localhost:5432/attendo?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, "es", cfg.DefaultLocale)
	assert.Equal(t, 30*time.Second, cfg.CacheListTTL)
	assert.Equal(t, 30*time.Second, cfg.CacheEntityTTL)
	assert.Equal(t, 10*time.Second, cfg.CacheStatsTTL)
}

func TestLoadCustomTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db:5432/attendo")
	t.Setenv("CACHE_STATS_TTL", "5s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.CacheStatsTTL)
}

func TestLoadInvalidTTL(t *testing.T) {
	t.Setenv("CACHE_STATS_TTL", "pronto")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadNonPositiveTTL(t *testing.T) {
	t.Setenv("CACHE_STATS_TTL", "-10s")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "not a url at all")

	_, err := Load()
	assert.Error(t, err)
}
