package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "file:characters?mode=memory")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, FavoritesDatabase, cfg.FavoritesBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestParseRequiresDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost/characters")
	t.Setenv("PORT", "9090")
	t.Setenv("FAVORITES_BACKEND", " Redis ")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://characters.example.com,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, FavoritesRedis, cfg.FavoritesBackend)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"http://localhost:5173", "https://characters.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestParseRejectsUnknownFavoritesBackend(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost/characters")
	t.Setenv("FAVORITES_BACKEND", "mongo")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}

func TestSlogLevelFallsBackToInfo(t *testing.T) {
	cfg := Config{LogLevel: "chatty"}
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())

	cfg.LogLevel = "WARN"
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}
