package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Favorites backends.
const (
	FavoritesDatabase = "database"
	FavoritesRedis    = "redis"
)

// Config holds the process configuration read from the environment.
type Config struct {
	Port             string   `env:"PORT" envDefault:"8080"`
	DatabaseDSN      string   `env:"DATABASE_DSN,required,notEmpty"`
	DatabaseDriver   string   `env:"DATABASE_DRIVER"`
	FavoritesBackend string   `env:"FAVORITES_BACKEND" envDefault:"database"`
	RedisAddr        string   `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword    string   `env:"REDIS_PASSWORD"`
	RedisDB          int      `env:"REDIS_DB" envDefault:"0"`
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	GinMode          string   `env:"GIN_MODE"`
}

// Load reads an optional .env file and then parses the process environment.
// Variables already set in the environment win over .env entries.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the process environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.FavoritesBackend = strings.ToLower(strings.TrimSpace(c.FavoritesBackend))
	switch c.FavoritesBackend {
	case "":
		c.FavoritesBackend = FavoritesDatabase
	case FavoritesDatabase, FavoritesRedis:
	default:
		return fmt.Errorf("config: unsupported FAVORITES_BACKEND %q", c.FavoritesBackend)
	}

	origins := c.AllowedOrigins[:0]
	for _, origin := range c.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.AllowedOrigins = origins
	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}
