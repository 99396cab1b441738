// Package config loads gridwalk settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/search"
)

// ErrInvalidValue is returned when a variable is set but unusable.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	GridRows int             // Rows of a new grid (GRID_ROWS)
	GridCols int             // Columns of a new grid (GRID_COLS)
	TickRate int             // Search steps per second when animating (TICK_RATE)
	Strategy search.Strategy // Default strategy (STRATEGY)
	HTTPAddr string          // Listen address for gridwalkd (HTTP_ADDR)
	GinMode  string          // Mode for the Gin framework: release, debug or test (GIN_MODE)
	LogLevel logrus.Level    // Minimum log level (LOG_LEVEL)

	MaxGridCells int           // Largest rows×cols gridwalkd accepts (MAX_GRID_CELLS)
	SessionTTL   time.Duration // Idle time before gridwalkd drops a session (SESSION_TTL)
}

// Defaults match the reference setup: a 30×30 board stepped at 60 Hz.
const (
	DefaultGridRows = 30
	DefaultGridCols = 30
	DefaultTickRate = 60
	DefaultHTTPAddr = ":8080"

	DefaultMaxGridCells = 1 << 20
	DefaultSessionTTL   = 10 * time.Minute
)

// Load reads the configuration. Variables from files (default ".env") are
// loaded first without overriding the real environment; a missing file is
// logged and skipped.
func Load(log logrus.FieldLogger, files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Infof(".env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		HTTPAddr: getEnvWithDefault("HTTP_ADDR", DefaultHTTPAddr),
		GinMode:  getEnvWithDefault("GIN_MODE", "release"),
	}

	var err error
	if cfg.GridRows, err = getPositiveInt("GRID_ROWS", DefaultGridRows); err != nil {
		return Config{}, err
	}
	if cfg.GridCols, err = getPositiveInt("GRID_COLS", DefaultGridCols); err != nil {
		return Config{}, err
	}
	if cfg.TickRate, err = getPositiveInt("TICK_RATE", DefaultTickRate); err != nil {
		return Config{}, err
	}
	if cfg.MaxGridCells, err = getPositiveInt("MAX_GRID_CELLS", DefaultMaxGridCells); err != nil {
		return Config{}, err
	}
	if cfg.GridRows > cfg.MaxGridCells/cfg.GridCols {
		return Config{}, fmt.Errorf("%w: GRID_ROWS×GRID_COLS (%d×%d) exceeds MAX_GRID_CELLS (%d)",
			ErrInvalidValue, cfg.GridRows, cfg.GridCols, cfg.MaxGridCells)
	}
	if cfg.SessionTTL, err = getPositiveDuration("SESSION_TTL", DefaultSessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.Strategy, err = search.ParseStrategy(getEnvWithDefault("STRATEGY", "bfs")); err != nil {
		return Config{}, fmt.Errorf("%w: STRATEGY: %v", ErrInvalidValue, err)
	}
	if cfg.LogLevel, err = logrus.ParseLevel(getEnvWithDefault("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidValue, err)
	}

	return cfg, nil
}

// getPositiveInt reads key as an integer ≥ 1, or returns def if unset.
func getPositiveInt(key string, def int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, key, v)
	}

	return v, nil
}

// getPositiveDuration reads key in time.ParseDuration form, or returns def
// if unset.
func getPositiveDuration(key string, def time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %v", ErrInvalidValue, key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidValue, key, v)
	}

	return v, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultValue
}
