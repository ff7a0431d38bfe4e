// This package holds the defaults for the maze command, which can be set
// using environment variables or a .env file. Command-line flags override
// them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default settings for the maze command.
type Config struct {
	// The number of times the GIF restarts. 0 loops forever.
	LoopCount int
	// The total time it takes to play every frame once.
	AnimationDuration time.Duration
	// Only every n-th generation step is kept as a frame.
	FrameStep int
	// A logrus level name, e.g. "debug" or "warn".
	LogLevel string
}

// The environment variables read by Load.
const (
	EnvLoopCount   = "MAZE_LOOP_COUNT"
	EnvAnimationMS = "MAZE_ANIMATION_MS"
	EnvFrameStep   = "MAZE_FRAME_STEP"
	EnvLogLevel    = "MAZE_LOG_LEVEL"
)

// Returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LoopCount:         3,
		AnimationDuration: time.Second,
		FrameStep:         1,
		LogLevel:          "info",
	}
}

// Reads the configuration from environment variables, after loading the
// given .env files (or ".env" if none are given). Missing .env files are not
// an error, but malformed values are.
func Load(envFiles ...string) (Config, error) {
	e := godotenv.Load(envFiles...)
	if (e != nil) && !errors.Is(e, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("Error loading env file: %w", e)
	}

	cfg := Default()
	cfg.LoopCount, e = getEnvAsInt(EnvLoopCount, cfg.LoopCount)
	if e != nil {
		return Config{}, e
	}
	ms, e := getEnvAsInt(EnvAnimationMS,
		int(cfg.AnimationDuration/time.Millisecond))
	if e != nil {
		return Config{}, e
	}
	if ms <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %d",
			EnvAnimationMS, ms)
	}
	cfg.AnimationDuration = time.Duration(ms) * time.Millisecond
	cfg.FrameStep, e = getEnvAsInt(EnvFrameStep, cfg.FrameStep)
	if e != nil {
		return Config{}, e
	}
	if cfg.FrameStep < 1 {
		return Config{}, fmt.Errorf("%s must be at least 1, got %d",
			EnvFrameStep, cfg.FrameStep)
	}
	cfg.LogLevel = getEnvWithDefault(EnvLogLevel, cfg.LogLevel)
	return cfg, nil
}

// Returns the integer value of the environment variable, or defaultValue if
// it's unset or empty.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	s, exists := os.LookupEnv(key)
	if !exists || (s == "") {
		return defaultValue, nil
	}
	value, e := strconv.Atoi(s)
	if e != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, e)
	}
	return value, nil
}

// Returns the value of the environment variable, or defaultValue if it's
// unset or empty.
func getEnvWithDefault(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists || (value == "") {
		return defaultValue
	}
	return value
}
