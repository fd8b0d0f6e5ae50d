// Package config holds the process configuration read from the environment
// (optionally seeded from a .env file) and the round presets.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "WHACAMOLE_"

// Config is everything main needs before the window opens.
type Config struct {
	AssetDir     string
	LogLevel     string
	LogFormat    string // "console" or "json"
	WindowWidth  int
	WindowHeight int
	// Seed feeds the game's random source; 0 picks one from the clock.
	Seed int64
	// PresetsFile overrides the built-in presets when set.
	PresetsFile string
}

func Default() Config {
	return Config{
		AssetDir:     "assets",
		LogLevel:     "info",
		LogFormat:    "console",
		WindowWidth:  1280,
		WindowHeight: 720,
	}
}

// Load reads .env if present and then the WHACAMOLE_* environment.
func Load() (Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a getenv-style lookup.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	str := func(key string, dst *string) {
		if v := getenv(envPrefix + key); v != "" {
			*dst = v
		}
	}
	str("ASSET_DIR", &c.AssetDir)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("PRESETS", &c.PresetsFile)

	var err error
	if c.WindowWidth, err = intEnv(getenv, "WINDOW_WIDTH", c.WindowWidth); err != nil {
		return c, err
	}
	if c.WindowHeight, err = intEnv(getenv, "WINDOW_HEIGHT", c.WindowHeight); err != nil {
		return c, err
	}
	if v := getenv(envPrefix + "SEED"); v != "" {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return c, fmt.Errorf("invalid %sSEED %q: %w", envPrefix, v, err)
		}
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return c, fmt.Errorf("invalid %sLOG_FORMAT %q", envPrefix, c.LogFormat)
	}
	return c, nil
}

func intEnv(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(envPrefix + key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s%s %q: %w", envPrefix, key, v, err)
	}
	if n <= 0 {
		return def, fmt.Errorf("%s%s must be positive, got %d", envPrefix, key, n)
	}
	return n, nil
}

// Presets returns the built-in presets unless PresetsFile points elsewhere.
func (c Config) Presets() (*Presets, error) {
	if c.PresetsFile != "" {
		return LoadPresets(c.PresetsFile)
	}
	return DefaultPresets()
}
