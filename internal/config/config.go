// Package config resolves the operator-facing knobs of the solver process:
// where the trip-cost calculator binary lives, how chatty logging is, and
// an optional departure-offset override for experimentation. Values come
// from the environment, optionally seeded by a .env file in the working
// directory; the input envelope itself never carries any of these.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvOraclePath = "PRICING_ORACLE_PATH"
	EnvLogLevel   = "PRICING_LOG_LEVEL"
	EnvZoneOffset = "PRICING_ZONE_OFFSET"
)

// DefaultOraclePath is used when PRICING_ORACLE_PATH is unset; the binary
// is then resolved via PATH.
const DefaultOraclePath = "trip_calculator"

// Config is the resolved process configuration.
type Config struct {
	// OraclePath is the trip-cost calculator executable.
	OraclePath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// ZoneOffset, when non-empty, overrides the solver's fixed departure
	// offset (e.g. "+03:00"). Leave unset for production behavior.
	ZoneOffset string
}

// Load reads a .env file if one exists (existing environment variables
// win), then resolves the configuration from the environment.
func Load() Config {
	_ = godotenv.Load() // absence of .env is not an error

	cfg := Config{
		OraclePath: DefaultOraclePath,
		LogLevel:   "info",
	}
	if v := os.Getenv(EnvOraclePath); v != "" {
		cfg.OraclePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvZoneOffset); v != "" {
		cfg.ZoneOffset = v
	}
	return cfg
}
