// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for the fixture service.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// MaxSeasonSpan caps the number of seasons a single request may ask
	// for. The players dataset runs to roughly 12k rows per season, so
	// unbounded spans would make response sizes unreasonable.
	MaxSeasonSpan int `koanf:"max_season_span"`

	// DefaultSeasonCount is used when a request names no season range.
	DefaultSeasonCount int `koanf:"default_season_count"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8090",
		MaxSeasonSpan:      10,
		DefaultSeasonCount: 1,
	}
}
