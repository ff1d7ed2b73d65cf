package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SHERRIN_CONFIG is set
//  3. env (prefix SHERRIN_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SHERRIN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SHERRIN_ADDR, SHERRIN_MAX_SEASON_SPAN, ...
	// Map env keys like SHERRIN_MAX_SEASON_SPAN -> max_season_span,
	// preserving underscores to match the koanf tags on the struct.
	envProvider := env.Provider("SHERRIN_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "sherrin_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.MaxSeasonSpan < 1:
		return nil, fmt.Errorf("%w: max_season_span must be at least 1", ErrInvalidConfig)
	case cfg.DefaultSeasonCount < 0:
		return nil, fmt.Errorf("%w: default_season_count must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}
