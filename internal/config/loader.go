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
//  2. file (YAML) if BEACON_CONFIG is set
//  3. env (prefix BEACON_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("BEACON_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: BEACON_ADDR, BEACON_MAX_RESULTS_LIMIT, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("BEACON_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "beacon_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.MaxResultsLimit < 1:
		return nil, fmt.Errorf("%w: max_results_limit must be positive", ErrInvalidConfig)
	case cfg.HistorySize < 1:
		return nil, fmt.Errorf("%w: history_size must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
