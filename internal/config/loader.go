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
//  2. file (YAML) if GULLY_CONFIG is set
//  3. env (prefix GULLY_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("GULLY_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: GULLY_ADDR, GULLY_BOARD_SIZE, ...
	// Map env keys like GULLY_BOARD_SIZE -> board_size (flat keys).
	envProvider := env.Provider("GULLY_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "gully_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.TrendIntervalMS <= 0 || c.RefreshIntervalMS <= 0 || c.EventIntervalMS <= 0 || c.SweepIntervalMS <= 0:
		return fmt.Errorf("%w: timer periods must be positive", ErrInvalidConfig)
	case c.EventSkipProbability < 0 || c.EventSkipProbability >= 1:
		return fmt.Errorf("%w: event_skip_probability must be in [0, 1)", ErrInvalidConfig)
	case c.DeltaCapacity <= 0 || c.NotificationCapacity <= 0 || c.TrendCapacity <= 0 || c.UpdatesCapacity <= 0 || c.ShiftCapacity <= 0:
		return fmt.Errorf("%w: stream capacities must be positive", ErrInvalidConfig)
	case c.BoardSize <= 0:
		return fmt.Errorf("%w: board_size must be positive", ErrInvalidConfig)
	case c.CaptainMultiplier <= 0 || c.ViceCaptainMultiplier <= 0:
		return fmt.Errorf("%w: role multipliers must be positive", ErrInvalidConfig)
	}
	return nil
}
