// Package config loads the runtime configuration by layering defaults,
// an optional YAML file, and FC_-prefixed environment variables.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Port       int    `koanf:"port"`
	LegaURL    string `koanf:"lega_url"` // empty means the production API
	APIToken   string `koanf:"api_token"`
	LeagueID   string `koanf:"league_id"`
	MemberID   string `koanf:"member_id"`
	DebounceMS int    `koanf:"debounce_ms"`
	LogLevel   string `koanf:"log_level"`
}

func defaults() *Config {
	return &Config{
		Port:       3000,
		DebounceMS: 2000,
		LogLevel:   "info",
	}
}

// Load builds a Config. Order of precedence (low -> high):
//  1. defaults
//  2. YAML file if FC_CONFIG is set
//  3. env (prefix FC_), e.g. FC_LEAGUE_ID, FC_DEBOUNCE_MS
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("FC_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("FC_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "fc_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.LeagueID == "" {
		return nil, errors.New("league_id must not be empty")
	}
	if cfg.MemberID == "" {
		return nil, errors.New("member_id must not be empty")
	}
	if cfg.DebounceMS <= 0 {
		return nil, errors.New("debounce_ms must be positive")
	}
	return &cfg, nil
}

func (c *Config) DebounceDelay() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}
