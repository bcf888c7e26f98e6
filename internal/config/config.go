// Package config loads CLI settings from defaults, a TOML file, the
// environment and flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
)

const (
	DefaultFilter   = "all"
	DefaultTheme    = "classic"
	DefaultLogLevel = "info"
	DefaultColor    = "auto"
	DefaultFirstID  = 1
)

// ProjectConfigFiles are looked up in the working directory when no file is
// given explicitly.
var ProjectConfigFiles = []string{"tada.toml", ".tada.toml"}

var ErrInvalid = errors.New("invalid configuration")

// Config holds every user-tunable setting.
type Config struct {
	Filter     string `toml:"filter" env:"TADA_FILTER"`
	Theme      string `toml:"theme" env:"TADA_THEME"`
	LogLevel   string `toml:"log_level" env:"TADA_LOG_LEVEL"`
	Color      string `toml:"color" env:"TADA_COLOR"`
	FirstID    int    `toml:"first_id" env:"TADA_FIRST_ID"`
	Normalized bool   `toml:"normalized" env:"TADA_NORMALIZED"`
	Group      bool   `toml:"group" env:"TADA_GROUP"`

	// File is the config file that was read, if any.
	File string `toml:"-"`

	// Derived by Load.
	VisibilityFilter model.Filter `toml:"-"`
	Level            log.Level    `toml:"-"`
}

// Default returns the finalized default configuration.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	if err := finalize(cfg); err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(cfg *Config) {
	cfg.Filter = DefaultFilter
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
	cfg.Color = DefaultColor
	cfg.FirstID = DefaultFirstID
}

// Load builds the configuration. Flags are registered on fs and parsed from
// args; the remaining positional arguments are returned alongside.
//  1. defaults
//  2. TOML file (--config, TADA_CONFIG, or tada.toml / .tada.toml in the cwd)
//  3. environment
//  4. flags
func Load(fs *flag.FlagSet, args []string) (*Config, []string, error) {
	cfg := &Config{}
	setDefaults(cfg)

	fl := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}

	file := fl.config
	if file == "" {
		file = os.Getenv("TADA_CONFIG")
	}
	if file == "" {
		file = findProjectConfigFile()
	}
	if file != "" {
		if _, err := toml.DecodeFile(file, cfg); err != nil {
			return nil, nil, fmt.Errorf("loading config file %s: %w", file, err)
		}
		cfg.File = file
	}

	if err := env.Parse(cfg); err != nil {
		return nil, nil, fmt.Errorf("parse env: %w", err)
	}

	fl.apply(fs, cfg)

	if err := finalize(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

func findProjectConfigFile() string {
	for _, name := range ProjectConfigFiles {
		if st, err := os.Stat(name); err == nil && !st.IsDir() {
			return name
		}
	}
	return ""
}

// finalize validates the settings and computes derived values.
func finalize(cfg *Config) error {
	f, err := model.ParseFilter(cfg.Filter)
	if err != nil {
		return fmt.Errorf("%w: filter: %v", ErrInvalid, err)
	}
	cfg.VisibilityFilter = f

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	switch cfg.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("%w: theme %q (want classic, neon or mono)", ErrInvalid, cfg.Theme)
	}

	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalid, cfg.Color)
	}

	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel)))
	if err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, cfg.LogLevel)
	}
	cfg.Level = lvl

	if cfg.FirstID < 0 {
		return fmt.Errorf("%w: first id %d is negative", ErrInvalid, cfg.FirstID)
	}
	if cfg.File != "" {
		if abs, err := filepath.Abs(cfg.File); err == nil {
			cfg.File = abs
		}
	}
	return nil
}
