package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Theme       string      `yaml:"theme"`
	IDs         string      `yaml:"ids"`
	Seed        SeedConfig  `yaml:"seed"`
	Log         LogConfig   `yaml:"log"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
}

// SeedConfig selects where the initial items come from.
// An empty File means generated demo items.
type SeedConfig struct {
	File     string   `yaml:"file"`
	Count    int      `yaml:"count"` // 0 means DefaultSeedCount
	Options  []string `yaml:"options"`
	RandSeed uint64   `yaml:"rand_seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

const (
	DefaultTheme     = "classic"
	DefaultIDs       = "counter"
	DefaultSeedCount = 6
	DefaultLogLevel  = "info"
)

var (
	themes    = []string{"classic", "neon", "mono"}
	idSchemes = []string{"counter", "uuid"}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the config at path, or at Path() when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &c, nil
}

// Save writes c to path, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Path resolves the config file: $CARDS_CONFIG, then $XDG_CONFIG_HOME/cards, then ~/.config/cards.
func Path() (string, error) {
	if p := os.Getenv("CARDS_CONFIG"); p != "" {
		return p, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "cards", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "cards", "config.yaml"), nil
}

// Validate rejects enum values the app does not know.
func (c *Config) Validate() error {
	if err := oneOf("theme", c.Theme, themes); err != nil {
		return err
	}
	if err := oneOf("ids", c.IDs, idSchemes); err != nil {
		return err
	}
	if err := oneOf("log.level", c.Log.Level, logLevels); err != nil {
		return err
	}
	if c.Seed.Count < 0 {
		return fmt.Errorf("seed.count: must not be negative, got %d", c.Seed.Count)
	}
	return nil
}

func oneOf(field, v string, allowed []string) error {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return nil
		}
	}
	return fmt.Errorf("%s: unknown value %q (want %s)", field, v, strings.Join(allowed, "|"))
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.IDs == "" {
		c.IDs = DefaultIDs
	}
	if c.Seed.Count == 0 {
		c.Seed.Count = DefaultSeedCount
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
}
