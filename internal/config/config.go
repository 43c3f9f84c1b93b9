package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file looked up from the working directory upward
const FileName = ".kin.toml"

// EnvPath overrides config discovery
const EnvPath = "KIN_CONFIG"

type LineageConfig struct {
	MaxDepth  int  `toml:"max_depth"`
	BandRange int  `toml:"band_range"`
	Unique    bool `toml:"unique"`
}

type OutputConfig struct {
	JSON bool `toml:"json"`
}

type Config struct {
	File    string        `toml:"file"` // default family document
	Lineage LineageConfig `toml:"lineage"`
	Output  OutputConfig  `toml:"output"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Lineage: LineageConfig{
			MaxDepth:  4,
			BandRange: 3,
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// A relative document path is relative to the config file
	if cfg.File != "" && !filepath.IsAbs(cfg.File) {
		cfg.File = filepath.Join(filepath.Dir(path), cfg.File)
	}
	return cfg, nil
}

// Validate rejects settings the resolver cannot use
func (c *Config) Validate() error {
	if c.Lineage.MaxDepth < 1 {
		return errors.New("lineage.max_depth must be at least 1")
	}
	if c.Lineage.BandRange < 0 {
		return errors.New("lineage.band_range must not be negative")
	}
	return nil
}

// Discover finds the config file: env > walk up from dir. Returns "" when
// there is none.
func Discover(dir string) (string, error) {
	if envPath := os.Getenv(EnvPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("config not found at %s: %s", EnvPath, envPath)
		}
		return envPath, nil
	}

	for dir != "" {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

// LoadOrDefault discovers and loads the config, falling back to defaults
func LoadOrDefault(dir string) (*Config, error) {
	path, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
