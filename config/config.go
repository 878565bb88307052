// Package config holds the ambient configuration for the resource engine:
// logging, metrics, and the optional decode cache. It follows blocky's
// config package conventions — creasty/defaults for zero-value fallbacks,
// gopkg.in/yaml.v2 for on-disk representation.
package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v2"

	"github.com/nodarii/hnsresource/hnslog"
)

// Config is the root configuration object for the engine and its ambient
// concerns. It carries no DNS-domain settings of its own: the engine is a
// pure library, per spec §6 ("no CLI, no env vars, no persisted state").
type Config struct {
	Log     hnslog.Config `yaml:"log"`
	Metrics Metrics       `yaml:"metrics"`
	Cache   Cache         `yaml:"cache"`
}

// Cache controls the optional, explicitly non-persistent decode cache.
type Cache struct {
	Enable bool `default:"true" yaml:"enable"`
	Size   int  `default:"4096" yaml:"size"`
}

// LoadConfig reads and parses a YAML config file, applying struct-tag
// defaults to any field the file leaves unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{Log: hnslog.DefaultConfig()}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("applying config defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
