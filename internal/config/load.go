package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
//
// If flags is nil, no overrides are applied. If no config path is set, only
// defaults and flags are used.
func Load(flags *Flags) (*Config, error) {
	cfg := Default()
	var path string
	if flags != nil {
		path = flags.ConfigPath()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, errors.Wrapf(err, "loading config from %s", path)
		}
	}
	if flags != nil {
		if err := flags.apply(cfg); err != nil {
			return nil, errors.Wrap(err, "applying flags")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads defaults overridden by a YAML file.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, errors.Wrapf(err, "loading config from %s", path)
	}
	return cfg, nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
