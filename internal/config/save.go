package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "save config")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "save config")
	}

	return errors.Wrap(os.WriteFile(path, data, 0644), "save config")
}
