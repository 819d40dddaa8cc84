package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the config to the user's config directory and returns the path.
func (c *Config) Save() (string, error) {
	path := filepath.Join(ConfigDir(), "config.yaml")
	return path, c.SaveTo(path)
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// SaveRequested writes the config when --save-config was given and reports
// whether it did. The value "user" targets the user's config directory.
func (c *Config) SaveRequested() (path string, saved bool, err error) {
	path = SavePath()
	switch path {
	case "":
		return "", false, nil
	case "user":
		path, err = c.Save()
	default:
		err = c.SaveTo(path)
	}
	return path, err == nil, err
}
