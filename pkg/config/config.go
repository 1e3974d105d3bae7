// Package config loads pdfregion settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"

	"github.com/pyhub-apps/pdfregion/pkg/export"
	"github.com/pyhub-apps/pdfregion/pkg/geometry"
	"github.com/pyhub-apps/pdfregion/pkg/notify"
)

// DefaultFileName is looked up in the home directory when no path is given
const DefaultFileName = ".pdfregion.yaml"

// Config holds the tunable settings
type Config struct {
	// MinimumExtent is the size in pixels a drag must exceed on both axes
	MinimumExtent float64 `yaml:"minimum_extent"`
	// Notification is how long the success banner stays visible
	Notification time.Duration `yaml:"notification"`
	// Scale is device pixels per PDF point at the displayed zoom
	Scale    float64 `yaml:"scale"`
	LogLevel string  `yaml:"log_level"`
	Format   string  `yaml:"format"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		MinimumExtent: geometry.MinimumExtent,
		Notification:  notify.DefaultDuration,
		Scale:         1,
		LogLevel:      "info",
		Format:        string(export.FormatText),
	}
}

// DefaultPath returns ~/.pdfregion.yaml
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load reads path over the defaults. An empty path reads DefaultPath,
// and a missing default file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	} else {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return cfg, fmt.Errorf("invalid config path %q: %w", path, err)
		}
		path = expanded
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings are usable
func (c Config) Validate() error {
	if c.MinimumExtent < 0 {
		return fmt.Errorf("minimum_extent must not be negative, got %v", c.MinimumExtent)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.Notification < 0 {
		return fmt.Errorf("notification must not be negative, got %v", c.Notification)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}
