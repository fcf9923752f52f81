package config

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
	"gopkg.in/yaml.v3"
)

// AltScreenMode controls when the session switches to the alternate screen.
type AltScreenMode string

const (
	AltScreenAuto   AltScreenMode = "auto"   // Only when the cursor position cannot be detected
	AltScreenAlways AltScreenMode = "always" // Skip detection and always switch
	AltScreenNever  AltScreenMode = "never"  // Stay on the main screen
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "hanoi.yaml"

// Config holds the settings of a hanoi session.
type Config struct {
	Disks         int           `yaml:"disks"`
	CursorTimeout time.Duration `yaml:"cursor_timeout"`
	AltScreen     AltScreenMode `yaml:"alt_screen"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Disks:         8,
		CursorTimeout: 250 * time.Millisecond,
		AltScreen:     AltScreenAuto,
	}
}

// Load reads a YAML config file on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field is in range.
func (c Config) Validate() error {
	if c.Disks < 0 || c.Disks > domain.MaxDisks {
		return fmt.Errorf("disks must be between 0 and %d, got %d", domain.MaxDisks, c.Disks)
	}
	if c.CursorTimeout <= 0 {
		return fmt.Errorf("cursor_timeout must be positive, got %s", c.CursorTimeout)
	}
	switch c.AltScreen {
	case AltScreenAuto, AltScreenAlways, AltScreenNever:
	default:
		return fmt.Errorf("alt_screen must be one of auto, always, never, got %q", c.AltScreen)
	}
	return nil
}
