// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the platform-derived knobs of a backend.
type Config struct {
	DoubleClick DoubleClickConfig `yaml:"double_click"`
	Debug       DebugConfig       `yaml:"debug"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// DoubleClickConfig holds the click-sequence thresholds. The
// platform usually derives them from system settings.
type DoubleClickConfig struct {
	// Time is the double-click window in milliseconds. A triple
	// click is allowed twice this window from the press before
	// last.
	Time uint32 `yaml:"time_ms"`
	// Distance is the maximum per-axis distance between presses of
	// one click sequence, in stage units.
	Distance float32 `yaml:"distance"`
}

// DebugConfig toggles diagnostics.
type DebugConfig struct {
	// TrackEvents maintains the live-event registry and logs
	// ownership violations.
	TrackEvents bool `yaml:"track_events"`
}

// LoggingConfig defines log verbosity and formatting for hosts that
// build their logger from the backend config.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the baseline configuration used when no
// overrides are supplied.
func DefaultConfig() Config {
	return Config{
		DoubleClick: DoubleClickConfig{
			Time:     250,
			Distance: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads a YAML config file, overlaying it on the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DoubleClick.Time == 0 {
		return fmt.Errorf("double_click.time_ms must be positive")
	}
	if c.DoubleClick.Distance < 0 {
		return fmt.Errorf("double_click.distance must not be negative")
	}
	return nil
}
