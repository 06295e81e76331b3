// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Page PageConfig `toml:"page"`
}

// PageConfig maps page behavior settings.
type PageConfig struct {
	ScrolledAfter     *int     `toml:"scrolled-after"`
	TopButtonAfter    *int     `toml:"top-button-after"`
	HeaderOffset      *int     `toml:"header-offset"`
	CompactBreakpoint *int     `toml:"compact-breakpoint"`
	LazyMargin        *int     `toml:"lazy-margin"`
	StatsThreshold    *float64 `toml:"stats-threshold"`
	CounterDurationMs *int     `toml:"counter-duration-ms"`
	ScrollDurationMs  *int     `toml:"scroll-duration-ms"`
	Analytics         *bool    `toml:"analytics"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
