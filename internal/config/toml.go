// Package config reads the TOML config file and environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Play  PlayConfig  `toml:"play"`
	Audio AudioConfig `toml:"audio"`
}

// PlayConfig maps game settings. Nil means unset.
type PlayConfig struct {
	Game     *string `toml:"game"`
	Level    *int    `toml:"level"`
	Distance *int    `toml:"distance"`
	Book     *string `toml:"book"`
	TextFile *string `toml:"text-file"`
	Width    *int    `toml:"width"`
	Speed    *int    `toml:"speed"`
	Interval *int    `toml:"interval"`
	Mode     *string `toml:"mode"`
	Extended *bool   `toml:"extended"`
	Attempts *int    `toml:"attempts"`
	Block    *int    `toml:"block"`
	Shoe     *int    `toml:"shoe"`
}

// AudioConfig maps sound settings.
type AudioConfig struct {
	Enabled *bool    `toml:"enabled"`
	Volume  *float64 `toml:"volume"`
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
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", keys[0].String())
	}
	return cfg, nil
}
