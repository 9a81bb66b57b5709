package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds the environment overrides.
type EnvConfig struct {
	LogLevel string `env:"MINDFLUX_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"MINDFLUX_LOG_FILE"`
	Sound    string `env:"MINDFLUX_SOUND"`
}

// LoadEnv parses the environment overrides.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("failed to parse env: %w", err)
	}
	return cfg, nil
}

// LogPath returns the log file override or the default path.
func (e EnvConfig) LogPath() string {
	if strings.TrimSpace(e.LogFile) != "" {
		return e.LogFile
	}
	return DefaultLogPath()
}

// SoundOverride returns the MINDFLUX_SOUND value, or nil when it is unset.
func (e EnvConfig) SoundOverride() (*bool, error) {
	v := strings.TrimSpace(e.Sound)
	if v == "" {
		return nil, nil
	}
	on, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("MINDFLUX_SOUND must be a boolean: %w", err)
	}
	return &on, nil
}
