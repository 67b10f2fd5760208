package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the RANGEMAP_ prefix.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: RANGEMAP_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: RANGEMAP_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Workers is the number of parallel lines used to evaluate the pipeline.
	// Env: RANGEMAP_WORKERS (default: 1)
	Workers int `envconfig:"WORKERS" default:"1"`

	// Mode is seeds or ranges.
	// Env: RANGEMAP_MODE (default: seeds)
	Mode string `envconfig:"MODE" default:"seeds"`
}

// LoadFromEnv loads configuration from RANGEMAP_* environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig validates the raw values and converts them.
func (e EnvConfig) ToAppConfig() (AppConfig, error) {
	mode, err := ParseMode(e.Mode)
	if err != nil {
		return AppConfig{}, err
	}

	format, err := ParseLogFormat(e.LogFormat)
	if err != nil {
		return AppConfig{}, err
	}

	cfg := NewAppConfig().WithLogLevel(e.LogLevel).WithLogFormat(format)
	cfg.mode = mode
	return cfg.WithWorkers(e.Workers), nil
}
