// Package config provides rangemap configuration.
package config

import (
	"fmt"
	"strings"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "RANGEMAP"

// Default configuration values.
const (
	DefaultLogLevel = "INFO"
	DefaultWorkers  = 1
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Mode selects how the seeds line is read.
type Mode string

// Mode values.
const (
	// ModeSeeds folds every seed as a scalar.
	ModeSeeds Mode = "seeds"
	// ModeRanges reads the seeds as (start, length) pairs.
	ModeRanges Mode = "ranges"
)

// ParseMode accepts the Mode values case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSeeds:
		return ModeSeeds, nil
	case ModeRanges:
		return ModeRanges, nil
	default:
		return "", fmt.Errorf("unknown mode %q: want %s or %s", s, ModeSeeds, ModeRanges)
	}
}

// ParseLogFormat accepts the LogFormat values case-insensitively. An empty
// string selects pretty.
func ParseLogFormat(s string) (LogFormat, error) {
	switch LogFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", LogFormatPretty:
		return LogFormatPretty, nil
	case LogFormatJSON:
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q: want %s or %s", s, LogFormatPretty, LogFormatJSON)
	}
}

// AppConfig is the resolved configuration.
type AppConfig struct {
	logLevel  string
	logFormat LogFormat
	workers   int
	mode      Mode
}

// NewAppConfig returns an AppConfig holding the defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:  DefaultLogLevel,
		logFormat: LogFormatPretty,
		workers:   DefaultWorkers,
		mode:      ModeSeeds,
	}
}

func (c AppConfig) LogLevel() string     { return c.logLevel }
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Workers is the number of parallel lines. One means sequential evaluation.
func (c AppConfig) Workers() int { return c.workers }

func (c AppConfig) Mode() Mode { return c.mode }

// WithWorkers returns a copy using n workers. Values below one are ignored.
func (c AppConfig) WithWorkers(n int) AppConfig {
	if n >= 1 {
		c.workers = n
	}
	return c
}

// WithLogLevel returns a copy logging at level. An empty level is ignored.
func (c AppConfig) WithLogLevel(level string) AppConfig {
	if level != "" {
		c.logLevel = strings.ToUpper(level)
	}
	return c
}

// WithLogFormat returns a copy writing logs in format.
func (c AppConfig) WithLogFormat(format LogFormat) AppConfig {
	c.logFormat = format
	return c
}

// WithMode returns a copy using mode.
func (c AppConfig) WithMode(mode Mode) AppConfig {
	c.mode = mode
	return c
}
