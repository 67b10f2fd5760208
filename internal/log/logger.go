// Package log builds the zerolog logger used by the rangemap CLI.
package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ib-77/rangemap/internal/config"
)

// New returns a logger writing to w in format at level. Unknown levels fall
// back to info.
func New(w io.Writer, format config.LogFormat, level string) zerolog.Logger {
	var out io.Writer = w
	if format != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// FromConfig is New with the level and format taken from cfg.
func FromConfig(w io.Writer, cfg config.AppConfig) zerolog.Logger {
	return New(w, cfg.LogFormat(), cfg.LogLevel())
}

// ParseLevel maps DEBUG, INFO, WARN/WARNING, ERROR and TRACE to zerolog levels.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
