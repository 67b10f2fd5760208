package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rangemap/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogFormatJSON, "info")

	logger.Debug().Msg("hidden")
	logger.Info().Str("stage", "seed-to-soil").Msg("stage applied")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "seed-to-soil", entry["stage"])
	assert.Equal(t, "stage applied", entry["message"])
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogFormatPretty, "WARN")

	logger.Info().Msg("hidden")
	logger.Warn().Msg("chain break")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "chain break")
	assert.Contains(t, buf.String(), "WRN")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"ERROR":   zerolog.ErrorLevel,
		"loud":    zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestFromConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := FromConfig(&buf, config.NewAppConfig())

	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
