package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()

	for _, name := range []string{"LOG_LEVEL", "LOG_FORMAT", "WORKERS", "MODE"} {
		key := EnvPrefix + "_" + name
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, "seeds", cfg.Mode)

	app, err := cfg.ToAppConfig()
	require.NoError(t, err)
	assert.Equal(t, NewAppConfig(), app)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("RANGEMAP_LOG_LEVEL", "debug")
	t.Setenv("RANGEMAP_LOG_FORMAT", "JSON")
	t.Setenv("RANGEMAP_WORKERS", "4")
	t.Setenv("RANGEMAP_MODE", "Ranges")

	env, err := LoadFromEnv()
	require.NoError(t, err)
	cfg, err := env.ToAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, 4, cfg.Workers())
	assert.Equal(t, ModeRanges, cfg.Mode())
}

func TestLoadFromEnv_InvalidWorkers(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("RANGEMAP_WORKERS", "many")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestToAppConfig_InvalidMode(t *testing.T) {
	_, err := EnvConfig{Mode: "both"}.ToAppConfig()
	assert.ErrorContains(t, err, `unknown mode "both"`)
}

func TestToAppConfig_InvalidLogFormat(t *testing.T) {
	_, err := EnvConfig{Mode: "seeds", LogFormat: "xml"}.ToAppConfig()
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		in   string
		want LogFormat
	}{
		{"", LogFormatPretty},
		{"pretty", LogFormatPretty},
		{"JSON", LogFormatJSON},
		{" json ", LogFormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseLogFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLogFormat("text")
	assert.Error(t, err)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnvVars(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RANGEMAP_WORKERS=3\nRANGEMAP_MODE=ranges\n"), 0o600))
	t.Setenv("RANGEMAP_MODE", "seeds")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Workers())
	assert.Equal(t, ModeSeeds, cfg.Mode(), "set variables win over the .env file")
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestWithWorkers(t *testing.T) {
	cfg := NewAppConfig()
	assert.Equal(t, 5, cfg.WithWorkers(5).Workers())
	assert.Equal(t, DefaultWorkers, cfg.WithWorkers(0).Workers())
	assert.Equal(t, ModeRanges, cfg.WithMode(ModeRanges).Mode())
}

func TestWithLogging(t *testing.T) {
	cfg := NewAppConfig().WithLogLevel("warn").WithLogFormat(LogFormatJSON)
	assert.Equal(t, "WARN", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, "WARN", cfg.WithLogLevel("").LogLevel())
}
