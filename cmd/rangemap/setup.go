package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ib-77/rangemap/internal/config"
	"github.com/ib-77/rangemap/internal/log"
	"github.com/ib-77/rangemap/pkg/almanac"
)

// setup resolves configuration and attaches a logger to the command context.
func setup(cmd *cobra.Command, flags *rootFlags) (context.Context, config.AppConfig, error) {
	cfg, err := config.LoadConfig(flags.envFile)
	if err != nil {
		return nil, config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}

	if flags.logFormat != "" {
		format, err := config.ParseLogFormat(flags.logFormat)
		if err != nil {
			return nil, config.AppConfig{}, fmt.Errorf("--log-format: %w", err)
		}
		cfg = cfg.WithLogFormat(format)
	}
	cfg = cfg.WithLogLevel(flags.logLevel)

	logger := log.FromConfig(cmd.ErrOrStderr(), cfg)
	return logger.WithContext(cmd.Context()), cfg, nil
}

// loadAlmanac parses path and warns about stages whose names do not link.
func loadAlmanac(ctx context.Context, path string) (*almanac.Almanac, error) {
	logger := zerolog.Ctx(ctx)

	a, err := almanac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	for _, b := range almanac.ChainBreaks(a.Stages) {
		logger.Warn().Str("from", b.From).Str("to", b.To).Msg("stage names do not link; keeping declared order")
	}
	logger.Debug().Str("path", path).Int("seeds", len(a.Seeds)).Int("stages", len(a.Stages)).Msg("almanac loaded")
	return a, nil
}
