package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ib-77/rangemap/internal/config"
	"github.com/ib-77/rangemap/pkg/almanac"
	"github.com/ib-77/rangemap/pkg/remap/fanout"
	"github.com/ib-77/rangemap/pkg/track"
)

func solveCmd(root *rootFlags) *cobra.Command {
	var (
		mode    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "solve <almanac>",
		Short: "Print the lowest location reachable from the seeds",
		Long: `Print the lowest location reachable from the seeds.

In seeds mode every seed is folded through the maps and the smallest result is
printed. In ranges mode the seeds line is read as (start, length) pairs, the
ranges are split stage by stage, and the smallest surviving start is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := setup(cmd, root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				m, err := config.ParseMode(mode)
				if err != nil {
					return err
				}
				cfg = cfg.WithMode(m)
			}
			if cmd.Flags().Changed("workers") {
				cfg = cfg.WithWorkers(workers)
			}
			return runSolve(ctx, cmd, args[0], cfg)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(config.ModeSeeds), "seeds or ranges")
	cmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "Parallel lines; 1 evaluates sequentially")

	return cmd
}

func runSolve(ctx context.Context, cmd *cobra.Command, path string, cfg config.AppConfig) error {
	loaded := track.ThenTry(track.FromValue(ctx, path), loadAlmanac)
	solved := track.ThenTry(loaded, func(ctx context.Context, a *almanac.Almanac) (int64, error) {
		return lowest(ctx, a, cfg)
	}).Ensure(func(ctx context.Context, v int64) {
		zerolog.Ctx(ctx).Info().Str("mode", string(cfg.Mode())).Int("workers", cfg.Workers()).Int64("lowest", v).Msg("solved")
	})

	return track.Finally(solved,
		func(_ context.Context, v int64) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
		func(_ context.Context, err error) error { return err },
		func(_ context.Context, err error) error { return err },
	)
}

// lowest picks the evaluation mode. More than one worker switches to fanout.
func lowest(ctx context.Context, a *almanac.Almanac, cfg config.AppConfig) (int64, error) {
	p := a.Pipeline()
	parallel := cfg.Workers() > 1
	ctx = track.WithLines(ctx, cfg.Workers())

	switch cfg.Mode() {
	case config.ModeRanges:
		ranges, err := a.SeedRanges()
		if err != nil {
			return 0, err
		}
		if parallel {
			return fanout.LowestStart(ctx, p, ranges)
		}
		return p.LowestStart(ranges)
	default:
		if parallel {
			return fanout.LowestLocation(ctx, p, a.Seeds)
		}
		return p.LowestLocation(a.Seeds)
	}
}
