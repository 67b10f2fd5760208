// Package main is the entry point for the rangemap CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ib-77/rangemap/pkg/remap"
	"github.com/ib-77/rangemap/pkg/track"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitNoSolution  = 2
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	code := exitCode(ctx, err)

	stop()
	os.Exit(code)
}

func exitCode(ctx context.Context, err error) int {
	switch {
	case ctx.Err() != nil, track.IsCancellation(err):
		return exitInterrupted
	case err == nil:
		return exitOK
	case errors.Is(err, remap.ErrNoSolution):
		return exitNoSolution
	default:
		return exitError
	}
}

type rootFlags struct {
	envFile   string
	logLevel  string
	logFormat string
}

func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "rangemap",
		Short: "Remap seeds and seed ranges through an almanac of stages",
		Long: `rangemap reads an almanac: a seeds line followed by named map blocks of
"destination source length" entries. Every map is validated once, then seeds
(or seed ranges) are pushed through the maps in the order they appear.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  RANGEMAP_LOG_LEVEL    Log level: TRACE, DEBUG, INFO, WARN, ERROR (default: INFO)
  RANGEMAP_LOG_FORMAT   Log format: pretty, json (default: pretty)
  RANGEMAP_WORKERS      Parallel lines, 1 evaluates sequentially (default: 1)
  RANGEMAP_MODE         seeds or ranges (default: seeds)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (overrides RANGEMAP_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: pretty or json (overrides RANGEMAP_LOG_FORMAT)")

	cmd.AddCommand(solveCmd(flags))
	cmd.AddCommand(checkCmd(flags))
	cmd.AddCommand(traceCmd(flags))
	cmd.AddCommand(versionCmd())

	return cmd
}
