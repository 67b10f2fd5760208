package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func traceCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <almanac> <value>",
		Short: "Show the value after every map",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[1], err)
			}

			ctx, _, err := setup(cmd, root)
			if err != nil {
				return err
			}

			a, err := loadAlmanac(ctx, args[0])
			if err != nil {
				return err
			}

			p := a.Pipeline()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "input\t%d\n", value)
			for i, v := range p.Trace(value) {
				fmt.Fprintf(tw, "%s\t%d\n", a.Stages[i].Name(), v)
			}
			return tw.Flush()
		},
	}
}
