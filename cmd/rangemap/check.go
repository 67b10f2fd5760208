package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/rangemap/pkg/almanac"
)

func checkCmd(root *rootFlags) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "check <almanac>",
		Short: "Validate an almanac and list its maps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := setup(cmd, root)
			if err != nil {
				return err
			}

			a, err := loadAlmanac(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asYAML {
				return almanac.WriteYAML(out, a)
			}

			fmt.Fprintf(out, "seeds: %d\n", len(a.Seeds))
			for _, stage := range a.Stages {
				fmt.Fprintf(out, "%s: %d entries\n", stage.Name(), len(stage.Entries()))
			}
			_, err = fmt.Fprintln(out, "ok")
			return err
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the validated almanac as YAML")

	return cmd
}
