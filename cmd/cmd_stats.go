package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launch_dashboard/internal/application"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-site launch statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cfg, err := setup(cmd)
		if err != nil {
			return err
		}

		if err = application.Stats(ctx, cfg, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("application.Stats: %w", err)
		}

		return nil
	},
}
