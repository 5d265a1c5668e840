package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launch_dashboard/internal/application"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the CSV dataset into the launch_records table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cfg, err := setup(cmd)
		if err != nil {
			return err
		}

		rows, err := application.Import(ctx, cfg)
		if err != nil {
			return fmt.Errorf("application.Import: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d launch records\n", rows)

		return nil
	},
}
