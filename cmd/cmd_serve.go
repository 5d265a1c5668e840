package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launch_dashboard/internal/application"
	"launch_dashboard/pkg/contextx"
	"launch_dashboard/pkg/logx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the dataset and serve the dashboard",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	log := contextx.LoggerFromContextOrDefault(ctx)

	if err = application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		return fmt.Errorf("application.Run: %w", err)
	}

	log.Info("application stopped")

	return nil
}
