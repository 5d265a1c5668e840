package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"launch_dashboard/internal/config"
	"launch_dashboard/pkg/contextx"
	"launch_dashboard/pkg/logx"
)

var rootFlags struct {
	debug   bool
	envFile string
}

var rootCmd = &cobra.Command{
	Use:          "launchdash",
	Short:        "Interactive dashboard over historical launch records",
	SilenceUsage: true,
	RunE:         runServe,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.BoolVar(&rootFlags.debug, "debug", false, "Debug log level with request and response dumps")
	f.StringVar(&rootFlags.envFile, "env-file", ".env", "Optional dotenv file read before the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) //nolint:gocritic
	}
}

// setup loads the configuration and puts the process logger into the command
// context.
func setup(cmd *cobra.Command) (context.Context, config.Config, error) {
	cfg, err := config.Load(rootFlags.envFile)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("config.Load: %w", err)
	}

	cfg.App.Debug = cfg.App.Debug || rootFlags.debug

	log := logx.New(os.Stderr, cfg.App.Debug)
	slog.SetDefault(log)

	return contextx.WithLogger(cmd.Context(), log), cfg, nil
}
