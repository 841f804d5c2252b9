package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/acme-reservations/cliparse"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg cliparse.Config

	root := &cobra.Command{
		Use:           "acme-reservations",
		Short:         "REST API for customers, restaurants and reservations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Parse configuration
			resolved, err := cliparse.Resolve(cmd.Flags(), cfg)
			if err != nil {
				return err
			}
			cfg = resolved
			setupLogging(cfg)
			return nil
		},
		// Serving is the default when no subcommand is given
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}

	cliparse.BindFlags(root.PersistentFlags(), &cfg)

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Create missing tables and serve the HTTP API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context(), cfg)
			},
		},
		newResetCmd(&cfg),
	)

	return root
}

func setupLogging(cfg cliparse.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
