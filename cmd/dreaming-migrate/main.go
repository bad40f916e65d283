package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dreaming-migrate/internal/app"
	"dreaming-migrate/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "dreaming-migrate",
		Short: "Migrate external time entries between Dreaming accounts",
		Long: `dreaming-migrate copies language-learning time entries from one Dreaming
account/language to another via the external-time API.

The default mode is a dry run: it fetches and summarizes the source entries
and previews what would be migrated without writing anything. Pass --execute
to perform the migration.

Tokens can also be supplied via DREAMING_SOURCE_TOKEN and
DREAMING_TARGET_TOKEN environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Logger
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			logger := slog.New(handler)
			slog.SetDefault(logger)

			// Config
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
				return err
			}

			out := cmd.OutOrStdout()
			if !cfg.Execute {
				fmt.Fprintln(out, "Running in DRY RUN mode (no changes will be made)")
				fmt.Fprintln(out)
			}

			// Context with signal handling
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application := app.New(logger, cfg, out)
			if _, err := application.Run(ctx); err != nil {
				logger.Error("migration failed", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("source-token", "", "Bearer token for the source account")
	flags.String("target-token", "", "Bearer token for the target account")
	flags.String("source-language", "es", "Source language code: es (Spanish) or fr (French)")
	flags.String("target-language", "fr", "Target language code: es (Spanish) or fr (French)")
	flags.String("base-url", "https://app.dreaming.com", "Base URL of the Dreaming service")
	flags.Bool("execute", false, "Actually perform the migration (default is dry-run)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}
