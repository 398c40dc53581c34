package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/typist/internal/cli"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a stream of NDJSON events from stdin to stdout",
	Long: `Reads one JSON event per line from standard input and writes the
resulting events, one per line, to standard output. Malformed lines are
reported on standard error and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		engine, closer, err := cli.BuildEngine(cfg, logger, nil)
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		stats, err := cli.Translate(ctx, engine, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		logger.Debug("Translate finished", "lines", stats.Lines, "events", stats.Events, "malformed", stats.Malformed)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
