package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/typist/internal/cli"
	"github.com/aretw0/typist/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "typist",
	Short: "Typist turns text-expansion events into keyboard injection commands",
	Long: `Typist is the action stage of a text-expansion engine.
It rewrites rendered matches and compensation requests into text and key
sequence injection commands for the keyboard backend.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a typist.yaml configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")
}

// loadConfig resolves the configuration and logger shared by every command.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	return cfg, cli.CreateLogger(cfg), nil
}
