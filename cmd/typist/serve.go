package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/typist/internal/cli"
	httpAdapter "github.com/aretw0/typist/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP translation server",
	Long: `Starts typist in server mode, exposing POST /v1/translate, GET /healthz
and, when metrics are enabled, GET /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}

		reg := prometheus.NewRegistry()
		engine, closer, err := cli.BuildEngine(cfg, logger, reg)
		if err != nil {
			return err
		}
		defer closer.Close()

		opts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
		if cfg.Metrics.Enabled {
			opts = append(opts, httpAdapter.WithGatherer(reg))
		}
		handler := httpAdapter.NewHandler(engine, opts...)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.Serve(ctx, cfg.Server.Addr, handler, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides server.addr)")
}
