package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/okvist/espalier"
	"github.com/okvist/espalier/internal/demo"
	"github.com/okvist/espalier/internal/httpapi"
	"github.com/okvist/espalier/pkg/observability"
)

type serveConfig struct {
	Addr            string        `env:"ESPALIER_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"ESPALIER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

var serveCmd = &cobra.Command{
	Use:   "serve <machine>",
	Short: "Serve a demo machine over HTTP",
	Long: `Builds the named demo machine and exposes it as a JSON API: GET /state,
POST /dispatch, GET /graph, GET /healthz and Prometheus metrics on /metrics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := env.ParseAs[serveConfig]()
		if err != nil {
			return fmt.Errorf("parse environment: %w", err)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}

		logger := cliLogger(cmd)
		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		machine, registry, err := demo.New(args[0],
			espalier.WithLogger(logger),
			espalier.WithHooks(metrics.Hooks()),
		)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: httpapi.NewHandler(machine, registry, logger),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr, "machine", args[0])
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown incomplete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("close server: %w", err)
				}
			}
			logger.Info("server stopped")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Listen address (overrides ESPALIER_ADDR)")
}
