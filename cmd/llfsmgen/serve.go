package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	httpAdapter "github.com/llfsmgen/llfsmgen/internal/adapters/http"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve [--addr] [--allow-origin]",
	Short: "Start the HTTP server",
	Long:  `Exposes the generator operations as a JSON API over HTTP, with Prometheus metrics on /metrics.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := settings.config.Serve.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}
		origins := settings.config.Serve.AllowedOrigins
		if cmd.Flags().Changed("allow-origin") {
			origins, _ = cmd.Flags().GetStringSlice("allow-origin")
		}
		logger := settings.logger

		srv := &http.Server{
			Addr:              addr,
			Handler:           httpAdapter.NewHandler(newGenerator(cmd, true), logger, httpAdapter.WithAllowedOrigins(origins...)),
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("Starting llfsmgen server", "addr", srv.Addr, "allowed_origins", origins)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			return err
		case <-cmd.Context().Done():
			logger.Info("Shutting down server")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			}
			logger.Info("Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (default serve.addr from the config, 127.0.0.1:8080)")
	serveCmd.Flags().StringSlice("allow-origin", nil, "Browser origin allowed to call the API; repeatable, \"*\" allows any (default serve.allowed_origins from the config)")
}
