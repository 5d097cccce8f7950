package main

import (
	"context"
	"errors"
	"fmt"
	"fortune/internal/api"
	"fortune/internal/api/handler/v1handler"
	"fortune/internal/config"
	"fortune/pkg/logger"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runServer serves on ln until ctx is done, then shuts the server down within
// the configured grace period.
func runServer(ctx context.Context, cfg *config.Config, server *http.Server, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(ctx, "starting webserver...", zap.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not serve: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		// wait for interrupt or a failed Serve
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
		defer cancel()

		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop webserver: %w", err)
		}

		return nil
	})

	return g.Wait() //nolint: wrapcheck
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			addr, err := cfg.ListenAddr()
			if err != nil {
				logger.Fatal(ctx, "invalid listen address", zap.Error(err))
			}

			fortuner := getFortuner(ctx, cfg)

			server, err := api.NewServer(ctx,
				api.Deps{Deps: v1handler.Deps{Fortuner: fortuner}},
				api.NewOptions(cfg, addr))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				logger.Fatal(ctx, "could not bind listener", zap.String("addr", addr), zap.Error(err))
			}

			return runServer(ctx, cfg, server, ln)
		},
	}

	return cmd
}
