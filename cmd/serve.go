package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	"travel/internal/config"
	"travel/internal/worker"
	"travel/pkg/controller"
	"travel/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

func setupOpsServer(ctx context.Context, cfg *config.Config, db *pgxpool.Pool) func(ctx context.Context) {
	server := &http.Server{
		Addr: cfg.Metrics.Addr,
		Handler: controller.NewHandler(controller.Options{
			MetricsPath: cfg.Metrics.Path,
			DB:          db,
			Pprof:       cfg.Metrics.Pprof,
		}),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info(ctx, "starting metrics server...", zap.String("addr", cfg.Metrics.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start metrics server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping metrics server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop metrics server", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the thumbnail worker and the metrics server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			riverClient, err := worker.Start(ctx, strg.Pool, getMedia(cfg, strg), worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopOpsServer := setupOpsServer(ctx, cfg, strg.Pool)

			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopOpsServer(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers gracefully", zap.Error(err))
			}
		},
	}

	return cmd
}
