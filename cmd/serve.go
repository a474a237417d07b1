package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taskhub/internal/api"
	"taskhub/internal/api/handler/v1handler"
	"taskhub/internal/auth"
	"taskhub/internal/config"
	"taskhub/internal/tasks"
	"taskhub/pkg/logger"
	"taskhub/pkg/storage"
)

func setupServer(ctx context.Context, cfg *config.Config, strg storage.Storage) func(ctx context.Context) {
	authService, err := auth.New(strg, auth.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create auth service", zap.Error(err))
	}

	server, err := api.NewServer(ctx, api.Deps{
		Deps: v1handler.Deps{
			Auth:  authService,
			Tasks: tasks.New(strg),
		},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stopWebserver := setupServer(ctx, cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
