package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitglue/planner/pkg/api"
	"github.com/fitglue/planner/pkg/bootstrap"
	"github.com/fitglue/planner/pkg/infrastructure/sentry"
)

func main() {
	ctx := context.Background()

	svc, err := bootstrap.NewService(ctx)
	if err != nil {
		slog.Error("Service init failed", "error", err)
		os.Exit(1)
	}

	logger := bootstrap.NewLogger("api")

	if err := sentry.Init(sentry.Config{
		DSN:         svc.Config.SentryDSN,
		Environment: svc.Config.Environment,
		Release:     svc.Config.Release,
		ServerName:  "api",
	}, logger); err != nil {
		logger.Warn("Sentry init failed, continuing without error tracking", "error", err)
	}
	defer sentry.Flush(2 * time.Second)
	defer sentry.RecoverAndCapture(logger)

	server := &http.Server{
		Addr:              ":" + svc.Config.Port,
		Handler:           api.NewServer(svc, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", "port", svc.Config.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}
