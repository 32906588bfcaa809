package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/schedule-grid-service/internal/config"
	"github.com/preston-bernstein/schedule-grid-service/internal/logging"
	"github.com/preston-bernstein/schedule-grid-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "schedule-grid-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := newLogger()
	logger.Info("config loaded",
		logging.FieldSource, cfg.Content.Source,
		"content_path", cfg.Content.Path,
		"reload_interval", cfg.ReloadInterval.String(),
		"default_policy", cfg.Schedules.DefaultPolicy,
		"admin_enabled", cfg.AdminToken != "",
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

func newLogger() *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})
}
