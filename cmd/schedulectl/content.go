package main

import (
	"context"
	"fmt"
	"log/slog"

	appschedules "github.com/preston-bernstein/schedule-grid-service/internal/app/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/config"
	"github.com/preston-bernstein/schedule-grid-service/internal/logging"
	"github.com/preston-bernstein/schedule-grid-service/internal/server"
)

// loadSchedules reads content once from the configured source.
func loadSchedules(ctx context.Context, cfg config.Config, logger *slog.Logger) (*appschedules.Service, error) {
	provider, closer := server.ContentSource(cfg, logger)
	if closer != nil {
		defer func() {
			if err := closer.Close(); err != nil {
				logging.Warn(logger, "content source close failed", "error", err)
			}
		}()
	}

	content, err := provider.FetchContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s content: %w", cfg.Content.Source, err)
	}
	memoryStore, _, scheduleSvc := server.BuildServices(cfg)
	memoryStore.Replace(content)
	logging.Info(logger, "content loaded",
		logging.FieldSource, cfg.Content.Source,
		logging.FieldTeams, len(content.Teams),
		logging.FieldSchedules, len(content.Schedules),
	)
	return scheduleSvc, nil
}
