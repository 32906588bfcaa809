package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/preston-bernstein/schedule-grid-service/internal/config"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers/fixture"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers/sqlite"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers/yamlfile"
)

var openSQLite = sqlite.Open

// selectProvider returns the configured content source and, when it holds a
// resource, the closer to release on shutdown.
func selectProvider(cfg config.Config, logger *slog.Logger) (providers.ContentProvider, io.Closer) {
	switch cfg.Content.Source {
	case fixture.Source, "":
		return fixture.New(), nil
	case yamlfile.Source:
		return yamlfile.New(cfg.Content.Path), nil
	case sqlite.Source:
		db, err := openSQLite(cfg.Content.Path)
		if err != nil {
			if logger != nil {
				logger.Error("sqlite content source unavailable", "path", cfg.Content.Path, "error", err)
			}
			return brokenProvider{err: err}, nil
		}
		return db, db
	default:
		if logger != nil {
			logger.Warn("unknown content source, falling back to fixture", slog.String("source", cfg.Content.Source))
		}
		return fixture.New(), nil
	}
}

// brokenProvider reports a source that could not be opened; every reload fails
// and the service stays unready.
type brokenProvider struct {
	err error
}

func (b brokenProvider) FetchContent(ctx context.Context) (domain.Content, error) {
	_ = ctx
	return domain.Content{}, fmt.Errorf("%w: %v", providers.ErrProviderUnavailable, b.err)
}

// ContentSource opens the configured content source without the retry
// wrapper. Callers own the returned closer when it is non-nil.
func ContentSource(cfg config.Config, logger *slog.Logger) (providers.ContentProvider, io.Closer) {
	return selectProvider(cfg, logger)
}
