package server

import (
	"io"
	"log/slog"

	"github.com/preston-bernstein/schedule-grid-service/internal/config"
	"github.com/preston-bernstein/schedule-grid-service/internal/metrics"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers"
)

// providerFactory assembles the content source with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (providers.ContentProvider, io.Closer) {
	base, closer := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base), closer
}

func (f providerFactory) wrap(cfg config.Config, base providers.ContentProvider) providers.ContentProvider {
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Content.Source, base), cfg.Content.RetryAttempts, 0)
}
