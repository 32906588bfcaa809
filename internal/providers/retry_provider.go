package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a ContentProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       ContentProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	source      string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
// Invalid content is returned immediately.
func NewRetryingProvider(inner ContentProvider, logger *slog.Logger, recorder *metrics.Recorder, source string, maxAttempts int, backoff time.Duration) ContentProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		source:      source,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchContent(ctx context.Context) (domain.Content, error) {
	if r.inner == nil {
		return domain.Content{}, ErrProviderUnavailable
	}

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		content, err := r.inner.FetchContent(ctx)
		r.metrics.RecordContentLoad(r.source, time.Since(start), err)
		if err == nil {
			r.metrics.RecordContentSize(r.source, len(content.Teams), len(content.Schedules))
			return content, nil
		}
		lastErr = err

		if _, permanent := AsInvalidContentError(err); permanent {
			logWithSource(ctx, r.logger, slog.LevelWarn, r.source, "content rejected", "err", err)
			return domain.Content{}, err
		}
		if attempt == r.maxAttempts {
			break
		}

		logWithSource(ctx, r.logger, slog.LevelWarn, r.source, "content fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return domain.Content{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithSource(ctx, r.logger, slog.LevelWarn, r.source, "content fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return domain.Content{}, lastErr
}
