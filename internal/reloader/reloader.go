package reloader

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/logging"
	"github.com/preston-bernstein/schedule-grid-service/internal/metrics"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers"
)

const defaultInterval = 5 * time.Minute

// ErrNoProvider is returned by Trigger when no content provider is configured.
var ErrNoProvider = errors.New("reloader has no content provider")

// Sink receives every successfully loaded content set.
type Sink interface {
	Replace(content domain.Content)
}

// Reloader loads content on an interval and swaps it into the sink.
type Reloader struct {
	provider providers.ContentProvider
	sink     Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	loadMu sync.Mutex

	ticker   *time.Ticker
	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the reload loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	Teams               int
	Schedules           int
}

// IsReady reports whether content has loaded at least once and loads are not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Reloader. A non-positive interval uses the default.
func New(provider providers.ContentProvider, sink Sink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Reloader {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Reloader{
		provider: provider,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// Start loads content once and then on every tick until the context is cancelled or Stop is called.
func (r *Reloader) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.ticker = time.NewTicker(r.interval)
	r.startMu.Unlock()

	go func() {
		defer close(r.exited)
		defer r.ticker.Stop()

		logging.Info(r.logger, "reloader started", logging.FieldDurationMS, r.interval.Milliseconds())
		_ = r.Trigger(ctx)

		for {
			select {
			case <-ctx.Done():
				logging.Info(r.logger, "reloader stopped")
				return
			case <-r.done:
				logging.Info(r.logger, "reloader stopped")
				return
			case <-r.ticker.C:
				_ = r.Trigger(ctx)
			}
		}
	}()
}

// Stop halts the loop and waits for it to exit or for ctx to expire.
func (r *Reloader) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() {
		close(r.done)
	})

	r.startMu.Lock()
	started := r.started
	r.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-r.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Trigger performs one load synchronously. Concurrent calls are serialized.
func (r *Reloader) Trigger(ctx context.Context) error {
	if r.provider == nil {
		return ErrNoProvider
	}

	r.loadMu.Lock()
	defer r.loadMu.Unlock()

	start := time.Now()
	r.recordAttempt(start)
	content, err := r.provider.FetchContent(ctx)
	r.metrics.RecordReloadCycle(time.Since(start), err)
	if err != nil {
		logging.Error(r.logger, "content reload failed", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		r.recordFailure(err, start)
		return err
	}

	if r.sink != nil {
		r.sink.Replace(content)
	}
	r.recordSuccess(start, content)
	logging.Info(r.logger, "content reloaded",
		logging.FieldTeams, len(content.Teams),
		logging.FieldSchedules, len(content.Schedules),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (r *Reloader) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Reloader) recordSuccess(at time.Time, content domain.Content) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
	r.status.Teams = len(content.Teams)
	r.status.Schedules = len(content.Schedules)
}

func (r *Reloader) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the reloader's recent health.
func (r *Reloader) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

// Provider exposes the underlying provider so callers can release it.
func (r *Reloader) Provider() providers.ContentProvider {
	return r.provider
}
