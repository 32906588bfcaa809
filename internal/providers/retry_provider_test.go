package providers

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"
	"github.com/preston-bernstein/schedule-grid-service/internal/metrics"
)

type flakeyProvider struct {
	failures int
	calls    int
	err      error
}

func (f *flakeyProvider) FetchContent(ctx context.Context) (domain.Content, error) {
	_ = ctx
	f.calls++
	if f.calls <= f.failures {
		if f.err != nil {
			return domain.Content{}, f.err
		}
		return domain.Content{}, errors.New("boom")
	}
	return domain.Content{
		Teams:     []teams.Team{{ID: 1, Name: "Ok"}},
		Schedules: []schedules.Schedule{{Slug: "ok"}},
	}, nil
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rp := NewRetryingProvider(fp, slog.Default(), metrics.NewRecorder(), "flakey", 3, 1*time.Millisecond)

	content, err := rp.FetchContent(context.Background())
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(content.Teams) != 1 || content.Teams[0].Name != "Ok" {
		t.Fatalf("unexpected content %+v", content)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, 1*time.Millisecond)

	_, err := rp.FetchContent(context.Background())
	if err == nil {
		t.Fatal("expected error after retries")
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderDoesNotRetryInvalidContent(t *testing.T) {
	fp := &flakeyProvider{failures: 5, err: &InvalidContentError{Source: "yaml", Reason: "duplicate slug"}}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "yaml", 3, time.Hour)

	_, err := rp.FetchContent(context.Background())
	if _, ok := AsInvalidContentError(err); !ok {
		t.Fatalf("expected invalid content error, got %v", err)
	}
	if fp.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", fp.calls)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.FetchContent(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func TestRetryingProviderUsesCustomBackoff(t *testing.T) {
	fp := &flakeyProvider{failures: 1}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Hour).(*retryingProvider)

	calls := 0
	rp.backoffFn = func(attempt int) time.Duration {
		_ = attempt
		calls++
		return 0
	}

	_, _ = rp.FetchContent(context.Background())

	if calls == 0 {
		t.Fatalf("expected custom backoff to be invoked")
	}
}

func TestRetryingProviderRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	rp := NewRetryingProvider(&flakeyProvider{failures: 1}, nil, rec, "yaml", 2, time.Millisecond).(*retryingProvider)
	rp.backoffFn = func(int) time.Duration { return 0 }

	if _, err := rp.FetchContent(context.Background()); err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}

	snap := rec.Snapshot("yaml")
	if snap.Loads != 2 {
		t.Fatalf("expected 2 loads, got %d", snap.Loads)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", snap.Errors)
	}
	if snap.LastTeams != 1 || snap.LastSchedules != 1 {
		t.Fatalf("expected content size recorded, got %+v", snap)
	}
}

func TestRetryingProviderNilInner(t *testing.T) {
	rp := NewRetryingProvider(nil, nil, nil, "", 0, 0).(*retryingProvider)
	if rp.maxAttempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts, got %d", rp.maxAttempts)
	}
	if rp.backoffFn(1) != defaultBackoff {
		t.Fatalf("expected default backoff")
	}
	if _, err := rp.FetchContent(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
