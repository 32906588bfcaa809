package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/schedule-grid-service/internal/config"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers/sqlite"
	"github.com/preston-bernstein/schedule-grid-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:           "0",
		ReloadInterval: time.Hour,
		Content:        config.ContentConfig{Source: "fixture", RetryAttempts: 1},
		Schedules:      config.ScheduleConfig{DefaultPolicy: "published", Timezone: "UTC", BaseURL: "/schedules/"},
		Metrics:        config.MetricsConfig{Enabled: false},
	}
}

func TestServerServesHealthAndSchedules(t *testing.T) {
	content := testutil.SampleContent("spring")
	srv := newServerWithProvider(testConfig(), nil, testutil.GoodProvider{Content: content})

	router := srv.Handler()
	rr := testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	if err := srv.reloader.Trigger(context.Background()); err != nil {
		t.Fatalf("expected reload success, got %v", err)
	}

	rr = testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/schedules", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, `"spring"`)

	rr = testutil.Serve(router, http.MethodGet, "/schedules/spring", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "Schedule spring")
	testutil.AssertBodyContains(t, rr, "Harbor Hawks")

	rr = testutil.Serve(router, http.MethodGet, "/embed?schedule=spring", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "data-schedule")

	rr = testutil.Serve(router, http.MethodGet, "/schedules/missing", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestServerLeavesAdminUnmountedWithoutToken(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, testutil.GoodProvider{Content: testutil.SampleContent("spring")})

	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/admin/content/reload", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestServerMountsAdminReloadWithToken(t *testing.T) {
	cfg := testConfig()
	cfg.AdminToken = "secret"
	srv := newServerWithProvider(cfg, nil, testutil.GoodProvider{Content: testutil.SampleContent("spring", "autumn")})

	req := httptest.NewRequest(http.MethodPost, "/admin/content/reload", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if got := len(srv.schedulesService.Schedules()); got != 2 {
		t.Fatalf("expected admin reload to load 2 schedules, got %d", got)
	}
}

func TestServerKeepsServingWhenProviderErrors(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, testutil.ErrProvider{Err: errors.New("upstream down")})

	if err := srv.reloader.Trigger(context.Background()); err == nil {
		t.Fatalf("expected reload error")
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/schedules", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	testutil.AssertBodyContains(t, rr, "upstream down")
}

func TestServerAppliesScheduleConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Schedules.NoMatchMessage = "Bye week"
	cfg.Schedules.BaseURL = "https://league.example/s/"
	srv := newServerWithProvider(cfg, nil, testutil.GoodProvider{Content: testutil.SampleContent("spring")})
	srv.schedulesService.SetClock(testutil.NowAt(testutil.Noon(2025, 6, 1)))
	if err := srv.reloader.Trigger(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/embed?schedule=spring&hide_old=1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "Bye week")
	testutil.AssertBodyContains(t, rr, "https://league.example/s/spring")
	if strings.Contains(rr.Body.String(), `data-date="2025-05-01"`) {
		t.Fatalf("expected past matchday hidden, got %s", rr.Body.String())
	}
}

func TestNewConstructsServer(t *testing.T) {
	srv := New(testConfig(), nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.closer != nil {
		t.Fatalf("expected no closer for fixture source")
	}
}

func TestNewWithSQLiteSourceServesAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.db")
	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	content := testutil.SampleContent("spring")
	ctx := context.Background()
	for _, team := range content.Teams {
		if err := db.SaveTeam(ctx, team); err != nil {
			t.Fatalf("save team: %v", err)
		}
	}
	if err := db.SaveSchedule(ctx, content.Schedules[0]); err != nil {
		t.Fatalf("save schedule: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	cfg := testConfig()
	cfg.Content = config.ContentConfig{Source: "sqlite", Path: path, RetryAttempts: 1}
	srv := New(cfg, nil)
	if srv.closer == nil {
		t.Fatalf("expected sqlite closer")
	}
	if err := srv.reloader.Trigger(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/teams/1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "Harbor Hawks")

	srv.gracefulShutdown()
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	rl := &testutil.StubReloader{}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, rl)
	srv.gracefulShutdown()

	if rl.StopCalls != 1 {
		t.Fatalf("expected reloader Stop to be called once, got %d", rl.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

type stubCloser struct {
	calls int
	err   error
}

func (c *stubCloser) Close() error {
	c.calls++
	return c.err
}

func TestGracefulShutdownClosesContentSource(t *testing.T) {
	closer := &stubCloser{err: errors.New("already closed")}
	srv := newServerWithDeps(config.Config{}, nil, &testutil.StubHTTPServer{}, &testutil.StubReloader{})
	srv.closer = closer
	srv.gracefulShutdown()

	if closer.calls != 1 {
		t.Fatalf("expected closer called once, got %d", closer.calls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	rl := &testutil.StubReloader{}
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking, rl)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if rl.StopCalls != 1 {
		t.Fatalf("expected reloader Stop to be called once, got %d", rl.StopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenReloaderStopErrors(t *testing.T) {
	rl := &testutil.StubReloader{Err: errors.New("stop failure")}
	httpSrv := &testutil.StubHTTPServer{}
	logger, buf := testutil.NewBufferLogger()

	srv := newServerWithDeps(config.Config{}, logger, httpSrv, rl)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	if !strings.Contains(buf.String(), "failed to stop reloader") {
		t.Fatalf("expected stop failure logged, got %s", buf.String())
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &testutil.ErrHTTPServer{}, &testutil.StubReloader{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := &testutil.StubReloader{}
	httpSrv := &testutil.CloseableHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, rl)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if rl.StartCalls != 1 {
		t.Fatalf("expected reloader Start called once, got %d", rl.StartCalls)
	}
	if rl.StopCalls != 1 {
		t.Fatalf("expected reloader Stop called once, got %d", rl.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
