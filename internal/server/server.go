package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	appschedules "github.com/preston-bernstein/schedule-grid-service/internal/app/schedules"
	appteams "github.com/preston-bernstein/schedule-grid-service/internal/app/teams"
	"github.com/preston-bernstein/schedule-grid-service/internal/config"
	httpserver "github.com/preston-bernstein/schedule-grid-service/internal/http"
	"github.com/preston-bernstein/schedule-grid-service/internal/http/handlers"
	"github.com/preston-bernstein/schedule-grid-service/internal/http/middleware"
	"github.com/preston-bernstein/schedule-grid-service/internal/logging"
	"github.com/preston-bernstein/schedule-grid-service/internal/metrics"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers"
	"github.com/preston-bernstein/schedule-grid-service/internal/reloader"
	"github.com/preston-bernstein/schedule-grid-service/internal/store"
	"github.com/preston-bernstein/schedule-grid-service/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg              config.Config
	logger           *slog.Logger
	metrics          *metrics.Recorder
	store            *store.MemoryStore
	teamsService     *appteams.Service
	schedulesService *appschedules.Service
	httpServer       httpServer
	metricsServer    httpServer
	reloader         Reloader
	metricsStop      func(context.Context) error
	closer           io.Closer
}

// New constructs a server reading content from the configured source.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ContentProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.ContentProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	var closer io.Closer
	if provider == nil {
		provider, closer = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	memoryStore, teamSvc, scheduleSvc := BuildServices(cfg)
	rl := reloader.New(provider, memoryStore, logger, recorder, cfg.ReloadInterval)
	httpSrv := buildHTTPServer(cfg, teamSvc, scheduleSvc, logger, recorder, rl)

	return &Server{
		cfg:              cfg,
		logger:           logger,
		metrics:          recorder,
		store:            memoryStore,
		teamsService:     teamSvc,
		schedulesService: scheduleSvc,
		httpServer:       httpSrv,
		metricsServer:    metricsSrv,
		reloader:         rl,
		metricsStop:      metricsShutdown,
		closer:           closer,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, rl Reloader) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		reloader:   rl,
	}
}

// BuildServices wires the store with team and schedule services configured from cfg.
func BuildServices(cfg config.Config) (*store.MemoryStore, *appteams.Service, *appschedules.Service) {
	memoryStore := store.NewMemoryStore()
	teamSvc := appteams.NewService(memoryStore)
	scheduleSvc := appschedules.NewService(memoryStore, teamSvc, appschedules.Config{
		Policy:         appschedules.ParsePolicy(cfg.Schedules.DefaultPolicy),
		BaseURL:        cfg.Schedules.BaseURL,
		NoMatchMessage: cfg.Schedules.NoMatchMessage,
		Location:       timeutil.ResolveTimezone(cfg.Schedules.Timezone),
	})
	return memoryStore, teamSvc, scheduleSvc
}

func buildHTTPServer(cfg config.Config, teamSvc *appteams.Service, scheduleSvc *appschedules.Service, logger *slog.Logger, recorder *metrics.Recorder, rl Reloader) httpServer {
	var statusFn func() reloader.Status
	if rl != nil {
		statusFn = rl.Status
	}

	handler := handlers.NewHandler(teamSvc, scheduleSvc, recorder, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" && rl != nil {
		admin = handlers.NewAdminHandler(rl, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the reloader and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.reloader.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.reloader.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop reloader", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			logging.Warn(s.logger, "content source close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
