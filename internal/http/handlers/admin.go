package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/schedule-grid-service/internal/http/requestutil"
	"github.com/preston-bernstein/schedule-grid-service/internal/logging"
	"github.com/preston-bernstein/schedule-grid-service/internal/reloader"
)

// ContentReloader is the part of the reloader the admin endpoint drives.
type ContentReloader interface {
	Trigger(ctx context.Context) error
	Status() reloader.Status
}

// AdminHandler exposes admin-only endpoints (e.g., content reload).
type AdminHandler struct {
	reloader ContentReloader
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(r ContentReloader, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reloader: r,
		token:    token,
		logger:   logger,
	}
}

// ReloadContent reloads teams and schedules from the configured source right away.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) ReloadContent(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.reloader == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reloader not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.reloader.Trigger(r.Context()); err != nil {
		logging.Warn(logger, "admin reload failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "content reload failed", logger)
		return
	}

	status := h.reloader.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"teams":     status.Teams,
		"schedules": status.Schedules,
	}, logger)
	logging.Info(logger, "admin content reloaded",
		slog.Int(logging.FieldTeams, status.Teams),
		slog.Int(logging.FieldSchedules, status.Schedules),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := requestutil.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
