package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/schedule-grid-service/internal/http/middleware"
	"github.com/preston-bernstein/schedule-grid-service/internal/logging"
)

const (
	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeHTML renders into the response via render; errors after headers are sent can only be logged.
func writeHTML(w http.ResponseWriter, status int, render func(io.Writer) error, logger *slog.Logger) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if render == nil {
		return
	}
	if err := render(w); err != nil {
		logging.Error(logger, "failed to render html", err)
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
