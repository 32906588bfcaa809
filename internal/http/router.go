package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/schedule-grid-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin may be nil, which leaves
// the admin endpoints unmounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/{id}", handler.TeamByID)
	mux.HandleFunc("/schedules", handler.Schedules)
	mux.HandleFunc("/schedules/{slug}", handler.SchedulePage)
	mux.HandleFunc("/schedules/{slug}/grid", handler.ScheduleGrid)
	mux.HandleFunc("/embed", handler.Embed)
	mux.HandleFunc("/render", handler.RenderDirectives)
	if admin != nil {
		mux.HandleFunc("/admin/content/reload", admin.ReloadContent)
	}
	mux.HandleFunc("/", handler.NotFound)
	return mux
}
