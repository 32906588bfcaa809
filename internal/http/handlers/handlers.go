package handlers

import (
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	appschedules "github.com/preston-bernstein/schedule-grid-service/internal/app/schedules"
	appteams "github.com/preston-bernstein/schedule-grid-service/internal/app/teams"
	domainschedules "github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"
	"github.com/preston-bernstein/schedule-grid-service/internal/http/requestutil"
	"github.com/preston-bernstein/schedule-grid-service/internal/logging"
	"github.com/preston-bernstein/schedule-grid-service/internal/metrics"
	"github.com/preston-bernstein/schedule-grid-service/internal/reloader"
	"github.com/preston-bernstein/schedule-grid-service/internal/render"
	"github.com/preston-bernstein/schedule-grid-service/internal/shortcode"
)

// Render surfaces reported to metrics.
const (
	SurfacePage      = "page"
	SurfaceEmbed     = "embed"
	SurfaceDirective = "directive"
	SurfaceAPI       = "api"
)

const maxRenderBody = 1 << 20

const hideOldParam = "hide_old"

// Handler wires HTTP routes to the team and schedule services.
type Handler struct {
	teams     *appteams.Service
	schedules *appschedules.Service
	metrics   *metrics.Recorder
	logger    *slog.Logger
	statusFn  func() reloader.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the service is always ready.
func NewHandler(teamSvc *appteams.Service, scheduleSvc *appschedules.Service, recorder *metrics.Recorder, logger *slog.Logger, statusFn func() reloader.Status) *Handler {
	return &Handler{
		teams:     teamSvc,
		schedules: scheduleSvc,
		metrics:   recorder,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: content must have loaded at least once.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{
			"status":    "ready",
			"teams":     status.Teams,
			"schedules": status.Schedules,
		}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers every unregistered path.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// Teams lists all teams.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	items := h.teams.Teams()
	if items == nil {
		items = []teams.Team{}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"teams": items}, h.logger)
}

// TeamByID returns one team. Path: /teams/{id}
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, err := strconv.Atoi(strings.TrimSpace(r.PathValue("id")))
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	team, ok := h.teams.TeamByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

// Schedules lists schedule summaries in source order.
func (h *Handler) Schedules(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	items := h.schedules.Schedules()
	summaries := make([]domainschedules.Summary, 0, len(items))
	for _, sc := range items {
		summaries = append(summaries, domainschedules.NewSummary(sc))
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"schedules": summaries}, h.logger)
}

// SchedulePage renders the full HTML page for one schedule. Path: /schedules/{slug}
func (h *Handler) SchedulePage(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	view, ok := h.scheduleView(w, r)
	if !ok {
		return
	}
	h.recordRender(r, SurfacePage, view)
	writeHTML(w, nethttp.StatusOK, func(out io.Writer) error {
		return render.Page(out, view)
	}, loggerFromContext(r, h.logger))
}

// ScheduleGrid returns the flattened view as JSON. Path: /schedules/{slug}/grid
func (h *Handler) ScheduleGrid(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	view, ok := h.scheduleView(w, r)
	if !ok {
		return
	}
	h.recordRender(r, SurfaceAPI, view)
	writeJSON(w, nethttp.StatusOK, view, h.logger)
}

// Embed renders the schedule fragment for ?schedule=slug, falling back to the
// default schedule. Nothing to render yields an empty 200 body.
func (h *Handler) Embed(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	slug := r.URL.Query().Get("schedule")
	view, ok := h.schedules.Render(slug, appschedules.Options{HidePast: requestutil.QueryFlag(r, hideOldParam)})
	if !ok {
		logging.Info(loggerFromContext(r, h.logger), "nothing to render", logging.FieldSchedule, slug)
		writeHTML(w, nethttp.StatusOK, nil, h.logger)
		return
	}
	h.recordRender(r, SurfaceEmbed, view)
	writeHTML(w, nethttp.StatusOK, func(out io.Writer) error {
		return render.Schedule(out, view)
	}, loggerFromContext(r, h.logger))
}

// RenderDirectives expands [schedule] directives in the request body and returns the HTML.
func (h *Handler) RenderDirectives(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	body, err := io.ReadAll(nethttp.MaxBytesReader(w, r.Body, maxRenderBody))
	if err != nil {
		var tooLarge *nethttp.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, nethttp.StatusRequestEntityTooLarge, "body too large", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusBadRequest, "unable to read body", h.logger)
		return
	}

	out, err := shortcode.Expand(string(body), func(d shortcode.Directive) (string, error) {
		view, ok := h.schedules.Render(d.Slug, appschedules.Options{HidePast: d.HideOld})
		if !ok {
			return "", nil
		}
		h.recordRender(r, SurfaceDirective, view)
		return render.ScheduleString(view)
	})
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "directive render failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "render failed", h.logger)
		return
	}
	writeHTML(w, nethttp.StatusOK, func(dst io.Writer) error {
		_, err := io.WriteString(dst, out)
		return err
	}, loggerFromContext(r, h.logger))
}

// scheduleView looks up {slug} exactly and builds its view. Unknown slugs get a 404.
// A schedule with nothing left to show yields a view without matchdays.
func (h *Handler) scheduleView(w nethttp.ResponseWriter, r *nethttp.Request) (appschedules.View, bool) {
	slug := r.PathValue("slug")
	sc, err := h.schedules.BySlug(slug)
	if errors.Is(err, appschedules.ErrNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "schedule not found", h.logger)
		return appschedules.View{}, false
	}
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "schedule lookup failed", h.logger)
		return appschedules.View{}, false
	}

	view, ok := h.schedules.BuildView(sc, appschedules.Options{HidePast: requestutil.QueryFlag(r, hideOldParam)})
	if !ok {
		view = appschedules.View{Slug: sc.Slug, Title: sc.Title, Matchdays: []appschedules.MatchdayView{}}
	}
	return view, true
}

func (h *Handler) recordRender(r *nethttp.Request, surface string, view appschedules.View) {
	h.metrics.RecordRender(surface, len(view.Matchdays), view.ShowFullLink)
	logging.Debug(loggerFromContext(r, h.logger), "schedule rendered",
		logging.FieldSchedule, view.Slug,
		logging.FieldCount, len(view.Matchdays),
		logging.FieldHidden, view.ShowFullLink,
	)
}
