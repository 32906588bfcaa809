package schedules

import (
	"errors"
	"strings"
	"time"

	domainschedules "github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/grid"
	"github.com/preston-bernstein/schedule-grid-service/internal/timeutil"
)

const displayDateLayout = "Monday, January 2, 2006"

// ErrNotFound is returned when no schedule matches a slug.
var ErrNotFound = errors.New("schedule not found")

// Store defines the contract for reading schedules.
type Store interface {
	ListSchedules() []domainschedules.Schedule
	GetSchedule(slug string) (domainschedules.Schedule, bool)
}

// Config controls resolution and rendering defaults.
type Config struct {
	Policy         Policy
	BaseURL        string
	NoMatchMessage string
	Location       *time.Location
}

// Service resolves schedules and builds render views.
type Service struct {
	store     Store
	teams     grid.TeamLookup
	flattener grid.Flattener
	cfg       Config
	now       func() time.Time
}

// NewService constructs a Service. teams may be nil; every team then renders
// as the placeholder.
func NewService(store Store, teams grid.TeamLookup, cfg Config) *Service {
	if cfg.Policy == "" {
		cfg.Policy = PolicyPublished
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		store:     store,
		teams:     teams,
		flattener: grid.Flattener{NoMatchMessage: cfg.NoMatchMessage},
		cfg:       cfg,
		now:       time.Now,
	}
}

// Schedules returns all schedules in source order.
func (s *Service) Schedules() []domainschedules.Schedule {
	return s.store.ListSchedules()
}

// BySlug returns the schedule with exactly this slug.
func (s *Service) BySlug(slug string) (domainschedules.Schedule, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domainschedules.Schedule{}, ErrNotFound
	}
	sc, ok := s.store.GetSchedule(slug)
	if !ok {
		return domainschedules.Schedule{}, ErrNotFound
	}
	return sc, nil
}

// Resolve returns the schedule for slug, falling back to the policy's default
// schedule when slug is blank or unknown. ok is false only when there are no
// schedules at all.
func (s *Service) Resolve(slug string) (domainschedules.Schedule, bool) {
	if sc, err := s.BySlug(slug); err == nil {
		return sc, true
	}
	return s.cfg.Policy.pickDefault(s.store.ListSchedules())
}

// SetClock replaces the time source used for "today". A nil clock is ignored.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Today returns the service's current calendar day (YYYYMMDD).
func (s *Service) Today() string {
	return timeutil.Today(s.now(), s.cfg.Location)
}

// Render resolves slug (with fallback) and builds its view. ok is false when
// there is nothing to render.
func (s *Service) Render(slug string, opts Options) (View, bool) {
	sc, ok := s.Resolve(slug)
	if !ok {
		return View{}, false
	}
	return s.BuildView(sc, opts)
}

// BuildView flattens every visible matchday of sc. Matchdays that flatten to
// nothing are skipped; ok is false when no matchday is left.
func (s *Service) BuildView(sc domainschedules.Schedule, opts Options) (View, bool) {
	matchdays := sc.Matchdays
	hidden := false
	if opts.HidePast {
		today := opts.Today
		if today == "" {
			today = s.Today()
		}
		matchdays, hidden = grid.FilterPast(matchdays, today)
	}

	views := make([]MatchdayView, 0, len(matchdays))
	for _, md := range matchdays {
		res := s.flattener.Flatten(md)
		if res.Empty() {
			continue
		}
		views = append(views, s.matchdayView(res))
	}
	if len(views) == 0 {
		return View{}, false
	}

	view := View{
		Slug:         sc.Slug,
		Title:        sc.Title,
		Matchdays:    views,
		ShowFullLink: hidden,
	}
	if hidden {
		view.FullURL = s.FullURL(sc.Slug)
	}
	return view, true
}

// FullURL builds the "view full schedule" link for slug.
func (s *Service) FullURL(slug string) string {
	base := s.cfg.BaseURL
	if base == "" {
		base = "/schedules/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + slug
}

func (s *Service) matchdayView(res grid.Result) MatchdayView {
	view := MatchdayView{Date: res.Date, Notice: res.Notice}
	if parsed, err := timeutil.ParseCompact(res.Date); err == nil {
		view.ISODate = timeutil.FormatDate(parsed)
		view.DisplayDate = parsed.Format(displayDateLayout)
	}
	if res.Notice != nil {
		return view
	}

	view.Columns = res.Grid.Columns
	view.Rows = make([]RowView, 0, len(res.Grid.Rows))
	for _, row := range res.Grid.Rows {
		cells := make([]CellView, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, CellView{
				Scheduled: cell.Scheduled,
				Home:      grid.ResolveTeam(s.teams, cell.HomeTeamID),
				Away:      grid.ResolveTeam(s.teams, cell.AwayTeamID),
			})
		}
		view.Rows = append(view.Rows, RowView{Time: row.Time, Cells: cells})
	}
	return view
}
