package schedules

import (
	"errors"
	"testing"
	"time"

	domainschedules "github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"
	"github.com/preston-bernstein/schedule-grid-service/internal/grid"
)

type stubStore struct {
	items []domainschedules.Schedule
}

func (s stubStore) ListSchedules() []domainschedules.Schedule { return s.items }

func (s stubStore) GetSchedule(slug string) (domainschedules.Schedule, bool) {
	for _, sc := range s.items {
		if sc.Slug == slug {
			return sc, true
		}
	}
	return domainschedules.Schedule{}, false
}

type stubTeams map[int]teams.Team

func (s stubTeams) TeamByID(id int) (teams.Team, bool) {
	t, ok := s[id]
	return t, ok
}

func published(day int) time.Time {
	return time.Date(2025, 1, day, 12, 0, 0, 0, time.UTC)
}

func sampleSchedules() []domainschedules.Schedule {
	return []domainschedules.Schedule{
		{Slug: "autumn", Title: "Autumn", PublishedAt: published(10), ScheduleDate: "20250901"},
		{Slug: "spring", Title: "Spring", PublishedAt: published(20), ScheduleDate: "20250301"},
		{Slug: "summer", Title: "Summer", PublishedAt: published(5), ScheduleDate: ""},
	}
}

func TestResolveExactSlugWins(t *testing.T) {
	svc := NewService(stubStore{items: sampleSchedules()}, nil, Config{})

	sc, ok := svc.Resolve("summer")
	if !ok || sc.Slug != "summer" {
		t.Fatalf("expected exact slug match, got %+v", sc)
	}
}

func TestResolveFallbackPolicies(t *testing.T) {
	cases := []struct {
		policy Policy
		slug   string
		want   string
	}{
		{PolicyPublished, "", "spring"},
		{PolicyPublished, "missing", "spring"},
		{PolicyScheduleDate, "", "autumn"},
		{PolicyScheduleDate, "  ", "autumn"},
	}
	for _, tc := range cases {
		svc := NewService(stubStore{items: sampleSchedules()}, nil, Config{Policy: tc.policy})
		sc, ok := svc.Resolve(tc.slug)
		if !ok || sc.Slug != tc.want {
			t.Fatalf("policy %s slug %q: expected %s, got %+v", tc.policy, tc.slug, tc.want, sc)
		}
	}
}

func TestScheduleDatePolicyBreaksTiesByPublishTime(t *testing.T) {
	items := []domainschedules.Schedule{
		{Slug: "a", PublishedAt: published(1), ScheduleDate: "20250101"},
		{Slug: "b", PublishedAt: published(3), ScheduleDate: "20250101"},
	}
	svc := NewService(stubStore{items: items}, nil, Config{Policy: PolicyScheduleDate})

	if sc, _ := svc.Resolve(""); sc.Slug != "b" {
		t.Fatalf("expected later published schedule on date tie, got %s", sc.Slug)
	}
}

func TestResolveWithoutSchedules(t *testing.T) {
	svc := NewService(stubStore{}, nil, Config{})
	if _, ok := svc.Resolve("anything"); ok {
		t.Fatal("expected no schedule when store is empty")
	}
}

func TestBySlugNotFound(t *testing.T) {
	svc := NewService(stubStore{items: sampleSchedules()}, nil, Config{})
	if _, err := svc.BySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.BySlug(""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank slug, got %v", err)
	}
}

func TestParsePolicy(t *testing.T) {
	if ParsePolicy("SCHEDULE_DATE") != PolicyScheduleDate {
		t.Fatal("expected schedule_date policy")
	}
	if ParsePolicy("whatever") != PolicyPublished {
		t.Fatal("expected published fallback")
	}
}

func gridSchedule() domainschedules.Schedule {
	return domainschedules.Schedule{
		Slug:  "league",
		Title: "League",
		Matchdays: []domainschedules.Matchday{
			{Date: "20250501", Fields: []domainschedules.FieldBlock{{Times: []domainschedules.TimeSlot{{Time: "9:00", HomeTeamID: 1, AwayTeamID: 2}}}}},
			{Date: "20250701", Fields: []domainschedules.FieldBlock{
				{Name: "North", Times: []domainschedules.TimeSlot{{Time: "9:00", HomeTeamID: 1, AwayTeamID: 3}}},
				{Name: "South", Times: []domainschedules.TimeSlot{{Time: "10:00", HomeTeamID: 2}}},
			}},
			{Date: "20250708"},
			{Date: "20250715", NoMatch: true},
		},
	}
}

func TestBuildViewResolvesTeamsAndSkipsEmptyMatchdays(t *testing.T) {
	lookup := stubTeams{
		1: {ID: 1, Name: "Rovers", BackgroundColor: "#003366"},
		2: {ID: 2, Name: "United"},
		3: {ID: 3, Name: "City"},
	}
	svc := NewService(stubStore{}, lookup, Config{NoMatchMessage: "Bye week"})

	view, ok := svc.BuildView(gridSchedule(), Options{})
	if !ok {
		t.Fatal("expected renderable view")
	}
	if len(view.Matchdays) != 3 {
		t.Fatalf("expected empty matchday skipped, got %d matchdays", len(view.Matchdays))
	}
	if view.ShowFullLink || view.FullURL != "" {
		t.Fatalf("expected no full link without hide-past, got %+v", view)
	}

	md := view.Matchdays[1]
	if md.ISODate != "2025-07-01" || md.DisplayDate != "Tuesday, July 1, 2025" {
		t.Fatalf("unexpected dates %q %q", md.ISODate, md.DisplayDate)
	}
	if len(md.Columns) != 2 || len(md.Rows) != 2 {
		t.Fatalf("expected 2x2 grid, got %d columns %d rows", len(md.Columns), len(md.Rows))
	}
	first := md.Rows[0].Cells[0]
	if first.Home.Name != "Rovers" || first.Home.BackgroundColor != "#003366" || first.Away.Name != "City" {
		t.Fatalf("unexpected resolved cell %+v", first)
	}
	if md.Rows[0].Cells[1].Scheduled {
		t.Fatalf("expected South to have no 9:00 slot")
	}
	awayless := md.Rows[1].Cells[1]
	if !awayless.Scheduled || awayless.Away.Name != grid.Placeholder || !awayless.Away.Placeholder {
		t.Fatalf("expected placeholder away team, got %+v", awayless)
	}

	notice := view.Matchdays[2]
	if notice.Notice == nil || notice.Notice.Message != "Bye week" || len(notice.Rows) != 0 {
		t.Fatalf("expected configured notice, got %+v", notice)
	}
}

func TestBuildViewHidePast(t *testing.T) {
	svc := NewService(stubStore{}, nil, Config{BaseURL: "https://league.example/schedule"})

	view, ok := svc.BuildView(gridSchedule(), Options{HidePast: true, Today: "20250601"})
	if !ok {
		t.Fatal("expected renderable view")
	}
	if !view.ShowFullLink || view.FullURL != "https://league.example/schedule/league" {
		t.Fatalf("expected full schedule link, got %+v", view)
	}
	if view.Matchdays[0].Date != "20250701" {
		t.Fatalf("expected first visible matchday 20250701, got %s", view.Matchdays[0].Date)
	}
}

func TestBuildViewHidePastUsesServiceClock(t *testing.T) {
	svc := NewService(stubStore{}, nil, Config{})
	svc.now = func() time.Time { return time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC) }

	if _, ok := svc.BuildView(gridSchedule(), Options{HidePast: true}); ok {
		t.Fatal("expected nothing to render once every matchday is past")
	}
}

func TestRenderFallsBackToDefaultSchedule(t *testing.T) {
	sc := gridSchedule()
	sc.PublishedAt = published(2)
	svc := NewService(stubStore{items: []domainschedules.Schedule{sc}}, nil, Config{})

	view, ok := svc.Render("unknown", Options{})
	if !ok || view.Slug != "league" {
		t.Fatalf("expected fallback render of league, got %+v ok=%v", view, ok)
	}
	if _, ok := NewService(stubStore{}, nil, Config{}).Render("", Options{}); ok {
		t.Fatal("expected nothing to render without schedules")
	}
}

func TestFullURLDefaults(t *testing.T) {
	svc := NewService(stubStore{}, nil, Config{})
	if got := svc.FullURL("spring"); got != "/schedules/spring" {
		t.Fatalf("unexpected default full url %s", got)
	}
}

func TestSetClockDrivesToday(t *testing.T) {
	svc := NewService(nil, nil, Config{Location: time.UTC})
	svc.SetClock(func() time.Time { return time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC) })
	svc.SetClock(nil)
	if got := svc.Today(); got != "20250601" {
		t.Fatalf("expected 20250601, got %s", got)
	}
}
