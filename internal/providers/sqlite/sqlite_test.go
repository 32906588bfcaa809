package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndFetchRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	team := teams.Team{ID: 3, Name: "Hilltop Hornets", BackgroundColor: "#facc15", TextColor: "#111", LogoURL: "https://example.com/h.png"}
	if err := s.SaveTeam(ctx, team); err != nil {
		t.Fatalf("save team: %v", err)
	}
	sc := schedules.Schedule{
		ID:           1,
		Slug:         "spring",
		Title:        "Spring",
		PublishedAt:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		ScheduleDate: "20250308",
		Matchdays: []schedules.Matchday{
			{Date: "20250308", Fields: []schedules.FieldBlock{{Name: "A", Times: []schedules.TimeSlot{{Time: "9:00", HomeTeamID: 3}}}}},
			{NoMatch: true, NoMatchMessage: "Rain"},
		},
	}
	if err := s.SaveSchedule(ctx, sc); err != nil {
		t.Fatalf("save schedule: %v", err)
	}

	content, err := s.FetchContent(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if diff := cmp.Diff([]teams.Team{team}, content.Teams); diff != "" {
		t.Fatalf("teams mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]schedules.Schedule{sc}, content.Schedules, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("schedules mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveScheduleUpsertKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, slug := range []string{"first", "second"} {
		if err := s.SaveSchedule(ctx, schedules.Schedule{Slug: slug, Title: slug}); err != nil {
			t.Fatalf("save %s: %v", slug, err)
		}
	}
	if err := s.SaveSchedule(ctx, schedules.Schedule{Slug: "first", Title: "First (updated)"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	content, err := s.FetchContent(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(content.Schedules) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(content.Schedules))
	}
	if content.Schedules[0].Slug != "first" || content.Schedules[0].Title != "First (updated)" {
		t.Fatalf("unexpected first schedule %+v", content.Schedules[0])
	}
	if !content.Schedules[0].PublishedAt.IsZero() {
		t.Fatalf("expected zero published time")
	}
}

func TestFetchContentRejectsCorruptMatchdays(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	if _, err := s.db.ExecContext(ctx, `INSERT INTO schedules (slug, matchdays) VALUES ('bad', '{oops')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err := s.FetchContent(ctx)
	if _, ok := providers.AsInvalidContentError(err); !ok {
		t.Fatalf("expected invalid content error, got %v", err)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestStoreSatisfiesContentProvider(t *testing.T) {
	var _ providers.ContentProvider = (*Store)(nil)
}
