package fixture

import (
	"context"
	"testing"
	"time"
)

func TestFetchContentReturnsDemoLeague(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }

	content, err := p.FetchContent(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(content.Teams) != 6 {
		t.Fatalf("expected 6 teams, got %d", len(content.Teams))
	}
	if len(content.Schedules) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(content.Schedules))
	}

	first := content.Schedules[0]
	if first.Slug != "spring-league" || len(first.Matchdays) != 3 {
		t.Fatalf("unexpected first schedule: %+v", first)
	}
	if first.Matchdays[0].Date != "20250525" {
		t.Fatalf("expected past matchday a week back, got %s", first.Matchdays[0].Date)
	}
	if !first.Matchdays[1].NoMatch || first.Matchdays[1].Date != "20250601" {
		t.Fatalf("expected today's matchday to be a no-match notice: %+v", first.Matchdays[1])
	}
	if !first.PublishedAt.After(content.Schedules[1].PublishedAt) {
		t.Fatalf("expected spring league to be the most recently published")
	}
}

func TestTeamsHaveUniqueIDs(t *testing.T) {
	seen := map[int]bool{}
	for _, team := range Teams() {
		if team.ID <= 0 || seen[team.ID] {
			t.Fatalf("unexpected team id %d", team.ID)
		}
		seen[team.ID] = true
	}
}

func TestNewCreatesProvider(t *testing.T) {
	p := New()
	if p == nil || p.now == nil {
		t.Fatalf("expected provider with now set")
	}
}
