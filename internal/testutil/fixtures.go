package testutil

import (
	"time"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"
)

// SampleTeams returns two styled teams with ids 1 and 2.
func SampleTeams() []teams.Team {
	return []teams.Team{
		{ID: 1, Name: "Harbor Hawks", BackgroundColor: "#1e3a8a", TextColor: "#ffffff"},
		{ID: 2, Name: "Riverside Rovers"},
	}
}

// SampleSchedule returns a schedule with a past matchday (20250501), a future
// matchday (20250701) and a no-match day (20250801).
func SampleSchedule(slug string) schedules.Schedule {
	return schedules.Schedule{
		ID:          1,
		Slug:        slug,
		Title:       "Schedule " + slug,
		PublishedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Matchdays: []schedules.Matchday{
			{
				Date: "20250501",
				Fields: []schedules.FieldBlock{{
					Name:  "North",
					Times: []schedules.TimeSlot{{Time: "9:00", HomeTeamID: 1, AwayTeamID: 2}},
				}},
			},
			{
				Date: "20250701",
				Fields: []schedules.FieldBlock{
					{Times: []schedules.TimeSlot{{Time: "10:00", HomeTeamID: 2, AwayTeamID: 1}}},
					{Name: "South", Times: []schedules.TimeSlot{{Time: "11:00", HomeTeamID: 1}}},
				},
			},
			{Date: "20250801", NoMatch: true},
		},
	}
}

// SampleContent returns SampleTeams plus one SampleSchedule per slug.
func SampleContent(slugs ...string) domain.Content {
	content := domain.Content{Teams: SampleTeams()}
	for i, slug := range slugs {
		sc := SampleSchedule(slug)
		sc.ID = i + 1
		sc.PublishedAt = sc.PublishedAt.AddDate(0, 0, i)
		content.Schedules = append(content.Schedules, sc)
	}
	return content
}
