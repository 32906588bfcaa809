package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"
	"github.com/preston-bernstein/schedule-grid-service/internal/timeutil"
)

// Source is the name the fixture provider reports in logs and metrics.
const Source = "fixture"

// Provider returns a static demo league useful for local testing and bootstrapping.
// Matchday dates are placed around the current day so past-matchday hiding is visible.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchContent returns six teams and two schedules.
func (p *Provider) FetchContent(ctx context.Context) (domain.Content, error) {
	_ = ctx

	today := p.now().UTC().Truncate(24 * time.Hour)
	day := func(offset int) string {
		return timeutil.FormatCompact(today.AddDate(0, 0, offset))
	}

	return domain.Content{
		Teams: Teams(),
		Schedules: []schedules.Schedule{
			{
				ID:           1,
				Slug:         "spring-league",
				Title:        "Spring League",
				PublishedAt:  today.AddDate(0, 0, -30),
				ScheduleDate: day(-7),
				Matchdays: []schedules.Matchday{
					{
						Date: day(-7),
						Fields: []schedules.FieldBlock{
							{Name: "North Pitch", BackgroundColor: "#e8f5e9", Times: []schedules.TimeSlot{
								{Time: "9:00", HomeTeamID: 1, AwayTeamID: 2},
								{Time: "10:30", HomeTeamID: 3, AwayTeamID: 4},
							}},
							{Name: "South Pitch", Times: []schedules.TimeSlot{
								{Time: "9:00", HomeTeamID: 5, AwayTeamID: 6},
							}},
						},
					},
					{
						Date:           day(0),
						NoMatch:        true,
						NoMatchMessage: "Pitches closed for maintenance.",
					},
					{
						Date: day(7),
						Fields: []schedules.FieldBlock{
							{Name: "North Pitch", BackgroundColor: "#e8f5e9", Times: []schedules.TimeSlot{
								{Time: "9:00", HomeTeamID: 2, AwayTeamID: 3},
								{Time: "10:30", HomeTeamID: 4, AwayTeamID: 5},
							}},
							{Name: "", Times: []schedules.TimeSlot{
								{Time: "10:30", HomeTeamID: 6, AwayTeamID: 1},
								{Time: "12:00"},
							}},
						},
					},
				},
			},
			{
				ID:           2,
				Slug:         "youth-cup",
				Title:        "Youth Cup",
				PublishedAt:  today.AddDate(0, 0, -60),
				ScheduleDate: day(14),
				Matchdays: []schedules.Matchday{
					{
						Date: day(14),
						Fields: []schedules.FieldBlock{
							{Name: "Court A", BackgroundColor: "#fff3e0", Times: []schedules.TimeSlot{
								{Time: "14:00", HomeTeamID: 1, AwayTeamID: 6},
								{Time: "15:00", HomeTeamID: 2, AwayTeamID: 5},
							}},
							{Name: "Court B", BackgroundColor: "#e3f2fd", Times: []schedules.TimeSlot{
								{Time: "14:00", HomeTeamID: 3, AwayTeamID: 4},
							}},
						},
					},
				},
			},
		},
	}, nil
}

// Teams returns the deterministic demo teams.
func Teams() []teams.Team {
	return []teams.Team{
		{ID: 1, Name: "Harbor Hawks", BackgroundColor: "#1e3a8a", TextColor: "#ffffff"},
		{ID: 2, Name: "Riverside Rovers", BackgroundColor: "#b91c1c", TextColor: "#ffffff"},
		{ID: 3, Name: "Hilltop Hornets", BackgroundColor: "#facc15", TextColor: "#111111"},
		{ID: 4, Name: "Meadow Mustangs", BackgroundColor: "#15803d", TextColor: "#ffffff"},
		{ID: 5, Name: "Lakeside Lions", BackgroundColor: "#7c3aed", TextColor: "#ffffff"},
		{ID: 6, Name: "Valley Vipers"},
	}
}
