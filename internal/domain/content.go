package domain

import (
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"
)

// Content is the full set of teams and schedules published by a content source.
type Content struct {
	Teams     []teams.Team         `json:"teams" yaml:"teams"`
	Schedules []schedules.Schedule `json:"schedules" yaml:"schedules"`
}
