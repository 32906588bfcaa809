package testutil

import (
	"time"

	appschedules "github.com/preston-bernstein/schedule-grid-service/internal/app/schedules"
	appteams "github.com/preston-bernstein/schedule-grid-service/internal/app/teams"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/store"
)

// NewStore returns a memory store preloaded with content.
func NewStore(content domain.Content) *store.MemoryStore {
	ms := store.NewMemoryStore()
	ms.Replace(content)
	return ms
}

// NewServices builds team and schedule services over a store preloaded with content.
func NewServices(content domain.Content, cfg appschedules.Config) (*appteams.Service, *appschedules.Service) {
	ms := NewStore(content)
	teamSvc := appteams.NewService(ms)
	return teamSvc, appschedules.NewService(ms, teamSvc, cfg)
}

// NewServicesAt is NewServices with the schedule clock pinned to now.
func NewServicesAt(content domain.Content, cfg appschedules.Config, now time.Time) (*appteams.Service, *appschedules.Service) {
	teamSvc, schedSvc := NewServices(content, cfg)
	schedSvc.SetClock(NowAt(now))
	return teamSvc, schedSvc
}
