package store

import (
	"sync"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"
)

// MemoryStore keeps a thread-safe snapshot of teams and schedules in memory.
// List methods return copies in source order.
type MemoryStore struct {
	mu        sync.RWMutex
	teams     []teams.Team
	teamsByID map[int]teams.Team
	schedules []schedules.Schedule
	bySlug    map[string]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teamsByID: make(map[int]teams.Team),
		bySlug:    make(map[string]int),
	}
}

// ListTeams returns a copy of the current teams.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, len(s.teams))
	copy(result, s.teams)
	return result
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id int) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teamsByID[id]
	return t, ok
}

// SetTeams replaces the existing teams with a new snapshot.
func (s *MemoryStore) SetTeams(items []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTeamsLocked(items)
}

// ListSchedules returns a copy of the current schedules.
func (s *MemoryStore) ListSchedules() []schedules.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]schedules.Schedule, len(s.schedules))
	copy(result, s.schedules)
	return result
}

// GetSchedule retrieves a schedule by slug.
func (s *MemoryStore) GetSchedule(slug string) (schedules.Schedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.bySlug[slug]
	if !ok {
		return schedules.Schedule{}, false
	}
	return s.schedules[idx], true
}

// SetSchedules replaces the existing schedules with a new snapshot.
func (s *MemoryStore) SetSchedules(items []schedules.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setSchedulesLocked(items)
}

// Replace swaps teams and schedules together so readers never see a mix of
// two content versions.
func (s *MemoryStore) Replace(content domain.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTeamsLocked(content.Teams)
	s.setSchedulesLocked(content.Schedules)
}

func (s *MemoryStore) setTeamsLocked(items []teams.Team) {
	s.teams = make([]teams.Team, 0, len(items))
	s.teamsByID = make(map[int]teams.Team, len(items))
	for _, t := range items {
		if _, dup := s.teamsByID[t.ID]; dup {
			continue
		}
		s.teams = append(s.teams, t)
		s.teamsByID[t.ID] = t
	}
}

// setSchedulesLocked keeps the first schedule for a duplicated slug.
func (s *MemoryStore) setSchedulesLocked(items []schedules.Schedule) {
	s.schedules = make([]schedules.Schedule, 0, len(items))
	s.bySlug = make(map[string]int, len(items))
	for _, sc := range items {
		if _, dup := s.bySlug[sc.Slug]; dup {
			continue
		}
		s.bySlug[sc.Slug] = len(s.schedules)
		s.schedules = append(s.schedules, sc)
	}
}
