package teams

import "github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"

// Store defines the contract for persisting and retrieving teams.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id int) (teams.Team, bool)
	SetTeams([]teams.Team)
}

// Service coordinates team operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns the current set of teams.
func (s *Service) Teams() []teams.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present. It satisfies grid.TeamLookup.
func (s *Service) TeamByID(id int) (teams.Team, bool) {
	if id == 0 {
		return teams.Team{}, false
	}
	return s.store.GetTeam(id)
}

// ReplaceTeams swaps the in-memory teams with a new snapshot.
func (s *Service) ReplaceTeams(items []teams.Team) {
	s.store.SetTeams(items)
}
