package grid

import "github.com/preston-bernstein/schedule-grid-service/internal/domain/teams"

// Placeholder stands in for an unassigned or unknown team.
const Placeholder = "—"

// TeamLookup resolves team ids.
type TeamLookup interface {
	TeamByID(id int) (teams.Team, bool)
}

// TeamDisplay is what a renderer needs to draw a team badge.
type TeamDisplay struct {
	ID              int    `json:"id,omitempty"`
	Name            string `json:"name"`
	LogoURL         string `json:"logoUrl,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	Placeholder     bool   `json:"placeholder,omitempty"`
}

// ResolveTeam looks up id and returns its display payload. Zero, unknown ids
// and a nil lookup all resolve to the placeholder with no styling.
func ResolveTeam(lookup TeamLookup, id int) TeamDisplay {
	if id == 0 || lookup == nil {
		return placeholderTeam()
	}
	team, ok := lookup.TeamByID(id)
	if !ok {
		return placeholderTeam()
	}
	name := team.Name
	if name == "" {
		name = Placeholder
	}
	return TeamDisplay{
		ID:              team.ID,
		Name:            name,
		LogoURL:         team.LogoURL,
		BackgroundColor: SanitizeColor(team.BackgroundColor),
		TextColor:       SanitizeColor(team.TextColor),
	}
}

func placeholderTeam() TeamDisplay {
	return TeamDisplay{Name: Placeholder, Placeholder: true}
}
