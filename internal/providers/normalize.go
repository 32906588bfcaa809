package providers

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/schedule-grid-service/internal/domain"
	"github.com/preston-bernstein/schedule-grid-service/internal/timeutil"
)

// Normalize cleans raw content in place of the editor UI validation: dates
// become YYYYMMDD (unparseable dates are cleared), slugs and team names are
// trimmed. Missing or duplicate slugs and non-positive or duplicate team ids
// are reported as InvalidContentError.
func Normalize(source string, content domain.Content) (domain.Content, error) {
	out := domain.Content{
		Teams:     content.Teams,
		Schedules: content.Schedules,
	}

	seenTeams := make(map[int]struct{}, len(out.Teams))
	for i := range out.Teams {
		t := &out.Teams[i]
		if t.ID <= 0 {
			return domain.Content{}, &InvalidContentError{Source: source, Reason: fmt.Sprintf("team %q has non-positive id %d", t.Name, t.ID)}
		}
		if _, dup := seenTeams[t.ID]; dup {
			return domain.Content{}, &InvalidContentError{Source: source, Reason: fmt.Sprintf("duplicate team id %d", t.ID)}
		}
		seenTeams[t.ID] = struct{}{}
		t.Name = strings.TrimSpace(t.Name)
		t.LogoURL = strings.TrimSpace(t.LogoURL)
	}

	seenSlugs := make(map[string]struct{}, len(out.Schedules))
	for i := range out.Schedules {
		sc := &out.Schedules[i]
		sc.Slug = strings.TrimSpace(sc.Slug)
		if sc.Slug == "" {
			return domain.Content{}, &InvalidContentError{Source: source, Reason: fmt.Sprintf("schedule %q has no slug", sc.Title)}
		}
		if _, dup := seenSlugs[sc.Slug]; dup {
			return domain.Content{}, &InvalidContentError{Source: source, Reason: fmt.Sprintf("duplicate slug %q", sc.Slug)}
		}
		seenSlugs[sc.Slug] = struct{}{}
		sc.ScheduleDate = timeutil.NormalizeDate(sc.ScheduleDate)
		for j := range sc.Matchdays {
			sc.Matchdays[j].Date = timeutil.NormalizeDate(sc.Matchdays[j].Date)
		}
	}
	return out, nil
}
