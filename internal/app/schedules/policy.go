package schedules

import (
	"strings"

	domainschedules "github.com/preston-bernstein/schedule-grid-service/internal/domain/schedules"
)

// Policy picks the default schedule when a request names none or an unknown one.
type Policy string

const (
	// PolicyPublished picks the most recently published schedule.
	PolicyPublished Policy = "published"
	// PolicyScheduleDate picks the schedule with the latest ScheduleDate,
	// falling back to publish time for ties and undated schedules.
	PolicyScheduleDate Policy = "schedule_date"
)

// ParsePolicy maps a config string to a Policy, defaulting to PolicyPublished.
func ParsePolicy(raw string) Policy {
	switch Policy(strings.ToLower(strings.TrimSpace(raw))) {
	case PolicyScheduleDate:
		return PolicyScheduleDate
	default:
		return PolicyPublished
	}
}

// pickDefault returns the schedule the policy prefers. Earlier entries win
// exact ties so the result is stable for a given source order.
func (p Policy) pickDefault(items []domainschedules.Schedule) (domainschedules.Schedule, bool) {
	if len(items) == 0 {
		return domainschedules.Schedule{}, false
	}
	best := items[0]
	for _, candidate := range items[1:] {
		if p.newer(candidate, best) {
			best = candidate
		}
	}
	return best, true
}

func (p Policy) newer(a, b domainschedules.Schedule) bool {
	if p == PolicyScheduleDate && a.ScheduleDate != b.ScheduleDate {
		return a.ScheduleDate > b.ScheduleDate
	}
	return a.PublishedAt.After(b.PublishedAt)
}
